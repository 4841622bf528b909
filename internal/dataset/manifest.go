package dataset

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// Manifest records what the latest dataset run produced.
type Manifest struct {
	Version     int       `json:"version"`
	GeneratedAt time.Time `json:"generatedAt"`
	Date        string    `json:"date"`
	GameCount   int       `json:"gameCount"`
}

// manifestPath derives the sibling manifest file for a dataset path, e.g.
// data/games.json -> data/games.manifest.json.
func manifestPath(datasetPath string) string {
	dir := filepath.Dir(datasetPath)
	base := filepath.Base(datasetPath)
	ext := filepath.Ext(base)
	stem := strings.TrimSuffix(base, ext)
	return filepath.Join(dir, stem+".manifest.json")
}

func writeManifest(datasetPath, date string, gameCount int) error {
	m := Manifest{
		Version:     1,
		GeneratedAt: time.Now().UTC(),
		Date:        date,
		GameCount:   gameCount,
	}
	data, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return err
	}
	path := manifestPath(datasetPath)
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return err
	}
	return os.Rename(tmp, path)
}

// ReadManifest loads the manifest beside a dataset path. Missing or corrupt
// manifests yield a zero Manifest and the underlying error.
func ReadManifest(datasetPath string) (Manifest, error) {
	f, err := os.Open(manifestPath(datasetPath))
	if err != nil {
		return Manifest{}, err
	}
	defer f.Close()
	var m Manifest
	if err := json.NewDecoder(f).Decode(&m); err != nil {
		return Manifest{}, err
	}
	return m, nil
}
