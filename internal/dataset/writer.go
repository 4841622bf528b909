package dataset

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	domaingames "github.com/qwerty111-ops/power4-college-football-betting/internal/domain/games"
)

// Writer persists a game dataset to a single JSON file plus a sibling
// manifest. Writes go through a temp file and rename so a crashed run never
// leaves a truncated dataset behind.
type Writer struct {
	path string
}

// NewWriter constructs a writer targeting the given file path.
func NewWriter(path string) *Writer {
	return &Writer{path: path}
}

// Path exposes the target file path (primarily for testing).
func (w *Writer) Path() string {
	if w == nil {
		return ""
	}
	return w.path
}

// WriteGames replaces the dataset file with the given games. The payload is
// always a JSON array, even when empty, and URLs in odds or logo fields are
// written verbatim without HTML escaping.
func (w *Writer) WriteGames(date string, games []domaingames.Game) error {
	if w == nil || w.path == "" {
		return fmt.Errorf("dataset writer not configured")
	}
	if games == nil {
		games = []domaingames.Game{}
	}

	data, err := encodeGames(games)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(w.path), 0o755); err != nil {
		return err
	}

	tmp := w.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return err
	}
	if err := os.Rename(tmp, w.path); err != nil {
		return err
	}

	return writeManifest(w.path, date, len(games))
}

func encodeGames(games []domaingames.Game) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(games); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
