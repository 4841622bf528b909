package config

// OutputConfig controls where the generated dataset lands.
type OutputConfig struct {
	Path string
}

func loadOutput() OutputConfig {
	return OutputConfig{
		Path: envOrDefault(envOutputPath, defaultOutputPath),
	}
}
