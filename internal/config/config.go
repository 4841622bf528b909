package config

// Config holds runtime configuration for a dataset build run.
type Config struct {
	Provider string
	ESPN     ESPNConfig
	Output   OutputConfig
	Metrics  MetricsConfig
}

// Load reads configuration from environment variables with sensible defaults.
// CLI flags may override individual fields after loading.
func Load() Config {
	return Config{
		Provider: envOrDefault(envProvider, defaultProvider),
		ESPN:     loadESPN(),
		Output:   loadOutput(),
		Metrics:  loadMetrics(),
	}
}
