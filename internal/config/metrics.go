package config

// MetricsConfig controls telemetry export settings.
type MetricsConfig struct {
	Enabled      bool
	OtlpEndpoint string
	ServiceName  string
	OtlpInsecure bool
}

func loadMetrics() MetricsConfig {
	return MetricsConfig{
		// Off by default: a one-shot run only exports when a collector is configured.
		Enabled:      boolEnvOrDefault(envMetricsOn, false),
		OtlpEndpoint: envOrDefault(envOtelEndpoint, ""),
		ServiceName:  envOrDefault(envOtelService, "power4-update-data"),
		OtlpInsecure: boolEnvOrDefault(envOtelInsecure, true),
	}
}
