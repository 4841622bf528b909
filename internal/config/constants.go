package config

import "time"

const (
	envProvider     = "PROVIDER"
	envOutputPath   = "OUTPUT_PATH"
	envMetricsOn    = "METRICS_ENABLED"
	envOtelEndpoint = "OTEL_EXPORTER_OTLP_ENDPOINT"
	envOtelService  = "OTEL_SERVICE_NAME"
	envOtelInsecure = "OTEL_EXPORTER_OTLP_INSECURE"

	defaultProvider = "espn"
	// The front-end reads this path relative to the repository root.
	defaultOutputPath = "data/games.json"
	// Generous default; ESPN summary responses can be slow on game days.
	defaultHTTPTimeout = 30 * Duration(time.Second)
)
