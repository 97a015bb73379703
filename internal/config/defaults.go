package config

const (
	DefaultHost        = "0.0.0.0"
	DefaultPort        = 8700
	DefaultEnvironment = "development"
	DefaultAPIPrefix   = "/api/v1"
	DefaultLogLevel    = "info"

	DefaultRateLimitPerMinute = 60

	DefaultAxioraTimeout = 30 // seconds, per Axiora API request

	DefaultAgentTimeout = 300 // seconds, per /api/v1/ask request
)
