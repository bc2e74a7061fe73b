package config

import "time"

// Default values applied to every field no other source provided.
const (
	DefaultPort            = 3000
	DefaultRequestTimeout  = 60 * time.Second
	DefaultShutdownTimeout = 10 * time.Second
	DefaultMaxBodyBytes    = 100 << 10
	DefaultDBPingTimeout   = 5 * time.Second
)

// defaultConfig returns the lowest-priority config layer. The log level
// depends on the environment chosen by the higher-priority sources.
func defaultConfig(environment string) *StructuredConfig {
	if environment == "" {
		environment = EnvironmentDevelopment
	}

	logLevel := "info"
	if environment == EnvironmentDevelopment {
		logLevel = "debug"
	}

	return &StructuredConfig{
		App: App{
			Environment: environment,
			LogLevel:    logLevel,
		},
		Server: Server{
			Port:            DefaultPort,
			RequestTimeout:  DefaultRequestTimeout,
			ShutdownTimeout: DefaultShutdownTimeout,
			MaxBodyBytes:    DefaultMaxBodyBytes,
		},
		Storage: Storage{
			DB: DB{
				PingTimeout: DefaultDBPingTimeout,
			},
		},
	}
}
