package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// validConfig returns a fully valid configuration for testing.
func validConfig() *Config {
	return &Config{
		App: AppConfig{
			Name:        "test-service",
			Version:     "1.0.0",
			Environment: "local",
		},
		Server: ServerConfig{
			Port:            8080,
			Host:            "0.0.0.0",
			ReadTimeout:     30 * time.Second,
			WriteTimeout:    30 * time.Second,
			IdleTimeout:     120 * time.Second,
			ShutdownTimeout: 10 * time.Second,
			MaxRequestSize:  1048576,
		},
		Log: LogConfig{
			Level:  "info",
			Format: "json",
		},
		Client: ClientConfig{
			Timeout: 30 * time.Second,
			Transport: TransportConfig{
				MaxIdleConns:        100,
				MaxIdleConnsPerHost: 10,
				IdleConnTimeout:     90 * time.Second,
			},
		},
		Services: ServicesConfig{
			Species: ServiceEndpointConfig{
				BaseURL: "https://pokeapi.co/api/v2/pokemon-species",
				Name:    "species-service",
			},
			Translation: TranslationServiceConfig{
				BaseURL:         "https://api.funtranslations.com/translate",
				Name:            "translation-service",
				YodaPath:        "/yoda.json",
				ShakespearePath: "/shakespeare.json",
			},
		},
	}
}

func TestConfig_Validate_ValidConfig(t *testing.T) {
	assert.NoError(t, validConfig().Validate())
}

func TestConfig_Validate_AppConfig(t *testing.T) {
	t.Run("missing name", func(t *testing.T) {
		cfg := validConfig()
		cfg.App.Name = ""

		err := cfg.Validate()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "app.name is required")
	})

	t.Run("invalid environment", func(t *testing.T) {
		cfg := validConfig()
		cfg.App.Environment = "staging"

		err := cfg.Validate()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "app.environment must be one of")
	})
}

func TestConfig_Validate_ServerPort(t *testing.T) {
	tests := []struct {
		name    string
		port    int
		wantErr bool
	}{
		{"minimum valid port", 1, false},
		{"typical port", 8080, false},
		{"maximum valid port", 65535, false},
		{"zero port", 0, true},
		{"negative port", -1, true},
		{"port too high", 65536, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			cfg.Server.Port = tt.port

			err := cfg.Validate()
			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), "server.port")
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestConfig_Validate_LogConfig(t *testing.T) {
	for _, level := range []string{"trace", "debug", "info", "warn", "error"} {
		t.Run("level "+level, func(t *testing.T) {
			cfg := validConfig()
			cfg.Log.Level = level
			assert.NoError(t, cfg.Validate())
		})
	}

	t.Run("invalid format", func(t *testing.T) {
		cfg := validConfig()
		cfg.Log.Format = "xml"

		err := cfg.Validate()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "log.format must be one of")
	})

	t.Run("file enabled without path", func(t *testing.T) {
		cfg := validConfig()
		cfg.Log.File.Enabled = true
		cfg.Log.File.Path = ""

		err := cfg.Validate()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "log.file.path is required when")
	})
}

func TestConfig_Validate_ClientConfig(t *testing.T) {
	t.Run("timeout too small", func(t *testing.T) {
		cfg := validConfig()
		cfg.Client.Timeout = time.Millisecond

		err := cfg.Validate()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "client.timeout must be at least")
	})

	t.Run("missing transport pool size", func(t *testing.T) {
		cfg := validConfig()
		cfg.Client.Transport.MaxIdleConns = 0

		err := cfg.Validate()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "client.transport.max_idle_conns")
	})
}

func TestConfig_Validate_ServicesConfig(t *testing.T) {
	t.Run("species base URL must be a URL", func(t *testing.T) {
		cfg := validConfig()
		cfg.Services.Species.BaseURL = "not a url"

		err := cfg.Validate()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "services.species.base_url must be a valid URL")
	})

	t.Run("dialect path must be absolute", func(t *testing.T) {
		cfg := validConfig()
		cfg.Services.Translation.YodaPath = "yoda.json"

		err := cfg.Validate()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "services.translation.yoda_path must start with")
	})

	t.Run("missing translation name", func(t *testing.T) {
		cfg := validConfig()
		cfg.Services.Translation.Name = ""

		err := cfg.Validate()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "services.translation.name is required")
	})
}

func TestConfig_Validate_TelemetryConfig(t *testing.T) {
	t.Run("enabled without endpoint", func(t *testing.T) {
		cfg := validConfig()
		cfg.Telemetry.Enabled = true
		cfg.Telemetry.ServiceName = "pokemon-service"

		err := cfg.Validate()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "telemetry.endpoint is required when")
	})

	t.Run("sampling rate above one", func(t *testing.T) {
		cfg := validConfig()
		cfg.Telemetry.SamplingRate = 1.5

		err := cfg.Validate()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "telemetry.sampling_rate must be at most")
	})
}

func TestFormatFieldPath(t *testing.T) {
	assert.Equal(t, "server.port", formatFieldPath("Config.server.port"))
	assert.Equal(t, "services.translation.yoda_path", formatFieldPath("Config.services.translation.yoda_path"))
	assert.Equal(t, "Single", formatFieldPath("Single"))
}
