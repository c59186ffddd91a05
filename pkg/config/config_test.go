package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Harshshah2306/composer-trigger/pkg/config"
	"github.com/Harshshah2306/composer-trigger/pkg/gcp"
)

func validConfig() *config.Config {
	return &config.Config{
		Port:         8080,
		WebServerURL: "https://example.composer.googleusercontent.com",
		DAGID:        "gcs_dataflow_bigquery",
		AuthScope:    gcp.DefaultAuthScope,
	}
}

func TestConfig_Validate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		mutate  func(*config.Config)
		wantErr bool
	}{
		{
			name:   "valid configuration",
			mutate: func(*config.Config) {},
		},
		{
			name:    "missing web server URL",
			mutate:  func(c *config.Config) { c.WebServerURL = "" },
			wantErr: true,
		},
		{
			name:    "placeholder web server URL is rejected",
			mutate:  func(c *config.Config) { c.WebServerURL = "YOUR-WEB-SERVER-URL" },
			wantErr: true,
		},
		{
			name:    "relative web server URL is rejected",
			mutate:  func(c *config.Config) { c.WebServerURL = "/airflow" },
			wantErr: true,
		},
		{
			name:    "missing DAG id",
			mutate:  func(c *config.Config) { c.DAGID = "" },
			wantErr: true,
		},
		{
			name:    "missing auth scope",
			mutate:  func(c *config.Config) { c.AuthScope = "" },
			wantErr: true,
		},
		{
			name:    "port out of range",
			mutate:  func(c *config.Config) { c.Port = 0 },
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			cfg := validConfig()
			tt.mutate(cfg)

			err := cfg.Validate()
			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), "invalid configuration")
			} else {
				require.NoError(t, err)
			}
		})
	}
}
