package main

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Harshshah2306/composer-trigger/pkg/config"
	"github.com/Harshshah2306/composer-trigger/pkg/gcp"
)

func setupTestApp() *fiber.App {
	cfg := &config.Config{
		Port:         8080,
		WebServerURL: "https://example.composer.googleusercontent.com",
		DAGID:        "gcs_dataflow_bigquery",
		AuthScope:    gcp.DefaultAuthScope,
	}

	api := NewAPI(cfg, gcp.StaticCredentials("test-token"), slog.Default())

	return api.App()
}

func TestAPI_HealthEndpoint(t *testing.T) {
	app := setupTestApp()

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)

	defer func() {
		err := resp.Body.Close()
		if err != nil {
			t.Logf("Failed to close response body: %v", err)
		}
	}()

	assert.Equal(t, http.StatusOK, resp.StatusCode)

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var result map[string]any
	require.NoError(t, json.Unmarshal(body, &result))
	assert.Equal(t, "healthy", result["status"])
	assert.Equal(t, "gcs_dataflow_bigquery", result["dag_id"])
}

func TestAPI_Liveness(t *testing.T) {
	app := setupTestApp()

	req := httptest.NewRequest(http.MethodGet, "/livez", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)

	defer func() { _ = resp.Body.Close() }()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestAPI_UnknownPath(t *testing.T) {
	app := setupTestApp()

	req := httptest.NewRequest(http.MethodGet, "/no-such-path", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)

	defer func() { _ = resp.Body.Close() }()

	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}
