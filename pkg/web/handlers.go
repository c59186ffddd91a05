package web

import (
	"context"
	"encoding/json"
	"log/slog"

	"github.com/gofiber/fiber/v3"
)

// TriggerClient starts one run of a named DAG and returns the raw response
// body text.
type TriggerClient interface {
	TriggerDAGRun(ctx context.Context, dagID string, conf map[string]any) (string, error)
}

// Handlers serves the trigger endpoint for a single configured DAG.
type Handlers struct {
	client TriggerClient
	dagID  string
	logger *slog.Logger
}

// NewHandlers creates the handler set for the given DAG.
func NewHandlers(client TriggerClient, dagID string, logger *slog.Logger) *Handlers {
	return &Handlers{
		client: client,
		dagID:  dagID,
		logger: logger.With("module", "web"),
	}
}

// TriggerDAG handles one inbound request. POST requests may carry a JSON
// body with bucket/file; every other method reads the same parameters from
// the query string. Missing values fall back to the placeholders. Every
// failure surfaces as a uniform error payload with status 500.
func (h *Handlers) TriggerDAG(c fiber.Ctx) error {
	bucket, file := h.extractParams(c)

	conf := map[string]any{
		"bucket": bucket,
		"file":   file,
	}

	responseText, err := h.client.TriggerDAGRun(c.Context(), h.dagID, conf)
	if err != nil {
		h.logger.ErrorContext(c.Context(), "Failed to trigger DAG", "dag_id", h.dagID, "error", err)

		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"status":  "error",
			"message": "Failed to trigger DAG: " + err.Error(),
		})
	}

	h.logger.InfoContext(c.Context(), "DAG triggered", "dag_id", h.dagID, "bucket", bucket, "file", file)

	return c.JSON(fiber.Map{
		"status":   "success",
		"message":  "DAG triggered successfully",
		"dag_id":   h.dagID,
		"dag_conf": conf,
		"response": responseText,
	})
}

// extractParams reads bucket and file from the request. A malformed JSON
// body is tolerated and treated as absent, never reported to the caller.
func (h *Handlers) extractParams(c fiber.Ctx) (string, string) {
	bucket, file := DefaultBucket, DefaultFile

	if c.Method() == fiber.MethodPost {
		var req TriggerRequest
		if err := json.Unmarshal(c.Body(), &req); err == nil {
			if req.Bucket != nil {
				bucket = *req.Bucket
			}

			if req.File != nil {
				file = *req.File
			}
		}

		return bucket, file
	}

	queries := c.Queries()

	if q, ok := queries["bucket"]; ok {
		bucket = q
	}

	if q, ok := queries["file"]; ok {
		file = q
	}

	return bucket, file
}

// HealthCheck reports whether the service is ready to relay trigger
// requests.
func (h *Handlers) HealthCheck(c fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status":  "healthy",
		"message": "composer-trigger is ready",
		"dag_id":  h.dagID,
	})
}
