// Package composer provides an authenticated client for the Cloud
// Composer 2 Airflow web server and the operation that triggers DAG runs
// through the stable Airflow 2 REST API.
package composer

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/oauth2"

	"github.com/Harshshah2306/composer-trigger/pkg/otelhelper"
)

// DefaultTimeout bounds each web server request when the caller does not
// override it.
const DefaultTimeout = 90 * time.Second

// Client issues authenticated requests to one Airflow web server. The
// bearer token is injected by the transport from the token source resolved
// at startup, so the client is safe for concurrent use and never
// re-authenticates per call.
type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     *slog.Logger
	tracer     trace.Tracer
}

// Option customizes a Client.
type Option func(*Client)

// WithTimeout replaces the default request timeout.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		c.httpClient.Timeout = timeout
	}
}

// WithLogger replaces the default logger.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

// NewClient creates a client for the web server at baseURL, authenticated
// by tokens drawn from source.
func NewClient(baseURL string, source oauth2.TokenSource, opts ...Option) *Client {
	client := &Client{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		httpClient: &http.Client{
			Transport: &oauth2.Transport{Source: source},
			Timeout:   DefaultTimeout,
		},
		logger: slog.Default().With("module", "composer_client"),
		tracer: otel.Tracer("composer"),
	}

	for _, opt := range opts {
		opt(client)
	}

	return client
}

// RequestOptions carries the optional parts of a web server request.
type RequestOptions struct {
	Headers map[string]string
	// JSON, when set, is marshaled as the request body with a JSON
	// content type.
	JSON any
	// Timeout overrides the client timeout for this request only.
	Timeout time.Duration
}

// Do issues a single authenticated request. Transport failures (timeouts,
// connection errors) are returned to the caller; status codes are not
// interpreted at this layer. There are no retries.
func (c *Client) Do(ctx context.Context, method, rawURL string, opts *RequestOptions) (*http.Response, error) {
	var body io.Reader = strings.NewReader("")

	if opts != nil && opts.JSON != nil {
		payload, err := json.Marshal(opts.JSON)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal request body: %w", err)
		}

		body = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, rawURL, body)
	if err != nil {
		return nil, fmt.Errorf("failed to create http request: %w", err)
	}

	if opts != nil {
		if opts.JSON != nil {
			req.Header.Set("Content-Type", "application/json")
		}

		for key, value := range opts.Headers {
			req.Header.Set(key, value)
		}
	}

	httpClient := c.httpClient
	if opts != nil && opts.Timeout > 0 {
		clone := *c.httpClient
		clone.Timeout = opts.Timeout
		httpClient = &clone
	}

	c.logger.DebugContext(ctx, "Sending web server request", "method", method, "url", rawURL)

	return httpClient.Do(req)
}

// TriggerDAGRun starts one run of the named DAG, forwarding conf as the
// run configuration. It returns the raw response body text on success.
//
// Response classification, single attempt only:
//   - 403: *PermissionError with the raw response attached
//   - 200: body text
//   - anything else: *HTTPError with the status code and reason phrase
func (c *Client) TriggerDAGRun(ctx context.Context, dagID string, conf map[string]any) (string, error) {
	ctx, span := otelhelper.StartSpan(ctx, c.tracer, "composer.trigger_dag_run",
		attribute.String(otelhelper.DAGIDKey, dagID),
		attribute.String(otelhelper.WebServerKey, c.baseURL),
	)
	defer span.End()

	requestURL := fmt.Sprintf("%s/api/v1/dags/%s/dagRuns", c.baseURL, url.PathEscape(dagID))

	resp, err := c.Do(ctx, http.MethodPost, requestURL, &RequestOptions{
		JSON: map[string]any{"conf": conf},
	})
	if err != nil {
		err = fmt.Errorf("dag run request failed: %w", err)
		otelhelper.SetError(span, err)

		return "", err
	}

	defer func() {
		_ = resp.Body.Close()
	}()

	span.SetAttributes(attribute.Int(otelhelper.StatusCodeKey, resp.StatusCode))

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		err = fmt.Errorf("failed to read response body: %w", err)
		otelhelper.SetError(span, err)

		return "", err
	}

	switch resp.StatusCode {
	case http.StatusForbidden:
		err := &PermissionError{Headers: resp.Header, Body: string(bodyBytes)}
		otelhelper.SetError(span, err)

		return "", err
	case http.StatusOK:
		c.logger.InfoContext(ctx, "DAG run created", "dag_id", dagID, "body_length", len(bodyBytes))

		return string(bodyBytes), nil
	default:
		err := &HTTPError{StatusCode: resp.StatusCode, Status: resp.Status}
		otelhelper.SetError(span, err)

		return "", err
	}
}
