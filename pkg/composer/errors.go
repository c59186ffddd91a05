package composer

import (
	"fmt"
	"net/http"
)

// permissionHint is the fixed operator guidance attached to 403 responses
// from the Airflow web server.
const permissionHint = "You do not have a permission to perform this operation. " +
	"Check Airflow RBAC roles for your account."

// PermissionError reports a 403 from the web server. It carries the raw
// response headers and body so the operator can diagnose the missing RBAC
// role without replaying the request.
type PermissionError struct {
	Headers http.Header
	Body    string
}

func (e *PermissionError) Error() string {
	return fmt.Sprintf("%s%v / %s", permissionHint, e.Headers, e.Body)
}

// HTTPError reports any non-200, non-403 status from the web server,
// identifying the status code and reason phrase.
type HTTPError struct {
	StatusCode int
	Status     string
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("dag run request failed: %s", e.Status)
}
