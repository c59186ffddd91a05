// Package gcp resolves the ambient Google Cloud identity of the process.
package gcp

import (
	"context"
	"fmt"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
)

// DefaultAuthScope is the scope requested when the deployment does not
// override it.
const DefaultAuthScope = "https://www.googleapis.com/auth/cloud-platform"

// Credentials holds the identity resolved once at process start. The token
// source refreshes tokens internally and is safe for concurrent use, so a
// single value serves every request for the process lifetime.
type Credentials struct {
	scope string
	ts    oauth2.TokenSource
}

// NewCredentials resolves Application Default Credentials for the given
// scope. Call it once at startup and pass the result into the client.
func NewCredentials(ctx context.Context, scope string) (*Credentials, error) {
	creds, err := google.FindDefaultCredentials(ctx, scope)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve application default credentials: %w", err)
	}

	return &Credentials{scope: scope, ts: creds.TokenSource}, nil
}

// StaticCredentials wraps a fixed access token. Intended for tests and for
// local runs against a stubbed web server.
func StaticCredentials(token string) *Credentials {
	return &Credentials{
		ts: oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token}),
	}
}

// Scope returns the permission scope the credentials were resolved for.
func (c *Credentials) Scope() string {
	return c.scope
}

// TokenSource exposes the token source for transport wiring.
func (c *Credentials) TokenSource() oauth2.TokenSource {
	return c.ts
}
