package gcp_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Harshshah2306/composer-trigger/pkg/gcp"
)

func TestStaticCredentials(t *testing.T) {
	t.Parallel()

	creds := gcp.StaticCredentials("test-token")

	token, err := creds.TokenSource().Token()
	require.NoError(t, err)

	assert.Equal(t, "test-token", token.AccessToken)
	assert.Empty(t, creds.Scope())
}

func TestDefaultAuthScope(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "https://www.googleapis.com/auth/cloud-platform", gcp.DefaultAuthScope)
}
