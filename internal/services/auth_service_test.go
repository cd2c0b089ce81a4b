package services

import (
	"testing"

	"github.com/localnerve/workout-tracker/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateSession_NotInitialized(t *testing.T) {
	if IsAuthorizerInitialized() {
		t.Skip("authorizer client already initialized")
	}
	_, err := ValidateSession("cookie", []string{"user"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not initialized")
}

func TestInitAuthorizer_Unreachable(t *testing.T) {
	cfg := &config.Config{AuthzURL: "http://127.0.0.1:1", AuthzClientID: "client"}

	err := InitAuthorizer(cfg, "http", "localhost:3000")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "ping failed")
	assert.False(t, IsAuthorizerInitialized())

	// a failed attempt is not cached
	err = InitAuthorizer(cfg, "http", "localhost:3000")
	assert.Error(t, err)
}
