package handlers

import (
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenRoundTrip(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	token, err := generateToken(42)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	userID, err := verifyToken(token)
	require.NoError(t, err)
	assert.Equal(t, 42, userID)
}

func TestVerifyToken_WrongSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	token, err := generateToken(42)
	require.NoError(t, err)

	t.Setenv("JWT_SECRET", "another-secret")
	_, err = verifyToken(token)
	assert.Error(t, err)
}

func TestVerifyToken_Garbage(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	_, err := verifyToken("not.a.token")
	assert.Error(t, err)
}

func TestAuthenticateRequest(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	token, err := generateToken(7)
	require.NoError(t, err)

	tests := []struct {
		name       string
		header     string
		wantUserID int
		wantErr    bool
	}{
		{name: "valid bearer token", header: "Bearer " + token, wantUserID: 7},
		{name: "missing header", header: "", wantErr: true},
		{name: "missing bearer prefix", header: token, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := httptest.NewRequest("GET", "/users/user", nil)
			if tt.header != "" {
				r.Header.Set("Authorization", tt.header)
			}

			userID, err := authenticateRequest(r)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.wantUserID, userID)
			}
		})
	}
}
