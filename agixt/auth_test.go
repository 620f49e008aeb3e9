package agixt

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoginStoresToken(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/v1/login", r.URL.Path)

		body := decodeBody(t, r)
		assert.Equal(t, "user@example.com", body["email"])
		assert.Equal(t, "123456", body["token"])

		w.Write([]byte(`{"detail":"http://localhost:8501?token=issued-jwt"}`))
	}))

	token, err := c.Auth.Login(context.Background(), "user@example.com", "123456")
	require.NoError(t, err)
	assert.Equal(t, "issued-jwt", token)
	assert.Equal(t, "issued-jwt", c.Token())
}

func TestLoginNoTokenInResponse(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"detail":"invalid code"}`))
	}))

	_, err := c.Auth.Login(context.Background(), "user@example.com", "000000")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "no token")
}

func TestRegisterReturnsOTPURI(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/v1/user", r.URL.Path)
		body := decodeBody(t, r)
		assert.Equal(t, "new@example.com", body["email"])
		assert.Equal(t, "Ada", body["first_name"])
		assert.Equal(t, "Lovelace", body["last_name"])

		w.Write([]byte(`{"otp_uri":"otpauth://totp/AGiXT:new@example.com?secret=ABC"}`))
	}))

	uri, err := c.Auth.Register(context.Background(), "new@example.com", "Ada", "Lovelace")
	require.NoError(t, err)
	assert.Contains(t, uri, "otpauth://totp")
}

func TestUserExists(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/v1/user/exists", r.URL.Path)
		assert.Equal(t, "who@example.com", r.URL.Query().Get("email"))
		w.Write([]byte(`true`))
	}))

	exists, err := c.Auth.UserExists(context.Background(), "who@example.com")
	require.NoError(t, err)
	assert.True(t, exists)
}

func TestGetAndUpdateUser(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/v1/user", r.URL.Path)
		switch r.Method {
		case http.MethodGet:
			w.Write([]byte(`{"email":"user@example.com","first_name":"Ada"}`))
		case http.MethodPut:
			body := decodeBody(t, r)
			assert.Equal(t, "Byron", body["last_name"])
			w.Write([]byte(`{"detail":"User updated successfully"}`))
		}
	}))

	user, err := c.Auth.User(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "user@example.com", user["email"])

	detail, err := c.Auth.UpdateUser(context.Background(), map[string]any{"last_name": "Byron"})
	require.NoError(t, err)
	assert.Equal(t, "User updated successfully", detail)
}

func TestOAuth2Login(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/v1/oauth2/google", r.URL.Path)

		body := decodeBody(t, r)
		assert.Equal(t, "auth-code", body["code"])
		assert.Equal(t, "http://localhost:3000", body["referrer"])

		w.Write([]byte(`{"detail":"http://localhost:8501?token=oauth-jwt"}`))
	}))

	detail, err := c.Auth.OAuth2Login(context.Background(), "google", "auth-code", "http://localhost:3000")
	require.NoError(t, err)
	assert.Contains(t, detail, "token=oauth-jwt")
	assert.Equal(t, "oauth-jwt", c.Token())
}

func TestTokenFromMagicLink(t *testing.T) {
	tests := []struct {
		link string
		want string
	}{
		{"http://localhost:8501?token=abc", "abc"},
		{"http://localhost:8501?token=abc&next=/home", "abc"},
		{"no token here", ""},
		{"", ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, tokenFromMagicLink(tt.link), tt.link)
	}
}
