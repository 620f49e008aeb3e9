package agixt

import (
	"context"
	"fmt"
	"strings"
)

// AuthService covers user registration, login, and OAuth2 token exchange.
// Login and Register store the issued token on the client, so subsequent
// calls on the same client are made as the authenticated user.
type AuthService struct {
	client *Client
}

// Login exchanges an email and a TOTP code for an API token. The server
// responds with a magic link carrying the token as a query parameter; the
// token is extracted, stored on the client, and returned.
func (s *AuthService) Login(ctx context.Context, email, otp string) (string, error) {
	body := map[string]string{"email": email, "token": otp}
	var resp struct {
		Detail string `json:"detail"`
	}
	if err := s.client.post(ctx, "/v1/login", body, &resp); err != nil {
		return "", err
	}
	token := tokenFromMagicLink(resp.Detail)
	if token == "" {
		return "", fmt.Errorf("login response contained no token: %s", resp.Detail)
	}
	s.client.SetToken(token)
	return token, nil
}

// Register creates a new user account and returns the OTP provisioning URI
// for the user's authenticator app. Complete the flow by generating a code
// from the URI and calling Login.
func (s *AuthService) Register(ctx context.Context, email, firstName, lastName string) (string, error) {
	body := map[string]string{
		"email":      email,
		"first_name": firstName,
		"last_name":  lastName,
	}
	var resp struct {
		OTPURI string `json:"otp_uri"`
		Detail string `json:"detail"`
	}
	if err := s.client.post(ctx, "/v1/user", body, &resp); err != nil {
		return "", err
	}
	if token := tokenFromMagicLink(resp.Detail); token != "" {
		s.client.SetToken(token)
	}
	return resp.OTPURI, nil
}

// UserExists reports whether an account exists for the given email.
func (s *AuthService) UserExists(ctx context.Context, email string) (bool, error) {
	var exists bool
	endpoint := "/v1/user/exists?email=" + queryEscape(email)
	if err := s.client.get(ctx, endpoint, nil, &exists); err != nil {
		return false, err
	}
	return exists, nil
}

// User returns the authenticated user's profile fields.
func (s *AuthService) User(ctx context.Context) (map[string]any, error) {
	var user map[string]any
	if err := s.client.get(ctx, "/v1/user", nil, &user); err != nil {
		return nil, err
	}
	return user, nil
}

// UpdateUser updates profile fields on the authenticated user.
func (s *AuthService) UpdateUser(ctx context.Context, fields map[string]any) (string, error) {
	var resp struct {
		Detail string `json:"detail"`
	}
	if err := s.client.put(ctx, "/v1/user", fields, &resp); err != nil {
		return "", err
	}
	return resp.Detail, nil
}

// OAuth2Login completes a third-party OAuth2 flow by sending the provider's
// authorization code to the server. When the server responds with a magic
// link, the embedded token is stored on the client.
func (s *AuthService) OAuth2Login(ctx context.Context, provider, code, referrer string) (string, error) {
	body := map[string]string{"code": code}
	if referrer != "" {
		body["referrer"] = referrer
	}
	var resp struct {
		Detail string `json:"detail"`
	}
	if err := s.client.post(ctx, "/v1/oauth2/"+pathEscape(provider), body, &resp); err != nil {
		return "", err
	}
	if token := tokenFromMagicLink(resp.Detail); token != "" {
		s.client.SetToken(token)
	}
	return resp.Detail, nil
}

// tokenFromMagicLink pulls the token query parameter out of a magic-link
// URL like http://localhost:8501?token=abc. Returns "" when absent.
func tokenFromMagicLink(link string) string {
	idx := strings.Index(link, "token=")
	if idx < 0 {
		return ""
	}
	token := link[idx+len("token="):]
	if amp := strings.IndexByte(token, '&'); amp >= 0 {
		token = token[:amp]
	}
	return strings.TrimSpace(token)
}
