package client

import (
	"context"
	"net/http"
)

// AuthHeader carries the session token. PlexTrac expects the raw token in the
// Authorization header, without a "Bearer" scheme.
type AuthHeader struct {
	Token string
}

// Header returns the header set attached to authenticated requests.
func (a AuthHeader) Header() http.Header {
	h := make(http.Header)
	h.Set("Authorization", a.Token)
	return h
}

// String keeps the token out of logs and error messages.
func (a AuthHeader) String() string {
	if a.Token == "" {
		return "Authorization: <none>"
	}
	return "Authorization: ****"
}

func (a AuthHeader) apply(req *http.Request) {
	if a.Token != "" {
		req.Header.Set("Authorization", a.Token)
	}
}

type authRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// AuthResponse is the body of a successful POST /authenticate.
type AuthResponse struct {
	Token      string `json:"token"`
	MFAEnabled bool   `json:"mfa_enabled"`
}

// Authenticate posts the credentials. When MFAEnabled is set on the result the
// returned token is only good for VerifyMFA.
func (c *Client) Authenticate(ctx context.Context, username, password string) (*AuthResponse, error) {
	var resp AuthResponse
	if err := c.postJSON(ctx, "/authenticate", nil, authRequest{Username: username, Password: password}, &resp); err != nil {
		return nil, err
	}
	if !resp.MFAEnabled && resp.Token == "" {
		return nil, ErrEmptyToken
	}
	return &resp, nil
}

type mfaRequest struct {
	Token string `json:"token"`
}

type mfaResponse struct {
	Token string `json:"token"`
}

// VerifyMFA exchanges a one-time code for a session token, authorising the
// call with the token handed out by Authenticate.
func (c *Client) VerifyMFA(ctx context.Context, pending AuthHeader, code string) (AuthHeader, error) {
	var resp mfaResponse
	if err := c.postJSON(ctx, "/authenticate/mfa", &pending, mfaRequest{Token: code}, &resp); err != nil {
		return AuthHeader{}, err
	}
	if resp.Token == "" {
		return AuthHeader{}, ErrEmptyToken
	}
	return AuthHeader{Token: resp.Token}, nil
}
