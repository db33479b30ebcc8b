package usersapi

import (
	"net/http"
	"strings"
)

// Credential is one authentication scheme for outgoing users-service
// requests. Apply is a pure transform: it never blocks and never fails.
// A credential whose required secret is empty leaves the request untouched,
// so the call proceeds unauthenticated and the upstream decides.
type Credential interface {
	Apply(req *http.Request)
	// Configured reports whether the scheme's required secret is present.
	// Advisory only (health reporting); it never blocks a call.
	Configured() bool
}

// BearerToken sends "Authorization: Bearer <token>".
type BearerToken string

func (t BearerToken) Apply(req *http.Request) {
	if t != "" {
		req.Header.Set("Authorization", "Bearer "+string(t))
	}
}

func (t BearerToken) Configured() bool { return t != "" }

// APIKey sends "X-API-Key: <key>".
type APIKey string

func (k APIKey) Apply(req *http.Request) {
	if k != "" {
		req.Header.Set("X-API-Key", string(k))
	}
}

func (k APIKey) Configured() bool { return k != "" }

// BasicAuth sends "Authorization: Basic <base64(username:password)>".
// An empty username disables the scheme; an empty password does not.
type BasicAuth struct {
	Username string
	Password string
}

func (b BasicAuth) Apply(req *http.Request) {
	if b.Username != "" {
		req.SetBasicAuth(b.Username, b.Password)
	}
}

func (b BasicAuth) Configured() bool { return b.Username != "" }

// Anonymous adds no headers.
type Anonymous struct{}

func (Anonymous) Apply(*http.Request) {}

func (Anonymous) Configured() bool { return false }

// CredentialFor selects the credential for the configured scheme. Unknown
// schemes fall back to Anonymous; credentials of inactive schemes are
// ignored.
func CredentialFor(scheme, token, apiKey, username, password string) Credential {
	switch strings.ToLower(scheme) {
	case "bearer":
		return BearerToken(token)
	case "apikey":
		return APIKey(apiKey)
	case "basic":
		return BasicAuth{Username: username, Password: password}
	default:
		return Anonymous{}
	}
}
