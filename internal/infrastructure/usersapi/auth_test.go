package usersapi

import (
	"encoding/base64"
	"net/http"
	"testing"
)

func newRequest(t *testing.T) *http.Request {
	t.Helper()
	req, err := http.NewRequest(http.MethodGet, "http://users.internal/admins", nil)
	if err != nil {
		t.Fatalf("building request: %v", err)
	}
	return req
}

func TestBearerToken_Apply(t *testing.T) {
	req := newRequest(t)
	BearerToken("abc").Apply(req)
	if got := req.Header.Get("Authorization"); got != "Bearer abc" {
		t.Fatalf("expected 'Bearer abc', got %q", got)
	}
}

func TestBearerToken_EmptyAddsNothing(t *testing.T) {
	req := newRequest(t)
	BearerToken("").Apply(req)
	if got := req.Header.Get("Authorization"); got != "" {
		t.Fatalf("empty token must not add a header, got %q", got)
	}
}

func TestAPIKey_Apply(t *testing.T) {
	req := newRequest(t)
	APIKey("k-123").Apply(req)
	if got := req.Header.Get("X-API-Key"); got != "k-123" {
		t.Fatalf("expected api key header, got %q", got)
	}
	if req.Header.Get("Authorization") != "" {
		t.Fatalf("api key scheme must not touch Authorization")
	}
}

func TestAPIKey_EmptyAddsNothing(t *testing.T) {
	req := newRequest(t)
	APIKey("").Apply(req)
	if len(req.Header) != 0 {
		t.Fatalf("empty key must not add headers: %v", req.Header)
	}
}

func TestBasicAuth_Apply(t *testing.T) {
	req := newRequest(t)
	BasicAuth{Username: "svc", Password: "hunter2"}.Apply(req)
	want := "Basic " + base64.StdEncoding.EncodeToString([]byte("svc:hunter2"))
	if got := req.Header.Get("Authorization"); got != want {
		t.Fatalf("expected %q, got %q", want, got)
	}
}

func TestBasicAuth_EmptyUsernameAddsNothing(t *testing.T) {
	req := newRequest(t)
	BasicAuth{Password: "orphaned"}.Apply(req)
	if got := req.Header.Get("Authorization"); got != "" {
		t.Fatalf("missing username must disable basic auth, got %q", got)
	}
}

func TestAnonymous_Apply(t *testing.T) {
	req := newRequest(t)
	Anonymous{}.Apply(req)
	if len(req.Header) != 0 {
		t.Fatalf("anonymous must not add headers: %v", req.Header)
	}
}

func TestCredentialFor(t *testing.T) {
	cases := []struct {
		scheme     string
		wantHeader string
		wantValue  string
		configured bool
	}{
		{"bearer", "Authorization", "Bearer tok", true},
		{"Bearer", "Authorization", "Bearer tok", true}, // scheme is case-insensitive
		{"apikey", "X-API-Key", "key", true},
		{"basic", "Authorization", "Basic " + base64.StdEncoding.EncodeToString([]byte("user:pass")), true},
		{"none", "", "", false},
		{"totp", "", "", false}, // unknown scheme behaves as none
	}

	for _, tc := range cases {
		t.Run(tc.scheme, func(t *testing.T) {
			cred := CredentialFor(tc.scheme, "tok", "key", "user", "pass")
			if cred.Configured() != tc.configured {
				t.Fatalf("Configured() = %v, want %v", cred.Configured(), tc.configured)
			}

			req := newRequest(t)
			cred.Apply(req)
			if tc.wantHeader == "" {
				if len(req.Header) != 0 {
					t.Fatalf("expected no headers, got %v", req.Header)
				}
				return
			}
			if got := req.Header.Get(tc.wantHeader); got != tc.wantValue {
				t.Fatalf("header %s = %q, want %q", tc.wantHeader, got, tc.wantValue)
			}
		})
	}
}

func TestCredentialFor_InactiveSchemeCredentialsIgnored(t *testing.T) {
	// Only the active scheme's secret matters: bearer with an empty token is
	// unconfigured even when api key and basic credentials are present.
	cred := CredentialFor("bearer", "", "key", "user", "pass")
	if cred.Configured() {
		t.Fatalf("bearer without token must be unconfigured")
	}
	req := newRequest(t)
	cred.Apply(req)
	if len(req.Header) != 0 {
		t.Fatalf("expected unauthenticated request, got %v", req.Header)
	}
}
