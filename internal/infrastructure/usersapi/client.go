package usersapi

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/jass-platform/distribution-service/internal/api/metrics"
	"github.com/jass-platform/distribution-service/internal/core/domain"
)

const (
	defaultConnectTimeout = 5 * time.Second
	defaultReadTimeout    = 10 * time.Second
)

// Config captures the settings for talking to the users service.
// It is built once at startup and never mutated.
type Config struct {
	BaseURL string

	// Path templates with {organizationId} / {userId} placeholders.
	AdminsPath   string
	UsersPath    string
	ClientsPath  string
	UserByIDPath string

	// ConnectTimeout bounds connection establishment; ReadTimeout bounds the
	// whole request including response body.
	ConnectTimeout time.Duration
	ReadTimeout    time.Duration

	// MaxAttempts is the total number of attempts (initial + retries) for
	// retryable calls. RetryBaseDelay is the first backoff interval.
	MaxAttempts    int
	RetryBaseDelay time.Duration

	Credential Credential
}

// StatusError reports a non-2xx upstream response. It is kept distinct from
// network-level failures so callers can branch on the status code.
type StatusError struct {
	Code int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("users api responded with status %d", e.Code)
}

// Unwrap classifies every status failure as an upstream failure, so
// errors.Is(err, domain.ErrUpstream) holds without losing the code.
func (e *StatusError) Unwrap() error { return domain.ErrUpstream }

// asStatus reports whether err is a StatusError with the given code.
func asStatus(err error, code int) bool {
	var se *StatusError
	return errors.As(err, &se) && se.Code == code
}

// client is the configured HTTP transport for the users service: base URL,
// independent connect/read timeouts, JSON headers, credential injection.
type client struct {
	base string
	cred Credential
	http *http.Client
}

func newClient(cfg Config) *client {
	connect := cfg.ConnectTimeout
	if connect <= 0 {
		connect = defaultConnectTimeout
	}
	read := cfg.ReadTimeout
	if read <= 0 {
		read = defaultReadTimeout
	}

	cred := cfg.Credential
	if cred == nil {
		cred = Anonymous{}
	}

	return &client{
		base: strings.TrimRight(cfg.BaseURL, "/"),
		cred: cred,
		http: &http.Client{
			Timeout: read,
			Transport: &http.Transport{
				DialContext: (&net.Dialer{Timeout: connect}).DialContext,
			},
		},
	}
}

// get issues a GET against base+path and returns the raw response body.
// endpoint is the logical name used as the metrics label.
func (c *client) get(ctx context.Context, endpoint, path string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.base+path, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrUpstream, err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	c.cred.Apply(req)

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		metrics.UpstreamRequestsTotal.WithLabelValues(endpoint, "network_error").Inc()
		return nil, fmt.Errorf("%w: %v", domain.ErrUpstream, err)
	}
	defer resp.Body.Close()

	metrics.UpstreamRequestDuration.WithLabelValues(endpoint).Observe(time.Since(start).Seconds())

	if resp.StatusCode >= http.StatusBadRequest {
		_, _ = io.Copy(io.Discard, resp.Body)
		metrics.UpstreamRequestsTotal.WithLabelValues(endpoint, strconv.Itoa(resp.StatusCode)).Inc()
		return nil, &StatusError{Code: resp.StatusCode}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		metrics.UpstreamRequestsTotal.WithLabelValues(endpoint, "read_error").Inc()
		return nil, fmt.Errorf("%w: %v", domain.ErrUpstream, err)
	}
	metrics.UpstreamRequestsTotal.WithLabelValues(endpoint, "ok").Inc()
	return body, nil
}

// expandPath substitutes a single {placeholder} in a path template.
func expandPath(template, placeholder, value string) string {
	return strings.ReplaceAll(template, "{"+placeholder+"}", url.PathEscape(value))
}
