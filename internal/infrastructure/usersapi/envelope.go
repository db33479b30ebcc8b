package usersapi

import (
	"encoding/json"
	"fmt"

	"github.com/jass-platform/distribution-service/internal/core/domain"
)

// envelope is the users service's standard response wrapper. Items stay raw
// so callers decide whether (and how strictly) to decode them. Unknown
// fields at any level are dropped, never rejected: the upstream schema may
// grow at any time.
type envelope struct {
	Success bool              `json:"success"`
	Message string            `json:"message"`
	Data    []json.RawMessage `json:"data"`
}

func decodeEnvelope(body []byte) (envelope, error) {
	var env envelope
	if err := json.Unmarshal(body, &env); err != nil {
		return envelope{}, fmt.Errorf("%w: %v", domain.ErrMapping, err)
	}
	return env, nil
}

// decodeAdmin converts a raw envelope item into the strict AdminUser type.
// A structural mismatch (wrong type for a known field) is a permanent
// mapping failure, never retried.
func decodeAdmin(raw json.RawMessage) (domain.AdminUser, error) {
	var admin domain.AdminUser
	if err := json.Unmarshal(raw, &admin); err != nil {
		return domain.AdminUser{}, fmt.Errorf("%w: %v", domain.ErrMapping, err)
	}
	return admin, nil
}
