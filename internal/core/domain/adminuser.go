package domain

import (
	"encoding/json"
	"errors"
)

// Errors raised while talking to the users service. They carry the
// HTTP-facing classification; the API error handler maps them to codes.
var (
	ErrOrganizationNotFound = errors.New("organization not found")
	ErrAdminNotFound        = errors.New("admin not found or not authorized")
	ErrMapping              = errors.New("failed to map upstream record")
	ErrUpstream             = errors.New("users service unavailable")
)

// RawRecord is a loosely-typed upstream record passed through to the caller
// without interpretation. The users service owns its shape.
type RawRecord = json.RawMessage

// AdminUser is an administrator record as reported by the users service.
// All fields arrive as free-form strings; no local validation is applied.
// Unknown upstream fields are dropped during decoding, never rejected.
type AdminUser struct {
	ID             string   `json:"id"`
	UserCode       string   `json:"userCode"`
	FirstName      string   `json:"firstName"`
	LastName       string   `json:"lastName"`
	DocumentType   string   `json:"documentType"`
	DocumentNumber string   `json:"documentNumber"`
	Email          string   `json:"email"`
	Phone          string   `json:"phone"`
	Address        string   `json:"address"`
	Roles          []string `json:"roles"`
	Status         string   `json:"status"`
	CreatedAt      string   `json:"createdAt"`
	UpdatedAt      string   `json:"updatedAt"`

	// Optional nested records; presence is not guaranteed.
	Organization *OrganizationInfo `json:"organization,omitempty"`
	Zone         *ZoneInfo         `json:"zone,omitempty"`
	Street       *StreetInfo       `json:"street,omitempty"`
}

// OrganizationInfo is the organization summary nested in an AdminUser.
type OrganizationInfo struct {
	OrganizationID      string `json:"organizationId"`
	OrganizationCode    string `json:"organizationCode"`
	OrganizationName    string `json:"organizationName"`
	LegalRepresentative string `json:"legalRepresentative"`
	Phone               string `json:"phone"`
	Address             string `json:"address"`
	Status              string `json:"status"`
}

// ZoneInfo is the zone summary nested in an AdminUser.
type ZoneInfo struct {
	ZoneID      string `json:"zoneId"`
	ZoneCode    string `json:"zoneCode"`
	Description string `json:"description"`
	ZoneName    string `json:"zoneName"`
	Status      string `json:"status"`
}

// StreetInfo is the street summary nested in an AdminUser.
type StreetInfo struct {
	StreetID   string `json:"streetId"`
	StreetCode string `json:"streetCode"`
	StreetName string `json:"streetName"`
	StreetType string `json:"streetType"`
	Status     string `json:"status"`
}
