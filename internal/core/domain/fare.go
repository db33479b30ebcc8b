package domain

import (
	"errors"
	"time"
)

// FareStatus represents the lifecycle state of a fare record.
type FareStatus string

const (
	FareStatusActive   FareStatus = "ACTIVE"
	FareStatusInactive FareStatus = "INACTIVE"
)

var ErrFareNotFound = errors.New("fare not found")
var ErrFareCodeExists = errors.New("fare code already exists")

// Fare is a billing tariff owned by a single organization. Organizations
// themselves live in the external users service; only their id is stored here.
type Fare struct {
	ID             string     `json:"id" bson:"_id,omitempty"`
	OrganizationID string     `json:"organization_id" bson:"organizationId"`
	FareCode       string     `json:"fare_code" bson:"fareCode"`
	FareName       string     `json:"fare_name" bson:"fareName"`
	FareType       string     `json:"fare_type" bson:"fareType"`
	FareAmount     float64    `json:"fare_amount" bson:"fareAmount"`
	Status         FareStatus `json:"status" bson:"status"`
	CreatedAt      time.Time  `json:"created_at" bson:"createdAt"`
}
