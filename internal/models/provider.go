package models

import (
	"github.com/uptrace/bun"
)

// Provider represents a business offering services inside one or more
// coverage polygons.
type Provider struct {
	bun.BaseModel `bun:"table:providers,alias:p"`

	ID          int64  `bun:"id,pk,autoincrement" json:"id"`
	Name        string `bun:"name,notnull" json:"name"`
	Email       string `bun:"email,notnull" json:"email"`
	PhoneNumber string `bun:"phone_number,notnull" json:"phone_number"`
	Language    string `bun:"language,notnull" json:"language"`
	Currency    string `bun:"currency,notnull" json:"currency"`

	// Owned coverage areas, loaded separately (geometry needs ST_AsGeoJSON)
	ServiceAreas []*ServiceArea `bun:"-" json:"service_areas"`
}

// ProviderInput is the full-replacement payload for create and update.
type ProviderInput struct {
	Name        string `json:"name"`
	Email       string `json:"email"`
	PhoneNumber string `json:"phone_number"`
	Language    string `json:"language"`
	Currency    string `json:"currency"`
}
