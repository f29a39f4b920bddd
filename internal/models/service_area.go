package models

import (
	"github.com/uptrace/bun"
)

// ServiceArea represents a named, priced coverage polygon belonging to
// exactly one provider. The polygon is stored as PostGIS
// geometry(Polygon,4326); GeoJSON carries its ST_AsGeoJSON form and is
// never written directly.
type ServiceArea struct {
	bun.BaseModel `bun:"table:service_areas,alias:sa"`

	ID         int64   `bun:"id,pk,autoincrement" json:"id"`
	ProviderID int64   `bun:"provider_id,notnull" json:"provider_id"`
	Name       string  `bun:"name,notnull" json:"name"`
	Price      float64 `bun:"price,notnull" json:"price"`
	GeoJSON    string  `bun:"geojson,scanonly" json:"geojson"`
}

// ServiceAreaInput is the full-replacement payload for create and update.
// GeoJSON is the raw polygon text; it is validated before any store call.
type ServiceAreaInput struct {
	Name    string  `json:"name"`
	Price   float64 `json:"price"`
	GeoJSON string  `json:"geojson"`
}

// SearchResult is one row of the containment query: a service area whose
// polygon covers the requested point, joined with its provider.
type SearchResult struct {
	ServiceAreaName string  `bun:"service_area_name" json:"service_area_name"`
	ProviderName    string  `bun:"provider_name" json:"provider_name"`
	Price           float64 `bun:"price" json:"price"`
}
