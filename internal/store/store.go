// Package store persists providers and service areas in Postgres/PostGIS
// through bun. Polygons are written with ST_GeomFromGeoJSON and read back
// with ST_AsGeoJSON; containment uses ST_Covers so boundary points count
// as covered.
package store

import (
	"context"
	"errors"

	"area-directory/internal/models"

	"github.com/uptrace/bun"
	"github.com/uptrace/bun/driver/pgdriver"
)

var (
	// ErrNotFound is returned when the requested entity id does not exist.
	ErrNotFound = errors.New("not found")
	// ErrProviderRef is returned when a service area references a
	// nonexistent provider.
	ErrProviderRef = errors.New("provider does not exist")
)

// SQLSTATE for foreign_key_violation
const pgForeignKeyViolation = "23503"

type ProviderStore interface {
	Insert(ctx context.Context, input models.ProviderInput) (*models.Provider, error)
	Get(ctx context.Context, id int64) (*models.Provider, error)
	List(ctx context.Context, offset, limit int) ([]*models.Provider, error)
	Replace(ctx context.Context, id int64, input models.ProviderInput) (*models.Provider, error)
	Delete(ctx context.Context, id int64) (*models.Provider, error)
}

type ServiceAreaStore interface {
	Insert(ctx context.Context, providerID int64, input models.ServiceAreaInput) (*models.ServiceArea, error)
	Get(ctx context.Context, id int64) (*models.ServiceArea, error)
	List(ctx context.Context, offset, limit int) ([]*models.ServiceArea, error)
	Replace(ctx context.Context, id int64, input models.ServiceAreaInput) (*models.ServiceArea, error)
	Delete(ctx context.Context, id int64) (*models.ServiceArea, error)
	FindContaining(ctx context.Context, lon, lat float64) ([]models.SearchResult, error)
}

func isForeignKeyViolation(err error) bool {
	var pgErr pgdriver.Error
	return errors.As(err, &pgErr) && pgErr.Field('C') == pgForeignKeyViolation
}

// selectAreas builds the service-area select with the geometry converted
// back to GeoJSON text.
func selectAreas(db bun.IDB, areas any) *bun.SelectQuery {
	return db.NewSelect().
		Model(areas).
		ColumnExpr("sa.id, sa.provider_id, sa.name, sa.price").
		ColumnExpr("ST_AsGeoJSON(sa.geom) AS geojson")
}
