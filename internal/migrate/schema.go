package migrate

import (
	"context"

	"github.com/uptrace/bun"
)

// EnsureSchema creates the PostGIS extension, both entity tables and their
// indexes. Every statement uses IF NOT EXISTS so the command is safe to
// re-run against an existing database.
func EnsureSchema(ctx context.Context, db *bun.DB) error {
	stmts := []string{
		`CREATE EXTENSION IF NOT EXISTS postgis`,
		`CREATE TABLE IF NOT EXISTS providers (
			id BIGSERIAL PRIMARY KEY,
			name TEXT NOT NULL,
			email TEXT NOT NULL,
			phone_number TEXT NOT NULL,
			language TEXT NOT NULL,
			currency TEXT NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS service_areas (
			id BIGSERIAL PRIMARY KEY,
			provider_id BIGINT NOT NULL REFERENCES providers(id) ON DELETE CASCADE,
			name TEXT NOT NULL,
			price DOUBLE PRECISION NOT NULL CHECK (price >= 0),
			geom geometry(Polygon, 4326) NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_service_areas_provider ON service_areas(provider_id)`,
		`CREATE INDEX IF NOT EXISTS idx_service_areas_geom ON service_areas USING GIST (geom)`,
	}

	for _, s := range stmts {
		if _, err := db.ExecContext(ctx, s); err != nil {
			return err
		}
	}
	return nil
}
