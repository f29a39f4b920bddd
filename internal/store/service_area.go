package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"area-directory/internal/models"

	"github.com/uptrace/bun"
)

type serviceAreaStore struct {
	db *bun.DB
}

func NewServiceAreaStore(db *bun.DB) ServiceAreaStore {
	return &serviceAreaStore{db: db}
}

// Insert persists a new service area. input.GeoJSON must already be
// validated, canonical polygon text; the database enforces the provider
// foreign key.
func (s *serviceAreaStore) Insert(ctx context.Context, providerID int64, input models.ServiceAreaInput) (*models.ServiceArea, error) {
	area := &models.ServiceArea{
		ProviderID: providerID,
		Name:       input.Name,
		Price:      input.Price,
	}

	_, err := s.db.NewInsert().
		Model(area).
		Value("geom", "ST_GeomFromGeoJSON(?)", input.GeoJSON).
		Exec(ctx)
	if err != nil {
		if isForeignKeyViolation(err) {
			return nil, ErrProviderRef
		}
		return nil, fmt.Errorf("insert service area: %w", err)
	}

	// Read back so the response carries the stored geometry's GeoJSON form.
	return s.Get(ctx, area.ID)
}

func (s *serviceAreaStore) Get(ctx context.Context, id int64) (*models.ServiceArea, error) {
	area := new(models.ServiceArea)
	err := selectAreas(s.db, area).
		Where("sa.id = ?", id).
		Scan(ctx)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get service area: %w", err)
	}
	return area, nil
}

func (s *serviceAreaStore) List(ctx context.Context, offset, limit int) ([]*models.ServiceArea, error) {
	areas := make([]*models.ServiceArea, 0)
	err := selectAreas(s.db, &areas).
		OrderExpr("sa.id ASC").
		Offset(offset).
		Limit(limit).
		Scan(ctx)
	if err != nil {
		return nil, fmt.Errorf("list service areas: %w", err)
	}
	return areas, nil
}

// Replace overwrites name, price and polygon. The owning provider never
// changes on update.
func (s *serviceAreaStore) Replace(ctx context.Context, id int64, input models.ServiceAreaInput) (*models.ServiceArea, error) {
	res, err := s.db.NewUpdate().
		Model((*models.ServiceArea)(nil)).
		Set("name = ?", input.Name).
		Set("price = ?", input.Price).
		Set("geom = ST_GeomFromGeoJSON(?)", input.GeoJSON).
		Where("id = ?", id).
		Exec(ctx)
	if err != nil {
		return nil, fmt.Errorf("update service area: %w", err)
	}
	if affected, _ := res.RowsAffected(); affected == 0 {
		return nil, ErrNotFound
	}
	return s.Get(ctx, id)
}

func (s *serviceAreaStore) Delete(ctx context.Context, id int64) (*models.ServiceArea, error) {
	var deleted *models.ServiceArea
	err := s.db.RunInTx(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
		area := new(models.ServiceArea)
		err := selectAreas(tx, area).
			Where("sa.id = ?", id).
			Scan(ctx)
		if errors.Is(err, sql.ErrNoRows) {
			return ErrNotFound
		}
		if err != nil {
			return fmt.Errorf("get service area: %w", err)
		}

		if _, err := tx.NewDelete().
			Model((*models.ServiceArea)(nil)).
			Where("id = ?", id).
			Exec(ctx); err != nil {
			return fmt.Errorf("delete service area: %w", err)
		}

		deleted = area
		return nil
	})
	if err != nil {
		return nil, err
	}
	return deleted, nil
}

// FindContaining returns every service area whose polygon covers the point
// (lon, lat), joined with its provider. ST_Covers keeps points on the
// polygon boundary in the result set.
func (s *serviceAreaStore) FindContaining(ctx context.Context, lon, lat float64) ([]models.SearchResult, error) {
	results := make([]models.SearchResult, 0)
	err := s.db.NewSelect().
		ColumnExpr("sa.name AS service_area_name").
		ColumnExpr("p.name AS provider_name").
		ColumnExpr("sa.price AS price").
		TableExpr("service_areas AS sa").
		Join("JOIN providers AS p ON p.id = sa.provider_id").
		Where("ST_Covers(sa.geom, ST_SetSRID(ST_MakePoint(?, ?), 4326))", lon, lat).
		OrderExpr("sa.id ASC").
		Scan(ctx, &results)
	if err != nil {
		return nil, fmt.Errorf("containment query: %w", err)
	}
	return results, nil
}
