package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"area-directory/internal/models"

	"github.com/uptrace/bun"
)

type providerStore struct {
	db *bun.DB
}

func NewProviderStore(db *bun.DB) ProviderStore {
	return &providerStore{db: db}
}

func (s *providerStore) Insert(ctx context.Context, input models.ProviderInput) (*models.Provider, error) {
	provider := &models.Provider{
		Name:         input.Name,
		Email:        input.Email,
		PhoneNumber:  input.PhoneNumber,
		Language:     input.Language,
		Currency:     input.Currency,
		ServiceAreas: []*models.ServiceArea{},
	}

	if _, err := s.db.NewInsert().Model(provider).Exec(ctx); err != nil {
		return nil, fmt.Errorf("insert provider: %w", err)
	}
	return provider, nil
}

func (s *providerStore) Get(ctx context.Context, id int64) (*models.Provider, error) {
	return getProvider(ctx, s.db, id)
}

func (s *providerStore) List(ctx context.Context, offset, limit int) ([]*models.Provider, error) {
	providers := make([]*models.Provider, 0)
	err := s.db.NewSelect().
		Model(&providers).
		OrderExpr("p.id ASC").
		Offset(offset).
		Limit(limit).
		Scan(ctx)
	if err != nil {
		return nil, fmt.Errorf("list providers: %w", err)
	}

	if err := attachServiceAreas(ctx, s.db, providers); err != nil {
		return nil, err
	}
	return providers, nil
}

func (s *providerStore) Replace(ctx context.Context, id int64, input models.ProviderInput) (*models.Provider, error) {
	res, err := s.db.NewUpdate().
		Model((*models.Provider)(nil)).
		Set("name = ?", input.Name).
		Set("email = ?", input.Email).
		Set("phone_number = ?", input.PhoneNumber).
		Set("language = ?", input.Language).
		Set("currency = ?", input.Currency).
		Where("id = ?", id).
		Exec(ctx)
	if err != nil {
		return nil, fmt.Errorf("update provider: %w", err)
	}
	if affected, _ := res.RowsAffected(); affected == 0 {
		return nil, ErrNotFound
	}
	return s.Get(ctx, id)
}

// Delete removes the provider and, via ON DELETE CASCADE, all of its
// service areas. The deleted provider (with its areas) is returned.
func (s *providerStore) Delete(ctx context.Context, id int64) (*models.Provider, error) {
	var deleted *models.Provider
	err := s.db.RunInTx(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
		provider, err := getProvider(ctx, tx, id)
		if err != nil {
			return err
		}

		if _, err := tx.NewDelete().
			Model((*models.Provider)(nil)).
			Where("id = ?", id).
			Exec(ctx); err != nil {
			return fmt.Errorf("delete provider: %w", err)
		}

		deleted = provider
		return nil
	})
	if err != nil {
		return nil, err
	}
	return deleted, nil
}

func getProvider(ctx context.Context, db bun.IDB, id int64) (*models.Provider, error) {
	provider := new(models.Provider)
	err := db.NewSelect().
		Model(provider).
		Where("p.id = ?", id).
		Scan(ctx)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get provider: %w", err)
	}

	if err := attachServiceAreas(ctx, db, []*models.Provider{provider}); err != nil {
		return nil, err
	}
	return provider, nil
}

// attachServiceAreas loads the owned areas for each provider in one query.
// Separate from the provider select because the geometry column has to go
// through ST_AsGeoJSON.
func attachServiceAreas(ctx context.Context, db bun.IDB, providers []*models.Provider) error {
	for _, p := range providers {
		p.ServiceAreas = []*models.ServiceArea{}
	}
	if len(providers) == 0 {
		return nil
	}

	ids := make([]int64, 0, len(providers))
	byID := make(map[int64]*models.Provider, len(providers))
	for _, p := range providers {
		ids = append(ids, p.ID)
		byID[p.ID] = p
	}

	areas := make([]*models.ServiceArea, 0)
	err := selectAreas(db, &areas).
		Where("sa.provider_id IN (?)", bun.In(ids)).
		OrderExpr("sa.id ASC").
		Scan(ctx)
	if err != nil {
		return fmt.Errorf("load service areas: %w", err)
	}

	for _, area := range areas {
		owner := byID[area.ProviderID]
		owner.ServiceAreas = append(owner.ServiceAreas, area)
	}
	return nil
}
