package services

import (
	"context"

	"area-directory/internal/geojson"
	"area-directory/internal/models"
	"area-directory/internal/store"
)

type ServiceAreaService struct {
	store store.ServiceAreaStore
}

func NewServiceAreaService(st store.ServiceAreaStore) *ServiceAreaService {
	return &ServiceAreaService{store: st}
}

// Create validates the polygon text and persists the area under the given
// provider. Provider existence is not pre-checked here; the store's foreign
// key reports a missing provider as store.ErrProviderRef.
func (s *ServiceAreaService) Create(ctx context.Context, providerID int64, input models.ServiceAreaInput) (*models.ServiceArea, error) {
	polygon, err := geojson.ParsePolygon(input.GeoJSON)
	if err != nil {
		return nil, err
	}
	input.GeoJSON = polygon.Encode()
	return s.store.Insert(ctx, providerID, input)
}

func (s *ServiceAreaService) Get(ctx context.Context, id int64) (*models.ServiceArea, error) {
	return s.store.Get(ctx, id)
}

func (s *ServiceAreaService) List(ctx context.Context, offset, limit int) ([]*models.ServiceArea, error) {
	return s.store.List(ctx, offset, limit)
}

// Update replaces name, price and polygon; the replacement polygon goes
// through the same validation as on create before anything is written.
func (s *ServiceAreaService) Update(ctx context.Context, id int64, input models.ServiceAreaInput) (*models.ServiceArea, error) {
	polygon, err := geojson.ParsePolygon(input.GeoJSON)
	if err != nil {
		return nil, err
	}
	input.GeoJSON = polygon.Encode()
	return s.store.Replace(ctx, id, input)
}

func (s *ServiceAreaService) Delete(ctx context.Context, id int64) (*models.ServiceArea, error) {
	return s.store.Delete(ctx, id)
}
