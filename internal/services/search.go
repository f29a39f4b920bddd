package services

import (
	"context"

	"area-directory/internal/models"
	"area-directory/internal/store"
)

type SearchService struct {
	store store.ServiceAreaStore
}

func NewSearchService(st store.ServiceAreaStore) *SearchService {
	return &SearchService{store: st}
}

// Search returns every service area covering the point (lon, lat), joined
// with its provider. No match is an empty result, not an error.
func (s *SearchService) Search(ctx context.Context, lon, lat float64) ([]models.SearchResult, error) {
	return s.store.FindContaining(ctx, lon, lat)
}
