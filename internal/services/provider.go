package services

import (
	"context"
	"errors"
	"fmt"

	"area-directory/internal/models"
	"area-directory/internal/store"

	"github.com/go-playground/validator/v10"
)

// ErrInvalidEmail rejects a provider payload whose email does not match a
// valid address grammar. Checked before any store call.
var ErrInvalidEmail = errors.New("invalid email address")

type ProviderService struct {
	store    store.ProviderStore
	validate *validator.Validate
}

func NewProviderService(st store.ProviderStore) *ProviderService {
	return &ProviderService{
		store:    st,
		validate: validator.New(),
	}
}

func (s *ProviderService) Create(ctx context.Context, input models.ProviderInput) (*models.Provider, error) {
	if err := s.validate.Var(input.Email, "required,email"); err != nil {
		return nil, fmt.Errorf("%w: %q", ErrInvalidEmail, input.Email)
	}
	return s.store.Insert(ctx, input)
}

func (s *ProviderService) Get(ctx context.Context, id int64) (*models.Provider, error) {
	return s.store.Get(ctx, id)
}

func (s *ProviderService) List(ctx context.Context, offset, limit int) ([]*models.Provider, error) {
	return s.store.List(ctx, offset, limit)
}

// Update replaces every provider field. The payload is validated as a whole
// before anything is written.
func (s *ProviderService) Update(ctx context.Context, id int64, input models.ProviderInput) (*models.Provider, error) {
	if err := s.validate.Var(input.Email, "required,email"); err != nil {
		return nil, fmt.Errorf("%w: %q", ErrInvalidEmail, input.Email)
	}
	return s.store.Replace(ctx, id, input)
}

// Delete removes the provider and all of its service areas.
func (s *ProviderService) Delete(ctx context.Context, id int64) (*models.Provider, error) {
	return s.store.Delete(ctx, id)
}
