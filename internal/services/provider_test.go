package services_test

import (
	"context"
	"errors"
	"testing"

	"area-directory/internal/models"
	"area-directory/internal/services"
	"area-directory/internal/store"
)

// --- Mock ProviderStore ---

type mockProviderStore struct {
	insertFn  func(ctx context.Context, input models.ProviderInput) (*models.Provider, error)
	getFn     func(ctx context.Context, id int64) (*models.Provider, error)
	listFn    func(ctx context.Context, offset, limit int) ([]*models.Provider, error)
	replaceFn func(ctx context.Context, id int64, input models.ProviderInput) (*models.Provider, error)
	deleteFn  func(ctx context.Context, id int64) (*models.Provider, error)
}

func (m *mockProviderStore) Insert(ctx context.Context, input models.ProviderInput) (*models.Provider, error) {
	if m.insertFn != nil {
		return m.insertFn(ctx, input)
	}
	return nil, nil
}

func (m *mockProviderStore) Get(ctx context.Context, id int64) (*models.Provider, error) {
	if m.getFn != nil {
		return m.getFn(ctx, id)
	}
	return nil, nil
}

func (m *mockProviderStore) List(ctx context.Context, offset, limit int) ([]*models.Provider, error) {
	if m.listFn != nil {
		return m.listFn(ctx, offset, limit)
	}
	return nil, nil
}

func (m *mockProviderStore) Replace(ctx context.Context, id int64, input models.ProviderInput) (*models.Provider, error) {
	if m.replaceFn != nil {
		return m.replaceFn(ctx, id, input)
	}
	return nil, nil
}

func (m *mockProviderStore) Delete(ctx context.Context, id int64) (*models.Provider, error) {
	if m.deleteFn != nil {
		return m.deleteFn(ctx, id)
	}
	return nil, nil
}

func validProviderInput() models.ProviderInput {
	return models.ProviderInput{
		Name:        "Test Provider",
		Email:       "testprovider@example.com",
		PhoneNumber: "1234567890",
		Language:    "English",
		Currency:    "USD",
	}
}

// --- Tests ---

func TestProviderService_Create(t *testing.T) {
	st := &mockProviderStore{
		insertFn: func(ctx context.Context, input models.ProviderInput) (*models.Provider, error) {
			return &models.Provider{
				ID:           1,
				Name:         input.Name,
				Email:        input.Email,
				PhoneNumber:  input.PhoneNumber,
				Language:     input.Language,
				Currency:     input.Currency,
				ServiceAreas: []*models.ServiceArea{},
			}, nil
		},
	}

	svc := services.NewProviderService(st)
	provider, err := svc.Create(context.Background(), validProviderInput())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if provider.ID != 1 {
		t.Errorf("expected id 1, got %d", provider.ID)
	}
	if provider.Email != "testprovider@example.com" {
		t.Errorf("unexpected email %s", provider.Email)
	}
}

func TestProviderService_Create_InvalidEmail(t *testing.T) {
	called := false
	st := &mockProviderStore{
		insertFn: func(ctx context.Context, input models.ProviderInput) (*models.Provider, error) {
			called = true
			return nil, nil
		},
	}

	svc := services.NewProviderService(st)

	input := validProviderInput()
	input.Email = "invalid-email"
	_, err := svc.Create(context.Background(), input)
	if !errors.Is(err, services.ErrInvalidEmail) {
		t.Fatalf("expected ErrInvalidEmail, got %v", err)
	}
	if called {
		t.Error("store must not be called for an invalid email")
	}
}

func TestProviderService_Create_EmptyEmail(t *testing.T) {
	svc := services.NewProviderService(&mockProviderStore{})

	input := validProviderInput()
	input.Email = ""
	_, err := svc.Create(context.Background(), input)
	if !errors.Is(err, services.ErrInvalidEmail) {
		t.Fatalf("expected ErrInvalidEmail, got %v", err)
	}
}

func TestProviderService_Update_InvalidEmail(t *testing.T) {
	called := false
	st := &mockProviderStore{
		replaceFn: func(ctx context.Context, id int64, input models.ProviderInput) (*models.Provider, error) {
			called = true
			return nil, nil
		},
	}

	svc := services.NewProviderService(st)

	input := validProviderInput()
	input.Email = "not an address"
	_, err := svc.Update(context.Background(), 1, input)
	if !errors.Is(err, services.ErrInvalidEmail) {
		t.Fatalf("expected ErrInvalidEmail, got %v", err)
	}
	if called {
		t.Error("store must not be called for an invalid email")
	}
}

func TestProviderService_Get_NotFound(t *testing.T) {
	st := &mockProviderStore{
		getFn: func(ctx context.Context, id int64) (*models.Provider, error) {
			return nil, store.ErrNotFound
		},
	}

	svc := services.NewProviderService(st)
	_, err := svc.Get(context.Background(), 99999)
	if !errors.Is(err, store.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestProviderService_Delete_Cascade(t *testing.T) {
	st := &mockProviderStore{
		deleteFn: func(ctx context.Context, id int64) (*models.Provider, error) {
			return &models.Provider{
				ID:   id,
				Name: "Cascade Provider",
				ServiceAreas: []*models.ServiceArea{
					{ID: 1, ProviderID: id, Name: "Area A"},
					{ID: 2, ProviderID: id, Name: "Area B"},
				},
			}, nil
		},
	}

	svc := services.NewProviderService(st)
	deleted, err := svc.Delete(context.Background(), 7)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(deleted.ServiceAreas) != 2 {
		t.Errorf("expected 2 cascaded areas in the response, got %d", len(deleted.ServiceAreas))
	}
}

func TestProviderService_List_PassesPagination(t *testing.T) {
	st := &mockProviderStore{
		listFn: func(ctx context.Context, offset, limit int) ([]*models.Provider, error) {
			if offset != 10 || limit != 25 {
				t.Errorf("expected offset=10 limit=25, got %d/%d", offset, limit)
			}
			return []*models.Provider{}, nil
		},
	}

	svc := services.NewProviderService(st)
	providers, err := svc.List(context.Background(), 10, 25)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if providers == nil {
		t.Error("expected empty slice, got nil")
	}
}
