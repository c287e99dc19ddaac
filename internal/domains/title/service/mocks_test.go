package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"catalog-review-backend/internal/domains/taxonomy"
	"catalog-review-backend/internal/domains/title"
)

type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) List(ctx context.Context, filter title.ListFilter) ([]title.Title, int64, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]title.Title), args.Get(1).(int64), args.Error(2)
}

func (m *MockRepository) GetByID(ctx context.Context, id uuid.UUID) (*title.Title, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*title.Title), args.Error(1)
}

func (m *MockRepository) Exists(ctx context.Context, id uuid.UUID) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *MockRepository) Create(ctx context.Context, t *title.Title) error {
	args := m.Called(ctx, t)
	return args.Error(0)
}

func (m *MockRepository) Update(ctx context.Context, t *title.Title, replaceGenres bool) error {
	args := m.Called(ctx, t, replaceGenres)
	return args.Error(0)
}

func (m *MockRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockTermRepository struct {
	mock.Mock
	kind taxonomy.Kind
}

func (m *MockTermRepository) Kind() taxonomy.Kind {
	return m.kind
}

func (m *MockTermRepository) List(ctx context.Context, filter taxonomy.ListFilter) ([]taxonomy.Term, int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]taxonomy.Term), args.Get(1).(int64), args.Error(2)
}

func (m *MockTermRepository) Create(ctx context.Context, t *taxonomy.Term) error {
	return m.Called(ctx, t).Error(0)
}

func (m *MockTermRepository) GetBySlug(ctx context.Context, slug string) (*taxonomy.Term, error) {
	args := m.Called(ctx, slug)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*taxonomy.Term), args.Error(1)
}

func (m *MockTermRepository) GetBySlugs(ctx context.Context, slugs []string) (map[string]taxonomy.Term, error) {
	args := m.Called(ctx, slugs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]taxonomy.Term), args.Error(1)
}

func (m *MockTermRepository) DeleteBySlug(ctx context.Context, slug string) error {
	return m.Called(ctx, slug).Error(0)
}
