package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"catalog-review-backend/internal/domains/taxonomy"
	"catalog-review-backend/internal/domains/title"
	"catalog-review-backend/internal/shared"
)

type titleService struct {
	repo       title.Repository
	categories taxonomy.Repository
	genres     taxonomy.Repository

	now func() time.Time
}

func NewTitleService(repo title.Repository, categories, genres taxonomy.Repository) title.Service {
	return &titleService{
		repo:       repo,
		categories: categories,
		genres:     genres,
		now:        time.Now,
	}
}

func (s *titleService) List(ctx context.Context, filter title.ListFilter) ([]title.Title, int64, error) {
	return s.repo.List(ctx, filter)
}

func (s *titleService) Get(ctx context.Context, id uuid.UUID) (*title.Title, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *titleService) Create(ctx context.Context, req title.CreateTitleRequest) (*title.Title, error) {
	req.Normalize()
	if err := req.Validate(s.now); err != nil {
		return nil, err
	}

	category, err := s.resolveCategory(ctx, req.Category)
	if err != nil {
		return nil, err
	}
	genres, err := s.resolveGenres(ctx, req.Genre)
	if err != nil {
		return nil, err
	}

	t := &title.Title{
		Name:        req.Name,
		Year:        *req.Year,
		Description: req.Description,
		Category:    category,
		Genres:      genres,
	}
	if err := s.repo.Create(ctx, t); err != nil {
		return nil, err
	}
	return t, nil
}

func (s *titleService) Update(ctx context.Context, id uuid.UUID, req title.UpdateTitleRequest) (*title.Title, error) {
	req.Normalize()
	if err := req.Validate(s.now); err != nil {
		return nil, err
	}

	t, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		t.Name = *req.Name
	}
	if req.Year != nil {
		t.Year = *req.Year
	}
	if req.Description != nil {
		t.Description = *req.Description
	}
	if req.Category != nil {
		if t.Category, err = s.resolveCategory(ctx, *req.Category); err != nil {
			return nil, err
		}
	}
	replaceGenres := req.Genre != nil
	if replaceGenres {
		if t.Genres, err = s.resolveGenres(ctx, req.Genre); err != nil {
			return nil, err
		}
	}

	if err := s.repo.Update(ctx, t, replaceGenres); err != nil {
		return nil, err
	}
	return t, nil
}

func (s *titleService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.repo.Delete(ctx, id)
}

// resolveCategory maps a slug to its category. An empty slug means none.
func (s *titleService) resolveCategory(ctx context.Context, slug string) (*taxonomy.Term, error) {
	if slug == "" {
		return nil, nil
	}
	term, err := s.categories.GetBySlug(ctx, slug)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, title.UnknownCategory(slug)
		}
		return nil, err
	}
	return term, nil
}

// resolveGenres maps slugs to genres, keeping request order and dropping
// repeats. Any unknown slug fails the whole request.
func (s *titleService) resolveGenres(ctx context.Context, slugs []string) ([]taxonomy.Term, error) {
	if len(slugs) == 0 {
		return []taxonomy.Term{}, nil
	}

	found, err := s.genres.GetBySlugs(ctx, slugs)
	if err != nil {
		return nil, err
	}

	genres := make([]taxonomy.Term, 0, len(slugs))
	seen := make(map[string]bool, len(slugs))
	var missing []string
	for _, slug := range slugs {
		if seen[slug] {
			continue
		}
		seen[slug] = true
		g, ok := found[slug]
		if !ok {
			missing = append(missing, slug)
			continue
		}
		genres = append(genres, g)
	}
	if len(missing) > 0 {
		return nil, title.UnknownGenres(missing)
	}
	return genres, nil
}
