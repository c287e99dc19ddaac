package service

import (
	"context"

	"catalog-review-backend/internal/domains/taxonomy"
)

// termService implements taxonomy.Service over one taxonomy table
type termService struct {
	repo taxonomy.Repository
}

func NewTermService(repo taxonomy.Repository) taxonomy.Service {
	return &termService{repo: repo}
}

func (s *termService) List(ctx context.Context, search string, limit, offset int) ([]taxonomy.Term, int64, error) {
	return s.repo.List(ctx, taxonomy.ListFilter{Search: search, Limit: limit, Offset: offset})
}

func (s *termService) Create(ctx context.Context, req taxonomy.CreateTermRequest) (*taxonomy.Term, error) {
	req.Normalize()
	if err := req.Validate(); err != nil {
		return nil, err
	}

	_, err := s.repo.GetBySlug(ctx, req.Slug)
	switch {
	case err == nil:
		return nil, taxonomy.SlugTaken(s.repo.Kind())
	case !isNotFound(err):
		return nil, err
	}

	t := &taxonomy.Term{Name: req.Name, Slug: req.Slug}
	if err := s.repo.Create(ctx, t); err != nil {
		return nil, err
	}
	return t, nil
}

func (s *termService) Delete(ctx context.Context, slug string) error {
	return s.repo.DeleteBySlug(ctx, slug)
}
