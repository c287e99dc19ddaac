package service

import (
	"context"

	"github.com/google/uuid"

	"catalog-review-backend/internal/domains/review"
	"catalog-review-backend/internal/domains/title"
	"catalog-review-backend/internal/shared/policy"
)

// TitleChecker reports whether a title exists
type TitleChecker interface {
	Exists(ctx context.Context, id uuid.UUID) (bool, error)
}

type reviewService struct {
	repo   review.Repository
	titles TitleChecker
}

func NewReviewService(repo review.Repository, titles TitleChecker) review.Service {
	return &reviewService{repo: repo, titles: titles}
}

func (s *reviewService) requireTitle(ctx context.Context, titleID uuid.UUID) error {
	ok, err := s.titles.Exists(ctx, titleID)
	if err != nil {
		return err
	}
	if !ok {
		return title.ErrTitleNotFound
	}
	return nil
}

func (s *reviewService) List(ctx context.Context, titleID uuid.UUID, limit, offset int) ([]review.Review, int64, error) {
	if err := s.requireTitle(ctx, titleID); err != nil {
		return nil, 0, err
	}
	return s.repo.List(ctx, titleID, limit, offset)
}

func (s *reviewService) Get(ctx context.Context, titleID, id uuid.UUID) (*review.Review, error) {
	return s.repo.GetByID(ctx, titleID, id)
}

// Create stores the actor's review of titleID. The storage constraint on
// (title, author) backs the pre-check for concurrent requests.
func (s *reviewService) Create(ctx context.Context, actor policy.Actor, titleID uuid.UUID, req review.CreateReviewRequest) (*review.Review, error) {
	if err := policy.Authorize(actor, policy.Request{
		Kind: policy.Authored, Class: policy.Unsafe, Action: policy.Create,
	}); err != nil {
		return nil, err
	}

	req.Normalize()
	if err := req.Validate(); err != nil {
		return nil, err
	}
	if err := s.requireTitle(ctx, titleID); err != nil {
		return nil, err
	}

	exists, err := s.repo.ExistsForAuthor(ctx, titleID, actor.UserID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, review.AlreadyReviewed()
	}

	r := &review.Review{
		TitleID:  titleID,
		AuthorID: actor.UserID,
		Author:   actor.Username,
		Text:     req.Text,
		Score:    *req.Score,
	}
	if err := s.repo.Create(ctx, r); err != nil {
		return nil, err
	}
	return r, nil
}

func (s *reviewService) Update(ctx context.Context, actor policy.Actor, titleID, id uuid.UUID, req review.UpdateReviewRequest) (*review.Review, error) {
	r, err := s.modifiable(ctx, actor, titleID, id)
	if err != nil {
		return nil, err
	}

	req.Normalize()
	if err := req.Validate(); err != nil {
		return nil, err
	}

	if req.Text != nil {
		r.Text = *req.Text
	}
	if req.Score != nil {
		r.Score = *req.Score
	}

	if err := s.repo.Update(ctx, r); err != nil {
		return nil, err
	}
	return r, nil
}

func (s *reviewService) Delete(ctx context.Context, actor policy.Actor, titleID, id uuid.UUID) error {
	r, err := s.modifiable(ctx, actor, titleID, id)
	if err != nil {
		return err
	}
	return s.repo.Delete(ctx, r.ID)
}

// modifiable loads the review and checks the actor may change it
func (s *reviewService) modifiable(ctx context.Context, actor policy.Actor, titleID, id uuid.UUID) (*review.Review, error) {
	r, err := s.repo.GetByID(ctx, titleID, id)
	if err != nil {
		return nil, err
	}

	if err := policy.Authorize(actor, policy.Request{
		Kind: policy.Authored, Class: policy.Unsafe, Action: policy.Modify, Owner: r.AuthorID,
	}); err != nil {
		return nil, err
	}
	return r, nil
}
