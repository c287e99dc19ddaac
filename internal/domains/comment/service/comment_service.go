package service

import (
	"context"

	"github.com/google/uuid"

	"catalog-review-backend/internal/domains/comment"
	"catalog-review-backend/internal/domains/review"
	"catalog-review-backend/internal/shared/policy"
)

// ReviewFinder loads a review scoped to its title
type ReviewFinder interface {
	GetByID(ctx context.Context, titleID, id uuid.UUID) (*review.Review, error)
}

type commentService struct {
	repo    comment.Repository
	reviews ReviewFinder
}

func NewCommentService(repo comment.Repository, reviews ReviewFinder) comment.Service {
	return &commentService{repo: repo, reviews: reviews}
}

// requireReview fails with review not found unless the review exists under
// the title named in the path
func (s *commentService) requireReview(ctx context.Context, path comment.Path) error {
	_, err := s.reviews.GetByID(ctx, path.TitleID, path.ReviewID)
	return err
}

func (s *commentService) List(ctx context.Context, path comment.Path, limit, offset int) ([]comment.Comment, int64, error) {
	if err := s.requireReview(ctx, path); err != nil {
		return nil, 0, err
	}
	return s.repo.List(ctx, path.ReviewID, limit, offset)
}

func (s *commentService) Get(ctx context.Context, path comment.Path, id uuid.UUID) (*comment.Comment, error) {
	if err := s.requireReview(ctx, path); err != nil {
		return nil, err
	}
	return s.repo.GetByID(ctx, path.ReviewID, id)
}

func (s *commentService) Create(ctx context.Context, actor policy.Actor, path comment.Path, req comment.CreateCommentRequest) (*comment.Comment, error) {
	if err := policy.Authorize(actor, policy.Request{
		Kind: policy.Authored, Class: policy.Unsafe, Action: policy.Create,
	}); err != nil {
		return nil, err
	}

	req.Normalize()
	if err := req.Validate(); err != nil {
		return nil, err
	}
	if err := s.requireReview(ctx, path); err != nil {
		return nil, err
	}

	c := &comment.Comment{
		ReviewID: path.ReviewID,
		AuthorID: actor.UserID,
		Author:   actor.Username,
		Text:     req.Text,
	}
	if err := s.repo.Create(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *commentService) Update(ctx context.Context, actor policy.Actor, path comment.Path, id uuid.UUID, req comment.UpdateCommentRequest) (*comment.Comment, error) {
	c, err := s.modifiable(ctx, actor, path, id)
	if err != nil {
		return nil, err
	}

	req.Normalize()
	if err := req.Validate(); err != nil {
		return nil, err
	}
	if req.Text != nil {
		c.Text = *req.Text
	}

	if err := s.repo.Update(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *commentService) Delete(ctx context.Context, actor policy.Actor, path comment.Path, id uuid.UUID) error {
	c, err := s.modifiable(ctx, actor, path, id)
	if err != nil {
		return err
	}
	return s.repo.Delete(ctx, c.ID)
}

func (s *commentService) modifiable(ctx context.Context, actor policy.Actor, path comment.Path, id uuid.UUID) (*comment.Comment, error) {
	if err := s.requireReview(ctx, path); err != nil {
		return nil, err
	}
	c, err := s.repo.GetByID(ctx, path.ReviewID, id)
	if err != nil {
		return nil, err
	}

	if err := policy.Authorize(actor, policy.Request{
		Kind: policy.Authored, Class: policy.Unsafe, Action: policy.Modify, Owner: c.AuthorID,
	}); err != nil {
		return nil, err
	}
	return c, nil
}
