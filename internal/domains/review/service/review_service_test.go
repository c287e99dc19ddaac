package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"catalog-review-backend/internal/domains/review"
	"catalog-review-backend/internal/shared"
	"catalog-review-backend/internal/shared/policy"
)

type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) List(ctx context.Context, titleID uuid.UUID, limit, offset int) ([]review.Review, int64, error) {
	args := m.Called(ctx, titleID, limit, offset)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]review.Review), args.Get(1).(int64), args.Error(2)
}

func (m *MockRepository) GetByID(ctx context.Context, titleID, id uuid.UUID) (*review.Review, error) {
	args := m.Called(ctx, titleID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*review.Review), args.Error(1)
}

func (m *MockRepository) ExistsForAuthor(ctx context.Context, titleID, authorID uuid.UUID) (bool, error) {
	args := m.Called(ctx, titleID, authorID)
	return args.Bool(0), args.Error(1)
}

func (m *MockRepository) Create(ctx context.Context, r *review.Review) error {
	args := m.Called(ctx, r)
	return args.Error(0)
}

func (m *MockRepository) Update(ctx context.Context, r *review.Review) error {
	return m.Called(ctx, r).Error(0)
}

func (m *MockRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

type MockTitles struct {
	mock.Mock
}

func (m *MockTitles) Exists(ctx context.Context, id uuid.UUID) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func intPtr(n int) *int { return &n }

var (
	titleID   = uuid.New()
	author    = policy.Authenticated(uuid.New(), "alice", policy.RoleUser, false)
	stranger  = policy.Authenticated(uuid.New(), "eve", policy.RoleUser, false)
	moderator = policy.Authenticated(uuid.New(), "mod", policy.RoleModerator, false)
	superuser = policy.Authenticated(uuid.New(), "root", policy.RoleUser, true)
)

func TestCreate_StampsAuthorAndTitle(t *testing.T) {
	repo, titles := new(MockRepository), new(MockTitles)
	titles.On("Exists", mock.Anything, titleID).Return(true, nil)
	repo.On("ExistsForAuthor", mock.Anything, titleID, author.UserID).Return(false, nil)
	repo.On("Create", mock.Anything, mock.MatchedBy(func(r *review.Review) bool {
		return r.TitleID == titleID && r.AuthorID == author.UserID && r.Score == 8
	})).Run(func(args mock.Arguments) {
		args.Get(1).(*review.Review).PubDate = time.Now()
	}).Return(nil)

	got, err := NewReviewService(repo, titles).Create(context.Background(), author, titleID,
		review.CreateReviewRequest{Text: " Great ", Score: intPtr(8)})

	require.NoError(t, err)
	assert.Equal(t, "alice", got.Author)
	assert.Equal(t, "Great", got.Text)
	repo.AssertExpectations(t)
}

func TestCreate_SecondReviewConflicts(t *testing.T) {
	repo, titles := new(MockRepository), new(MockTitles)
	titles.On("Exists", mock.Anything, titleID).Return(true, nil)
	repo.On("ExistsForAuthor", mock.Anything, titleID, author.UserID).Return(true, nil)

	_, err := NewReviewService(repo, titles).Create(context.Background(), author, titleID,
		review.CreateReviewRequest{Text: "Again", Score: intPtr(5)})

	assert.True(t, shared.HasCode(err, shared.CodeConflict))
	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestCreate_StorageConflictSurfaces(t *testing.T) {
	repo, titles := new(MockRepository), new(MockTitles)
	titles.On("Exists", mock.Anything, titleID).Return(true, nil)
	repo.On("ExistsForAuthor", mock.Anything, titleID, author.UserID).Return(false, nil)
	repo.On("Create", mock.Anything, mock.Anything).Return(review.AlreadyReviewed())

	_, err := NewReviewService(repo, titles).Create(context.Background(), author, titleID,
		review.CreateReviewRequest{Text: "Race", Score: intPtr(5)})

	assert.True(t, shared.HasCode(err, shared.CodeConflict))
}

func TestCreate_ScoreRange(t *testing.T) {
	for _, score := range []int{0, 11, -1} {
		repo, titles := new(MockRepository), new(MockTitles)

		_, err := NewReviewService(repo, titles).Create(context.Background(), author, titleID,
			review.CreateReviewRequest{Text: "x", Score: intPtr(score)})

		assert.True(t, shared.HasCode(err, shared.CodeOutOfRange), "score %d", score)
	}
}

func TestCreate_MissingTitle(t *testing.T) {
	repo, titles := new(MockRepository), new(MockTitles)
	titles.On("Exists", mock.Anything, titleID).Return(false, nil)

	_, err := NewReviewService(repo, titles).Create(context.Background(), author, titleID,
		review.CreateReviewRequest{Text: "x", Score: intPtr(1)})

	assert.ErrorIs(t, err, shared.ErrNotFound)
}

func TestCreate_Anonymous(t *testing.T) {
	_, err := NewReviewService(new(MockRepository), new(MockTitles)).Create(context.Background(), policy.Anonymous(), titleID,
		review.CreateReviewRequest{Text: "x", Score: intPtr(1)})

	assert.ErrorIs(t, err, shared.ErrUnauthorized)
}

func TestModify_OwnerOrStaff(t *testing.T) {
	tests := []struct {
		name  string
		actor policy.Actor
		want  error
	}{
		{"author", author, nil},
		{"moderator", moderator, nil},
		{"superuser", superuser, nil},
		{"other user", stranger, shared.ErrForbidden},
		{"anonymous", policy.Anonymous(), shared.ErrUnauthorized},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(MockRepository)
			id := uuid.New()
			repo.On("GetByID", mock.Anything, titleID, id).
				Return(&review.Review{ID: id, TitleID: titleID, AuthorID: author.UserID, Score: 3}, nil)
			repo.On("Delete", mock.Anything, id).Return(nil)

			err := NewReviewService(repo, new(MockTitles)).Delete(context.Background(), tt.actor, titleID, id)

			if tt.want == nil {
				assert.NoError(t, err)
				repo.AssertCalled(t, "Delete", mock.Anything, id)
			} else {
				assert.ErrorIs(t, err, tt.want)
				repo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
			}
		})
	}
}

func TestUpdate_Partial(t *testing.T) {
	repo := new(MockRepository)
	id := uuid.New()
	repo.On("GetByID", mock.Anything, titleID, id).
		Return(&review.Review{ID: id, TitleID: titleID, AuthorID: author.UserID, Text: "old", Score: 3}, nil)
	repo.On("Update", mock.Anything, mock.Anything).Return(nil)

	got, err := NewReviewService(repo, new(MockTitles)).Update(context.Background(), author, titleID, id,
		review.UpdateReviewRequest{Score: intPtr(9)})

	require.NoError(t, err)
	assert.Equal(t, 9, got.Score)
	assert.Equal(t, "old", got.Text)
}

func TestUpdate_InvalidScore(t *testing.T) {
	repo := new(MockRepository)
	id := uuid.New()
	repo.On("GetByID", mock.Anything, titleID, id).
		Return(&review.Review{ID: id, TitleID: titleID, AuthorID: author.UserID, Score: 3}, nil)

	_, err := NewReviewService(repo, new(MockTitles)).Update(context.Background(), author, titleID, id,
		review.UpdateReviewRequest{Score: intPtr(11)})

	assert.True(t, shared.HasCode(err, shared.CodeOutOfRange))
	repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestList_MissingTitle(t *testing.T) {
	titles := new(MockTitles)
	titles.On("Exists", mock.Anything, titleID).Return(false, nil)

	_, _, err := NewReviewService(new(MockRepository), titles).List(context.Background(), titleID, 10, 0)

	assert.ErrorIs(t, err, shared.ErrNotFound)
}
