//go:build integration

package repository

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"catalog-review-backend/internal/domains/comment"
	commentrepo "catalog-review-backend/internal/domains/comment/repository"
	"catalog-review-backend/internal/domains/review"
	"catalog-review-backend/internal/domains/taxonomy"
	taxonomyrepo "catalog-review-backend/internal/domains/taxonomy/repository"
	"catalog-review-backend/internal/domains/title"
	titlerepo "catalog-review-backend/internal/domains/title/repository"
	"catalog-review-backend/internal/domains/user"
	userrepo "catalog-review-backend/internal/domains/user/repository"
	"catalog-review-backend/internal/infrastructure/database/dbtest"
	"catalog-review-backend/internal/shared"
	"catalog-review-backend/internal/shared/policy"
)

type fixture struct {
	users    user.Repository
	genres   taxonomy.Repository
	titles   title.Repository
	reviews  review.Repository
	comments comment.Repository
}

func setup(t *testing.T) *fixture {
	pool := dbtest.Start(t)
	return &fixture{
		users:    userrepo.NewPostgresRepository(pool),
		genres:   taxonomyrepo.NewPostgresRepository(pool, taxonomy.Genres),
		titles:   titlerepo.NewPostgresRepository(pool),
		reviews:  NewPostgresRepository(pool),
		comments: commentrepo.NewPostgresRepository(pool),
	}
}

func (f *fixture) user(t *testing.T, name string) *user.User {
	u := &user.User{Username: name, Email: name + "@example.com", Role: policy.RoleUser}
	require.NoError(t, f.users.Create(context.Background(), u))
	return u
}

func (f *fixture) title(t *testing.T, name string) *title.Title {
	ti := &title.Title{Name: name, Year: 2000, Genres: []taxonomy.Term{}}
	require.NoError(t, f.titles.Create(context.Background(), ti))
	return ti
}

func TestCreate_ConcurrentDuplicatesYieldOneReview(t *testing.T) {
	f := setup(t)
	ctx := context.Background()
	author := f.user(t, "alice")
	ti := f.title(t, "Dune")

	const attempts = 8
	var (
		wg        sync.WaitGroup
		mu        sync.Mutex
		ok        int
		conflicts int
	)
	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			err := f.reviews.Create(ctx, &review.Review{TitleID: ti.ID, AuthorID: author.ID, Text: "x", Score: 5})
			mu.Lock()
			defer mu.Unlock()
			switch {
			case err == nil:
				ok++
			case shared.HasCode(err, shared.CodeConflict):
				conflicts++
			default:
				t.Errorf("unexpected error: %v", err)
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, ok)
	assert.Equal(t, attempts-1, conflicts)
}

func TestRatingIsMeanOfScores(t *testing.T) {
	f := setup(t)
	ctx := context.Background()
	ti := f.title(t, "Solaris")

	got, err := f.titles.GetByID(ctx, ti.ID)
	require.NoError(t, err)
	assert.Nil(t, got.Rating)

	for i, score := range []int{7, 7, 6} {
		u := f.user(t, "reviewer"+string(rune('a'+i)))
		require.NoError(t, f.reviews.Create(ctx, &review.Review{TitleID: ti.ID, AuthorID: u.ID, Text: "x", Score: score}))
	}

	got, err = f.titles.GetByID(ctx, ti.ID)
	require.NoError(t, err)
	require.NotNil(t, got.Rating)
	assert.InDelta(t, 20.0/3, *got.Rating, 1e-12)
}

func TestDeleteTitle_CascadesToReviewsAndComments(t *testing.T) {
	f := setup(t)
	ctx := context.Background()
	author := f.user(t, "bob")
	ti := f.title(t, "Stalker")

	r := &review.Review{TitleID: ti.ID, AuthorID: author.ID, Text: "x", Score: 9}
	require.NoError(t, f.reviews.Create(ctx, r))
	c := &comment.Comment{ReviewID: r.ID, AuthorID: author.ID, Text: "y"}
	require.NoError(t, f.comments.Create(ctx, c))

	require.NoError(t, f.titles.Delete(ctx, ti.ID))

	_, err := f.reviews.GetByID(ctx, ti.ID, r.ID)
	assert.ErrorIs(t, err, shared.ErrNotFound)
	_, err = f.comments.GetByID(ctx, r.ID, c.ID)
	assert.ErrorIs(t, err, shared.ErrNotFound)
}

func TestDeleteGenre_UnlinksTitles(t *testing.T) {
	f := setup(t)
	ctx := context.Background()

	g := &taxonomy.Term{Name: "Drama", Slug: "drama"}
	require.NoError(t, f.genres.Create(ctx, g))
	ti := &title.Title{Name: "Hamlet", Year: 1603, Genres: []taxonomy.Term{*g}}
	require.NoError(t, f.titles.Create(ctx, ti))

	require.NoError(t, f.genres.DeleteBySlug(ctx, "drama"))

	got, err := f.titles.GetByID(ctx, ti.ID)
	require.NoError(t, err)
	assert.Empty(t, got.Genres)
}

func TestListTitles_GenreFilterIsCaseInsensitive(t *testing.T) {
	f := setup(t)
	ctx := context.Background()

	g := &taxonomy.Term{Name: "Drama", Slug: "drama"}
	require.NoError(t, f.genres.Create(ctx, g))
	require.NoError(t, f.titles.Create(ctx, &title.Title{Name: "Hamlet", Year: 1603, Genres: []taxonomy.Term{*g}}))
	f.title(t, "Other")

	titles, total, err := f.titles.List(ctx, title.ListFilter{Genre: "DRAMA", Limit: 10})
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	require.Len(t, titles, 1)
	assert.Equal(t, "Hamlet", titles[0].Name)
}

func TestDeleteUser_RemovesAuthoredContent(t *testing.T) {
	f := setup(t)
	ctx := context.Background()
	author := f.user(t, "carol")
	ti := f.title(t, "Roadside Picnic")

	r := &review.Review{TitleID: ti.ID, AuthorID: author.ID, Text: "x", Score: 4}
	require.NoError(t, f.reviews.Create(ctx, r))

	require.NoError(t, f.users.Delete(ctx, author.ID))

	_, err := f.reviews.GetByID(ctx, ti.ID, r.ID)
	assert.ErrorIs(t, err, shared.ErrNotFound)
}

func TestListTitles_NameWildcardsAreLiteral(t *testing.T) {
	f := setup(t)
	ctx := context.Background()
	f.title(t, "Blade_Runner")
	f.title(t, "Dune")
	f.title(t, "100% Wolf")

	titles, total, err := f.titles.List(ctx, title.ListFilter{Name: "_", Limit: 10})
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	require.Len(t, titles, 1)
	assert.Equal(t, "Blade_Runner", titles[0].Name)

	titles, _, err = f.titles.List(ctx, title.ListFilter{Name: "%", Limit: 10})
	require.NoError(t, err)
	require.Len(t, titles, 1)
	assert.Equal(t, "100% Wolf", titles[0].Name)
}
