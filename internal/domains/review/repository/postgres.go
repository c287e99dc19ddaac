package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"catalog-review-backend/internal/domains/review"
)

const (
	uniqueViolation = "23505"
	titleAuthorKey  = "reviews_title_author_unique"
)

type postgresRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresRepository(pool *pgxpool.Pool) review.Repository {
	return &postgresRepository{pool: pool}
}

const selectReview = `
	SELECT r.id, r.title_id, r.author_id, u.username, r.text, r.score, r.pub_date
	FROM reviews r
	JOIN users u ON u.id = r.author_id`

func scanReview(row pgx.Row) (*review.Review, error) {
	var r review.Review
	err := row.Scan(&r.ID, &r.TitleID, &r.AuthorID, &r.Author, &r.Text, &r.Score, &r.PubDate)
	if err != nil {
		return nil, err
	}
	return &r, nil
}

func (p *postgresRepository) List(ctx context.Context, titleID uuid.UUID, limit, offset int) ([]review.Review, int64, error) {
	var total int64
	if err := p.pool.QueryRow(ctx, `SELECT COUNT(*) FROM reviews WHERE title_id = $1`, titleID).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count reviews: %w", err)
	}

	rows, err := p.pool.Query(ctx, selectReview+`
		WHERE r.title_id = $1
		ORDER BY r.pub_date DESC, r.id
		LIMIT $2 OFFSET $3`, titleID, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list reviews: %w", err)
	}
	defer rows.Close()

	reviews := make([]review.Review, 0, limit)
	for rows.Next() {
		r, err := scanReview(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan review: %w", err)
		}
		reviews = append(reviews, *r)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("failed to iterate reviews: %w", err)
	}
	return reviews, total, nil
}

func (p *postgresRepository) GetByID(ctx context.Context, titleID, id uuid.UUID) (*review.Review, error) {
	r, err := scanReview(p.pool.QueryRow(ctx, selectReview+` WHERE r.id = $1 AND r.title_id = $2`, id, titleID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, review.ErrReviewNotFound
		}
		return nil, fmt.Errorf("failed to get review: %w", err)
	}
	return r, nil
}

func (p *postgresRepository) ExistsForAuthor(ctx context.Context, titleID, authorID uuid.UUID) (bool, error) {
	var exists bool
	err := p.pool.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM reviews WHERE title_id = $1 AND author_id = $2)`,
		titleID, authorID).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check review: %w", err)
	}
	return exists, nil
}

func (p *postgresRepository) Create(ctx context.Context, r *review.Review) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}

	err := p.pool.QueryRow(ctx, `
		INSERT INTO reviews (id, title_id, author_id, text, score)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING pub_date`,
		r.ID, r.TitleID, r.AuthorID, r.Text, r.Score).Scan(&r.PubDate)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation && pgErr.ConstraintName == titleAuthorKey {
			return review.AlreadyReviewed()
		}
		return fmt.Errorf("failed to create review: %w", err)
	}
	return nil
}

func (p *postgresRepository) Update(ctx context.Context, r *review.Review) error {
	tag, err := p.pool.Exec(ctx, `UPDATE reviews SET text = $2, score = $3 WHERE id = $1`, r.ID, r.Text, r.Score)
	if err != nil {
		return fmt.Errorf("failed to update review: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return review.ErrReviewNotFound
	}
	return nil
}

func (p *postgresRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := p.pool.Exec(ctx, `DELETE FROM reviews WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete review: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return review.ErrReviewNotFound
	}
	return nil
}
