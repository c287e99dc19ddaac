package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"catalog-review-backend/internal/domains/comment"
)

type postgresRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresRepository(pool *pgxpool.Pool) comment.Repository {
	return &postgresRepository{pool: pool}
}

const selectComment = `
	SELECT c.id, c.review_id, c.author_id, u.username, c.text, c.pub_date
	FROM comments c
	JOIN users u ON u.id = c.author_id`

func scanComment(row pgx.Row) (*comment.Comment, error) {
	var c comment.Comment
	if err := row.Scan(&c.ID, &c.ReviewID, &c.AuthorID, &c.Author, &c.Text, &c.PubDate); err != nil {
		return nil, err
	}
	return &c, nil
}

func (p *postgresRepository) List(ctx context.Context, reviewID uuid.UUID, limit, offset int) ([]comment.Comment, int64, error) {
	var total int64
	if err := p.pool.QueryRow(ctx, `SELECT COUNT(*) FROM comments WHERE review_id = $1`, reviewID).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count comments: %w", err)
	}

	rows, err := p.pool.Query(ctx, selectComment+`
		WHERE c.review_id = $1
		ORDER BY c.pub_date, c.id
		LIMIT $2 OFFSET $3`, reviewID, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list comments: %w", err)
	}
	defer rows.Close()

	comments := make([]comment.Comment, 0, limit)
	for rows.Next() {
		c, err := scanComment(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan comment: %w", err)
		}
		comments = append(comments, *c)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("failed to iterate comments: %w", err)
	}
	return comments, total, nil
}

func (p *postgresRepository) GetByID(ctx context.Context, reviewID, id uuid.UUID) (*comment.Comment, error) {
	c, err := scanComment(p.pool.QueryRow(ctx, selectComment+` WHERE c.id = $1 AND c.review_id = $2`, id, reviewID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, comment.ErrCommentNotFound
		}
		return nil, fmt.Errorf("failed to get comment: %w", err)
	}
	return c, nil
}

func (p *postgresRepository) Create(ctx context.Context, c *comment.Comment) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}

	err := p.pool.QueryRow(ctx, `
		INSERT INTO comments (id, review_id, author_id, text)
		VALUES ($1, $2, $3, $4)
		RETURNING pub_date`,
		c.ID, c.ReviewID, c.AuthorID, c.Text).Scan(&c.PubDate)
	if err != nil {
		return fmt.Errorf("failed to create comment: %w", err)
	}
	return nil
}

func (p *postgresRepository) Update(ctx context.Context, c *comment.Comment) error {
	tag, err := p.pool.Exec(ctx, `UPDATE comments SET text = $2 WHERE id = $1`, c.ID, c.Text)
	if err != nil {
		return fmt.Errorf("failed to update comment: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return comment.ErrCommentNotFound
	}
	return nil
}

func (p *postgresRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := p.pool.Exec(ctx, `DELETE FROM comments WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete comment: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return comment.ErrCommentNotFound
	}
	return nil
}
