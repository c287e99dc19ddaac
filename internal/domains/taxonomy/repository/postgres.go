package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"catalog-review-backend/internal/domains/taxonomy"
	"catalog-review-backend/pkg/database"
)

const uniqueViolation = "23505"

// postgresRepository implements taxonomy.Repository for one table. The
// table name comes from a fixed taxonomy.Kind, never from input.
type postgresRepository struct {
	pool *pgxpool.Pool
	kind taxonomy.Kind
}

func NewPostgresRepository(pool *pgxpool.Pool, kind taxonomy.Kind) taxonomy.Repository {
	return &postgresRepository{pool: pool, kind: kind}
}

func (r *postgresRepository) Kind() taxonomy.Kind {
	return r.kind
}

func (r *postgresRepository) List(ctx context.Context, filter taxonomy.ListFilter) ([]taxonomy.Term, int64, error) {
	where := ""
	args := []interface{}{}
	if filter.Search != "" {
		args = append(args, database.ContainsPattern(filter.Search))
		where = " WHERE name ILIKE $1"
	}

	var total int64
	countQuery := fmt.Sprintf(`SELECT COUNT(*) FROM %s%s`, r.kind.Table, where)
	if err := r.pool.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count %s: %w", r.kind.Table, err)
	}

	args = append(args, filter.Limit, filter.Offset)
	query := fmt.Sprintf(`SELECT id, name, slug FROM %s%s ORDER BY name, slug LIMIT $%d OFFSET $%d`,
		r.kind.Table, where, len(args)-1, len(args))

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list %s: %w", r.kind.Table, err)
	}
	defer rows.Close()

	terms := make([]taxonomy.Term, 0, filter.Limit)
	for rows.Next() {
		var t taxonomy.Term
		if err := rows.Scan(&t.ID, &t.Name, &t.Slug); err != nil {
			return nil, 0, fmt.Errorf("failed to scan %s: %w", r.kind.Label, err)
		}
		terms = append(terms, t)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("failed to iterate %s: %w", r.kind.Table, err)
	}

	return terms, total, nil
}

func (r *postgresRepository) Create(ctx context.Context, t *taxonomy.Term) error {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}

	query := fmt.Sprintf(`INSERT INTO %s (id, name, slug) VALUES ($1, $2, $3)`, r.kind.Table)
	if _, err := r.pool.Exec(ctx, query, t.ID, t.Name, t.Slug); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return taxonomy.SlugTaken(r.kind)
		}
		return fmt.Errorf("failed to create %s: %w", r.kind.Label, err)
	}
	return nil
}

func (r *postgresRepository) GetBySlug(ctx context.Context, slug string) (*taxonomy.Term, error) {
	query := fmt.Sprintf(`SELECT id, name, slug FROM %s WHERE slug = $1`, r.kind.Table)

	var t taxonomy.Term
	if err := r.pool.QueryRow(ctx, query, slug).Scan(&t.ID, &t.Name, &t.Slug); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, taxonomy.NotFound(r.kind)
		}
		return nil, fmt.Errorf("failed to get %s: %w", r.kind.Label, err)
	}
	return &t, nil
}

func (r *postgresRepository) GetBySlugs(ctx context.Context, slugs []string) (map[string]taxonomy.Term, error) {
	out := make(map[string]taxonomy.Term, len(slugs))
	if len(slugs) == 0 {
		return out, nil
	}

	query := fmt.Sprintf(`SELECT id, name, slug FROM %s WHERE slug = ANY($1)`, r.kind.Table)
	rows, err := r.pool.Query(ctx, query, slugs)
	if err != nil {
		return nil, fmt.Errorf("failed to get %s by slugs: %w", r.kind.Table, err)
	}
	defer rows.Close()

	for rows.Next() {
		var t taxonomy.Term
		if err := rows.Scan(&t.ID, &t.Name, &t.Slug); err != nil {
			return nil, fmt.Errorf("failed to scan %s: %w", r.kind.Label, err)
		}
		out[t.Slug] = t
	}
	return out, rows.Err()
}

func (r *postgresRepository) DeleteBySlug(ctx context.Context, slug string) error {
	query := fmt.Sprintf(`DELETE FROM %s WHERE slug = $1`, r.kind.Table)
	tag, err := r.pool.Exec(ctx, query, slug)
	if err != nil {
		return fmt.Errorf("failed to delete %s: %w", r.kind.Label, err)
	}
	if tag.RowsAffected() == 0 {
		return taxonomy.NotFound(r.kind)
	}
	return nil
}
