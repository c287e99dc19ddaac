package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"catalog-review-backend/internal/domains/taxonomy"
	"catalog-review-backend/internal/domains/title"
	"catalog-review-backend/pkg/database"
)

type postgresRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresRepository(pool *pgxpool.Pool) title.Repository {
	return &postgresRepository{pool: pool}
}

// selectTitle yields one row per title with its category and the textual
// mean of its review scores
const selectTitle = `
	SELECT
		t.id, t.name, t.year, t.description,
		c.id, c.name, c.slug,
		(SELECT AVG(r.score)::text FROM reviews r WHERE r.title_id = t.id) AS rating
	FROM titles t
	LEFT JOIN categories c ON c.id = t.category_id`

func scanTitle(row pgx.Row) (*title.Title, error) {
	var (
		t                      title.Title
		catID                  *uuid.UUID
		catName, catSlug, mean *string
	)
	if err := row.Scan(&t.ID, &t.Name, &t.Year, &t.Description, &catID, &catName, &catSlug, &mean); err != nil {
		return nil, err
	}
	if catID != nil {
		t.Category = &taxonomy.Term{ID: *catID, Name: *catName, Slug: *catSlug}
	}

	rating, err := title.Rating(mean)
	if err != nil {
		return nil, err
	}
	t.Rating = rating
	t.Genres = []taxonomy.Term{}
	return &t, nil
}

// ============================================
// READ
// ============================================

// buildWhereClause - Construct WHERE clause from the list filter
func buildWhereClause(filter title.ListFilter) (string, []interface{}) {
	conditions := []string{"TRUE"}
	args := []interface{}{}
	argIndex := 1

	if filter.Category != "" {
		conditions = append(conditions, fmt.Sprintf("LOWER(c.slug) = LOWER($%d)", argIndex))
		args = append(args, filter.Category)
		argIndex++
	}

	if filter.Genre != "" {
		conditions = append(conditions, fmt.Sprintf(`EXISTS (
			SELECT 1 FROM title_genres tg JOIN genres g ON g.id = tg.genre_id
			WHERE tg.title_id = t.id AND LOWER(g.slug) = LOWER($%d))`, argIndex))
		args = append(args, filter.Genre)
		argIndex++
	}

	if filter.Name != "" {
		conditions = append(conditions, fmt.Sprintf("t.name ILIKE $%d", argIndex))
		args = append(args, database.ContainsPattern(filter.Name))
		argIndex++
	}

	if filter.Year != nil {
		conditions = append(conditions, fmt.Sprintf("t.year = $%d", argIndex))
		args = append(args, *filter.Year)
	}

	return strings.Join(conditions, " AND "), args
}

func (r *postgresRepository) List(ctx context.Context, filter title.ListFilter) ([]title.Title, int64, error) {
	where, args := buildWhereClause(filter)

	var total int64
	countQuery := `SELECT COUNT(*) FROM titles t LEFT JOIN categories c ON c.id = t.category_id WHERE ` + where
	if err := r.pool.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count titles: %w", err)
	}

	query := fmt.Sprintf(`%s WHERE %s ORDER BY t.name, t.id LIMIT $%d OFFSET $%d`,
		selectTitle, where, len(args)+1, len(args)+2)
	args = append(args, filter.Limit, filter.Offset)

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list titles: %w", err)
	}
	defer rows.Close()

	titles := make([]title.Title, 0, filter.Limit)
	for rows.Next() {
		t, err := scanTitle(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan title: %w", err)
		}
		titles = append(titles, *t)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("failed to iterate titles: %w", err)
	}

	if err := r.attachGenres(ctx, titles); err != nil {
		return nil, 0, err
	}
	return titles, total, nil
}

func (r *postgresRepository) GetByID(ctx context.Context, id uuid.UUID) (*title.Title, error) {
	t, err := scanTitle(r.pool.QueryRow(ctx, selectTitle+` WHERE t.id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, title.ErrTitleNotFound
		}
		return nil, fmt.Errorf("failed to get title: %w", err)
	}

	one := []title.Title{*t}
	if err := r.attachGenres(ctx, one); err != nil {
		return nil, err
	}
	return &one[0], nil
}

// attachGenres loads the genres of all titles in one query
func (r *postgresRepository) attachGenres(ctx context.Context, titles []title.Title) error {
	if len(titles) == 0 {
		return nil
	}

	ids := make([]uuid.UUID, len(titles))
	index := make(map[uuid.UUID]int, len(titles))
	for i, t := range titles {
		ids[i] = t.ID
		index[t.ID] = i
	}

	rows, err := r.pool.Query(ctx, `
		SELECT tg.title_id, g.id, g.name, g.slug
		FROM title_genres tg
		JOIN genres g ON g.id = tg.genre_id
		WHERE tg.title_id = ANY($1)
		ORDER BY g.name, g.slug`, ids)
	if err != nil {
		return fmt.Errorf("failed to load title genres: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			titleID uuid.UUID
			g       taxonomy.Term
		)
		if err := rows.Scan(&titleID, &g.ID, &g.Name, &g.Slug); err != nil {
			return fmt.Errorf("failed to scan title genre: %w", err)
		}
		i := index[titleID]
		titles[i].Genres = append(titles[i].Genres, g)
	}
	return rows.Err()
}

func (r *postgresRepository) Exists(ctx context.Context, id uuid.UUID) (bool, error) {
	var exists bool
	err := r.pool.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM titles WHERE id = $1)`, id).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check title: %w", err)
	}
	return exists, nil
}

// ============================================
// WRITE
// ============================================

func (r *postgresRepository) Create(ctx context.Context, t *title.Title) error {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}

	return database.WithTransaction(ctx, r.pool, func(tx pgx.Tx) error {
		_, err := tx.Exec(ctx, `
			INSERT INTO titles (id, name, year, description, category_id)
			VALUES ($1, $2, $3, $4, $5)`,
			t.ID, t.Name, t.Year, t.Description, t.CategoryID())
		if err != nil {
			return fmt.Errorf("failed to create title: %w", err)
		}
		return linkGenres(ctx, tx, t)
	})
}

func (r *postgresRepository) Update(ctx context.Context, t *title.Title, replaceGenres bool) error {
	return database.WithTransaction(ctx, r.pool, func(tx pgx.Tx) error {
		tag, err := tx.Exec(ctx, `
			UPDATE titles SET name = $2, year = $3, description = $4, category_id = $5
			WHERE id = $1`,
			t.ID, t.Name, t.Year, t.Description, t.CategoryID())
		if err != nil {
			return fmt.Errorf("failed to update title: %w", err)
		}
		if tag.RowsAffected() == 0 {
			return title.ErrTitleNotFound
		}
		if !replaceGenres {
			return nil
		}

		if _, err := tx.Exec(ctx, `DELETE FROM title_genres WHERE title_id = $1`, t.ID); err != nil {
			return fmt.Errorf("failed to clear title genres: %w", err)
		}
		return linkGenres(ctx, tx, t)
	})
}

func linkGenres(ctx context.Context, tx pgx.Tx, t *title.Title) error {
	if len(t.Genres) == 0 {
		return nil
	}
	_, err := tx.Exec(ctx, `
		INSERT INTO title_genres (title_id, genre_id)
		SELECT $1::uuid, UNNEST($2::uuid[])
		ON CONFLICT DO NOTHING`, t.ID, t.GenreIDs())
	if err != nil {
		return fmt.Errorf("failed to link title genres: %w", err)
	}
	return nil
}

func (r *postgresRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM titles WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete title: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return title.ErrTitleNotFound
	}
	return nil
}
