package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"catalog-review-backend/internal/domains/user"
	"catalog-review-backend/pkg/database"
)

const (
	uniqueViolation = "23505"

	usernameConstraint = "users_username_key"
	emailConstraint    = "users_email_key"

	userColumns = `id, username, email, first_name, last_name, bio, role, is_superuser, confirmation_code, date_joined`
)

// postgresRepository implements user.Repository
type postgresRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresRepository(pool *pgxpool.Pool) user.Repository {
	return &postgresRepository{pool: pool}
}

func scanUser(row pgx.Row) (*user.User, error) {
	var u user.User
	err := row.Scan(
		&u.ID,
		&u.Username,
		&u.Email,
		&u.FirstName,
		&u.LastName,
		&u.Bio,
		&u.Role,
		&u.IsSuperuser,
		&u.ConfirmationCode,
		&u.DateJoined,
	)
	if err != nil {
		return nil, err
	}
	return &u, nil
}

// conflictError converts a unique violation into a field error, nil otherwise
func conflictError(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
		switch pgErr.ConstraintName {
		case usernameConstraint:
			return user.UsernameTaken()
		case emailConstraint:
			return user.EmailTaken()
		}
	}
	return nil
}

func (r *postgresRepository) Create(ctx context.Context, u *user.User) error {
	query := `
		INSERT INTO users (id, username, email, first_name, last_name, bio, role, is_superuser, confirmation_code)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING date_joined
	`
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}

	err := r.pool.QueryRow(ctx, query,
		u.ID,
		u.Username,
		u.Email,
		u.FirstName,
		u.LastName,
		u.Bio,
		u.Role,
		u.IsSuperuser,
		u.ConfirmationCode,
	).Scan(&u.DateJoined)
	if err != nil {
		if conflict := conflictError(err); conflict != nil {
			return conflict
		}
		return fmt.Errorf("failed to create user: %w", err)
	}
	return nil
}

func (r *postgresRepository) getOne(ctx context.Context, where string, arg interface{}) (*user.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE ` + where
	u, err := scanUser(r.pool.QueryRow(ctx, query, arg))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, user.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	return u, nil
}

func (r *postgresRepository) GetByID(ctx context.Context, id uuid.UUID) (*user.User, error) {
	return r.getOne(ctx, "id = $1", id)
}

func (r *postgresRepository) GetByUsername(ctx context.Context, username string) (*user.User, error) {
	return r.getOne(ctx, "username = $1", username)
}

func (r *postgresRepository) GetByEmail(ctx context.Context, email string) (*user.User, error) {
	return r.getOne(ctx, "email = $1", email)
}

func (r *postgresRepository) List(ctx context.Context, filter user.ListFilter) ([]user.User, int64, error) {
	where := ""
	args := []interface{}{}
	if filter.Search != "" {
		args = append(args, database.ContainsPattern(filter.Search))
		where = " WHERE username ILIKE $1"
	}

	var total int64
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM users`+where, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count users: %w", err)
	}

	args = append(args, filter.Limit, filter.Offset)
	query := fmt.Sprintf(`SELECT %s FROM users%s ORDER BY username LIMIT $%d OFFSET $%d`,
		userColumns, where, len(args)-1, len(args))

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list users: %w", err)
	}
	defer rows.Close()

	users := make([]user.User, 0, filter.Limit)
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan user: %w", err)
		}
		users = append(users, *u)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("failed to iterate users: %w", err)
	}

	return users, total, nil
}

func (r *postgresRepository) Update(ctx context.Context, u *user.User) error {
	query := `
		UPDATE users
		SET username = $2, email = $3, first_name = $4, last_name = $5, bio = $6, role = $7
		WHERE id = $1
	`
	tag, err := r.pool.Exec(ctx, query, u.ID, u.Username, u.Email, u.FirstName, u.LastName, u.Bio, u.Role)
	if err != nil {
		if conflict := conflictError(err); conflict != nil {
			return conflict
		}
		return fmt.Errorf("failed to update user: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return user.ErrUserNotFound
	}
	return nil
}

func (r *postgresRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM users WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete user: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return user.ErrUserNotFound
	}
	return nil
}

func (r *postgresRepository) SetConfirmationCode(ctx context.Context, id uuid.UUID, codeHash *string) error {
	tag, err := r.pool.Exec(ctx, `UPDATE users SET confirmation_code = $2 WHERE id = $1`, id, codeHash)
	if err != nil {
		return fmt.Errorf("failed to set confirmation code: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return user.ErrUserNotFound
	}
	return nil
}

func (r *postgresRepository) ConsumeConfirmationCode(ctx context.Context, id uuid.UUID, codeHash string) (bool, error) {
	tag, err := r.pool.Exec(ctx,
		`UPDATE users SET confirmation_code = NULL WHERE id = $1 AND confirmation_code = $2`,
		id, codeHash,
	)
	if err != nil {
		return false, fmt.Errorf("failed to consume confirmation code: %w", err)
	}
	return tag.RowsAffected() == 1, nil
}
