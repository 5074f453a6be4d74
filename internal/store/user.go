package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/filedrop/filedrop_api/internal/errlocal"
	"github.com/filedrop/filedrop_api/internal/models"
)

const userColumns = "id, email, name, hashed_password, created_at, updated_at"

func scanUser(row pgx.Row, user *models.User) error {
	return row.Scan(&user.ID, &user.Email, &user.Name, &user.HashedPassword,
		&user.CreatedAt, &user.UpdatedAt)
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation
}

// CreateUser persists a new user. Email uniqueness is enforced with an exact,
// case-sensitive match, mirroring the registration behavior of the rest of
// the API surface.
func (s *pgStore) CreateUser(ctx context.Context, user *models.User) error {
	ctx, cancel := context.WithTimeout(ctx, connTimeout)
	defer cancel()

	_, gErr := s.GetUserByEmail(ctx, user.Email)
	if gErr == nil {
		return errlocal.NewErrConflict("email already registered", "",
			map[string]any{"email": user.Email})
	}
	var notFoundErr *errlocal.ErrNotFound
	if !errors.As(gErr, &notFoundErr) {
		return fmt.Errorf("database error: %w", gErr)
	}

	query := `INSERT INTO users (email, name, hashed_password)
	          VALUES ($1, $2, $3)
	          RETURNING id, created_at, updated_at`

	err := s.pool.QueryRow(ctx, query, user.Email, user.Name, user.HashedPassword).
		Scan(&user.ID, &user.CreatedAt, &user.UpdatedAt)
	if err != nil {
		// A concurrent registration can slip past the lookup above; the
		// unique index on email is the authoritative check.
		if isUniqueViolation(err) {
			return errlocal.NewErrConflict("email already registered", err.Error(),
				map[string]any{"email": user.Email})
		}
		return fmt.Errorf("db error: %w", err)
	}

	return nil
}

func (s *pgStore) GetUser(ctx context.Context, id uuid.UUID) (*models.User, error) {
	ctx, cancel := context.WithTimeout(ctx, connTimeout)
	defer cancel()

	query := fmt.Sprintf(`SELECT %s FROM users WHERE id = $1`, userColumns)

	var user models.User
	if err := scanUser(s.pool.QueryRow(ctx, query, id), &user); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errlocal.NewErrNotFound("user not found", err.Error(),
				map[string]any{"user_id": id.String()})
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return &user, nil
}

func (s *pgStore) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	ctx, cancel := context.WithTimeout(ctx, connTimeout)
	defer cancel()

	query := fmt.Sprintf(`SELECT %s FROM users WHERE email = $1`, userColumns)

	var user models.User
	if err := scanUser(s.pool.QueryRow(ctx, query, email), &user); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errlocal.NewErrNotFound("user not found", err.Error(),
				map[string]any{"email": email})
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return &user, nil
}

// FindUsersByEmails resolves the given addresses to existing users; addresses
// with no account are simply absent from the result.
func (s *pgStore) FindUsersByEmails(ctx context.Context, emails []string) ([]models.User, error) {
	ctx, cancel := context.WithTimeout(ctx, connTimeout)
	defer cancel()

	if len(emails) == 0 {
		return nil, nil
	}

	query := fmt.Sprintf(`SELECT %s FROM users WHERE email = ANY($1) ORDER BY email`, userColumns)

	rows, err := s.pool.Query(ctx, query, emails)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	var users []models.User
	for rows.Next() {
		var user models.User
		if err := scanUser(rows, &user); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		users = append(users, user)
	}

	return users, rows.Err()
}
