package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/filedrop/filedrop_api/internal/errlocal"
	"github.com/filedrop/filedrop_api/internal/models"
)

// fileColumns selects a file row plus its aggregated share list; queries
// using it must GROUP BY f.id.
const fileColumns = `f.id, f.owner_id, f.original_name, f.stored_name, f.mimetype,
	f.size, f.uploaded_at, f.share_token,
	COALESCE(array_agg(fs.user_id) FILTER (WHERE fs.user_id IS NOT NULL), '{}')`

func scanFile(row pgx.Row, file *models.File) error {
	return row.Scan(&file.ID, &file.OwnerID, &file.OriginalName, &file.StoredName,
		&file.Mimetype, &file.Size, &file.UploadedAt, &file.ShareToken, &file.SharedWith)
}

// CreateFiles persists a batch of file records in one transaction: either
// every record in the batch is committed or none are.
func (s *pgStore) CreateFiles(ctx context.Context, files []*models.File) error {
	ctx, cancel := context.WithTimeout(ctx, connTimeout)
	defer cancel()

	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	query := `INSERT INTO files (owner_id, original_name, stored_name, mimetype, size)
	          VALUES ($1, $2, $3, $4, $5)
	          RETURNING id, uploaded_at`

	for _, file := range files {
		err := tx.QueryRow(ctx, query,
			file.OwnerID, file.OriginalName, file.StoredName, file.Mimetype, file.Size).
			Scan(&file.ID, &file.UploadedAt)
		if err != nil {
			return fmt.Errorf("db error: %w", err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("db error: %w", err)
	}

	return nil
}

func (s *pgStore) GetFile(ctx context.Context, id uuid.UUID) (*models.File, error) {
	ctx, cancel := context.WithTimeout(ctx, connTimeout)
	defer cancel()

	query := fmt.Sprintf(`SELECT %s FROM files f
	          LEFT JOIN file_shares fs ON fs.file_id = f.id
	          WHERE f.id = $1
	          GROUP BY f.id`, fileColumns)

	var file models.File
	if err := scanFile(s.pool.QueryRow(ctx, query, id), &file); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errlocal.NewErrNotFound("file not found", err.Error(),
				map[string]any{"file_id": id.String()})
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return &file, nil
}

func (s *pgStore) GetFileByShareToken(ctx context.Context, token string) (*models.File, error) {
	ctx, cancel := context.WithTimeout(ctx, connTimeout)
	defer cancel()

	query := fmt.Sprintf(`SELECT %s FROM files f
	          LEFT JOIN file_shares fs ON fs.file_id = f.id
	          WHERE f.share_token = $1
	          GROUP BY f.id`, fileColumns)

	var file models.File
	if err := scanFile(s.pool.QueryRow(ctx, query, token), &file); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errlocal.NewErrNotFound("invalid link", err.Error(), nil)
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return &file, nil
}

func (s *pgStore) ListOwnedFiles(ctx context.Context, ownerID uuid.UUID) ([]models.File, error) {
	query := fmt.Sprintf(`SELECT %s FROM files f
	          LEFT JOIN file_shares fs ON fs.file_id = f.id
	          WHERE f.owner_id = $1
	          GROUP BY f.id
	          ORDER BY f.uploaded_at DESC`, fileColumns)

	return s.listFiles(ctx, query, ownerID)
}

func (s *pgStore) ListSharedFiles(ctx context.Context, userID uuid.UUID) ([]models.File, error) {
	query := fmt.Sprintf(`SELECT %s FROM files f
	          LEFT JOIN file_shares fs ON fs.file_id = f.id
	          WHERE f.id IN (SELECT file_id FROM file_shares WHERE user_id = $1)
	          GROUP BY f.id
	          ORDER BY f.uploaded_at DESC`, fileColumns)

	return s.listFiles(ctx, query, userID)
}

func (s *pgStore) listFiles(ctx context.Context, query string, arg any) ([]models.File, error) {
	ctx, cancel := context.WithTimeout(ctx, connTimeout)
	defer cancel()

	rows, err := s.pool.Query(ctx, query, arg)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	files := []models.File{}
	for rows.Next() {
		var file models.File
		if err := scanFile(rows, &file); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		files = append(files, file)
	}

	return files, rows.Err()
}

// AddFileShares merges the given users into the file's share set. The upsert
// is atomic and idempotent, so concurrent grants cannot lose each other.
func (s *pgStore) AddFileShares(ctx context.Context, fileID uuid.UUID, userIDs []uuid.UUID) error {
	ctx, cancel := context.WithTimeout(ctx, connTimeout)
	defer cancel()

	if len(userIDs) == 0 {
		return nil
	}

	query := `INSERT INTO file_shares (file_id, user_id)
	          SELECT $1, unnest($2::uuid[])
	          ON CONFLICT DO NOTHING`

	if _, err := s.pool.Exec(ctx, query, fileID, userIDs); err != nil {
		return fmt.Errorf("db error: %w", err)
	}

	return nil
}

// SetShareTokenIfAbsent stores the token only when the file has none yet and
// returns whichever token ends up persisted. The conditional UPDATE makes
// first-time issuance race-free: concurrent callers all observe one winner.
func (s *pgStore) SetShareTokenIfAbsent(ctx context.Context, fileID uuid.UUID, token string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, connTimeout)
	defer cancel()

	query := `UPDATE files SET share_token = $2
	          WHERE id = $1 AND share_token IS NULL`

	if _, err := s.pool.Exec(ctx, query, fileID, token); err != nil {
		return "", fmt.Errorf("db error: %w", err)
	}

	var current *string
	err := s.pool.QueryRow(ctx, `SELECT share_token FROM files WHERE id = $1`, fileID).Scan(&current)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", errlocal.NewErrNotFound("file not found", err.Error(),
				map[string]any{"file_id": fileID.String()})
		}
		return "", fmt.Errorf("db error: %w", err)
	}
	if current == nil {
		return "", fmt.Errorf("share token not persisted for file %s", fileID)
	}

	return *current, nil
}
