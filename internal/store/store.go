package store

import (
	"context"
	"fmt"
	"net/url"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/filedrop/filedrop_api/internal/config"
	"github.com/filedrop/filedrop_api/internal/models"
)

const connTimeout = time.Second * 5

type Store interface {
	CreateUser(ctx context.Context, user *models.User) error
	GetUser(ctx context.Context, id uuid.UUID) (*models.User, error)
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
	FindUsersByEmails(ctx context.Context, emails []string) ([]models.User, error)

	CreateFiles(ctx context.Context, files []*models.File) error
	GetFile(ctx context.Context, id uuid.UUID) (*models.File, error)
	GetFileByShareToken(ctx context.Context, token string) (*models.File, error)
	ListOwnedFiles(ctx context.Context, ownerID uuid.UUID) ([]models.File, error)
	ListSharedFiles(ctx context.Context, userID uuid.UUID) ([]models.File, error)
	AddFileShares(ctx context.Context, fileID uuid.UUID, userIDs []uuid.UUID) error
	SetShareTokenIfAbsent(ctx context.Context, fileID uuid.UUID, token string) (string, error)

	Close()
	Conn() *pgxpool.Pool
}

type pgStore struct {
	pool *pgxpool.Pool
}

func NewPGStore(conf config.Config) (Store, error) {
	dsn := url.URL{
		Scheme:   "postgres",
		Host:     fmt.Sprintf("%s:%s", conf.DB.Host, conf.DB.Port),
		User:     url.UserPassword(conf.DB.User, conf.DB.Password),
		Path:     "/" + conf.DB.Name,
		RawQuery: "sslmode=" + conf.DB.SSLMode,
	}

	ctx, cancel := context.WithTimeout(context.Background(), connTimeout)
	defer cancel()

	pool, err := pgxpool.New(ctx, dsn.String())
	if err != nil {
		return nil, err
	}

	if err := pool.Ping(ctx); err != nil {
		return nil, err
	}

	return &pgStore{pool: pool}, nil
}

func (s *pgStore) Close() {
	s.pool.Close()
}

func (s *pgStore) Conn() *pgxpool.Pool {
	return s.pool
}
