package db

import (
	"context"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/basedalex/nlptk/pkg/config"
	"github.com/basedalex/nlptk/pkg/sentiment"
)

// Store persists lexicon terms and service users.
type Store interface {
	SaveTerm(ctx context.Context, e sentiment.Entry) error
	LoadLexicon(ctx context.Context) (sentiment.Lexicon, error)
	AddUser(ctx context.Context, login, password, role string) error
	GetUserByLogin(ctx context.Context, login string) (User, error)
	GetUserPasswordByLogin(ctx context.Context, login string) (string, error)
	Close()
}

type User struct {
	Login string
	Role  string
}

// New opens the store selected by cfg.Storage and creates its tables.
func New(ctx context.Context, cfg *config.Config) (Store, error) {
	switch cfg.Storage {
	case config.StoragePostgres:
		pg, err := NewPostgres(ctx, cfg.DSN)
		if err != nil {
			return nil, err
		}
		return pg, nil
	case config.StorageSQLite:
		lite, err := NewSQLite(ctx, cfg.SQLitePath)
		if err != nil {
			return nil, err
		}
		return lite, nil
	default:
		return nil, fmt.Errorf("database: unknown storage %q", cfg.Storage)
	}
}

func hashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("database: %w", err)
	}
	return string(hash), nil
}
