package db

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/mattn/go-sqlite3"
	"github.com/sirupsen/logrus"

	"github.com/basedalex/nlptk/pkg/sentiment"
)

const sqliteSchema = `
CREATE TABLE IF NOT EXISTS terms (
	word        TEXT PRIMARY KEY,
	stem        TEXT NOT NULL,
	valence     REAL NOT NULL,
	arousal     REAL NOT NULL,
	valence_std REAL NOT NULL,
	arousal_std REAL NOT NULL
);
CREATE TABLE IF NOT EXISTS users (
	login    TEXT PRIMARY KEY,
	password TEXT NOT NULL,
	role     TEXT NOT NULL DEFAULT 'user'
);`

// SQLite is a single-file Store for running the service without Postgres.
type SQLite struct {
	db *sql.DB
}

func NewSQLite(ctx context.Context, path string) (*SQLite, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("error opening database: %w", err)
	}
	// sqlite allows one writer at a time
	db.SetMaxOpenConns(1)

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("error pinging to database: %w", err)
	}

	if _, err := db.ExecContext(ctx, sqliteSchema); err != nil {
		db.Close()
		return nil, fmt.Errorf("error creating schema: %w", err)
	}

	return &SQLite{db: db}, nil
}

func (s *SQLite) Close() {
	if err := s.db.Close(); err != nil {
		logrus.Warn(err)
	}
}

func (s *SQLite) SaveTerm(ctx context.Context, e sentiment.Entry) error {
	stmt := `
	INSERT INTO terms (word, stem, valence, arousal, valence_std, arousal_std)
	VALUES (?, ?, ?, ?, ?, ?)
	ON CONFLICT (word) DO UPDATE SET
		stem = excluded.stem,
		valence = excluded.valence,
		arousal = excluded.arousal,
		valence_std = excluded.valence_std,
		arousal_std = excluded.arousal_std;`

	_, err := s.db.ExecContext(ctx, stmt, e.Word, e.Stem, e.Avg[0], e.Avg[1], e.Std[0], e.Std[1])
	if err != nil {
		return fmt.Errorf("database: %w", err)
	}

	return nil
}

func (s *SQLite) LoadLexicon(ctx context.Context) (sentiment.Lexicon, error) {
	query := `SELECT word, stem, valence, arousal, valence_std, arousal_std FROM terms`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("database: %w", err)
	}
	defer rows.Close()

	lex := make(sentiment.Lexicon)
	for rows.Next() {
		var e sentiment.Entry
		if err := rows.Scan(&e.Word, &e.Stem, &e.Avg[0], &e.Avg[1], &e.Std[0], &e.Std[1]); err != nil {
			logrus.Info(err)
			return nil, fmt.Errorf("database: %w", err)
		}
		lex[e.Word] = e
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("database: %w", err)
	}

	return lex, nil
}

func (s *SQLite) AddUser(ctx context.Context, login, password, role string) error {
	hash, err := hashPassword(password)
	if err != nil {
		return err
	}

	stmt := `
	INSERT INTO users (login, password, role)
	VALUES (?, ?, ?)
	ON CONFLICT (login) DO UPDATE SET password = excluded.password, role = excluded.role;`

	_, err = s.db.ExecContext(ctx, stmt, login, hash, role)
	if err != nil {
		return fmt.Errorf("database: %w", err)
	}

	return nil
}

func (s *SQLite) GetUserByLogin(ctx context.Context, login string) (User, error) {
	stmt := `SELECT login, role FROM users WHERE login = ?;`

	var user User
	err := s.db.QueryRowContext(ctx, stmt, login).Scan(&user.Login, &user.Role)
	if err != nil {
		logrus.Info(err)
		return User{}, fmt.Errorf("database: %w", err)
	}

	return user, nil
}

func (s *SQLite) GetUserPasswordByLogin(ctx context.Context, login string) (string, error) {
	stmt := `SELECT password FROM users WHERE login = ?;`

	var password string
	err := s.db.QueryRowContext(ctx, stmt, login).Scan(&password)
	if err != nil {
		logrus.Info(err)
		return "", fmt.Errorf("database: %w", err)
	}

	return password, nil
}
