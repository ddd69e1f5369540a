package db

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/sirupsen/logrus"

	"github.com/basedalex/nlptk/pkg/sentiment"
)

var postgresSchema = []string{
	`CREATE TABLE IF NOT EXISTS terms (
		word        TEXT PRIMARY KEY,
		stem        TEXT NOT NULL,
		valence     DOUBLE PRECISION NOT NULL,
		arousal     DOUBLE PRECISION NOT NULL,
		valence_std DOUBLE PRECISION NOT NULL,
		arousal_std DOUBLE PRECISION NOT NULL
	);`,
	`CREATE TABLE IF NOT EXISTS users (
		login    TEXT PRIMARY KEY,
		password TEXT NOT NULL,
		role     TEXT NOT NULL DEFAULT 'user'
	);`,
}

type Postgres struct {
	db *pgxpool.Pool
}

func NewPostgres(ctx context.Context, dbConnect string) (*Postgres, error) {
	config, err := pgxpool.ParseConfig(dbConnect)
	if err != nil {
		return nil, fmt.Errorf("error parsing connection string: %w", err)
	}

	db, err := pgxpool.NewWithConfig(ctx, config)
	if err != nil {
		return nil, fmt.Errorf("error connecting to database: %w", err)
	}

	err = db.Ping(ctx)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("error pinging to database: %w", err)
	}

	for _, stmt := range postgresSchema {
		if _, err := db.Exec(ctx, stmt); err != nil {
			db.Close()
			return nil, fmt.Errorf("error creating schema: %w", err)
		}
	}

	return &Postgres{db: db}, nil
}

func (db *Postgres) Close() {
	db.db.Close()
}

func (db *Postgres) SaveTerm(ctx context.Context, e sentiment.Entry) error {
	stmt := `
	INSERT INTO terms (word, stem, valence, arousal, valence_std, arousal_std)
	VALUES ($1, $2, $3, $4, $5, $6)
	ON CONFLICT (word) DO UPDATE SET
		stem = EXCLUDED.stem,
		valence = EXCLUDED.valence,
		arousal = EXCLUDED.arousal,
		valence_std = EXCLUDED.valence_std,
		arousal_std = EXCLUDED.arousal_std;`

	_, err := db.db.Exec(ctx, stmt, e.Word, e.Stem, e.Avg[0], e.Avg[1], e.Std[0], e.Std[1])
	if err != nil {
		return fmt.Errorf("database: %w", err)
	}

	return nil
}

func (db *Postgres) LoadLexicon(ctx context.Context) (sentiment.Lexicon, error) {
	query := `SELECT word, stem, valence, arousal, valence_std, arousal_std FROM terms`

	rows, err := db.db.Query(ctx, query)
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

func (db *Postgres) AddUser(ctx context.Context, login, password, role string) error {
	hash, err := hashPassword(password)
	if err != nil {
		return err
	}

	stmt := `
	INSERT INTO users (login, password, role)
	VALUES ($1, $2, $3)
	ON CONFLICT (login) DO UPDATE SET password = EXCLUDED.password, role = EXCLUDED.role;`

	_, err = db.db.Exec(ctx, stmt, login, hash, role)
	if err != nil {
		return fmt.Errorf("database: %w", err)
	}

	return nil
}

func (db *Postgres) GetUserByLogin(ctx context.Context, login string) (User, error) {
	stmt := `SELECT login, role FROM users WHERE login = $1;`

	row := db.db.QueryRow(ctx, stmt, login)
	var user User
	err := row.Scan(&user.Login, &user.Role)
	if err != nil {
		logrus.Info(err)
		return User{}, fmt.Errorf("database: %w", err)
	}

	return user, nil
}

func (db *Postgres) GetUserPasswordByLogin(ctx context.Context, login string) (string, error) {
	stmt := `SELECT password FROM users WHERE login = $1;`

	row := db.db.QueryRow(ctx, stmt, login)

	var password string

	err := row.Scan(&password)
	if err != nil {
		logrus.Info(err)
		return "", fmt.Errorf("database: %w", err)
	}

	return password, nil
}
