package db

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/go-playground/assert/v2"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/basedalex/nlptk/pkg/config"
	"github.com/basedalex/nlptk/pkg/sentiment"
)

// stores returns every backend reachable from the test environment. Postgres
// joins only when NLPTK_TEST_PG_DSN points at a disposable database.
func stores(t *testing.T) map[string]Store {
	t.Helper()
	ctx := context.Background()

	lite, err := NewSQLite(ctx, filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(lite.Close)

	out := map[string]Store{"sqlite": lite}

	if dsn := os.Getenv("NLPTK_TEST_PG_DSN"); dsn != "" {
		pg, err := NewPostgres(ctx, dsn)
		require.NoError(t, err)
		_, err = pg.db.Exec(ctx, "TRUNCATE terms, users;")
		require.NoError(t, err)
		t.Cleanup(pg.Close)
		out["postgres"] = pg
	}

	return out
}

func Test_SaveTermAndLoadLexicon(t *testing.T) {
	for name, store := range stores(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()

			abduction := sentiment.Entry{Word: "abduction", Stem: "abduct", Avg: [2]float64{2.76, 5.53}, Std: [2]float64{2.06, 2.43}}
			bees := sentiment.Entry{Word: "bees", Stem: "bee", Avg: [2]float64{3.2, 6.51}, Std: [2]float64{2.07, 2.14}}

			require.NoError(t, store.SaveTerm(ctx, abduction))
			require.NoError(t, store.SaveTerm(ctx, bees))

			bees.Avg = [2]float64{7, 7}
			require.NoError(t, store.SaveTerm(ctx, bees))

			lex, err := store.LoadLexicon(ctx)
			require.NoError(t, err)
			assert.Equal(t, sentiment.Lexicon{"abduction": abduction, "bees": bees}, lex)
		})
	}
}

func Test_GetUserByLogin(t *testing.T) {
	for name, store := range stores(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			require.NoError(t, store.AddUser(ctx, "admin", "password", "admin"))

			t.Run("valid login", func(t *testing.T) {
				expectedUser := User{
					Login: "admin",
					Role:  "admin",
				}
				user, err := store.GetUserByLogin(ctx, "admin")
				require.NoError(t, err)
				assert.Equal(t, expectedUser, user)
			})

			t.Run("invalid login", func(t *testing.T) {
				_, err := store.GetUserByLogin(ctx, "random")

				switch name {
				case "postgres":
					require.EqualError(t, err, fmt.Sprintf("database: %s", pgx.ErrNoRows))
				default:
					require.ErrorIs(t, err, sql.ErrNoRows)
				}
			})
		})
	}
}

func Test_GetUserPasswordByLogin(t *testing.T) {
	for name, store := range stores(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			require.NoError(t, store.AddUser(ctx, "reader", "secret", "user"))

			hash, err := store.GetUserPasswordByLogin(ctx, "reader")
			require.NoError(t, err)
			assert.NotEqual(t, "secret", hash)
			require.NoError(t, bcrypt.CompareHashAndPassword([]byte(hash), []byte("secret")))

			require.NoError(t, store.AddUser(ctx, "reader", "changed", "admin"))
			hash, err = store.GetUserPasswordByLogin(ctx, "reader")
			require.NoError(t, err)
			require.NoError(t, bcrypt.CompareHashAndPassword([]byte(hash), []byte("changed")))

			user, err := store.GetUserByLogin(ctx, "reader")
			require.NoError(t, err)
			assert.Equal(t, "admin", user.Role)

			_, err = store.GetUserPasswordByLogin(ctx, "nobody")
			require.Error(t, err)
		})
	}
}

func Test_New(t *testing.T) {
	ctx := context.Background()

	store, err := New(ctx, &config.Config{Storage: config.StorageSQLite, SQLitePath: filepath.Join(t.TempDir(), "new.db")})
	require.NoError(t, err)
	store.Close()

	_, err = New(ctx, &config.Config{Storage: "mongo"})
	require.EqualError(t, err, `database: unknown storage "mongo"`)

	_, err = New(ctx, &config.Config{Storage: config.StoragePostgres, DSN: "not a dsn ==="})
	require.Error(t, err)
}
