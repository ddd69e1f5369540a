package main

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/basedalex/nlptk/internal/db"
	"github.com/basedalex/nlptk/pkg/config"
)

func TestSeed(t *testing.T) {
	ctx := context.Background()

	store, err := db.NewSQLite(ctx, filepath.Join(t.TempDir(), "seed.db"))
	require.NoError(t, err)
	defer store.Close()

	t.Setenv("NLPTK_ADMIN_PASSWORD", "hunter2")

	cfg := &config.Config{LexiconPath: filepath.Join("..", "..", "data", "lexicon.json")}
	require.NoError(t, seed(ctx, cfg, store))

	lex, err := store.LoadLexicon(ctx)
	require.NoError(t, err)
	assert.Len(t, lex, 3)
	assert.Equal(t, "betrai", lex["betrayed"].Stem)

	user, err := store.GetUserByLogin(ctx, "admin")
	require.NoError(t, err)
	assert.Equal(t, "admin", user.Role)

	hash, err := store.GetUserPasswordByLogin(ctx, "admin")
	require.NoError(t, err)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(hash), []byte("hunter2")))
}

func TestSeed_KeepsStoredTerms(t *testing.T) {
	ctx := context.Background()

	store, err := db.NewSQLite(ctx, filepath.Join(t.TempDir(), "seed.db"))
	require.NoError(t, err)
	defer store.Close()

	cfg := &config.Config{LexiconPath: filepath.Join("..", "..", "data", "lexicon.json")}
	require.NoError(t, seed(ctx, cfg, store))

	lex, err := store.LoadLexicon(ctx)
	require.NoError(t, err)
	edited := lex["abduction"]
	edited.Avg = [2]float64{8, 8.5}
	require.NoError(t, store.SaveTerm(ctx, edited))

	require.NoError(t, seed(ctx, cfg, store))

	lex, err = store.LoadLexicon(ctx)
	require.NoError(t, err)
	assert.Len(t, lex, 3)
	assert.Equal(t, [2]float64{8, 8.5}, lex["abduction"].Avg)
	assert.Equal(t, "betrai", lex["betrayed"].Stem)
}

func TestSeed_MissingLexicon(t *testing.T) {
	ctx := context.Background()

	store, err := db.NewSQLite(ctx, filepath.Join(t.TempDir(), "seed.db"))
	require.NoError(t, err)
	defer store.Close()

	cfg := &config.Config{LexiconPath: filepath.Join(t.TempDir(), "missing.json")}
	assert.Error(t, seed(ctx, cfg, store))
}
