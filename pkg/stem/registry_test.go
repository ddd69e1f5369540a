package stem

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	t.Run("default", func(t *testing.T) {
		s, err := New("")
		require.NoError(t, err)

		got, err := s.Stem("meetings")
		require.NoError(t, err)
		assert.Equal(t, "meet", got)
	})

	t.Run("snowball", func(t *testing.T) {
		s, err := New("snowball")
		require.NoError(t, err)

		got, err := s.Stem("running")
		require.NoError(t, err)
		assert.Equal(t, "run", got)
	})

	t.Run("classic", func(t *testing.T) {
		s, err := New("Classic")
		require.NoError(t, err)

		got, err := s.Stem("caresses")
		require.NoError(t, err)
		assert.Equal(t, "caress", got)
	})

	t.Run("unknown", func(t *testing.T) {
		_, err := New("lancaster")
		assert.ErrorIs(t, err, ErrUnknownAlgorithm)
	})
}

func TestGuardedContract(t *testing.T) {
	for _, name := range Algorithms() {
		s, err := New(name)
		require.NoError(t, err)

		_, err = s.Stem("hopè")
		assert.ErrorIs(t, err, ErrNonASCII, name)

		got, err := s.Stem("Hi")
		require.NoError(t, err)
		assert.Equal(t, "Hi", got, name)
	}
}

func TestGuardedEdgeWords(t *testing.T) {
	edge := []string{"eed", "eeds", "Eed", "ies", "aed", "aing", "yyy", "sss"}

	for _, name := range Algorithms() {
		s, err := New(name)
		require.NoError(t, err)

		for _, word := range edge {
			assert.NotPanics(t, func() {
				got, err := s.Stem(word)
				assert.NoError(t, err, name)
				assert.NotEmpty(t, got, name)
			}, "%s(%q)", name, word)
		}
	}
}

func TestGuardedRecover(t *testing.T) {
	s := guarded(func(string) string { panic("index out of range") })

	got, err := s.Stem("Eeds")
	require.NoError(t, err)
	assert.Equal(t, "eeds", got)
}

func TestAlgorithms(t *testing.T) {
	assert.Equal(t, []string{"classic", "porter", "snowball"}, Algorithms())
}
