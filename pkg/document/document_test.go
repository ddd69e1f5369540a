package document

import (
	"context"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/basedalex/nlptk/pkg/stem"
)

// eleven terms across four documents
func sampleFrequencies() *mat.Dense {
	return mat.NewDense(11, 4, []float64{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 1,
		1, 0, 0, 0,
		1, 0, 0, 0,
		2, 0, 0, 0,
		0, 0, 0, 1,
		0, 1, 0, 0,
		0, 0, 0, 1,
		0, 0, 1, 0,
		1, 0, 0, 0,
	})
}

func TestTFIDF(t *testing.T) {
	want := mat.NewDense(11, 4, []float64{
		0.3535533905932738, 0, 0, 0,
		0, math.Sqrt2 / 2, 0, 0,
		0, 0, 0.447213595499958, 0.33333333333333337,
		0.3535533905932738, 0, 0, 0,
		0.3535533905932738, 0, 0, 0,
		math.Sqrt2 / 2, 0, 0, 0,
		0, 0, 0, 0.6666666666666667,
		0, math.Sqrt2 / 2, 0, 0,
		0, 0, 0, 0.6666666666666667,
		0, 0, 0.894427190999916, 0,
		0.3535533905932738, 0, 0, 0,
	})

	got := NewDocumentTermFrequencies(sampleFrequencies()).TFIDF()

	assert.True(t, mat.EqualApprox(want, got.Matrix(), 1e-12),
		"got\n%v", mat.Formatted(got.Matrix()))
}

func TestTFIDF_ZeroRowsAndColumns(t *testing.T) {
	tf := mat.NewDense(3, 3, []float64{
		1, 0, 0,
		0, 0, 0,
		1, 1, 0,
	})

	got := NewDocumentTermFrequencies(tf).TFIDF().Matrix()

	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			assert.False(t, math.IsNaN(got.At(i, j)), "(%d,%d)", i, j)
		}
		assert.Zero(t, got.At(i, 2))
		assert.Zero(t, got.At(1, i))
	}
	assert.InDelta(t, 1, got.At(2, 1), 1e-12)
}

func TestNewDocumentTermFrequencies_Copies(t *testing.T) {
	tf := sampleFrequencies()
	d := NewDocumentTermFrequencies(tf)

	tf.Set(0, 0, 42)
	assert.Equal(t, 1.0, d.Matrix().At(0, 0))
}

func TestCosineSimilarity(t *testing.T) {
	want := mat.NewDense(4, 4, []float64{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0.149071198499986,
		0, 0, 0.149071198499986, 1,
	})

	got := NewDocumentTermFrequencies(sampleFrequencies()).TFIDF().CosineSimilarity()

	assert.True(t, mat.EqualApprox(want, got, 1e-12), "got\n%v", mat.Formatted(got))
}

func TestLSACosineSimilarity(t *testing.T) {
	tfidf := NewDocumentTermFrequencies(sampleFrequencies()).TFIDF()

	t.Run("full rank matches plain cosine", func(t *testing.T) {
		got, err := tfidf.LSACosineSimilarity(4)
		require.NoError(t, err)
		assert.True(t, mat.EqualApprox(tfidf.CosineSimilarity(), got, 1e-9), "got\n%v", mat.Formatted(got))
	})

	t.Run("reduced rank", func(t *testing.T) {
		got, err := tfidf.LSACosineSimilarity(2)
		require.NoError(t, err)

		r, c := got.Dims()
		require.Equal(t, 4, r)
		require.Equal(t, 4, c)
		for i := 0; i < 4; i++ {
			assert.Equal(t, 1.0, got.At(i, i))
			for j := 0; j < 4; j++ {
				assert.InDelta(t, got.At(i, j), got.At(j, i), 1e-12)
				assert.LessOrEqual(t, math.Abs(got.At(i, j)), 1+1e-9)
			}
		}
	})

	t.Run("invalid rank", func(t *testing.T) {
		for _, k := range []int{0, -1, 5} {
			_, err := tfidf.LSACosineSimilarity(k)
			assert.ErrorIs(t, err, ErrInvalidRank, k)
		}
	})
}

func TestBuildMatrix(t *testing.T) {
	docs := []string{
		"The meetings were long.",
		"A meeting with bees!",
		"Bees, bees and bees.",
	}

	terms, m, err := BuildMatrix(context.Background(), docs, stem.Func(stem.Stem), 2)
	require.NoError(t, err)

	assert.Equal(t, []string{"bee", "long", "meet"}, terms)
	assert.True(t, mat.Equal(mat.NewDense(3, 3, []float64{
		0, 1, 3,
		1, 0, 0,
		1, 1, 0,
	}), m), "got\n%v", mat.Formatted(m))
}

func TestBuildMatrix_Errors(t *testing.T) {
	t.Run("only stop words", func(t *testing.T) {
		_, _, err := BuildMatrix(context.Background(), []string{"the and of", "it is"}, stem.Func(stem.Stem), 1)
		assert.ErrorIs(t, err, ErrNoTerms)
	})

	t.Run("no documents", func(t *testing.T) {
		_, _, err := BuildMatrix(context.Background(), nil, stem.Func(stem.Stem), 4)
		assert.ErrorIs(t, err, ErrNoTerms)
	})

	t.Run("cancelled", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, _, err := BuildMatrix(ctx, []string{"bees"}, stem.Func(stem.Stem), 1)
		assert.ErrorIs(t, err, context.Canceled)
	})
}

func TestBuildMatrix_ClassicStemmer(t *testing.T) {
	s, err := stem.New("classic")
	require.NoError(t, err)

	terms, m, err := BuildMatrix(context.Background(), []string{"we eed the seeds", "cats"}, s, 2)
	require.NoError(t, err)

	assert.Contains(t, terms, "eed")
	assert.Contains(t, terms, "cat")
	_, c := m.Dims()
	assert.Equal(t, 2, c)
}
