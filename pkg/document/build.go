package document

import (
	"context"
	"errors"

	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/mat"

	"github.com/basedalex/nlptk/pkg/stem"
	"github.com/basedalex/nlptk/pkg/words"
)

var ErrNoTerms = errors.New("document: no terms to build a matrix from")

// BuildMatrix counts the stemmed, stop-word-free terms of every document on
// up to workers goroutines. It returns the sorted vocabulary and a matrix
// with one row per vocabulary term and one column per document.
func BuildMatrix(ctx context.Context, docs []string, s stem.Stemmer, workers int) ([]string, *mat.Dense, error) {
	if workers < 1 {
		workers = 1
	}

	counts := make([]map[string]float64, len(docs))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for i, doc := range docs {
		i, doc := i, doc
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			counts[i] = words.StemmedTermFrequencies(words.RemoveStopWords(words.Tokens(doc)), s)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, nil, err
	}

	vocabulary := make(map[string]float64)
	for _, tf := range counts {
		for term := range tf {
			vocabulary[term] = 0
		}
	}
	if len(vocabulary) == 0 || len(docs) == 0 {
		return nil, nil, ErrNoTerms
	}

	terms := words.SortedTerms(vocabulary)
	m := mat.NewDense(len(terms), len(docs), nil)
	for i, term := range terms {
		for j, tf := range counts {
			m.Set(i, j, tf[term])
		}
	}

	return terms, m, nil
}
