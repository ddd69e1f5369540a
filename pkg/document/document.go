// Package document weighs term frequencies across a collection of documents
// and compares the documents with cosine similarity, optionally in a reduced
// latent semantic space.
package document

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

var (
	ErrInvalidRank = errors.New("document: invalid rank")
	ErrSVD         = errors.New("document: singular value decomposition failed")
)

// DocumentTermFrequencies holds raw term counts, one row per term and one
// column per document.
type DocumentTermFrequencies struct {
	m *mat.Dense
}

// NewDocumentTermFrequencies copies m.
func NewDocumentTermFrequencies(m mat.Matrix) *DocumentTermFrequencies {
	return &DocumentTermFrequencies{m: mat.DenseCopyOf(m)}
}

func (d *DocumentTermFrequencies) Matrix() mat.Matrix {
	return d.m
}

// TFIDF weights every count by ln(documents / documents containing the
// term) and scales each document column to unit length. Terms that appear
// nowhere and documents with no weighted terms stay zero.
func (d *DocumentTermFrequencies) TFIDF() *TFIDFMatrix {
	w := mat.DenseCopyOf(d.m)
	rows, cols := w.Dims()

	for i := 0; i < rows; i++ {
		row := w.RawRowView(i)

		var df float64
		for _, f := range row {
			if f > 0 {
				df++
			}
		}
		if df == 0 {
			continue
		}

		idf := math.Log(float64(cols) / df)
		for j := range row {
			row[j] *= idf
		}
	}

	for j := 0; j < cols; j++ {
		norm := mat.Norm(w.ColView(j), 2)
		if norm == 0 {
			continue
		}
		for i := 0; i < rows; i++ {
			w.Set(i, j, w.At(i, j)/norm)
		}
	}

	return &TFIDFMatrix{m: w}
}

type TFIDFMatrix struct {
	m *mat.Dense
}

func (t *TFIDFMatrix) Matrix() mat.Matrix {
	return t.m
}

// CosineSimilarity compares every pair of documents. The columns are already
// unit length so the similarity is their dot product; the diagonal is 1.
func (t *TFIDFMatrix) CosineSimilarity() *mat.Dense {
	var sim mat.Dense
	sim.Mul(t.m.T(), t.m)

	_, cols := t.m.Dims()
	for i := 0; i < cols; i++ {
		sim.Set(i, i, 1)
	}
	return &sim
}

// LSACosineSimilarity compares documents after projecting them onto the k
// largest singular vectors of the TF-IDF matrix.
func (t *TFIDFMatrix) LSACosineSimilarity(k int) (*mat.Dense, error) {
	rows, cols := t.m.Dims()
	if k < 1 || k > min(rows, cols) {
		return nil, fmt.Errorf("%w: %d not in [1, %d]", ErrInvalidRank, k, min(rows, cols))
	}

	var svd mat.SVD
	if ok := svd.Factorize(t.m, mat.SVDThin); !ok {
		return nil, ErrSVD
	}

	var v mat.Dense
	svd.VTo(&v)
	values := svd.Values(nil)

	docs := mat.NewDense(cols, k, nil)
	for j := 0; j < cols; j++ {
		for i := 0; i < k; i++ {
			docs.Set(j, i, v.At(j, i)*values[i])
		}

		norm := mat.Norm(docs.RowView(j), 2)
		if norm == 0 {
			continue
		}
		for i := 0; i < k; i++ {
			docs.Set(j, i, docs.At(j, i)/norm)
		}
	}

	var sim mat.Dense
	sim.Mul(docs, docs.T())
	for i := 0; i < cols; i++ {
		sim.Set(i, i, 1)
	}
	return &sim, nil
}
