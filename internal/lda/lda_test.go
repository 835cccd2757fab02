//    ClinicalNoteTopics
//    Copyright: ClinicalNoteTopics contributors 2025-26
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package lda

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/clinotes/ClinicalNoteTopics/internal/dtm"
	"github.com/clinotes/ClinicalNoteTopics/internal/tok"
)

// three small documents with two plainly separable vocabularies
func testmatrix() *dtm.Matrix {
	var tt []tok.Token
	add := func(doc string, terms ...string) {
		for _, term := range terms {
			tt = append(tt, tok.Token{DocID: doc, Term: term})
		}
	}
	add("pA", "hypertension", "bp", "lisinopril", "hypertension", "bp", "hypertension")
	add("pB", "normal", "checkup", "healthy", "normal", "checkup", "normal")
	add("pC", "hypertension", "bp", "lisinopril", "hypertension", "lisinopril")
	return dtm.Build([]string{"pA", "pB", "pC"}, tt)
}

func TestFitValidation(t *testing.T) {
	m := testmatrix()
	ctx := context.Background()

	_, err := Fit(ctx, m, Spec{K: 1, Seed: 1})
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrInsufficientData)

	_, err = Fit(ctx, m, Spec{K: 10, Seed: 1})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInsufficientData)

	// more topics than documents
	_, err = Fit(ctx, m, Spec{K: 4, Seed: 1})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInsufficientData)

	empty := dtm.Build(nil, nil)
	_, err = Fit(ctx, empty, Spec{K: 2, Seed: 1})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInsufficientData)
}

func TestFitShapesAndNormalization(t *testing.T) {
	m := testmatrix()

	mod, err := Fit(context.Background(), m, Spec{K: 2, Seed: 42, Iterations: 50})
	require.NoError(t, err)

	assert.Equal(t, 2, mod.K)
	assert.Equal(t, uint64(42), mod.Seed)
	assert.Equal(t, m.Terms, mod.Terms)
	assert.Equal(t, m.Docs, mod.Docs)

	br, bc := mod.Beta.Dims()
	assert.Equal(t, 2, br)
	assert.Equal(t, len(m.Terms), bc)

	gr, gc := mod.Gamma.Dims()
	assert.Equal(t, len(m.Docs), gr)
	assert.Equal(t, 2, gc)

	for i := 0; i < br; i++ {
		total := 0.0
		for j := 0; j < bc; j++ {
			v := mod.Beta.At(i, j)
			assert.GreaterOrEqual(t, v, 0.0)
			total += v
		}
		assert.InDelta(t, 1.0, total, 1e-6)
	}

	for i := 0; i < gr; i++ {
		total := 0.0
		for j := 0; j < gc; j++ {
			v := mod.Gamma.At(i, j)
			assert.GreaterOrEqual(t, v, 0.0)
			total += v
		}
		assert.InDelta(t, 1.0, total, 1e-6)
	}
}

func TestFitReproducibility(t *testing.T) {
	m := testmatrix()
	sp := Spec{K: 2, Seed: 42, Iterations: 50}

	a, err := Fit(context.Background(), m, sp)
	require.NoError(t, err)
	b, err := Fit(context.Background(), m, sp)
	require.NoError(t, err)

	br, bc := a.Beta.Dims()
	for i := 0; i < br; i++ {
		for j := 0; j < bc; j++ {
			assert.Equal(t, a.Beta.At(i, j), b.Beta.At(i, j))
		}
	}

	gr, gc := a.Gamma.Dims()
	for i := 0; i < gr; i++ {
		for j := 0; j < gc; j++ {
			assert.Equal(t, a.Gamma.At(i, j), b.Gamma.At(i, j))
		}
	}
}

func TestFitCancellation(t *testing.T) {
	m := testmatrix()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := Fit(ctx, m, Spec{K: 2, Seed: 42})
	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestSweep(t *testing.T) {
	m := testmatrix()
	base := Spec{Seed: 42, Iterations: 30}

	mods, err := Sweep(context.Background(), m, []int{3, 2}, base, 2)
	require.NoError(t, err)
	require.Len(t, mods, 2)

	// sorted by K no matter what order the workers finished in
	assert.Equal(t, 2, mods[0].K)
	assert.Equal(t, 3, mods[1].K)
}

func TestSweepPartialFailure(t *testing.T) {
	m := testmatrix()
	base := Spec{Seed: 42, Iterations: 30}

	// k=9 exceeds the matrix; k=2 is fine
	mods, err := Sweep(context.Background(), m, []int{2, 9}, base, 2)

	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInsufficientData))
	require.Len(t, mods, 1)
	assert.Equal(t, 2, mods[0].K)
}
