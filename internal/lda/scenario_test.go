//    ClinicalNoteTopics
//    Copyright: ClinicalNoteTopics contributors 2025-26
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package lda

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/clinotes/ClinicalNoteTopics/internal/dtm"
	"github.com/clinotes/ClinicalNoteTopics/internal/gen"
	"github.com/clinotes/ClinicalNoteTopics/internal/tok"
)

// the full path from raw note text to a fitted model, on a corpus small enough to reason about

func TestThreeDocumentPipeline(t *testing.T) {
	notes := map[string]string{
		"docA": "high blood pressure hypertension",
		"docB": "normal checkup visit",
		"docC": "hypertension medication adjusted",
	}

	stops := gen.ToSet([]string{"the", "a", "visit"})
	chain := tok.NewChain(tok.NumericStage(), tok.StopwordStage(stops))

	var tt []tok.Token
	for _, id := range []string{"docA", "docB", "docC"} {
		tt = append(tt, tok.Tokenize(id, notes[id])...)
	}
	tt = chain.Apply(tt)

	m := dtm.Build([]string{"docA", "docB", "docC"}, tt)

	// all three documents survive filtering
	require.Equal(t, []string{"docA", "docB", "docC"}, m.Docs)
	assert.Empty(t, m.EmptyDocs)

	assert.NotZero(t, m.Count("hypertension", "docA"))
	assert.Zero(t, m.Count("hypertension", "docB"))
	assert.NotZero(t, m.Count("hypertension", "docC"))

	// "visit" was a stopword; docB keeps its other two tokens
	assert.Zero(t, m.Count("visit", "docB"))
	assert.Equal(t, 2, m.DocTokenTotal(m.DocIdx["docB"]))

	mod, err := Fit(context.Background(), m, Spec{K: 2, Seed: 42, Iterations: 50})
	require.NoError(t, err)

	gr, gc := mod.Gamma.Dims()
	require.Equal(t, 3, gr)
	require.Equal(t, 2, gc)
	for i := 0; i < gr; i++ {
		total := 0.0
		for j := 0; j < gc; j++ {
			total += mod.Gamma.At(i, j)
		}
		assert.InDelta(t, 1.0, total, 1e-6)
	}
}

func TestDuplicateDocumentStability(t *testing.T) {
	text := "hypertension bp lisinopril hypertension bp"
	other := "normal checkup healthy normal checkup"

	var tt []tok.Token
	tt = append(tt, tok.Tokenize("p1", text)...)
	tt = append(tt, tok.Tokenize("p2", text)...)
	tt = append(tt, tok.Tokenize("p3", other)...)

	m := dtm.Build([]string{"p1", "p2", "p3"}, tt)

	// identical documents produce identical count columns
	for _, term := range m.Terms {
		assert.Equal(t, m.Count(term, "p1"), m.Count(term, "p2"))
	}

	mod, err := Fit(context.Background(), m, Spec{K: 2, Seed: 42, Iterations: 100})
	require.NoError(t, err)

	// and land on the same dominant topic
	argmax := func(doc string) int {
		d := m.DocIdx[doc]
		best, bv := 0, mod.Gamma.At(d, 0)
		for topic := 1; topic < mod.K; topic++ {
			if v := mod.Gamma.At(d, topic); v > bv {
				best, bv = topic, v
			}
		}
		return best
	}
	assert.Equal(t, argmax("p1"), argmax("p2"))
}
