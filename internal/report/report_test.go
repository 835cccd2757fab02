//    ClinicalNoteTopics
//    Copyright: ClinicalNoteTopics contributors 2025-26
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package report

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/clinotes/ClinicalNoteTopics/internal/analysis"
	"github.com/clinotes/ClinicalNoteTopics/internal/ingest"
	"github.com/clinotes/ClinicalNoteTopics/internal/lda"
)

func testpayload() *Payload {
	mod := &lda.Model{
		K:     2,
		Seed:  42,
		Terms: []string{"bp", "checkup", "hypertension", "normal"},
		Docs:  []string{"p1", "p2", "p3", "p4", "p5"},
		Beta: mat.NewDense(2, 4, []float64{
			0.45, 0.05, 0.45, 0.05,
			0.05, 0.45, 0.05, 0.45,
		}),
		Gamma: mat.NewDense(5, 2, []float64{
			0.9, 0.1,
			0.2, 0.8,
			0.7, 0.3,
			0.1, 0.9,
			0.6, 0.4,
		}),
		Perplexity: 12.34,
	}

	tops := analysis.TopTerms(mod, 2)
	asg := analysis.Classify(mod)
	tfidf := [][]analysis.RankedTerm{
		{{Term: "hypertension", Score: 1.5}, {Term: "bp", Score: 1.1}},
		{{Term: "normal", Score: 1.4}, {Term: "checkup", Score: 1.2}},
	}
	common := []analysis.RankedTerm{{Term: "checkup", Score: 1.0}}
	ir := &ingest.Report{Parsed: 9, Failures: 1, Repaired: 2, DistinctPatients: 5}

	p := NewPayload(mod, tops, tfidf, asg, common, []string{"p9"}, ir)
	p.Settings = "in=notes.tsv; k=2; seed=42"
	return p
}

func TestNewPayload(t *testing.T) {
	p := testpayload()

	assert.NotEmpty(t, p.RunID)
	assert.False(t, p.Generated.IsZero())
	assert.Equal(t, []int{3, 2}, p.PerTopic)
	require.Len(t, p.Weights, 2)
	assert.InDelta(t, 1.0, p.Weights[0], 1e-9)
}

func TestRender(t *testing.T) {
	p := testpayload()

	var buf bytes.Buffer
	require.NoError(t, Render(&buf, p))
	out := buf.String()

	// a self-contained document with the echarts runtime wired in
	assert.Contains(t, out, "<!DOCTYPE html>")
	assert.Contains(t, out, "echarts.min.js")
	assert.Contains(t, out, "echarts.init")

	// the provenance table
	assert.Contains(t, out, p.RunID)
	assert.Contains(t, out, "in=notes.tsv; k=2; seed=42")
	assert.Contains(t, out, "12.34")
	assert.Contains(t, out, "p9")

	// the topic summary and its charts
	assert.Contains(t, out, "Latent Dirichlet Allocation")
	assert.Contains(t, out, "hypertension")
	assert.Contains(t, out, "Documents per topic")
	assert.Contains(t, out, "Topic 1 top terms")
	assert.Contains(t, out, "Topic 2 top terms")
	assert.Contains(t, out, "Documents in topic space")

	// the exclusion candidates
	assert.Contains(t, out, "exclusion candidates")
	assert.Contains(t, out, "checkup")
}

func TestWrite(t *testing.T) {
	p := testpayload()

	dir := t.TempDir()
	pth := filepath.Join(dir, "report.html")

	require.NoError(t, Write(pth, p))

	b, err := os.ReadFile(pth)
	require.NoError(t, err)
	assert.Contains(t, string(b), "<!DOCTYPE html>")
}

func TestTermlist(t *testing.T) {
	rr := []analysis.RankedTerm{{Term: "a", Score: 2}, {Term: "b", Score: 1}}
	assert.Equal(t, "a, b", termlist(rr))
	assert.Equal(t, "", termlist(nil))
}
