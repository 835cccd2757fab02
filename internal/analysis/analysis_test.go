//    ClinicalNoteTopics
//    Copyright: ClinicalNoteTopics contributors 2025-26
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package analysis

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/clinotes/ClinicalNoteTopics/internal/dtm"
	"github.com/clinotes/ClinicalNoteTopics/internal/lda"
	"github.com/clinotes/ClinicalNoteTopics/internal/tok"
)

// a hand-built two-topic model over four terms and three documents
func testmodel() *lda.Model {
	return &lda.Model{
		K:     2,
		Seed:  42,
		Terms: []string{"bp", "checkup", "hypertension", "normal"},
		Docs:  []string{"p1", "p2", "p3"},
		Beta: mat.NewDense(2, 4, []float64{
			0.4, 0.1, 0.4, 0.1,
			0.1, 0.4, 0.1, 0.4,
		}),
		Gamma: mat.NewDense(3, 2, []float64{
			0.9, 0.1,
			0.2, 0.8,
			0.5, 0.5,
		}),
	}
}

func TestTopTermsKeepsTies(t *testing.T) {
	mod := testmodel()

	tops := TopTerms(mod, 1)

	require.Len(t, tops, 2)
	// topic 0 has "bp" and "hypertension" tied at 0.4: both survive a top-1 cut
	require.Len(t, tops[0], 2)
	assert.Equal(t, "bp", tops[0][0].Term)
	assert.Equal(t, "hypertension", tops[0][1].Term)

	// topic 1 ties "checkup" and "normal"
	require.Len(t, tops[1], 2)
	assert.Equal(t, "checkup", tops[1][0].Term)
}

func TestTopTermsOrdering(t *testing.T) {
	mod := testmodel()

	tops := TopTerms(mod, 4)

	require.Len(t, tops[0], 4)
	// descending score; ties broken by term so the ranking is stable
	assert.Equal(t, []string{"bp", "hypertension", "checkup", "normal"},
		[]string{tops[0][0].Term, tops[0][1].Term, tops[0][2].Term, tops[0][3].Term})
}

func TestClassify(t *testing.T) {
	mod := testmodel()

	asg := Classify(mod)

	require.Len(t, asg, 3)

	assert.Equal(t, Assignment{Doc: "p1", Topic: 0, Gamma: 0.9, Tied: false}, asg[0])
	assert.Equal(t, Assignment{Doc: "p2", Topic: 1, Gamma: 0.8, Tied: false}, asg[1])

	// an exact tie goes to the lowest topic index and is flagged
	assert.Equal(t, 0, asg[2].Topic)
	assert.True(t, asg[2].Tied)
}

func TestDocsPerTopic(t *testing.T) {
	mod := testmodel()
	asg := Classify(mod)

	counts := DocsPerTopic(mod, asg)

	assert.Equal(t, []int{2, 1}, counts)
}

func TestTopicWeights(t *testing.T) {
	mod := testmodel()

	w := TopicWeights(mod)

	require.Len(t, w, 2)
	// topic 0 accumulates 1.6, topic 1 accumulates 1.4; scaled against the heavier one
	assert.InDelta(t, 1.0, w[0], 1e-9)
	assert.InDelta(t, 1.4/1.6, w[1], 1e-9)
}

func testmatrix() *dtm.Matrix {
	var tt []tok.Token
	add := func(doc string, terms ...string) {
		for _, term := range terms {
			tt = append(tt, tok.Token{DocID: doc, Term: term})
		}
	}
	add("p1", "checkup", "hypertension", "hypertension", "bp")
	add("p2", "checkup", "normal")
	add("p3", "checkup", "normal", "normal")
	return dtm.Build([]string{"p1", "p2", "p3"}, tt)
}

func TestTopicTFIDF(t *testing.T) {
	m := testmatrix()
	asg := []Assignment{
		{Doc: "p1", Topic: 0},
		{Doc: "p2", Topic: 1},
		{Doc: "p3", Topic: 1},
	}

	rr, err := TopicTFIDF(m, asg, 1, 10)
	require.NoError(t, err)
	require.NotEmpty(t, rr)

	scores := make(map[string]float64)
	for _, rt := range rr {
		scores[rt.Term] = rt.Score
	}

	// "normal" distinguishes topic 1's documents; the ubiquitous "checkup" must not outrank it
	require.Contains(t, scores, "normal")
	assert.Greater(t, scores["normal"], scores["checkup"])

	// terms absent from the topic's documents carry no score at all
	assert.NotContains(t, scores, "hypertension")
}

func TestTopicTFIDFNoDocuments(t *testing.T) {
	m := testmatrix()

	rr, err := TopicTFIDF(m, []Assignment{{Doc: "p1", Topic: 0}}, 5, 10)

	require.NoError(t, err)
	assert.Nil(t, rr)
}

func TestAllTopicTFIDF(t *testing.T) {
	m := testmatrix()
	asg := []Assignment{
		{Doc: "p1", Topic: 0},
		{Doc: "p2", Topic: 1},
		{Doc: "p3", Topic: 1},
	}

	all, err := AllTopicTFIDF(m, asg, 2, 10)

	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.NotEmpty(t, all[0])
	assert.NotEmpty(t, all[1])
}

func TestCommonTerms(t *testing.T) {
	m := testmatrix()

	cc := CommonTerms(m, 1)

	require.NotEmpty(t, cc)
	// "checkup" is in all three documents: the lowest idf in the corpus
	assert.Equal(t, "checkup", cc[0].Term)

	for i := 1; i < len(cc); i++ {
		assert.GreaterOrEqual(t, cc[i].Score, cc[i-1].Score)
	}
}
