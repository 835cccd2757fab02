//    ClinicalNoteTopics
//    Copyright: ClinicalNoteTopics contributors 2025-26
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package analysis

import (
	"fmt"
	"math"
	"sort"

	"github.com/james-bowman/nlp"

	"github.com/clinotes/ClinicalNoteTopics/internal/dtm"
	"github.com/clinotes/ClinicalNoteTopics/internal/lnch"
)

var Msg = lnch.NewMessageMakerWithDefaults()

//
// TF-IDF RE-RANKING
//

// TopicTFIDF - re-rank the vocabulary of one topic by TF-IDF computed within the documents whose
// dominant topic it is. Raw beta favors terms that are merely frequent; weighting term counts
// against their document frequency surfaces the terms that distinguish the topic's documents.
// Ties at the Nth rank are kept, as in TopTerms. A topic with no assigned documents yields nil.
func TopicTFIDF(m *dtm.Matrix, asg []Assignment, topic int, n int) ([]RankedTerm, error) {
	var docs []string
	for i := 0; i < len(asg); i++ {
		if asg[i].Topic == topic {
			docs = append(docs, asg[i].Doc)
		}
	}
	if len(docs) == 0 {
		return nil, nil
	}

	sub := m.SubMatrix(docs)

	tr := nlp.NewTfidfTransformer()
	weighted, err := tr.FitTransform(sub.Counts)
	if err != nil {
		return nil, fmt.Errorf("tf-idf over topic %d (%d documents): %w", topic, len(docs), err)
	}

	rr := make([]RankedTerm, 0, len(sub.Terms))
	for i := 0; i < len(sub.Terms); i++ {
		score := 0.0
		for j := 0; j < len(sub.Docs); j++ {
			score += weighted.At(i, j)
		}
		if score > 0 {
			rr = append(rr, RankedTerm{Term: sub.Terms[i], Score: score})
		}
	}
	sortranked(rr)

	return cutwithties(rr, n), nil
}

// AllTopicTFIDF - TopicTFIDF for every topic 0..k-1
func AllTopicTFIDF(m *dtm.Matrix, asg []Assignment, k int, n int) ([][]RankedTerm, error) {
	out := make([][]RankedTerm, k)
	for topic := 0; topic < k; topic++ {
		rr, err := TopicTFIDF(m, asg, topic, n)
		if err != nil {
			return nil, err
		}
		out[topic] = rr
	}
	return out, nil
}

// CommonTerms - the corpus-wide terms with the lowest IDF, i.e. the ones present in the most
// documents. These carry the least topical signal and are the natural candidates for the
// exclusion list on the next run. The score reported is the IDF itself; lower means more common.
func CommonTerms(m *dtm.Matrix, n int) []RankedTerm {
	const (
		FYI1 = "CommonTerms() offering %d exclusion candidates from %d terms"
	)

	docs := float64(len(m.Docs))
	rr := make([]RankedTerm, len(m.Terms))
	for i := 0; i < len(m.Terms); i++ {
		df := float64(m.DocFrequency(i))
		// smoothed idf, the formula the tf-idf transformer uses
		rr[i] = RankedTerm{Term: m.Terms[i], Score: math.Log((1+docs)/(1+df)) + 1}
	}

	// ascending: the common terms are the low scorers
	sort.Slice(rr, func(i, j int) bool {
		if rr[i].Score != rr[j].Score {
			return rr[i].Score < rr[j].Score
		}
		return rr[i].Term < rr[j].Term
	})

	out := cutwithties(rr, n)
	Msg.FYI(fmt.Sprintf(FYI1, len(out), len(m.Terms)))
	return out
}
