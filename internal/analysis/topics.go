//    ClinicalNoteTopics
//    Copyright: ClinicalNoteTopics contributors 2025-26
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package analysis

import (
	"sort"

	"github.com/clinotes/ClinicalNoteTopics/internal/lda"
)

//
// POST-MODEL ANALYSIS
//

// RankedTerm - a term and the score that ranked it
type RankedTerm struct {
	Term  string
	Score float64
}

// Assignment - the dominant topic for one document
type Assignment struct {
	Doc   string
	Topic int
	Gamma float64
	Tied  bool
}

// TopTerms - per topic, the top-N terms by beta. Ties at the Nth rank are all kept rather than
// truncated: the result has exactly N entries unless the boundary score repeats.
func TopTerms(mod *lda.Model, n int) [][]RankedTerm {
	out := make([][]RankedTerm, mod.K)
	for topic := 0; topic < mod.K; topic++ {
		rr := make([]RankedTerm, len(mod.Terms))
		for i := 0; i < len(mod.Terms); i++ {
			rr[i] = RankedTerm{Term: mod.Terms[i], Score: mod.Beta.At(topic, i)}
		}
		sortranked(rr)
		out[topic] = cutwithties(rr, n)
	}
	return out
}

// Classify - dominant topic per document: the topic with maximal gamma. An exact tie resolves
// to the lowest topic index among the tied topics and the assignment is flagged Tied.
func Classify(mod *lda.Model) []Assignment {
	out := make([]Assignment, len(mod.Docs))
	for d := 0; d < len(mod.Docs); d++ {
		winner := 0
		max := mod.Gamma.At(d, 0)
		tied := false
		for topic := 1; topic < mod.K; topic++ {
			g := mod.Gamma.At(d, topic)
			if g > max {
				winner = topic
				max = g
				tied = false
			} else if g == max {
				tied = true
			}
		}
		out[d] = Assignment{Doc: mod.Docs[d], Topic: winner, Gamma: max, Tied: tied}
	}
	return out
}

// DocsPerTopic - N documents have topic X as their dominant topic
func DocsPerTopic(mod *lda.Model, asg []Assignment) []int {
	counter := make([]int, mod.K)
	for i := 0; i < len(asg); i++ {
		counter[asg[i].Topic] += 1
	}
	return counter
}

// TopicWeights - total accumulated gamma of each topic, scaled against the heaviest topic
func TopicWeights(mod *lda.Model) []float64 {
	counter := make([]float64, mod.K)
	for d := 0; d < len(mod.Docs); d++ {
		for topic := 0; topic < mod.K; topic++ {
			counter[topic] += mod.Gamma.At(d, topic)
		}
	}

	high := 0.0
	for i := 0; i < len(counter); i++ {
		if counter[i] > high {
			high = counter[i]
		}
	}

	scaled := make([]float64, mod.K)
	if high == 0 {
		return scaled
	}
	for i := 0; i < mod.K; i++ {
		scaled[i] = counter[i] / high
	}
	return scaled
}

// sortranked - descending score; term order breaks exact score ties so ranking is deterministic
func sortranked(rr []RankedTerm) {
	sort.Slice(rr, func(i, j int) bool {
		if rr[i].Score != rr[j].Score {
			return rr[i].Score > rr[j].Score
		}
		return rr[i].Term < rr[j].Term
	})
}

// cutwithties - first n of a sorted ranking, extended while the boundary score repeats
func cutwithties(rr []RankedTerm, n int) []RankedTerm {
	if n <= 0 || n >= len(rr) {
		return rr
	}
	cut := n
	for cut < len(rr) && rr[cut].Score == rr[n-1].Score {
		cut += 1
	}
	return rr[:cut]
}
