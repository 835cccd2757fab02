//    ClinicalNoteTopics
//    Copyright: ClinicalNoteTopics contributors 2025-26
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package tok

import (
	"strconv"
	"strings"
)

//
// FILTER CHAIN
//

// Stage - one predicate over a token; true means the token survives
type Stage struct {
	Name string
	Keep func(Token) bool
}

// Chain - an ordered, individually toggleable sequence of filter stages; stages never reorder survivors
type Chain struct {
	stages []Stage
}

func NewChain(stages ...Stage) *Chain {
	return &Chain{stages: stages}
}

// Apply - run every stage over the stream in order; survivors keep their relative order within a document
func (c *Chain) Apply(tt []Token) []Token {
	out := make([]Token, 0, len(tt))
	for _, t := range tt {
		keep := true
		for _, s := range c.stages {
			if !s.Keep(t) {
				keep = false
				break
			}
		}
		if keep {
			out = append(out, t)
		}
	}
	return out
}

// NumericStage - drop tokens that parse fully as numeric literals ("120", "98.6", "-3")
func NumericStage() Stage {
	return Stage{
		Name: "numeric",
		Keep: func(t Token) bool {
			_, err := strconv.ParseFloat(t.Term, 64)
			return err != nil
		},
	}
}

// StopwordStage - drop tokens present in the configured stop-word set
func StopwordStage(stops map[string]struct{}) Stage {
	return Stage{
		Name: "stopwords",
		Keep: func(t Token) bool {
			_, s := stops[t.Term]
			return !s
		},
	}
}

// ExclusionStage - drop tokens matching any operator-supplied exclusion term (case-insensitive substring match)
func ExclusionStage(terms []string) Stage {
	lc := make([]string, len(terms))
	for i := 0; i < len(terms); i++ {
		lc[i] = strings.ToLower(terms[i])
	}
	return Stage{
		Name: "exclusions",
		Keep: func(t Token) bool {
			for i := 0; i < len(lc); i++ {
				if strings.Contains(t.Term, lc[i]) {
					return false
				}
			}
			return true
		},
	}
}
