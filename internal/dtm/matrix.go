//    ClinicalNoteTopics
//    Copyright: ClinicalNoteTopics contributors 2025-26
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package dtm

import (
	"sort"

	"github.com/james-bowman/sparse"

	"github.com/clinotes/ClinicalNoteTopics/internal/gen"
	"github.com/clinotes/ClinicalNoteTopics/internal/tok"
)

//
// DOCUMENT-TERM MATRIX
//

// Matrix - sparse term-document counts; rows are terms and columns are documents, the orientation
// the nlp package wants. Both axes are sorted, so identical token streams always yield identical
// matrices no matter what order the tokens arrived in.
type Matrix struct {
	Terms     []string
	Docs      []string
	TermIdx   map[string]int
	DocIdx    map[string]int
	Counts    *sparse.CSR
	EmptyDocs []string
}

// Build - aggregate (document, term) counts from the filtered token stream and materialize the matrix.
// Documents from docids with zero surviving tokens are excluded from the matrix and flagged in EmptyDocs.
func Build(docids []string, tt []tok.Token) *Matrix {
	counts := make(map[string]map[string]int)
	for i := 0; i < len(tt); i++ {
		t := tt[i]
		if _, ok := counts[t.DocID]; !ok {
			counts[t.DocID] = make(map[string]int)
		}
		counts[t.DocID][t.Term] += 1
	}

	var empty []string
	var docs []string
	for _, id := range docids {
		if len(counts[id]) == 0 {
			empty = append(empty, id)
		} else {
			docs = append(docs, id)
		}
	}
	sort.Strings(docs)
	sort.Strings(empty)

	terms := make(map[string]struct{})
	for _, byterm := range counts {
		for term := range byterm {
			terms[term] = struct{}{}
		}
	}
	tl := gen.SortedMapKeys(terms)

	m := &Matrix{
		Terms:     tl,
		Docs:      docs,
		TermIdx:   make(map[string]int, len(tl)),
		DocIdx:    make(map[string]int, len(docs)),
		EmptyDocs: empty,
	}
	for i, term := range tl {
		m.TermIdx[term] = i
	}
	for j, id := range docs {
		m.DocIdx[id] = j
	}

	dok := sparse.NewDOK(len(tl), len(docs))
	for id, byterm := range counts {
		j := m.DocIdx[id]
		for term, n := range byterm {
			dok.Set(m.TermIdx[term], j, float64(n))
		}
	}
	m.Counts = dok.ToCSR()

	return m
}

// Count - occurrences of term in doc; zero when either axis lacks the key
func (m *Matrix) Count(term string, doc string) int {
	i, ok := m.TermIdx[term]
	if !ok {
		return 0
	}
	j, ok := m.DocIdx[doc]
	if !ok {
		return 0
	}
	return int(m.Counts.At(i, j))
}

// DocTokenTotal - the number of surviving tokens for column j; every column's counts must sum to this
func (m *Matrix) DocTokenTotal(j int) int {
	total := 0
	for i := 0; i < len(m.Terms); i++ {
		total += int(m.Counts.At(i, j))
	}
	return total
}

// DocFrequency - the number of documents containing term row i at least once
func (m *Matrix) DocFrequency(i int) int {
	df := 0
	for j := 0; j < len(m.Docs); j++ {
		if m.Counts.At(i, j) > 0 {
			df += 1
		}
	}
	return df
}

// SubMatrix - a new matrix restricted to the named documents; term axis is preserved so
// row indices stay comparable with the parent
func (m *Matrix) SubMatrix(docs []string) *Matrix {
	keep := make([]string, 0, len(docs))
	for _, d := range docs {
		if _, ok := m.DocIdx[d]; ok {
			keep = append(keep, d)
		}
	}
	sort.Strings(keep)

	sub := &Matrix{
		Terms:   m.Terms,
		Docs:    keep,
		TermIdx: m.TermIdx,
		DocIdx:  make(map[string]int, len(keep)),
	}
	for j, id := range keep {
		sub.DocIdx[id] = j
	}

	dok := sparse.NewDOK(len(m.Terms), len(keep))
	for j, id := range keep {
		pj := m.DocIdx[id]
		for i := 0; i < len(m.Terms); i++ {
			if v := m.Counts.At(i, pj); v > 0 {
				dok.Set(i, j, v)
			}
		}
	}
	sub.Counts = dok.ToCSR()

	return sub
}
