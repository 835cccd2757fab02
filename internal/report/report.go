//    ClinicalNoteTopics
//    Copyright: ClinicalNoteTopics contributors 2025-26
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package report

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/google/uuid"

	"github.com/clinotes/ClinicalNoteTopics/internal/analysis"
	"github.com/clinotes/ClinicalNoteTopics/internal/ingest"
	"github.com/clinotes/ClinicalNoteTopics/internal/lda"
	"github.com/clinotes/ClinicalNoteTopics/internal/lnch"
	"github.com/clinotes/ClinicalNoteTopics/internal/vv"
)

var Msg = lnch.NewMessageMakerWithDefaults()

//
// REPORTING
//

// Payload - everything the HTML report is built from
type Payload struct {
	RunID       string
	Generated   time.Time
	Settings    string
	Mod         *lda.Model
	TopTerms    [][]analysis.RankedTerm
	TFIDF       [][]analysis.RankedTerm
	Assignments []analysis.Assignment
	PerTopic    []int
	Weights     []float64
	Common      []analysis.RankedTerm
	EmptyDocs   []string
	Ing         *ingest.Report
}

// NewPayload - derive every report input from the model and matrix in one place
func NewPayload(mod *lda.Model, tt [][]analysis.RankedTerm, tfidf [][]analysis.RankedTerm,
	asg []analysis.Assignment, common []analysis.RankedTerm, empty []string, ir *ingest.Report) *Payload {
	return &Payload{
		RunID:       uuid.New().String(),
		Generated:   time.Now(),
		Mod:         mod,
		TopTerms:    tt,
		TFIDF:       tfidf,
		Assignments: asg,
		PerTopic:    analysis.DocsPerTopic(mod, asg),
		Weights:     analysis.TopicWeights(mod),
		Common:      common,
		EmptyDocs:   empty,
		Ing:         ir,
	}
}

// Write - render the report and save it; the file is self-contained html+js
func Write(pth string, p *Payload) error {
	const (
		MSG1 = "Write() saved the report to '%s'"
	)

	f, err := os.OpenFile(pth, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, vv.WRITEPERMS)
	if err != nil {
		return fmt.Errorf("report file '%s': %w", pth, err)
	}
	defer f.Close()

	if err := Render(f, p); err != nil {
		return fmt.Errorf("report file '%s': %w", pth, err)
	}

	Msg.NOTE(fmt.Sprintf(MSG1, pth))
	return nil
}

// Render - the summary tables followed by the charts
func Render(w io.Writer, p *Payload) error {
	tables := runheadertable(p) + topicsummarytable(p) + commontermstable(p)
	return renderchartpage(w, p, tables)
}
