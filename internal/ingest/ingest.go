//    ClinicalNoteTopics
//    Copyright: ClinicalNoteTopics contributors 2025-26
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package ingest

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/clinotes/ClinicalNoteTopics/internal/lnch"
	"github.com/clinotes/ClinicalNoteTopics/internal/vv"
)

var (
	Msg = lnch.NewMessageMakerWithDefaults()
)

const (
	NUMFIELDS = 3
	// a single pathological note should not sink the whole run; match bufio to the worst rows seen in the wild
	MAXLINEBYTES = 4 * 1024 * 1024
)

// Record - one parsed row of the input file
type Record struct {
	PatientID string
	ClinicID  string
	Note      string
	Row       int
}

// Report - the acceptance signals the operator checks before trusting a run
type Report struct {
	Parsed           int
	Failures         int
	Repaired         int
	DistinctPatients int
	HeaderSkipped    bool
}

func (r Report) String() string {
	const (
		TMPL = "parsed %d records (%d repaired); %d parse failures; %d distinct patients"
	)
	return fmt.Sprintf(TMPL, r.Parsed, r.Repaired, r.Failures, r.DistinctPatients)
}

// Document - one patient's concatenated free-text notes; immutable once built
type Document struct {
	ID   string
	Text string
}

// ReadNotes - parse the three-column TSV at pth; malformed rows are logged and skipped, never silently merged
func ReadNotes(pth string) ([]Record, Report, error) {
	f, e := os.Open(pth)
	if e != nil {
		return nil, Report{}, fmt.Errorf("ReadNotes() could not open '%s': %w", pth, e)
	}
	defer func() { _ = f.Close() }()

	recc, rep := ParseRecords(f)
	return recc, rep, nil
}

// ParseRecords - consume line-delimited, tab-delimited rows; tolerate and report malformed rows
func ParseRecords(r io.Reader) ([]Record, Report) {
	const (
		SHORT = "row %d has %d fields; skipping"
		FIXED = "row %d has %d fields; folding extra tabs back into the note"
	)

	var recc []Record
	var rep Report
	patients := make(map[string]struct{})

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), MAXLINEBYTES)

	row := 0
	for scanner.Scan() {
		row += 1
		line := Scrub(scanner.Text())

		if row == 1 && isheader(line) {
			rep.HeaderSkipped = true
			continue
		}

		if strings.TrimSpace(line) == "" {
			continue
		}

		ff := strings.Split(line, "\t")

		switch {
		case len(ff) < NUMFIELDS:
			// an unescaped delimiter collision or an embedded line-break artifact; do not guess
			Msg.WARN(fmt.Sprintf(SHORT, row, len(ff)))
			rep.Failures += 1
			continue
		case len(ff) > NUMFIELDS:
			// a tab inside the free text: repairable because the first two columns are identifiers
			Msg.PEEK(fmt.Sprintf(FIXED, row, len(ff)))
			ff = []string{ff[0], ff[1], strings.Join(ff[2:], " ")}
			rep.Repaired += 1
		}

		rc := Record{
			PatientID: strings.TrimSpace(ff[0]),
			ClinicID:  strings.TrimSpace(ff[1]),
			Note:      strings.TrimSpace(ff[2]),
			Row:       row,
		}

		if rc.PatientID == "" {
			Msg.WARN(fmt.Sprintf(SHORT, row, 0))
			rep.Failures += 1
			continue
		}

		recc = append(recc, rc)
		patients[rc.PatientID] = struct{}{}
		rep.Parsed += 1
	}

	if err := scanner.Err(); err != nil {
		Msg.CRIT(fmt.Sprintf("ParseRecords() stopped at row %d: %s", row, err.Error()))
	}

	rep.DistinctPatients = len(patients)
	return recc, rep
}

// BuildDocuments - group records into one Document per patient, notes concatenated in file order
func BuildDocuments(recc []Record) []Document {
	texts := make(map[string][]string)
	for i := 0; i < len(recc); i++ {
		texts[recc[i].PatientID] = append(texts[recc[i].PatientID], recc[i].Note)
	}

	ids := make([]string, 0, len(texts))
	for id := range texts {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	docs := make([]Document, len(ids))
	for i, id := range ids {
		docs[i] = Document{ID: id, Text: strings.Join(texts[id], " ")}
	}
	return docs
}

// isheader - does the first row name the columns instead of carrying data?
func isheader(line string) bool {
	l := strings.ToLower(line)
	return strings.Contains(l, strings.ToLower(vv.COLPATIENT)) ||
		strings.Contains(l, strings.ToLower(vv.COLNOTE))
}
