//    ClinicalNoteTopics
//    Copyright: ClinicalNoteTopics contributors 2025-26
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package ingest

import (
	"fmt"
	"os"
	"strings"

	"golang.org/x/text/unicode/norm"

	"github.com/clinotes/ClinicalNoteTopics/internal/vv"
)

//
// SCRUBBING
//

// carriage-return artifacts from windows exports corrupt row boundaries if they survive into parsing;
// stray vertical tabs and form feeds show up in EHR exports as well

// Scrub - normalize one line: strip CR artifacts, unify unicode composition
func Scrub(s string) string {
	swap := strings.NewReplacer("\r", "", "\v", " ", "\f", " ", "\u00a0", " ")
	s = swap.Replace(s)
	return norm.NFC.String(s)
}

// ScrubFile - the standalone pre-processing pass: read src, normalize line endings, write a cleaned copy
func ScrubFile(src string) (string, error) {
	const (
		SUFFIX = ".scrubbed.tsv"
		MSG1   = "ScrubFile() wrote '%s'"
	)

	b, e := os.ReadFile(src)
	if e != nil {
		return "", fmt.Errorf("ScrubFile() could not read '%s': %w", src, e)
	}

	t := string(b)
	// CRLF and bare CR both become LF before any row logic runs
	t = strings.ReplaceAll(t, "\r\n", "\n")
	t = strings.ReplaceAll(t, "\r", "\n")
	t = norm.NFC.String(t)

	dst := strings.TrimSuffix(src, ".tsv") + SUFFIX
	if e = os.WriteFile(dst, []byte(t), vv.WRITEPERMS); e != nil {
		return "", fmt.Errorf("ScrubFile() could not write '%s': %w", dst, e)
	}

	Msg.NOTE(fmt.Sprintf(MSG1, dst))
	return dst, nil
}
