//    ClinicalNoteTopics
//    Copyright: ClinicalNoteTopics contributors 2025-26
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package tok

import (
	"strings"
	"unicode"

	"github.com/rivo/uniseg"
)

//
// TOKENIZATION
//

// Token - a single word occurrence tagged with its owning document; the tag must survive every filter stage
type Token struct {
	DocID string
	Term  string
}

// Tokenize - split free text into lower-cased word tokens on UAX#29 word boundaries
func Tokenize(docid string, text string) []Token {
	// uniseg hands back every segment, whitespace and punctuation included; only word-like segments survive

	var tt []Token
	state := -1
	var seg string

	rest := text
	for len(rest) > 0 {
		seg, rest, state = uniseg.FirstWordInString(rest, state)
		if !wordlike(seg) {
			continue
		}
		tt = append(tt, Token{DocID: docid, Term: strings.ToLower(seg)})
	}
	return tt
}

// wordlike - at least one letter or digit; drops bare punctuation and whitespace segments
func wordlike(s string) bool {
	for _, r := range s {
		if unicode.IsLetter(r) || unicode.IsNumber(r) {
			return true
		}
	}
	return false
}
