//    ClinicalNoteTopics
//    Copyright: ClinicalNoteTopics contributors 2025-26
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package lnch

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"

	"github.com/clinotes/ClinicalNoteTopics/internal/gen"
	"github.com/clinotes/ClinicalNoteTopics/internal/vv"
)

//
// STOPWORDS & EXCLUSIONS
//

// ReadStopConfig - read the vv.CONFIGSTOPS file and return []stopwords; if it does not exist, generate it
func ReadStopConfig() []string {
	return readlistconfig(vv.CONFIGSTOPS, gen.StringMapKeysIntoSlice(getenglishstops()))
}

// ReadExclusionConfig - read the vv.CONFIGEXCL file and return the operator's exclusion terms; if it does not exist, generate an empty one
func ReadExclusionConfig() []string {
	// exclusion matching is substring matching: a short default entry like "pt" would eat "accepted";
	// so the generated file starts empty and the operator curates it between runs
	return readlistconfig(vv.CONFIGEXCL, []string{})
}

// readlistconfig - fetch []string from a JSON config file, generating the file from defaults on first run
func readlistconfig(fn string, defaults []string) []string {
	const (
		ERR1 = "readlistconfig() cannot find UserHomeDir"
		ERR2 = "readlistconfig() failed to parse "
		MSG1 = "readlistconfig() wrote list configuration file: "
	)

	terms := defaults

	h, e := os.UserHomeDir()
	if e != nil {
		Msg.MAND(ERR1)
		return terms
	}

	pth := fmt.Sprintf(vv.CONFIGALTAPTH, h) + fn
	_, yes := os.Stat(pth)

	if yes != nil {
		sort.Strings(terms)
		content, err := json.MarshalIndent(terms, "", vv.JSONINDENT)
		Msg.EC(err)

		Msg.EC(os.MkdirAll(fmt.Sprintf(vv.CONFIGALTAPTH, h), os.ModePerm))
		err = os.WriteFile(pth, content, vv.WRITEPERMS)
		Msg.EC(err)
		Msg.PEEK(MSG1 + fn)
	} else {
		loadedcfg, _ := os.Open(pth)
		decoderc := json.NewDecoder(loadedcfg)
		var tt []string
		errc := decoderc.Decode(&tt)
		_ = loadedcfg.Close()
		if errc != nil {
			Msg.CRIT(ERR2 + fn)
		} else {
			terms = tt
		}
	}
	return terms
}

var (
	// English100 - the most common English function words
	English100 = []string{"the", "of", "and", "a", "to", "in", "is", "was", "he", "for", "it", "with", "as", "his",
		"on", "be", "at", "by", "i", "this", "had", "not", "are", "but", "from", "or", "have", "an", "they", "which",
		"one", "you", "were", "her", "all", "she", "there", "would", "their", "we", "him", "been", "has", "when",
		"who", "will", "more", "no", "if", "out", "so", "said", "what", "up", "its", "about", "into", "than", "them",
		"can", "only", "other", "new", "some", "could", "time", "these", "two", "may", "then", "do", "first", "any",
		"my", "now", "such", "like", "our", "over", "man", "me", "even", "most", "made", "after", "also", "did",
		"many", "before", "must", "through", "years", "where", "much", "your", "way", "well", "down", "should",
		"because", "each", "just", "those", "people", "how", "too", "little", "state", "good", "very", "make",
		"world", "still", "own", "see", "men", "work", "long", "get", "here", "between", "both", "life", "being",
		"under", "never", "day", "same", "another", "know", "while", "last", "might", "us", "great", "old", "year",
		"off", "come", "since", "against", "go", "came", "right", "used", "take", "three"}
	// ChartingExtra - charting boilerplate that behaves like a function word in progress notes
	ChartingExtra = []string{"pt", "pts", "hx", "dx", "rx", "prn", "po", "bid", "tid", "qd", "wnl", "nad", "yo",
		"y", "o", "mr", "mrs", "ms", "dr", "am", "pm", "etc", "via", "per", "s", "t", "c", "w", "b", "d", "x",
		"today", "yesterday", "tomorrow", "week", "month", "noted", "seen", "stated", "reports", "reported",
		"denies", "denied", "states", "currently", "continue", "continues", "follow", "followup", "plan",
		"reviewed", "discussed", "advised", "instructed", "recommended", "return", "visit", "appointment"}
	// EnglishStop - the full default stop list
	EnglishStop = append(English100, ChartingExtra...)
	// EnglishKeep - members of EnglishStop we will not toss: negations carry clinical meaning
	EnglishKeep = []string{"no", "not", "never"}
)

func getenglishstops() map[string]struct{} {
	es := gen.SetSubtraction(EnglishStop, EnglishKeep)
	return gen.ToSet(es)
}

// GetStopSet - the live stop-word set: configured list minus nothing further
func GetStopSet() map[string]struct{} {
	return gen.ToSet(ReadStopConfig())
}
