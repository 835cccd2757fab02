//    ClinicalNoteTopics
//    Copyright: ClinicalNoteTopics contributors 2025-26
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package main

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/pkg/profile"

	"github.com/clinotes/ClinicalNoteTopics/internal/analysis"
	"github.com/clinotes/ClinicalNoteTopics/internal/dtm"
	"github.com/clinotes/ClinicalNoteTopics/internal/ingest"
	"github.com/clinotes/ClinicalNoteTopics/internal/lda"
	"github.com/clinotes/ClinicalNoteTopics/internal/lnch"
	"github.com/clinotes/ClinicalNoteTopics/internal/report"
	"github.com/clinotes/ClinicalNoteTopics/internal/tok"
	"github.com/clinotes/ClinicalNoteTopics/internal/vv"
)

var Msg = lnch.NewMessageMakerWithDefaults()

// ClinicalNoteTopics: topic modeling for tab-separated clinical progress notes
//
// [a] ingest the notes file and group the notes into one document per patient
// [b] tokenize, then drop numbers, stopwords, and excluded terms
// [c] build the sparse document-term matrix
// [d] fit an LDA model (or sweep several topic counts) and extract beta and gamma
// [e] classify each document by its dominant topic; re-rank topic terms by tf-idf
// [f] write a standalone html report: tables, bar charts, t-SNE scatter

func main() {
	const (
		FAIL1   = "no input file; '-in <file>' is required (see '-h')"
		FAIL2   = "ingestion of '%s' failed"
		FAIL3   = "the model could not be fit"
		FAIL4   = "the report could not be written"
		FAIL5   = "tf-idf re-ranking failed"
		MSG1    = "%s (v%s) [loglevel=%d]"
		MSG2    = "scrubbed copy written to '%s'"
		MSG3    = "%d patients; %d documents entered the matrix; %d had no surviving tokens"
		MSG4    = "fitted k=%d (seed %d); perplexity %.2f"
		MSG5    = "done; the report is at '%s'"
		SWEEPHD = "perplexity by topic count:"
		SWEEPLN = "\tk=%d\t%.2f"
	)

	lnch.ConfigAtLaunch()
	lnch.WriteDefaultConfig()

	cfg := lnch.Config
	lnch.UpdateMessageMakerWithConfig(Msg)
	lnch.UpdateMessageMakerWithConfig(ingest.Msg)
	lnch.UpdateMessageMakerWithConfig(lda.Msg)
	lnch.UpdateMessageMakerWithConfig(analysis.Msg)
	lnch.UpdateMessageMakerWithConfig(report.Msg)

	if !cfg.QuietStart {
		fmt.Println(Msg.Styled(Msg.Color(vv.TERMINALTEXT)))
	}
	Msg.MAND(fmt.Sprintf(MSG1, vv.MYNAME, vv.VERSION, cfg.LogLevel))

	// only one of the two profiles can run at a time
	if cfg.ProfileCPU {
		defer profile.Start(profile.ProfilePath(".")).Stop()
	} else if cfg.ProfileMEM {
		defer profile.Start(profile.MemProfile, profile.ProfilePath(".")).Stop()
	}

	if cfg.InputFile == "" {
		Msg.CRIT(FAIL1)
		Msg.ExitOrHang(1)
	}

	if cfg.ScrubOnly {
		dst, err := ingest.ScrubFile(cfg.InputFile)
		Msg.EC(err)
		Msg.MAND(fmt.Sprintf(MSG2, dst))
		return
	}

	start := time.Now()
	previous := time.Now()

	// [a] ingestion
	recc, irep, err := ingest.ReadNotes(cfg.InputFile)
	if err != nil {
		Msg.EF(err, fmt.Sprintf(FAIL2, cfg.InputFile))
	}
	docs := ingest.BuildDocuments(recc)
	Msg.Timer("A", irep.String(), start, previous)
	previous = time.Now()

	// [b] tokenization and filtering
	chain := buildfilterchain(cfg)
	var tokens []tok.Token
	docids := make([]string, len(docs))
	for i, d := range docs {
		docids[i] = d.ID
		tokens = append(tokens, tok.Tokenize(d.ID, d.Text)...)
	}
	raw := len(tokens)
	tokens = chain.Apply(tokens)
	Msg.Timer("B", fmt.Sprintf("%d tokens; %d survived filtering", raw, len(tokens)), start, previous)
	previous = time.Now()

	// [c] the document-term matrix
	m := dtm.Build(docids, tokens)
	Msg.Timer("C", fmt.Sprintf("%d x %d document-term matrix", len(m.Terms), len(m.Docs)), start, previous)
	Msg.NOTE(fmt.Sprintf(MSG3, len(docs), len(m.Docs), len(m.EmptyDocs)))
	previous = time.Now()

	// [d] the model
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.TimeoutSec)*time.Second)
	defer cancel()

	spec := lda.Spec{K: cfg.LDATopics, Seed: cfg.Seed, Iterations: cfg.LDAIterations}

	var mod *lda.Model
	if len(cfg.KSweep) > 0 {
		mods, serr := lda.Sweep(ctx, m, cfg.KSweep, spec, cfg.WorkerCount)
		if len(mods) == 0 {
			Msg.EF(serr, FAIL3)
		}
		if serr != nil {
			Msg.WARN(serr.Error())
		}
		Msg.MAND(SWEEPHD)
		mod = mods[0]
		for _, sm := range mods {
			Msg.MAND(fmt.Sprintf(SWEEPLN, sm.K, sm.Perplexity))
			if sm.Perplexity < mod.Perplexity {
				mod = sm
			}
		}
	} else {
		mod, err = lda.Fit(ctx, m, spec)
		if err != nil {
			Msg.EF(err, FAIL3)
		}
	}
	Msg.Timer("D", fmt.Sprintf(MSG4, mod.K, mod.Seed, mod.Perplexity), start, previous)
	previous = time.Now()

	// [e] post-model analysis
	tops := analysis.TopTerms(mod, cfg.TopN)
	asg := analysis.Classify(mod)
	tfidf, err := analysis.AllTopicTFIDF(m, asg, mod.K, cfg.TopN)
	if err != nil {
		Msg.EF(err, FAIL5)
	}
	common := analysis.CommonTerms(m, cfg.TopN)
	Msg.Timer("E", "topics classified and re-ranked", start, previous)
	previous = time.Now()

	// [f] the report
	p := report.NewPayload(mod, tops, tfidf, asg, common, m.EmptyDocs, &irep)
	p.Settings = settingsline(cfg, mod)
	if err = report.Write(cfg.ReportFile, p); err != nil {
		Msg.EF(err, FAIL4)
	}
	Msg.Timer("F", "report rendered", start, previous)

	Msg.MAND(fmt.Sprintf(MSG5, cfg.ReportFile))
}

// buildfilterchain - assemble the token filters the configuration asks for; order matters only
// for speed, never for the survivors
func buildfilterchain(cfg *lnch.CurrentConfiguration) *tok.Chain {
	var stages []tok.Stage
	if !cfg.NoNumeric {
		stages = append(stages, tok.NumericStage())
	}
	if !cfg.NoStops {
		stages = append(stages, tok.StopwordStage(lnch.GetStopSet()))
	}
	if !cfg.NoExclusions {
		excl := append(lnch.ReadExclusionConfig(), cfg.ExcludeTerms...)
		if len(excl) > 0 {
			stages = append(stages, tok.ExclusionStage(excl))
		}
	}
	return tok.NewChain(stages...)
}

// settingsline - the one-line run description that heads the report
func settingsline(cfg *lnch.CurrentConfiguration, mod *lda.Model) string {
	var ff []string
	if !cfg.NoNumeric {
		ff = append(ff, "numeric")
	}
	if !cfg.NoStops {
		ff = append(ff, "stopwords")
	}
	if !cfg.NoExclusions {
		ff = append(ff, "exclusions")
	}
	filters := "none"
	if len(ff) > 0 {
		filters = strings.Join(ff, "+")
	}
	return fmt.Sprintf("in=%s; k=%d; seed=%d; iterations=%d; topn=%d; filters=%s",
		cfg.InputFile, mod.K, mod.Seed, cfg.LDAIterations, cfg.TopN, filters)
}
