//    ClinicalNoteTopics
//    Copyright: ClinicalNoteTopics contributors 2025-26
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package lda

import (
	"context"
	"errors"
	"fmt"

	"github.com/james-bowman/nlp"
	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/mat"

	"github.com/clinotes/ClinicalNoteTopics/internal/dtm"
	"github.com/clinotes/ClinicalNoteTopics/internal/lnch"
	"github.com/clinotes/ClinicalNoteTopics/internal/vv"
)

var (
	Msg = lnch.NewMessageMakerWithDefaults()

	// ErrInsufficientData - the matrix cannot support the requested topic count
	ErrInsufficientData = errors.New("insufficient data")
)

// Spec - everything a fit is a function of; same matrix + same Spec must reproduce the same model
type Spec struct {
	K          int
	Seed       uint64
	Iterations int
}

// Model - a fitted topic model with its two derived distributions
type Model struct {
	K          int
	Seed       uint64
	Terms      []string
	Docs       []string
	Beta       *mat.Dense // K x len(Terms); each row sums to 1
	Gamma      *mat.Dense // len(Docs) x K; each row sums to 1
	Perplexity float64
}

// Fit - run LatentDirichletAllocation over the document-term matrix and extract beta and gamma.
// The inference itself belongs to the nlp package; this function owns input validation, seeding,
// cancellation, and output normalization. Each fit runs single-process: sweeps parallelize across
// fits instead, which keeps any one fit reproducible for a given seed.
func Fit(ctx context.Context, m *dtm.Matrix, sp Spec) (*Model, error) {
	const (
		ABANDON = "Fit() abandoning an unfinished model: k=%d after %s"
	)

	if err := validate(m, sp); err != nil {
		return nil, err
	}

	if sp.Iterations < 1 {
		sp.Iterations = vv.LDAITER
	}

	l := nlp.NewLatentDirichletAllocation(sp.K)
	l.Processes = 1
	l.Iterations = sp.Iterations
	l.TransformationPasses = sp.Iterations / 2
	l.BurnInPasses = vv.LDABURNINPASSES
	l.ChangeEvaluationFrequency = vv.LDACHGEVALFRQ
	l.PerplexityEvaluationFrequency = vv.LDAPERPEVALFRQ
	l.PerplexityTolerance = vv.LDAPERPTOL
	l.Rnd = rand.New(rand.NewSource(sp.Seed))

	type fitted struct {
		theta mat.Matrix
		err   error
	}

	// the nlp package has no interruption hook: on timeout the goroutine is abandoned, not stopped
	ch := make(chan fitted, 1)
	go func() {
		theta, err := l.FitTransform(m.Counts)
		ch <- fitted{theta: theta, err: err}
	}()

	var theta mat.Matrix
	select {
	case <-ctx.Done():
		Msg.WARN(fmt.Sprintf(ABANDON, sp.K, ctx.Err()))
		return nil, fmt.Errorf("model fit with k=%d: %w", sp.K, ctx.Err())
	case f := <-ch:
		if f.err != nil {
			return nil, fmt.Errorf("model fit with k=%d: %w", sp.K, f.err)
		}
		theta = f.theta
	}

	mod := &Model{
		K:     sp.K,
		Seed:  sp.Seed,
		Terms: m.Terms,
		Docs:  m.Docs,
	}

	mod.Beta = rownormalized(l.Components(), sp.K, len(m.Terms))
	mod.Gamma = gammafromtheta(theta, sp.K, len(m.Docs))
	mod.Perplexity = l.Perplexity(m.Counts)

	return mod, nil
}

// validate - fail fast with the offending parameter values instead of fitting a degenerate model
func validate(m *dtm.Matrix, sp Spec) error {
	if sp.K < 2 {
		return fmt.Errorf("topic count must be >= 2, got k=%d", sp.K)
	}
	if len(m.Terms) == 0 || len(m.Docs) == 0 {
		return fmt.Errorf("%w: empty matrix (%d terms, %d documents)", ErrInsufficientData, len(m.Terms), len(m.Docs))
	}
	if sp.K > len(m.Terms) {
		return fmt.Errorf("%w: k=%d exceeds %d distinct terms", ErrInsufficientData, sp.K, len(m.Terms))
	}
	if sp.K > len(m.Docs) {
		return fmt.Errorf("%w: k=%d exceeds %d documents", ErrInsufficientData, sp.K, len(m.Docs))
	}
	return nil
}

// rownormalized - copy a topics-over-words matrix into a dense beta whose rows sum to 1
func rownormalized(src mat.Matrix, rows int, cols int) *mat.Dense {
	out := mat.NewDense(rows, cols, nil)
	for i := 0; i < rows; i++ {
		total := 0.0
		for j := 0; j < cols; j++ {
			total += src.At(i, j)
		}
		if total == 0 {
			continue
		}
		for j := 0; j < cols; j++ {
			out.Set(i, j, src.At(i, j)/total)
		}
	}
	return out
}

// gammafromtheta - theta arrives topics x docs; gamma is the docs x topics view with rows summing to 1
func gammafromtheta(theta mat.Matrix, k int, docs int) *mat.Dense {
	out := mat.NewDense(docs, k, nil)
	for d := 0; d < docs; d++ {
		total := 0.0
		for t := 0; t < k; t++ {
			total += theta.At(t, d)
		}
		if total == 0 {
			continue
		}
		for t := 0; t < k; t++ {
			out.Set(d, t, theta.At(t, d)/total)
		}
	}
	return out
}
