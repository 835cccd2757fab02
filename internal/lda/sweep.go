//    ClinicalNoteTopics
//    Copyright: ClinicalNoteTopics contributors 2025-26
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package lda

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/clinotes/ClinicalNoteTopics/internal/dtm"
)

//
// TOPIC-COUNT SWEEPS
//

// each fit is a pure function of (matrix, k, seed), so sweeps are embarrassingly parallel;
// no ordering or synchronization is required beyond collecting the results

// Sweep - fit one model per topic count in ks via a worker pool; models come back sorted by K.
// A failed fit does not stop the other workers; all failures are joined into the returned error.
func Sweep(ctx context.Context, m *dtm.Matrix, ks []int, base Spec, workers int) ([]*Model, error) {
	const (
		FITMSG = "Sweep() fitted k=%d (perplexity %.2f)"
	)

	if workers < 1 {
		workers = 1
	}

	type outcome struct {
		mod *Model
		err error
	}

	jobs := make(chan int, len(ks))
	results := make(chan outcome, len(ks))

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for k := range jobs {
				sp := base
				sp.K = k
				mod, err := Fit(ctx, m, sp)
				if err == nil {
					Msg.FYI(fmt.Sprintf(FITMSG, mod.K, mod.Perplexity))
				}
				results <- outcome{mod: mod, err: err}
			}
		}()
	}

	for _, k := range ks {
		jobs <- k
	}
	close(jobs)

	wg.Wait()
	close(results)

	var mods []*Model
	var errs []error
	for o := range results {
		if o.err != nil {
			errs = append(errs, o.err)
			continue
		}
		mods = append(mods, o.mod)
	}

	sort.Slice(mods, func(i, j int) bool { return mods[i].K < mods[j].K })

	return mods, errors.Join(errs...)
}
