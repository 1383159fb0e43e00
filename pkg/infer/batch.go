/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: batch.go
Description: Parallel batch inference across independent columns. Fans the single-column
engine out over a bounded worker pool; each worker owns its column exclusively, so no
state is shared and results are deterministic per column.
*/

package infer

import (
	"fmt"
	"runtime"
	"sort"
	"sync"

	"github.com/sirupsen/logrus"
)

// InferBatch infers date formats for multiple named columns at once.
//
// Columns are processed in parallel by min(NumCPU, len(columns)) workers.
// The returned map carries one Result per column; callers must treat it as
// an associative mapping with no ordering guarantees. If any column fails,
// the whole call fails with the error of the first failing column in name
// order, so repeated runs report the same failure.
func InferBatch(columns map[string][]string, opts Options) (map[string]*Result, error) {
	return NewEngine(opts).InferBatch(columns)
}

// InferBatch is the engine-bound form of the package-level InferBatch
func (e *Engine) InferBatch(columns map[string][]string) (map[string]*Result, error) {
	results, errs := e.InferColumns(columns)
	if len(errs) > 0 {
		names := make([]string, 0, len(errs))
		for name := range errs {
			names = append(names, name)
		}
		sort.Strings(names)
		return nil, fmt.Errorf("column %q: %w", names[0], errs[names[0]])
	}
	return results, nil
}

// InferColumns runs inference on every column in parallel and returns the
// per-column outcomes: a result map for the columns that inferred and an
// error map for those that did not. Callers that must not let one bad
// column sink the rest (CLI batch runs) consume both maps directly.
func (e *Engine) InferColumns(columns map[string][]string) (map[string]*Result, map[string]error) {
	results := make(map[string]*Result, len(columns))
	errs := make(map[string]error)
	if len(columns) == 0 {
		return results, errs
	}

	names := make([]string, 0, len(columns))
	for name := range columns {
		names = append(names, name)
	}

	workers := runtime.NumCPU()
	if workers > len(names) {
		workers = len(names)
	}

	work := make(chan string, len(names))
	for _, name := range names {
		work <- name
	}
	close(work)

	var (
		mu sync.Mutex
		wg sync.WaitGroup
	)
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for name := range work {
				result, err := e.Infer(columns[name])
				mu.Lock()
				if err != nil {
					errs[name] = err
				} else {
					results[name] = result
				}
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	if e.logger != nil {
		e.logger.WithFields(logrus.Fields{
			"columns":  len(names),
			"workers":  workers,
			"inferred": len(results),
			"failed":   len(errs),
		}).Debug("Batch inference complete")
	}

	return results, errs
}
