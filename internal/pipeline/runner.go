// Package pipeline orchestrates one invocation end to end: argument
// classification, recursive input discovery, and the per-file conversion
// loop with failure isolation.
package pipeline

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/ivlev/lottie2gif/internal/config"
	"github.com/ivlev/lottie2gif/internal/convert"
	"github.com/ivlev/lottie2gif/internal/engine"
	"github.com/ivlev/lottie2gif/internal/logging"
	"github.com/ivlev/lottie2gif/internal/system"
)

// Runner executes one batch with read-only options.
type Runner struct {
	Opts   config.Options
	Log    *logging.Logger
	Engine engine.Engine
}

// Run classifies and expands every argument, then converts each
// discovered input. Unresolvable or non-input arguments are logged and
// skipped; one file's conversion failure never stops the rest. A non-nil
// error is returned only for configuration-level problems detected before
// any conversion starts.
func (r *Runner) Run(ctx context.Context) (Stats, error) {
	var stats Stats

	inputs, err := r.gather(&stats)
	if err != nil {
		return stats, err
	}
	stats.Total = len(inputs)
	if len(inputs) == 0 {
		return stats, nil
	}

	if r.Opts.DryRun {
		for _, in := range inputs {
			r.Log.Info("Would convert %s -> %s", in, convert.OutputPath(in, r.Opts.Output))
		}
		return stats, nil
	}

	workers := system.Workers(r.Opts.Workers)
	if workers > len(inputs) {
		workers = len(inputs)
	}
	if workers > 1 {
		r.Log.Debug("Converting with %d workers", workers)
	}

	conv := &convert.Converter{Engine: r.Engine, Opts: r.Opts, Log: r.Log}

	var mu sync.Mutex
	g := new(errgroup.Group)
	g.SetLimit(workers)

	for _, in := range inputs {
		in := in
		g.Go(func() error {
			res := conv.Convert(ctx, in)

			mu.Lock()
			defer mu.Unlock()
			switch {
			case res.Err == nil:
				r.Log.OK("Generated: %s", res.Output)
				stats.Converted++
			case errors.Is(res.Err, context.Canceled) || errors.Is(res.Err, context.DeadlineExceeded):
				stats.Interrupted++
			default:
				r.Log.Error("%s: %v", res.Input, res.Err)
				stats.Failed++
			}
			return nil
		})
	}
	_ = g.Wait()

	if stats.Interrupted > 0 {
		r.Log.Warn("Interrupted: %d of %d conversions not attempted", stats.Interrupted, stats.Total)
	}
	return stats, nil
}

// gather expands the raw arguments into the batch's input set and
// enforces the explicit-output rule before anything is converted.
func (r *Runner) gather(stats *Stats) ([]string, error) {
	var inputs []string

	for _, raw := range r.Opts.Inputs {
		path, kind, err := Classify(raw)
		if err != nil {
			r.Log.Warn("Skipping %s: path not found", raw)
			stats.Missing++
			continue
		}

		switch kind {
		case KindDirectory:
			if r.Opts.Output != "" {
				return nil, fmt.Errorf("%w (%s is a directory)", config.ErrOutputConflict, raw)
			}
			r.Log.Info("Directory: %s", path)
			found, err := Discover(path, kind)
			if err != nil {
				// The directory exists; the walk itself failed.
				r.Log.Warn("Skipping %s: walk failed: %v", raw, err)
				stats.Skipped++
				continue
			}
			if len(found) == 0 {
				r.Log.Warn("No %s animations under %s", convert.InputExt, path)
			}
			inputs = append(inputs, found...)

		case KindFile:
			found, err := Discover(path, kind)
			if err != nil {
				r.Log.Warn("Skipped non-lottie: %s", raw)
				stats.Skipped++
				continue
			}
			inputs = append(inputs, found...)
		}
	}

	if r.Opts.Output != "" && len(inputs) > 1 {
		return nil, config.ErrOutputConflict
	}
	return inputs, nil
}
