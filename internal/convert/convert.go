// Package convert drives one animation file through the engine: output
// path derivation, scoped engine acquisition, load, geometry, optional
// background compositing, and GIF encoding. One Result per input; a
// failure never aborts the surrounding batch.
package convert

import (
	"context"
	"fmt"
	"strings"

	"github.com/ivlev/lottie2gif/internal/config"
	"github.com/ivlev/lottie2gif/internal/engine"
	"github.com/ivlev/lottie2gif/internal/geometry"
	"github.com/ivlev/lottie2gif/internal/logging"
)

// Input and output file extensions. Input matching is case-sensitive,
// like the classic tool.
const (
	InputExt  = ".json"
	OutputExt = ".gif"
)

// Result is the outcome of converting one input file. Err wraps one of
// the engine sentinels (or geometry.ErrDegenerateContent / ctx errors);
// nil means Output was written.
type Result struct {
	Input  string
	Output string
	Err    error
}

// Converter converts single inputs using a shared engine handle and the
// read-only batch options.
type Converter struct {
	Engine engine.Engine
	Opts   config.Options
	Log    *logging.Logger
}

// OutputPath derives the target path for input: the explicit path verbatim
// when set, otherwise the input path with its recognized extension
// replaced by ".gif".
func OutputPath(input, explicit string) string {
	if explicit != "" {
		return explicit
	}
	return strings.TrimSuffix(input, InputExt) + OutputExt
}

// Convert runs the load → resize → composite → encode → sync sequence for
// one input file. The engine session is released on every exit path.
func (c *Converter) Convert(ctx context.Context, input string) Result {
	out := OutputPath(input, c.Opts.Output)
	res := Result{Input: input, Output: out}

	if err := ctx.Err(); err != nil {
		res.Err = err
		return res
	}

	session, err := c.Engine.Open()
	if err != nil {
		res.Err = err
		return res
	}
	defer session.Close()

	anim, err := session.Load(input)
	if err != nil {
		res.Err = err
		return res
	}
	defer anim.Close()

	w, h := anim.Size()
	plan, err := geometry.Fit(w, h, c.Opts.Width, c.Opts.Height)
	if err != nil {
		res.Err = fmt.Errorf("%s: %w", input, err)
		return res
	}
	c.Log.Debug("%s: %gx%g scaled by %.3f to %gx%g", input, w, h, plan.Scale, plan.Width, plan.Height)

	if err := anim.SetSize(plan.Width, plan.Height); err != nil {
		res.Err = fmt.Errorf("resize: %w", err)
		return res
	}

	enc, err := session.NewEncoder()
	if err != nil {
		res.Err = err
		return res
	}
	defer enc.Close()

	if layer := BuildBackground(c.Opts.Background, plan); layer != nil {
		if err := enc.SetBackground(*layer); err != nil {
			res.Err = err
			return res
		}
	}

	if err := enc.Save(anim, out, c.Opts.Quality, c.Opts.FPS); err != nil {
		res.Err = err
		return res
	}
	if err := enc.Sync(); err != nil {
		res.Err = err
		return res
	}
	return res
}
