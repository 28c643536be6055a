// Package config assembles the immutable per-invocation options: defaults,
// CLI value parsing, the optional YAML defaults file, and validation. The
// options are built once before discovery starts and are read-only during
// the batch.
package config

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Defaults matching the classic tvg-lottie2gif behavior.
const (
	DefaultWidth  = 600
	DefaultHeight = 600
	DefaultFPS    = 30
)

// Background is an optional solid layer composited beneath the animation.
type Background struct {
	Enabled bool
	R, G, B uint8
}

// Options holds everything one invocation needs. Inputs are the raw
// positional arguments; classification happens later in the pipeline.
type Options struct {
	Inputs []string

	Width  uint32
	Height uint32
	FPS    uint32

	// Quality is passed through to the GIF saver; 0 lets the engine pick.
	Quality uint32

	Background Background

	// Output is the explicit output path; valid only with a single input
	// file. Empty means derive from each input.
	Output string

	// Workers bounds parallel conversions. 1 converts sequentially,
	// 0 sizes the pool from the host (see internal/system).
	Workers int

	DryRun  bool
	Verbose bool
	NoColor bool
	LogFile string
}

// Default returns Options with the classic defaults applied.
func Default() Options {
	return Options{
		Width:   DefaultWidth,
		Height:  DefaultHeight,
		FPS:     DefaultFPS,
		Workers: 1,
	}
}

// ParseResolution parses a "WxH" string into positive dimensions.
func ParseResolution(s string) (w, h uint32, err error) {
	ws, hs, ok := strings.Cut(strings.TrimSpace(s), "x")
	if !ok {
		return 0, 0, fmt.Errorf("invalid resolution %q (use WxH, e.g. 600x600)", s)
	}
	wv, err := strconv.ParseUint(ws, 10, 32)
	if err != nil || wv == 0 {
		return 0, 0, fmt.Errorf("invalid resolution width %q (use a positive integer)", ws)
	}
	hv, err := strconv.ParseUint(hs, 10, 32)
	if err != nil || hv == 0 {
		return 0, 0, fmt.Errorf("invalid resolution height %q (use a positive integer)", hs)
	}
	return uint32(wv), uint32(hv), nil
}

// ParseBackground parses an RRGGBB hex color (optional leading '#') into an
// enabled Background. Channel extraction follows the usual 24-bit layout:
// r=(v>>16)&0xFF, g=(v>>8)&0xFF, b=v&0xFF.
func ParseBackground(s string) (Background, error) {
	hex := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(hex) != 6 {
		return Background{}, fmt.Errorf("invalid background %q (use six hex digits, e.g. FF8000)", s)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return Background{}, fmt.Errorf("invalid background %q (use six hex digits, e.g. FF8000)", s)
	}
	return FromRGB24(uint32(v)), nil
}

// FromRGB24 splits a 24-bit RRGGBB value into channels.
func FromRGB24(v uint32) Background {
	return Background{
		Enabled: true,
		R:       uint8((v >> 16) & 0xFF),
		G:       uint8((v >> 8) & 0xFF),
		B:       uint8(v & 0xFF),
	}
}

// Validate checks the assembled options before any conversion begins, so a
// malformed invocation fails with a single diagnostic instead of a
// half-processed batch.
func (o *Options) Validate() error {
	if o.Width == 0 || o.Height == 0 {
		return errors.New("resolution must be positive on both axes")
	}
	if o.FPS == 0 {
		return errors.New("fps must be positive")
	}
	if o.Quality > 100 {
		return errors.New("quality must be between 0 and 100")
	}
	if o.Workers < 0 {
		return errors.New("workers must not be negative")
	}
	if o.Output != "" && len(o.Inputs) > 1 {
		return ErrOutputConflict
	}
	return nil
}

// ErrOutputConflict is returned when an explicit output path is combined
// with more than one effective input; reusing one path would silently
// overwrite every result but the last.
var ErrOutputConflict = errors.New("explicit output path requires exactly one input file")
