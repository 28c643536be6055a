// Package engine defines the capability surface of the external
// rendering/encoding engine. The conversion pipeline only ever talks to
// these interfaces; the ThorVG-backed implementation lives in the thorvg
// subpackage and gomock implementations for tests live in mocks.
package engine

import "errors"

//go:generate mockgen -destination=mocks/engine.go -package=mocks github.com/ivlev/lottie2gif/internal/engine Engine,Session,Animation,Encoder

// Sentinel errors reported by engine implementations.
var (
	// ErrInitFailed means the engine runtime could not be brought up at
	// all (missing shared library, failed init). Environment-level; each
	// conversion attempt still gets its own try.
	ErrInitFailed = errors.New("engine initialization failed")

	// ErrLoadFailed means the animation file could not be parsed.
	ErrLoadFailed = errors.New("animation load failed")

	// ErrEncoderUnavailable means the GIF saver was not compiled into
	// the engine build.
	ErrEncoderUnavailable = errors.New("gif encoder not available in engine build")

	// ErrEncodeFailed means saving or flushing the output failed.
	ErrEncodeFailed = errors.New("gif encode failed")
)

// BackgroundLayer is a solid rectangle drawn beneath the animation
// content, spanning the scaled output area.
type BackgroundLayer struct {
	R, G, B uint8
	Width   float32
	Height  float32
}

// Engine produces Sessions. Each conversion owns one session for its
// whole duration, which keeps parallel conversions isolated from each
// other's engine state.
type Engine interface {
	Open() (Session, error)
}

// Session is one scoped acquisition of the engine runtime. Close must run
// on every exit path of a conversion; it tears the runtime down.
type Session interface {
	// Load parses an animation file and returns its content handle.
	Load(path string) (Animation, error)

	// NewEncoder builds a GIF encoder, or fails with
	// ErrEncoderUnavailable when the saver backend is missing.
	NewEncoder() (Encoder, error)

	Close() error
}

// Animation is loaded content exposing an intrinsic size and a resizable
// viewport.
type Animation interface {
	// Size reports the intrinsic content dimensions.
	Size() (w, h float32)

	// SetSize applies the scaled output dimensions before encoding.
	SetSize(w, h float32) error

	Close() error
}

// Encoder writes one animation to one output file.
type Encoder interface {
	// SetBackground attaches the bottom-most compositing layer. Must be
	// called before Save.
	SetBackground(layer BackgroundLayer) error

	// Save encodes the animation to path. quality is 0-100 with 0
	// meaning engine default; fps is the output frame rate.
	Save(a Animation, path string, quality, fps uint32) error

	// Sync blocks until the output file is fully written and closed.
	Sync() error

	Close() error
}
