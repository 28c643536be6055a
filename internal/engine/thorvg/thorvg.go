//go:build linux || darwin

// Package thorvg implements the engine capability surface on top of the
// ThorVG C API (libthorvg), loaded at runtime via purego. ThorVG performs
// all Lottie parsing, rasterization, and GIF encoding; this package only
// marshals calls across the boundary.
package thorvg

import (
	"fmt"
	"sync"

	"github.com/ebitengine/purego"

	"github.com/ivlev/lottie2gif/internal/engine"
)

// Tvg_Result values from thorvg_capi.h.
type resultCode int32

const (
	resSuccess resultCode = iota
	resInvalidArgument
	resInsufficientCondition
	resFailedAllocation
	resMemoryCorruption
	resNotSupported
	resUnknown
)

func (r resultCode) String() string {
	switch r {
	case resSuccess:
		return "success"
	case resInvalidArgument:
		return "invalid argument"
	case resInsufficientCondition:
		return "insufficient condition"
	case resFailedAllocation:
		return "allocation failed"
	case resMemoryCorruption:
		return "memory corruption"
	case resNotSupported:
		return "not supported"
	default:
		return "unknown failure"
	}
}

var (
	tvgEngineInit         func(threads uint32) resultCode
	tvgEngineTerm         func() resultCode
	tvgAnimationNew       func() uintptr
	tvgAnimationDel       func(anim uintptr) resultCode
	tvgAnimationPicture   func(anim uintptr) uintptr
	tvgPictureLoad        func(paint uintptr, path string) resultCode
	tvgPictureGetSize     func(paint uintptr, w, h *float32) resultCode
	tvgPictureSetSize     func(paint uintptr, w, h float32) resultCode
	tvgShapeNew           func() uintptr
	tvgShapeAppendRect    func(paint uintptr, x, y, w, h, rx, ry float32) resultCode
	tvgShapeSetFillColor  func(paint uintptr, r, g, b, a uint8) resultCode
	tvgSaverNew           func() uintptr
	tvgSaverDel           func(saver uintptr) resultCode
	tvgSaverSetBackground func(saver, paint uintptr) resultCode
	tvgSaverSave          func(saver, anim uintptr, path string, quality, fps uint32) resultCode
	tvgSaverSync          func(saver uintptr) resultCode
)

var (
	loadOnce sync.Once
	loadErr  error
)

func loadLibrary() error {
	loadOnce.Do(func() {
		var handle uintptr
		var err error
		for _, name := range libraryCandidates() {
			handle, err = purego.Dlopen(name, purego.RTLD_NOW|purego.RTLD_GLOBAL)
			if err == nil {
				break
			}
		}
		if err != nil {
			loadErr = fmt.Errorf("load libthorvg: %w", err)
			return
		}

		purego.RegisterLibFunc(&tvgEngineInit, handle, "tvg_engine_init")
		purego.RegisterLibFunc(&tvgEngineTerm, handle, "tvg_engine_term")
		purego.RegisterLibFunc(&tvgAnimationNew, handle, "tvg_animation_new")
		purego.RegisterLibFunc(&tvgAnimationDel, handle, "tvg_animation_del")
		purego.RegisterLibFunc(&tvgAnimationPicture, handle, "tvg_animation_get_picture")
		purego.RegisterLibFunc(&tvgPictureLoad, handle, "tvg_picture_load")
		purego.RegisterLibFunc(&tvgPictureGetSize, handle, "tvg_picture_get_size")
		purego.RegisterLibFunc(&tvgPictureSetSize, handle, "tvg_picture_set_size")
		purego.RegisterLibFunc(&tvgShapeNew, handle, "tvg_shape_new")
		purego.RegisterLibFunc(&tvgShapeAppendRect, handle, "tvg_shape_append_rect")
		purego.RegisterLibFunc(&tvgShapeSetFillColor, handle, "tvg_shape_set_fill_color")
		purego.RegisterLibFunc(&tvgSaverNew, handle, "tvg_saver_new")
		purego.RegisterLibFunc(&tvgSaverDel, handle, "tvg_saver_del")
		purego.RegisterLibFunc(&tvgSaverSetBackground, handle, "tvg_saver_set_background")
		purego.RegisterLibFunc(&tvgSaverSave, handle, "tvg_saver_save")
		purego.RegisterLibFunc(&tvgSaverSync, handle, "tvg_saver_sync")
	})
	return loadErr
}

// Engine is the ThorVG-backed engine. The zero value is usable.
type Engine struct {
	// Threads is passed to tvg_engine_init; 0 lets ThorVG size its own
	// render thread pool.
	Threads uint32
}

// New returns a ThorVG engine handle. The shared library is loaded lazily
// on the first Open.
func New() *Engine { return &Engine{} }

// Open loads libthorvg if needed and initializes the engine runtime.
// ThorVG refcounts init/term internally, so concurrent sessions from
// separate workers are safe.
func (e *Engine) Open() (engine.Session, error) {
	if err := loadLibrary(); err != nil {
		return nil, fmt.Errorf("%w: %v", engine.ErrInitFailed, err)
	}
	if rc := tvgEngineInit(e.Threads); rc != resSuccess {
		return nil, fmt.Errorf("%w: %s", engine.ErrInitFailed, rc)
	}
	return &session{}, nil
}

type session struct{}

func (s *session) Load(path string) (engine.Animation, error) {
	anim := tvgAnimationNew()
	if anim == 0 {
		return nil, fmt.Errorf("%w: animation allocation failed", engine.ErrLoadFailed)
	}
	picture := tvgAnimationPicture(anim)
	if picture == 0 {
		tvgAnimationDel(anim)
		return nil, fmt.Errorf("%w: no picture handle", engine.ErrLoadFailed)
	}
	if rc := tvgPictureLoad(picture, path); rc != resSuccess {
		tvgAnimationDel(anim)
		return nil, fmt.Errorf("%w: %s", engine.ErrLoadFailed, rc)
	}
	return &animation{handle: anim, picture: picture}, nil
}

func (s *session) NewEncoder() (engine.Encoder, error) {
	saver := tvgSaverNew()
	if saver == 0 {
		return nil, engine.ErrEncoderUnavailable
	}
	return &encoder{saver: saver}, nil
}

func (s *session) Close() error {
	if rc := tvgEngineTerm(); rc != resSuccess {
		return fmt.Errorf("engine termination: %s", rc)
	}
	return nil
}

type animation struct {
	handle  uintptr
	picture uintptr
}

func (a *animation) Size() (w, h float32) {
	tvgPictureGetSize(a.picture, &w, &h)
	return w, h
}

func (a *animation) SetSize(w, h float32) error {
	if rc := tvgPictureSetSize(a.picture, w, h); rc != resSuccess {
		return fmt.Errorf("set content size: %s", rc)
	}
	return nil
}

func (a *animation) Close() error {
	if a.handle == 0 {
		return nil
	}
	rc := tvgAnimationDel(a.handle)
	a.handle, a.picture = 0, 0
	if rc != resSuccess {
		return fmt.Errorf("release animation: %s", rc)
	}
	return nil
}

type encoder struct {
	saver uintptr
}

func (e *encoder) SetBackground(layer engine.BackgroundLayer) error {
	shape := tvgShapeNew()
	if shape == 0 {
		return fmt.Errorf("%w: background shape allocation failed", engine.ErrEncodeFailed)
	}
	tvgShapeAppendRect(shape, 0, 0, layer.Width, layer.Height, 0, 0)
	tvgShapeSetFillColor(shape, layer.R, layer.G, layer.B, 255)
	// The saver takes ownership of the shape.
	if rc := tvgSaverSetBackground(e.saver, shape); rc != resSuccess {
		return fmt.Errorf("%w: set background: %s", engine.ErrEncodeFailed, rc)
	}
	return nil
}

func (e *encoder) Save(a engine.Animation, path string, quality, fps uint32) error {
	anim, ok := a.(*animation)
	if !ok {
		return fmt.Errorf("%w: foreign animation handle", engine.ErrEncodeFailed)
	}
	switch rc := tvgSaverSave(e.saver, anim.handle, path, quality, fps); rc {
	case resSuccess:
		return nil
	case resNotSupported:
		// ThorVG built without the GIF saver module.
		return engine.ErrEncoderUnavailable
	default:
		return fmt.Errorf("%w: save: %s", engine.ErrEncodeFailed, rc)
	}
}

func (e *encoder) Sync() error {
	if rc := tvgSaverSync(e.saver); rc != resSuccess {
		return fmt.Errorf("%w: sync: %s", engine.ErrEncodeFailed, rc)
	}
	return nil
}

func (e *encoder) Close() error {
	if e.saver == 0 {
		return nil
	}
	rc := tvgSaverDel(e.saver)
	e.saver = 0
	if rc != resSuccess {
		return fmt.Errorf("release saver: %s", rc)
	}
	return nil
}
