//go:build !linux && !darwin

package thorvg

import (
	"fmt"
	"runtime"

	"github.com/ivlev/lottie2gif/internal/engine"
)

// Engine is a placeholder on platforms without dlopen support.
type Engine struct {
	Threads uint32
}

func New() *Engine { return &Engine{} }

func (e *Engine) Open() (engine.Session, error) {
	return nil, fmt.Errorf("%w: thorvg binding not supported on %s", engine.ErrInitFailed, runtime.GOOS)
}
