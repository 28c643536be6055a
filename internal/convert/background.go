package convert

import (
	"github.com/ivlev/lottie2gif/internal/config"
	"github.com/ivlev/lottie2gif/internal/engine"
	"github.com/ivlev/lottie2gif/internal/geometry"
)

// BuildBackground turns the configured background color into a solid layer
// spanning the scaled output area, or nil when no background was
// requested. The layer is handed to the encoder as the bottom-most
// compositing layer; without it, letterboxed regions stay transparent.
func BuildBackground(bg config.Background, plan geometry.Plan) *engine.BackgroundLayer {
	if !bg.Enabled {
		return nil
	}
	return &engine.BackgroundLayer{
		R:      bg.R,
		G:      bg.G,
		B:      bg.B,
		Width:  plan.Width,
		Height: plan.Height,
	}
}
