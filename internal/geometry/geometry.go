// Package geometry computes the uniform scale that fits animation content
// inside the requested render box while preserving aspect ratio.
package geometry

import "errors"

// ErrDegenerateContent is returned when the engine reports a non-positive
// intrinsic size for loaded content.
var ErrDegenerateContent = errors.New("content has non-positive intrinsic size")

// Plan is the result of fitting content into a render box. Width and
// Height are the scaled content dimensions; at least one of them matches
// the box exactly, neither exceeds it.
type Plan struct {
	Scale  float32
	Width  float32
	Height float32
}

// Fit computes the uniform scale factor min(boxW/cw, boxH/ch) and the
// resulting scaled dimensions. Content dimensions must be strictly
// positive; the box is validated at configuration time.
func Fit(contentW, contentH float32, boxW, boxH uint32) (Plan, error) {
	if contentW <= 0 || contentH <= 0 {
		return Plan{}, ErrDegenerateContent
	}

	sx := float32(boxW) / contentW
	sy := float32(boxH) / contentH
	s := sx
	if sy < s {
		s = sy
	}

	return Plan{
		Scale:  s,
		Width:  contentW * s,
		Height: contentH * s,
	}, nil
}
