package component

import "image/color"

// Renderable is the minimal draw state for the debug-style renderer.
type Renderable struct {
	Color  color.RGBA
	Radius float32
}
