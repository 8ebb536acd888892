package render

import "image/color"

// Global render configuration for colors and logical canvas.
var (
	// Background behind the clock face.
	Background = color.RGBA{R: 0xFA, G: 0xFA, B: 0xF7, A: 0xFF} // #fafaf7

	// Logical canvas size; scaled to framebuffer.
	CanvasWidth  = 800
	CanvasHeight = 480

	// Padding between the clock square and the canvas edge, in logical pixels.
	Padding = 16
)
