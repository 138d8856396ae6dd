package main

import (
	"github.com/gdamore/tcell/v2"
	colorful "github.com/lucasb-eyer/go-colorful"
)

// highlightGradient returns steps perceptually-even colors from a dim to a
// bright hue, used to color each listed candidate by its score relative to
// the best score on screen (higher-scoring candidates render brighter).
// go-colorful's HSV blend keeps the ramp smoother than a naive RGB lerp.
func highlightGradient(steps int) []tcell.Color {
	if steps < 1 {
		steps = 1
	}
	dim := colorful.Hsv(200, 0.35, 0.55)
	bright := colorful.Hsv(45, 0.85, 1.0)

	denom := steps - 1
	if denom < 1 {
		denom = 1
	}

	out := make([]tcell.Color, steps)
	for i := 0; i < steps; i++ {
		t := float64(i) / float64(denom)
		c := dim.BlendHsv(bright, t)
		r, g, b := c.RGB255()
		out[i] = tcell.NewRGBColor(int32(r), int32(g), int32(b))
	}
	return out
}

// gradientForScore maps a 0..maxScore score onto one of the gradient steps.
func gradientForScore(gradient []tcell.Color, score, maxScore uint16) tcell.Color {
	if maxScore == 0 || len(gradient) == 0 {
		return tcell.ColorWhite
	}
	idx := int(score) * (len(gradient) - 1) / int(maxScore)
	if idx < 0 {
		idx = 0
	}
	if idx >= len(gradient) {
		idx = len(gradient) - 1
	}
	return gradient[idx]
}
