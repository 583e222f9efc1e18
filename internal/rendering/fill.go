package rendering

import (
	"math"

	"wallcaster/internal/mathutil"
	"wallcaster/internal/raycast"
)

// Span is the vertical extent of a wall hit in logical rows, counted from the
// bottom of the frame. Min and Max are unclamped; Max is exclusive.
type Span struct {
	Min, Max float64
}

// ProjectSpan returns the rows a wall slice covers at the given forward
// distance. ok is false when the slice has no visible extent, including a
// camera standing on the wall plane.
func ProjectSpan(distance, minHeight, maxHeight, cameraHeight, tanHalfFOVV float64, frameHeight int) (Span, bool) {
	halfHeight := distance * tanHalfFOVV
	if !(halfHeight > 0) {
		return Span{}, false
	}

	top := 0.5 + (maxHeight-cameraHeight)/halfHeight
	bottom := 0.5 - (cameraHeight-minHeight)/halfHeight

	h := float64(frameHeight)
	s := Span{Min: math.Floor(bottom * h), Max: math.Floor(top * h)}
	if !(s.Max > s.Min) {
		return Span{}, false
	}
	return s, true
}

// FillColumn draws hits, nearest first, into one framebuffer column and
// returns the number of pixels written. painted must hold at least
// fb.Height entries; it is reset on entry and records the rows claimed so a
// farther wall can never overwrite a nearer one.
func FillColumn(fb *Framebuffer, column int, hits []raycast.Hit, cameraHeight, tanHalfFOVV float64, painted []bool) int {
	painted = painted[:fb.Height]
	clear(painted)

	frameH := float64(fb.Height)
	written := 0

	for i := range hits {
		hit := &hits[i]
		w := hit.Wall
		tex := w.Texture()
		if tex == nil {
			continue
		}

		span, ok := ProjectSpan(hit.Distance, w.MinHeight(), w.MaxHeight(), cameraHeight, tanHalfFOVV, fb.Height)
		if !ok {
			continue
		}

		lo := int(mathutil.Clamp(span.Min, 0, frameH))
		hi := int(mathutil.Clamp(span.Max, 0, frameH))
		u := hit.U()

		// Logical rows count up from the bottom; walking them downward from the
		// top keeps framebuffer writes in memory order.
		for y := hi - 1; y >= lo; y-- {
			if painted[y] {
				continue
			}
			painted[y] = true

			// V is 0 at the top of the wall, matching image-ordered textures.
			v := mathutil.InverseLerp(span.Max, span.Min, float64(y)+0.5)
			fb.set(column, fb.Height-1-y, tex.Sample(u, v))
			written++
		}
	}
	return written
}
