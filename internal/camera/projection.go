package camera

import "math"

// NearDistance is the forward distance of the plane the column rays pass through.
const NearDistance = 1.0

// Projection holds the per-frame constants derived from the field of view and
// the framebuffer size.
type Projection struct {
	FrameWidth  int
	FrameHeight int
	NearWidth   float64 // width of the near plane at NearDistance
	XStep       float64 // near-plane distance between adjacent columns
	FOVV        float64 // vertical field of view in radians
	TanHalfFOVH float64
	TanHalfFOVV float64
}

// NewProjection derives the projection for a horizontal FOV and frame size.
func NewProjection(fovH float64, frameWidth, frameHeight int) Projection {
	tanHalfH := math.Tan(fovH / 2)
	aspect := float64(frameWidth) / float64(frameHeight)
	fovV := 2 * math.Atan(tanHalfH/aspect)
	nearWidth := 2 * NearDistance * tanHalfH

	return Projection{
		FrameWidth:  frameWidth,
		FrameHeight: frameHeight,
		NearWidth:   nearWidth,
		XStep:       nearWidth / float64(frameWidth),
		FOVV:        fovV,
		TanHalfFOVH: tanHalfH,
		TanHalfFOVV: math.Tan(fovV / 2),
	}
}
