package camera

import (
	"math"

	"wallcaster/internal/mathutil"
	"wallcaster/internal/world"
)

// Camera is the first-person viewpoint. The zero value sits at the origin,
// faces +Y and has no field of view.
type Camera struct {
	Position mathutil.Vec2
	Height   float64
	FOVH     float64 // horizontal field of view in radians

	angle float64
}

// New creates a camera at pos facing angle radians, counter-clockwise from +Y.
func New(pos mathutil.Vec2, angle, height, fovH float64) Camera {
	return Camera{Position: pos, Height: height, FOVH: fovH, angle: angle}
}

func (c *Camera) Angle() float64 {
	return c.angle
}

func (c *Camera) SetAngle(angle float64) {
	c.angle = angle
}

// Rotate turns the camera by delta radians; positive turns left.
func (c *Camera) Rotate(delta float64) {
	c.angle += delta
}

// Direction returns the unit forward vector. It is rebuilt from the angle on
// every call rather than accumulated, so it never drifts from unit length.
func (c *Camera) Direction() mathutil.Vec2 {
	return mathutil.V2(-math.Sin(c.angle), math.Cos(c.angle))
}

// Right returns the unit vector to the camera's right.
func (c *Camera) Right() mathutil.Vec2 {
	d := c.Direction()
	return mathutil.V2(d.Y, -d.X)
}

// Move translates the camera by forward units along Direction and strafe units
// along Right.
func (c *Camera) Move(forward, strafe float64) {
	if forward != 0 {
		c.Position = c.Position.Add(c.Direction().Scale(forward))
	}
	if strafe != 0 {
		c.Position = c.Position.Add(c.Right().Scale(strafe))
	}
}

// Place moves the camera to a stored pose. A zero pose height keeps the
// current height.
func (c *Camera) Place(p world.Pose) {
	c.Position = p.Position
	c.angle = p.Angle
	if p.Height != 0 {
		c.Height = p.Height
	}
}
