package rendering

import (
	"wallcaster/internal/camera"
	"wallcaster/internal/mathutil"
	"wallcaster/internal/raycast"
	"wallcaster/internal/world"
)

// Stats summarises the work done for one frame.
type Stats struct {
	Walls   int
	Columns int
	Hits    int
	Pixels  int
}

// Renderer draws a scene into caller-owned framebuffers. It keeps the
// per-frame scratch state (camera-space walls, hit list, painted rows) so a
// frame allocates nothing once the buffers have grown. A Renderer is not safe
// for concurrent use.
type Renderer struct {
	scene       *world.Scene
	tracer      *raycast.Tracer
	transformed []world.Wall
	painted     []bool
}

// NewRenderer creates a renderer for scene.
func NewRenderer(scene *world.Scene) *Renderer {
	n := scene.Len()
	return &Renderer{
		scene:       scene,
		tracer:      raycast.NewTracer(n),
		transformed: make([]world.Wall, 0, n),
	}
}

// Scene returns the scene being rendered.
func (r *Renderer) Scene() *world.Scene {
	return r.scene
}

// RenderFrame clears fb and draws the scene as seen from cam. The result
// depends only on cam, the scene and the framebuffer size.
func (r *Renderer) RenderFrame(fb *Framebuffer, cam camera.Camera) Stats {
	fb.Clear()
	if cap(r.painted) < fb.Height {
		r.painted = make([]bool, fb.Height)
	}
	painted := r.painted[:fb.Height]

	proj := camera.NewProjection(cam.FOVH, fb.Width, fb.Height)
	r.transformed = camera.TransformWalls(r.transformed, r.scene.Walls(), cam.Position, cam.Direction())

	stats := Stats{Walls: len(r.transformed), Columns: fb.Width}

	// Step along the near plane instead of recomputing each ray with trig.
	near := mathutil.V2(-proj.NearWidth/2, camera.NearDistance)
	for x := 0; x < fb.Width; x++ {
		hits := r.tracer.TraceColumn(near, r.transformed)
		stats.Hits += len(hits)
		stats.Pixels += FillColumn(fb, x, hits, cam.Height, proj.TanHalfFOVV, painted)
		near.X += proj.XStep
	}
	return stats
}

// TraceColumn returns the hits for a single column of a frame of the given
// size, without drawing. It is meant for inspection and tests; the returned
// slice is only valid until the next call on r.
func (r *Renderer) TraceColumn(cam camera.Camera, column, frameWidth, frameHeight int) []raycast.Hit {
	proj := camera.NewProjection(cam.FOVH, frameWidth, frameHeight)
	r.transformed = camera.TransformWalls(r.transformed, r.scene.Walls(), cam.Position, cam.Direction())

	near := mathutil.V2(-proj.NearWidth/2, camera.NearDistance)
	for x := 0; x < column; x++ {
		near.X += proj.XStep
	}
	return r.tracer.TraceColumn(near, r.transformed)
}
