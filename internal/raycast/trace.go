package raycast

import (
	"sort"

	"wallcaster/internal/mathutil"
	"wallcaster/internal/world"
)

// Hit is one wall crossed by a column ray.
type Hit struct {
	Wall     *world.Wall
	Distance float64 // camera-space forward distance, also the depth key
	T        float64 // position along the wall, 0 at A and 1 at B
}

// U returns the horizontal texture coordinate, in world units along the wall,
// so textures repeat once per unit of wall length.
func (h Hit) U() float64 {
	return h.T * h.Wall.Length()
}

// Tracer intersects column rays with camera-space walls. It reuses its hit
// buffer between calls, so each goroutine needs its own Tracer.
type Tracer struct {
	hits []Hit
}

// NewTracer creates a tracer with room for capacity hits before growing.
func NewTracer(capacity int) *Tracer {
	return &Tracer{hits: make([]Hit, 0, capacity)}
}

// TraceColumn returns every wall the ray along dir crosses in front of the
// camera, nearest first. Equal distances keep wall order. The returned slice
// and the wall pointers are only valid until the next call and while walls is
// unchanged.
func (tr *Tracer) TraceColumn(dir mathutil.Vec2, walls []world.Wall) []Hit {
	tr.hits = tr.hits[:0]
	for i := range walls {
		w := &walls[i]
		t, ok := Intersect(dir, *w)
		if !ok {
			continue
		}

		// Only the forward axis matters for perspective scaling.
		dist := mathutil.Lerp(w.A().Y, w.B().Y, t)
		if dist <= 0 {
			continue
		}
		tr.hits = append(tr.hits, Hit{Wall: w, Distance: dist, T: t})
	}

	sort.SliceStable(tr.hits, func(i, j int) bool {
		return tr.hits[i].Distance < tr.hits[j].Distance
	})
	return tr.hits
}
