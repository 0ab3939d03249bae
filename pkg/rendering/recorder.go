package rendering

import "github.com/go-drift/lattice/pkg/graphics"

// FillOp is one recorded FillQuad call.
type FillOp struct {
	Quad       Quad
	Background graphics.Color
}

// Recorder is a Renderer that appends every primitive to a command buffer.
// The buffer can be inspected or replayed onto another renderer.
type Recorder struct {
	ops   []FillOp
	clear *graphics.Color
}

// FillQuad records the primitive.
func (r *Recorder) FillQuad(quad Quad, background graphics.Color) {
	r.ops = append(r.ops, FillOp{Quad: quad, Background: background})
}

// Clear drops recorded primitives and remembers the clear color for
// replay.
func (r *Recorder) Clear(color graphics.Color) {
	r.ops = r.ops[:0]
	r.clear = &color
}

// Reset drops recorded primitives and any clear color.
func (r *Recorder) Reset() {
	r.ops = r.ops[:0]
	r.clear = nil
}

// Ops returns a copy of the recorded primitives in submission order.
func (r *Recorder) Ops() []FillOp {
	ops := make([]FillOp, len(r.ops))
	copy(ops, r.ops)
	return ops
}

// Cleared returns the last clear color, if any.
func (r *Recorder) Cleared() (graphics.Color, bool) {
	if r.clear == nil {
		return 0, false
	}
	return *r.clear, true
}

// Len returns the number of recorded primitives.
func (r *Recorder) Len() int {
	return len(r.ops)
}

// Replay submits the recorded primitives to target in order.
func (r *Recorder) Replay(target Renderer) {
	if r.clear != nil {
		if c, ok := target.(Clearer); ok {
			c.Clear(*r.clear)
		}
	}
	for _, op := range r.ops {
		target.FillQuad(op.Quad, op.Background)
	}
}
