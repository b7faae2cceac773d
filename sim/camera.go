package sim

import (
	"math"

	"github.com/jakecoffman/cp"
)

// Camera smoothly follows a focus point, keeping the view inside the
// world. Pos is the view's top-left corner in world pixels.
type Camera struct {
	Pos cp.Vector

	view      cp.Vector
	world     cp.Vector
	smoothing float64
}

func NewCamera(viewW, viewH, worldW, worldH, smoothing float64) *Camera {
	return &Camera{
		view:      cp.Vector{X: viewW, Y: viewH},
		world:     cp.Vector{X: worldW, Y: worldH},
		smoothing: smoothing,
	}
}

// target centers the view on focus, clamped to the world. A world smaller
// than the view pins the camera to the origin.
func (c *Camera) target(focus cp.Vector) cp.Vector {
	return cp.Vector{
		X: cp.Clamp(focus.X-c.view.X/2, 0, math.Max(0, c.world.X-c.view.X)),
		Y: cp.Clamp(focus.Y-c.view.Y/2, 0, math.Max(0, c.world.Y-c.view.Y)),
	}
}

// Update moves the camera a smoothing-scaled fraction toward the target.
// The fraction scales with dt so the follow speed is frame-rate
// independent; it is clamped to [0,1] so a dt spike cannot overshoot.
func (c *Camera) Update(dt float64, focus cp.Vector) {
	t := c.target(focus)
	k := cp.Clamp(c.smoothing*dt*referenceFPS, 0, 1)
	c.Pos = c.Pos.Add(t.Sub(c.Pos).Mult(k))
}

// SnapTo jumps straight to the clamped target. Used on level load.
func (c *Camera) SnapTo(focus cp.Vector) {
	c.Pos = c.target(focus)
}
