package sim

import (
	"math"
	"testing"

	"github.com/jakecoffman/cp"
)

func TestCameraConverges(t *testing.T) {
	c := NewCamera(1280, 720, 3000, 1000, 0.1)
	focus := cp.Vector{X: 1500, Y: 500}
	want := c.target(focus)

	prevDist := want.Sub(c.Pos).Length()
	for i := 0; i < 300; i++ {
		c.Update(1.0/60, focus)
		dist := want.Sub(c.Pos).Length()
		if dist > prevDist+1e-9 {
			t.Fatalf("camera diverged at frame %d: %g > %g", i, dist, prevDist)
		}
		prevDist = dist
	}
	if prevDist > 1 {
		t.Fatalf("camera still %g away from target after 5s", prevDist)
	}
}

func TestCameraClampsToWorld(t *testing.T) {
	c := NewCamera(1280, 720, 3000, 1000, 0.1)

	tests := []struct {
		name  string
		focus cp.Vector
		want  cp.Vector
	}{
		{"left edge", cp.Vector{X: 0, Y: 0}, cp.Vector{X: 0, Y: 0}},
		{"right edge", cp.Vector{X: 3000, Y: 1000}, cp.Vector{X: 3000 - 1280, Y: 1000 - 720}},
		{"interior", cp.Vector{X: 1500, Y: 500}, cp.Vector{X: 1500 - 640, Y: 500 - 360}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c.SnapTo(tt.focus)
			if c.Pos != tt.want {
				t.Fatalf("SnapTo(%v) = %v, want %v", tt.focus, c.Pos, tt.want)
			}
		})
	}
}

func TestCameraWorldSmallerThanView(t *testing.T) {
	c := NewCamera(1280, 720, 800, 600, 0.1)
	c.SnapTo(cp.Vector{X: 400, Y: 300})
	if c.Pos.X != 0 || c.Pos.Y != 0 {
		t.Fatalf("camera = %v for undersized world, want origin", c.Pos)
	}
}

func TestCameraLargeStepDoesNotOvershoot(t *testing.T) {
	c := NewCamera(1280, 720, 3000, 1000, 0.1)
	focus := cp.Vector{X: 2000, Y: 500}
	want := c.target(focus)

	// a dt spike would push the blend factor past 1 without the clamp
	c.Update(10, focus)
	if math.Abs(c.Pos.X-want.X) > 1e-9 || math.Abs(c.Pos.Y-want.Y) > 1e-9 {
		t.Fatalf("camera = %v after spike, want exactly %v", c.Pos, want)
	}
	c.Update(10, focus)
	if math.Abs(c.Pos.X-want.X) > 1e-9 {
		t.Fatalf("camera moved past target to %v", c.Pos)
	}
}
