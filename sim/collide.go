package sim

import (
	"math"

	"github.com/milk9111/dimshift/common"
)

// pushEpsilon keeps the player from re-colliding with the edge it was just
// pushed out of.
const pushEpsilon = 1

// resolvePlayerPlatforms corrects the player's position and velocity
// against every platform visible in dim, once per frame after
// integration. Platforms are handled independently in registry order and
// the last write wins; simultaneous overlaps with several platforms can
// jitter on corner cases. Known limitation, kept instead of a manifold
// solver.
func resolvePlayerPlatforms(p *Player, platforms []*Platform, dim Dimension) {
	for _, pl := range platforms {
		if !pl.VisibleIn(dim) {
			continue
		}
		b := p.Bounds()
		pb := pl.Bounds()
		if !b.Intersects(pb) {
			continue
		}

		// Within an overlap, landing takes priority over the side test:
		// the probe is inset from the sides and biased toward the feet so
		// a descending grazing contact registers as ground.
		if p.vel.Y >= 0 && groundProbe(b).Intersects(pb) {
			p.pos.Y = pb.Y - b.H
			p.vel.Y = 0
			p.onGround = true
			p.jumpCount = 0
			continue
		}

		ox := math.Min(b.Right(), pb.Right()) - math.Max(b.X, pb.X)
		oy := math.Min(b.Bottom(), pb.Bottom()) - math.Max(b.Y, pb.Y)
		if ox >= oy {
			// vertical hit
			if b.CenterY() < pb.CenterY() {
				p.pos.Y = pb.Y - b.H
				p.vel.Y = 0
				p.onGround = true
				p.jumpCount = 0
			} else {
				// head bump
				p.pos.Y = pb.Bottom()
				p.vel.Y = 0
			}
		} else {
			// horizontal hit
			if b.CenterX() < pb.CenterX() {
				p.pos.X = pb.X - b.W - pushEpsilon
			} else {
				p.pos.X = pb.Right() + pushEpsilon
			}
		}
	}
}

// groundProbe is the landing-detection rect: inset from the sides so wall
// grazes don't count, extended below the feet to bias toward ground
// contact.
func groundProbe(b common.Rect) common.Rect {
	return common.Rect{X: b.X + 2, Y: b.Y + b.H - 6, W: b.W - 4, H: 10}
}
