package sim

import (
	"github.com/jakecoffman/cp"

	"github.com/milk9111/dimshift/common"
)

// EntitySnapshot is the render-facing view of one entity.
type EntitySnapshot struct {
	Kind string
	Rect common.Rect
	Dim  Dimension
	// Tag carries the powerup type for powerup entities.
	Tag string
}

// Snapshot is everything the renderer and HUD need for one frame, taken
// after Update. Entities gated out of the active dimension, dead enemies,
// and collected pickups are already filtered. The slices are valid until
// the next Update.
type Snapshot struct {
	Level     int
	Score     int
	Lives     int
	Dimension Dimension
	Camera    cp.Vector

	Player           EntitySnapshot
	PlayerState      string
	PlayerInvincible bool

	Entities  []EntitySnapshot
	Particles []Particle
}

func (w *World) Snapshot() Snapshot {
	if w == nil {
		return Snapshot{}
	}
	s := Snapshot{
		Level:            w.level,
		Score:            w.score,
		Lives:            w.player.lives,
		Dimension:        w.dimension,
		Camera:           w.camera.Pos,
		PlayerState:      w.player.State(),
		PlayerInvincible: w.player.Invincible(),
		Player: EntitySnapshot{
			Kind: "player",
			Rect: w.player.Bounds(),
			Dim:  DimAll,
		},
		Particles: w.particles.Live(),
	}

	s.Entities = make([]EntitySnapshot, 0,
		len(w.platforms)+len(w.enemies)+len(w.collectibles)+len(w.portals)+len(w.powerups))
	for _, p := range w.platforms {
		if p.VisibleIn(w.dimension) {
			s.Entities = append(s.Entities, EntitySnapshot{Kind: "platform", Rect: p.Bounds(), Dim: p.Dim()})
		}
	}
	for _, e := range w.enemies {
		if e.VisibleIn(w.dimension) {
			s.Entities = append(s.Entities, EntitySnapshot{Kind: "enemy", Rect: e.Bounds(), Dim: DimAll})
		}
	}
	for _, c := range w.collectibles {
		if c.VisibleIn(w.dimension) {
			s.Entities = append(s.Entities, EntitySnapshot{Kind: "collectible", Rect: c.Bounds(), Dim: DimAll})
		}
	}
	for _, p := range w.portals {
		s.Entities = append(s.Entities, EntitySnapshot{Kind: "portal", Rect: p.Bounds(), Dim: DimAll})
	}
	for _, p := range w.powerups {
		if p.VisibleIn(w.dimension) {
			s.Entities = append(s.Entities, EntitySnapshot{Kind: "powerup", Rect: p.Bounds(), Dim: p.dim, Tag: string(p.Kind())})
		}
	}
	return s
}
