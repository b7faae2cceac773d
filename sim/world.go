package sim

import (
	"log"
	"math"
	"math/rand"

	"github.com/jakecoffman/cp"

	"github.com/milk9111/dimshift/common"
	"github.com/milk9111/dimshift/config"
)

const collectibleScore = 10

// World owns one level's worth of entities plus the player, particle
// arena, and camera. Level advance and death-reset replace the whole
// World; nothing rebuilds a live registry in place.
type World struct {
	cfg  config.Tuning
	rng  *rand.Rand
	seed int64

	level     int
	dimension Dimension

	player       *Player
	platforms    []*Platform
	enemies      []*Enemy
	collectibles []*Collectible
	portals      []*Portal
	powerups     []*Powerup

	particles *ParticleArena
	camera    *Camera

	score int
}

// NewWorld builds the world for the given level index. The seed plus the
// level index feeds the parametric builder so a rebuild of the same level
// reproduces the same layout.
func NewWorld(cfg config.Tuning, level int, seed int64) (*World, error) {
	w := &World{
		cfg:       cfg,
		seed:      seed,
		level:     level,
		dimension: DimNormal,
		rng:       rand.New(rand.NewSource(seed + int64(level))),
		particles: NewParticleArena(cfg.Particles.Capacity),
		camera: NewCamera(
			float64(cfg.Screen.Width), float64(cfg.Screen.Height),
			cfg.World.Width, cfg.World.Height,
			cfg.Camera.Smoothing,
		),
	}
	if err := w.generate(level); err != nil {
		return nil, err
	}
	w.camera.SnapTo(w.player.Center())
	return w, nil
}

// BuildWorld is NewWorld with the recovery chain: a failed build falls
// back to the previous level, then to level 0. The returned error is the
// original failure when a fallback was taken, so the caller can surface
// it without losing the playable world.
func BuildWorld(cfg config.Tuning, level, prev int, seed int64) (*World, int, error) {
	w, err := NewWorld(cfg, level, seed)
	if err == nil {
		return w, level, nil
	}
	log.Printf("sim: build level %d: %v", level, err)

	if prev != level && prev >= 0 {
		if fw, ferr := NewWorld(cfg, prev, seed); ferr == nil {
			return fw, prev, err
		} else {
			log.Printf("sim: rebuild level %d: %v", prev, ferr)
		}
	}
	if fw, ferr := NewWorld(cfg, 0, seed); ferr == nil {
		return fw, 0, err
	}
	return nil, level, err
}

func (w *World) Player() *Player      { return w.player }
func (w *World) Level() int           { return w.level }
func (w *World) Seed() int64          { return w.seed }
func (w *World) Score() int           { return w.score }
func (w *World) Dimension() Dimension { return w.dimension }
func (w *World) Camera() cp.Vector    { return w.camera.Pos }

// CarryOver restores progress into a freshly built world, used when the
// front end rebuilds after a death or level advance. A rebuild after a
// hit also grants the post-hit grace window.
func (w *World) CarryOver(lives, score int) {
	if w == nil {
		return
	}
	w.score = score
	if lives > 0 {
		w.player.lives = lives
		w.player.hitInvincibility = w.cfg.Player.HitInvincibility
	}
}

// SwitchDimension cycles to the next dimension. The caller enforces the
// switch cooldown.
func (w *World) SwitchDimension() Dimension {
	w.dimension = w.dimension.Next()
	spawnRing(w.particles, w.player.Center(), w.dimension.ColorClass())
	return w.dimension
}

// Update advances the simulation by dt seconds and returns the frame's
// events. dt is expected to be pre-clamped and difficulty-scaled by the
// caller.
func (w *World) Update(dt float64) Events {
	var ev Events
	if w == nil {
		return ev
	}
	if w.dimension == DimTimeSlow {
		dt *= w.cfg.Dimension.TimeSlowScale
	}

	p := w.player
	if !p.dead {
		p.tickTimers(dt)
		prevX := p.pos.X
		p.integrate(dt)
		p.onGround = false
		resolvePlayerPlatforms(p, w.platforms, w.dimension)
		w.clampPlayer()
		if p.onGround {
			p.lastSafe = p.pos
			p.stepDistance += math.Abs(p.pos.X - prevX)
			if p.stepDistance >= w.cfg.Player.StepDistance {
				p.stepDistance = 0
				ev.Step = true
				foot := cp.Vector{X: p.pos.X + p.w/2, Y: p.pos.Y + p.h}
				spawnFootstep(w.particles, w.rng, foot, w.dimension.ColorClass())
			}
		}
	}

	for _, e := range w.enemies {
		safeUpdate(e, dt)
	}
	for _, c := range w.collectibles {
		safeUpdate(c, dt)
	}
	for _, po := range w.portals {
		safeUpdate(po, dt)
	}
	for _, pu := range w.powerups {
		safeUpdate(pu, dt)
	}

	if !p.dead {
		w.interact(&ev)
	}

	w.particles.Advance(dt)
	w.particles.Compact()
	w.camera.Update(dt, p.Center())
	return ev
}

// safeUpdate isolates a single entity's failure to that entity; the rest
// of the frame continues.
func safeUpdate(e Entity, dt float64) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("sim: entity update skipped: %v", r)
		}
	}()
	e.Update(dt)
}

func (w *World) clampPlayer() {
	p := w.player
	if p.pos.X < 0 {
		p.pos.X = 0
		p.vel.X = 0
	}
	if p.pos.X+p.w > w.cfg.World.Width {
		p.pos.X = w.cfg.World.Width - p.w
		p.vel.X = 0
	}
}

func (w *World) interact(ev *Events) {
	p := w.player
	pb := p.Bounds()
	class := w.dimension.ColorClass()

	for _, c := range w.collectibles {
		if c.Collected() || !pb.Intersects(c.Bounds()) {
			continue
		}
		c.Collect()
		w.score += collectibleScore
		ev.Collect = true
		spawnBurst(w.particles, w.rng, cb(c.Bounds()), 8, class)
	}

	for _, pu := range w.powerups {
		if !pu.VisibleIn(w.dimension) || !pb.Intersects(pu.Bounds()) {
			continue
		}
		pu.collected = true
		t, ok := w.cfg.Powerups[string(pu.Kind())]
		if !ok {
			log.Printf("sim: powerup %q has no tuning entry", pu.Kind())
			continue
		}
		p.AddPowerup(pu.Kind(), t.Duration)
		ev.PowerupCollected = string(pu.Kind())
		spawnBurst(w.particles, w.rng, cb(pu.Bounds()), 12, class)
	}

	probe := groundProbe(pb)
	for _, e := range w.enemies {
		if e.Dead() {
			continue
		}
		eb := e.Bounds()
		if p.vel.Y > 0 && probe.Intersects(eb) {
			// stomp
			e.Die()
			p.vel.Y = w.cfg.Player.JumpStrength * w.cfg.Player.StompBounceScale
			ev.EnemyDeath = true
			spawnBurst(w.particles, w.rng, cb(eb), 12, class)
			continue
		}
		if pb.Intersects(eb) && !p.Invincible() {
			ev.PlayerDeath = true
			p.hurt()
			return
		}
	}

	if p.pos.Y > w.cfg.World.Height {
		ev.PlayerDeath = true
		p.hurt()
		return
	}

	for _, po := range w.portals {
		if p.portalCooldown <= 0 && pb.Intersects(po.Bounds()) {
			p.portalCooldown = w.cfg.Portal.Cooldown
			ev.LevelComplete = true
			break
		}
	}
}

func cb(r common.Rect) cp.Vector {
	return cp.Vector{X: r.CenterX(), Y: r.CenterY()}
}
