package sim

import (
	"math"

	"github.com/milk9111/dimshift/common"
)

// referenceFPS is the frame rate the per-frame motion constants were tuned
// at; motion code multiplies dt by it so the constants keep their meaning
// at any real frame rate.
const referenceFPS = 60

// Entity is the shared contract of every world object. The variant set is
// closed; rendering behavior lives outside the core and consumes
// snapshots instead.
type Entity interface {
	Update(dt float64)
	VisibleIn(d Dimension) bool
	Bounds() common.Rect
}

// Platform is a static solid. Immutable once placed.
type Platform struct {
	rect common.Rect
	dim  Dimension
}

func NewPlatform(x, y, w, h float64, dim Dimension) *Platform {
	return &Platform{rect: common.Rect{X: x, Y: y, W: w, H: h}, dim: dim}
}

func (p *Platform) Update(dt float64)          {}
func (p *Platform) VisibleIn(d Dimension) bool { return p.dim.ActiveIn(d) }
func (p *Platform) Bounds() common.Rect        { return p.rect }
func (p *Platform) Dim() Dimension             { return p.dim }

// Enemy walks back and forth between its patrol bounds. Death is terminal;
// a dead enemy stays in the registry but is skipped everywhere.
type Enemy struct {
	rect        common.Rect
	patrolLeft  float64
	patrolRight float64
	speed       float64
	dir         float64
	dead        bool
	phase       float64
}

func NewEnemy(x, y, patrolLeft, patrolRight, speed float64) *Enemy {
	return &Enemy{
		rect:        common.Rect{X: x, Y: y, W: 40, H: 40},
		patrolLeft:  patrolLeft,
		patrolRight: patrolRight,
		speed:       speed,
		dir:         1,
	}
}

func (e *Enemy) Update(dt float64) {
	if e.dead {
		return
	}
	e.phase += dt
	e.rect.X += e.dir * e.speed * dt * referenceFPS
	if e.rect.X <= e.patrolLeft {
		e.rect.X = e.patrolLeft
		e.dir = 1
	} else if e.rect.Right() >= e.patrolRight {
		e.rect.X = e.patrolRight - e.rect.W
		e.dir = -1
	}
}

func (e *Enemy) VisibleIn(d Dimension) bool { return !e.dead }
func (e *Enemy) Bounds() common.Rect        { return e.rect }
func (e *Enemy) Dead() bool                 { return e.dead }

// Die marks the enemy dead. One-way; there is no revive.
func (e *Enemy) Die() { e.dead = true }

// Collectible bobs in place until picked up. Collection is terminal.
type Collectible struct {
	rect      common.Rect
	baseY     float64
	phase     float64
	collected bool
}

func NewCollectible(x, y float64) *Collectible {
	return &Collectible{
		rect:  common.Rect{X: x, Y: y, W: 20, H: 20},
		baseY: y,
	}
}

func (c *Collectible) Update(dt float64) {
	if c.collected {
		return
	}
	c.phase += dt
	c.rect.Y = c.baseY + math.Sin(c.phase*4)*3
}

func (c *Collectible) VisibleIn(d Dimension) bool { return !c.collected }
func (c *Collectible) Bounds() common.Rect        { return c.rect }
func (c *Collectible) Collected() bool            { return c.collected }
func (c *Collectible) Collect()                   { c.collected = true }

// Portal advances the level when the player overlaps it, subject to the
// cooldown tracked by the player.
type Portal struct {
	rect  common.Rect
	phase float64
}

func NewPortal(x, y float64) *Portal {
	return &Portal{rect: common.Rect{X: x, Y: y, W: 60, H: 100}}
}

func (p *Portal) Update(dt float64)          { p.phase += dt }
func (p *Portal) VisibleIn(d Dimension) bool { return true }
func (p *Portal) Bounds() common.Rect        { return p.rect }
func (p *Portal) Phase() float64             { return p.phase }

// PowerupType tags a timed modifier to the player's physics constants.
type PowerupType string

const (
	PowerupSpeed         PowerupType = "speed"
	PowerupJump          PowerupType = "jump"
	PowerupInvincibility PowerupType = "invincibility"
	PowerupGravity       PowerupType = "gravity"
)

// Powerup is a pickup granting a timed modifier. It may be restricted to a
// single dimension.
type Powerup struct {
	rect      common.Rect
	kind      PowerupType
	dim       Dimension
	phase     float64
	collected bool
}

func NewPowerup(x, y float64, kind PowerupType, dim Dimension) *Powerup {
	return &Powerup{
		rect: common.Rect{X: x, Y: y, W: 30, H: 30},
		kind: kind,
		dim:  dim,
	}
}

func (p *Powerup) Update(dt float64) {
	if p.collected {
		return
	}
	p.phase += dt
}

func (p *Powerup) VisibleIn(d Dimension) bool { return !p.collected && p.dim.ActiveIn(d) }
func (p *Powerup) Bounds() common.Rect        { return p.rect }
func (p *Powerup) Kind() PowerupType          { return p.kind }
func (p *Powerup) Collected() bool            { return p.collected }
