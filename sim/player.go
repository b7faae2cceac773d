package sim

import (
	"github.com/jakecoffman/cp"

	"github.com/milk9111/dimshift/common"
	"github.com/milk9111/dimshift/config"
)

// Player is the single controllable actor. Its idle/running/jumping/falling
// state is derived each frame from the on-ground flag and vertical velocity
// rather than stored; only death is a real stored state.
type Player struct {
	cfg config.Tuning

	pos cp.Vector
	vel cp.Vector
	w   float64
	h   float64

	spawn    cp.Vector
	lastSafe cp.Vector

	moveDir   float64
	onGround  bool
	jumpCount int
	jumpLimit int

	lives int
	dead  bool

	// remaining seconds per active powerup type
	powerups map[PowerupType]float64

	hitInvincibility float64
	portalCooldown   float64
	stepDistance     float64
}

func NewPlayer(cfg config.Tuning, x, y float64) *Player {
	at := cp.Vector{X: x, Y: y}
	return &Player{
		cfg:       cfg,
		pos:       at,
		spawn:     at,
		lastSafe:  at,
		w:         cfg.Player.Width,
		h:         cfg.Player.Height,
		jumpLimit: cfg.Player.MaxJumps,
		lives:     cfg.Player.Lives,
		powerups:  map[PowerupType]float64{},
	}
}

func (p *Player) MoveLeft()       { p.moveDir = -1 }
func (p *Player) MoveRight()      { p.moveDir = 1 }
func (p *Player) StopHorizontal() { p.moveDir = 0 }

// Jump starts a jump when the player has jumps left in the chain. The
// second and later jumps are weaker than the first. Returns whether the
// jump happened.
func (p *Player) Jump() bool {
	if p.dead || p.jumpCount >= p.jumpLimit {
		return false
	}
	strength := p.cfg.Player.JumpStrength * p.multiplier(PowerupJump)
	if p.jumpCount >= 1 {
		strength *= p.cfg.Player.RepeatJumpScale
	}
	p.vel.Y = strength
	p.jumpCount++
	p.onGround = false
	return true
}

// integrate applies horizontal input and gravity, then moves the player.
// Collision resolution runs afterwards and corrects the result.
func (p *Player) integrate(dt float64) {
	frames := dt * referenceFPS
	p.vel.X = p.moveDir * p.cfg.Player.Speed * p.multiplier(PowerupSpeed)

	gravityMul := p.multiplier(PowerupGravity)
	p.vel.Y += p.cfg.Physics.Gravity * gravityMul * frames
	if maxFall := p.cfg.Physics.MaxFallSpeed * gravityMul; p.vel.Y > maxFall {
		p.vel.Y = maxFall
	}

	p.pos = p.pos.Add(p.vel.Mult(frames))
}

// tickTimers advances the powerup, post-hit invincibility, and portal
// cooldown countdowns.
func (p *Player) tickTimers(dt float64) {
	for kind, remaining := range p.powerups {
		remaining -= dt
		if remaining <= 0 {
			delete(p.powerups, kind)
		} else {
			p.powerups[kind] = remaining
		}
	}
	p.jumpLimit = p.cfg.Player.MaxJumps
	if p.PowerupActive(PowerupJump) {
		p.jumpLimit++
	}

	if p.hitInvincibility > 0 {
		p.hitInvincibility -= dt
	}
	if p.portalCooldown > 0 {
		p.portalCooldown -= dt
	}
}

// AddPowerup activates kind, extending any remaining duration rather than
// overwriting it.
func (p *Player) AddPowerup(kind PowerupType, duration float64) {
	p.powerups[kind] += duration
	if kind == PowerupJump {
		p.jumpLimit = p.cfg.Player.MaxJumps + 1
	}
}

func (p *Player) PowerupActive(kind PowerupType) bool {
	return p.powerups[kind] > 0
}

// PowerupRemaining returns the seconds left on kind, 0 when inactive.
func (p *Player) PowerupRemaining(kind PowerupType) float64 {
	return p.powerups[kind]
}

func (p *Player) multiplier(kind PowerupType) float64 {
	if !p.PowerupActive(kind) {
		return 1
	}
	t, ok := p.cfg.Powerups[string(kind)]
	if !ok {
		return 1
	}
	return t.Multiplier
}

// Invincible is true during the post-hit grace window or while the
// invincibility powerup is active. The two timers are independent.
func (p *Player) Invincible() bool {
	return p.hitInvincibility > 0 || p.PowerupActive(PowerupInvincibility)
}

// State names the derived movement state.
func (p *Player) State() string {
	switch {
	case p.dead:
		return "dead"
	case !p.onGround && p.vel.Y < 0:
		return "jumping"
	case !p.onGround:
		return "falling"
	case p.moveDir != 0:
		return "running"
	}
	return "idle"
}

func (p *Player) Bounds() common.Rect {
	return common.Rect{X: p.pos.X, Y: p.pos.Y, W: p.w, H: p.h}
}

func (p *Player) Center() cp.Vector {
	return cp.Vector{X: p.pos.X + p.w/2, Y: p.pos.Y + p.h/2}
}

func (p *Player) Position() cp.Vector { return p.pos }
func (p *Player) Velocity() cp.Vector { return p.vel }
func (p *Player) OnGround() bool      { return p.onGround }
func (p *Player) JumpCount() int      { return p.jumpCount }
func (p *Player) JumpLimit() int      { return p.jumpLimit }
func (p *Player) Lives() int          { return p.lives }
func (p *Player) Dead() bool          { return p.dead }

// hurt takes one life. With lives remaining the player snaps back to the
// spawn point and gets a post-hit invincibility window; otherwise death is
// terminal.
func (p *Player) hurt() {
	p.lives--
	if p.lives <= 0 {
		p.lives = 0
		p.dead = true
		return
	}
	p.resetToSpawn()
	p.hitInvincibility = p.cfg.Player.HitInvincibility
}

func (p *Player) resetToSpawn() {
	p.pos = p.spawn
	p.lastSafe = p.spawn
	p.vel = cp.Vector{}
	p.jumpCount = 0
	p.onGround = false
	p.stepDistance = 0
}
