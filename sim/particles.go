package sim

import (
	"math"
	"math/rand"

	"github.com/jakecoffman/cp"
)

// Particle is one ephemeral visual effect record. Color is the
// per-dimension color class index 0..3.
type Particle struct {
	Pos   cp.Vector
	Vel   cp.Vector
	Size  float64
	Life  float64
	Color int
}

// ParticleArena is a fixed-capacity pool of particles. The backing array
// is allocated once; entries [0, active) are live. Spawning at capacity
// drops the particle instead of growing.
type ParticleArena struct {
	buf    []Particle
	active int
}

func NewParticleArena(capacity int) *ParticleArena {
	if capacity < 0 {
		capacity = 0
	}
	return &ParticleArena{buf: make([]Particle, capacity)}
}

// Spawn adds a particle, reporting false when the arena is full.
func (a *ParticleArena) Spawn(p Particle) bool {
	if a.active == len(a.buf) {
		return false
	}
	a.buf[a.active] = p
	a.active++
	return true
}

// Advance integrates and ages every live particle. Entries are
// independent; this is a single tight pass over the live prefix.
func (a *ParticleArena) Advance(dt float64) {
	live := a.buf[:a.active]
	for i := range live {
		live[i].Pos = live[i].Pos.Add(live[i].Vel.Mult(dt))
		live[i].Life -= dt
	}
}

// Compact drops expired particles, moving survivors to [0, active) while
// keeping their relative order. One stable partition pass, no allocation.
func (a *ParticleArena) Compact() {
	live := a.buf[:a.active]
	n := 0
	for i := range live {
		if live[i].Life <= 0 {
			continue
		}
		if n != i {
			live[n] = live[i]
		}
		n++
	}
	a.active = n
}

func (a *ParticleArena) Active() int   { return a.active }
func (a *ParticleArena) Capacity() int { return len(a.buf) }

// Live returns the live prefix. Valid until the next Advance/Compact;
// callers copy what they keep.
func (a *ParticleArena) Live() []Particle {
	return a.buf[:a.active]
}

// spawnBurst scatters n particles radially from at. Overflow is dropped.
func spawnBurst(a *ParticleArena, rng *rand.Rand, at cp.Vector, n, color int) {
	for i := 0; i < n; i++ {
		angle := rng.Float64() * 2 * math.Pi
		speed := 30 + rng.Float64()*90
		a.Spawn(Particle{
			Pos:   at,
			Vel:   cp.Vector{X: math.Cos(angle) * speed, Y: math.Sin(angle) * speed},
			Size:  2 + rng.Float64()*3,
			Life:  0.4 + rng.Float64()*0.6,
			Color: color,
		})
	}
}

// spawnFootstep kicks up a little dust behind the feet.
func spawnFootstep(a *ParticleArena, rng *rand.Rand, at cp.Vector, color int) {
	for i := 0; i < 3; i++ {
		a.Spawn(Particle{
			Pos:   cp.Vector{X: at.X + rng.Float64()*8 - 4, Y: at.Y},
			Vel:   cp.Vector{X: rng.Float64()*20 - 10, Y: -20 - rng.Float64()*20},
			Size:  1 + rng.Float64()*2,
			Life:  0.2 + rng.Float64()*0.3,
			Color: color,
		})
	}
}

// spawnRing marks a dimension switch with an expanding ring around the
// player.
func spawnRing(a *ParticleArena, at cp.Vector, color int) {
	const count = 24
	for i := 0; i < count; i++ {
		angle := float64(i) / count * 2 * math.Pi
		a.Spawn(Particle{
			Pos:   at,
			Vel:   cp.Vector{X: math.Cos(angle) * 120, Y: math.Sin(angle) * 120},
			Size:  3,
			Life:  0.5,
			Color: color,
		})
	}
}
