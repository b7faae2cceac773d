package sim

import (
	"fmt"
	"sort"
)

// generate clears the registries and dispatches to the builder for the
// level index. Indices past the hand-authored set use the parametric
// random builder.
func (w *World) generate(level int) error {
	if level < 0 {
		return fmt.Errorf("level index %d out of range", level)
	}
	w.clear()
	switch level {
	case 0:
		w.buildTutorial()
	case 1:
		w.buildMirror()
	case 2:
		w.buildTimeWarp()
	case 3:
		if err := w.buildScripted(); err != nil {
			return err
		}
	default:
		w.buildRandom(level)
	}
	return w.validate()
}

// clear resets every registry, re-adds the always-present ground
// platform, and places the player at the spawn point.
func (w *World) clear() {
	w.platforms = w.platforms[:0]
	w.enemies = w.enemies[:0]
	w.collectibles = w.collectibles[:0]
	w.portals = w.portals[:0]
	w.powerups = w.powerups[:0]

	groundY := w.groundY()
	w.platforms = append(w.platforms,
		NewPlatform(0, groundY, w.cfg.World.Width, w.cfg.World.GroundHeight, DimAll))
	w.player = NewPlayer(w.cfg, 100, groundY-w.cfg.Player.Height)
}

func (w *World) groundY() float64 {
	return w.cfg.World.Height - w.cfg.World.GroundHeight
}

func (w *World) validate() error {
	if len(w.portals) == 0 {
		return fmt.Errorf("level %d has no portal", w.level)
	}
	if w.player == nil {
		return fmt.Errorf("level %d has no player spawn", w.level)
	}
	return nil
}

// addPlatform also returns the platform so builders can stack pickups on
// top of it.
func (w *World) addPlatform(x, y, pw, ph float64, dim Dimension) *Platform {
	p := NewPlatform(x, y, pw, ph, dim)
	w.platforms = append(w.platforms, p)
	return p
}

func (w *World) addEnemy(x, patrolLeft, patrolRight, speed float64) {
	w.enemies = append(w.enemies, NewEnemy(x, w.groundY()-40, patrolLeft, patrolRight, speed))
}

// addEnemyOn patrols an enemy across the top of a platform.
func (w *World) addEnemyOn(p *Platform, speed float64) {
	b := p.Bounds()
	w.enemies = append(w.enemies, NewEnemy(b.X+10, b.Y-40, b.X, b.Right(), speed))
}

func (w *World) addCollectibleOn(p *Platform, offset float64) {
	b := p.Bounds()
	w.collectibles = append(w.collectibles, NewCollectible(b.X+offset, b.Y-35))
}

func (w *World) addPowerupOn(p *Platform, kind PowerupType, dim Dimension) {
	b := p.Bounds()
	w.powerups = append(w.powerups, NewPowerup(b.CenterX()-15, b.Y-40, kind, dim))
}

func (w *World) addPortalOn(p *Platform) {
	b := p.Bounds()
	w.portals = append(w.portals, NewPortal(b.CenterX()-30, b.Y-100))
}

// buildTutorial is a gentle left-to-right climb with one enemy and a
// speed pickup.
func (w *World) buildTutorial() {
	steps := []struct{ x, y, w float64 }{
		{300, 820, 200},
		{600, 700, 200},
		{950, 600, 200},
		{1350, 700, 200},
		{1700, 580, 200},
		{2100, 640, 200},
		{2500, 520, 220},
	}
	var last *Platform
	for i, s := range steps {
		p := w.addPlatform(s.x, s.y, s.w, 30, DimAll)
		if i%2 == 0 {
			w.addCollectibleOn(p, s.w/2-10)
		}
		last = p
	}
	w.addEnemy(1400, 1300, 1900, 2)
	w.addPowerupOn(w.platforms[3], PowerupSpeed, DimAll)
	w.addPortalOn(last)
}

// buildMirror splits the level in two: the left half is solid in the
// normal dimension, the right half only in the mirror dimension, so the
// exit needs at least one switch.
func (w *World) buildMirror() {
	left := []struct{ x, y float64 }{
		{250, 800}, {550, 680}, {850, 560}, {1150, 460},
	}
	for _, s := range left {
		p := w.addPlatform(s.x, s.y, 200, 30, DimNormal)
		w.addCollectibleOn(p, 90)
	}
	right := []struct{ x, y float64 }{
		{1650, 460}, {1950, 560}, {2250, 480}, {2550, 400},
	}
	var last *Platform
	for _, s := range right {
		last = w.addPlatform(s.x, s.y, 200, 30, DimMirror)
		w.addCollectibleOn(last, 90)
	}
	// a bridge visible everywhere joins the halves
	bridge := w.addPlatform(1380, 520, 240, 30, DimAll)
	w.addPowerupOn(bridge, PowerupJump, DimAll)

	w.addEnemy(700, 500, 1200, 2)
	w.addEnemy(1900, 1700, 2400, 2.5)
	w.addPortalOn(last)
}

// buildTimeWarp alternates platforms between the time-slow and quantum
// dimensions; the time-slow half also slows the whole simulation while
// active.
func (w *World) buildTimeWarp() {
	steps := []struct {
		x, y float64
		dim  Dimension
	}{
		{300, 830, DimTimeSlow},
		{620, 720, DimQuantum},
		{940, 610, DimTimeSlow},
		{1260, 500, DimQuantum},
		{1580, 610, DimTimeSlow},
		{1900, 500, DimQuantum},
		{2220, 420, DimAll},
	}
	var last *Platform
	for _, s := range steps {
		last = w.addPlatform(s.x, s.y, 220, 30, s.dim)
	}
	w.addCollectibleOn(w.platforms[2], 100)
	w.addCollectibleOn(w.platforms[4], 100)
	w.addCollectibleOn(w.platforms[6], 100)
	w.addPowerupOn(w.platforms[5], PowerupGravity, DimTimeSlow)
	w.addPowerupOn(w.platforms[3], PowerupInvincibility, DimAll)

	w.addEnemy(800, 600, 1400, 3)
	w.addEnemy(1800, 1500, 2200, 3)
	w.addPortalOn(last)
}

// buildRandom is the parametric builder for levels past the hand-authored
// set. Layout scales with the level index and is reproducible from the
// world's seeded rng.
func (w *World) buildRandom(level int) {
	n := level
	groundY := w.groundY()

	platformCount := 5 + n
	plats := make([]*Platform, 0, platformCount)
	for i := 0; i < platformCount; i++ {
		pw := 150 + w.rng.Float64()*150
		x := 100 + w.rng.Float64()*(w.cfg.World.Width-300-pw)
		y := 250 + w.rng.Float64()*(groundY-400)
		dim := DimAll
		if w.rng.Float64() < 0.3 {
			dim = DimNormal + Dimension(w.rng.Intn(DimensionCount))
		}
		plats = append(plats, NewPlatform(x, y, pw, 30, dim))
	}
	// highest first so the portal lands on top of the level
	sort.Slice(plats, func(i, j int) bool { return plats[i].Bounds().Y < plats[j].Bounds().Y })
	w.platforms = append(w.platforms, plats...)

	for i := 0; i < n; i++ {
		x := 300 + w.rng.Float64()*(w.cfg.World.Width-600)
		span := 150 + w.rng.Float64()*150
		w.addEnemy(x, x-span, x+span, 2+w.rng.Float64()*float64(n)/4)
	}

	for i := 0; i < 3+n; i++ {
		p := plats[w.rng.Intn(len(plats))]
		w.addCollectibleOn(p, w.rng.Float64()*(p.Bounds().W-20))
	}

	kinds := []PowerupType{PowerupSpeed, PowerupJump, PowerupInvincibility, PowerupGravity}
	for i := 0; i < 2; i++ {
		p := plats[w.rng.Intn(len(plats))]
		dim := DimAll
		if w.rng.Float64() < 0.4 {
			dim = DimNormal + Dimension(w.rng.Intn(DimensionCount))
		}
		w.addPowerupOn(p, kinds[w.rng.Intn(len(kinds))], dim)
	}

	// the portal prefers the highest platform solid in every dimension
	portalAt := plats[0]
	for _, p := range plats {
		if p.Dim() == DimAll {
			portalAt = p
			break
		}
	}
	w.addPortalOn(portalAt)
}
