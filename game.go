package main

import (
	"fmt"
	"log"
	"path/filepath"
	"time"

	"github.com/ebitenui/ebitenui"
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/milk9111/dimshift/config"
	"github.com/milk9111/dimshift/sim"
)

type gameMode int

const (
	modePlaying gameMode = iota
	modePaused
	modeGameOver
)

type Game struct {
	cfg     config.Tuning
	cfgPath string
	watcher *config.Watcher

	world *sim.World
	seed  int64

	input   *Input
	audio   *Audio
	hud     *HUD
	pauseUI *ebitenui.UI

	mode        gameMode
	dimCooldown float64
	frames      int
	lastFrame   time.Time
	debug       bool
}

func NewGame(cfg config.Tuning, cfgPath string, seed int64, debug bool) (*Game, error) {
	world, _, err := sim.BuildWorld(cfg, 0, 0, seed)
	if world == nil {
		return nil, fmt.Errorf("build first level: %w", err)
	}

	g := &Game{
		cfg:       cfg,
		cfgPath:   cfgPath,
		world:     world,
		seed:      seed,
		input:     &Input{},
		audio:     NewAudio(),
		hud:       NewHUD(cfg),
		lastFrame: time.Now(),
		debug:     debug,
	}
	g.pauseUI = newPauseUI(g)

	if cfgPath != "" {
		if w, werr := config.NewWatcher(filepath.Dir(cfgPath)); werr == nil {
			g.watcher = w
		} else {
			log.Printf("config watch: %v", werr)
		}
	}
	return g, nil
}

func (g *Game) Close() {
	if g.watcher != nil {
		_ = g.watcher.Close()
	}
}

func (g *Game) Update() error {
	g.frames++
	now := time.Now()
	dt := now.Sub(g.lastFrame).Seconds()
	g.lastFrame = now
	// a stall would otherwise tunnel the player through geometry
	if dt > 0.1 {
		dt = 0.1
	}

	g.pollConfig()
	g.input.Update()
	g.hud.Update(dt)

	switch g.mode {
	case modePaused:
		g.pauseUI.Update()
		if g.input.PausePressed {
			g.mode = modePlaying
		}
		return nil
	case modeGameOver:
		if g.input.RestartPressed {
			g.restart()
		}
		return nil
	}

	if g.input.PausePressed {
		g.mode = modePaused
		return nil
	}

	p := g.world.Player()
	switch {
	case g.input.MoveX < 0:
		p.MoveLeft()
	case g.input.MoveX > 0:
		p.MoveRight()
	default:
		p.StopHorizontal()
	}
	if g.input.JumpPressed && p.Jump() {
		g.audio.PlayJump()
	}

	if g.dimCooldown > 0 {
		g.dimCooldown -= dt
	}
	if g.input.SwitchPressed && g.dimCooldown <= 0 {
		g.dimCooldown = g.cfg.Dimension.SwitchCooldown
		d := g.world.SwitchDimension()
		g.hud.Notify("dimension: " + d.String())
		g.audio.PlaySwitch()
	}

	if g.input.DebugToggled {
		g.debug = !g.debug
	}
	if g.debug && g.input.CopyPressed {
		g.copyDiagnostics()
	}

	ev := g.world.Update(dt * g.cfg.TimeFactor())
	g.audio.Play(ev)

	if ev.PowerupCollected != "" {
		g.hud.Notify("powerup: " + ev.PowerupCollected)
	}
	switch {
	case ev.LevelComplete:
		g.advanceLevel()
	case ev.PlayerDeath && g.world.Player().Dead():
		g.mode = modeGameOver
	case ev.PlayerDeath:
		g.rebuildLevel()
	}
	return nil
}

// advanceLevel swaps in the next level's world between frames, carrying
// lives and score forward.
func (g *Game) advanceLevel() {
	level := g.world.Level()
	lives := g.world.Player().Lives()
	score := g.world.Score()

	next, built, err := sim.BuildWorld(g.cfg, level+1, level, g.seed)
	if next == nil {
		log.Printf("advance to level %d: %v", level+1, err)
		return
	}
	if err != nil {
		g.hud.Notify(fmt.Sprintf("level %d failed to build, running level %d", level+1, built))
	} else {
		g.hud.Notify(fmt.Sprintf("level %d", built))
	}
	next.CarryOver(lives, score)
	g.world = next
}

// rebuildLevel reconstructs the current level after a death that left
// lives remaining.
func (g *Game) rebuildLevel() {
	level := g.world.Level()
	lives := g.world.Player().Lives()
	score := g.world.Score()

	next, _, err := sim.BuildWorld(g.cfg, level, level, g.seed)
	if next == nil {
		log.Printf("rebuild level %d: %v", level, err)
		return
	}
	next.CarryOver(lives, score)
	g.world = next
}

func (g *Game) restart() {
	next, _, err := sim.BuildWorld(g.cfg, 0, 0, g.seed)
	if next == nil {
		log.Printf("restart: %v", err)
		return
	}
	g.world = next
	g.mode = modePlaying
	g.hud.Notify("level 0")
}

// pollConfig drains the tuning watcher without blocking the frame.
// Reloaded values apply to the frame loop immediately and to the world
// on its next rebuild.
func (g *Game) pollConfig() {
	if g.watcher == nil {
		return
	}
	for {
		select {
		case path, ok := <-g.watcher.Events:
			if !ok {
				g.watcher = nil
				return
			}
			cfg, err := config.Load(g.cfgPath)
			if err != nil {
				log.Printf("reload %s: %v", path, err)
				continue
			}
			g.cfg = cfg
			g.hud.Notify("tuning reloaded")
		case err, ok := <-g.watcher.Errors:
			if !ok {
				g.watcher = nil
				return
			}
			log.Printf("config watch: %v", err)
		default:
			return
		}
	}
}

func (g *Game) Draw(screen *ebiten.Image) {
	snap := g.world.Snapshot()
	drawWorld(screen, snap, g.frames)
	g.hud.Draw(screen, snap)
	if g.debug {
		g.drawDebug(screen, snap)
	}
	switch g.mode {
	case modePaused:
		g.pauseUI.Draw(screen)
	case modeGameOver:
		g.hud.DrawGameOver(screen, snap)
	}
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.cfg.Screen.Width, g.cfg.Screen.Height
}
