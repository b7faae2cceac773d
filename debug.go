package main

import (
	"fmt"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"golang.design/x/clipboard"

	"github.com/milk9111/dimshift/sim"
)

var clipboardReady bool

func initClipboard() {
	if err := clipboard.Init(); err != nil {
		log.Printf("clipboard unavailable: %v", err)
		return
	}
	clipboardReady = true
}

// copyDiagnostics puts a one-line state dump on the system clipboard so a
// repro (level, seed, position) can be pasted into a bug report.
func (g *Game) copyDiagnostics() {
	if !clipboardReady {
		g.hud.Notify("clipboard unavailable")
		return
	}
	p := g.world.Player()
	dump := fmt.Sprintf("level=%d seed=%d dimension=%s pos=(%.1f, %.1f) vel=(%.1f, %.1f) state=%s lives=%d score=%d",
		g.world.Level(), g.world.Seed(), g.world.Dimension(),
		p.Position().X, p.Position().Y, p.Velocity().X, p.Velocity().Y,
		p.State(), p.Lives(), g.world.Score())
	clipboard.Write(clipboard.FmtText, []byte(dump))
	g.hud.Notify("diagnostics copied")
}

func (g *Game) drawDebug(screen *ebiten.Image, snap sim.Snapshot) {
	p := g.world.Player()
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf(
		"FPS %.1f  state %s  pos (%.0f, %.0f)  jumps %d/%d  particles %d",
		ebiten.ActualFPS(), snap.PlayerState,
		p.Position().X, p.Position().Y,
		p.JumpCount(), p.JumpLimit(), len(snap.Particles)), 0, 0)
}
