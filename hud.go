package main

import (
	"fmt"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	ebtext "github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/basicfont"

	"github.com/milk9111/dimshift/common"
	"github.com/milk9111/dimshift/config"
	"github.com/milk9111/dimshift/sim"
)

const notificationTTL = 3.0

type notification struct {
	text string
	ttl  float64
}

// HUD draws score, lives, level, and the expiring notification stack.
type HUD struct {
	cfg   config.Tuning
	face  ebtext.Face
	notes []notification
}

func NewHUD(cfg config.Tuning) *HUD {
	return &HUD{
		cfg:  cfg,
		face: ebtext.NewGoXFace(basicfont.Face7x13),
	}
}

func (h *HUD) Notify(msg string) {
	h.notes = append(h.notes, notification{text: msg, ttl: notificationTTL})
}

func (h *HUD) Update(dt float64) {
	kept := h.notes[:0]
	for _, n := range h.notes {
		n.ttl -= dt
		if n.ttl > 0 {
			kept = append(kept, n)
		}
	}
	h.notes = kept
}

func (h *HUD) Draw(screen *ebiten.Image, snap sim.Snapshot) {
	white := color.NRGBA{R: 0xdc, G: 0xdc, B: 0xdc, A: 0xff}
	h.drawText(screen, fmt.Sprintf("Score: %d", snap.Score), 16, 16, white)
	h.drawText(screen, fmt.Sprintf("Lives: %d", snap.Lives), 16, 34, white)
	h.drawText(screen, fmt.Sprintf("Level: %d", snap.Level), 16, 52, white)
	h.drawText(screen, "Dimension: "+snap.Dimension.String(), 16, 70, white)

	// newest notification at the top, fading out over its last second
	y := 100.0
	for i := len(h.notes) - 1; i >= 0; i-- {
		n := h.notes[i]
		alpha := common.Lerp(0, 255, math.Min(1, n.ttl))
		h.drawText(screen, n.text, 16, y, color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: uint8(alpha)})
		y += 18
	}
}

func (h *HUD) DrawGameOver(screen *ebiten.Image, snap sim.Snapshot) {
	cx := float64(h.cfg.Screen.Width) / 2
	cy := float64(h.cfg.Screen.Height) / 2
	red := color.NRGBA{R: 0xff, G: 0x50, B: 0x50, A: 0xff}
	white := color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	h.drawText(screen, "GAME OVER", cx-40, cy-20, red)
	h.drawText(screen, fmt.Sprintf("final score: %d", snap.Score), cx-50, cy, white)
	h.drawText(screen, "press R to restart", cx-60, cy+20, white)
}

func (h *HUD) drawText(screen *ebiten.Image, s string, x, y float64, clr color.Color) {
	op := &ebtext.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(clr)
	ebtext.Draw(screen, s, h.face, op)
}
