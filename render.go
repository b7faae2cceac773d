package main

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/colornames"

	"github.com/milk9111/dimshift/sim"
)

var dimBackgrounds = map[sim.Dimension]color.RGBA{
	sim.DimNormal:   {R: 16, G: 22, B: 44, A: 255},
	sim.DimMirror:   {R: 40, G: 16, B: 20, A: 255},
	sim.DimTimeSlow: {R: 14, G: 36, B: 22, A: 255},
	sim.DimQuantum:  {R: 34, G: 16, B: 42, A: 255},
}

// dimAccents tints dimension-gated platforms so the player can tell them
// from always-solid ones.
var dimAccents = map[sim.Dimension]color.RGBA{
	sim.DimNormal:   colornames.Steelblue,
	sim.DimMirror:   colornames.Firebrick,
	sim.DimTimeSlow: colornames.Forestgreen,
	sim.DimQuantum:  colornames.Mediumorchid,
}

var particlePalette = [4]color.RGBA{
	colornames.White,
	colornames.Lightyellow,
	colornames.Lightblue,
	colornames.Plum,
}

var powerupColors = map[string]color.RGBA{
	"speed":         colornames.Orange,
	"jump":          colornames.Deepskyblue,
	"invincibility": colornames.Orangered,
	"gravity":       colornames.Mediumpurple,
}

func entityColor(e sim.EntitySnapshot) color.RGBA {
	switch e.Kind {
	case "platform":
		if e.Dim == sim.DimAll {
			return colornames.Mediumseagreen
		}
		if c, ok := dimAccents[e.Dim]; ok {
			return c
		}
	case "enemy":
		return colornames.Indianred
	case "collectible":
		return colornames.Gold
	case "portal":
		return colornames.Orchid
	case "powerup":
		if c, ok := powerupColors[e.Tag]; ok {
			return c
		}
	}
	return colornames.White
}

func drawWorld(screen *ebiten.Image, snap sim.Snapshot, frames int) {
	if bg, ok := dimBackgrounds[snap.Dimension]; ok {
		screen.Fill(bg)
	} else {
		screen.Fill(colornames.Black)
	}

	camX, camY := snap.Camera.X, snap.Camera.Y
	for _, e := range snap.Entities {
		vector.DrawFilledRect(screen,
			float32(e.Rect.X-camX), float32(e.Rect.Y-camY),
			float32(e.Rect.W), float32(e.Rect.H),
			entityColor(e), false)
	}

	// flicker while invincible
	if !snap.PlayerInvincible || (frames/4)%2 == 0 {
		b := snap.Player.Rect
		vector.DrawFilledRect(screen,
			float32(b.X-camX), float32(b.Y-camY),
			float32(b.W), float32(b.H),
			colornames.Dodgerblue, false)
	}

	for _, p := range snap.Particles {
		c := particlePalette[p.Color%len(particlePalette)]
		vector.DrawFilledCircle(screen,
			float32(p.Pos.X-camX), float32(p.Pos.Y-camY),
			float32(p.Size), c, false)
	}
}
