package main

import (
	"flag"
	"log"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/milk9111/dimshift/config"
)

func main() {
	cfgPath := flag.String("config", "", "path to a tuning.yaml overriding the embedded defaults")
	seed := flag.Int64("seed", 0, "level generation seed (0 picks one from the clock)")
	difficulty := flag.Int("difficulty", -1, "difficulty 0..2, overriding the tuning file")
	debug := flag.Bool("debug", false, "enable the debug overlay and clipboard export")
	flag.Parse()

	cfg, err := config.Load(*cfgPath)
	if err != nil {
		log.Fatal(err)
	}
	if *difficulty >= 0 {
		cfg.Difficulty.Level = *difficulty
	}
	if *seed == 0 {
		*seed = time.Now().UnixNano()
	}

	if *debug {
		initClipboard()
	}

	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowSize(cfg.Screen.Width, cfg.Screen.Height)
	ebiten.SetWindowTitle("dimshift")

	game, err := NewGame(cfg, *cfgPath, *seed, *debug)
	if err != nil {
		log.Fatal(err)
	}
	defer game.Close()

	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}
