package sim

import "testing"

func TestBuildersProduceCompleteLevels(t *testing.T) {
	cfg := testTuning(t)
	for level := 0; level <= 6; level++ {
		w, err := NewWorld(cfg, level, 42)
		if err != nil {
			t.Fatalf("level %d: %v", level, err)
		}
		if len(w.portals) == 0 {
			t.Fatalf("level %d has no portal", level)
		}
		if len(w.collectibles) == 0 {
			t.Fatalf("level %d has no collectibles", level)
		}

		ground := w.platforms[0].Bounds()
		if ground.X != 0 || ground.W != cfg.World.Width {
			t.Fatalf("level %d ground = %+v, want full world width", level, ground)
		}
		if w.player == nil {
			t.Fatalf("level %d has no player", level)
		}
		for _, p := range w.platforms {
			b := p.Bounds()
			if b.W <= 0 || b.H <= 0 {
				t.Fatalf("level %d has degenerate platform %+v", level, b)
			}
		}
	}
}

func TestScriptedLevelBuilds(t *testing.T) {
	cfg := testTuning(t)
	w, err := NewWorld(cfg, 3, 1)
	if err != nil {
		t.Fatalf("scripted level: %v", err)
	}
	// ground plus the eight scripted platforms
	if len(w.platforms) != 9 {
		t.Fatalf("platforms = %d, want 9", len(w.platforms))
	}
	if len(w.enemies) != 2 {
		t.Fatalf("enemies = %d, want 2", len(w.enemies))
	}
	if len(w.powerups) != 2 {
		t.Fatalf("powerups = %d, want 2", len(w.powerups))
	}
	if len(w.portals) != 1 {
		t.Fatalf("portals = %d, want 1", len(w.portals))
	}
}

func TestRandomBuilderIsReproducible(t *testing.T) {
	cfg := testTuning(t)
	a, err := NewWorld(cfg, 5, 42)
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	b, err := NewWorld(cfg, 5, 42)
	if err != nil {
		t.Fatalf("rebuild: %v", err)
	}

	if len(a.platforms) != len(b.platforms) {
		t.Fatalf("platform counts differ: %d vs %d", len(a.platforms), len(b.platforms))
	}
	for i := range a.platforms {
		if a.platforms[i].Bounds() != b.platforms[i].Bounds() {
			t.Fatalf("platform %d differs across rebuilds with the same seed", i)
		}
	}
	if len(a.enemies) != 5 {
		t.Fatalf("enemies = %d for level 5, want 5", len(a.enemies))
	}
	if len(a.collectibles) != 8 {
		t.Fatalf("collectibles = %d for level 5, want 8", len(a.collectibles))
	}
}

func TestBuildWorldFallsBackToPreviousLevel(t *testing.T) {
	cfg := testTuning(t)

	w, built, err := BuildWorld(cfg, -1, 2, 1)
	if err == nil {
		t.Fatal("expected the original build error to be reported")
	}
	if w == nil {
		t.Fatal("no world returned despite a valid fallback")
	}
	if built != 2 {
		t.Fatalf("built level %d, want fallback to previous level 2", built)
	}
}

func TestBuildWorldFallsBackToLevelZero(t *testing.T) {
	cfg := testTuning(t)

	w, built, err := BuildWorld(cfg, -1, -1, 1)
	if err == nil {
		t.Fatal("expected the original build error to be reported")
	}
	if w == nil {
		t.Fatal("no world returned despite a valid fallback")
	}
	if built != 0 {
		t.Fatalf("built level %d, want final fallback to 0", built)
	}
}
