package sim

import "testing"

func TestEventsAny(t *testing.T) {
	tests := []struct {
		name string
		ev   Events
		want bool
	}{
		{"empty", Events{}, false},
		{"step", Events{Step: true}, true},
		{"collect", Events{Collect: true}, true},
		{"enemy death", Events{EnemyDeath: true}, true},
		{"player death", Events{PlayerDeath: true}, true},
		{"level complete", Events{LevelComplete: true}, true},
		{"powerup", Events{PowerupCollected: "speed"}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.ev.Any(); got != tt.want {
				t.Fatalf("Any() = %v, want %v", got, tt.want)
			}
		})
	}
}
