package sim

// Events collects the signals produced by one simulation frame. The world
// fills one per Update call; the audio and HUD layers consume it and the
// core never calls them directly.
type Events struct {
	Step          bool
	Collect       bool
	EnemyDeath    bool
	PlayerDeath   bool
	LevelComplete bool

	// PowerupCollected is the type tag of a powerup picked up this frame,
	// empty when none was.
	PowerupCollected string
}

// Any reports whether the frame produced at least one signal.
func (e Events) Any() bool {
	return e.Step || e.Collect || e.EnemyDeath || e.PlayerDeath ||
		e.LevelComplete || e.PowerupCollected != ""
}
