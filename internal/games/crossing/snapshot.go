package crossing

// GameStateType represents the current game state.
type GameStateType string

const (
	StatePlaying  GameStateType = "playing"
	StatePaused   GameStateType = "paused"
	StateGameOver GameStateType = "game_over"
)

// EnemySnapshot captures one enemy's position and speed.
type EnemySnapshot struct {
	X, Y  float64
	Speed float64
}

// Snapshot captures the complete game state for determinism testing.
type Snapshot struct {
	Tick    uint64
	PlayerX float64
	PlayerY float64
	Enemies []EnemySnapshot
	GemX    float64
	GemY    float64
	Score   int
	Gems    int
	Lives   int
	Replay  int
	State   GameStateType
}

// Snapshot returns the current game snapshot for determinism verification.
func (g *Game) Snapshot() Snapshot {
	state := StatePlaying
	switch {
	case g.gameOver:
		state = StateGameOver
	case g.paused:
		state = StatePaused
	}

	enemies := make([]EnemySnapshot, len(g.enemies))
	for i, e := range g.enemies {
		enemies[i] = EnemySnapshot{X: e.X, Y: e.Y, Speed: e.Speed}
	}

	return Snapshot{
		Tick:    g.tick,
		PlayerX: g.player.X,
		PlayerY: g.player.Y,
		Enemies: enemies,
		GemX:    g.gem.X,
		GemY:    g.gem.Y,
		Score:   g.score,
		Gems:    g.gems,
		Lives:   len(g.hearts),
		Replay:  g.replayIndex,
		State:   state,
	}
}
