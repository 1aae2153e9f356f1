// Package crossing implements Bug Crossing, a Frogger-style arcade game:
// cross three lanes of bug traffic to reach the water, grab the gem on
// the way, lose a heart per collision. Pure game logic; the platform
// handles input mapping, timing, and display.
package crossing

import (
	"math/rand"

	"github.com/avoronov/bugcross/internal/assets"
	"github.com/avoronov/bugcross/internal/config"
	"github.com/avoronov/bugcross/internal/core"
	"github.com/avoronov/bugcross/internal/registry"
)

// Game implements the crossing game.
type Game struct {
	cfg        config.CrossingConfig
	difficulty *config.DifficultyManager
	atlas      *assets.Atlas
	rng        *rand.Rand
	tick       uint64
	tickRate   int

	player  Player
	enemies []Enemy
	hearts  []Heart
	gem     Gem

	score       int
	gems        int
	replayIndex int
	history     []RunRecord

	gameOver bool
	paused   bool

	screenW int
	screenH int
}

// GameID is the registry identifier for this game.
const GameID = "crossing"

// Package-level variables set by the CLI before the game starts.
var (
	configPath       string
	difficultyPreset string
	selectedAvatar   string
)

// SetConfigPath sets the config file path.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset.
func SetDifficultyPreset(preset string) {
	difficultyPreset = preset
}

// SetAvatar selects the player sprite by atlas ID. Unknown IDs fall
// back to the default avatar on the next Reset.
func SetAvatar(id string) {
	selectedAvatar = id
}

// Avatar returns the currently selected avatar ID.
func Avatar() string {
	return selectedAvatar
}

// New creates a new crossing game.
func New() *Game {
	atlas, err := assets.Load()
	if err != nil {
		// The CLI validates the embedded manifest at startup and aborts
		// on failure, so this path is unreachable in practice. Render
		// falls back to placeholder glyphs if it ever happens.
		atlas = nil
	}
	return &Game{atlas: atlas}
}

func init() {
	registry.Register(GameID, func() registry.Game {
		return New()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return GameID
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Bug Crossing"
}

// Reset initializes/restarts the game.
func (g *Game) Reset(rt core.RuntimeConfig) {
	cfg, err := config.LoadCrossing(configPath)
	if err != nil {
		cfg = config.DefaultCrossingConfig()
	}
	if difficultyPreset != "" {
		config.ApplyCrossingPreset(&cfg, config.DifficultyPreset(difficultyPreset))
	}
	// The heart bank is three wide; configs cannot exceed it.
	cfg.Gameplay.Lives = core.Clamp(cfg.Gameplay.Lives, 1, 3)
	g.cfg = cfg
	g.difficulty = config.NewDifficultyManager(cfg.Difficulty)

	g.rng = rand.New(rand.NewSource(rt.Seed))
	g.tick = 0
	g.tickRate = rt.TickRate
	if g.tickRate <= 0 {
		g.tickRate = 60
	}
	g.screenW = rt.ScreenW
	g.screenH = rt.ScreenH

	g.score = 0
	g.gems = 0
	g.replayIndex = 0
	g.history = nil
	g.gameOver = false
	g.paused = false

	g.spawnPlayer()
	g.spawnEnemies()
	g.refillHearts()
	g.gem = Gem{W: float64(cfg.Gem.Width), H: float64(cfg.Gem.Height)}
	g.gem.relocate(g.rng, g.player.Box())
}

// spawnPlayer places the player at the spawn point with the selected avatar.
func (g *Game) spawnPlayer() {
	sprite := selectedAvatar
	if g.atlas == nil || !g.atlas.IsPlayer(sprite) {
		sprite = "char-boy"
		if g.atlas != nil {
			sprite = g.atlas.DefaultPlayer().ID
		}
	}
	g.player = Player{
		X:      float64(g.cfg.Player.SpawnX),
		Y:      float64(g.cfg.Player.SpawnY),
		W:      float64(g.cfg.Player.Width),
		H:      float64(g.cfg.Player.Height),
		Sprite: sprite,
	}
}

// spawnEnemies creates the configured number of enemies on random lanes.
func (g *Game) spawnEnemies() {
	g.enemies = make([]Enemy, g.cfg.Enemies.Count)
	for i := range g.enemies {
		g.enemies[i] = Enemy{
			W: float64(g.cfg.Enemies.Width),
			H: float64(g.cfg.Enemies.Height),
		}
		g.enemies[i].respawn(g.rng, g.cfg.Enemies.MinSpeed, g.cfg.Enemies.MaxSpeed)
	}
}

// refillHearts restores the heart collection to the full bank.
func (g *Game) refillHearts() {
	g.hearts = make([]Heart, g.cfg.Gameplay.Lives)
	for i := range g.hearts {
		g.hearts[i] = Heart{Index: i}
	}
}

// resetPlayerPosition returns the player to the spawn point.
func (g *Game) resetPlayerPosition() {
	g.player.X = float64(g.cfg.Player.SpawnX)
	g.player.Y = float64(g.cfg.Player.SpawnY)
}

// Step advances the game by one tick.
func (g *Game) Step(input core.InputFrame) core.StepResult {
	g.tick++

	if g.gameOver {
		// Movement is disabled; only the replay confirmation is live.
		if input.Has(core.ActionConfirm) {
			g.replaySetup()
		}
		return core.StepResult{State: g.State()}
	}

	if input.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	g.handleMovement(input)
	g.update(1.0 / float64(g.tickRate))

	return core.StepResult{State: g.State()}
}

// handleMovement applies one discrete tile step per pressed direction,
// clamped to the board. Stepping above the top stone row is a crossing:
// it scores and returns the player to spawn.
func (g *Game) handleMovement(input core.InputFrame) {
	stepX := float64(g.cfg.Player.StepX)
	stepY := float64(g.cfg.Player.StepY)
	maxX := float64((g.cfg.Board.Columns - 1) * g.cfg.Player.StepX)
	spawnY := float64(g.cfg.Player.SpawnY)

	switch {
	case input.Has(core.ActionUp):
		g.player.Y -= stepY
		if g.player.Y < 0 {
			g.score += g.cfg.Gameplay.CrossingValue
			g.resetPlayerPosition()
		}
	case input.Has(core.ActionDown):
		g.player.Y = core.ClampF(g.player.Y+stepY, 0, spawnY)
	case input.Has(core.ActionLeft):
		g.player.X = core.ClampF(g.player.X-stepX, 0, maxX)
	case input.Has(core.ActionRight):
		g.player.X = core.ClampF(g.player.X+stepX, 0, maxX)
	}
}

// update advances the simulation by dt seconds: enemy motion first,
// then collision detection, then the respawn check, then gem pickup.
func (g *Game) update(dt float64) {
	speedFactor := g.difficulty.Speed(1.0, g.score, int(g.tick))
	for i := range g.enemies {
		g.enemies[i].Advance(dt * speedFactor)
	}

	g.detectCollision()

	for i := range g.enemies {
		if g.enemies[i].X > g.cfg.Enemies.RespawnEdge {
			g.enemies[i].respawn(g.rng, g.cfg.Enemies.MinSpeed, g.cfg.Enemies.MaxSpeed)
		}
	}

	g.checkGemPickup()
}

// detectCollision runs the AABB test between the player and each enemy.
// First overlap wins: at most one heart is lost per tick even when
// several enemies overlap the player simultaneously.
func (g *Game) detectCollision() {
	if g.gameOver {
		return
	}
	playerBox := g.player.Box()
	for i := range g.enemies {
		if g.enemies[i].Box().Intersects(playerBox) {
			g.resetPlayerPosition()
			g.hearts = g.hearts[:len(g.hearts)-1]
			if len(g.hearts) == 0 {
				g.gameOver = true
			}
			return
		}
	}
}

// checkGemPickup collects the gem when the player overlaps it.
func (g *Game) checkGemPickup() {
	if g.gameOver {
		return
	}
	if g.player.Box().Intersects(g.gem.Box()) {
		g.gems++
		g.score += g.cfg.Gameplay.GemValue
		g.gem.relocate(g.rng, g.player.Box())
	}
}

// replaySetup handles the "play again" confirmation: it records the
// finished run, refills hearts, relocates enemies and the gem, resets
// the counters and re-enables play. replayIndex only ever increments.
func (g *Game) replaySetup() {
	g.history = append(g.history, RunRecord{
		Replay: g.replayIndex,
		Gems:   g.gems,
		Score:  g.score,
	})

	g.refillHearts()
	for i := range g.enemies {
		g.enemies[i].respawn(g.rng, g.cfg.Enemies.MinSpeed, g.cfg.Enemies.MaxSpeed)
	}
	g.resetPlayerPosition()
	g.gem.relocate(g.rng, g.player.Box())

	g.gems = 0
	g.score = 0
	g.gameOver = false
	g.replayIndex++
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score,
		Gems:     g.gems,
		Lives:    len(g.hearts),
		Replay:   g.replayIndex,
		GameOver: g.gameOver,
		Paused:   g.paused,
	}
}
