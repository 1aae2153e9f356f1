package crossing

import (
	"math"
	"reflect"
	"testing"

	"github.com/avoronov/bugcross/internal/core"
)

func newTestGame(t *testing.T, seed int64) *Game {
	t.Helper()
	g := New()
	g.Reset(core.RuntimeConfig{
		Seed:     seed,
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
	})
	return g
}

// overlapEnemy parks an enemy directly on the player.
func overlapEnemy(g *Game) {
	g.enemies[0].X = g.player.X - 3
	g.enemies[0].Y = g.player.Y - 1
}

func TestEnemyMotionLinearity(t *testing.T) {
	// Advancing repeatedly by small dt must equal one advance by the
	// summed dt.
	stepped := Enemy{X: 10, Speed: 237.5}
	summed := Enemy{X: 10, Speed: 237.5}

	const n = 1000
	const dt = 1.0 / 60.0
	for i := 0; i < n; i++ {
		stepped.Advance(dt)
	}
	summed.Advance(n * dt)

	if math.Abs(stepped.X-summed.X) > 1e-6 {
		t.Errorf("stepped X = %f, summed X = %f", stepped.X, summed.X)
	}
}

func TestCollisionScenario(t *testing.T) {
	// Player at (203,391) 101x171, enemy at (200,390) 101x171:
	// overlap, player resets to spawn, hearts 3 -> 2.
	g := newTestGame(t, 1)

	g.player.X, g.player.Y = 203, 391
	g.enemies[0].X, g.enemies[0].Y = 200, 390
	for i := 1; i < len(g.enemies); i++ {
		g.enemies[i].Y = -1000 // out of the way
	}

	g.detectCollision()

	if g.player.X != 203 || g.player.Y != 391 {
		t.Errorf("player at (%f, %f), expected spawn (203, 391)", g.player.X, g.player.Y)
	}
	if len(g.hearts) != 2 {
		t.Errorf("hearts = %d, expected 2", len(g.hearts))
	}
	if g.gameOver {
		t.Error("one collision should not end the game")
	}
}

func TestHeartCountMonotone(t *testing.T) {
	g := newTestGame(t, 2)

	want := []int{2, 1, 0}
	for _, expected := range want {
		overlapEnemy(g)
		g.detectCollision()
		if len(g.hearts) != expected {
			t.Fatalf("hearts = %d, expected %d", len(g.hearts), expected)
		}
		if g.State().Lives != expected {
			t.Fatalf("State().Lives = %d, expected %d", g.State().Lives, expected)
		}
	}

	if !g.gameOver {
		t.Error("game should be over at 0 hearts")
	}
}

func TestGameOverIdempotent(t *testing.T) {
	g := newTestGame(t, 3)

	for i := 0; i < 3; i++ {
		overlapEnemy(g)
		g.detectCollision()
	}
	if !g.gameOver {
		t.Fatal("expected game over after three collisions")
	}

	// Further collisions while in GameOver remove nothing and never
	// drive the heart count negative.
	for i := 0; i < 5; i++ {
		overlapEnemy(g)
		g.detectCollision()
	}
	if len(g.hearts) != 0 {
		t.Errorf("hearts = %d, expected 0", len(g.hearts))
	}
}

func TestFirstOverlapWins(t *testing.T) {
	// Two enemies on the player in the same tick cost one heart, not two.
	g := newTestGame(t, 4)

	g.enemies[0].X, g.enemies[0].Y = g.player.X, g.player.Y
	g.enemies[1].X, g.enemies[1].Y = g.player.X-1, g.player.Y-1

	g.detectCollision()

	if len(g.hearts) != 2 {
		t.Errorf("hearts = %d, expected 2 after simultaneous overlap", len(g.hearts))
	}
}

func TestMovementDisabledWhileGameOver(t *testing.T) {
	g := newTestGame(t, 5)
	for i := 0; i < 3; i++ {
		overlapEnemy(g)
		g.detectCollision()
	}

	x, y := g.player.X, g.player.Y
	input := core.NewInputFrame()
	input.Set(core.ActionLeft)
	g.Step(input)

	if g.player.X != x || g.player.Y != y {
		t.Error("movement input should be ignored while game over")
	}
}

func TestReplaySetup(t *testing.T) {
	g := newTestGame(t, 6)

	// Bank some score, then lose all hearts.
	g.score = 120
	g.gems = 4
	for i := 0; i < 3; i++ {
		overlapEnemy(g)
		g.detectCollision()
	}
	if !g.gameOver {
		t.Fatal("expected game over")
	}

	input := core.NewInputFrame()
	input.Set(core.ActionConfirm)
	g.Step(input)

	if len(g.hearts) != 3 {
		t.Errorf("hearts = %d, expected refill to 3", len(g.hearts))
	}
	if g.score != 0 || g.gems != 0 {
		t.Errorf("score/gems = %d/%d, expected 0/0", g.score, g.gems)
	}
	if g.replayIndex != 1 {
		t.Errorf("replayIndex = %d, expected 1", g.replayIndex)
	}
	if g.gameOver {
		t.Error("game should be playing again after replay")
	}

	history := g.History()
	if len(history) != 1 {
		t.Fatalf("history length = %d, expected 1", len(history))
	}
	if history[0] != (RunRecord{Replay: 0, Gems: 4, Score: 120}) {
		t.Errorf("history record = %+v", history[0])
	}

	// Movement is live again.
	for i := range g.enemies {
		g.enemies[i].Y = -1000 // keep the relocated bugs off the player
	}
	x := g.player.X
	input.Clear()
	input.Set(core.ActionRight)
	g.Step(input)
	if g.player.X != x+float64(g.cfg.Player.StepX) {
		t.Error("movement should be re-enabled after replay")
	}
}

func TestConfirmWhilePlayingIsNoop(t *testing.T) {
	g := newTestGame(t, 7)

	input := core.NewInputFrame()
	input.Set(core.ActionConfirm)
	g.Step(input)

	if g.replayIndex != 0 {
		t.Errorf("replayIndex = %d, confirm while playing must be a no-op", g.replayIndex)
	}
	if len(g.History()) != 0 {
		t.Error("confirm while playing must not append history")
	}
}

func TestEnemyRespawnLanes(t *testing.T) {
	g := newTestGame(t, 8)

	for i := 0; i < 50; i++ {
		g.enemies[0].X = g.cfg.Enemies.RespawnEdge + 1
		g.enemies[0].Y = -1000
		g.update(0)

		e := g.enemies[0]
		if !containsF(laneXs, e.X) {
			t.Fatalf("respawned X = %f not in lane set %v", e.X, laneXs)
		}
		if !containsF(laneYs, e.Y) {
			t.Fatalf("respawned Y = %f not in lane set %v", e.Y, laneYs)
		}
		if e.Speed < g.cfg.Enemies.MinSpeed || e.Speed >= g.cfg.Enemies.MaxSpeed {
			t.Fatalf("respawned speed = %f outside [%f, %f)",
				e.Speed, g.cfg.Enemies.MinSpeed, g.cfg.Enemies.MaxSpeed)
		}
	}
}

func TestGemPickup(t *testing.T) {
	g := newTestGame(t, 9)

	g.gem.X, g.gem.Y = g.player.X, g.player.Y
	g.checkGemPickup()

	if g.gems != 1 {
		t.Errorf("gems = %d, expected 1", g.gems)
	}
	if g.score != g.cfg.Gameplay.GemValue {
		t.Errorf("score = %d, expected gem value %d", g.score, g.cfg.Gameplay.GemValue)
	}
	if g.gem.Box().Intersects(g.player.Box()) {
		t.Error("relocated gem should not overlap the player")
	}
}

func TestWaterCrossing(t *testing.T) {
	g := newTestGame(t, 10)

	// Walk the player to the row just below the water.
	g.player.Y = laneYs[0] - 4 // 59, the top stone row

	input := core.NewInputFrame()
	input.Set(core.ActionUp)
	g.handleMovement(input)

	if g.score != g.cfg.Gameplay.CrossingValue {
		t.Errorf("score = %d, expected crossing value %d", g.score, g.cfg.Gameplay.CrossingValue)
	}
	if g.player.X != float64(g.cfg.Player.SpawnX) || g.player.Y != float64(g.cfg.Player.SpawnY) {
		t.Errorf("player at (%f, %f), expected spawn after crossing", g.player.X, g.player.Y)
	}
}

func TestMovementClamping(t *testing.T) {
	g := newTestGame(t, 11)
	input := core.NewInputFrame()

	// Left edge
	g.player.X = 0
	input.Clear()
	input.Set(core.ActionLeft)
	g.handleMovement(input)
	if g.player.X != 0 {
		t.Errorf("X = %f, expected clamp at left edge", g.player.X)
	}

	// Right edge
	maxX := float64((g.cfg.Board.Columns - 1) * g.cfg.Player.StepX)
	g.player.X = maxX
	input.Clear()
	input.Set(core.ActionRight)
	g.handleMovement(input)
	if g.player.X != maxX {
		t.Errorf("X = %f, expected clamp at right edge %f", g.player.X, maxX)
	}

	// Bottom edge
	g.player.Y = float64(g.cfg.Player.SpawnY)
	input.Clear()
	input.Set(core.ActionDown)
	g.handleMovement(input)
	if g.player.Y != float64(g.cfg.Player.SpawnY) {
		t.Errorf("Y = %f, expected clamp at spawn row", g.player.Y)
	}
}

func TestDeterminism(t *testing.T) {
	// Two games with the same seed and input sequence produce identical
	// snapshots.
	cfg := core.RuntimeConfig{Seed: 12345, ScreenW: 80, ScreenH: 24, TickRate: 60}

	g1 := New()
	g1.Reset(cfg)
	g2 := New()
	g2.Reset(cfg)

	input := core.NewInputFrame()
	for i := 0; i < 600; i++ {
		input.Clear()
		switch {
		case i%97 == 20:
			input.Set(core.ActionUp)
		case i%97 == 45:
			input.Set(core.ActionLeft)
		case i%97 == 70:
			input.Set(core.ActionDown)
		}
		g1.Step(input)
		g2.Step(input)
	}

	if !reflect.DeepEqual(g1.Snapshot(), g2.Snapshot()) {
		t.Errorf("snapshots diverged:\n%+v\n%+v", g1.Snapshot(), g2.Snapshot())
	}
}

func TestPauseStopsSimulation(t *testing.T) {
	g := newTestGame(t, 13)

	input := core.NewInputFrame()
	input.Set(core.ActionPause)
	g.Step(input)
	if !g.paused {
		t.Fatal("expected paused")
	}

	before := g.Snapshot()
	input.Clear()
	for i := 0; i < 60; i++ {
		g.Step(input)
	}
	after := g.Snapshot()

	if before.Enemies[0].X != after.Enemies[0].X {
		t.Error("enemies should not move while paused")
	}
}

func TestGameIDAndTitle(t *testing.T) {
	g := New()
	if g.ID() != "crossing" {
		t.Errorf("ID() = %s, expected crossing", g.ID())
	}
	if g.Title() != "Bug Crossing" {
		t.Errorf("Title() = %s", g.Title())
	}
}

func TestAvatarSelection(t *testing.T) {
	defer SetAvatar("")

	SetAvatar("char-cat-girl")
	g := newTestGame(t, 14)
	if g.player.Sprite != "char-cat-girl" {
		t.Errorf("player sprite = %s, expected char-cat-girl", g.player.Sprite)
	}

	// Unknown avatars fall back to the default.
	SetAvatar("enemy-bug")
	g.Reset(core.RuntimeConfig{Seed: 14, ScreenW: 80, ScreenH: 24, TickRate: 60})
	if g.player.Sprite != g.atlas.DefaultPlayer().ID {
		t.Errorf("player sprite = %s, expected default avatar", g.player.Sprite)
	}
}

func TestRender(t *testing.T) {
	g := newTestGame(t, 15)

	screen := core.NewScreen(80, 24)
	g.Render(screen)

	content := screen.String()
	if len(content) == 0 {
		t.Error("rendered screen should not be empty")
	}
	if !contains(content, "Bug Crossing") {
		t.Error("HUD should contain the game title")
	}
}

func TestRenderTooSmall(t *testing.T) {
	g := newTestGame(t, 16)

	screen := core.NewScreen(12, 6)
	g.Render(screen)

	if !contains(screen.String(), "too small") {
		t.Error("small screens should show the resize hint")
	}
}

func containsF(set []float64, v float64) bool {
	for _, s := range set {
		if s == v {
			return true
		}
	}
	return false
}

func contains(s, substr string) bool {
	for i := 0; i+len(substr) <= len(s); i++ {
		if s[i:i+len(substr)] == substr {
			return true
		}
	}
	return false
}
