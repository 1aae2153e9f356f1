package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/avoronov/bugcross/internal/assets"
	"github.com/avoronov/bugcross/internal/config"
	"github.com/avoronov/bugcross/internal/core"
	"github.com/avoronov/bugcross/internal/games/crossing"
	"github.com/avoronov/bugcross/internal/platform/tui"
	"github.com/avoronov/bugcross/internal/registry"
	"github.com/avoronov/bugcross/internal/storage"
)

var (
	flagConfigPath string
	flagDifficulty string
	flagAvatar     string
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play Bug Crossing in the current terminal",
	Long: `Start a game session in the current terminal.

Controls:
  WASD / Arrows  - Move
  Enter / Space  - Play again after game over
  P              - Pause
  Esc / B        - Back to avatar menu (when paused or game over)
  Q / Ctrl+C     - Quit

Examples:
  bugcross play
  bugcross play --difficulty easy
  bugcross play --avatar char-horn-girl --seed 42`,
	Run: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfigPath, "config", "", "Path to a custom game config file")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "normal", "Difficulty preset: easy, normal, hard, fixed")
	playCmd.Flags().StringVar(&flagAvatar, "avatar", "", "Character sprite ID (skips the picker menu)")
}

func runPlay(cmd *cobra.Command, args []string) {
	switch config.DifficultyPreset(flagDifficulty) {
	case config.DifficultyEasy, config.DifficultyNormal, config.DifficultyHard, config.DifficultyFixed:
	default:
		fmt.Fprintf(os.Stderr, "Error: unknown difficulty %q (use easy, normal, hard or fixed)\n", flagDifficulty)
		os.Exit(1)
	}

	// Validate the sprite manifest up front so a broken build fails here
	// instead of mid-game.
	atlas, err := assets.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading sprites: %v\n", err)
		os.Exit(1)
	}

	// Get terminal size
	width, height, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil {
		// Fallback to reasonable defaults
		width, height = 80, 24
	}

	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	crossing.SetConfigPath(flagConfigPath)
	crossing.SetDifficultyPreset(flagDifficulty)

	avatar := flagAvatar
	if avatar != "" {
		if !atlas.IsPlayer(avatar) {
			fmt.Fprintf(os.Stderr, "Error: unknown avatar %q\n", avatar)
			fmt.Fprintln(os.Stderr, "Available avatars:")
			for _, p := range atlas.Players() {
				fmt.Fprintf(os.Stderr, "  %s  (%s)\n", p.ID, p.Name)
			}
			os.Exit(1)
		}
	} else {
		result, menuErr := tui.RunAvatarMenu(atlas, cfg)
		if menuErr != nil {
			fmt.Fprintf(os.Stderr, "Error running menu: %v\n", menuErr)
			os.Exit(1)
		}
		if result.Quit {
			return
		}
		avatar = result.Avatar
		cfg = result.Config // Pick up any resize that happened in the menu
	}
	crossing.SetAvatar(avatar)

	game, err := registry.Create(crossing.GameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	// Open run storage (optional; game works without it)
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open run database: %v\n", err)
		fmt.Fprintln(os.Stderr, "Runs will not be recorded.")
		store = nil
	}
	if store != nil {
		defer store.Close()
	}

	if err := tui.Run(game, store, cfg, avatar); err != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
		os.Exit(1)
	}
}
