// bugcross is a terminal rendition of the classic road-crossing arcade
// game: guide your character across the bug-infested stones to the water.
//
// Usage:
//
//	bugcross play              - Play in the current terminal
//	bugcross serve             - Start SSH server for remote play
//	bugcross scores            - Show the run history
//	bugcross list              - List registered games
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 60)
//	--seed <value>  - Set RNG seed for reproducible gameplay
//	--db <path>     - Run-history database path (default: in-memory)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import the game to register it
	_ "github.com/avoronov/bugcross/internal/games/crossing"
)

var (
	// Global flags
	flagFPS    int
	flagSeed   int64
	flagDBPath string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "bugcross",
	Short: "Bug Crossing - Dodge the bugs, reach the water",
	Long: `Bug Crossing is a terminal arcade game. Cross the stone rows to the
water while dodging the bugs, grab gems for bonus points, and keep your
three hearts for as long as you can.

Available commands:
  play     - Play in the current terminal
  serve    - Start SSH server for remote play
  scores   - View the run history
  list     - List registered games

Examples:
  bugcross play
  bugcross play --difficulty hard --avatar char-cat-girl
  bugcross serve --ssh :2222
  bugcross scores`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "", "Run-history database path (empty = in-memory)")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(listCmd)
}
