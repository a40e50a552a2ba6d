// mathbird is a terminal math ride: flap a bird through obstacle gaps and
// pick the opening that answers the question.
//
// Usage:
//
//	mathbird list              - List available rides
//	mathbird play [ride]       - Play a ride (default: mathbird)
//	mathbird menu              - Start menu to pick rides interactively
//	mathbird serve             - Start SSH server for remote play
//	mathbird scores [ride]     - Show best runs for a ride
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 60)
//	--seed <value>  - Set RNG seed for reproducible gameplay
//	--db <path>     - Set database path (default: ~/.mathbird/scores.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import the game to register its rides
	_ "github.com/vovakirdan/mathbird/internal/games/mathbird"
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
	Use:   "mathbird",
	Short: "Math Bird - flap through sums in your terminal",
	Long: `Math Bird is a terminal arcade game. Keep a bird airborne between
obstacles and fly through the gap that holds the right answer.

Available commands:
  list     - Show all available rides
  play     - Play a ride directly
  menu     - Interactive ride picker menu
  serve    - Start SSH server for remote play
  scores   - View best runs

Examples:
  mathbird list
  mathbird play
  mathbird play mathbird_classic
  mathbird menu
  mathbird serve --ssh :2222
  mathbird scores`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.mathbird/scores.db", "Path to scores database")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
}
