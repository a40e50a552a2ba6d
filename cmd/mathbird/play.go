package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/mathbird/internal/core"
	"github.com/vovakirdan/mathbird/internal/games/mathbird"
	"github.com/vovakirdan/mathbird/internal/platform/tui"
	"github.com/vovakirdan/mathbird/internal/registry"
	"github.com/vovakirdan/mathbird/internal/storage"
)

var (
	flagConfig     string
	flagDifficulty string
	flagPack       string
	flagDebug      bool
)

var playCmd = &cobra.Command{
	Use:   "play [ride]",
	Short: "Play a ride",
	Long: `Start playing the specified ride. Without an argument the math ride starts.

Controls:
  Space/W/Up - Flap
  P          - Pause
  R          - Restart (after game over)
  Q/Ctrl+C   - Quit

Difficulty presets shape the questions, never the flying:
  easy   - Addition and subtraction within 10
  normal - All four operations, tables up to 9
  hard   - All four operations, bigger numbers

Examples:
  mathbird play
  mathbird play mathbird_classic
  mathbird play --difficulty easy
  mathbird play --pack ./tables.yaml
  mathbird play --config ./my-mathbird.yaml`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
	playCmd.Flags().StringVar(&flagPack, "pack", "", "Path to question pack YAML (overrides the generator)")
	playCmd.Flags().BoolVar(&flagDebug, "debug", false, "Write a debug log to ~/.mathbird/mathbird.log")
}

func runPlay(cmd *cobra.Command, args []string) {
	gameID := "mathbird"
	if len(args) > 0 {
		gameID = args[0]
	}

	// Check if ride exists
	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown ride %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'mathbird list' to see available rides.")
		os.Exit(1)
	}

	// Get terminal size early for the setup screen
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	// Create runtime config
	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	// Set config path, pack and difficulty before creation
	mathbird.SetConfigPath(flagConfig)
	mathbird.SetPackPath(flagPack)
	mathbird.SetDifficultyPreset(flagDifficulty)

	// The math ride asks for a difficulty unless one was given on the CLI
	if gameID == "mathbird" && flagDifficulty == "" {
		selection, selErr := tui.RunMathbirdSetup(cfg)
		if selErr != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", selErr)
			os.Exit(1)
		}

		// User pressed back or quit
		if selection == nil {
			return
		}

		mathbird.SetDifficultyPreset(string(selection.Preset))
	}

	// Create game instance
	game, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating ride: %v\n", err)
		os.Exit(1)
	}

	if flagDebug {
		attachDebugLogger(game)
	}

	// Open score storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		// Continue without storage - game still works
		store = nil
	}

	// Run the game
	runErr := tui.Run(game, store, cfg)

	// Close store before potential exit
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running ride: %v\n", runErr)
		os.Exit(1)
	}
}

// attachDebugLogger points the game's logger at ~/.mathbird/mathbird.log.
// The TUI owns the terminal, so debug output has to go to a file.
func attachDebugLogger(game registry.Game) {
	mb, ok := game.(*mathbird.Game)
	if !ok {
		return
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return
	}

	logPath := filepath.Join(home, ".mathbird", "mathbird.log")
	if mkErr := os.MkdirAll(filepath.Dir(logPath), 0o755); mkErr != nil {
		return
	}

	f, err := os.OpenFile(logPath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return
	}

	// The file stays open for the process lifetime.
	mb.SetLogger(log.NewWithOptions(f, log.Options{
		ReportTimestamp: true,
		Level:           log.DebugLevel,
		Prefix:          "mathbird",
	}))
}
