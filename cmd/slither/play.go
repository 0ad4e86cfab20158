package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-slither/internal/config"
	"github.com/vovakirdan/tui-slither/internal/core"
	"github.com/vovakirdan/tui-slither/internal/platform/tui"
	"github.com/vovakirdan/tui-slither/internal/sim"
	"github.com/vovakirdan/tui-slither/internal/steer"
	"github.com/vovakirdan/tui-slither/internal/storage"
)

var (
	flagConfig     string
	flagDifficulty string
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play slither",
	Long: `Start the game in the current terminal.

Controls:
  Arrows/WASD  - Steer
  Mouse drag   - Analog steering (release to pause)
  Space        - Start / pause
  F            - Cycle speed
  R            - Restart (after game over)
  Q/Ctrl+C     - Quit

Difficulty options:
  easy   - Slow starting speed
  normal - Default starting speed
  hard   - Fast starting speed
  fixed  - Use the config's speed unchanged

Examples:
  slither play
  slither play --difficulty hard
  slither play --config ./my-slither.yaml
  slither play --seed 42`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
}

func runPlay(cmd *cobra.Command, args []string) {
	gameCfg, err := config.Load(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}
	config.ApplyPreset(&gameCfg, config.DifficultyPreset(flagDifficulty))

	if flagTPS > 0 {
		gameCfg.Simulation.TickRate = flagTPS
	}
	if flagFPS > 0 {
		gameCfg.Simulation.FrameRate = flagFPS
	}

	// Get terminal size early; fall back to the defaults when not a terminal
	def := core.DefaultConfig()
	width, height := def.ScreenW, def.ScreenH
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	runtime := core.RuntimeConfig{
		ScreenW:   width,
		ScreenH:   height,
		TickRate:  gameCfg.Simulation.TickRate,
		FrameRate: gameCfg.Simulation.FrameRate,
		Seed:      seed,
	}

	engine := sim.New(gameCfg.SimParams(), seed)
	mode, sectors := gameCfg.SteerMode()
	ctrl := steer.New(mode, sectors)

	// Open score storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		// Continue without storage - game still works
		store = nil
	}

	runErr := tui.Run(engine, ctrl, store, runtime)

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
