// slither is a continuous-motion snake game for the terminal.
//
// Usage:
//
//	slither play             - Play the game
//	slither scores           - Show the best score and recent runs
//	slither config           - Print the default configuration YAML
//	slither serve            - Start SSH server for remote play
//
// Global flags:
//
//	--fps <rate>    - Set render frame rate (default: 60)
//	--tps <rate>    - Set simulation tick rate (default: 30)
//	--seed <value>  - Set RNG seed for reproducible food placement
//	--db <path>     - Set database path (default: ~/.slither/scores.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagFPS    int
	flagTPS    int
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
	Use:   "slither",
	Short: "Slither - Continuous-motion snake in your terminal",
	Long: `Slither is a terminal snake game with smooth, continuous motion.
The snake glides across a toroidal field: cross one edge and you
reappear on the opposite side. Steer with the arrow keys, WASD or by
dragging the mouse like an analog joystick.

Available commands:
  play     - Play the game
  scores   - Show the best score and recent runs
  config   - Print the default configuration YAML
  serve    - Start SSH server for remote play

Examples:
  slither play
  slither play --difficulty hard
  slither scores
  slither serve --ssh :2222`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Render frame rate (frames per second)")
	rootCmd.PersistentFlags().IntVar(&flagTPS, "tps", 0, "Simulation tick rate (0 = from config)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.slither/scores.db", "Path to scores database")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(serveCmd)
}
