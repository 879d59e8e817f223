package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/bomberquest/internal/games/bomberquest"
	"github.com/vovakirdan/bomberquest/internal/platform/tui"
)

var (
	flagSSHAddr     string
	flagHostKey     string
	flagIdleTimeout int
	flagKeyRate     float64
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the BomberQuest SSH server",
	Long: `Start an SSH server that allows users to connect and play.

Each SSH connection gets its own session with a mode menu, a level
picker and its own simulation. Scores are stored per-server (all users
share the same leaderboard).

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise, auto-generates a key at ~/.bomberquest/host_key

Examples:
  bomberquest serve                           # Listen on :23234 with auto-generated key
  bomberquest serve --ssh :2222               # Listen on port 2222
  bomberquest serve --host-key ./my_host_key  # Use specific host key
  bomberquest serve --levels ./campaign       # Serve a custom level set

Users can connect with:
  ssh localhost -p 23234`,
	Run: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", ":23234", "SSH server address (host:port)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (auto-generated if not specified)")
	serveCmd.Flags().IntVar(&flagIdleTimeout, "idle-timeout", 30, "Idle timeout in minutes before disconnecting")
	serveCmd.Flags().Float64Var(&flagKeyRate, "key-rate", 30, "Max in-game key presses per second per session (0 = unlimited)")
	serveCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	serveCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	serveCmd.Flags().StringVar(&flagLevels, "levels", "", "Directory of level files to serve instead of the builtin campaign")
}

func runServe(_ *cobra.Command, _ []string) {
	bomberquest.SetConfigPath(flagConfig)
	bomberquest.SetDifficultyPreset(flagDifficulty)
	bomberquest.SetLevelsDir(flagLevels)

	cfg := tui.DefaultSSHServerConfig()
	cfg.Address = flagSSHAddr
	cfg.HostKeyPath = flagHostKey
	cfg.DBPath = flagDBPath
	cfg.IdleTimeout = time.Duration(flagIdleTimeout) * time.Minute
	cfg.KeysPerSecond = flagKeyRate
	cfg.TickRate = flagFPS

	server, err := tui.NewSSHServer(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating server: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Starting BomberQuest SSH server on %s\n", cfg.Address)
	fmt.Println("Connect with: ssh localhost -p 23234")
	fmt.Println("Press Ctrl+C to stop")

	if err := server.ListenAndServe(); err != nil {
		fmt.Fprintf(os.Stderr, "Server error: %v\n", err)
		os.Exit(1)
	}
}
