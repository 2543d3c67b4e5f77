package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-tetris/internal/platform/tui"
)

var (
	flagSSHAddr     string
	flagHostKey     string
	flagIdleTimeout time.Duration
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve tetris over SSH",
	Long: `Run an SSH server where every connection gets its own menu, games and
scoreboard. All players share one scores database.

A host key is generated at ~/.arcade/host_key unless --host-key points to
an existing one. Stop the server with Ctrl+C or SIGTERM.

Examples:
  tetris serve
  tetris serve --ssh :2222 --idle-timeout 10m
  tetris serve --db /var/lib/tetris/scores.db --difficulty hard

Connect with:
  ssh -p 23234 localhost`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", ":23234", "Listen address (host:port)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Host key file (generated when empty)")
	serveCmd.Flags().DurationVar(&flagIdleTimeout, "idle-timeout", 30*time.Minute, "Disconnect idle players after this long")
}

func runServe(cmd *cobra.Command, _ []string) error {
	if flagIdleTimeout <= 0 {
		return fmt.Errorf("--idle-timeout must be positive, got %v", flagIdleTimeout)
	}

	server, err := tui.NewSSHServer(tui.SSHServerConfig{
		Address:     flagSSHAddr,
		HostKeyPath: flagHostKey,
		DBPath:      flagDBPath,
		TickRate:    flagFPS,
		IdleTimeout: flagIdleTimeout,
		Debug:       flagDebug,
	})
	if err != nil {
		return fmt.Errorf("create ssh server: %w", err)
	}

	cmd.Printf("tetris listening on %s (Ctrl+C to stop)\n", server.Addr())
	return server.ListenAndServe()
}
