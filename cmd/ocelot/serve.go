package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/FlightPaperStudio/project-ocelot/internal/platform/tui"
)

var (
	flagSSHAddr     string
	flagHostKey     string
	flagIdleTimeout int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the explorer SSH server",
	Long: `Start an SSH server that allows users to connect and explore boards.

Each SSH connection gets its own explorer. Matches started over SSH are saved
to the shared database.

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise, uses ssh.host_key from the config

Examples:
  ocelot serve                           # Listen on the configured address
  ocelot serve --ssh :2222               # Listen on port 2222
  ocelot serve --host-key ./my_host_key  # Use specific host key

Users can connect with:
  ssh localhost -p 23235`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", "", "SSH server address (default from config)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file")
	serveCmd.Flags().IntVar(&flagIdleTimeout, "idle-timeout", 0, "Idle timeout in minutes (default from config)")
}

func runServe(cmd *cobra.Command, _ []string) error {
	sshCfg := cfg.SSH
	if cmd.Flags().Changed("ssh") {
		sshCfg.Address = flagSSHAddr
	}
	if cmd.Flags().Changed("host-key") {
		sshCfg.HostKey = flagHostKey
	}
	if cmd.Flags().Changed("idle-timeout") {
		sshCfg.IdleTimeoutMinutes = flagIdleTimeout
	}

	boards, err := newLoader().LoadAll()
	if err != nil {
		return err
	}

	store, err := openStore()
	if err != nil {
		return err
	}
	defer store.Close()
	boards = appendStoredBoards(boards, store)

	opts, err := explorerOptions(cfg.Board.ID, store)
	if err != nil {
		return err
	}

	server, err := tui.NewSSHServer(tui.SSHServerConfigFrom(sshCfg, opts), boards, logger)
	if err != nil {
		return fmt.Errorf("creating server: %w", err)
	}

	fmt.Printf("Starting ocelot SSH server on %s\n", server.Addr())
	fmt.Println("Press Ctrl+C to stop")

	return server.ListenAndServe()
}
