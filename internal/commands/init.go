package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/grana-dev/grana/internal/config"
)

func newInitCommand() *cobra.Command {
	var addr string
	var ledgerDir string

	cmd := &cobra.Command{
		Use:   "init [directory]",
		Short: "Initialize a new grana project",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := "."
			if len(args) > 0 {
				dir = args[0]
			}

			absDir, err := filepath.Abs(dir)
			if err != nil {
				return fmt.Errorf("resolving path: %w", err)
			}

			return runInit(absDir, addr, ledgerDir)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", ":8080", "listen address for the serve command")
	cmd.Flags().StringVar(&ledgerDir, "ledger-dir", "ledger", "directory for the cash journal, relative to the project")

	return cmd
}

func runInit(dir, addr, ledgerDir string) error {
	// Create directory structure.
	dirs := []string{
		ledgerDir,
		"logs",
	}
	for _, d := range dirs {
		if err := os.MkdirAll(filepath.Join(dir, d), 0o755); err != nil {
			return fmt.Errorf("creating directory %s: %w", d, err)
		}
	}

	// Write grana.yaml.
	cfg := config.Default()
	cfg.Server.Addr = addr
	cfg.Ledger.Dir = ledgerDir
	if err := config.Save(filepath.Join(dir, "grana.yaml"), cfg); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}

	fmt.Printf("Initialized grana project at %s\n", dir)
	return nil
}
