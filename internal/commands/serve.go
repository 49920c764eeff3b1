package commands

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/grana-dev/grana/internal/config"
	"github.com/grana-dev/grana/internal/dialog"
	"github.com/grana-dev/grana/internal/ledger"
	"github.com/grana-dev/grana/internal/logger"
	"github.com/grana-dev/grana/internal/server"
	"github.com/grana-dev/grana/internal/transcribe"
)

func newServeCommand() *cobra.Command {
	var configPath string
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the conversational HTTP server",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(configPath)
			if err != nil {
				return err
			}
			if addr != "" {
				cfg.Server.Addr = addr
			}
			return runServe(configPath, cfg)
		},
	}

	cmd.Flags().StringVar(&configPath, "config", "grana.yaml", "path to the project config")
	cmd.Flags().StringVar(&addr, "addr", "", "listen address (overrides config)")

	return cmd
}

func runServe(configPath string, cfg *config.Config) error {
	log := logger.New(cfg.Log.Level)

	// Relative paths in the config resolve against the config file.
	root := filepath.Dir(configPath)
	svc := ledger.NewService(resolvePath(root, cfg.Ledger.Dir))

	opts := server.Options{
		Recorder: svc,
		LogRoot:  root,
		Logger:   log,
		Language: cfg.Transcriber.Language,
	}
	// A typed nil in the interface would pass the server's nil checks.
	if client := transcribe.NewHTTPClient(cfg.Transcriber); client != nil {
		opts.Transcriber = client
	}

	srv := server.New(dialog.New(svc), opts)

	log.Info().Str("addr", cfg.Server.Addr).Str("ledger", cfg.Ledger.Dir).Msg("starting server")
	if err := srv.Echo().Start(cfg.Server.Addr); err != nil {
		return fmt.Errorf("running server: %w", err)
	}
	return nil
}

func resolvePath(root, p string) string {
	if filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(root, p)
}
