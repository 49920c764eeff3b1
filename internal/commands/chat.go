package commands

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/grana-dev/grana/internal/config"
	"github.com/grana-dev/grana/internal/dialog"
	"github.com/grana-dev/grana/internal/intent"
	"github.com/grana-dev/grana/internal/ledger"
	"github.com/grana-dev/grana/internal/model"
	"github.com/grana-dev/grana/internal/turnlog"
)

func newChatCommand() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:   "chat",
		Short: "Talk to the assistant on the terminal",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(configPath)
			if err != nil {
				return err
			}
			return runChat(cmd.InOrStdin(), cmd.OutOrStdout(), configPath, cfg)
		},
	}

	cmd.Flags().StringVar(&configPath, "config", "grana.yaml", "path to the project config")

	return cmd
}

// runChat is a line-oriented loop over the same turn semantics the HTTP
// server exposes. The confirmation context lives in this process: each
// awaiting_confirmation turn replaces it, a finished or cancelled turn
// clears it.
func runChat(in io.Reader, out io.Writer, configPath string, cfg *config.Config) error {
	root := filepath.Dir(configPath)
	svc := ledger.NewService(resolvePath(root, cfg.Ledger.Dir))
	orch := dialog.New(svc)

	fmt.Fprintln(out, "grana: oi! Me conta um gasto ou pergunta seu saldo. (Ctrl+D para sair)")

	var pendingCtx json.RawMessage
	scanner := bufio.NewScanner(in)
	for {
		fmt.Fprint(out, "> ")
		if !scanner.Scan() {
			break
		}
		message := strings.TrimSpace(scanner.Text())
		if message == "" {
			continue
		}

		resp := orch.HandleTurn(message, pendingCtx)

		switch resp.Action {
		case model.TurnAwaitingConfirmation:
			data, err := json.Marshal(resp.Data)
			if err == nil {
				pendingCtx = data
			}
		case model.TurnSuccess:
			if convCtx := dialog.ResolveContext(pendingCtx); convCtx.Pending != nil {
				if _, err := svc.Record(*convCtx.Pending, time.Now(), message); err != nil {
					fmt.Fprintf(out, "grana: nao consegui registrar: %v\n", err)
				}
			}
			pendingCtx = nil
		case model.TurnCancelled:
			pendingCtx = nil
		}

		auditChatTurn(root, message, resp)

		fmt.Fprintf(out, "grana: %s\n", resp.Reply)
	}
	return scanner.Err()
}

// auditChatTurn appends to the turn log, best-effort. Chat sessions are
// audited the same way HTTP turns are.
func auditChatTurn(root, message string, resp model.TurnResponse) {
	in := intent.Classify(message)
	entry := turnlog.Entry{
		Timestamp: time.Now(),
		TurnID:    uuid.NewString(),
		Source:    "chat",
		Intent:    string(in.Kind),
		Action:    string(resp.Action),
	}
	_ = turnlog.Append(root, []turnlog.Entry{entry})
}
