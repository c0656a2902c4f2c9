package main

import (
	"context"
	"strings"

	"github.com/spf13/cobra"

	"github.com/yungbote/ticketdesk/internal/app"
	"github.com/yungbote/ticketdesk/internal/config"
	"github.com/yungbote/ticketdesk/internal/platform/shutdown"
)

var (
	serveAddr     string
	serveBackend  string
	serveCapacity int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the ticket HTTP service",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}
		applyServeFlags(cmd, cfg)

		a, err := app.New(context.Background(), cfg)
		if err != nil {
			return err
		}

		ctx, stop := shutdown.NotifyContext(cmd.Context(), a.Log)
		defer stop()
		return a.Run(ctx)
	},
}

// applyServeFlags lets explicit flags win over file and environment.
func applyServeFlags(cmd *cobra.Command, cfg *config.Config) {
	if cmd.Flags().Changed("addr") {
		cfg.HTTP.Addr = serveAddr
	}
	if cmd.Flags().Changed("backend") {
		cfg.Store.Backend = strings.ToLower(strings.TrimSpace(serveBackend))
	}
	if cmd.Flags().Changed("mailbox-capacity") {
		cfg.Store.MailboxCapacity = serveCapacity
	}
}

func init() {
	serveCmd.Flags().StringVar(&serveAddr, "addr", ":8080", "Listen address")
	serveCmd.Flags().StringVar(&serveBackend, "backend", config.BackendShared, `Ticket store: "shared" or "actor"`)
	serveCmd.Flags().IntVar(&serveCapacity, "mailbox-capacity", 64, "Actor mailbox capacity")
	rootCmd.AddCommand(serveCmd)
}
