package main

import (
	"github.com/spf13/cobra"

	"github.com/vincentbai/watss-forms/internal/config"
	"github.com/vincentbai/watss-forms/internal/server"
	"github.com/vincentbai/watss-forms/internal/submissions"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the local form agent",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		options := server.Options{
			StaticDir:   cfg.StaticDir,
			Filename:    cfg.CSVFilename,
			EventLabels: cfg.EventLabels,
		}

		// The relay variant never opens local storage.
		var store *submissions.Store
		if cfg.Variant == config.VariantRelay {
			options.Relay = newRelayClient(cfg, logger)
		} else {
			slots, err := openSlots(ctx, cfg)
			if err != nil {
				return err
			}
			defer slots.Close()
			store = newStore(slots, cfg, logger)
		}
		return server.NewServer(store, cfg.Address, options, logger).Run(ctx)
	},
}
