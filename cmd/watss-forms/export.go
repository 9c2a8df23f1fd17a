package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vincentbai/watss-forms/internal/export"
)

var (
	exportDir      string
	exportFilename string
)

var countCmd = &cobra.Command{
	Use:   "count",
	Short: "Show how many submissions are stored",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requireLocalVariant(cfg, "count"); err != nil {
			return err
		}
		ctx := cmd.Context()
		slots, err := openSlots(ctx, cfg)
		if err != nil {
			return err
		}
		defer slots.Close()

		status, err := newStore(slots, cfg, logger).Status(ctx)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), status.Label)
		return nil
	},
}

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Write all submissions to a CSV file",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requireLocalVariant(cfg, "export"); err != nil {
			return err
		}
		ctx := cmd.Context()
		slots, err := openSlots(ctx, cfg)
		if err != nil {
			return err
		}
		defer slots.Close()

		list, err := newStore(slots, cfg, logger).List(ctx)
		if err != nil {
			return err
		}
		filename := exportFilename
		if filename == "" {
			filename = cfg.CSVFilename
		}
		downloader := &export.FileDownloader{Dir: exportDir}
		if err := export.Download(ctx, downloader, list, filename); err != nil {
			if errors.Is(err, export.ErrNothingToDownload) {
				fmt.Fprintln(cmd.OutOrStdout(), export.MessageNothingToDownload)
				return nil
			}
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Wrote %d submissions to %s\n", len(list), downloader.Path)
		return nil
	},
}

func init() {
	exportCmd.Flags().StringVarP(&exportDir, "out", "o", ".", "directory to write the CSV into")
	exportCmd.Flags().StringVar(&exportFilename, "filename", "", "file name (default from config)")
}
