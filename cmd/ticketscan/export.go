package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/mpetit/ticketscan/internal/cli"
	"github.com/mpetit/ticketscan/internal/common"
	"github.com/mpetit/ticketscan/internal/engine"
	"github.com/mpetit/ticketscan/internal/export"
	"github.com/mpetit/ticketscan/internal/model"
)

func exportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export tickets to CSV or a JSON snapshot",
		Long: `Export scanned tickets.

The csv format writes done, non-duplicate tickets as a semicolon-separated
report. The json format writes a full snapshot of every ticket, suitable for
'ticketscan restore' after a reinstall.`,
		RunE: runExport,
	}

	cmd.Flags().StringP("format", "f", "csv", "export format (csv, json)")
	cmd.Flags().StringP("output", "o", "", "output file (default: tickets_<date>.<format>)")

	return cmd
}

func runExport(cmd *cobra.Command, _ []string) error {
	format, _ := cmd.Flags().GetString("format")
	output, _ := cmd.Flags().GetString("output")
	ctx := cmd.Context()

	if format != "csv" && format != "json" {
		return fmt.Errorf("%w: unknown export format %q", common.ErrInvalidConfig, format)
	}
	if output == "" {
		output = fmt.Sprintf("tickets_%s.%s", time.Now().Format("2006-01-02"), format)
	}

	store, err := openStorage(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = store.Close() }()

	tickets, err := store.ListTickets(ctx)
	if err != nil {
		return err
	}
	engine.MarkDuplicates(tickets)

	if format == "csv" {
		exportable := 0
		for _, t := range tickets {
			if t.Status == model.StatusDone && !t.Duplicate {
				exportable++
			}
		}
		if exportable == 0 {
			return common.ErrNoTickets
		}
	}

	f, err := os.Create(output)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", output, err)
	}
	defer func() { _ = f.Close() }()

	switch format {
	case "csv":
		err = export.WriteCSV(f, tickets)
	case "json":
		err = export.WriteSnapshot(f, tickets)
	}
	if err != nil {
		return err
	}

	fmt.Println(cli.FormatSuccess(fmt.Sprintf("Exported %d tickets to %s", len(tickets), output)))
	return nil
}
