package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mpetit/ticketscan/internal/cli"
	"github.com/mpetit/ticketscan/internal/export"
)

func restoreCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "restore <snapshot.json>",
		Short: "Restore tickets from a JSON snapshot",
		Long: `Load a snapshot written by 'ticketscan export --format json' back into
the database. Tickets sharing a source key with an existing record replace
it; everything else is appended.`,
		Args: cobra.ExactArgs(1),
		RunE: runRestore,
	}
}

func runRestore(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	f, err := os.Open(args[0])
	if err != nil {
		return fmt.Errorf("failed to open snapshot: %w", err)
	}
	defer func() { _ = f.Close() }()

	tickets, err := export.ReadSnapshot(f)
	if err != nil {
		return fmt.Errorf("failed to read snapshot %s: %w", args[0], err)
	}

	store, err := openStorage(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = store.Close() }()

	for i := range tickets {
		if err := store.SaveTicket(ctx, &tickets[i]); err != nil {
			return fmt.Errorf("failed to restore %s: %w", tickets[i].FileName, err)
		}
	}

	fmt.Println(cli.FormatSuccess(fmt.Sprintf("Restored %d tickets from %s", len(tickets), args[0])))
	return nil
}
