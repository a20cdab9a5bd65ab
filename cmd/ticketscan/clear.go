package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mpetit/ticketscan/internal/cli"
)

func clearCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "clear",
		Short: "Delete the whole ticket history",
		RunE:  runClear,
	}

	cmd.Flags().Bool("force", false, "delete without confirmation")

	return cmd
}

func runClear(cmd *cobra.Command, _ []string) error {
	force, _ := cmd.Flags().GetBool("force")
	if !force {
		return fmt.Errorf("refusing to delete the history without --force")
	}

	ctx := cmd.Context()
	store, err := openStorage(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = store.Close() }()

	if err := store.DeleteAllTickets(ctx); err != nil {
		return err
	}

	fmt.Println(cli.FormatSuccess("Ticket history cleared"))
	return nil
}
