package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/mpetit/ticketscan/internal/cli"
	"github.com/mpetit/ticketscan/internal/engine"
	"github.com/mpetit/ticketscan/internal/model"
)

func listCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List scanned tickets",
		Long: `Show the scanned ticket history. Duplicates are hidden by default;
use --all to include them. Failed reads are always shown, marked in red.`,
		RunE: runList,
	}

	cmd.Flags().BoolP("all", "a", false, "include duplicate tickets")

	return cmd
}

func runList(cmd *cobra.Command, _ []string) error {
	showAll, _ := cmd.Flags().GetBool("all")
	ctx := cmd.Context()

	store, err := openStorage(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = store.Close() }()

	tickets, err := store.ListTickets(ctx)
	if err != nil {
		return err
	}
	if len(tickets) == 0 {
		fmt.Println(cli.SubtleStyle.Render("No tickets yet. Run 'ticketscan scan' first."))
		return nil
	}

	engine.MarkDuplicates(tickets)

	fmt.Println(cli.FormatTitle("Historique OCR"))
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "FICHIER\tTYPE\tPRESTATAIRE\tMONTANT\tDATE\tCONFIANCE\tSTATUT")

	incomplete := 0
	for _, t := range tickets {
		if !showAll && t.Duplicate {
			continue
		}
		if t.Status == model.StatusPending {
			incomplete++
		}

		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
			t.FileName,
			t.Rail,
			t.Provider,
			formatAmount(t.Amount),
			formatDate(t.Date),
			cli.Stars(t.Confidence),
			formatStatus(t),
		)
	}
	if err := w.Flush(); err != nil {
		return err
	}

	if incomplete > 0 {
		fmt.Println(cli.FormatWarning(fmt.Sprintf(
			"⚠️  %d tickets incomplets: le dernier scan a été interrompu", incomplete)))
	}
	return nil
}

func formatAmount(amount *float64) string {
	if amount == nil {
		return "—"
	}
	return fmt.Sprintf("%.2f €", *amount)
}

func formatDate(date *string) string {
	if date == nil {
		return "—"
	}
	return *date
}

func formatStatus(t model.Ticket) string {
	switch {
	case t.Duplicate:
		return cli.FormatWarning("doublon")
	case t.Status == model.StatusDone:
		return cli.FormatSuccess("done")
	case t.Status == model.StatusError:
		return cli.FormatError("error")
	default:
		return cli.SubtleStyle.Render("pending")
	}
}
