package main

import (
	"fmt"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mpetit/ticketscan/internal/cli"
	"github.com/mpetit/ticketscan/internal/engine"
	"github.com/mpetit/ticketscan/internal/model"
)

func statsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Summarize the scanned ticket history",
		RunE:  runStats,
	}
}

type providerStats struct {
	name  string
	count int
	total float64
}

func runStats(cmd *cobra.Command, _ []string) error {
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

	var done, pending, failed, duplicates int
	byRail := map[model.Rail]int{}
	byProvider := map[string]*providerStats{}
	confidenceSum := 0

	for _, t := range tickets {
		switch t.Status {
		case model.StatusDone:
			done++
			confidenceSum += t.Confidence
			if t.Duplicate {
				duplicates++
			}
		case model.StatusPending:
			pending++
		case model.StatusError:
			failed++
		}

		byRail[t.Rail]++

		p, ok := byProvider[t.Provider]
		if !ok {
			p = &providerStats{name: t.Provider}
			byProvider[t.Provider] = p
		}
		p.count++
		if t.Amount != nil {
			p.total += *t.Amount
		}
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Tickets : %d\n", len(tickets))
	fmt.Fprintf(&b, "✅ Terminés : %d   ⏳ En attente : %d   ⚠️ Erreurs : %d\n", done, pending, failed)
	if duplicates > 0 {
		fmt.Fprintf(&b, "Doublons : %d\n", duplicates)
	}
	if done > 0 {
		fmt.Fprintf(&b, "★ Confiance moyenne : %.2f\n", float64(confidenceSum)/float64(done))
	}
	if pending > 0 {
		fmt.Fprintf(&b, "\nHistorique incomplet : un scan a été interrompu.\n")
	}

	fmt.Fprintf(&b, "\nPar type : CARTE %d, CONNECT %d, INCONNU %d\n",
		byRail[model.RailCard], byRail[model.RailConnect], byRail[model.RailUnknown])

	providers := make([]*providerStats, 0, len(byProvider))
	for _, p := range byProvider {
		providers = append(providers, p)
	}
	sort.Slice(providers, func(i, j int) bool {
		if providers[i].count != providers[j].count {
			return providers[i].count > providers[j].count
		}
		return providers[i].name < providers[j].name
	})

	b.WriteString("\nPar prestataire :\n")
	for _, p := range providers {
		fmt.Fprintf(&b, "  %s : %d tickets, %.2f €\n", p.name, p.count, p.total)
	}

	fmt.Println(cli.RenderBox("Tickets Restau", strings.TrimRight(b.String(), "\n")))
	return nil
}
