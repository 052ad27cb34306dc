package main

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/olekukonko/tablewriter"

	"github.com/udisondev/augsim/internal/game/augment"
	"github.com/udisondev/augsim/internal/model"
)

func formatEntry(e model.OwnedAugmentation) string {
	if e.Level > 1 {
		return fmt.Sprintf("%s - %d", e.Name, e.Level)
	}
	return e.Name
}

func augmentationStatus(p *model.Player, name string) string {
	switch {
	case p.HasAugmentation(name) && p.IsQueued(name):
		return "owned+queued"
	case p.HasAugmentation(name):
		return "owned"
	case p.IsQueued(name):
		return "queued"
	default:
		return ""
	}
}

func renderCatalog(w io.Writer, augs []*model.Augmentation, p *model.Player, faction string) {
	table := tablewriter.NewTable(w,
		tablewriter.WithHeader([]string{"Augmentation", "Price", "Rep", "Factions", "Requires", "Status"}),
	)

	for _, aug := range augs {
		if faction != "" && !aug.IsOfferedBy(faction) {
			continue
		}
		table.Append([]string{
			aug.Name,
			fmt.Sprintf("%.0f", augment.Price(aug, p)),
			fmt.Sprintf("%.0f", aug.BaseRepRequirement),
			strings.Join(aug.Factions, ", "),
			strings.Join(aug.PreReqs, ", "),
			augmentationStatus(p, aug.Name),
		})
	}
	table.Render()
}

func renderStatus(w io.Writer, p *model.Player, all bool) {
	fmt.Fprintf(w, "Player:        %s\n", p.Name())
	fmt.Fprintf(w, "Money:         %.0f\n", p.Money())
	fmt.Fprintf(w, "Source-File 11: %d\n", p.SourceFileLevel())
	fmt.Fprintf(w, "Entropy:       %d\n", p.Entropy())
	fmt.Fprintf(w, "Since install: %s\n", p.PlaytimeSinceLastAug().Truncate(time.Second))
	fmt.Fprintf(w, "Total played:  %s\n", p.TotalPlaytime().Truncate(time.Second))

	ledger := tablewriter.NewTable(w,
		tablewriter.WithHeader([]string{"#", "Augmentation", "Level", "State"}),
	)
	for i, e := range p.Augmentations() {
		ledger.Append([]string{fmt.Sprintf("%d", i+1), e.Name, fmt.Sprintf("%d", e.Level), "owned"})
	}
	for i, e := range p.QueuedAugmentations() {
		ledger.Append([]string{fmt.Sprintf("%d", i+1), e.Name, fmt.Sprintf("%d", e.Level), "queued"})
	}
	ledger.Render()

	mults := p.Mults()
	table := tablewriter.NewTable(w,
		tablewriter.WithHeader([]string{"Multiplier", "Value"}),
	)
	for _, name := range model.AllMultNames() {
		v := mults.Get(name)
		if !all && v == 1 {
			continue
		}
		table.Append([]string{string(name), fmt.Sprintf("%.4f", v)})
	}
	table.Render()
}
