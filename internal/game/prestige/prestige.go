// Package prestige implements the progress reset that follows an
// augmentation installation.
package prestige

import (
	"log/slog"

	"github.com/udisondev/augsim/internal/game/augment"
	"github.com/udisondev/augsim/internal/model"
)

// Pipeline resets run progress while keeping owned augmentations.
type Pipeline struct {
	player        *model.Player
	catalog       *augment.Catalog
	agg           *augment.Aggregator
	startingMoney float64
}

// New creates a prestige pipeline for player.
func New(player *model.Player, agg *augment.Aggregator, startingMoney float64) *Pipeline {
	return &Pipeline{
		player:        player,
		catalog:       agg.Catalog(),
		agg:           agg,
		startingMoney: startingMoney,
	}
}

// PrestigeAugmentation resets money, experience and the since-last-install
// playtime, then rebuilds the catalog and recomputes multipliers from the
// owned augmentations.
func (p *Pipeline) PrestigeAugmentation() {
	p.player.SetMoney(p.startingMoney)
	p.player.SetExperience(model.Experience{})
	p.player.ResetPlaytimeSinceLastAug()

	p.catalog.Rebuild()
	p.agg.ReapplyAll(p.player)

	slog.Info("prestige complete",
		"player", p.player.Name(),
		"owned", len(p.player.Augmentations()),
		"catalog", p.catalog.Len())
}
