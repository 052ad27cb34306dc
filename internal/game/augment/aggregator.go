package augment

import (
	"log/slog"

	"github.com/udisondev/augsim/internal/data"
	"github.com/udisondev/augsim/internal/model"
)

// applyHook runs after an augmentation's multipliers are merged.
// Returning true stops processing, so the entry is not appended to the owned list.
type applyHook func(p *model.Player, entry model.OwnedAugmentation, reapply bool) bool

// applyHooks is the closed set of augmentations with side effects beyond
// their multiplier contribution.
var applyHooks = map[string]applyHook{
	data.CongruityImplant:  purgeEntropy,
	data.NeuroFluxGovernor: raiseGovernorLevel,
}

// purgeEntropy zeroes entropy on first installation only.
func purgeEntropy(p *model.Player, _ model.OwnedAugmentation, reapply bool) bool {
	if !reapply {
		p.ApplyEntropy(0)
	}
	return false
}

// raiseGovernorLevel keeps a single owned NeuroFlux Governor entry and moves
// its level to the installed one.
func raiseGovernorLevel(p *model.Player, entry model.OwnedAugmentation, reapply bool) bool {
	if reapply {
		return false
	}
	return p.SetOwnedLevel(entry.Name, entry.Level)
}

// Aggregator folds augmentation contributions into player multipliers.
type Aggregator struct {
	catalog *Catalog
}

// NewAggregator creates an aggregator resolving names against catalog.
func NewAggregator(catalog *Catalog) *Aggregator {
	return &Aggregator{catalog: catalog}
}

// Catalog returns the catalog used for lookups.
func (a *Aggregator) Catalog() *Catalog {
	return a.catalog
}

// Apply merges the contribution of entry into the player's multipliers.
// With reapply false the entry is also recorded as owned.
// An entry missing from the catalog is logged and ignored; Apply then
// returns false.
func (a *Aggregator) Apply(p *model.Player, entry model.OwnedAugmentation, reapply bool) bool {
	def, ok := a.catalog.Lookup(entry.Name)
	if !ok {
		slog.Error("invalid augmentation", "name", entry.Name, "player", p.Name())
		return false
	}
	a.apply(p, def, entry, reapply)
	return true
}

func (a *Aggregator) apply(p *model.Player, def *model.Augmentation, entry model.OwnedAugmentation, reapply bool) {
	p.MergeAugmentationMults(def.Mults)

	if hook, ok := applyHooks[def.Name]; ok && hook(p, entry, reapply) {
		return
	}

	if !reapply {
		if entry.Level < 1 {
			entry.Level = 1
		}
		p.AddOwned(entry)
	}
}

// ReapplyAll recomputes the player's multipliers from scratch: defaults,
// then every owned augmentation in ownership order, then the entropy penalty.
// A repeatable augmentation contributes once per level.
func (a *Aggregator) ReapplyAll(p *model.Player) {
	p.SetAugmentationMults(model.DefaultMultipliers())

	for _, owned := range p.Augmentations() {
		if data.IsRepeatable(owned.Name) {
			for level := 1; level <= owned.Level; level++ {
				a.Apply(p, model.OwnedAugmentation{Name: owned.Name, Level: level}, true)
			}
			continue
		}
		a.Apply(p, owned, true)
	}

	p.ApplyEntropy(p.Entropy())
}
