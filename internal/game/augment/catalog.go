package augment

import (
	"log/slog"
	"slices"
	"time"

	"github.com/udisondev/augsim/internal/data"
	"github.com/udisondev/augsim/internal/game/faction"
	"github.com/udisondev/augsim/internal/model"
)

// UnlockFunc reports whether the augmentation group gated by faction should be
// part of the catalog. It must be free of side effects.
type UnlockFunc func(faction string) bool

// Group is a batch of definitions inserted together by Rebuild.
type Group struct {
	Name string
	// Faction gates the group through the UnlockFunc. Empty means always included.
	Faction string
	Build   func() []*model.Augmentation
}

// Catalog maps augmentation names to their definitions for the current run.
// Not safe for concurrent use.
type Catalog struct {
	factions *faction.Registry
	unlock   UnlockFunc
	groups   []Group

	augs  map[string]*model.Augmentation
	order []string
}

// NewCatalog creates an empty catalog. Call Rebuild to populate it.
// A nil unlock defaults to factions.Exists.
func NewCatalog(factions *faction.Registry, unlock UnlockFunc, groups []Group) *Catalog {
	if unlock == nil {
		unlock = factions.Exists
	}
	return &Catalog{
		factions: factions,
		unlock:   unlock,
		groups:   slices.Clone(groups),
		augs:     make(map[string]*model.Augmentation),
	}
}

// DefaultGroups returns the standard catalog layout: the two singletons, the
// general and Shadows of Anarchy augmentations, extra definitions, then the
// faction-gated Bladeburner and Church of the Machine God sets.
func DefaultGroups(now func() time.Time, extra []*model.Augmentation) []Group {
	if now == nil {
		now = time.Now
	}
	groups := []Group{
		{Name: "neuroflux", Build: func() []*model.Augmentation {
			return []*model.Augmentation{data.NewNeuroFluxGovernor()}
		}},
		{Name: "circadian", Build: func() []*model.Augmentation {
			return []*model.Augmentation{data.NewUnstableCircadianModulator(now())}
		}},
		{Name: "general", Build: data.GeneralAugmentations},
		{Name: "shadows-of-anarchy", Build: data.SoAAugmentations},
	}
	if len(extra) > 0 {
		groups = append(groups, Group{Name: "extra", Build: func() []*model.Augmentation {
			out := make([]*model.Augmentation, 0, len(extra))
			for _, aug := range extra {
				out = append(out, cloneAugmentation(aug))
			}
			return out
		}})
	}
	return append(groups,
		Group{Name: "bladeburners", Faction: data.FactionBladeburners, Build: data.BladeburnerAugmentations},
		Group{Name: "church", Faction: data.FactionChurchOfTheMachineGod, Build: data.ChurchOfTheMachineGodAugmentations},
	)
}

// Rebuild discards every definition and re-derives the catalog from its
// groups. Faction offer lists are cleared first and refilled as definitions
// are inserted. Calling Rebuild twice with unchanged unlock state yields the
// same catalog.
func (c *Catalog) Rebuild() {
	c.factions.ResetAugmentations()
	clear(c.augs)
	c.order = c.order[:0]

	for _, g := range c.groups {
		if g.Faction != "" && !c.unlock(g.Faction) {
			slog.Debug("augmentation group locked", "group", g.Name, "faction", g.Faction)
			continue
		}
		for _, aug := range g.Build() {
			if aug == nil || aug.Name == "" {
				slog.Error("skipping malformed augmentation definition", "group", g.Name)
				continue
			}
			c.insert(aug)
		}
	}

	slog.Info("augmentation catalog rebuilt", "count", len(c.augs))
}

// insert registers aug with its factions and replaces any previous
// definition of the same name.
func (c *Catalog) insert(aug *model.Augmentation) {
	for _, name := range aug.Factions {
		if f := c.factions.Get(name); f != nil {
			f.AddAugmentation(aug.Name)
		}
	}

	if _, ok := c.augs[aug.Name]; ok {
		delete(c.augs, aug.Name)
		c.order = slices.DeleteFunc(c.order, func(n string) bool { return n == aug.Name })
	}
	if data.IsRepeatable(aug.Name) {
		aug.Repeatable = true
	}
	c.augs[aug.Name] = aug
	c.order = append(c.order, aug.Name)
}

// Lookup returns the definition for name.
func (c *Catalog) Lookup(name string) (*model.Augmentation, bool) {
	aug, ok := c.augs[name]
	return aug, ok
}

// Exists reports whether name is in the catalog.
func (c *Catalog) Exists(name string) bool {
	_, ok := c.Lookup(name)
	return ok
}

// Len returns the number of definitions.
func (c *Catalog) Len() int {
	return len(c.augs)
}

// Names returns definition names in insertion order.
func (c *Catalog) Names() []string {
	return slices.Clone(c.order)
}

// All returns every definition in insertion order.
func (c *Catalog) All() []*model.Augmentation {
	out := make([]*model.Augmentation, 0, len(c.order))
	for _, name := range c.order {
		out = append(out, c.augs[name])
	}
	return out
}

// Factions returns the registry the catalog registers offers into.
func (c *Catalog) Factions() *faction.Registry {
	return c.factions
}

func cloneAugmentation(aug *model.Augmentation) *model.Augmentation {
	cp := *aug
	cp.Factions = slices.Clone(aug.Factions)
	cp.PreReqs = slices.Clone(aug.PreReqs)
	cp.Mults = aug.Mults.Clone()
	return &cp
}
