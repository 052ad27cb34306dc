// Package faction holds the factions present in the current run.
package faction

import (
	"slices"

	"github.com/udisondev/augsim/internal/data"
	"github.com/udisondev/augsim/internal/model"
)

// Registry maps faction names to factions, in registration order.
type Registry struct {
	factions map[string]*model.Faction
	order    []string
}

// NewRegistry creates a registry with the given factions.
func NewRegistry(names ...string) *Registry {
	r := &Registry{factions: make(map[string]*model.Faction, len(names))}
	for _, name := range names {
		r.Add(name)
	}
	return r
}

// NewDefaultRegistry creates a registry with every base faction plus the
// optional subsystem factions that are unlocked this run.
func NewDefaultRegistry(bladeburners, church bool) *Registry {
	r := NewRegistry(data.BaseFactions...)
	if bladeburners {
		r.Add(data.FactionBladeburners)
	}
	if church {
		r.Add(data.FactionChurchOfTheMachineGod)
	}
	return r
}

// Add registers a faction. Adding an existing name is a no-op.
func (r *Registry) Add(name string) *model.Faction {
	if f, ok := r.factions[name]; ok {
		return f
	}
	f := model.NewFaction(name)
	r.factions[name] = f
	r.order = append(r.order, name)
	return f
}

// Exists reports whether the faction is present this run.
func (r *Registry) Exists(name string) bool {
	_, ok := r.factions[name]
	return ok
}

// Get returns the faction, or nil if it does not exist.
func (r *Registry) Get(name string) *model.Faction {
	return r.factions[name]
}

// Names returns faction names in registration order.
func (r *Registry) Names() []string {
	return slices.Clone(r.order)
}

// All returns every faction in registration order.
func (r *Registry) All() []*model.Faction {
	out := make([]*model.Faction, 0, len(r.order))
	for _, name := range r.order {
		out = append(out, r.factions[name])
	}
	return out
}

// ResetAugmentations clears the offered augmentation list of every faction.
func (r *Registry) ResetAugmentations() {
	for _, f := range r.factions {
		f.ResetAugmentations()
	}
}
