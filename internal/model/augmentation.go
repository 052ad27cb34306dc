package model

import "slices"

// Augmentation is a catalog entry: an unlockable upgrade contributing
// multiplicative bonuses to player multipliers.
//
// Definitions are shared and treated as read-only once they are in a catalog;
// a rebuild replaces them instead of editing them.
type Augmentation struct {
	Name               string      `yaml:"name"`
	Info               string      `yaml:"info"`
	Factions           []string    `yaml:"factions"`
	BaseCost           float64     `yaml:"base_cost"`
	BaseRepRequirement float64     `yaml:"rep_requirement"`
	PreReqs            []string    `yaml:"prereqs"`
	Mults              Multipliers `yaml:"mults"`
	Repeatable         bool        `yaml:"-"`
}

// IsOfferedBy returns true if faction sells this augmentation.
func (a *Augmentation) IsOfferedBy(faction string) bool {
	return slices.Contains(a.Factions, faction)
}

// OwnedAugmentation is a ledger entry referencing a catalog definition by name.
// Level is only meaningful for the repeatable augmentation.
type OwnedAugmentation struct {
	Name  string `yaml:"name" json:"name"`
	Level int    `yaml:"level" json:"level"`
}

// NewOwnedAugmentation returns a level-1 entry.
func NewOwnedAugmentation(name string) OwnedAugmentation {
	return OwnedAugmentation{Name: name, Level: 1}
}
