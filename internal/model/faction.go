package model

import "slices"

// Faction is a group that offers augmentations.
// The offered list is rebuilt together with the augmentation catalog.
type Faction struct {
	name          string
	augmentations []string
}

// NewFaction creates a faction with an empty offer list.
func NewFaction(name string) *Faction {
	return &Faction{name: name}
}

// Name returns the faction name.
func (f *Faction) Name() string {
	return f.name
}

// Augmentations returns a copy of the offered augmentation names.
func (f *Faction) Augmentations() []string {
	return slices.Clone(f.augmentations)
}

// OffersAugmentation returns true if the faction offers name.
func (f *Faction) OffersAugmentation(name string) bool {
	return slices.Contains(f.augmentations, name)
}

// AddAugmentation registers name as offered. Duplicates are ignored.
func (f *Faction) AddAugmentation(name string) {
	if f.OffersAugmentation(name) {
		return
	}
	f.augmentations = append(f.augmentations, name)
}

// ResetAugmentations clears the offer list.
func (f *Faction) ResetAugmentations() {
	f.augmentations = nil
}
