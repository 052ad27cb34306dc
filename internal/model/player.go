package model

import (
	"fmt"
	"slices"
	"time"
)

// Experience holds the player's raw skill experience.
type Experience struct {
	Hacking   float64
	Strength  float64
	Defense   float64
	Dexterity float64
	Agility   float64
	Charisma  float64
}

// Player — игрок и его augmentation ledger.
//
// Owned and queued lists reference catalog definitions by name only, so the
// ledger can be persisted as name+level pairs and replayed against a freshly
// built catalog. Player is not safe for concurrent use; a session serialises
// access to it.
type Player struct {
	id   int64
	name string

	money      float64
	experience Experience
	createdAt  time.Time

	// Source-File 11 level, lowers the augmentation price multiplier.
	sourceFile11 int

	playtimeSinceLastAug time.Duration
	totalPlaytime        time.Duration

	augmentations []OwnedAugmentation
	queued        []OwnedAugmentation

	// augMults is the fold of every owned augmentation; mults is augMults
	// with the entropy penalty applied.
	augMults Multipliers
	mults    Multipliers
	entropy  int
}

// NewPlayer creates a player with neutral multipliers and an empty ledger.
func NewPlayer(id int64, name string, money float64) (*Player, error) {
	if len(name) < 2 {
		return nil, fmt.Errorf("name must be at least 2 characters, got %q", name)
	}
	if money < 0 {
		return nil, fmt.Errorf("money must not be negative, got %f", money)
	}

	p := &Player{
		id:        id,
		name:      name,
		money:     money,
		createdAt: time.Now(),
		augMults:  DefaultMultipliers(),
	}
	p.refreshMults()
	return p, nil
}

func (p *Player) ID() int64            { return p.id }
func (p *Player) SetID(id int64)       { p.id = id }
func (p *Player) Name() string         { return p.name }
func (p *Player) CreatedAt() time.Time { return p.createdAt }

// SetCreatedAt restores the creation time (for DB restore).
func (p *Player) SetCreatedAt(t time.Time) { p.createdAt = t }

// Money returns the current money balance.
func (p *Player) Money() float64 { return p.money }

// SetMoney overwrites the money balance.
func (p *Player) SetMoney(amount float64) { p.money = amount }

// CanAfford returns true if the player holds at least cost.
func (p *Player) CanAfford(cost float64) bool { return p.money >= cost }

// GainMoney adds amount to the balance.
func (p *Player) GainMoney(amount float64) { p.money += amount }

// LoseMoney subtracts amount from the balance.
func (p *Player) LoseMoney(amount float64) error {
	if !p.CanAfford(amount) {
		return fmt.Errorf("cannot afford %.0f with %.0f", amount, p.money)
	}
	p.money -= amount
	return nil
}

// Experience returns the raw skill experience.
func (p *Player) Experience() Experience { return p.experience }

// SetExperience overwrites the raw skill experience.
func (p *Player) SetExperience(exp Experience) { p.experience = exp }

// SourceFileLevel returns the Source-File 11 level.
func (p *Player) SourceFileLevel() int { return p.sourceFile11 }

// SetSourceFileLevel sets the Source-File 11 level.
func (p *Player) SetSourceFileLevel(level int) { p.sourceFile11 = level }

// PlaytimeSinceLastAug returns playtime since the last installation.
func (p *Player) PlaytimeSinceLastAug() time.Duration { return p.playtimeSinceLastAug }

// TotalPlaytime returns the overall playtime.
func (p *Player) TotalPlaytime() time.Duration { return p.totalPlaytime }

// AddPlaytime advances both playtime counters.
func (p *Player) AddPlaytime(d time.Duration) {
	p.playtimeSinceLastAug += d
	p.totalPlaytime += d
}

// SetPlaytime restores both playtime counters (for DB restore).
func (p *Player) SetPlaytime(sinceLastAug, total time.Duration) {
	p.playtimeSinceLastAug = sinceLastAug
	p.totalPlaytime = total
}

// ResetPlaytimeSinceLastAug zeroes the since-last-installation counter.
func (p *Player) ResetPlaytimeSinceLastAug() { p.playtimeSinceLastAug = 0 }

// Augmentations returns a copy of the owned list in ownership order.
func (p *Player) Augmentations() []OwnedAugmentation {
	return slices.Clone(p.augmentations)
}

// QueuedAugmentations returns a copy of the queued list in purchase order.
func (p *Player) QueuedAugmentations() []OwnedAugmentation {
	return slices.Clone(p.queued)
}

// QueuedCount returns the number of queued entries.
func (p *Player) QueuedCount() int { return len(p.queued) }

// HasAugmentation returns true if name is owned (installed).
func (p *Player) HasAugmentation(name string) bool {
	_, ok := p.OwnedAugmentation(name)
	return ok
}

// OwnedAugmentation returns the owned entry for name.
func (p *Player) OwnedAugmentation(name string) (OwnedAugmentation, bool) {
	i := slices.IndexFunc(p.augmentations, func(a OwnedAugmentation) bool { return a.Name == name })
	if i < 0 {
		return OwnedAugmentation{}, false
	}
	return p.augmentations[i], true
}

// IsQueued returns true if at least one queued entry has name.
func (p *Player) IsQueued(name string) bool {
	return slices.ContainsFunc(p.queued, func(a OwnedAugmentation) bool { return a.Name == name })
}

// CountQueued returns how many queued entries have name.
func (p *Player) CountQueued(name string) int {
	n := 0
	for _, a := range p.queued {
		if a.Name == name {
			n++
		}
	}
	return n
}

// QueueAugmentation appends entry to the queue.
// Duplicate prevention is the purchase flow's job.
func (p *Player) QueueAugmentation(entry OwnedAugmentation) {
	p.queued = append(p.queued, entry)
}

// ClearQueue drops every queued entry.
func (p *Player) ClearQueue() { p.queued = nil }

// AddOwned appends entry to the owned list.
func (p *Player) AddOwned(entry OwnedAugmentation) {
	p.augmentations = append(p.augmentations, entry)
}

// SetOwnedLevel updates the level of the owned entry with name.
// Returns false if name is not owned.
func (p *Player) SetOwnedLevel(name string, level int) bool {
	i := slices.IndexFunc(p.augmentations, func(a OwnedAugmentation) bool { return a.Name == name })
	if i < 0 {
		return false
	}
	p.augmentations[i].Level = level
	return true
}

// SetLedger replaces both lists (for DB restore).
// Multipliers are not touched; the caller re-runs aggregation.
func (p *Player) SetLedger(owned, queued []OwnedAugmentation) {
	p.augmentations = slices.Clone(owned)
	p.queued = slices.Clone(queued)
}

// Mults returns a copy of the effective multipliers (entropy applied).
func (p *Player) Mults() Multipliers { return p.mults.Clone() }

// AugmentationMults returns a copy of the augmentation fold before entropy.
func (p *Player) AugmentationMults() Multipliers { return p.augMults.Clone() }

// SetAugmentationMults replaces the augmentation fold.
func (p *Player) SetAugmentationMults(m Multipliers) {
	p.augMults = m.Clone()
	p.refreshMults()
}

// MergeAugmentationMults folds contrib into the augmentation multipliers.
func (p *Player) MergeAugmentationMults(contrib Multipliers) {
	p.augMults = MergeMultipliers(p.augMults, contrib)
	p.refreshMults()
}

// Entropy returns the entropy stack count.
func (p *Player) Entropy() int { return p.entropy }

// SetEntropy sets the entropy stack count without re-deriving multipliers.
func (p *Player) SetEntropy(stacks int) { p.entropy = stacks }

// ApplyEntropy sets the entropy stack count and re-derives the effective
// multipliers with its penalty.
func (p *Player) ApplyEntropy(stacks int) {
	if stacks < 0 {
		stacks = 0
	}
	p.entropy = stacks
	p.refreshMults()
}

func (p *Player) refreshMults() {
	if p.entropy == 0 {
		p.mults = p.augMults.Clone()
		return
	}
	p.mults = MergeMultipliers(p.augMults, EntropyPenalty(p.entropy))
}
