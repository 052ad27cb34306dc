package model

import (
	"maps"
	"math"
	"slices"
)

// MultName identifies a player stat multiplier.
type MultName string

const (
	MultHackingChance  MultName = "hacking_chance"
	MultHackingSpeed   MultName = "hacking_speed"
	MultHackingMoney   MultName = "hacking_money"
	MultHackingGrow    MultName = "hacking_grow"
	MultHacking        MultName = "hacking"
	MultHackingExp     MultName = "hacking_exp"
	MultStrength       MultName = "strength"
	MultStrengthExp    MultName = "strength_exp"
	MultDefense        MultName = "defense"
	MultDefenseExp     MultName = "defense_exp"
	MultDexterity      MultName = "dexterity"
	MultDexterityExp   MultName = "dexterity_exp"
	MultAgility        MultName = "agility"
	MultAgilityExp     MultName = "agility_exp"
	MultCharisma       MultName = "charisma"
	MultCharismaExp    MultName = "charisma_exp"
	MultHacknetMoney   MultName = "hacknet_node_money"
	MultHacknetCost    MultName = "hacknet_node_purchase_cost"
	MultHacknetRAMCost MultName = "hacknet_node_ram_cost"
	MultHacknetCore    MultName = "hacknet_node_core_cost"
	MultHacknetLevel   MultName = "hacknet_node_level_cost"
	MultCompanyRep     MultName = "company_rep"
	MultFactionRep     MultName = "faction_rep"
	MultWorkMoney      MultName = "work_money"
	MultCrimeSuccess   MultName = "crime_success"
	MultCrimeMoney     MultName = "crime_money"
	MultBBMaxStamina   MultName = "bladeburner_max_stamina"
	MultBBStaminaGain  MultName = "bladeburner_stamina_gain"
	MultBBAnalysis     MultName = "bladeburner_analysis"
	MultBBSuccess      MultName = "bladeburner_success_chance"
)

// EntropyEffect is the per-stack factor entropy applies to every multiplier.
const EntropyEffect = 0.98

// allMults lists every known multiplier in display order.
var allMults = []MultName{
	MultHackingChance, MultHackingSpeed, MultHackingMoney, MultHackingGrow,
	MultHacking, MultHackingExp,
	MultStrength, MultStrengthExp, MultDefense, MultDefenseExp,
	MultDexterity, MultDexterityExp, MultAgility, MultAgilityExp,
	MultCharisma, MultCharismaExp,
	MultHacknetMoney, MultHacknetCost, MultHacknetRAMCost, MultHacknetCore, MultHacknetLevel,
	MultCompanyRep, MultFactionRep, MultWorkMoney, MultCrimeSuccess, MultCrimeMoney,
	MultBBMaxStamina, MultBBStaminaGain, MultBBAnalysis, MultBBSuccess,
}

// costMults are multipliers where a lower value is a bonus.
var costMults = map[MultName]struct{}{
	MultHacknetCost:    {},
	MultHacknetRAMCost: {},
	MultHacknetCore:    {},
	MultHacknetLevel:   {},
}

// AllMultNames returns every known multiplier name in display order.
func AllMultNames() []MultName {
	return slices.Clone(allMults)
}

// IsKnownMult reports whether name is a known multiplier.
func IsKnownMult(name MultName) bool {
	return slices.Contains(allMults, name)
}

// IsCostMult reports whether a lower value of name is beneficial.
func IsCostMult(name MultName) bool {
	_, ok := costMults[name]
	return ok
}

// Multipliers maps a multiplier name to its factor.
// A missing key is neutral (1).
type Multipliers map[MultName]float64

// DefaultMultipliers returns the neutral multiplier set with every known name at 1.
func DefaultMultipliers() Multipliers {
	m := make(Multipliers, len(allMults))
	for _, name := range allMults {
		m[name] = 1
	}
	return m
}

// Get returns the factor for name, 1 if absent.
func (m Multipliers) Get(name MultName) float64 {
	if v, ok := m[name]; ok {
		return v
	}
	return 1
}

// Clone returns an independent copy.
func (m Multipliers) Clone() Multipliers {
	if m == nil {
		return Multipliers{}
	}
	return maps.Clone(m)
}

// MergeMultipliers returns a new set where every key present in contrib
// is multiplied into base. Keys not mentioned in contrib are left unchanged.
// Neither argument is modified.
func MergeMultipliers(base, contrib Multipliers) Multipliers {
	out := base.Clone()
	for name, factor := range contrib {
		out[name] = out.Get(name) * factor
	}
	return out
}

// EntropyPenalty returns the multiplier set applied for the given entropy stacks.
// Cost multipliers grow while every other multiplier shrinks.
func EntropyPenalty(stacks int) Multipliers {
	nerf := math.Pow(EntropyEffect, float64(stacks))
	m := make(Multipliers, len(allMults))
	for _, name := range allMults {
		if IsCostMult(name) {
			m[name] = 1 / nerf
			continue
		}
		m[name] = nerf
	}
	return m
}
