package data

import (
	"slices"
	"time"

	"github.com/udisondev/augsim/internal/model"
)

// Every creator returns freshly allocated definitions so a catalog rebuild
// never shares state with the previous generation.

// NewNeuroFluxGovernor creates the repeatable augmentation.
func NewNeuroFluxGovernor() *model.Augmentation {
	factions := slices.DeleteFunc(slices.Clone(BaseFactions), func(f string) bool {
		return f == FactionShadowsOfAnarchy
	})
	return &model.Augmentation{
		Name:               NeuroFluxGovernor,
		Info:               "A device that is embedded in the back of the neck and slowly improves every aspect of the user.",
		Factions:           factions,
		BaseCost:           750e3,
		BaseRepRequirement: 500,
		Repeatable:         true,
		Mults: model.Multipliers{
			model.MultHackingChance:  1.01,
			model.MultHackingSpeed:   1.01,
			model.MultHackingMoney:   1.01,
			model.MultHackingGrow:    1.01,
			model.MultHacking:        1.01,
			model.MultHackingExp:     1.01,
			model.MultStrength:       1.01,
			model.MultStrengthExp:    1.01,
			model.MultDefense:        1.01,
			model.MultDefenseExp:     1.01,
			model.MultDexterity:      1.01,
			model.MultDexterityExp:   1.01,
			model.MultAgility:        1.01,
			model.MultAgilityExp:     1.01,
			model.MultCharisma:       1.01,
			model.MultCharismaExp:    1.01,
			model.MultCompanyRep:     1.01,
			model.MultFactionRep:     1.01,
			model.MultWorkMoney:      1.01,
			model.MultCrimeSuccess:   1.01,
			model.MultCrimeMoney:     1.01,
			model.MultHacknetMoney:   1.01,
			model.MultHacknetCost:    0.99,
			model.MultHacknetRAMCost: 0.99,
			model.MultHacknetCore:    0.99,
			model.MultHacknetLevel:   0.99,
		},
	}
}

// circadianBonuses rotates daily for the Unstable Circadian Modulator.
var circadianBonuses = []model.Multipliers{
	{model.MultHackingChance: 1.25, model.MultHackingSpeed: 1.1, model.MultHackingMoney: 1.25, model.MultHackingGrow: 1.1},
	{model.MultHacking: 1.15, model.MultHackingExp: 2},
	{model.MultStrength: 1.25, model.MultStrengthExp: 2, model.MultDefense: 1.25, model.MultDefenseExp: 2},
	{model.MultDexterity: 1.25, model.MultDexterityExp: 2, model.MultAgility: 1.25, model.MultAgilityExp: 2},
	{model.MultCharisma: 1.5, model.MultCharismaExp: 2},
	{model.MultHacknetMoney: 1.2, model.MultHacknetCost: 0.85, model.MultHacknetRAMCost: 0.85, model.MultHacknetCore: 0.85, model.MultHacknetLevel: 0.85},
	{model.MultCompanyRep: 1.25, model.MultFactionRep: 1.15, model.MultWorkMoney: 1.7},
	{model.MultCrimeSuccess: 2, model.MultCrimeMoney: 2},
	{model.MultBBMaxStamina: 1.1, model.MultBBStaminaGain: 1.2, model.MultBBAnalysis: 1.15, model.MultBBSuccess: 1.14},
}

// NewUnstableCircadianModulator creates the rotating unique augmentation.
// Its bonus set is picked by the UTC day of now.
func NewUnstableCircadianModulator(now time.Time) *model.Augmentation {
	day := now.UTC().Unix() / int64((24 * time.Hour).Seconds())
	bonus := circadianBonuses[int(day%int64(len(circadianBonuses)))]
	return &model.Augmentation{
		Name:               UnstableCircadianModulator,
		Info:               "An experimental nanotechnology augmentation whose effects shift with the user's sleep cycle.",
		Factions:           []string{FactionSpeakersForTheDead},
		BaseCost:           5e9,
		BaseRepRequirement: 362500,
		Mults:              bonus.Clone(),
	}
}

// GeneralAugmentations creates the always-available faction augmentations.
func GeneralAugmentations() []*model.Augmentation {
	return []*model.Augmentation{
		{
			Name:               "Augmented Targeting I",
			Info:               "A cranial implant that is embedded within the inner ear structures and optic nerves.",
			Factions:           []string{FactionSlumSnakes, FactionTheDarkArmy, FactionTheSyndicate, FactionSector12, FactionIshima},
			BaseCost:           15e6,
			BaseRepRequirement: 5e3,
			Mults:              model.Multipliers{model.MultDexterity: 1.1},
		},
		{
			Name:               "Augmented Targeting II",
			Info:               "Upgraded version of the Augmented Targeting I augmentation.",
			Factions:           []string{FactionTheDarkArmy, FactionTheSyndicate, FactionSector12},
			BaseCost:           42.5e6,
			BaseRepRequirement: 8.75e3,
			PreReqs:            []string{"Augmented Targeting I"},
			Mults:              model.Multipliers{model.MultDexterity: 1.2},
		},
		{
			Name:               "Wired Reflexes",
			Info:               "Synthetic nerve-enhancements are injected into all major parts of the somatic nervous system.",
			Factions:           []string{FactionTianDiHui, FactionSlumSnakes, FactionSector12, FactionVolhaven, FactionAevum, FactionIshima, FactionTheSyndicate},
			BaseCost:           2.5e6,
			BaseRepRequirement: 1.25e3,
			Mults:              model.Multipliers{model.MultAgility: 1.05, model.MultDexterity: 1.05},
		},
		{
			Name:               "Combat Rib I",
			Info:               "The rib cage is augmented to continuously release boosters into the bloodstream.",
			Factions:           []string{FactionSlumSnakes, FactionTheDarkArmy, FactionTheSyndicate, FactionVolhaven, FactionIshima},
			BaseCost:           23.75e6,
			BaseRepRequirement: 7.5e3,
			Mults:              model.Multipliers{model.MultStrength: 1.1, model.MultDefense: 1.1},
		},
		{
			Name:               "Nanofiber Weave",
			Info:               "Synthetic nanofibers are woven into the skin's extracellular matrix.",
			Factions:           []string{FactionTheDarkArmy, FactionTheSyndicate, FactionMegaCorp, FactionTetrads},
			BaseCost:           125e6,
			BaseRepRequirement: 37.5e3,
			Mults:              model.Multipliers{model.MultStrength: 1.2, model.MultDefense: 1.2},
		},
		{
			Name:               "Speech Processor Implant",
			Info:               "A cochlear implant with an embedded computer that analyzes incoming speech.",
			Factions:           []string{FactionTianDiHui, FactionChongqing, FactionSector12, FactionNewTokyo, FactionAevum, FactionIshima, FactionVolhaven, FactionSpeakersForTheDead},
			BaseCost:           50e6,
			BaseRepRequirement: 7.5e3,
			Mults:              model.Multipliers{model.MultCharisma: 1.2},
		},
		{
			Name:               "ADR-V1 Pheromone Gene",
			Info:               "A gene that increases the release of pheromones.",
			Factions:           []string{FactionTianDiHui, FactionTheSyndicate, FactionNetburners, FactionMegaCorp},
			BaseCost:           17.5e6,
			BaseRepRequirement: 3.75e3,
			Mults:              model.Multipliers{model.MultCompanyRep: 1.1, model.MultFactionRep: 1.1},
		},
		{
			Name:               "Synaptic Enhancement Implant",
			Info:               "A small cranial implant that continuously uses weak electrical signals to stimulate the brain.",
			Factions:           []string{FactionCyberSec, FactionAevum},
			BaseCost:           7.5e6,
			BaseRepRequirement: 2e3,
			Mults:              model.Multipliers{model.MultHackingSpeed: 1.03},
		},
		{
			Name:               "Neurotrainer I",
			Info:               "A decentralized cranial implant that improves the brain's ability to learn.",
			Factions:           []string{FactionCyberSec, FactionAevum},
			BaseCost:           4e6,
			BaseRepRequirement: 1e3,
			Mults: model.Multipliers{
				model.MultHackingExp:   1.1,
				model.MultStrengthExp:  1.1,
				model.MultDefenseExp:   1.1,
				model.MultDexterityExp: 1.1,
				model.MultAgilityExp:   1.1,
				model.MultCharismaExp:  1.1,
			},
		},
		{
			Name:               "BitWire",
			Info:               "A small brain implant that embeds a thin film of conductive wires.",
			Factions:           []string{FactionCyberSec, FactionNiteSec},
			BaseCost:           10e6,
			BaseRepRequirement: 3.75e3,
			Mults:              model.Multipliers{model.MultHacking: 1.05},
		},
		{
			Name:               "Cranial Signal Processors - Gen I",
			Info:               "The first generation of Cranial Signal Processors.",
			Factions:           []string{FactionCyberSec, FactionNiteSec},
			BaseCost:           70e6,
			BaseRepRequirement: 10e3,
			Mults:              model.Multipliers{model.MultHackingSpeed: 1.01, model.MultHacking: 1.05},
		},
		{
			Name:               "Cranial Signal Processors - Gen II",
			Info:               "The second generation of Cranial Signal Processors.",
			Factions:           []string{FactionCyberSec, FactionNiteSec},
			BaseCost:           125e6,
			BaseRepRequirement: 18.75e3,
			PreReqs:            []string{"Cranial Signal Processors - Gen I"},
			Mults:              model.Multipliers{model.MultHackingSpeed: 1.02, model.MultHackingChance: 1.05, model.MultHacking: 1.07},
		},
		{
			Name:               "Hacknet Node CPU Architecture Neural-Upload",
			Info:               "Uploads the architecture of a Hacknet Node's CPU into the brain.",
			Factions:           []string{FactionNetburners},
			BaseCost:           11e6,
			BaseRepRequirement: 3.75e3,
			Mults:              model.Multipliers{model.MultHacknetMoney: 1.15, model.MultHacknetCost: 0.85},
		},
		{
			Name:               "Hacknet Node Cache Architecture Neural-Upload",
			Info:               "Uploads the architecture of a Hacknet Node's main-memory cache into the brain.",
			Factions:           []string{FactionNetburners},
			BaseCost:           5.5e6,
			BaseRepRequirement: 2.5e3,
			Mults:              model.Multipliers{model.MultHacknetMoney: 1.1, model.MultHacknetLevel: 0.85},
		},
		{
			Name:               "BitRunners Neurolink",
			Info:               "A brain implant developed by the BitRunners that enhances hacking.",
			Factions:           []string{FactionBitRunners},
			BaseCost:           4.375e9,
			BaseRepRequirement: 875e3,
			Mults:              model.Multipliers{model.MultHackingSpeed: 1.05, model.MultHackingChance: 1.1, model.MultHacking: 1.15, model.MultHackingExp: 1.2},
		},
		{
			Name:               "The Black Hand",
			Info:               "A highly advanced bionic hand.",
			Factions:           []string{FactionTheBlackHand},
			BaseCost:           550e6,
			BaseRepRequirement: 100e3,
			Mults:              model.Multipliers{model.MultStrength: 1.15, model.MultDexterity: 1.15, model.MultHacking: 1.1, model.MultHackingSpeed: 1.02, model.MultHackingMoney: 1.1},
		},
		{
			Name:               "ECorp HVMind Implant",
			Info:               "A brain implant developed by ECorp.",
			Factions:           []string{FactionECorp},
			BaseCost:           5.5e9,
			BaseRepRequirement: 1.5e6,
			Mults:              model.Multipliers{model.MultHackingGrow: 3},
		},
		{
			Name:               "CordiARC Fusion Reactor",
			Info:               "The thousands of nanobots in this implant act as a power source.",
			Factions:           []string{FactionMegaCorp},
			BaseCost:           5e9,
			BaseRepRequirement: 1.125e6,
			Mults: model.Multipliers{
				model.MultStrength: 1.35, model.MultDefense: 1.35, model.MultDexterity: 1.35, model.MultAgility: 1.35,
				model.MultStrengthExp: 1.35, model.MultDefenseExp: 1.35, model.MultDexterityExp: 1.35, model.MultAgilityExp: 1.35,
			},
		},
		{
			Name:               CongruityImplant,
			Info:               "A brain implant that purges entropy from the user's augmentation stack.",
			Factions:           []string{FactionTheCovenant},
			BaseCost:           150e12,
			BaseRepRequirement: 500e3,
			Mults:              model.Multipliers{model.MultHacking: 1.05, model.MultHackingExp: 1.05},
		},
		{
			Name:               TheRedPill,
			Info:               "It's time to leave the cave.",
			Factions:           []string{FactionDaedalus},
			BaseCost:           0,
			BaseRepRequirement: 2.5e6,
		},
		{
			Name:               "SPTN-97 Gene Modification",
			Info:               "A gene modification that activates dormant genes.",
			Factions:           []string{FactionTheCovenant},
			BaseCost:           4.875e9,
			BaseRepRequirement: 1.25e6,
			Mults: model.Multipliers{
				model.MultHacking: 1.15, model.MultStrength: 1.75, model.MultDefense: 1.75,
				model.MultDexterity: 1.75, model.MultAgility: 1.75,
			},
		},
		{
			Name:               "QLink",
			Info:               "A brain implant that wirelessly connects the user to the Illuminati's quantum supercomputer.",
			Factions:           []string{FactionIlluminati},
			BaseCost:           25e12,
			BaseRepRequirement: 1.875e6,
			Mults:              model.Multipliers{model.MultHacking: 1.75, model.MultHackingSpeed: 2, model.MultHackingChance: 2.5, model.MultHackingMoney: 4},
		},
	}
}

// SoAAugmentations creates the Shadows of Anarchy augmentations.
func SoAAugmentations() []*model.Augmentation {
	soa := []string{FactionShadowsOfAnarchy}
	return []*model.Augmentation{
		{
			Name:               "SoA - Might of Ares",
			Info:               "Extra-sensory perception that reveals the weak points of any opponent.",
			Factions:           soa,
			BaseCost:           1e6,
			BaseRepRequirement: 1e4,
			Mults:              model.Multipliers{model.MultStrength: 1.05},
		},
		{
			Name:               "SoA - Wisdom of Athena",
			Info:               "A connection to the knowledge of the ancients.",
			Factions:           slices.Clone(soa),
			BaseCost:           1e6,
			BaseRepRequirement: 1e4,
			Mults:              model.Multipliers{model.MultHackingExp: 1.05},
		},
		{
			Name:               "SoA - Hunt of Artemis",
			Info:               "Sharpened senses for the chase.",
			Factions:           slices.Clone(soa),
			BaseCost:           1e6,
			BaseRepRequirement: 1e4,
			Mults:              model.Multipliers{model.MultAgility: 1.05},
		},
		{
			Name:               "SoA - phyzical WKS harmonizer",
			Info:               "Rewires the motor cortex to harmonize with infiltration work.",
			Factions:           slices.Clone(soa),
			BaseCost:           1e6,
			BaseRepRequirement: 1e4,
			Mults:              model.Multipliers{model.MultDexterity: 1.05},
		},
	}
}

// BladeburnerAugmentations creates augmentations only sold while the
// Bladeburners faction exists.
func BladeburnerAugmentations() []*model.Augmentation {
	bb := []string{FactionBladeburners}
	return []*model.Augmentation{
		{
			Name:               "EsperTech Bladeburner Eyewear",
			Info:               "Ballistic-grade protective and retractable eyewear.",
			Factions:           bb,
			BaseCost:           165e6,
			BaseRepRequirement: 1.25e3,
			Mults:              model.Multipliers{model.MultBBSuccess: 1.03, model.MultDexterity: 1.05},
		},
		{
			Name:               "EMS-4 Recombination",
			Info:               "A DNA recombination of the EMS-4 gene.",
			Factions:           slices.Clone(bb),
			BaseCost:           275e6,
			BaseRepRequirement: 2.5e3,
			Mults:              model.Multipliers{model.MultBBSuccess: 1.03, model.MultBBAnalysis: 1.05, model.MultBBStaminaGain: 1.02},
		},
		{
			Name:               "ORION-MKIV Neural Processor",
			Info:               "A neural processor that sits in the back of the head.",
			Factions:           slices.Clone(bb),
			BaseCost:           550e6,
			BaseRepRequirement: 5e3,
			Mults:              model.Multipliers{model.MultBBSuccess: 1.09, model.MultBBMaxStamina: 1.1, model.MultBBAnalysis: 1.1},
		},
		{
			Name:               "Hyperion Plasma Cannon V1",
			Info:               "A pair of mini plasma cannons embedded into the hands.",
			Factions:           slices.Clone(bb),
			BaseCost:           2.75e9,
			BaseRepRequirement: 12.5e3,
			Mults:              model.Multipliers{model.MultBBSuccess: 1.06},
		},
		{
			Name:               "Hyperion Plasma Cannon V2",
			Info:               "An upgraded pair of mini plasma cannons.",
			Factions:           slices.Clone(bb),
			BaseCost:           5.5e9,
			BaseRepRequirement: 25e3,
			PreReqs:            []string{"Hyperion Plasma Cannon V1"},
			Mults:              model.Multipliers{model.MultBBSuccess: 1.08},
		},
	}
}

// ChurchOfTheMachineGodAugmentations creates the Stanek augmentations, only
// sold while the Church of the Machine God exists.
func ChurchOfTheMachineGodAugmentations() []*model.Augmentation {
	church := []string{FactionChurchOfTheMachineGod}
	return []*model.Augmentation{
		{
			Name:     "Stanek's Gift - Genesis",
			Info:     "Allows the user to project fragments onto Stanek's Gift at the cost of a slight weakening.",
			Factions: church,
			Mults: model.Multipliers{
				model.MultHacking: 0.9, model.MultStrength: 0.9, model.MultDefense: 0.9,
				model.MultDexterity: 0.9, model.MultAgility: 0.9, model.MultCharisma: 0.9,
			},
		},
		{
			Name:               "Stanek's Gift - Awakening",
			Info:               "The penalty of Stanek's Gift is reduced.",
			Factions:           slices.Clone(church),
			BaseCost:           1e9,
			BaseRepRequirement: 1e6,
			PreReqs:            []string{"Stanek's Gift - Genesis"},
			Mults: model.Multipliers{
				model.MultHacking: 1.05, model.MultStrength: 1.05, model.MultDefense: 1.05,
				model.MultDexterity: 1.05, model.MultAgility: 1.05, model.MultCharisma: 1.05,
			},
		},
		{
			Name:               "Stanek's Gift - Serenity",
			Info:               "The penalty of Stanek's Gift is removed.",
			Factions:           slices.Clone(church),
			BaseCost:           1e9,
			BaseRepRequirement: 1e8,
			PreReqs:            []string{"Stanek's Gift - Awakening"},
			Mults: model.Multipliers{
				model.MultHacking: 1.05, model.MultStrength: 1.05, model.MultDefense: 1.05,
				model.MultDexterity: 1.05, model.MultAgility: 1.05, model.MultCharisma: 1.05,
			},
		},
	}
}
