package data

// Augmentation names referenced by game logic.
const (
	NeuroFluxGovernor          = "NeuroFlux Governor"
	UnstableCircadianModulator = "Unstable Circadian Modulator"
	CongruityImplant           = "nickofolas Congruity Implant"
	TheRedPill                 = "The Red Pill"
)

// Faction names.
const (
	FactionCyberSec              = "CyberSec"
	FactionTianDiHui             = "Tian Di Hui"
	FactionNetburners            = "Netburners"
	FactionSector12              = "Sector-12"
	FactionAevum                 = "Aevum"
	FactionChongqing             = "Chongqing"
	FactionNewTokyo              = "New Tokyo"
	FactionIshima                = "Ishima"
	FactionVolhaven              = "Volhaven"
	FactionNiteSec               = "NiteSec"
	FactionTheBlackHand          = "The Black Hand"
	FactionBitRunners            = "BitRunners"
	FactionECorp                 = "ECorp"
	FactionMegaCorp              = "MegaCorp"
	FactionDaedalus              = "Daedalus"
	FactionTheCovenant           = "The Covenant"
	FactionIlluminati            = "Illuminati"
	FactionSlumSnakes            = "Slum Snakes"
	FactionTetrads               = "Tetrads"
	FactionTheSyndicate          = "The Syndicate"
	FactionTheDarkArmy           = "The Dark Army"
	FactionSpeakersForTheDead    = "Speakers for the Dead"
	FactionShadowsOfAnarchy      = "Shadows of Anarchy"
	FactionBladeburners          = "Bladeburners"
	FactionChurchOfTheMachineGod = "Church of the Machine God"
)

// BaseFactions are present in every run.
// Bladeburners and Church of the Machine God only exist when their
// subsystem is unlocked.
var BaseFactions = []string{
	FactionCyberSec, FactionTianDiHui, FactionNetburners,
	FactionSector12, FactionAevum, FactionChongqing, FactionNewTokyo, FactionIshima, FactionVolhaven,
	FactionNiteSec, FactionTheBlackHand, FactionBitRunners,
	FactionECorp, FactionMegaCorp,
	FactionDaedalus, FactionTheCovenant, FactionIlluminati,
	FactionSlumSnakes, FactionTetrads, FactionTheSyndicate, FactionTheDarkArmy, FactionSpeakersForTheDead,
	FactionShadowsOfAnarchy,
}

// IsRepeatable returns true if name can be owned at increasing levels.
// Only the NeuroFlux Governor is repeatable.
func IsRepeatable(name string) bool {
	return name == NeuroFluxGovernor
}
