package augment

import (
	"math"

	"github.com/udisondev/augsim/internal/model"
)

// MultipleAugMultiplier is the price growth per augmentation already queued.
const MultipleAugMultiplier = 1.9

// sourceFileDiscount is indexed by Source-File 11 level.
var sourceFileDiscount = [...]float64{1, 0.96, 0.94, 0.93}

// BasePriceMultiplier returns the per-queued-augmentation price growth for
// the given Source-File 11 level. Levels outside 0..3 are clamped.
func BasePriceMultiplier(sourceFileLevel int) float64 {
	lvl := min(max(sourceFileLevel, 0), len(sourceFileDiscount)-1)
	return MultipleAugMultiplier * sourceFileDiscount[lvl]
}

// GenericPriceMultiplier returns the price multiplier applied to the next
// purchase when queued augmentations are already waiting for installation.
func GenericPriceMultiplier(sourceFileLevel, queued int) float64 {
	return math.Pow(BasePriceMultiplier(sourceFileLevel), float64(queued))
}

// Price returns the money cost of def for p's current queue.
func Price(def *model.Augmentation, p *model.Player) float64 {
	return def.BaseCost * GenericPriceMultiplier(p.SourceFileLevel(), p.QueuedCount())
}
