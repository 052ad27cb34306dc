package augment

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/udisondev/augsim/internal/model"
)

func TestBasePriceMultiplier(t *testing.T) {
	t.Parallel()

	tests := []struct {
		level int
		want  float64
	}{
		{-1, 1.9},
		{0, 1.9},
		{1, 1.9 * 0.96},
		{2, 1.9 * 0.94},
		{3, 1.9 * 0.93},
		{4, 1.9 * 0.93},
	}
	for _, tt := range tests {
		assert.InDelta(t, tt.want, BasePriceMultiplier(tt.level), 1e-12, "level %d", tt.level)
	}
}

func TestGenericPriceMultiplier(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 1.0, GenericPriceMultiplier(0, 0))
	assert.InDelta(t, 1.9*1.9, GenericPriceMultiplier(0, 2), 1e-12)
	assert.InDelta(t, (1.9*0.96)*(1.9*0.96)*(1.9*0.96), GenericPriceMultiplier(1, 3), 1e-12)
}

func TestPrice(t *testing.T) {
	t.Parallel()

	p := newTestPlayer(t)
	def := &model.Augmentation{Name: "A", BaseCost: 1000}
	assert.InDelta(t, 1000, Price(def, p), 1e-9)

	p.QueueAugmentation(model.NewOwnedAugmentation("B"))
	assert.InDelta(t, 1900, Price(def, p), 1e-9)

	p.SetSourceFileLevel(3)
	assert.InDelta(t, 1000*1.9*0.93, Price(def, p), 1e-9)
}
