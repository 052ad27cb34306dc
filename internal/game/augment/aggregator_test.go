package augment

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/udisondev/augsim/internal/data"
	"github.com/udisondev/augsim/internal/model"
)

func TestAggregator_ApplyInstall(t *testing.T) {
	t.Parallel()

	agg := NewAggregator(newTestCatalog(t))
	p := newTestPlayer(t)

	require.True(t, agg.Apply(p, model.NewOwnedAugmentation("A"), false))
	assert.True(t, p.HasAugmentation("A"))
	assert.InDelta(t, 1.1, p.Mults()[model.MultHacking], 1e-12)
	assert.Equal(t, 1.0, p.Mults()[model.MultStrength], "untouched multipliers stay neutral")
}

func TestAggregator_ApplyReapplyDoesNotOwn(t *testing.T) {
	t.Parallel()

	agg := NewAggregator(newTestCatalog(t))
	p := newTestPlayer(t)

	require.True(t, agg.Apply(p, model.NewOwnedAugmentation("A"), true))
	assert.False(t, p.HasAugmentation("A"))
	assert.InDelta(t, 1.1, p.Mults()[model.MultHacking], 1e-12)
}

func TestAggregator_ApplyUnknownIsNoOp(t *testing.T) {
	t.Parallel()

	agg := NewAggregator(newTestCatalog(t))
	p := newTestPlayer(t)
	before := p.Mults()

	assert.NotPanics(t, func() {
		assert.False(t, agg.Apply(p, model.NewOwnedAugmentation("Ghost"), false))
	})
	assert.Empty(t, p.Augmentations())
	assert.Equal(t, before, p.Mults())
}

func TestAggregator_ApplyLevelDefaultsToOne(t *testing.T) {
	t.Parallel()

	agg := NewAggregator(newTestCatalog(t))
	p := newTestPlayer(t)

	agg.Apply(p, model.OwnedAugmentation{Name: "A"}, false)
	got, ok := p.OwnedAugmentation("A")
	require.True(t, ok)
	assert.Equal(t, 1, got.Level)
}

func TestAggregator_ReapplyAllIsOrderIndependent(t *testing.T) {
	t.Parallel()

	agg := NewAggregator(newTestCatalog(t))
	orders := [][]string{
		{"A", "B", "C"},
		{"C", "B", "A"},
		{"B", "C", "A"},
	}

	var results []model.Multipliers
	for _, order := range orders {
		p := newTestPlayer(t)
		owned := make([]model.OwnedAugmentation, 0, len(order))
		for _, name := range order {
			owned = append(owned, model.NewOwnedAugmentation(name))
		}
		p.SetLedger(owned, nil)
		agg.ReapplyAll(p)
		results = append(results, p.Mults())
	}

	for _, res := range results {
		assert.InDelta(t, 1.1*1.2, res[model.MultHacking], 1e-12)
		assert.InDelta(t, 1.05*1.3, res[model.MultStrength], 1e-12)
		for _, name := range model.AllMultNames() {
			assert.InDelta(t, results[0][name], res[name], 1e-12, "multiplier %s", name)
		}
	}
}

func TestAggregator_ReapplyAllRecomputesFromScratch(t *testing.T) {
	t.Parallel()

	agg := NewAggregator(newTestCatalog(t))
	p := newTestPlayer(t)
	p.SetLedger([]model.OwnedAugmentation{model.NewOwnedAugmentation("A")}, nil)

	agg.ReapplyAll(p)
	agg.ReapplyAll(p)
	agg.ReapplyAll(p)

	assert.InDelta(t, 1.1, p.Mults()[model.MultHacking], 1e-12, "repeated reapply must not compound")
}

func TestAggregator_ReapplyAllSkipsUnknownOwned(t *testing.T) {
	t.Parallel()

	agg := NewAggregator(newTestCatalog(t))
	p := newTestPlayer(t)
	p.SetLedger([]model.OwnedAugmentation{model.NewOwnedAugmentation("Ghost"), model.NewOwnedAugmentation("A")}, nil)

	agg.ReapplyAll(p)

	assert.InDelta(t, 1.1, p.Mults()[model.MultHacking], 1e-12)
	assert.Len(t, p.Augmentations(), 2, "ledger is left as is")
}

func TestAggregator_ReapplyAllGovernorPerLevel(t *testing.T) {
	t.Parallel()

	agg := NewAggregator(newTestCatalog(t))
	p := newTestPlayer(t)
	p.SetLedger([]model.OwnedAugmentation{{Name: data.NeuroFluxGovernor, Level: 3}}, nil)

	agg.ReapplyAll(p)

	assert.InDelta(t, math.Pow(1.01, 3), p.Mults()[model.MultHacking], 1e-12)
	assert.InDelta(t, math.Pow(0.99, 3), p.Mults()[model.MultHacknetCost], 1e-12)
	assert.Len(t, p.Augmentations(), 1)
}

func TestAggregator_GovernorLevelUpdate(t *testing.T) {
	t.Parallel()

	agg := NewAggregator(newTestCatalog(t))
	p := newTestPlayer(t)

	agg.Apply(p, model.OwnedAugmentation{Name: data.NeuroFluxGovernor, Level: 1}, false)
	agg.Apply(p, model.OwnedAugmentation{Name: data.NeuroFluxGovernor, Level: 2}, false)

	owned := p.Augmentations()
	require.Len(t, owned, 1)
	assert.Equal(t, 2, owned[0].Level)
	assert.InDelta(t, 1.01*1.01, p.Mults()[model.MultHacking], 1e-12, "each level still contributes")
}

func TestAggregator_CongruityPurgesEntropyOnce(t *testing.T) {
	t.Parallel()

	agg := NewAggregator(newTestCatalog(t))
	p := newTestPlayer(t)
	p.ApplyEntropy(5)

	agg.Apply(p, model.NewOwnedAugmentation(data.CongruityImplant), false)
	assert.Zero(t, p.Entropy())
	assert.InDelta(t, 1.05, p.Mults()[model.MultHacking], 1e-12, "penalty is gone after the purge")
	assert.True(t, p.HasAugmentation(data.CongruityImplant))

	p.ApplyEntropy(3)
	agg.ReapplyAll(p)
	assert.Equal(t, 3, p.Entropy(), "reapply must not purge entropy again")
	assert.InDelta(t, 1.05*math.Pow(model.EntropyEffect, 3), p.Mults()[model.MultHacking], 1e-12)
}
