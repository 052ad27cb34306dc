package model

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultMultipliers(t *testing.T) {
	t.Parallel()

	m := DefaultMultipliers()
	require.Len(t, m, len(AllMultNames()))
	for _, name := range AllMultNames() {
		assert.Equal(t, 1.0, m[name], "multiplier %s", name)
	}
}

func TestMultipliers_Get(t *testing.T) {
	t.Parallel()

	m := Multipliers{MultHacking: 1.5}
	assert.Equal(t, 1.5, m.Get(MultHacking))
	assert.Equal(t, 1.0, m.Get(MultStrength), "missing key must be neutral")

	var nilMults Multipliers
	assert.Equal(t, 1.0, nilMults.Get(MultHacking))
}

func TestMergeMultipliers(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		base    Multipliers
		contrib Multipliers
		want    Multipliers
	}{
		{
			name:    "multiplies mentioned keys",
			base:    Multipliers{MultHacking: 2, MultStrength: 3},
			contrib: Multipliers{MultHacking: 1.5},
			want:    Multipliers{MultHacking: 3, MultStrength: 3},
		},
		{
			name:    "missing base key starts at neutral",
			base:    Multipliers{},
			contrib: Multipliers{MultFactionRep: 1.1},
			want:    Multipliers{MultFactionRep: 1.1},
		},
		{
			name:    "empty contribution is a no-op",
			base:    Multipliers{MultHacking: 1.2},
			contrib: nil,
			want:    Multipliers{MultHacking: 1.2},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := MergeMultipliers(tt.base, tt.contrib)
			require.Len(t, got, len(tt.want))
			for k, v := range tt.want {
				assert.InDelta(t, v, got[k], 1e-12, "key %s", k)
			}
		})
	}
}

func TestMergeMultipliers_DoesNotMutateInputs(t *testing.T) {
	t.Parallel()

	base := Multipliers{MultHacking: 2}
	contrib := Multipliers{MultHacking: 3}
	_ = MergeMultipliers(base, contrib)

	assert.Equal(t, 2.0, base[MultHacking])
	assert.Equal(t, 3.0, contrib[MultHacking])
}

func TestMergeMultipliers_OrderIndependent(t *testing.T) {
	t.Parallel()

	contribs := []Multipliers{
		{MultHacking: 1.1, MultHackingSpeed: 1.03},
		{MultHacking: 1.05, MultStrength: 1.2},
		{MultStrength: 1.1, MultHacknetCost: 0.85},
	}

	forward := DefaultMultipliers()
	for _, c := range contribs {
		forward = MergeMultipliers(forward, c)
	}
	backward := DefaultMultipliers()
	for i := len(contribs) - 1; i >= 0; i-- {
		backward = MergeMultipliers(backward, contribs[i])
	}

	for _, name := range AllMultNames() {
		assert.InDelta(t, forward[name], backward[name], 1e-12, "key %s", name)
	}
	assert.InDelta(t, 1.1*1.05, forward[MultHacking], 1e-12)
	assert.InDelta(t, 1.2*1.1, forward[MultStrength], 1e-12)
}

func TestEntropyPenalty(t *testing.T) {
	t.Parallel()

	zero := EntropyPenalty(0)
	for _, name := range AllMultNames() {
		assert.Equal(t, 1.0, zero[name], "zero stacks must be neutral for %s", name)
	}

	two := EntropyPenalty(2)
	nerf := math.Pow(EntropyEffect, 2)
	assert.InDelta(t, nerf, two[MultHacking], 1e-12)
	assert.InDelta(t, 1/nerf, two[MultHacknetCost], 1e-12, "cost multipliers grow")
}

func TestIsCostMult(t *testing.T) {
	t.Parallel()

	assert.True(t, IsCostMult(MultHacknetLevel))
	assert.False(t, IsCostMult(MultHacking))
	assert.True(t, IsKnownMult(MultBBSuccess))
	assert.False(t, IsKnownMult("luck"))
}
