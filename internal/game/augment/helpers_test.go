package augment

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/udisondev/augsim/internal/data"
	"github.com/udisondev/augsim/internal/game/faction"
	"github.com/udisondev/augsim/internal/model"
)

// recorder captures collaborator calls in order.
type recorder struct {
	calls   []string
	notices []string
}

func (r *recorder) Notify(msg string) {
	r.calls = append(r.calls, "notify")
	r.notices = append(r.notices, msg)
}

func (r *recorder) ToHome()               { r.calls = append(r.calls, "home") }
func (r *recorder) PrestigeAugmentation() { r.calls = append(r.calls, "prestige") }

func (r *recorder) count(call string) int {
	n := 0
	for _, c := range r.calls {
		if c == call {
			n++
		}
	}
	return n
}

// testGroups returns a small deterministic catalog layout:
// A (×1.1 hacking), B (×1.2 hacking, ×1.05 strength), C (×1.3 strength),
// the Congruity Implant and the NeuroFlux Governor.
func testGroups() []Group {
	return []Group{
		{Name: "neuroflux", Build: func() []*model.Augmentation {
			return []*model.Augmentation{data.NewNeuroFluxGovernor()}
		}},
		{Name: "test", Build: func() []*model.Augmentation {
			return []*model.Augmentation{
				{Name: "A", Factions: []string{data.FactionCyberSec}, BaseCost: 100, Mults: model.Multipliers{model.MultHacking: 1.1}},
				{Name: "B", Factions: []string{data.FactionCyberSec, data.FactionNiteSec}, BaseCost: 200, Mults: model.Multipliers{model.MultHacking: 1.2, model.MultStrength: 1.05}},
				{Name: "C", Factions: []string{data.FactionNiteSec}, BaseCost: 300, Mults: model.Multipliers{model.MultStrength: 1.3}},
				{Name: data.CongruityImplant, Factions: []string{data.FactionTheCovenant}, Mults: model.Multipliers{model.MultHacking: 1.05}},
			}
		}},
		{Name: "bladeburners", Faction: data.FactionBladeburners, Build: data.BladeburnerAugmentations},
	}
}

func newTestCatalog(t *testing.T) *Catalog {
	t.Helper()
	c := NewCatalog(faction.NewDefaultRegistry(false, false), nil, testGroups())
	c.Rebuild()
	return c
}

func newTestPlayer(t *testing.T) *model.Player {
	t.Helper()
	p, err := model.NewPlayer(1, "Jump3R", 1e9)
	require.NoError(t, err)
	return p
}
