package session

import (
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/udisondev/augsim/internal/config"
	"github.com/udisondev/augsim/internal/data"
	"github.com/udisondev/augsim/internal/game/augment"
	"github.com/udisondev/augsim/internal/model"
)

var fixedClock = func() time.Time { return time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC) }

func testAugmentations() []*model.Augmentation {
	return []*model.Augmentation{
		{
			Name:     "Augmentation A",
			Factions: []string{data.FactionCyberSec},
			BaseCost: 100,
			Mults:    model.Multipliers{model.MultHacking: 1.1},
		},
	}
}

type notices struct {
	msgs  []string
	homes int
}

func (n *notices) Notify(msg string) { n.msgs = append(n.msgs, msg) }
func (n *notices) ToHome()           { n.homes++ }

func newTestSession(t *testing.T, cfg config.Sim, money float64) (*Session, *notices) {
	t.Helper()

	p, err := model.NewPlayer(1, "Jump3R", money)
	require.NoError(t, err)

	n := &notices{}
	s, err := New(cfg, p, n, n, WithClock(fixedClock), WithExtraAugmentations(testAugmentations()))
	require.NoError(t, err)
	s.Init()
	return s, n
}

func TestSession_WorkedExample(t *testing.T) {
	t.Parallel()

	s, n := newTestSession(t, config.DefaultSim(), 1e9)

	_, err := s.Purchase("Augmentation A")
	require.NoError(t, err)
	first, err := s.Purchase(data.NeuroFluxGovernor)
	require.NoError(t, err)
	second, err := s.Purchase(data.NeuroFluxGovernor)
	require.NoError(t, err)
	assert.Equal(t, 1, first.Level)
	assert.Equal(t, 2, second.Level)

	res, ok := s.Install(false)
	require.True(t, ok)
	assert.Equal(t, "Augmentation A\nNeuroFlux Governor - 2\n", res.Summary)

	p := s.Player()
	assert.Equal(t, []model.OwnedAugmentation{
		{Name: "Augmentation A", Level: 1},
		{Name: data.NeuroFluxGovernor, Level: 2},
	}, p.Augmentations())
	assert.Zero(t, p.QueuedCount())
	assert.Equal(t, config.DefaultSim().StartingMoney, p.Money(), "prestige resets money")
	assert.InDelta(t, 1.1*1.01*1.01, p.Mults()[model.MultHacking], 1e-12)

	require.Len(t, n.msgs, 1)
	assert.Equal(t, 1, n.homes)
}

func TestSession_InstallEmptyQueue(t *testing.T) {
	t.Parallel()

	s, n := newTestSession(t, config.DefaultSim(), 500)

	_, ok := s.Install(false)
	assert.False(t, ok)
	assert.Equal(t, []string{augment.MsgNothingToInstall}, n.msgs)
	assert.Zero(t, n.homes)
	assert.Equal(t, 500.0, s.Player().Money(), "no prestige on a rejected install")

	_, ok = s.Install(true)
	assert.True(t, ok)
	assert.Equal(t, 1, n.homes)
}

func TestSession_PurchasePricing(t *testing.T) {
	t.Parallel()

	s, _ := newTestSession(t, config.DefaultSim(), 1e9)

	price, err := s.PriceOf("BitWire")
	require.NoError(t, err)
	assert.InDelta(t, 10e6, price, 1e-6)

	_, err = s.Purchase("Augmentation A")
	require.NoError(t, err)

	price, err = s.PriceOf("BitWire")
	require.NoError(t, err)
	assert.InDelta(t, 10e6*1.9, price, 1e-6)

	before := s.Player().Money()
	_, err = s.Purchase("BitWire")
	require.NoError(t, err)
	assert.InDelta(t, before-10e6*1.9, s.Player().Money(), 1e-6)
}

func TestSession_SourceFileDiscount(t *testing.T) {
	t.Parallel()

	cfg := config.DefaultSim()
	cfg.SourceFile11Level = 3
	s, _ := newTestSession(t, cfg, 1e9)

	_, err := s.Purchase("Augmentation A")
	require.NoError(t, err)

	price, err := s.PriceOf("BitWire")
	require.NoError(t, err)
	assert.InDelta(t, 10e6*1.9*0.93, price, 1e-6)
}

func TestSession_PurchaseErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		money   float64
		owned   []model.OwnedAugmentation
		queued  []model.OwnedAugmentation
		buy     string
		wantErr error
	}{
		{name: "unknown", money: 1e9, buy: "Nope", wantErr: ErrUnknownAugmentation},
		{name: "owned", money: 1e9, owned: []model.OwnedAugmentation{{Name: "BitWire", Level: 1}}, buy: "BitWire", wantErr: ErrAlreadyOwned},
		{name: "queued", money: 1e9, queued: []model.OwnedAugmentation{{Name: "BitWire", Level: 1}}, buy: "BitWire", wantErr: ErrAlreadyQueued},
		{name: "prereq", money: 1e9, buy: "Augmented Targeting II", wantErr: ErrPrereqNotMet},
		{name: "funds", money: 99, buy: "Augmentation A", wantErr: ErrInsufficientFunds},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			s, _ := newTestSession(t, config.DefaultSim(), tt.money)
			s.Player().SetLedger(tt.owned, tt.queued)

			_, err := s.Purchase(tt.buy)
			require.ErrorIs(t, err, tt.wantErr)
			assert.Equal(t, tt.money, s.Player().Money(), "failed purchase must not charge")
			assert.Len(t, s.Player().QueuedAugmentations(), len(tt.queued))
		})
	}
}

func TestSession_PrereqSatisfiedByQueue(t *testing.T) {
	t.Parallel()

	s, _ := newTestSession(t, config.DefaultSim(), 1e9)

	_, err := s.Purchase("Augmented Targeting I")
	require.NoError(t, err)
	_, err = s.Purchase("Augmented Targeting II")
	require.NoError(t, err)
	assert.Equal(t, 2, s.Player().QueuedCount())
}

func TestSession_GovernorLevelFollowsOwned(t *testing.T) {
	t.Parallel()

	s, _ := newTestSession(t, config.DefaultSim(), 1e12)
	s.Player().SetLedger([]model.OwnedAugmentation{{Name: data.NeuroFluxGovernor, Level: 4}}, nil)

	entry, err := s.Purchase(data.NeuroFluxGovernor)
	require.NoError(t, err)
	assert.Equal(t, 5, entry.Level)

	res, ok := s.Install(true)
	require.True(t, ok)
	assert.Equal(t, "NeuroFlux Governor - 5\n", res.Summary)
	assert.Equal(t, []model.OwnedAugmentation{{Name: data.NeuroFluxGovernor, Level: 5}}, s.Player().Augmentations())
}

func TestSession_ConcurrentGovernorPurchases(t *testing.T) {
	t.Parallel()

	s, _ := newTestSession(t, config.DefaultSim(), 1e300)

	const buyers = 8
	var wg sync.WaitGroup
	for range buyers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := s.Purchase(data.NeuroFluxGovernor)
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	levels := make(map[int]bool)
	for _, q := range s.Player().QueuedAugmentations() {
		levels[q.Level] = true
	}
	assert.Len(t, levels, buyers, "every purchase gets a distinct level")
	for lvl := 1; lvl <= buyers; lvl++ {
		assert.True(t, levels[lvl], "level %d", lvl)
	}
}

func TestSession_GatedFactions(t *testing.T) {
	t.Parallel()

	const eyewear = "EsperTech Bladeburner Eyewear"

	s, _ := newTestSession(t, config.DefaultSim(), 0)
	assert.False(t, s.Catalog().Exists(eyewear))
	assert.False(t, s.Factions().Exists(data.FactionBladeburners))

	cfg := config.DefaultSim()
	cfg.Factions.Bladeburners = true
	s, _ = newTestSession(t, cfg, 0)
	assert.True(t, s.Catalog().Exists(eyewear))
	assert.True(t, s.Factions().Get(data.FactionBladeburners).OffersAugmentation(eyewear))
}

func TestSession_AugmentationsFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "augs.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
augmentations:
  - name: Custom Cortex
    factions: [CyberSec]
    base_cost: 1000
    mults:
      hacking: 1.5
`), 0o600))

	cfg := config.DefaultSim()
	cfg.AugmentationsFile = path
	s, _ := newTestSession(t, cfg, 1e6)

	require.True(t, s.Catalog().Exists("Custom Cortex"))
	assert.True(t, s.Catalog().Exists("Augmentation A"), "option definitions are kept too")

	_, err := s.Purchase("Custom Cortex")
	require.NoError(t, err)
	_, ok := s.Install(true)
	require.True(t, ok)
	assert.InDelta(t, 1.5, s.Player().Mults()[model.MultHacking], 1e-12)
}

func TestSession_BadAugmentationsFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "augs.yaml")
	require.NoError(t, os.WriteFile(path, []byte("augmentations: [\n"), 0o600))

	cfg := config.DefaultSim()
	cfg.AugmentationsFile = path
	p, err := model.NewPlayer(1, "Jump3R", 0)
	require.NoError(t, err)

	_, err = New(cfg, p, nil, nil)
	assert.Error(t, err)
}

func TestSession_InitRecomputesFromLedger(t *testing.T) {
	t.Parallel()

	p, err := model.NewPlayer(1, "Jump3R", 0)
	require.NoError(t, err)
	p.SetLedger([]model.OwnedAugmentation{{Name: "BitWire", Level: 1}}, nil)

	s, err := New(config.DefaultSim(), p, nil, nil, WithClock(fixedClock))
	require.NoError(t, err)
	assert.Equal(t, 1.0, p.Mults()[model.MultHacking], "New does not touch multipliers")

	s.Init()
	assert.InDelta(t, 1.05, p.Mults()[model.MultHacking], 1e-12)

	s.Init()
	assert.InDelta(t, 1.05, p.Mults()[model.MultHacking], 1e-12, "Init is idempotent")
}
