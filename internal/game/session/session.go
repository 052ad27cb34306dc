// Package session wires the augmentation catalog, aggregator, installer and
// prestige pipeline around a single player.
package session

import (
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/udisondev/augsim/internal/config"
	"github.com/udisondev/augsim/internal/data"
	"github.com/udisondev/augsim/internal/game/augment"
	"github.com/udisondev/augsim/internal/game/faction"
	"github.com/udisondev/augsim/internal/game/prestige"
	"github.com/udisondev/augsim/internal/model"
)

// Purchase errors.
var (
	ErrUnknownAugmentation = errors.New("unknown augmentation")
	ErrAlreadyOwned        = errors.New("augmentation already owned")
	ErrAlreadyQueued       = errors.New("augmentation already queued")
	ErrPrereqNotMet        = errors.New("prerequisite not met")
	ErrInsufficientFunds   = errors.New("insufficient funds")
)

// Option configures a Session.
type Option func(*options)

type options struct {
	now   func() time.Time
	extra []*model.Augmentation
}

// WithClock overrides the clock used by time-dependent definitions.
func WithClock(now func() time.Time) Option {
	return func(o *options) { o.now = now }
}

// WithExtraAugmentations adds definitions on top of the ones loaded from
// the configured augmentations file.
func WithExtraAugmentations(augs []*model.Augmentation) Option {
	return func(o *options) { o.extra = append(o.extra, augs...) }
}

// Session owns one player and everything needed to play augmentation turns
// for it. All exported methods are safe for concurrent use; each runs to
// completion before another starts.
type Session struct {
	mu sync.Mutex

	cfg       config.Sim
	player    *model.Player
	factions  *faction.Registry
	catalog   *augment.Catalog
	agg       *augment.Aggregator
	installer *augment.Installer
	prestige  *prestige.Pipeline
}

// New builds a session. The catalog is empty until Init is called.
func New(cfg config.Sim, player *model.Player, notifier augment.Notifier, nav augment.Navigator, opts ...Option) (*Session, error) {
	if player == nil {
		return nil, errors.New("session: nil player")
	}

	o := options{now: time.Now}
	for _, opt := range opts {
		opt(&o)
	}

	fromFile, err := data.LoadAugmentationFile(cfg.AugmentationsFile)
	if err != nil {
		return nil, fmt.Errorf("loading extra augmentations: %w", err)
	}
	extra := append(fromFile, o.extra...)

	player.SetSourceFileLevel(cfg.SourceFile11Level)

	factions := faction.NewDefaultRegistry(cfg.Factions.Bladeburners, cfg.Factions.ChurchOfTheMachineGod)
	catalog := augment.NewCatalog(factions, nil, augment.DefaultGroups(o.now, extra))
	agg := augment.NewAggregator(catalog)
	pipeline := prestige.New(player, agg, cfg.StartingMoney)

	return &Session{
		cfg:       cfg,
		player:    player,
		factions:  factions,
		catalog:   catalog,
		agg:       agg,
		installer: augment.NewInstaller(agg, pipeline, notifier, nav),
		prestige:  pipeline,
	}, nil
}

// Init rebuilds the catalog and recomputes the player's multipliers from
// the owned augmentations.
func (s *Session) Init() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.catalog.Rebuild()
	s.agg.ReapplyAll(s.player)
}

// Install installs every queued augmentation. See augment.Installer.Install.
func (s *Session) Install(force bool) (augment.InstallResult, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.installer.Install(s.player, force)
}

// PriceOf returns the current price of the named augmentation.
func (s *Session) PriceOf(name string) (float64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	def, ok := s.catalog.Lookup(name)
	if !ok {
		return 0, fmt.Errorf("%w: %s", ErrUnknownAugmentation, name)
	}
	return augment.Price(def, s.player), nil
}

// Purchase pays for the named augmentation and queues it for installation.
// It returns the queued entry.
func (s *Session) Purchase(name string) (model.OwnedAugmentation, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	def, ok := s.catalog.Lookup(name)
	if !ok {
		return model.OwnedAugmentation{}, fmt.Errorf("%w: %s", ErrUnknownAugmentation, name)
	}

	if !def.Repeatable {
		if s.player.HasAugmentation(name) {
			return model.OwnedAugmentation{}, fmt.Errorf("%w: %s", ErrAlreadyOwned, name)
		}
		if s.player.IsQueued(name) {
			return model.OwnedAugmentation{}, fmt.Errorf("%w: %s", ErrAlreadyQueued, name)
		}
	}

	for _, req := range def.PreReqs {
		if !s.player.HasAugmentation(req) && !s.player.IsQueued(req) {
			return model.OwnedAugmentation{}, fmt.Errorf("%w: %s requires %s", ErrPrereqNotMet, name, req)
		}
	}

	price := augment.Price(def, s.player)
	if err := s.player.LoseMoney(price); err != nil {
		return model.OwnedAugmentation{}, fmt.Errorf("%w: %s costs %.0f, have %.0f",
			ErrInsufficientFunds, name, price, s.player.Money())
	}

	entry := model.NewOwnedAugmentation(name)
	if name == data.NeuroFluxGovernor {
		entry.Level = s.nextGovernorLevel()
	}
	s.player.QueueAugmentation(entry)

	slog.Info("augmentation purchased",
		"player", s.player.Name(),
		"augmentation", name,
		"level", entry.Level,
		"price", price)
	return entry, nil
}

func (s *Session) nextGovernorLevel() int {
	level := 0
	if owned, ok := s.player.OwnedAugmentation(data.NeuroFluxGovernor); ok {
		level = owned.Level
	}
	return level + s.player.CountQueued(data.NeuroFluxGovernor) + 1
}

// WithPlayer runs fn with exclusive access to the player.
func (s *Session) WithPlayer(fn func(p *model.Player) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return fn(s.player)
}

// Player returns the session's player. Callers must not mutate it while
// other goroutines use the session; use WithPlayer for that.
func (s *Session) Player() *model.Player { return s.player }

// Catalog returns the session's catalog.
func (s *Session) Catalog() *augment.Catalog { return s.catalog }

// Factions returns the faction registry.
func (s *Session) Factions() *faction.Registry { return s.factions }

// Config returns the configuration the session was built with.
func (s *Session) Config() config.Sim { return s.cfg }
