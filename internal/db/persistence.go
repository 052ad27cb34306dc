package db

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"golang.org/x/sync/errgroup"

	"github.com/udisondev/augsim/internal/model"
)

// ErrPlayerNotFound is returned by LoadPlayer for an unknown player.
var ErrPlayerNotFound = errors.New("player not found")

// PlayerPersistenceService атомарно сохраняет/загружает игрока вместе с ledger.
type PlayerPersistenceService struct {
	pool       *pgxpool.Pool
	playerRepo *PlayerRepository
	augRepo    *AugmentationRepository
}

// NewPlayerPersistenceService создаёт новый сервис.
func NewPlayerPersistenceService(
	pool *pgxpool.Pool,
	playerRepo *PlayerRepository,
	augRepo *AugmentationRepository,
) *PlayerPersistenceService {
	return &PlayerPersistenceService{
		pool:       pool,
		playerRepo: playerRepo,
		augRepo:    augRepo,
	}
}

// CreatePlayer inserts a new player and its (usually empty) ledger.
func (s *PlayerPersistenceService) CreatePlayer(ctx context.Context, player *model.Player) error {
	if err := s.playerRepo.Create(ctx, player); err != nil {
		return err
	}
	return s.SavePlayer(ctx, player)
}

// SavePlayer saves the player row and the augmentation ledger in a single
// transaction. Multipliers are not stored; they are recomputed on load.
func (s *PlayerPersistenceService) SavePlayer(ctx context.Context, player *model.Player) error {
	playerID := player.ID()

	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction for player %d: %w", playerID, err)
	}
	defer func() {
		if err := tx.Rollback(ctx); err != nil && !errors.Is(err, pgx.ErrTxClosed) {
			slog.Error("rollback failed", "playerID", playerID, "error", err)
		}
	}()

	// 1. Player row (money, experience, playtime, entropy)
	if err := s.playerRepo.UpdateTx(ctx, tx, player); err != nil {
		return fmt.Errorf("saving player %d: %w", playerID, err)
	}

	// 2. Ledger
	owned := player.Augmentations()
	queued := player.QueuedAugmentations()
	if err := s.augRepo.SaveTx(ctx, tx, playerID, owned, queued); err != nil {
		return fmt.Errorf("saving augmentations for player %d: %w", playerID, err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction for player %d: %w", playerID, err)
	}

	slog.Info("player data saved",
		"playerID", playerID,
		"player", player.Name(),
		"owned", len(owned),
		"queued", len(queued))

	return nil
}

// LoadPlayer загружает игрока и его ledger параллельно.
// Multipliers are left neutral; the caller recomputes them against a catalog.
func (s *PlayerPersistenceService) LoadPlayer(ctx context.Context, playerID int64) (*model.Player, error) {
	var (
		player        *model.Player
		owned, queued []model.OwnedAugmentation
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		player, err = s.playerRepo.LoadByID(gctx, playerID)
		return err
	})
	g.Go(func() error {
		var err error
		owned, queued, err = s.augRepo.LoadByPlayerID(gctx, playerID)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	if player == nil {
		return nil, fmt.Errorf("%w: %d", ErrPlayerNotFound, playerID)
	}
	player.SetLedger(owned, queued)
	return player, nil
}

// LoadPlayerByName resolves the name to an ID and loads the full player.
func (s *PlayerPersistenceService) LoadPlayerByName(ctx context.Context, name string) (*model.Player, error) {
	p, err := s.playerRepo.LoadByName(ctx, name)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, fmt.Errorf("%w: %s", ErrPlayerNotFound, name)
	}
	return s.LoadPlayer(ctx, p.ID())
}
