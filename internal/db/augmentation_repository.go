package db

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/udisondev/augsim/internal/model"
)

// AugmentationRepository управляет ledger игрока (owned + queued) в БД.
type AugmentationRepository struct {
	db *pgxpool.Pool
}

// NewAugmentationRepository создаёт новый AugmentationRepository.
func NewAugmentationRepository(db *pgxpool.Pool) *AugmentationRepository {
	return &AugmentationRepository{db: db}
}

// LoadByPlayerID загружает owned и queued аугментации игрока в исходном порядке.
func (r *AugmentationRepository) LoadByPlayerID(ctx context.Context, playerID int64) (owned, queued []model.OwnedAugmentation, err error) {
	query := `
		SELECT queued, name, level
		FROM player_augmentations
		WHERE player_id = $1
		ORDER BY queued, position
	`

	rows, err := r.db.Query(ctx, query, playerID)
	if err != nil {
		return nil, nil, fmt.Errorf("querying augmentations for player %d: %w", playerID, err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			isQueued bool
			entry    model.OwnedAugmentation
		)
		if err := rows.Scan(&isQueued, &entry.Name, &entry.Level); err != nil {
			return nil, nil, fmt.Errorf("scanning augmentation row: %w", err)
		}
		if isQueued {
			queued = append(queued, entry)
		} else {
			owned = append(owned, entry)
		}
	}

	if err := rows.Err(); err != nil {
		return nil, nil, fmt.Errorf("iterating augmentation rows: %w", err)
	}

	return owned, queued, nil
}

// SaveTx сохраняет ledger игрока (полная перезапись) в рамках транзакции.
func (r *AugmentationRepository) SaveTx(ctx context.Context, tx pgx.Tx, playerID int64, owned, queued []model.OwnedAugmentation) error {
	if _, err := tx.Exec(ctx, `DELETE FROM player_augmentations WHERE player_id = $1`, playerID); err != nil {
		return fmt.Errorf("deleting existing augmentations: %w", err)
	}

	rows := make([][]any, 0, len(owned)+len(queued))
	for i, a := range owned {
		rows = append(rows, []any{playerID, false, i, a.Name, a.Level})
	}
	for i, a := range queued {
		rows = append(rows, []any{playerID, true, i, a.Name, a.Level})
	}
	if len(rows) == 0 {
		return nil
	}

	if _, err := tx.CopyFrom(ctx,
		pgx.Identifier{"player_augmentations"},
		[]string{"player_id", "queued", "position", "name", "level"},
		pgx.CopyFromRows(rows),
	); err != nil {
		return fmt.Errorf("inserting augmentations for player %d: %w", playerID, err)
	}

	return nil
}

// Save сохраняет ledger игрока в отдельной транзакции.
func (r *AugmentationRepository) Save(ctx context.Context, playerID int64, owned, queued []model.OwnedAugmentation) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer func() {
		_ = tx.Rollback(ctx) // no-op after commit
	}()

	if err := r.SaveTx(ctx, tx, playerID, owned, queued); err != nil {
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("committing augmentations save: %w", err)
	}
	return nil
}
