package db

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/udisondev/augsim/internal/model"
)

// ErrPlayerExists is returned by Create when the name is already taken.
var ErrPlayerExists = errors.New("player already exists")

// PlayerRepository управляет записями игроков в БД.
// Ledger хранится отдельно, см. AugmentationRepository.
type PlayerRepository struct {
	db *pgxpool.Pool
}

// NewPlayerRepository создаёт новый PlayerRepository.
func NewPlayerRepository(db *pgxpool.Pool) *PlayerRepository {
	return &PlayerRepository{db: db}
}

const playerColumns = `
	player_id, name, money,
	exp_hacking, exp_strength, exp_defense, exp_dexterity, exp_agility, exp_charisma,
	source_file_11, entropy, playtime_since_last_aug, total_playtime, created_at`

// Create вставляет нового игрока и проставляет ему ID.
func (r *PlayerRepository) Create(ctx context.Context, p *model.Player) error {
	exp := p.Experience()
	var (
		id        int64
		createdAt time.Time
	)
	err := r.db.QueryRow(ctx, `
		INSERT INTO players (name, money,
			exp_hacking, exp_strength, exp_defense, exp_dexterity, exp_agility, exp_charisma,
			source_file_11, entropy, playtime_since_last_aug, total_playtime)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		ON CONFLICT (name) DO NOTHING
		RETURNING player_id, created_at`,
		p.Name(), p.Money(),
		exp.Hacking, exp.Strength, exp.Defense, exp.Dexterity, exp.Agility, exp.Charisma,
		p.SourceFileLevel(), p.Entropy(),
		p.PlaytimeSinceLastAug().Milliseconds(), p.TotalPlaytime().Milliseconds(),
	).Scan(&id, &createdAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return fmt.Errorf("%w: %s", ErrPlayerExists, p.Name())
	}
	if err != nil {
		return fmt.Errorf("creating player %q: %w", p.Name(), err)
	}

	p.SetID(id)
	p.SetCreatedAt(createdAt)
	return nil
}

// LoadByID загружает игрока по ID без ledger.
// Возвращает nil если игрок не найден (не ошибка).
func (r *PlayerRepository) LoadByID(ctx context.Context, playerID int64) (*model.Player, error) {
	row := r.db.QueryRow(ctx, `SELECT `+playerColumns+` FROM players WHERE player_id = $1`, playerID)
	p, err := scanPlayer(row)
	if err != nil {
		return nil, fmt.Errorf("loading player %d: %w", playerID, err)
	}
	return p, nil
}

// LoadByName загружает игрока по имени без ledger.
// Возвращает nil если игрок не найден (не ошибка).
func (r *PlayerRepository) LoadByName(ctx context.Context, name string) (*model.Player, error) {
	row := r.db.QueryRow(ctx, `SELECT `+playerColumns+` FROM players WHERE name = $1`, name)
	p, err := scanPlayer(row)
	if err != nil {
		return nil, fmt.Errorf("loading player %q: %w", name, err)
	}
	return p, nil
}

func scanPlayer(row pgx.Row) (*model.Player, error) {
	var (
		id                  int64
		name                string
		money               float64
		exp                 model.Experience
		sourceFile, entropy int
		sinceLastAug, total int64
		createdAt           time.Time
	)
	err := row.Scan(
		&id, &name, &money,
		&exp.Hacking, &exp.Strength, &exp.Defense, &exp.Dexterity, &exp.Agility, &exp.Charisma,
		&sourceFile, &entropy, &sinceLastAug, &total, &createdAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	p, err := model.NewPlayer(id, name, money)
	if err != nil {
		return nil, fmt.Errorf("creating player model: %w", err)
	}
	p.SetExperience(exp)
	p.SetSourceFileLevel(sourceFile)
	p.SetEntropy(entropy)
	p.SetPlaytime(time.Duration(sinceLastAug)*time.Millisecond, time.Duration(total)*time.Millisecond)
	p.SetCreatedAt(createdAt)
	return p, nil
}

// UpdateTx сохраняет состояние игрока в рамках транзакции.
func (r *PlayerRepository) UpdateTx(ctx context.Context, tx pgx.Tx, p *model.Player) error {
	exp := p.Experience()
	tag, err := tx.Exec(ctx, `
		UPDATE players SET
			money = $2,
			exp_hacking = $3, exp_strength = $4, exp_defense = $5,
			exp_dexterity = $6, exp_agility = $7, exp_charisma = $8,
			source_file_11 = $9, entropy = $10,
			playtime_since_last_aug = $11, total_playtime = $12,
			updated_at = NOW()
		WHERE player_id = $1`,
		p.ID(), p.Money(),
		exp.Hacking, exp.Strength, exp.Defense, exp.Dexterity, exp.Agility, exp.Charisma,
		p.SourceFileLevel(), p.Entropy(),
		p.PlaytimeSinceLastAug().Milliseconds(), p.TotalPlaytime().Milliseconds(),
	)
	if err != nil {
		return fmt.Errorf("updating player %d: %w", p.ID(), err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("updating player %d: %w", p.ID(), pgx.ErrNoRows)
	}
	return nil
}

// Delete удаляет игрока вместе с ledger (ON DELETE CASCADE).
func (r *PlayerRepository) Delete(ctx context.Context, playerID int64) error {
	if _, err := r.db.Exec(ctx, `DELETE FROM players WHERE player_id = $1`, playerID); err != nil {
		return fmt.Errorf("deleting player %d: %w", playerID, err)
	}
	return nil
}
