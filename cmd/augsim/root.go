package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/udisondev/augsim/internal/config"
	"github.com/udisondev/augsim/internal/db"
	"github.com/udisondev/augsim/internal/game/session"
	"github.com/udisondev/augsim/internal/model"
)

const DefaultConfigPath = "config/augsim.yaml"

// app carries state shared by every subcommand.
type app struct {
	configPath string
	playerName string
	cfg        config.Sim
}

func newRootCmd() *cobra.Command {
	a := &app{}

	defaultPath := DefaultConfigPath
	if p := os.Getenv("AUGSIM_CONFIG"); p != "" {
		defaultPath = p
	}

	root := &cobra.Command{
		Use:   "augsim",
		Short: "Augmentation lifecycle simulator",
		Long: `Buys, queues and installs augmentations for a persisted player,
folding their bonuses into the player's multipliers and running the
prestige reset after every installation.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.loadConfig()
		},
	}

	root.PersistentFlags().StringVar(&a.configPath, "config", defaultPath, "path to YAML config")
	root.PersistentFlags().StringVarP(&a.playerName, "player", "p", "player", "player name")

	root.AddCommand(
		newNewCmd(a),
		newCatalogCmd(a),
		newStatusCmd(a),
		newBuyCmd(a),
		newInstallCmd(a),
		newExportCmd(a),
		newMigrateCmd(a),
	)
	return root
}

func (a *app) loadConfig() error {
	cfg, err := config.LoadSim(a.configPath)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	a.cfg = cfg

	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: parseLogLevel(cfg.LogLevel),
	})))
	slog.Debug("config loaded", "path", a.configPath, "player", a.playerName)
	return nil
}

// openStore connects to the database, migrating first when configured.
func (a *app) openStore(ctx context.Context) (*db.DB, error) {
	dsn := a.cfg.Database.DSN()
	if a.cfg.Migrate {
		if err := db.RunMigrations(ctx, dsn); err != nil {
			return nil, err
		}
	}
	return db.New(ctx, dsn)
}

// newSession builds and initializes a session around player.
func (a *app) newSession(player *model.Player) (*session.Session, error) {
	out := newConsole(os.Stdout)
	s, err := session.New(a.cfg, player, out, out)
	if err != nil {
		return nil, err
	}
	s.Init()
	return s, nil
}

// turn runs fn against the stored player and saves the result when save is set.
func (a *app) turn(ctx context.Context, save bool, fn func(s *session.Session) error) error {
	store, err := a.openStore(ctx)
	if err != nil {
		return err
	}
	defer store.Close()

	persistence := store.Persistence()
	player, err := persistence.LoadPlayerByName(ctx, a.playerName)
	if err != nil {
		return err
	}

	s, err := a.newSession(player)
	if err != nil {
		return err
	}

	if err := fn(s); err != nil {
		return err
	}
	if !save {
		return nil
	}
	return s.WithPlayer(func(p *model.Player) error {
		return persistence.SavePlayer(ctx, p)
	})
}
