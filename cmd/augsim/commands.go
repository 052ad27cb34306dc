package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/udisondev/augsim/internal/db"
	"github.com/udisondev/augsim/internal/game/session"
	"github.com/udisondev/augsim/internal/model"
)

func newNewCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "new",
		Short: "Create a player and run the initial installation",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			store, err := a.openStore(ctx)
			if err != nil {
				return err
			}
			defer store.Close()

			player, err := model.NewPlayer(0, a.playerName, a.cfg.StartingMoney)
			if err != nil {
				return err
			}
			persistence := store.Persistence()
			if err := persistence.CreatePlayer(ctx, player); err != nil {
				return err
			}

			s, err := a.newSession(player)
			if err != nil {
				return err
			}
			s.Install(true)

			if err := s.WithPlayer(func(p *model.Player) error {
				return persistence.SavePlayer(ctx, p)
			}); err != nil {
				return err
			}

			newConsole(cmd.OutOrStdout()).Success(fmt.Sprintf("created player %s (id %d)", player.Name(), player.ID()))
			return nil
		},
	}
}

func newCatalogCmd(a *app) *cobra.Command {
	var faction string
	cmd := &cobra.Command{
		Use:   "catalog",
		Short: "List augmentations available this run",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.turn(cmd.Context(), false, func(s *session.Session) error {
				return s.WithPlayer(func(p *model.Player) error {
					renderCatalog(cmd.OutOrStdout(), s.Catalog().All(), p, faction)
					return nil
				})
			})
		},
	}
	cmd.Flags().StringVar(&faction, "faction", "", "only show augmentations offered by this faction")
	return cmd
}

func newStatusCmd(a *app) *cobra.Command {
	var all bool
	cmd := &cobra.Command{
		Use:   "status",
		Short: "Show money, ledger and multipliers",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.turn(cmd.Context(), false, func(s *session.Session) error {
				return s.WithPlayer(func(p *model.Player) error {
					renderStatus(cmd.OutOrStdout(), p, all)
					return nil
				})
			})
		},
	}
	cmd.Flags().BoolVar(&all, "all", false, "include neutral multipliers")
	return cmd
}

func newBuyCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "buy NAME...",
		Short: "Purchase and queue augmentations",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := newConsole(cmd.OutOrStdout())
			var failed []error
			err := a.turn(cmd.Context(), true, func(s *session.Session) error {
				for _, name := range args {
					entry, err := s.Purchase(name)
					if err != nil {
						out.Error(err.Error())
						failed = append(failed, err)
						continue
					}
					out.Success("queued " + formatEntry(entry))
				}
				return nil
			})
			if err != nil {
				return err
			}
			return errors.Join(failed...)
		},
	}
}

func newInstallCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "install",
		Short: "Install every queued augmentation and prestige",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			var installed bool
			err := a.turn(cmd.Context(), true, func(s *session.Session) error {
				_, installed = s.Install(false)
				return nil
			})
			if err != nil {
				return err
			}
			if !installed {
				return errors.New("nothing installed")
			}
			return nil
		},
	}
}

func newExportCmd(a *app) *cobra.Command {
	var out string
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write the augmentation ledger as YAML",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			w := cmd.OutOrStdout()
			if out != "" {
				f, err := os.Create(out)
				if err != nil {
					return fmt.Errorf("creating %s: %w", out, err)
				}
				defer f.Close()
				w = f
			}
			return a.turn(cmd.Context(), false, func(s *session.Session) error {
				return s.WithPlayer(func(p *model.Player) error {
					return exportLedger(w, p)
				})
			})
		},
	}
	cmd.Flags().StringVarP(&out, "out", "o", "", "output file (default stdout)")
	return cmd
}

func newMigrateCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Apply database migrations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return db.RunMigrations(cmd.Context(), a.cfg.Database.DSN())
		},
	}
}

// ledgerExport is the YAML layout written by export.
type ledgerExport struct {
	Player  string                    `yaml:"player"`
	Entropy int                       `yaml:"entropy,omitempty"`
	Owned   []model.OwnedAugmentation `yaml:"owned"`
	Queued  []model.OwnedAugmentation `yaml:"queued,omitempty"`
}

func exportLedger(w io.Writer, p *model.Player) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(ledgerExport{
		Player:  p.Name(),
		Entropy: p.Entropy(),
		Owned:   p.Augmentations(),
		Queued:  p.QueuedAugmentations(),
	}); err != nil {
		return fmt.Errorf("encoding ledger: %w", err)
	}
	return enc.Close()
}
