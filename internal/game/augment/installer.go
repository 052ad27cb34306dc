package augment

import (
	"log/slog"
	"strconv"
	"strings"

	"github.com/udisondev/augsim/internal/data"
	"github.com/udisondev/augsim/internal/model"
)

// Player-facing messages.
const (
	MsgNothingToInstall = "You have not purchased any Augmentations to install!"

	installPrologue = "You slowly drift to sleep as scientists put you under in order " +
		"to install the following Augmentations:\n"
	installEpilogue = "\nYou wake up in your home...you feel different..."
)

// InstallResult describes a completed installation.
type InstallResult struct {
	// Summary has one line per installed augmentation, in queue order.
	// The NeuroFlux Governor appears once, at its last queued level.
	Summary string
	// Installed holds the summary lines without trailing newlines.
	Installed []string
	// Skipped holds queued names that were not found in the catalog.
	Skipped []string
}

// Installer converts queued augmentations into owned ones and triggers
// the prestige reset.
type Installer struct {
	agg      *Aggregator
	prestige Prestiger
	notifier Notifier
	nav      Navigator
}

// NewInstaller creates an installer. Nil collaborators are replaced with no-ops.
func NewInstaller(agg *Aggregator, prestige Prestiger, notifier Notifier, nav Navigator) *Installer {
	if prestige == nil {
		prestige = noopHooks{}
	}
	if notifier == nil {
		notifier = noopHooks{}
	}
	if nav == nil {
		nav = noopHooks{}
	}
	return &Installer{agg: agg, prestige: prestige, notifier: notifier, nav: nav}
}

// Install applies every queued augmentation, clears the queue, runs the
// prestige reset once and returns to the home view.
//
// With an empty queue and force unset, the player is notified and Install
// returns false without touching any state. Force is used for the first
// initialization of a game: it allows an empty queue and suppresses the
// summary notice.
func (i *Installer) Install(p *model.Player, force bool) (InstallResult, bool) {
	queue := p.QueuedAugmentations()
	if len(queue) == 0 && !force {
		i.notifier.Notify(MsgNothingToInstall)
		return InstallResult{}, false
	}

	lastGovernor := -1
	for idx := len(queue) - 1; idx >= 0; idx-- {
		if queue[idx].Name == data.NeuroFluxGovernor {
			lastGovernor = idx
			break
		}
	}

	var (
		res     InstallResult
		summary strings.Builder
	)
	for idx, entry := range queue {
		def, ok := i.agg.catalog.Lookup(entry.Name)
		if !ok {
			slog.Error("invalid augmentation", "name", entry.Name, "player", p.Name())
			res.Skipped = append(res.Skipped, entry.Name)
			continue
		}

		i.agg.apply(p, def, entry, false)
		if entry.Name == data.NeuroFluxGovernor && idx != lastGovernor {
			continue
		}

		line := def.Name
		if entry.Name == data.NeuroFluxGovernor {
			line += " - " + strconv.Itoa(entry.Level)
		}
		summary.WriteString(line)
		summary.WriteByte('\n')
		res.Installed = append(res.Installed, line)
	}
	p.ClearQueue()
	res.Summary = summary.String()

	if !force {
		i.notifier.Notify(installPrologue + res.Summary + installEpilogue)
	}

	slog.Info("augmentations installed",
		"player", p.Name(),
		"installed", len(res.Installed),
		"skipped", len(res.Skipped),
		"forced", force)

	i.prestige.PrestigeAugmentation()
	i.nav.ToHome()
	return res, true
}
