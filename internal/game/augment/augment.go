// Package augment implements the augmentation lifecycle: the catalog of
// unlockable augmentations, the multiplier aggregator that folds a player's
// owned augmentations into effective multipliers, and the installation
// engine that turns queued augmentations into owned ones and triggers a
// prestige reset.
package augment

// Notifier shows a blocking message to the player.
type Notifier interface {
	Notify(msg string)
}

// Navigator moves the presentation layer to its default view.
type Navigator interface {
	ToHome()
}

// Prestiger runs the broader progress reset after an installation.
type Prestiger interface {
	PrestigeAugmentation()
}

// NotifierFunc adapts a function to Notifier.
type NotifierFunc func(msg string)

func (f NotifierFunc) Notify(msg string) { f(msg) }

// NavigatorFunc adapts a function to Navigator.
type NavigatorFunc func()

func (f NavigatorFunc) ToHome() { f() }

// PrestigeFunc adapts a function to Prestiger.
type PrestigeFunc func()

func (f PrestigeFunc) PrestigeAugmentation() { f() }

type noopHooks struct{}

func (noopHooks) Notify(string)         {}
func (noopHooks) ToHome()               {}
func (noopHooks) PrestigeAugmentation() {}
