package data

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/udisondev/augsim/internal/model"
)

// augmentationFile is the on-disk layout of extra augmentation definitions.
type augmentationFile struct {
	Augmentations []*model.Augmentation `yaml:"augmentations"`
}

// LoadAugmentationFile reads extra augmentation definitions from a YAML file.
// An empty path or a missing file yields no definitions.
func LoadAugmentationFile(path string) ([]*model.Augmentation, error) {
	if path == "" {
		return nil, nil
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			slog.Warn("augmentation file not found, skipping", "path", path)
			return nil, nil
		}
		return nil, fmt.Errorf("reading augmentation file %s: %w", path, err)
	}

	augs, err := ParseAugmentations(raw)
	if err != nil {
		return nil, fmt.Errorf("parsing augmentation file %s: %w", path, err)
	}

	slog.Info("loaded extra augmentations", "path", path, "count", len(augs))
	return augs, nil
}

// ParseAugmentations decodes and validates YAML augmentation definitions.
func ParseAugmentations(raw []byte) ([]*model.Augmentation, error) {
	var f augmentationFile
	if err := yaml.Unmarshal(raw, &f); err != nil {
		return nil, err
	}

	seen := make(map[string]struct{}, len(f.Augmentations))
	for i, aug := range f.Augmentations {
		if aug == nil || aug.Name == "" {
			return nil, fmt.Errorf("augmentation #%d: name is required", i)
		}
		if IsRepeatable(aug.Name) {
			return nil, fmt.Errorf("augmentation %q: name is reserved", aug.Name)
		}
		if _, dup := seen[aug.Name]; dup {
			return nil, fmt.Errorf("augmentation %q: defined twice", aug.Name)
		}
		seen[aug.Name] = struct{}{}

		if aug.BaseCost < 0 || aug.BaseRepRequirement < 0 {
			return nil, fmt.Errorf("augmentation %q: cost must not be negative", aug.Name)
		}
		for name, factor := range aug.Mults {
			if !model.IsKnownMult(name) {
				return nil, fmt.Errorf("augmentation %q: unknown multiplier %q", aug.Name, name)
			}
			if factor <= 0 {
				return nil, fmt.Errorf("augmentation %q: multiplier %q must be positive", aug.Name, name)
			}
		}
	}
	return f.Augmentations, nil
}
