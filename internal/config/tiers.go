package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"order-grouping-service/internal/services"
)

// LoadTiers returns the tier presets, overlaying the defaults with any
// values from a YAML file when path is non-empty. Fields omitted from
// the file keep their defaults, so a deployment can tune a single
// threshold without restating the whole set.
//
// Example file:
//
//	tight:
//	  min_score: 75
//	loose:
//	  max_buffer_min: 150
func LoadTiers(path string) (services.TierSet, error) {
	tiers := services.DefaultTiers()
	if path == "" {
		return tiers, nil
	}

	bytes, err := os.ReadFile(path)
	if err != nil {
		return services.TierSet{}, fmt.Errorf("load tiers: read %q: %w", path, err)
	}

	if err := yaml.Unmarshal(bytes, &tiers); err != nil {
		return services.TierSet{}, fmt.Errorf("load tiers: parse %q: %w", path, err)
	}

	if err := validateTiers(tiers); err != nil {
		return services.TierSet{}, fmt.Errorf("load tiers: %q: %w", path, err)
	}

	return tiers, nil
}

func validateTiers(tiers services.TierSet) error {
	for _, t := range []services.Tier{tiers.Tight, tiers.Normal, tiers.Loose} {
		if t.Name == "" {
			return fmt.Errorf("tier name cannot be empty")
		}
		if t.MinBufferMin > t.MaxBufferMin {
			return fmt.Errorf("tier %s: min_buffer_min %d exceeds max_buffer_min %d", t.Name, t.MinBufferMin, t.MaxBufferMin)
		}
		if t.MinScore < 0 || t.MinScore > 100 {
			return fmt.Errorf("tier %s: min_score %d out of range", t.Name, t.MinScore)
		}
		if t.MaxChainLen < 2 {
			return fmt.Errorf("tier %s: max_chain_len %d must be at least 2", t.Name, t.MaxChainLen)
		}
	}
	return nil
}
