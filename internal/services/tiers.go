package services

// Tier is a named strictness preset controlling merge admission.
// Thresholds are empirically tuned defaults meant to be adjusted per
// deployment, not physical constants.
type Tier struct {
	Name         string `yaml:"name"`
	MinBufferMin int    `yaml:"min_buffer_min"`
	MaxBufferMin int    `yaml:"max_buffer_min"`
	MinScore     int    `yaml:"min_score"`
	MaxChainLen  int    `yaml:"max_chain_len"`
}

// The three tiers of one layered suggestion pass.
type TierSet struct {
	Tight  Tier `yaml:"tight"`
	Normal Tier `yaml:"normal"`
	Loose  Tier `yaml:"loose"`
}

// DefaultTiers returns the standard tight/normal/loose presets.
// Tight caps chains at 3 orders; longer speculative chains belong to
// the wider tiers.
func DefaultTiers() TierSet {
	return TierSet{
		Tight:  Tier{Name: "tight", MinBufferMin: 10, MaxBufferMin: 45, MinScore: 70, MaxChainLen: 3},
		Normal: Tier{Name: "normal", MinBufferMin: 5, MaxBufferMin: 90, MinScore: 55, MaxChainLen: 4},
		Loose:  Tier{Name: "loose", MinBufferMin: 0, MaxBufferMin: 120, MinScore: 40, MaxChainLen: 4},
	}
}
