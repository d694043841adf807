package skilltree

// Point constants of the shipped catalog. Catalog files may override them.
const (
	// DefaultBaseBudget is the number of ordinary points (levels 0-75)
	DefaultBaseBudget = 76

	// DefaultMaxBonus is the ceiling on bonus points from expedition projects
	DefaultMaxBonus = 5

	// MaxPlayerLevel caps the player level derived from points spent
	MaxPlayerLevel = 75
)

// Category thresholds for gated tiers
const (
	TierTwoThreshold   = 15
	TierThreeThreshold = 36
)
