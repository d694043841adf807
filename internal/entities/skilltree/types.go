// Package skilltree contains the skill tree domain types shared by the catalog,
// the allocation engine and the persistence layer.
package skilltree

// Category is one of the mutually exclusive branches of the skill tree
type Category string

// Skill categories
const (
	CategoryConditioning Category = "conditioning"
	CategoryMobility     Category = "mobility"
	CategorySurvival     Category = "survival"
)

// Categories lists every category in display order
var Categories = []Category{
	CategoryConditioning,
	CategoryMobility,
	CategorySurvival,
}

// String returns the category name
func (c Category) String() string {
	return string(c)
}

// IsValid reports whether c is a known category
func (c Category) IsValid() bool {
	switch c {
	case CategoryConditioning, CategoryMobility, CategorySurvival:
		return true
	default:
		return false
	}
}

// Tier is the ordinal rank of a skill. It selects which gating rule family
// applies, it does not order skills within a category.
type Tier int

// Skill tiers
const (
	TierOne   Tier = 1
	TierTwo   Tier = 2
	TierThree Tier = 3
)

// PrerequisiteMode tells the engine how to evaluate a skill's prerequisites
type PrerequisiteMode string

// Prerequisite modes
const (
	// ModeAll requires every prerequisite to have at least one point
	ModeAll PrerequisiteMode = "ALL"
	// ModeAny requires at least one prerequisite to have a point
	ModeAny PrerequisiteMode = "ANY"
)

// SkillSize is a presentation hint carried by the catalog
type SkillSize string

// Skill sizes
const (
	SizeSmall SkillSize = "small"
	SizeBig   SkillSize = "big"
)

// Skill is a single node in the skill graph
type Skill struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	Category    Category  `json:"category"`
	Tier        Tier      `json:"tier"`
	MaxLevel    int       `json:"max_level"`
	Size        SkillSize `json:"size,omitempty"`

	// Prerequisites gate the first point spent in this skill. Empty for branch roots.
	Prerequisites []string         `json:"prerequisites,omitempty"`
	Mode          PrerequisiteMode `json:"mode"`

	// RequiredCategoryPoints is the category threshold. Zero means no threshold.
	RequiredCategoryPoints int `json:"required_category_points,omitempty"`
}

// IsRoot reports whether the skill is a branch root
func (s Skill) IsRoot() bool {
	return len(s.Prerequisites) == 0
}

// HasThreshold reports whether the skill is gated by a category threshold
func (s Skill) HasThreshold() bool {
	return s.RequiredCategoryPoints > 0
}

// Budget holds the point constants of a catalog version
type Budget struct {
	// Base is the number of ordinary points available to every build
	Base int `json:"base"`
	// MaxBonus is the ceiling on separately acquired bonus points
	MaxBonus int `json:"max_bonus"`
}

// SkillStatus is the observable state of one skill within a build
type SkillStatus string

// Skill statuses
const (
	StatusLocked    SkillStatus = "LOCKED"
	StatusAvailable SkillStatus = "AVAILABLE"
	StatusAllocated SkillStatus = "ALLOCATED"
	StatusMaxed     SkillStatus = "MAXED"
)
