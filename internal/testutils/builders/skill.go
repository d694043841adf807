// Package builders provides test data builders for creating test fixtures
package builders

import (
	"github.com/KirkDiggler/skilltree-api/internal/entities/skilltree"
)

// SkillBuilder provides a fluent interface for building test Skill instances
type SkillBuilder struct {
	skill skilltree.Skill
}

// NewSkill creates a tier 1 conditioning skill with max level 5 and no prerequisites
func NewSkill(id string) *SkillBuilder {
	return &SkillBuilder{
		skill: skilltree.Skill{
			ID:       id,
			Name:     id,
			Category: skilltree.CategoryConditioning,
			Tier:     skilltree.TierOne,
			MaxLevel: 5,
			Mode:     skilltree.ModeAll,
			Size:     skilltree.SizeSmall,
		},
	}
}

// InCategory sets the category
func (b *SkillBuilder) InCategory(category skilltree.Category) *SkillBuilder {
	b.skill.Category = category
	return b
}

// WithTier sets the tier
func (b *SkillBuilder) WithTier(tier skilltree.Tier) *SkillBuilder {
	b.skill.Tier = tier
	return b
}

// WithMaxLevel sets the max level
func (b *SkillBuilder) WithMaxLevel(maxLevel int) *SkillBuilder {
	b.skill.MaxLevel = maxLevel
	return b
}

// Requires sets the prerequisites in ALL mode
func (b *SkillBuilder) Requires(ids ...string) *SkillBuilder {
	b.skill.Prerequisites = ids
	b.skill.Mode = skilltree.ModeAll
	return b
}

// RequiresAny sets the prerequisites in ANY mode
func (b *SkillBuilder) RequiresAny(ids ...string) *SkillBuilder {
	b.skill.Prerequisites = ids
	b.skill.Mode = skilltree.ModeAny
	return b
}

// WithThreshold sets the required category points
func (b *SkillBuilder) WithThreshold(points int) *SkillBuilder {
	b.skill.RequiredCategoryPoints = points
	return b
}

// Capstone marks the skill as a tier 3, single point skill gated at threshold
func (b *SkillBuilder) Capstone(threshold int) *SkillBuilder {
	b.skill.Tier = skilltree.TierThree
	b.skill.MaxLevel = 1
	b.skill.Size = skilltree.SizeBig
	b.skill.RequiredCategoryPoints = threshold
	return b
}

// Build returns the skill
func (b *SkillBuilder) Build() skilltree.Skill {
	return b.skill
}
