package skilltree

import "github.com/KirkDiggler/rpg-toolkit/core"

// Entity types reported to rpg-toolkit
const (
	EntityTypeBuild = "skill_build"
	EntityTypeSkill = "skill"
)

// BuildEntity identifies a planning session to rpg-toolkit
type BuildEntity struct {
	SessionID string
}

// GetID returns the session ID
func (b *BuildEntity) GetID() string {
	return b.SessionID
}

// GetType returns the entity type for rpg-toolkit
func (b *BuildEntity) GetType() string {
	return EntityTypeBuild
}

// SkillEntity wraps a Skill to implement core.Entity
type SkillEntity struct {
	Skill
}

// GetID returns the skill ID
func (s *SkillEntity) GetID() string {
	return s.ID
}

// GetType returns the entity type for rpg-toolkit
func (s *SkillEntity) GetType() string {
	return EntityTypeSkill
}

// Compile-time check that the wrappers implement core.Entity
var (
	_ core.Entity = (*BuildEntity)(nil)
	_ core.Entity = (*SkillEntity)(nil)
)
