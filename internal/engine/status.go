package engine

import (
	"github.com/KirkDiggler/skilltree-api/internal/entities/skilltree"
)

// Status returns the state machine view of one skill. Budget is not
// considered: a skill whose gating is met stays AVAILABLE when no points are
// left.
func (a *Allocator) Status(state skilltree.BuildState, id string) skilltree.SkillStatus {
	skill := a.catalog.Skill(id)

	level := state.Level(id)
	switch {
	case level >= skill.MaxLevel:
		return skilltree.StatusMaxed
	case level > 0:
		return skilltree.StatusAllocated
	case a.gatingSatisfied(state, skill):
		return skilltree.StatusAvailable
	default:
		return skilltree.StatusLocked
	}
}
