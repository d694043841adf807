package engine

import (
	"github.com/KirkDiggler/skilltree-api/internal/entities/skilltree"
)

// TotalSpent returns the number of points allocated across all skills
func (a *Allocator) TotalSpent(state skilltree.BuildState) int {
	return state.Total()
}

// SpentByCategory returns points per category. Every catalog category is
// present, zero when nothing is spent in it.
func (a *Allocator) SpentByCategory(state skilltree.BuildState) map[skilltree.Category]int {
	spent := make(map[skilltree.Category]int, len(a.catalog.Categories()))
	for _, category := range a.catalog.Categories() {
		spent[category] = a.categoryPoints(state, category)
	}
	return spent
}

// AllocatedSkills returns the skills with at least one point in catalog
// declaration order
func (a *Allocator) AllocatedSkills(state skilltree.BuildState) []AllocatedSkill {
	var allocated []AllocatedSkill
	for _, skill := range a.catalog.Skills() {
		if level := state.Level(skill.ID); level > 0 {
			allocated = append(allocated, AllocatedSkill{Skill: skill, Level: level})
		}
	}
	return allocated
}

// AvailablePoints returns the base budget plus the build's bonus points
func (a *Allocator) AvailablePoints(state skilltree.BuildState) int {
	return a.catalog.Budget().Base + state.BonusPoints
}

// RemainingPoints returns the points that can still be spent
func (a *Allocator) RemainingPoints(state skilltree.BuildState) int {
	return max(0, a.AvailablePoints(state)-state.Total())
}

// PlayerLevel is the in-game level needed to reach this build, one point per
// level capped at the level cap
func (a *Allocator) PlayerLevel(state skilltree.BuildState) int {
	return min(state.Total(), skilltree.MaxPlayerLevel)
}

// Summarize computes every view for state
func (a *Allocator) Summarize(state skilltree.BuildState) *Summary {
	return &Summary{
		TotalSpent:      a.TotalSpent(state),
		AvailablePoints: a.AvailablePoints(state),
		RemainingPoints: a.RemainingPoints(state),
		PlayerLevel:     a.PlayerLevel(state),
		BonusPoints:     state.BonusPoints,
		MaxBonus:        a.catalog.Budget().MaxBonus,
		SpentByCategory: a.SpentByCategory(state),
		Allocated:       a.AllocatedSkills(state),
	}
}
