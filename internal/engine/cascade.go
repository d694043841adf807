package engine

import (
	"slices"

	"github.com/KirkDiggler/skilltree-api/internal/entities/skilltree"
)

// cascade restores the gating invariant after points were taken from origin.
//
// It walks depth first along dependents edges with an explicit stack. A skill
// is re-checked only when one of its inputs changed: a prerequisite was
// cleared, or its category total dropped (threshold skills). Only skills that
// are allocated and unsatisfied in the current state get cleared, and each at
// most once, so skills still reachable through another ANY prerequisite keep
// their points.
func (a *Allocator) cascade(state skilltree.BuildState, origin string) (skilltree.BuildState, []string) {
	var (
		stack   []string
		cleared = make(map[string]bool)
		order   []string
	)

	push := func(id string) {
		stack = a.pushAffected(stack, id)
	}
	push(origin)

	for len(stack) > 0 {
		id := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if cleared[id] || state.Level(id) == 0 {
			continue
		}
		if a.gatingSatisfied(state, a.catalog.Skill(id)) {
			continue
		}

		state = state.WithLevel(id, 0)
		cleared[id] = true
		order = append(order, id)
		push(id)
	}

	return state, order
}

// pushAffected pushes the skills whose gating may change when id loses
// points. They are pushed in reverse so they pop in declaration order.
func (a *Allocator) pushAffected(stack []string, id string) []string {
	skill := a.catalog.Skill(id)

	affected := a.catalog.DependentsOf(id)
	for _, thresholdID := range a.catalog.ThresholdSkills(skill.Category) {
		if thresholdID != id && !slices.Contains(affected, thresholdID) {
			affected = append(affected, thresholdID)
		}
	}

	for i := len(affected) - 1; i >= 0; i-- {
		stack = append(stack, affected[i])
	}
	return stack
}

// Repair normalises a build restored from an untrusted source. Unknown ids are
// dropped, levels and bonus are clamped to the catalog limits, skills whose
// gating is unsatisfied are cleared and, while the build is over budget,
// points are trimmed from the last declared allocated skill. Valid builds come
// back unchanged.
func (a *Allocator) Repair(state skilltree.BuildState) RepairResult {
	budget := a.catalog.Budget()

	result := RepairResult{}
	next := skilltree.BuildState{
		SkillLevels: make(map[string]int, len(state.SkillLevels)),
		BonusPoints: clamp(state.BonusPoints, 0, budget.MaxBonus),
	}

	adjusted := make(map[string]bool)
	for _, id := range state.SkillIDs() {
		skill, ok := a.catalog.Lookup(id)
		if !ok {
			result.Dropped = append(result.Dropped, id)
			continue
		}
		level := clamp(state.Level(id), 0, skill.MaxLevel)
		if level != state.Level(id) {
			adjusted[id] = true
		}
		if level > 0 {
			next.SkillLevels[id] = level
		}
	}

	skills := a.catalog.Skills()
	for {
		next = a.clearUnsatisfied(next, skills, adjusted)

		excess := next.Total() - a.AvailablePoints(next)
		if excess <= 0 {
			break
		}
		for i := len(skills) - 1; i >= 0 && excess > 0; i-- {
			id := skills[i].ID
			level := next.Level(id)
			if level == 0 {
				continue
			}
			take := min(level, excess)
			next = next.WithLevel(id, level-take)
			excess -= take
			adjusted[id] = true
		}
	}

	for _, skill := range skills {
		if adjusted[skill.ID] {
			result.Adjusted = append(result.Adjusted, skill.ID)
		}
	}

	result.Changed = !next.Equal(state)
	if !result.Changed {
		next = state
	}
	result.State = next
	return result
}

// clearUnsatisfied clears allocated skills with unsatisfied gating until no
// more change
func (a *Allocator) clearUnsatisfied(
	state skilltree.BuildState,
	skills []skilltree.Skill,
	adjusted map[string]bool,
) skilltree.BuildState {
	for changed := true; changed; {
		changed = false
		for _, skill := range skills {
			if state.Level(skill.ID) == 0 || a.gatingSatisfied(state, skill) {
				continue
			}
			state = state.WithLevel(skill.ID, 0)
			adjusted[skill.ID] = true
			changed = true
		}
	}
	return state
}
