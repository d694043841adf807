package engine_test

import (
	"math/rand"

	"github.com/KirkDiggler/skilltree-api/internal/catalog"
	"github.com/KirkDiggler/skilltree-api/internal/engine"
	"github.com/KirkDiggler/skilltree-api/internal/entities/skilltree"
)

// allocateN calls Allocate n times
func allocateN(e engine.Engine, state skilltree.BuildState, id string, n int) skilltree.BuildState {
	for range n {
		state = e.Allocate(state, id)
	}
	return state
}

// deallocateN calls Deallocate n times
func deallocateN(e engine.Engine, state skilltree.BuildState, id string, n int) skilltree.BuildState {
	for range n {
		state = e.Deallocate(state, id)
	}
	return state
}

// satisfied is an independent reading of the gating rule used to check the
// engine from the outside
func satisfied(c *catalog.Catalog, state skilltree.BuildState, skill skilltree.Skill) bool {
	met := 0
	for _, prereq := range skill.Prerequisites {
		if state.Level(prereq) > 0 {
			met++
		}
	}
	switch {
	case len(skill.Prerequisites) == 0:
	case skill.Mode == skilltree.ModeAny && met == 0:
		return false
	case skill.Mode == skilltree.ModeAll && met != len(skill.Prerequisites):
		return false
	}

	category := 0
	for _, other := range c.SkillsInCategory(skill.Category) {
		category += state.Level(other.ID)
	}
	return category >= skill.RequiredCategoryPoints
}

// invariantViolations lists every broken build invariant
func invariantViolations(c *catalog.Catalog, state skilltree.BuildState) []string {
	var out []string

	budget := c.Budget()
	if state.BonusPoints < 0 || state.BonusPoints > budget.MaxBonus {
		out = append(out, "bonus out of range")
	}
	if state.Total() > budget.Base+state.BonusPoints {
		out = append(out, "over budget")
	}
	for id, level := range state.SkillLevels {
		skill, ok := c.Lookup(id)
		if !ok {
			out = append(out, "unknown id "+id)
			continue
		}
		if level <= 0 || level > skill.MaxLevel {
			out = append(out, "level out of range for "+id)
		}
		if !satisfied(c, state, skill) {
			out = append(out, "gating unsatisfied for "+id)
		}
	}
	return out
}

// randRoller implements dice.Roller on a seeded source
type randRoller struct {
	rng *rand.Rand
}

func (r *randRoller) Roll(size int) (int, error) {
	return r.rng.Intn(size) + 1, nil
}

func (r *randRoller) RollN(count, size int) ([]int, error) {
	out := make([]int, count)
	for i := range out {
		out[i], _ = r.Roll(size)
	}
	return out, nil
}

// fixedRoller always rolls the same value
type fixedRoller struct {
	value int
	err   error
}

func (r *fixedRoller) Roll(_ int) (int, error) {
	return r.value, r.err
}

func (r *fixedRoller) RollN(count, _ int) ([]int, error) {
	out := make([]int, count)
	for i := range out {
		out[i] = r.value
	}
	return out, r.err
}
