package engine

import (
	"github.com/KirkDiggler/rpg-toolkit/dice"

	"github.com/KirkDiggler/skilltree-api/internal/entities/skilltree"
	"github.com/KirkDiggler/skilltree-api/internal/errors"
)

// RandomBuild spends the remaining budget one point at a time, rolling a die
// sized to the number of currently allocatable skills to pick the next one.
// Existing allocations are kept.
func (a *Allocator) RandomBuild(state skilltree.BuildState, roller dice.Roller) (skilltree.BuildState, error) {
	if roller == nil {
		return state, errors.InvalidArgument("dice roller is required")
	}

	skills := a.catalog.Skills()
	candidates := make([]string, 0, len(skills))

	for a.RemainingPoints(state) > 0 {
		candidates = candidates[:0]
		for _, skill := range skills {
			if a.CanAllocate(state, skill.ID) {
				candidates = append(candidates, skill.ID)
			}
		}
		if len(candidates) == 0 {
			break
		}

		roll, err := roller.Roll(len(candidates))
		if err != nil {
			return state, errors.Wrap(err, "failed to roll for next skill")
		}
		if roll < 1 || roll > len(candidates) {
			return state, errors.Internalf("roll %d outside 1..%d", roll, len(candidates))
		}

		state = a.Allocate(state, candidates[roll-1])
	}

	return state, nil
}
