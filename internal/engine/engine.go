package engine

import (
	"github.com/KirkDiggler/skilltree-api/internal/catalog"
	"github.com/KirkDiggler/skilltree-api/internal/entities/skilltree"
	"github.com/KirkDiggler/skilltree-api/internal/errors"
)

// Config contains the dependencies of an Allocator
type Config struct {
	Catalog *catalog.Catalog
}

// Validate checks that all required dependencies are provided
func (c *Config) Validate() error {
	if c.Catalog == nil {
		return errors.InvalidArgument("catalog is required")
	}
	return nil
}

// Allocator implements Engine over one catalog version
type Allocator struct {
	catalog *catalog.Catalog
}

// New creates an allocator for the configured catalog
func New(cfg *Config) (*Allocator, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &Allocator{catalog: cfg.Catalog}, nil
}

var _ Engine = (*Allocator)(nil)

// Catalog returns the catalog the allocator validates against
func (a *Allocator) Catalog() *catalog.Catalog {
	return a.catalog
}

// CanAllocate reports whether one more point may be spent in id
func (a *Allocator) CanAllocate(state skilltree.BuildState, id string) bool {
	skill := a.catalog.Skill(id)

	if state.Level(id) >= skill.MaxLevel {
		return false
	}
	if !a.gatingSatisfied(state, skill) {
		return false
	}
	return state.Total() < a.AvailablePoints(state)
}

// Allocate spends one point in id, or returns state unchanged when the
// allocation is not legal
func (a *Allocator) Allocate(state skilltree.BuildState, id string) skilltree.BuildState {
	if !a.CanAllocate(state, id) {
		return state
	}
	return state.WithLevel(id, state.Level(id)+1)
}

// CanDeallocate reports whether one point can be taken from id without
// stranding a dependent. Above level 1 it always can; the last point is held
// while an allocated dependent relies on id as its only satisfied
// prerequisite.
func (a *Allocator) CanDeallocate(state skilltree.BuildState, id string) bool {
	a.catalog.Skill(id)

	level := state.Level(id)
	switch {
	case level == 0:
		return false
	case level > 1:
		return true
	}

	next := state.WithLevel(id, 0)
	for _, dependentID := range a.catalog.DependentsOf(id) {
		if next.Level(dependentID) == 0 {
			continue
		}
		if !prerequisitesMet(next, a.catalog.Skill(dependentID)) {
			return false
		}
	}
	return true
}

// Deallocate takes one point from id. Dependents that lose gating as a result
// are cleared before the new state is returned.
func (a *Allocator) Deallocate(state skilltree.BuildState, id string) skilltree.BuildState {
	return a.RemovePoint(state, id).State
}

// RemovePoint is Deallocate that also reports which dependents were cleared
func (a *Allocator) RemovePoint(state skilltree.BuildState, id string) Removal {
	a.catalog.Skill(id)

	level := state.Level(id)
	if level == 0 {
		return Removal{State: state}
	}

	next, cascaded := a.cascade(state.WithLevel(id, level-1), id)
	return Removal{State: next, Cascaded: cascaded}
}

// ClearSkill removes every point spent in id, cascading to its dependents
func (a *Allocator) ClearSkill(state skilltree.BuildState, id string) Removal {
	a.catalog.Skill(id)

	if state.Level(id) == 0 {
		return Removal{State: state}
	}

	next, cascaded := a.cascade(state.WithLevel(id, 0), id)
	return Removal{State: next, Cascaded: cascaded}
}

// SetBonusPoints sets the bonus allowance, clamped to the catalog's maximum.
// Lowering the bonus below what is already spent is rejected and state is
// returned unchanged.
func (a *Allocator) SetBonusPoints(state skilltree.BuildState, n int) skilltree.BuildState {
	budget := a.catalog.Budget()
	n = clamp(n, 0, budget.MaxBonus)

	if n == state.BonusPoints {
		return state
	}
	if state.Total() > budget.Base+n {
		return state
	}

	next := state.Clone()
	next.BonusPoints = n
	return next
}

// Reset returns an empty build with no bonus points
func (a *Allocator) Reset() skilltree.BuildState {
	return skilltree.NewBuildState()
}

// gatingSatisfied evaluates the prerequisite rule and the category threshold.
// The threshold compares against every point spent in the category.
func (a *Allocator) gatingSatisfied(state skilltree.BuildState, skill skilltree.Skill) bool {
	if !prerequisitesMet(state, skill) {
		return false
	}
	if !skill.HasThreshold() {
		return true
	}
	return a.categoryPoints(state, skill.Category) >= skill.RequiredCategoryPoints
}

func prerequisitesMet(state skilltree.BuildState, skill skilltree.Skill) bool {
	if skill.IsRoot() {
		return true
	}

	switch skill.Mode {
	case skilltree.ModeAny:
		for _, prereq := range skill.Prerequisites {
			if state.Level(prereq) > 0 {
				return true
			}
		}
		return false
	default:
		for _, prereq := range skill.Prerequisites {
			if state.Level(prereq) == 0 {
				return false
			}
		}
		return true
	}
}

func (a *Allocator) categoryPoints(state skilltree.BuildState, category skilltree.Category) int {
	total := 0
	for _, skill := range a.catalog.SkillsInCategory(category) {
		total += state.Level(skill.ID)
	}
	return total
}

func clamp(n, lo, hi int) int {
	return max(lo, min(n, hi))
}
