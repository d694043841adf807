// Package catalog holds the immutable skill definitions of one game version
// and the graph lookups the allocation engine needs.
package catalog

import (
	"fmt"
	"slices"
	"strings"

	"github.com/KirkDiggler/skilltree-api/internal/entities/skilltree"
	"github.com/KirkDiggler/skilltree-api/internal/errors"
)

// Config describes a catalog version
type Config struct {
	Version string
	Budget  skilltree.Budget
	Skills  []skilltree.Skill
}

// Validate checks the scalar fields. Graph rules are checked by New.
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.Version == "" {
		vb.RequiredField("Version")
	}
	if c.Budget.Base <= 0 {
		vb.Fieldf("Budget.Base", "must be positive, got %d", c.Budget.Base)
	}
	if c.Budget.MaxBonus < 0 {
		vb.Fieldf("Budget.MaxBonus", "must not be negative, got %d", c.Budget.MaxBonus)
	}
	if len(c.Skills) == 0 {
		vb.RequiredField("Skills")
	}

	return vb.Build()
}

// Catalog is a read-only view over a validated skill graph. Skills returned by
// its methods share memory with the catalog and must not be modified.
type Catalog struct {
	version    string
	budget     skilltree.Budget
	skills     []skilltree.Skill
	index      map[string]int
	dependents map[string][]string
	byCategory map[skilltree.Category][]int
	categories []skilltree.Category
}

// New validates the configuration and builds the lookup tables
func New(cfg *Config) (*Catalog, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("catalog config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid catalog config")
	}

	c := &Catalog{
		version:    cfg.Version,
		budget:     cfg.Budget,
		skills:     make([]skilltree.Skill, len(cfg.Skills)),
		index:      make(map[string]int, len(cfg.Skills)),
		dependents: make(map[string][]string, len(cfg.Skills)),
		byCategory: make(map[skilltree.Category][]int),
	}

	for i, skill := range cfg.Skills {
		if skill.Mode == "" {
			skill.Mode = skilltree.ModeAll
		}
		skill.Prerequisites = slices.Clone(skill.Prerequisites)
		c.skills[i] = skill
	}

	if err := c.indexSkills(); err != nil {
		return nil, errors.Wrapf(err, "invalid catalog %s", cfg.Version)
	}
	if err := c.checkAcyclic(); err != nil {
		return nil, errors.Wrapf(err, "invalid catalog %s", cfg.Version)
	}

	return c, nil
}

func (c *Catalog) indexSkills() error {
	vb := errors.NewValidationBuilder()

	for i, skill := range c.skills {
		field := fmt.Sprintf("skills[%d]", i)
		if skill.ID == "" {
			vb.Field(field, "id is required")
			continue
		}
		if _, dup := c.index[skill.ID]; dup {
			vb.Fieldf(skill.ID, "duplicate skill id")
			continue
		}
		c.index[skill.ID] = i

		if !skill.Category.IsValid() {
			vb.Fieldf(skill.ID, "unknown category %q", skill.Category)
		}
		if skill.Tier < skilltree.TierOne || skill.Tier > skilltree.TierThree {
			vb.Fieldf(skill.ID, "tier must be between 1 and 3, got %d", skill.Tier)
		}
		if skill.MaxLevel < 1 {
			vb.Fieldf(skill.ID, "max level must be at least 1, got %d", skill.MaxLevel)
		}
		if skill.RequiredCategoryPoints < 0 {
			vb.Fieldf(skill.ID, "required category points must not be negative")
		}
		if skill.Mode != skilltree.ModeAll && skill.Mode != skilltree.ModeAny {
			vb.Fieldf(skill.ID, "unknown prerequisite mode %q", skill.Mode)
		}
		if skill.IsRoot() && skill.Mode == skilltree.ModeAny {
			vb.Fieldf(skill.ID, "ANY mode requires prerequisites")
		}
	}

	for i, skill := range c.skills {
		if c.index[skill.ID] != i {
			continue
		}
		seen := make(map[string]bool, len(skill.Prerequisites))
		for _, prereq := range skill.Prerequisites {
			if seen[prereq] {
				vb.Fieldf(skill.ID, "prerequisite %s listed twice", prereq)
				continue
			}
			seen[prereq] = true

			idx, ok := c.index[prereq]
			if !ok {
				vb.Fieldf(skill.ID, "unknown prerequisite %s", prereq)
				continue
			}
			if c.skills[idx].Category != skill.Category {
				vb.Fieldf(skill.ID, "prerequisite %s belongs to category %s", prereq, c.skills[idx].Category)
				continue
			}
			c.dependents[prereq] = append(c.dependents[prereq], skill.ID)
		}

		if _, ok := c.byCategory[skill.Category]; !ok {
			c.categories = append(c.categories, skill.Category)
		}
		c.byCategory[skill.Category] = append(c.byCategory[skill.Category], i)
	}

	for _, category := range c.categories {
		if len(c.rootsOf(category)) == 0 {
			vb.Fieldf(string(category), "category has no root skill")
		}
	}

	return vb.Build()
}

// checkAcyclic walks prerequisite edges depth first and reports the first cycle
func (c *Catalog) checkAcyclic() error {
	const (
		unvisited = iota
		inProgress
		done
	)

	marks := make([]int, len(c.skills))
	var path []string

	var visit func(i int) error
	visit = func(i int) error {
		switch marks[i] {
		case done:
			return nil
		case inProgress:
			start := slices.Index(path, c.skills[i].ID)
			cycle := append(slices.Clone(path[start:]), c.skills[i].ID)
			return errors.InvalidArgumentf("prerequisite cycle: %s", strings.Join(cycle, " -> ")).
				WithMeta("skill_id", c.skills[i].ID)
		}

		marks[i] = inProgress
		path = append(path, c.skills[i].ID)
		for _, prereq := range c.skills[i].Prerequisites {
			if err := visit(c.index[prereq]); err != nil {
				return err
			}
		}
		path = path[:len(path)-1]
		marks[i] = done
		return nil
	}

	for i := range c.skills {
		if err := visit(i); err != nil {
			return err
		}
	}
	return nil
}

// Version returns the catalog version string
func (c *Catalog) Version() string {
	return c.version
}

// Budget returns the point constants of this catalog version
func (c *Catalog) Budget() skilltree.Budget {
	return c.budget
}

// Len returns the number of skills
func (c *Catalog) Len() int {
	return len(c.skills)
}

// Skill returns the skill with the given id. Unknown ids are a programming
// error: ids handed to the engine come from the catalog itself, and callers
// holding user input must use Lookup first.
func (c *Catalog) Skill(id string) skilltree.Skill {
	idx, ok := c.index[id]
	if !ok {
		panic(fmt.Sprintf("catalog %s: unknown skill id %q", c.version, id))
	}
	return c.skills[idx]
}

// Lookup returns the skill with the given id and whether it exists
func (c *Catalog) Lookup(id string) (skilltree.Skill, bool) {
	idx, ok := c.index[id]
	if !ok {
		return skilltree.Skill{}, false
	}
	return c.skills[idx], true
}

// Has reports whether the catalog defines the id
func (c *Catalog) Has(id string) bool {
	_, ok := c.index[id]
	return ok
}

// Position returns the declaration index of a skill, or -1
func (c *Catalog) Position(id string) int {
	idx, ok := c.index[id]
	if !ok {
		return -1
	}
	return idx
}

// Skills returns every skill in declaration order
func (c *Catalog) Skills() []skilltree.Skill {
	return slices.Clone(c.skills)
}

// Categories returns the categories in order of first declaration
func (c *Catalog) Categories() []skilltree.Category {
	return slices.Clone(c.categories)
}

// SkillsInCategory returns the category's skills in declaration order
func (c *Catalog) SkillsInCategory(category skilltree.Category) []skilltree.Skill {
	indexes := c.byCategory[category]
	out := make([]skilltree.Skill, len(indexes))
	for i, idx := range indexes {
		out[i] = c.skills[idx]
	}
	return out
}

// ThresholdSkills returns the skills of a category gated by a category threshold
func (c *Catalog) ThresholdSkills(category skilltree.Category) []string {
	var ids []string
	for _, idx := range c.byCategory[category] {
		if c.skills[idx].HasThreshold() {
			ids = append(ids, c.skills[idx].ID)
		}
	}
	return ids
}

// DependentsOf returns the ids of skills listing id as a prerequisite,
// in declaration order
func (c *Catalog) DependentsOf(id string) []string {
	if !c.Has(id) {
		panic(fmt.Sprintf("catalog %s: unknown skill id %q", c.version, id))
	}
	return slices.Clone(c.dependents[id])
}

// Roots returns the branch roots in declaration order
func (c *Catalog) Roots() []skilltree.Skill {
	var roots []skilltree.Skill
	for _, category := range c.categories {
		roots = append(roots, c.rootsOf(category)...)
	}
	return roots
}

func (c *Catalog) rootsOf(category skilltree.Category) []skilltree.Skill {
	var roots []skilltree.Skill
	for _, idx := range c.byCategory[category] {
		if c.skills[idx].IsRoot() {
			roots = append(roots, c.skills[idx])
		}
	}
	return roots
}
