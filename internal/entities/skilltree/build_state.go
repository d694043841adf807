package skilltree

import (
	"maps"
	"slices"
)

// BuildState is the chosen allocation of points for one planning session.
// Skills absent from SkillLevels have level 0; zero levels are never stored.
//
// A BuildState value is treated as immutable by the engine: mutations always
// return a new value and never write to the input's map.
type BuildState struct {
	SkillLevels map[string]int `json:"skillLevels"`
	BonusPoints int            `json:"bonusPoints"`
}

// NewBuildState returns an empty build
func NewBuildState() BuildState {
	return BuildState{SkillLevels: map[string]int{}}
}

// Level returns the points spent in the given skill
func (b BuildState) Level(id string) int {
	return b.SkillLevels[id]
}

// Total returns the sum of all skill levels
func (b BuildState) Total() int {
	total := 0
	for _, level := range b.SkillLevels {
		total += level
	}
	return total
}

// IsEmpty reports whether no points are spent and no bonus is set
func (b BuildState) IsEmpty() bool {
	return len(b.SkillLevels) == 0 && b.BonusPoints == 0
}

// Clone returns a deep copy of the build
func (b BuildState) Clone() BuildState {
	levels := make(map[string]int, len(b.SkillLevels)+1)
	maps.Copy(levels, b.SkillLevels)
	return BuildState{SkillLevels: levels, BonusPoints: b.BonusPoints}
}

// WithLevel returns a copy with the skill set to level. A level of zero
// removes the skill from the map.
func (b BuildState) WithLevel(id string, level int) BuildState {
	next := b.Clone()
	if level <= 0 {
		delete(next.SkillLevels, id)
	} else {
		next.SkillLevels[id] = level
	}
	return next
}

// Equal reports whether both builds hold the same levels and bonus
func (b BuildState) Equal(other BuildState) bool {
	if b.BonusPoints != other.BonusPoints {
		return false
	}
	return maps.Equal(b.normalized(), other.normalized())
}

// SkillIDs returns the allocated skill ids sorted lexicographically
func (b BuildState) SkillIDs() []string {
	ids := make([]string, 0, len(b.SkillLevels))
	for id, level := range b.SkillLevels {
		if level > 0 {
			ids = append(ids, id)
		}
	}
	slices.Sort(ids)
	return ids
}

func (b BuildState) normalized() map[string]int {
	out := make(map[string]int, len(b.SkillLevels))
	for id, level := range b.SkillLevels {
		if level != 0 {
			out[id] = level
		}
	}
	return out
}
