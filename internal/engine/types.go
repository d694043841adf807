package engine

import (
	"github.com/KirkDiggler/skilltree-api/internal/entities/skilltree"
)

// Removal is the result of taking points out of a build
type Removal struct {
	State skilltree.BuildState
	// Cascaded lists the skills cleared to restore gating, in clear order
	Cascaded []string
}

// RepairResult is the outcome of normalising an untrusted build
type RepairResult struct {
	State   skilltree.BuildState
	Changed bool
	// Dropped holds ids the catalog does not define
	Dropped []string
	// Adjusted holds known ids whose level was lowered, in declaration order
	Adjusted []string
}

// AllocatedSkill pairs a skill with the points spent in it
type AllocatedSkill struct {
	Skill skilltree.Skill
	Level int
}

// Summary bundles the derived views the presentation layer renders after
// every mutation
type Summary struct {
	TotalSpent      int
	AvailablePoints int
	RemainingPoints int
	PlayerLevel     int
	BonusPoints     int
	MaxBonus        int
	SpentByCategory map[skilltree.Category]int
	Allocated       []AllocatedSkill
}
