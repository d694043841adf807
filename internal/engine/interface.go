// Package engine applies the allocation rules of a skill catalog to build
// states. Every operation is a pure function of its inputs: the input state is
// never modified and rejected mutations return it unchanged.
package engine

//go:generate mockgen -destination=mock/mock_engine.go -package=enginemock github.com/KirkDiggler/skilltree-api/internal/engine Engine

import (
	"github.com/KirkDiggler/rpg-toolkit/dice"

	"github.com/KirkDiggler/skilltree-api/internal/catalog"
	"github.com/KirkDiggler/skilltree-api/internal/entities/skilltree"
)

// Engine decides which allocations are legal and performs them
type Engine interface {
	Catalog() *catalog.Catalog

	// Mutations
	CanAllocate(state skilltree.BuildState, id string) bool
	Allocate(state skilltree.BuildState, id string) skilltree.BuildState
	CanDeallocate(state skilltree.BuildState, id string) bool
	Deallocate(state skilltree.BuildState, id string) skilltree.BuildState
	RemovePoint(state skilltree.BuildState, id string) Removal
	ClearSkill(state skilltree.BuildState, id string) Removal
	SetBonusPoints(state skilltree.BuildState, n int) skilltree.BuildState
	Reset() skilltree.BuildState
	Repair(state skilltree.BuildState) RepairResult
	RandomBuild(state skilltree.BuildState, roller dice.Roller) (skilltree.BuildState, error)

	// Views
	Status(state skilltree.BuildState, id string) skilltree.SkillStatus
	TotalSpent(state skilltree.BuildState) int
	SpentByCategory(state skilltree.BuildState) map[skilltree.Category]int
	AllocatedSkills(state skilltree.BuildState) []AllocatedSkill
	AvailablePoints(state skilltree.BuildState) int
	RemainingPoints(state skilltree.BuildState) int
	PlayerLevel(state skilltree.BuildState) int
	Summarize(state skilltree.BuildState) *Summary
}
