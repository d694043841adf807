package builders

import (
	"github.com/KirkDiggler/skilltree-api/internal/entities/skilltree"
)

// BuildStateBuilder provides a fluent interface for building test BuildState instances
type BuildStateBuilder struct {
	state skilltree.BuildState
}

// NewBuildState creates an empty build
func NewBuildState() *BuildStateBuilder {
	return &BuildStateBuilder{state: skilltree.NewBuildState()}
}

// WithLevel sets a skill level without any rule checks
func (b *BuildStateBuilder) WithLevel(id string, level int) *BuildStateBuilder {
	b.state = b.state.WithLevel(id, level)
	return b
}

// WithBonus sets the bonus points without any rule checks
func (b *BuildStateBuilder) WithBonus(points int) *BuildStateBuilder {
	b.state.BonusPoints = points
	return b
}

// Build returns the build
func (b *BuildStateBuilder) Build() skilltree.BuildState {
	return b.state.Clone()
}
