package planner

import (
	"github.com/KirkDiggler/skilltree-api/internal/engine"
	"github.com/KirkDiggler/skilltree-api/internal/entities/skilltree"
)

// Source records where a session's initial build came from
type Source string

// Build sources, in order of precedence
const (
	SourceToken     Source = "token"
	SourcePersisted Source = "persisted"
	SourceEmpty     Source = "empty"
)

// BuildView is a build with everything the presentation layer renders
type BuildView struct {
	SessionID string
	State     skilltree.BuildState
	Summary   *engine.Summary
	// Token is the share token of State
	Token string
}

// StartSessionInput defines the request for opening a planning session
type StartSessionInput struct {
	// SessionID resumes a persisted build. Empty starts a new session.
	SessionID string
	// Token is the raw build parameter of a share link
	Token string
}

// StartSessionOutput defines the response for opening a planning session
type StartSessionOutput struct {
	Build  *BuildView
	Source Source
	// Repaired is set when the restored build broke catalog rules and was
	// normalised
	Repaired bool
	// TokenRejected is set when a token was given but could not be decoded
	TokenRejected bool
}

// GetBuildInput defines the request for reading a session's build
type GetBuildInput struct {
	SessionID string
}

// GetBuildOutput defines the response for reading a session's build
type GetBuildOutput struct {
	Build *BuildView
}

// SkillInput targets one skill of a session's build
type SkillInput struct {
	SessionID string
	SkillID   string
}

// SetBonusPointsInput defines the request for changing bonus points
type SetBonusPointsInput struct {
	SessionID   string
	BonusPoints int
}

// ResetInput defines the request for clearing a build
type ResetInput struct {
	SessionID string
}

// MutationOutput is returned by every build mutation. Changed is false when
// the engine rejected the mutation.
type MutationOutput struct {
	Build    *BuildView
	Changed  bool
	Cascaded []string
}

// ShareInput defines the request for a share link
type ShareInput struct {
	SessionID string
}

// ShareOutput defines the response for a share link
type ShareOutput struct {
	Token string
	URL   string
}

// ListSkillsInput defines the request for listing the catalog. With a
// SessionID the skills carry that build's levels and statuses.
type ListSkillsInput struct {
	SessionID string
}

// SkillView is one catalog skill as seen from a build
type SkillView struct {
	Skill  skilltree.Skill
	Level  int
	Status skilltree.SkillStatus
}

// ListSkillsOutput defines the response for listing the catalog
type ListSkillsOutput struct {
	CatalogVersion string
	Budget         skilltree.Budget
	Skills         []SkillView
}
