// Package planner implements the build planner orchestrator. It owns one
// BuildState per planning session, runs user intents through the allocation
// engine and writes accepted builds through to the build repository.
package planner

//go:generate mockgen -destination=mock/mock_service.go -package=plannermock github.com/KirkDiggler/skilltree-api/internal/orchestrators/planner Service

import (
	"context"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/KirkDiggler/rpg-toolkit/events"

	"github.com/KirkDiggler/skilltree-api/internal/catalog"
	"github.com/KirkDiggler/skilltree-api/internal/codec"
	"github.com/KirkDiggler/skilltree-api/internal/engine"
	"github.com/KirkDiggler/skilltree-api/internal/entities/skilltree"
	"github.com/KirkDiggler/skilltree-api/internal/errors"
	"github.com/KirkDiggler/skilltree-api/internal/pkg/clock"
	"github.com/KirkDiggler/skilltree-api/internal/pkg/idgen"
	"github.com/KirkDiggler/skilltree-api/internal/repositories/build"
)

// SharePath is appended to the share base URL
const SharePath = "/skill-tree"

// ShareParam is the query parameter carrying the build token
const ShareParam = "build"

// DefaultSessionIdleTTL is how long an untouched session stays in memory
const DefaultSessionIdleTTL = 30 * time.Minute

// Operation labels used in logs and metrics
const (
	OpAllocate       = "allocate"
	OpDeallocate     = "deallocate"
	OpClearSkill     = "clear_skill"
	OpSetBonusPoints = "set_bonus_points"
	OpReset          = "reset"
)

const (
	errSessionIDRequired = "session ID is required"
	errSkillIDRequired   = "skill ID is required"
	errSessionNotFound   = "session not found"
	errSkillNotFound     = "skill not found"
	errStoreUnavailable  = "failed to load stored build"
)

// Service defines the interface for build planning
type Service interface {
	// Sessions
	StartSession(ctx context.Context, input *StartSessionInput) (*StartSessionOutput, error)
	GetBuild(ctx context.Context, input *GetBuildInput) (*GetBuildOutput, error)

	// Mutations
	Allocate(ctx context.Context, input *SkillInput) (*MutationOutput, error)
	Deallocate(ctx context.Context, input *SkillInput) (*MutationOutput, error)
	ClearSkill(ctx context.Context, input *SkillInput) (*MutationOutput, error)
	SetBonusPoints(ctx context.Context, input *SetBonusPointsInput) (*MutationOutput, error)
	Reset(ctx context.Context, input *ResetInput) (*MutationOutput, error)

	// Views
	Share(ctx context.Context, input *ShareInput) (*ShareOutput, error)
	ListSkills(ctx context.Context, input *ListSkillsInput) (*ListSkillsOutput, error)
}

// Config holds the dependencies for the planner orchestrator
type Config struct {
	Engine      engine.Engine
	Repository  build.Repository
	EventBus    events.EventBus
	IDGenerator idgen.Generator

	// ShareBaseURL is the site origin share links point at
	ShareBaseURL string

	// Metrics is optional; nil keeps unregistered collectors
	Metrics *Metrics

	// Clock defaults to the system clock
	Clock clock.Clock

	// SessionIdleTTL evicts sessions nobody touched for this long. Their
	// builds are reloaded from the repository on the next call. Zero uses
	// DefaultSessionIdleTTL.
	SessionIdleTTL time.Duration
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	if c == nil {
		return errors.InvalidArgument("config is required")
	}

	vb := errors.NewValidationBuilder()

	if c.Engine == nil {
		vb.RequiredField("Engine")
	}
	if c.Repository == nil {
		vb.RequiredField("Repository")
	}
	if c.EventBus == nil {
		vb.RequiredField("EventBus")
	}
	if c.IDGenerator == nil {
		vb.RequiredField("IDGenerator")
	}
	if c.ShareBaseURL == "" {
		vb.RequiredField("ShareBaseURL")
	}
	if c.SessionIdleTTL < 0 {
		vb.Fieldf("SessionIdleTTL", "must not be negative, got %s", c.SessionIdleTTL)
	}

	return vb.Build()
}

type session struct {
	mu    sync.Mutex
	state skilltree.BuildState

	loaded  bool
	evicted bool

	// dirty is set while the latest build failed to save; such sessions are
	// never evicted
	dirty    bool
	lastUsed time.Time
}

type orchestrator struct {
	engine       engine.Engine
	catalog      *catalog.Catalog
	repo         build.Repository
	eventBus     events.EventBus
	idGen        idgen.Generator
	shareBaseURL string
	metrics      *Metrics
	clock        clock.Clock
	idleTTL      time.Duration

	mu        sync.Mutex
	sessions  map[string]*session
	lastSweep time.Time
}

// NewOrchestrator creates a new planner orchestrator with the provided dependencies
func NewOrchestrator(cfg *Config) (Service, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	metrics := cfg.Metrics
	if metrics == nil {
		metrics = NewMetrics(nil)
	}
	clk := cfg.Clock
	if clk == nil {
		clk = clock.New()
	}
	idleTTL := cfg.SessionIdleTTL
	if idleTTL == 0 {
		idleTTL = DefaultSessionIdleTTL
	}

	return &orchestrator{
		engine:       cfg.Engine,
		catalog:      cfg.Engine.Catalog(),
		repo:         cfg.Repository,
		eventBus:     cfg.EventBus,
		idGen:        cfg.IDGenerator,
		shareBaseURL: strings.TrimRight(cfg.ShareBaseURL, "/"),
		metrics:      metrics,
		clock:        clk,
		idleTTL:      idleTTL,
		sessions:     make(map[string]*session),
		lastSweep:    clk.Now(),
	}, nil
}

// StartSession opens or resumes a planning session. The initial build comes
// from the share token when it decodes, then from the stored build, and is
// empty otherwise.
func (o *orchestrator) StartSession(ctx context.Context, input *StartSessionInput) (*StartSessionOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	// Generated ids are new, so there is nothing stored to read
	sessionID := input.SessionID
	fresh := sessionID == ""
	if fresh {
		sessionID = o.idGen.Generate()
	}

	sess, found, loadErr := o.acquire(ctx, sessionID, fresh)
	defer sess.mu.Unlock()

	output := &StartSessionOutput{Source: SourceEmpty}
	candidate := skilltree.NewBuildState()

	if input.Token != "" {
		decoded, err := codec.Decode(o.catalog, input.Token)
		if err != nil {
			slog.WarnContext(ctx, "Rejected share token",
				"session_id", sessionID,
				"error", err)
			o.metrics.tokenRejected.Inc()
			output.TokenRejected = true
		} else {
			candidate = decoded
			output.Source = SourceToken
		}
	}

	if loadErr != nil && output.Source != SourceToken {
		return nil, unavailable(loadErr, sessionID)
	}

	if output.Source == SourceEmpty && found {
		candidate = sess.state
		output.Source = SourcePersisted
	}

	repaired := o.engine.Repair(candidate)
	if repaired.Changed {
		slog.InfoContext(ctx, "Repaired restored build",
			"session_id", sessionID,
			"source", output.Source,
			"dropped", repaired.Dropped,
			"adjusted", repaired.Adjusted)
	}
	output.Repaired = repaired.Changed

	sess.state = repaired.State
	sess.loaded = true
	o.save(ctx, sessionID, sess)

	o.metrics.sessionsStarted.WithLabelValues(string(output.Source)).Inc()
	slog.InfoContext(ctx, "Started planning session",
		"session_id", sessionID,
		"source", output.Source,
		"points_spent", o.engine.TotalSpent(sess.state))

	output.Build = o.view(sessionID, sess.state)
	return output, nil
}

// GetBuild returns the current build of a session
func (o *orchestrator) GetBuild(ctx context.Context, input *GetBuildInput) (*GetBuildOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	sess, err := o.existing(ctx, input.SessionID)
	if err != nil {
		return nil, err
	}
	defer sess.mu.Unlock()

	return &GetBuildOutput{Build: o.view(input.SessionID, sess.state)}, nil
}

// Allocate adds one point to a skill
func (o *orchestrator) Allocate(ctx context.Context, input *SkillInput) (*MutationOutput, error) {
	if err := o.validateSkillInput(input); err != nil {
		return nil, err
	}

	output, err := o.mutate(ctx, OpAllocate, input.SessionID, func(state skilltree.BuildState) engine.Removal {
		return engine.Removal{State: o.engine.Allocate(state, input.SkillID)}
	})
	if err != nil {
		return nil, err
	}

	if output.Changed {
		o.publishSkill(ctx, EventSkillAllocated, input.SessionID, input.SkillID)
	}
	return output, nil
}

// Deallocate removes one point from a skill, cascading to dependents that
// lose their gating
func (o *orchestrator) Deallocate(ctx context.Context, input *SkillInput) (*MutationOutput, error) {
	if err := o.validateSkillInput(input); err != nil {
		return nil, err
	}

	output, err := o.mutate(ctx, OpDeallocate, input.SessionID, func(state skilltree.BuildState) engine.Removal {
		return o.engine.RemovePoint(state, input.SkillID)
	})
	if err != nil {
		return nil, err
	}

	if output.Changed {
		o.publishSkill(ctx, EventSkillDeallocated, input.SessionID, input.SkillID)
		o.publishCascade(ctx, input.SessionID, output.Cascaded)
	}
	return output, nil
}

// ClearSkill removes every point from a skill, cascading to dependents that
// lose their gating
func (o *orchestrator) ClearSkill(ctx context.Context, input *SkillInput) (*MutationOutput, error) {
	if err := o.validateSkillInput(input); err != nil {
		return nil, err
	}

	output, err := o.mutate(ctx, OpClearSkill, input.SessionID, func(state skilltree.BuildState) engine.Removal {
		return o.engine.ClearSkill(state, input.SkillID)
	})
	if err != nil {
		return nil, err
	}

	if output.Changed {
		o.publishSkill(ctx, EventSkillCleared, input.SessionID, input.SkillID)
		o.publishCascade(ctx, input.SessionID, output.Cascaded)
	}
	return output, nil
}

// SetBonusPoints changes the expedition bonus, clamped to the catalog's
// maximum. Lowering it below the points already spent is rejected.
func (o *orchestrator) SetBonusPoints(ctx context.Context, input *SetBonusPointsInput) (*MutationOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	output, err := o.mutate(ctx, OpSetBonusPoints, input.SessionID, func(state skilltree.BuildState) engine.Removal {
		return engine.Removal{State: o.engine.SetBonusPoints(state, input.BonusPoints)}
	})
	if err != nil {
		return nil, err
	}

	if output.Changed {
		o.publish(ctx, EventBonusChanged, input.SessionID, nil)
	}
	return output, nil
}

// Reset clears every allocated point and the bonus
func (o *orchestrator) Reset(ctx context.Context, input *ResetInput) (*MutationOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	output, err := o.mutate(ctx, OpReset, input.SessionID, func(skilltree.BuildState) engine.Removal {
		return engine.Removal{State: o.engine.Reset()}
	})
	if err != nil {
		return nil, err
	}

	if output.Changed {
		o.publish(ctx, EventBuildReset, input.SessionID, nil)
	}
	return output, nil
}

// Share returns the token and link for a session's build
func (o *orchestrator) Share(ctx context.Context, input *ShareInput) (*ShareOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	sess, err := o.existing(ctx, input.SessionID)
	if err != nil {
		return nil, err
	}
	defer sess.mu.Unlock()

	token := codec.Encode(sess.state)
	return &ShareOutput{
		Token: token,
		URL:   ShareURL(o.shareBaseURL, token),
	}, nil
}

// ListSkills returns the catalog, annotated with a session's build when one
// is given
func (o *orchestrator) ListSkills(ctx context.Context, input *ListSkillsInput) (*ListSkillsOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	state := skilltree.NewBuildState()
	if input.SessionID != "" {
		sess, err := o.existing(ctx, input.SessionID)
		if err != nil {
			return nil, err
		}
		state = sess.state
		sess.mu.Unlock()
	}

	skills := o.catalog.Skills()
	views := make([]SkillView, 0, len(skills))
	for _, skill := range skills {
		views = append(views, SkillView{
			Skill:  skill,
			Level:  state.Level(skill.ID),
			Status: o.engine.Status(state, skill.ID),
		})
	}

	return &ListSkillsOutput{
		CatalogVersion: o.catalog.Version(),
		Budget:         o.catalog.Budget(),
		Skills:         views,
	}, nil
}

// ShareURL builds the share link for a token
func ShareURL(baseURL, token string) string {
	return strings.TrimRight(baseURL, "/") + SharePath + "?" + ShareParam + "=" + token
}

func (o *orchestrator) validateSkillInput(input *SkillInput) error {
	if input == nil {
		return errors.InvalidArgument("input is required")
	}
	if input.SessionID == "" {
		return errors.InvalidArgument(errSessionIDRequired)
	}
	if input.SkillID == "" {
		return errors.InvalidArgument(errSkillIDRequired)
	}
	if !o.catalog.Has(input.SkillID) {
		return errors.NotFound(errSkillNotFound).WithMeta("skill_id", input.SkillID)
	}
	return nil
}

// mutate applies fn to a session's build under the session lock and writes
// accepted changes through to the repository
func (o *orchestrator) mutate(
	ctx context.Context,
	operation string,
	sessionID string,
	fn func(skilltree.BuildState) engine.Removal,
) (*MutationOutput, error) {
	sess, err := o.existing(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	defer sess.mu.Unlock()

	result := fn(sess.state)
	changed := !result.State.Equal(sess.state)

	if changed {
		sess.state = result.State
		o.save(ctx, sessionID, sess)
	}

	spent := o.engine.TotalSpent(sess.state)
	o.metrics.recordMutation(operation, changed, len(result.Cascaded), spent)

	if len(result.Cascaded) > 0 {
		slog.InfoContext(ctx, "Cascade cleared dependent skills",
			"session_id", sessionID,
			"operation", operation,
			"cleared", result.Cascaded)
	}

	return &MutationOutput{
		Build:    o.view(sessionID, sess.state),
		Changed:  changed,
		Cascaded: result.Cascaded,
	}, nil
}

// existing locks and returns a session that was started here or has a stored
// build. The caller must unlock it.
func (o *orchestrator) existing(ctx context.Context, sessionID string) (*session, error) {
	if sessionID == "" {
		return nil, errors.InvalidArgument(errSessionIDRequired)
	}

	sess, found, err := o.acquire(ctx, sessionID, false)
	if err != nil {
		sess.mu.Unlock()
		return nil, unavailable(err, sessionID)
	}
	if !found {
		o.evict(sessionID, sess)
		sess.mu.Unlock()
		return nil, errors.NotFound(errSessionNotFound).WithMeta("session_id", sessionID)
	}
	return sess, nil
}

// acquire locks the session for sessionID, loading it from the repository
// the first time it is seen. found reports whether a build already existed.
// A failed read leaves the session unloaded so the next call retries it.
func (o *orchestrator) acquire(ctx context.Context, sessionID string, fresh bool) (*session, bool, error) {
	for {
		now := o.clock.Now()

		o.mu.Lock()
		o.sweep(now)
		sess, ok := o.sessions[sessionID]
		if !ok {
			sess = &session{}
			o.sessions[sessionID] = sess
		}
		o.mu.Unlock()

		sess.mu.Lock()
		if sess.evicted {
			sess.mu.Unlock()
			continue
		}
		sess.lastUsed = now
		if sess.loaded {
			return sess, true, nil
		}
		if fresh {
			sess.state = skilltree.NewBuildState()
			return sess, false, nil
		}

		state, found, err := o.load(ctx, sessionID)
		if err != nil {
			return sess, false, err
		}
		if !found {
			state = skilltree.NewBuildState()
		}
		sess.state = state
		sess.loaded = true
		return sess, found, nil
	}
}

// sweep evicts sessions idle for longer than the idle TTL. Called with o.mu
// held; sessions in use are skipped rather than waited on.
func (o *orchestrator) sweep(now time.Time) {
	if now.Sub(o.lastSweep) < o.idleTTL {
		return
	}
	o.lastSweep = now

	for id, sess := range o.sessions {
		if !sess.mu.TryLock() {
			continue
		}
		if !sess.dirty && now.Sub(sess.lastUsed) >= o.idleTTL {
			sess.evicted = true
			delete(o.sessions, id)
		}
		sess.mu.Unlock()
	}
}

// evict forgets a session that turned out not to exist. Called with sess
// locked.
func (o *orchestrator) evict(sessionID string, sess *session) {
	sess.evicted = true

	o.mu.Lock()
	if o.sessions[sessionID] == sess {
		delete(o.sessions, sessionID)
	}
	o.mu.Unlock()
}

// load reads the stored build. A missing build is not an error; any other
// failure is returned so the caller never mistakes it for an empty build.
func (o *orchestrator) load(ctx context.Context, sessionID string) (skilltree.BuildState, bool, error) {
	out, err := o.repo.Get(ctx, build.GetInput{SessionID: sessionID})
	if err != nil {
		if errors.IsNotFound(err) {
			return skilltree.BuildState{}, false, nil
		}
		slog.WarnContext(ctx, "Failed to load build",
			"session_id", sessionID,
			"error", err)
		o.metrics.persistenceErrors.WithLabelValues("get").Inc()
		return skilltree.BuildState{}, false, err
	}

	record := out.Record
	if record.CatalogVersion != o.catalog.Version() {
		slog.InfoContext(ctx, "Loaded build from another catalog version",
			"session_id", sessionID,
			"stored_version", record.CatalogVersion,
			"catalog_version", o.catalog.Version())
	}

	repaired := o.engine.Repair(record.State)
	if repaired.Changed {
		slog.InfoContext(ctx, "Repaired stored build",
			"session_id", sessionID,
			"dropped", repaired.Dropped,
			"adjusted", repaired.Adjusted)
	}
	return repaired.State, true, nil
}

// save writes the build through to the repository. Failures are logged and
// swallowed; the in-memory build stays authoritative and the session is kept
// until a later save succeeds.
func (o *orchestrator) save(ctx context.Context, sessionID string, sess *session) {
	_, err := o.repo.Save(ctx, build.SaveInput{
		SessionID:      sessionID,
		CatalogVersion: o.catalog.Version(),
		State:          sess.state,
	})
	sess.dirty = err != nil
	if err != nil {
		slog.WarnContext(ctx, "Failed to save build",
			"session_id", sessionID,
			"error", err)
		o.metrics.persistenceErrors.WithLabelValues("save").Inc()
	}
}

func unavailable(err error, sessionID string) error {
	return errors.WrapWithCode(err, errors.CodeUnavailable, errStoreUnavailable).
		WithMeta("session_id", sessionID)
}

func (o *orchestrator) view(sessionID string, state skilltree.BuildState) *BuildView {
	return &BuildView{
		SessionID: sessionID,
		State:     state.Clone(),
		Summary:   o.engine.Summarize(state),
		Token:     codec.Encode(state),
	}
}
