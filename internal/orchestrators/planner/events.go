package planner

import (
	"context"
	"log/slog"

	"github.com/KirkDiggler/rpg-toolkit/core"
	"github.com/KirkDiggler/rpg-toolkit/events"

	"github.com/KirkDiggler/skilltree-api/internal/entities/skilltree"
)

// Event types published on the bus after accepted mutations. The source is
// always the session's build entity; skill events target the skill.
const (
	EventSkillAllocated   = "skilltree.skill.allocated"
	EventSkillDeallocated = "skilltree.skill.deallocated"
	EventSkillCleared     = "skilltree.skill.cleared"
	EventSkillCascaded    = "skilltree.skill.cascaded"
	EventBonusChanged     = "skilltree.build.bonus_changed"
	EventBuildReset       = "skilltree.build.reset"
)

func (o *orchestrator) publish(ctx context.Context, eventType, sessionID string, target core.Entity) {
	source := &skilltree.BuildEntity{SessionID: sessionID}
	if err := o.eventBus.Publish(ctx, events.NewGameEvent(eventType, source, target)); err != nil {
		slog.WarnContext(ctx, "Failed to publish build event",
			"event", eventType,
			"session_id", sessionID,
			"error", err)
	}
}

func (o *orchestrator) publishSkill(ctx context.Context, eventType, sessionID, skillID string) {
	o.publish(ctx, eventType, sessionID, &skilltree.SkillEntity{Skill: o.catalog.Skill(skillID)})
}

func (o *orchestrator) publishCascade(ctx context.Context, sessionID string, cascaded []string) {
	for _, id := range cascaded {
		o.publishSkill(ctx, EventSkillCascaded, sessionID, id)
	}
}
