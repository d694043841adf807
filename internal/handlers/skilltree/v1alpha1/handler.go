// Package v1alpha1 handles the skilltree.v1alpha1 build planner gRPC service
package v1alpha1

import (
	"context"

	"google.golang.org/protobuf/types/known/structpb"

	"github.com/KirkDiggler/skilltree-api/internal/errors"
	"github.com/KirkDiggler/skilltree-api/internal/orchestrators/planner"
)

// HandlerConfig holds dependencies for the build planner handler
type HandlerConfig struct {
	PlannerService planner.Service
}

// Validate ensures all required dependencies are present
func (c *HandlerConfig) Validate() error {
	if c == nil || c.PlannerService == nil {
		return errors.InvalidArgument("planner service is required")
	}
	return nil
}

// Handler implements BuildPlannerServiceServer on top of the planner
// orchestrator
type Handler struct {
	plannerService planner.Service
}

var _ BuildPlannerServiceServer = (*Handler)(nil)

// NewHandler creates a new handler with the given configuration
func NewHandler(cfg *HandlerConfig) (*Handler, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &Handler{
		plannerService: cfg.PlannerService,
	}, nil
}

// StartSession opens a planning session, optionally from a share token
func (h *Handler) StartSession(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	sessionID, err := stringField(req, FieldSessionID)
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}
	token, err := stringField(req, FieldToken)
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	out, err := h.plannerService.StartSession(ctx, &planner.StartSessionInput{
		SessionID: sessionID,
		Token:     token,
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return h.respond(map[string]any{
		"build":          buildViewToMap(out.Build),
		"source":         string(out.Source),
		"repaired":       out.Repaired,
		"token_rejected": out.TokenRejected,
	})
}

// GetBuild returns a session's build with its views
func (h *Handler) GetBuild(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	sessionID, err := requiredString(req, FieldSessionID)
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	out, err := h.plannerService.GetBuild(ctx, &planner.GetBuildInput{SessionID: sessionID})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return h.respond(map[string]any{"build": buildViewToMap(out.Build)})
}

// Allocate adds a point to a skill
func (h *Handler) Allocate(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	return h.skillMutation(ctx, req, h.plannerService.Allocate)
}

// Deallocate removes a point from a skill
func (h *Handler) Deallocate(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	return h.skillMutation(ctx, req, h.plannerService.Deallocate)
}

// ClearSkill removes every point from a skill
func (h *Handler) ClearSkill(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	return h.skillMutation(ctx, req, h.plannerService.ClearSkill)
}

// SetBonusPoints changes the expedition bonus
func (h *Handler) SetBonusPoints(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	sessionID, err := requiredString(req, FieldSessionID)
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}
	bonus, err := requiredInt(req, FieldBonusPoints)
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	out, err := h.plannerService.SetBonusPoints(ctx, &planner.SetBonusPointsInput{
		SessionID:   sessionID,
		BonusPoints: bonus,
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return h.respond(mutationToMap(out))
}

// Reset clears a session's build
func (h *Handler) Reset(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	sessionID, err := requiredString(req, FieldSessionID)
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	out, err := h.plannerService.Reset(ctx, &planner.ResetInput{SessionID: sessionID})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return h.respond(mutationToMap(out))
}

// Share returns the share token and link of a session's build
func (h *Handler) Share(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	sessionID, err := requiredString(req, FieldSessionID)
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	out, err := h.plannerService.Share(ctx, &planner.ShareInput{SessionID: sessionID})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return h.respond(map[string]any{
		"token": out.Token,
		"url":   out.URL,
	})
}

// ListSkills returns the catalog, with levels and statuses when a session is
// given
func (h *Handler) ListSkills(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	sessionID, err := stringField(req, FieldSessionID)
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	out, err := h.plannerService.ListSkills(ctx, &planner.ListSkillsInput{SessionID: sessionID})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	skills := make([]any, 0, len(out.Skills))
	for _, view := range out.Skills {
		skills = append(skills, skillViewToMap(view))
	}

	return h.respond(map[string]any{
		"catalog_version": out.CatalogVersion,
		"budget": map[string]any{
			"base":      out.Budget.Base,
			"max_bonus": out.Budget.MaxBonus,
		},
		"skills": skills,
	})
}

func (h *Handler) skillMutation(
	ctx context.Context,
	req *structpb.Struct,
	call func(context.Context, *planner.SkillInput) (*planner.MutationOutput, error),
) (*structpb.Struct, error) {
	sessionID, err := requiredString(req, FieldSessionID)
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}
	skillID, err := requiredString(req, FieldSkillID)
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	out, err := call(ctx, &planner.SkillInput{
		SessionID: sessionID,
		SkillID:   skillID,
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return h.respond(mutationToMap(out))
}

func (h *Handler) respond(fields map[string]any) (*structpb.Struct, error) {
	out, err := toStruct(fields)
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}
	return out, nil
}
