package v1alpha1_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/structpb"

	"github.com/KirkDiggler/skilltree-api/internal/engine"
	"github.com/KirkDiggler/skilltree-api/internal/entities/skilltree"
	"github.com/KirkDiggler/skilltree-api/internal/errors"
	"github.com/KirkDiggler/skilltree-api/internal/handlers/skilltree/v1alpha1"
	"github.com/KirkDiggler/skilltree-api/internal/orchestrators/planner"
	plannermock "github.com/KirkDiggler/skilltree-api/internal/orchestrators/planner/mock"
	"github.com/KirkDiggler/skilltree-api/internal/testutils/builders"
)

type HandlerTestSuite struct {
	suite.Suite
	ctx         context.Context
	ctrl        *gomock.Controller
	mockPlanner *plannermock.MockService
	handler     *v1alpha1.Handler
}

func TestHandlerSuite(t *testing.T) {
	suite.Run(t, new(HandlerTestSuite))
}

func (s *HandlerTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.ctrl = gomock.NewController(s.T())
	s.mockPlanner = plannermock.NewMockService(s.ctrl)

	handler, err := v1alpha1.NewHandler(&v1alpha1.HandlerConfig{
		PlannerService: s.mockPlanner,
	})
	s.Require().NoError(err)
	s.handler = handler
}

func (s *HandlerTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *HandlerTestSuite) request(fields map[string]any) *structpb.Struct {
	req, err := structpb.NewStruct(fields)
	s.Require().NoError(err)
	return req
}

func (s *HandlerTestSuite) assertCode(err error, code codes.Code) {
	s.Require().Error(err)
	st, ok := status.FromError(err)
	s.Require().True(ok, "not a status error: %v", err)
	s.Equal(code, st.Code(), st.Message())
}

func sampleView() *planner.BuildView {
	state := builders.NewBuildState().WithLevel("a", 2).WithBonus(1).Build()
	return &planner.BuildView{
		SessionID: "session-1",
		State:     state,
		Token:     "tok",
		Summary: &engine.Summary{
			TotalSpent:      2,
			AvailablePoints: 77,
			RemainingPoints: 75,
			PlayerLevel:     2,
			BonusPoints:     1,
			MaxBonus:        5,
			SpentByCategory: map[skilltree.Category]int{skilltree.CategoryConditioning: 2},
			Allocated: []engine.AllocatedSkill{
				{Skill: builders.NewSkill("a").Build(), Level: 2},
			},
		},
	}
}

func (s *HandlerTestSuite) TestNewHandlerRequiresService() {
	handler, err := v1alpha1.NewHandler(&v1alpha1.HandlerConfig{})
	s.Nil(handler)
	s.True(errors.IsInvalidArgument(err))

	_, err = v1alpha1.NewHandler(nil)
	s.True(errors.IsInvalidArgument(err))
}

func (s *HandlerTestSuite) TestAllocate() {
	s.mockPlanner.EXPECT().
		Allocate(s.ctx, &planner.SkillInput{SessionID: "session-1", SkillID: "a"}).
		Return(&planner.MutationOutput{Build: sampleView(), Changed: true}, nil)

	resp, err := s.handler.Allocate(s.ctx, s.request(map[string]any{
		"session_id": "session-1",
		"skill_id":   "a",
	}))
	s.Require().NoError(err)

	got := resp.AsMap()
	s.Equal(true, got["changed"])
	s.Equal([]any{}, got["cascaded"])

	build := got["build"].(map[string]any)
	s.Equal("session-1", build["session_id"])
	s.Equal("tok", build["token"])
	s.Equal(1.0, build["bonus_points"])
	s.Equal(map[string]any{"a": 2.0}, build["skill_levels"])

	summary := build["summary"].(map[string]any)
	s.Equal(2.0, summary["total_spent"])
	s.Equal(75.0, summary["remaining_points"])
	s.Equal(map[string]any{"conditioning": 2.0}, summary["spent_by_category"])
	s.Equal([]any{map[string]any{"skill_id": "a", "name": "a", "level": 2.0}}, summary["allocated"])
}

func (s *HandlerTestSuite) TestDeallocateReportsCascade() {
	s.mockPlanner.EXPECT().
		Deallocate(s.ctx, &planner.SkillInput{SessionID: "session-1", SkillID: "a"}).
		Return(&planner.MutationOutput{Build: sampleView(), Changed: true, Cascaded: []string{"b", "c"}}, nil)

	resp, err := s.handler.Deallocate(s.ctx, s.request(map[string]any{
		"session_id": "session-1",
		"skill_id":   "a",
	}))
	s.Require().NoError(err)
	s.Equal([]any{"b", "c"}, resp.AsMap()["cascaded"])
}

func (s *HandlerTestSuite) TestSkillRequestValidation() {
	testCases := []struct {
		name   string
		fields map[string]any
	}{
		{name: "empty request", fields: map[string]any{}},
		{name: "missing skill", fields: map[string]any{"session_id": "session-1"}},
		{name: "missing session", fields: map[string]any{"skill_id": "a"}},
		{name: "session not a string", fields: map[string]any{"session_id": 7, "skill_id": "a"}},
		{name: "skill not a string", fields: map[string]any{"session_id": "session-1", "skill_id": true}},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			req := s.request(tc.fields)

			_, err := s.handler.Allocate(s.ctx, req)
			s.assertCode(err, codes.InvalidArgument)
			_, err = s.handler.Deallocate(s.ctx, req)
			s.assertCode(err, codes.InvalidArgument)
			_, err = s.handler.ClearSkill(s.ctx, req)
			s.assertCode(err, codes.InvalidArgument)
		})
	}
}

func (s *HandlerTestSuite) TestErrorCodesMapped() {
	testCases := []struct {
		name string
		err  error
		want codes.Code
	}{
		{name: "not found", err: errors.NotFound("skill not found").WithMeta("skill_id", "zz"), want: codes.NotFound},
		{name: "invalid", err: errors.InvalidArgument("session ID is required"), want: codes.InvalidArgument},
		{name: "internal", err: errors.Internal("boom"), want: codes.Internal},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			s.mockPlanner.EXPECT().
				ClearSkill(s.ctx, gomock.Any()).
				Return(nil, tc.err)

			_, err := s.handler.ClearSkill(s.ctx, s.request(map[string]any{
				"session_id": "session-1",
				"skill_id":   "zz",
			}))
			s.assertCode(err, tc.want)
		})
	}
}

func (s *HandlerTestSuite) TestSetBonusPoints() {
	s.Run("whole number", func() {
		s.mockPlanner.EXPECT().
			SetBonusPoints(s.ctx, &planner.SetBonusPointsInput{SessionID: "session-1", BonusPoints: 3}).
			Return(&planner.MutationOutput{Build: sampleView(), Changed: true}, nil)

		_, err := s.handler.SetBonusPoints(s.ctx, s.request(map[string]any{
			"session_id":   "session-1",
			"bonus_points": 3,
		}))
		s.NoError(err)
	})

	invalid := []struct {
		name   string
		fields map[string]any
	}{
		{name: "missing", fields: map[string]any{"session_id": "session-1"}},
		{name: "fractional", fields: map[string]any{"session_id": "session-1", "bonus_points": 2.5}},
		{name: "string", fields: map[string]any{"session_id": "session-1", "bonus_points": "3"}},
		{name: "huge", fields: map[string]any{"session_id": "session-1", "bonus_points": 1e12}},
		{name: "no session", fields: map[string]any{"bonus_points": 3}},
	}

	for _, tc := range invalid {
		s.Run(tc.name, func() {
			_, err := s.handler.SetBonusPoints(s.ctx, s.request(tc.fields))
			s.assertCode(err, codes.InvalidArgument)
		})
	}
}

func (s *HandlerTestSuite) TestStartSession() {
	s.mockPlanner.EXPECT().
		StartSession(s.ctx, &planner.StartSessionInput{Token: "abc"}).
		Return(&planner.StartSessionOutput{
			Build:         sampleView(),
			Source:        planner.SourceEmpty,
			TokenRejected: true,
		}, nil)

	resp, err := s.handler.StartSession(s.ctx, s.request(map[string]any{
		"session_id": nil,
		"token":      "abc",
	}))
	s.Require().NoError(err)

	got := resp.AsMap()
	s.Equal("empty", got["source"])
	s.Equal(true, got["token_rejected"])
	s.Equal(false, got["repaired"])
}

func (s *HandlerTestSuite) TestShareAndReset() {
	s.mockPlanner.EXPECT().
		Share(s.ctx, &planner.ShareInput{SessionID: "session-1"}).
		Return(&planner.ShareOutput{Token: "tok", URL: "http://localhost:3000/skill-tree?build=tok"}, nil)
	s.mockPlanner.EXPECT().
		Reset(s.ctx, &planner.ResetInput{SessionID: "session-1"}).
		Return(&planner.MutationOutput{Build: sampleView()}, nil)

	req := s.request(map[string]any{"session_id": "session-1"})

	shared, err := s.handler.Share(s.ctx, req)
	s.Require().NoError(err)
	s.Equal("http://localhost:3000/skill-tree?build=tok", shared.AsMap()["url"])

	reset, err := s.handler.Reset(s.ctx, req)
	s.Require().NoError(err)
	s.Equal(false, reset.AsMap()["changed"])

	_, err = s.handler.Share(s.ctx, s.request(map[string]any{}))
	s.assertCode(err, codes.InvalidArgument)
}

func (s *HandlerTestSuite) TestListSkills() {
	skill := builders.NewSkill("b").Requires("a").Build()
	s.mockPlanner.EXPECT().
		ListSkills(s.ctx, &planner.ListSkillsInput{}).
		Return(&planner.ListSkillsOutput{
			CatalogVersion: "test",
			Budget:         skilltree.Budget{Base: 76, MaxBonus: 5},
			Skills: []planner.SkillView{
				{Skill: skill, Status: skilltree.StatusLocked},
			},
		}, nil)

	resp, err := s.handler.ListSkills(s.ctx, s.request(map[string]any{}))
	s.Require().NoError(err)

	got := resp.AsMap()
	s.Equal("test", got["catalog_version"])
	s.Equal(map[string]any{"base": 76.0, "max_bonus": 5.0}, got["budget"])

	skills := got["skills"].([]any)
	s.Require().Len(skills, 1)
	view := skills[0].(map[string]any)
	s.Equal("b", view["id"])
	s.Equal([]any{"a"}, view["prerequisites"])
	s.Equal("ALL", view["mode"])
	s.Equal("LOCKED", view["status"])
	s.Equal(0.0, view["level"])
}
