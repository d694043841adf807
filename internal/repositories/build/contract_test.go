package build_test

import (
	"context"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/skilltree-api/internal/entities/skilltree"
	"github.com/KirkDiggler/skilltree-api/internal/errors"
	"github.com/KirkDiggler/skilltree-api/internal/repositories/build"
	"github.com/KirkDiggler/skilltree-api/internal/testutils/builders"
)

var fixedNow = time.Date(2025, 11, 2, 15, 4, 5, 0, time.UTC)

// fixedClock reports the same instant on every call
type fixedClock struct{}

func (fixedClock) Now() time.Time { return fixedNow }

// contractSuite holds the behaviour every Repository implementation shares.
// Backend suites embed it and set repo in SetupTest.
type contractSuite struct {
	suite.Suite
	repo build.Repository
	ctx  context.Context
}

func (s *contractSuite) sampleState() skilltree.BuildState {
	return builders.NewBuildState().
		WithLevel("used-to-the-weight", 3).
		WithLevel("blast-born", 1).
		WithBonus(2).
		Build()
}

func (s *contractSuite) TestSaveThenGet() {
	saved, err := s.repo.Save(s.ctx, build.SaveInput{
		SessionID:      "session-1",
		CatalogVersion: "arc-raiders-1",
		State:          s.sampleState(),
	})
	s.Require().NoError(err)
	s.Equal("session-1", saved.Record.SessionID)
	s.True(fixedNow.Equal(saved.Record.UpdatedAt))

	got, err := s.repo.Get(s.ctx, build.GetInput{SessionID: "session-1"})
	s.Require().NoError(err)
	s.Equal("arc-raiders-1", got.Record.CatalogVersion)
	s.True(got.Record.State.Equal(s.sampleState()))
	s.True(fixedNow.Equal(got.Record.UpdatedAt))
}

func (s *contractSuite) TestSaveOverwrites() {
	_, err := s.repo.Save(s.ctx, build.SaveInput{SessionID: "session-1", State: s.sampleState()})
	s.Require().NoError(err)

	_, err = s.repo.Save(s.ctx, build.SaveInput{SessionID: "session-1", State: skilltree.NewBuildState()})
	s.Require().NoError(err)

	got, err := s.repo.Get(s.ctx, build.GetInput{SessionID: "session-1"})
	s.Require().NoError(err)
	s.True(got.Record.State.IsEmpty())
	s.NotNil(got.Record.State.SkillLevels)
}

func (s *contractSuite) TestGetMissing() {
	_, err := s.repo.Get(s.ctx, build.GetInput{SessionID: "nobody"})
	s.Require().Error(err)
	s.True(errors.IsNotFound(err))
}

func (s *contractSuite) TestDelete() {
	_, err := s.repo.Save(s.ctx, build.SaveInput{SessionID: "session-1", State: s.sampleState()})
	s.Require().NoError(err)

	out, err := s.repo.Delete(s.ctx, build.DeleteInput{SessionID: "session-1"})
	s.Require().NoError(err)
	s.True(out.Deleted)

	out, err = s.repo.Delete(s.ctx, build.DeleteInput{SessionID: "session-1"})
	s.Require().NoError(err)
	s.False(out.Deleted)

	_, err = s.repo.Get(s.ctx, build.GetInput{SessionID: "session-1"})
	s.True(errors.IsNotFound(err))
}

func (s *contractSuite) TestEmptySessionID() {
	_, err := s.repo.Save(s.ctx, build.SaveInput{})
	s.True(errors.IsInvalidArgument(err))

	_, err = s.repo.Get(s.ctx, build.GetInput{})
	s.True(errors.IsInvalidArgument(err))

	_, err = s.repo.Delete(s.ctx, build.DeleteInput{})
	s.True(errors.IsInvalidArgument(err))
}

func (s *contractSuite) TestStoredCopyIsIsolated() {
	state := s.sampleState()
	_, err := s.repo.Save(s.ctx, build.SaveInput{SessionID: "session-1", State: state})
	s.Require().NoError(err)

	state.SkillLevels["blast-born"] = 5

	got, err := s.repo.Get(s.ctx, build.GetInput{SessionID: "session-1"})
	s.Require().NoError(err)
	s.Equal(1, got.Record.State.Level("blast-born"))
}
