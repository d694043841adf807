package main

import (
	"bytes"
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/skilltree-api/internal/catalog"
	"github.com/KirkDiggler/skilltree-api/internal/engine"
	"github.com/KirkDiggler/skilltree-api/internal/entities/skilltree"
	"github.com/KirkDiggler/skilltree-api/internal/errors"
	"github.com/KirkDiggler/skilltree-api/internal/pkg/clock"
	"github.com/KirkDiggler/skilltree-api/internal/repositories/build"
	"github.com/KirkDiggler/skilltree-api/internal/testutils"
)

type RepairTestSuite struct {
	suite.Suite
	ctx       context.Context
	mr        *miniredis.Miniredis
	cleanup   func()
	repo      build.Repository
	allocator *engine.Allocator
	ids       []string
}

func TestRepairSuite(t *testing.T) {
	suite.Run(t, new(RepairTestSuite))
}

func (s *RepairTestSuite) SetupTest() {
	s.ctx = context.Background()

	client, mr, cleanup := testutils.CreateTestRedisServer(s.T())
	s.mr = mr
	s.cleanup = cleanup

	repo, err := build.NewRedisRepository(&build.RedisConfig{Client: client, Clock: clock.New()})
	s.Require().NoError(err)
	s.repo = repo

	allocator, err := engine.New(&engine.Config{Catalog: catalog.Default()})
	s.Require().NoError(err)
	s.allocator = allocator

	s.save("current", "arc-raiders-1", map[string]int{"used-to-the-weight": 2})
	s.save("outdated", "arc-raiders-0", map[string]int{"used-to-the-weight": 1})
	s.save("ghost", "arc-raiders-1", map[string]int{"used-to-the-weight": 1, "ghost-skill": 3})
	s.Require().NoError(mr.Set("build:broken", "{nope"))

	s.ids, err = build.RedisSessionIDs(s.ctx, client)
	s.Require().NoError(err)
	s.Require().Equal([]string{"broken", "current", "ghost", "outdated"}, s.ids)
}

func (s *RepairTestSuite) TearDownTest() {
	s.cleanup()
}

func (s *RepairTestSuite) save(id, version string, levels map[string]int) {
	state := skilltree.NewBuildState()
	for skill, level := range levels {
		state.SkillLevels[skill] = level
	}
	_, err := s.repo.Save(s.ctx, build.SaveInput{SessionID: id, CatalogVersion: version, State: state})
	s.Require().NoError(err)
}

func (s *RepairTestSuite) record(id string) *build.Record {
	out, err := s.repo.Get(s.ctx, build.GetInput{SessionID: id})
	s.Require().NoError(err)
	return out.Record
}

func (s *RepairTestSuite) TestDryRunWritesNothing() {
	report, err := repairBuilds(s.ctx, s.allocator, s.repo, s.ids, false, false)
	s.Require().NoError(err)

	s.Equal(4, report.Checked)
	s.Equal([]string{"ghost"}, report.Repaired)
	s.Equal([]string{"broken"}, report.Corrupt)
	s.Empty(report.Deleted)

	s.Equal(3, s.record("ghost").State.Level("ghost-skill"))
	s.Equal("arc-raiders-0", s.record("outdated").CatalogVersion)
	s.True(s.mr.Exists("build:broken"))
}

func (s *RepairTestSuite) TestApply() {
	report, err := repairBuilds(s.ctx, s.allocator, s.repo, s.ids, true, false)
	s.Require().NoError(err)
	s.Equal([]string{"ghost"}, report.Repaired)

	ghost := s.record("ghost")
	s.Equal(0, ghost.State.Level("ghost-skill"))
	s.Equal(1, ghost.State.Level("used-to-the-weight"))

	outdated := s.record("outdated")
	s.Equal("arc-raiders-1", outdated.CatalogVersion)
	s.Equal(1, outdated.State.Level("used-to-the-weight"))

	s.True(s.mr.Exists("build:broken"), "corrupt entries stay without --delete-corrupt")
}

func (s *RepairTestSuite) TestDeleteCorrupt() {
	report, err := repairBuilds(s.ctx, s.allocator, s.repo, s.ids, true, true)
	s.Require().NoError(err)
	s.Equal([]string{"broken"}, report.Deleted)

	_, err = s.repo.Get(s.ctx, build.GetInput{SessionID: "broken"})
	s.True(errors.IsNotFound(err))
}

func (s *RepairTestSuite) TestExpiredBetweenScanAndRead() {
	report, err := repairBuilds(s.ctx, s.allocator, s.repo, []string{"gone", "current"}, false, false)
	s.Require().NoError(err)
	s.Equal(1, report.Checked)
	s.Empty(report.Repaired)
}

func (s *RepairTestSuite) TestCommand() {
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs([]string{"repair", "--redis-addr", s.mr.Addr()})
	s.Require().NoError(rootCmd.Execute())

	s.Contains(out.String(), "checked 4 builds, 1 need repair, 1 corrupt")
	s.Contains(out.String(), "repaired  ghost")
	s.Contains(out.String(), "dry run")
}
