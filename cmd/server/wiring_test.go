package main

import (
	"bytes"
	"context"
	"path/filepath"
	"strings"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/skilltree-api/internal/catalog"
	"github.com/KirkDiggler/skilltree-api/internal/codec"
	"github.com/KirkDiggler/skilltree-api/internal/config"
	"github.com/KirkDiggler/skilltree-api/internal/orchestrators/planner"
)

type WiringTestSuite struct {
	suite.Suite
	ctx context.Context
}

func TestWiringSuite(t *testing.T) {
	suite.Run(t, new(WiringTestSuite))
}

func (s *WiringTestSuite) SetupTest() {
	s.ctx = context.Background()
}

func (s *WiringTestSuite) config(vars map[string]string) *config.Config {
	cfg, err := config.LoadFrom(vars)
	s.Require().NoError(err)
	return cfg
}

// exercise starts a session, allocates the first root and reads it back
func (s *WiringTestSuite) exercise(deps *dependencies) {
	started, err := deps.planner.StartSession(s.ctx, &planner.StartSessionInput{})
	s.Require().NoError(err)
	s.True(strings.HasPrefix(started.Build.SessionID, sessionIDPrefix+"_"))

	root := deps.catalog.Roots()[0].ID
	out, err := deps.planner.Allocate(s.ctx, &planner.SkillInput{
		SessionID: started.Build.SessionID,
		SkillID:   root,
	})
	s.Require().NoError(err)
	s.True(out.Changed)
}

func (s *WiringTestSuite) TestStores() {
	mr := miniredis.RunT(s.T())

	testCases := []struct {
		name string
		vars map[string]string
	}{
		{name: "memory", vars: map[string]string{}},
		{name: "sqlite", vars: map[string]string{
			"SKILLTREE_STORE":       "sqlite",
			"SKILLTREE_SQLITE_PATH": filepath.Join(s.T().TempDir(), "builds.db"),
		}},
		{name: "redis", vars: map[string]string{
			"SKILLTREE_STORE":      "redis",
			"SKILLTREE_REDIS_ADDR": mr.Addr(),
		}},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			deps, err := wire(s.ctx, s.config(tc.vars))
			s.Require().NoError(err)
			defer func() { s.NoError(deps.Close()) }()

			s.Equal("arc-raiders-1", deps.catalog.Version())
			s.exercise(deps)
		})
	}

	s.NotEmpty(mr.Keys(), "redis store received the build")
}

func (s *WiringTestSuite) TestRedisUnreachable() {
	mr := miniredis.RunT(s.T())
	addr := mr.Addr()
	mr.Close()

	deps, err := wire(s.ctx, s.config(map[string]string{
		"SKILLTREE_STORE":      "redis",
		"SKILLTREE_REDIS_ADDR": addr,
	}))
	s.Require().Error(err)
	s.Nil(deps)
	s.Contains(err.Error(), "failed to reach redis")
}

func (s *WiringTestSuite) TestCatalogFromFile() {
	path := filepath.Join("..", "..", "internal", "catalog", "testdata", "small.yaml")

	deps, err := wire(s.ctx, s.config(map[string]string{"SKILLTREE_CATALOG_PATH": path}))
	s.Require().NoError(err)
	defer func() { s.NoError(deps.Close()) }()

	s.Equal("small-1", deps.catalog.Version())

	_, err = wire(s.ctx, s.config(map[string]string{"SKILLTREE_CATALOG_PATH": "does-not-exist.yaml"}))
	s.Require().Error(err)
	s.Contains(err.Error(), "does-not-exist.yaml")
}

func (s *WiringTestSuite) TestMetricsRegistered() {
	deps, err := wire(s.ctx, s.config(map[string]string{}))
	s.Require().NoError(err)
	defer func() { s.NoError(deps.Close()) }()

	s.exercise(deps)

	families, err := deps.registry.Gather()
	s.Require().NoError(err)

	names := make(map[string]bool, len(families))
	for _, f := range families {
		names[f.GetName()] = true
	}
	s.True(names["skilltree_mutations_total"])
	s.True(names["skilltree_sessions_started_total"])
	s.True(names["go_goroutines"])
}

func (s *WiringTestSuite) TestNewLogger() {
	s.True(newLogger("debug").Enabled(s.ctx, -4))
	s.False(newLogger("warn").Enabled(s.ctx, 0))
	s.True(newLogger("nonsense").Enabled(s.ctx, 0), "unknown levels fall back to info")
}

func (s *WiringTestSuite) TestTokenCommands() {
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs([]string{"token", "encode", "--level", "used-to-the-weight=2", "--bonus", "1"})
	s.Require().NoError(rootCmd.Execute())

	var token string
	for _, line := range strings.Split(out.String(), "\n") {
		if rest, ok := strings.CutPrefix(line, "token: "); ok {
			token = rest
		}
	}
	s.Require().NotEmpty(token, out.String())

	state, err := codec.Decode(loadDefault(s), token)
	s.Require().NoError(err)
	s.Equal(2, state.Level("used-to-the-weight"))
	s.Equal(1, state.BonusPoints)

	out.Reset()
	rootCmd.SetArgs([]string{"token", "decode", token})
	s.Require().NoError(rootCmd.Execute())
	s.Contains(out.String(), "used-to-the-weight")
	s.Contains(out.String(), "spent 2 of 77")

	rootCmd.SetArgs([]string{"token", "decode", "!!!"})
	s.Error(rootCmd.Execute())
}

func (s *WiringTestSuite) TestCatalogCommand() {
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs([]string{"catalog"})
	s.Require().NoError(rootCmd.Execute())

	s.Contains(out.String(), "catalog arc-raiders-1: 45 skills, base budget 76, max bonus 5")
}

func (s *WiringTestSuite) TestRandomCommand() {
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs([]string{"random", "--bonus", "5"})
	s.Require().NoError(rootCmd.Execute())

	s.Contains(out.String(), "spent 81 of 81")
	s.Contains(out.String(), "/skill-tree?build=")
}

func loadDefault(s *WiringTestSuite) *catalog.Catalog {
	c, err := loadCatalog("")
	s.Require().NoError(err)
	return c
}
