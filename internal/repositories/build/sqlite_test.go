package build_test

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/skilltree-api/internal/errors"
	"github.com/KirkDiggler/skilltree-api/internal/repositories/build"
)

type SQLiteRepositoryTestSuite struct {
	contractSuite
	db *sql.DB
}

func TestSQLiteRepositorySuite(t *testing.T) {
	suite.Run(t, new(SQLiteRepositoryTestSuite))
}

func (s *SQLiteRepositoryTestSuite) SetupTest() {
	s.ctx = context.Background()

	db, err := build.OpenSQLite(s.ctx, build.MemoryPath)
	s.Require().NoError(err)
	s.db = db

	repo, err := build.NewSQLiteRepository(&build.SQLiteConfig{DB: db, Clock: fixedClock{}})
	s.Require().NoError(err)
	s.repo = repo
}

func (s *SQLiteRepositoryTestSuite) TearDownTest() {
	s.Require().NoError(s.db.Close())
}

func (s *SQLiteRepositoryTestSuite) TestNewSQLiteRepository() {
	_, err := build.NewSQLiteRepository(nil)
	s.True(errors.IsInvalidArgument(err))

	_, err = build.NewSQLiteRepository(&build.SQLiteConfig{Clock: fixedClock{}})
	s.Require().Error(err)
	s.Contains(err.Error(), "database is required")

	_, err = build.NewSQLiteRepository(&build.SQLiteConfig{DB: s.db})
	s.Require().Error(err)
	s.Contains(err.Error(), "clock is required")
}

func (s *SQLiteRepositoryTestSuite) TestOpenSQLiteRequiresPath() {
	_, err := build.OpenSQLite(s.ctx, "  ")
	s.True(errors.IsInvalidArgument(err))
}

func (s *SQLiteRepositoryTestSuite) TestPersistsAcrossHandles() {
	path := filepath.Join(s.T().TempDir(), "builds.db")

	db, err := build.OpenSQLite(s.ctx, path)
	s.Require().NoError(err)
	repo, err := build.NewSQLiteRepository(&build.SQLiteConfig{DB: db, Clock: fixedClock{}})
	s.Require().NoError(err)
	_, err = repo.Save(s.ctx, build.SaveInput{SessionID: "disk", State: s.sampleState()})
	s.Require().NoError(err)
	s.Require().NoError(db.Close())

	db, err = build.OpenSQLite(s.ctx, path)
	s.Require().NoError(err)
	defer func() { _ = db.Close() }()
	repo, err = build.NewSQLiteRepository(&build.SQLiteConfig{DB: db, Clock: fixedClock{}})
	s.Require().NoError(err)

	got, err := repo.Get(s.ctx, build.GetInput{SessionID: "disk"})
	s.Require().NoError(err)
	s.True(got.Record.State.Equal(s.sampleState()))
}

func (s *SQLiteRepositoryTestSuite) TestCorruptRecord() {
	_, err := s.db.ExecContext(s.ctx,
		`INSERT INTO builds (session_id, catalog_version, state, updated_at) VALUES ('bad', 'v', '{oops', 0)`)
	s.Require().NoError(err)

	_, err = s.repo.Get(s.ctx, build.GetInput{SessionID: "bad"})
	s.True(errors.IsDataLoss(err))
}
