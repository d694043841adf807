package skilltree_test

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/skilltree-api/internal/entities/skilltree"
)

type BuildStateTestSuite struct {
	suite.Suite
}

func TestBuildStateSuite(t *testing.T) {
	suite.Run(t, new(BuildStateTestSuite))
}

func (s *BuildStateTestSuite) TestWithLevelDoesNotMutate() {
	original := skilltree.BuildState{SkillLevels: map[string]int{"a": 1}}

	next := original.WithLevel("a", 2)

	s.Equal(1, original.Level("a"))
	s.Equal(2, next.Level("a"))
}

func (s *BuildStateTestSuite) TestWithLevelZeroRemovesKey() {
	original := skilltree.BuildState{SkillLevels: map[string]int{"a": 1, "b": 3}}

	next := original.WithLevel("a", 0)

	_, present := next.SkillLevels["a"]
	s.False(present)
	s.Equal(3, next.Total())
}

func (s *BuildStateTestSuite) TestEqual() {
	testCases := []struct {
		name  string
		left  skilltree.BuildState
		right skilltree.BuildState
		want  bool
	}{
		{
			name:  "both empty",
			left:  skilltree.NewBuildState(),
			right: skilltree.BuildState{},
			want:  true,
		},
		{
			name:  "explicit zero is the same as absent",
			left:  skilltree.BuildState{SkillLevels: map[string]int{"a": 0}},
			right: skilltree.NewBuildState(),
			want:  true,
		},
		{
			name:  "different bonus",
			left:  skilltree.BuildState{BonusPoints: 1},
			right: skilltree.BuildState{BonusPoints: 2},
			want:  false,
		},
		{
			name:  "different levels",
			left:  skilltree.BuildState{SkillLevels: map[string]int{"a": 1}},
			right: skilltree.BuildState{SkillLevels: map[string]int{"a": 2}},
			want:  false,
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			s.Equal(tc.want, tc.left.Equal(tc.right))
		})
	}
}

func (s *BuildStateTestSuite) TestSkillIDsSorted() {
	state := skilltree.BuildState{SkillLevels: map[string]int{"zeta": 1, "alpha": 2, "mid": 1}}

	s.Equal([]string{"alpha", "mid", "zeta"}, state.SkillIDs())
}
