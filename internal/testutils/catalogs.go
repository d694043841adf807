package testutils

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/skilltree-api/internal/catalog"
	"github.com/KirkDiggler/skilltree-api/internal/entities/skilltree"
	"github.com/KirkDiggler/skilltree-api/internal/testutils/builders"
)

// TestBudget is the budget shared by the small test catalogs
var TestBudget = skilltree.Budget{Base: 76, MaxBonus: 5}

// NewTestCatalog builds a catalog from skills and fails the test on error
func NewTestCatalog(t testing.TB, skills ...skilltree.Skill) *catalog.Catalog {
	t.Helper()

	c, err := catalog.New(&catalog.Config{
		Version: "test",
		Budget:  TestBudget,
		Skills:  skills,
	})
	require.NoError(t, err, "failed to build test catalog")
	return c
}

// ChainCatalog returns a -> b -> c in ALL mode, max level 5 each
func ChainCatalog(t testing.TB) *catalog.Catalog {
	return NewTestCatalog(t,
		builders.NewSkill("a").Build(),
		builders.NewSkill("b").Requires("a").Build(),
		builders.NewSkill("c").Requires("b").Build(),
	)
}

// CapstoneCatalog returns a three-category tree with enough capacity to spend
// the full bonus budget. Conditioning holds capstone d, ANY over x and y,
// gated at 36 points.
//
//	conditioning: r -> {x, y, f1, f2}, {x|y} -> d
//	mobility:     m -> m1
//	survival:     s -> s1
func CapstoneCatalog(t testing.TB) *catalog.Catalog {
	return NewTestCatalog(t,
		builders.NewSkill("r").WithMaxLevel(20).Build(),
		builders.NewSkill("x").Requires("r").Build(),
		builders.NewSkill("y").Requires("r").Build(),
		builders.NewSkill("f1").Requires("r").WithMaxLevel(20).Build(),
		builders.NewSkill("f2").Requires("r").WithMaxLevel(20).Build(),
		builders.NewSkill("d").RequiresAny("x", "y").Capstone(skilltree.TierThreeThreshold).Build(),
		builders.NewSkill("m").InCategory(skilltree.CategoryMobility).WithMaxLevel(20).Build(),
		builders.NewSkill("m1").InCategory(skilltree.CategoryMobility).Requires("m").WithMaxLevel(20).Build(),
		builders.NewSkill("s").InCategory(skilltree.CategorySurvival).WithMaxLevel(20).Build(),
		builders.NewSkill("s1").InCategory(skilltree.CategorySurvival).Requires("s").WithMaxLevel(20).Build(),
	)
}

// DiamondCatalog returns a graph with shared dependents and one threshold skill
//
//	a -> b, a -> c
//	{b & c} -> d -> f
//	{b | c} -> e -> g
//	a -> t (gated at 3 category points)
func DiamondCatalog(t testing.TB) *catalog.Catalog {
	return NewTestCatalog(t,
		builders.NewSkill("a").Build(),
		builders.NewSkill("b").Requires("a").Build(),
		builders.NewSkill("c").Requires("a").Build(),
		builders.NewSkill("d").Requires("b", "c").Build(),
		builders.NewSkill("e").RequiresAny("b", "c").Build(),
		builders.NewSkill("f").Requires("d").Build(),
		builders.NewSkill("g").Requires("e").Build(),
		builders.NewSkill("t").Requires("a").WithTier(skilltree.TierTwo).WithThreshold(3).Build(),
	)
}
