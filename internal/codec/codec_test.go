package codec_test

import (
	"encoding/base64"
	"math/rand"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/skilltree-api/internal/catalog"
	"github.com/KirkDiggler/skilltree-api/internal/codec"
	"github.com/KirkDiggler/skilltree-api/internal/engine"
	"github.com/KirkDiggler/skilltree-api/internal/entities/skilltree"
	"github.com/KirkDiggler/skilltree-api/internal/errors"
	"github.com/KirkDiggler/skilltree-api/internal/testutils"
	"github.com/KirkDiggler/skilltree-api/internal/testutils/builders"
)

type CodecTestSuite struct {
	suite.Suite
	catalog *catalog.Catalog
}

func TestCodecSuite(t *testing.T) {
	suite.Run(t, new(CodecTestSuite))
}

func (s *CodecTestSuite) SetupTest() {
	s.catalog = testutils.ChainCatalog(s.T())
}

func (s *CodecTestSuite) TestEncodeIsCanonical() {
	first := skilltree.NewBuildState()
	first.SkillLevels["b"] = 2
	first.SkillLevels["a"] = 1
	first.BonusPoints = 3

	second := builders.NewBuildState().WithBonus(3).WithLevel("a", 1).WithLevel("b", 2).Build()
	second.SkillLevels["c"] = 0

	want := base64.RawURLEncoding.EncodeToString([]byte(`{"b":3,"l":{"a":1,"b":2}}`))
	s.Equal(want, codec.Encode(first))
	s.Equal(want, codec.Encode(second))
	s.NotContains(want, "=")
}

func (s *CodecTestSuite) TestRoundTrip() {
	testCases := []struct {
		name  string
		state skilltree.BuildState
	}{
		{name: "empty", state: skilltree.NewBuildState()},
		{name: "bonus only", state: builders.NewBuildState().WithBonus(5).Build()},
		{name: "chain", state: builders.NewBuildState().WithLevel("a", 5).WithLevel("b", 3).WithLevel("c", 1).Build()},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			decoded, err := codec.Decode(s.catalog, codec.Encode(tc.state))
			s.Require().NoError(err)
			s.True(decoded.Equal(tc.state), cmp.Diff(tc.state, decoded))
		})
	}
}

func (s *CodecTestSuite) TestRoundTripRandomBuilds() {
	c := catalog.Default()
	e, err := engine.New(&engine.Config{Catalog: c})
	s.Require().NoError(err)

	for seed := int64(1); seed <= 50; seed++ {
		rng := rand.New(rand.NewSource(seed))
		state := e.SetBonusPoints(skilltree.NewBuildState(), rng.Intn(6))
		state, err = e.RandomBuild(state, &seededRoller{rng: rng})
		s.Require().NoError(err)

		decoded, err := codec.Decode(c, codec.Encode(state))
		s.Require().NoError(err)
		s.Require().True(decoded.Equal(state), "seed %d: %s", seed, cmp.Diff(state, decoded))
	}
}

func (s *CodecTestSuite) TestDecodeClampsAgainstCatalog() {
	token := base64.RawURLEncoding.EncodeToString(
		[]byte(`{"b":9,"l":{"a":12,"b":-1,"removed-skill":3}}`),
	)

	state, err := codec.Decode(s.catalog, token)
	s.Require().NoError(err)

	s.Empty(cmp.Diff(map[string]int{"a": 5}, state.SkillLevels))
	s.Equal(5, state.BonusPoints)
}

func (s *CodecTestSuite) TestDecodeLegacyToken() {
	escaped := "%7B%22skillLevels%22%3A%7B%22a%22%3A2%2C%22b%22%3A1%7D%2C%22expeditionPoints%22%3A3%7D"

	testCases := []struct {
		name  string
		token string
	}{
		{name: "padded", token: base64.StdEncoding.EncodeToString([]byte(escaped))},
		{name: "unpadded", token: base64.RawStdEncoding.EncodeToString([]byte(escaped))},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			state, err := codec.Decode(s.catalog, tc.token)
			s.Require().NoError(err)
			s.Empty(cmp.Diff(map[string]int{"a": 2, "b": 1}, state.SkillLevels))
			s.Equal(3, state.BonusPoints)
		})
	}
}

func (s *CodecTestSuite) TestDecodeMalformed() {
	testCases := []struct {
		name  string
		token string
	}{
		{name: "empty", token: ""},
		{name: "whitespace", token: "   "},
		{name: "not base64", token: "!!!not-a-token!!!"},
		{name: "not json", token: base64.RawURLEncoding.EncodeToString([]byte("hello"))},
		{name: "wrong types", token: base64.RawURLEncoding.EncodeToString([]byte(`{"b":"x","l":[]}`))},
		{name: "fractional level", token: base64.RawURLEncoding.EncodeToString([]byte(`{"b":0,"l":{"a":1.5}}`))},
		{name: "unknown field", token: base64.RawURLEncoding.EncodeToString([]byte(`{"b":0,"l":{},"x":1}`))},
		{name: "json null", token: "bnVsbA"},
		{name: "json array", token: base64.RawURLEncoding.EncodeToString([]byte(`[]`))},
		{name: "null levels", token: base64.RawURLEncoding.EncodeToString([]byte(`{"b":0,"l":null}`))},
		{name: "missing levels", token: base64.RawURLEncoding.EncodeToString([]byte(`{"b":2}`))},
		{name: "legacy null", token: base64.StdEncoding.EncodeToString([]byte("null"))},
		{name: "legacy without levels", token: base64.StdEncoding.EncodeToString([]byte(`{"expeditionPoints":1}`))},
		{name: "too long", token: strings.Repeat("A", codec.MaxTokenLength+1)},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			state, err := codec.Decode(s.catalog, tc.token)
			s.Require().Error(err)
			s.True(codec.IsMalformed(err))
			s.True(errors.IsInvalidArgument(err))
			s.Nil(state.SkillLevels)
		})
	}
}

func (s *CodecTestSuite) TestIsMalformedIgnoresOtherErrors() {
	s.False(codec.IsMalformed(nil))
	s.False(codec.IsMalformed(errors.InvalidArgument("something else")))
	s.False(codec.IsMalformed(errors.Internal("boom")))
}

type seededRoller struct {
	rng *rand.Rand
}

func (r *seededRoller) Roll(size int) (int, error) {
	return r.rng.Intn(size) + 1, nil
}

func (r *seededRoller) RollN(count, size int) ([]int, error) {
	out := make([]int, count)
	for i := range out {
		out[i] = r.rng.Intn(size) + 1
	}
	return out, nil
}
