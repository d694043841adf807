// Package codec converts build states to and from the compact token carried
// in share links.
//
// A token is the unpadded base64url encoding of the JSON document
//
//	{"b":<bonus points>,"l":{"<skill id>":<level>,...}}
//
// encoding/json writes map keys in sorted order, so equal builds always
// produce byte-identical tokens. Decode also accepts the older
// base64(encodeURIComponent(json)) form with skillLevels/expeditionPoints keys.
package codec

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"net/url"
	"strings"

	"github.com/KirkDiggler/skilltree-api/internal/catalog"
	"github.com/KirkDiggler/skilltree-api/internal/entities/skilltree"
	"github.com/KirkDiggler/skilltree-api/internal/errors"
)

// MaxTokenLength bounds the size of a token Decode will look at
const MaxTokenLength = 4096

// Metadata keys attached to decode errors
const (
	MetaTokenLength = "token_length"
	MetaReason      = "reason"
)

type payload struct {
	Bonus  int            `json:"b"`
	Levels map[string]int `json:"l"`
}

type legacyPayload struct {
	SkillLevels      map[string]int `json:"skillLevels"`
	ExpeditionPoints int            `json:"expeditionPoints"`
}

// Encode returns the share token for state. Skills without points are
// omitted.
func Encode(state skilltree.BuildState) string {
	p := payload{
		Bonus:  state.BonusPoints,
		Levels: make(map[string]int, len(state.SkillLevels)),
	}
	for id, level := range state.SkillLevels {
		if level > 0 {
			p.Levels[id] = level
		}
	}

	// A struct of ints and a string keyed map cannot fail to marshal
	data, _ := json.Marshal(p)
	return base64.RawURLEncoding.EncodeToString(data)
}

// Decode parses a share token against the catalog. Ids the catalog does not
// define are dropped and levels are clamped to each skill's max level, so
// links made against an older catalog still open. Gating is not checked here;
// callers restoring a build run it through the engine's Repair.
//
// Malformed tokens return an InvalidArgument error for which IsMalformed
// reports true.
func Decode(c *catalog.Catalog, token string) (skilltree.BuildState, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return skilltree.BuildState{}, malformed(token, "empty token")
	}
	if len(token) > MaxTokenLength {
		return skilltree.BuildState{}, malformed(token, "token too long")
	}

	if data, err := base64.RawURLEncoding.DecodeString(token); err == nil {
		var p payload
		if err := unmarshalStrict(data, &p); err == nil && p.Levels != nil {
			return normalize(c, p.Levels, p.Bonus), nil
		}
	}

	legacy, err := decodeLegacy(token)
	if err != nil {
		return skilltree.BuildState{}, malformed(token, err.Error())
	}
	return normalize(c, legacy.SkillLevels, legacy.ExpeditionPoints), nil
}

// IsMalformed reports whether err came from decoding a bad token
func IsMalformed(err error) bool {
	if !errors.IsInvalidArgument(err) {
		return false
	}
	_, ok := errors.GetMeta(err)[MetaTokenLength]
	return ok
}

func decodeLegacy(token string) (*legacyPayload, error) {
	// URLSearchParams turns '+' into a space when the token was not escaped
	token = strings.ReplaceAll(token, " ", "+")

	raw, err := base64.StdEncoding.DecodeString(token)
	if err != nil {
		raw, err = base64.RawStdEncoding.DecodeString(token)
	}
	if err != nil {
		return nil, errors.Wrap(err, "not base64")
	}

	text, err := url.PathUnescape(string(raw))
	if err != nil {
		return nil, errors.Wrap(err, "bad escape sequence")
	}

	var p legacyPayload
	if err := unmarshalStrict([]byte(text), &p); err != nil {
		return nil, err
	}
	if p.SkillLevels == nil {
		return nil, errors.InvalidArgument("missing skill levels")
	}
	return &p, nil
}

// unmarshalStrict decodes a single JSON object into v. A bare null would
// leave v untouched, so anything that is not an object is rejected up front.
func unmarshalStrict(data []byte, v any) error {
	if trimmed := bytes.TrimSpace(data); len(trimmed) == 0 || trimmed[0] != '{' {
		return errors.InvalidArgument("json is not an object")
	}
	decoder := json.NewDecoder(bytes.NewReader(data))
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(v); err != nil {
		return errors.Wrap(err, "invalid json")
	}
	if decoder.More() {
		return errors.InvalidArgument("trailing data after json")
	}
	return nil
}

func normalize(c *catalog.Catalog, levels map[string]int, bonus int) skilltree.BuildState {
	state := skilltree.NewBuildState()
	state.BonusPoints = max(0, min(bonus, c.Budget().MaxBonus))

	for id, level := range levels {
		skill, ok := c.Lookup(id)
		if !ok || level <= 0 {
			continue
		}
		state.SkillLevels[id] = min(level, skill.MaxLevel)
	}
	return state
}

func malformed(token, reason string) error {
	return errors.InvalidArgument("malformed build token").
		WithMeta(MetaTokenLength, len(token)).
		WithMeta(MetaReason, reason)
}
