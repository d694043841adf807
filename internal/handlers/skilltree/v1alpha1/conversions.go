package v1alpha1

import (
	"math"

	"google.golang.org/protobuf/types/known/structpb"

	"github.com/KirkDiggler/skilltree-api/internal/engine"
	"github.com/KirkDiggler/skilltree-api/internal/errors"
	"github.com/KirkDiggler/skilltree-api/internal/orchestrators/planner"
)

// Request fields
const (
	FieldSessionID   = "session_id"
	FieldSkillID     = "skill_id"
	FieldToken       = "token"
	FieldBonusPoints = "bonus_points"
)

// stringField reads an optional string field. Absent and null fields read as
// the empty string.
func stringField(req *structpb.Struct, name string) (string, error) {
	value, ok := req.GetFields()[name]
	if !ok {
		return "", nil
	}

	switch kind := value.GetKind().(type) {
	case *structpb.Value_StringValue:
		return kind.StringValue, nil
	case *structpb.Value_NullValue:
		return "", nil
	default:
		return "", errors.InvalidArgumentf("%s must be a string", name).WithMeta("field", name)
	}
}

func requiredString(req *structpb.Struct, name string) (string, error) {
	value, err := stringField(req, name)
	if err != nil {
		return "", err
	}
	if value == "" {
		return "", errors.InvalidArgumentf("%s is required", name).WithMeta("field", name)
	}
	return value, nil
}

// requiredInt reads a whole number field
func requiredInt(req *structpb.Struct, name string) (int, error) {
	value, ok := req.GetFields()[name]
	if !ok {
		return 0, errors.InvalidArgumentf("%s is required", name).WithMeta("field", name)
	}

	number, ok := value.GetKind().(*structpb.Value_NumberValue)
	if !ok {
		return 0, errors.InvalidArgumentf("%s must be a number", name).WithMeta("field", name)
	}

	n := number.NumberValue
	if n != math.Trunc(n) || n < math.MinInt32 || n > math.MaxInt32 {
		return 0, errors.InvalidArgumentf("%s must be a whole number", name).WithMeta("field", name)
	}
	return int(n), nil
}

func buildViewToMap(view *planner.BuildView) map[string]any {
	levels := make(map[string]any, len(view.State.SkillLevels))
	for id, level := range view.State.SkillLevels {
		if level > 0 {
			levels[id] = level
		}
	}

	return map[string]any{
		"session_id":   view.SessionID,
		"token":        view.Token,
		"bonus_points": view.State.BonusPoints,
		"skill_levels": levels,
		"summary":      summaryToMap(view.Summary),
	}
}

func summaryToMap(summary *engine.Summary) map[string]any {
	if summary == nil {
		return nil
	}

	spent := make(map[string]any, len(summary.SpentByCategory))
	for category, points := range summary.SpentByCategory {
		spent[category.String()] = points
	}

	allocated := make([]any, 0, len(summary.Allocated))
	for _, a := range summary.Allocated {
		allocated = append(allocated, map[string]any{
			"skill_id": a.Skill.ID,
			"name":     a.Skill.Name,
			"level":    a.Level,
		})
	}

	return map[string]any{
		"total_spent":       summary.TotalSpent,
		"available_points":  summary.AvailablePoints,
		"remaining_points":  summary.RemainingPoints,
		"player_level":      summary.PlayerLevel,
		"bonus_points":      summary.BonusPoints,
		"max_bonus":         summary.MaxBonus,
		"spent_by_category": spent,
		"allocated":         allocated,
	}
}

func mutationToMap(out *planner.MutationOutput) map[string]any {
	return map[string]any{
		"build":    buildViewToMap(out.Build),
		"changed":  out.Changed,
		"cascaded": stringsToList(out.Cascaded),
	}
}

func skillViewToMap(view planner.SkillView) map[string]any {
	skill := view.Skill
	return map[string]any{
		"id":                       skill.ID,
		"name":                     skill.Name,
		"description":              skill.Description,
		"category":                 skill.Category.String(),
		"tier":                     int(skill.Tier),
		"max_level":                skill.MaxLevel,
		"size":                     string(skill.Size),
		"prerequisites":            stringsToList(skill.Prerequisites),
		"mode":                     string(skill.Mode),
		"required_category_points": skill.RequiredCategoryPoints,
		"level":                    view.Level,
		"status":                   string(view.Status),
	}
}

func stringsToList(values []string) []any {
	out := make([]any, 0, len(values))
	for _, v := range values {
		out = append(out, v)
	}
	return out
}

func toStruct(fields map[string]any) (*structpb.Struct, error) {
	out, err := structpb.NewStruct(fields)
	if err != nil {
		return nil, errors.Wrap(err, "failed to encode response")
	}
	return out, nil
}
