package catalog

import (
	"bytes"
	"embed"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/KirkDiggler/skilltree-api/internal/entities/skilltree"
	"github.com/KirkDiggler/skilltree-api/internal/errors"
)

//go:embed data/*.yaml
var dataFS embed.FS

// DefaultFile is the embedded catalog shipped with the service
const DefaultFile = "data/arc_raiders.yaml"

// fileDefinition is the on-disk catalog format
type fileDefinition struct {
	Version string           `yaml:"version" validate:"required"`
	Budget  budgetDefinition `yaml:"budget"`
	Skills  []skillEntry     `yaml:"skills" validate:"required,min=1,dive"`

	// Convergence names skills reached from more than one branch. They
	// default to ANY when no mode is given.
	Convergence []string `yaml:"convergence" validate:"dive,required"`
}

type budgetDefinition struct {
	Base     int `yaml:"base" validate:"required,gt=0"`
	MaxBonus int `yaml:"max_bonus" validate:"gte=0"`
}

type skillEntry struct {
	ID             string   `yaml:"id" validate:"required"`
	Name           string   `yaml:"name" validate:"required"`
	Description    string   `yaml:"description"`
	Category       string   `yaml:"category" validate:"required,oneof=conditioning mobility survival"`
	Tier           int      `yaml:"tier" validate:"required,min=1,max=3"`
	MaxLevel       int      `yaml:"max_level" validate:"required,min=1"`
	Size           string   `yaml:"size" validate:"omitempty,oneof=small big"`
	Prerequisites  []string `yaml:"prerequisites" validate:"dive,required"`
	Mode           string   `yaml:"mode" validate:"omitempty,oneof=ALL ANY all any"`
	RequiredPoints int      `yaml:"required_points" validate:"gte=0"`
}

var (
	validateOnce sync.Once
	validate     *validator.Validate
)

func definitionValidator() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
	})
	return validate
}

// Load parses a YAML catalog and builds a Catalog from it
func Load(r io.Reader) (*Catalog, error) {
	decoder := yaml.NewDecoder(r)
	decoder.KnownFields(true)

	var def fileDefinition
	if err := decoder.Decode(&def); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeInvalidArgument, "failed to parse catalog")
	}

	if err := definitionValidator().Struct(def); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeInvalidArgument, "catalog definition failed validation")
	}

	cfg, err := def.toConfig()
	if err != nil {
		return nil, err
	}
	return New(cfg)
}

// LoadFile reads a YAML catalog from disk
func LoadFile(path string) (*Catalog, error) {
	f, err := os.Open(path) // #nosec G304 -- operator supplied catalog path
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open catalog %s", path)
	}
	defer func() { _ = f.Close() }()

	return Load(f)
}

var (
	defaultOnce    sync.Once
	defaultCatalog *Catalog
)

// Default returns the embedded catalog, parsed once and shared by every
// caller. It panics if the embedded file is invalid, which the package tests
// guard against.
func Default() *Catalog {
	defaultOnce.Do(func() {
		c, err := loadEmbedded(DefaultFile)
		if err != nil {
			panic(err)
		}
		defaultCatalog = c
	})
	return defaultCatalog
}

func loadEmbedded(name string) (*Catalog, error) {
	data, err := dataFS.ReadFile(name)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read embedded catalog %s", name)
	}
	return Load(bytes.NewReader(data))
}

func (d fileDefinition) toConfig() (*Config, error) {
	convergence := make(map[string]bool, len(d.Convergence))
	for _, id := range d.Convergence {
		convergence[id] = true
	}

	capstoneThreshold := 0
	for _, entry := range d.Skills {
		if entry.Tier == int(skilltree.TierThree) {
			capstoneThreshold = max(capstoneThreshold, entry.RequiredPoints)
		}
	}

	known := make(map[string]bool, len(d.Skills))
	skills := make([]skilltree.Skill, len(d.Skills))
	for i, entry := range d.Skills {
		known[entry.ID] = true
		skills[i] = skilltree.Skill{
			ID:                     entry.ID,
			Name:                   entry.Name,
			Description:            entry.Description,
			Category:               skilltree.Category(entry.Category),
			Tier:                   skilltree.Tier(entry.Tier),
			MaxLevel:               entry.MaxLevel,
			Size:                   skilltree.SkillSize(entry.Size),
			Prerequisites:          entry.Prerequisites,
			Mode:                   entry.mode(convergence[entry.ID], capstoneThreshold),
			RequiredCategoryPoints: entry.RequiredPoints,
		}
	}
	for _, id := range d.Convergence {
		if known[id] {
			continue
		}
		return nil, errors.InvalidArgumentf("convergence lists unknown skill %s", id).
			WithMeta("skill_id", id)
	}

	return &Config{
		Version: d.Version,
		Budget: skilltree.Budget{
			Base:     d.Budget.Base,
			MaxBonus: d.Budget.MaxBonus,
		},
		Skills: skills,
	}, nil
}

// mode resolves the prerequisite mode. An explicit tag wins. Otherwise
// convergence skills and capstones gated at the highest tier 3 threshold
// take ANY and everything else takes ALL.
func (e skillEntry) mode(convergence bool, capstoneThreshold int) skilltree.PrerequisiteMode {
	if e.Mode != "" {
		return skilltree.PrerequisiteMode(strings.ToUpper(e.Mode))
	}
	if convergence {
		return skilltree.ModeAny
	}
	if e.Tier == int(skilltree.TierThree) && e.RequiredPoints > 0 && e.RequiredPoints == capstoneThreshold {
		return skilltree.ModeAny
	}
	return skilltree.ModeAll
}
