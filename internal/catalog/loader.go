package catalog

import (
	"log"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/arkanwolfshade/MythosMUD-sub010/internal/domain/spell"
	apperr "github.com/arkanwolfshade/MythosMUD-sub010/internal/errors"
)

// EffectDefinition is the YAML form of a spell effect, tagged by kind
type EffectDefinition struct {
	Kind            string         `yaml:"kind"`
	Amount          int            `yaml:"amount"`
	DamageType      string         `yaml:"damage_type"`
	Status          string         `yaml:"status"`
	DurationSeconds int            `yaml:"duration_seconds"`
	Intensity       int            `yaml:"intensity"`
	Mods            map[string]int `yaml:"mods"`
	LucidityDelta   int            `yaml:"lucidity_delta"`
	CorruptionDelta int            `yaml:"corruption_delta"`
	DestinationRoom string         `yaml:"destination_room"`
	PrototypeID     string         `yaml:"prototype_id"`
	Quantity        int            `yaml:"quantity"`
}

// SpellDefinition is the YAML form of a spell catalog entry
type SpellDefinition struct {
	Name               string               `yaml:"name"`
	Description        string               `yaml:"description"`
	School             string               `yaml:"school"`
	MPCost             int                  `yaml:"mp_cost"`
	LucidityCost       int                  `yaml:"lucidity_cost"`
	CorruptionOnLearn  int                  `yaml:"corruption_on_learn"`
	CorruptionOnCast   int                  `yaml:"corruption_on_cast"`
	CastingTimeSeconds float64              `yaml:"casting_time_seconds"`
	Target             string               `yaml:"target"`
	Range              string               `yaml:"range"`
	Effect             *EffectDefinition    `yaml:"effect"`
	Materials          []spell.Material     `yaml:"materials"`
	Prerequisites      *spell.Prerequisites `yaml:"prerequisites"`
}

// CatalogConfig is the structure of the spells YAML file
type CatalogConfig struct {
	Spells map[string]SpellDefinition `yaml:"spells"`
}

// Load populates the catalog from a YAML file. A second call is a no-op.
// Malformed entries are skipped with a warning; an unreadable or empty file
// is a load failure.
func (c *Catalog) Load(path string) error {
	if c.Loaded() {
		return nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return apperr.WrapWithCode(err, apperr.CodeUnavailable, "failed to read spell catalog")
	}

	return c.LoadBytes(data)
}

// LoadBytes populates the catalog from raw YAML. A second call is a no-op.
func (c *Catalog) LoadBytes(data []byte) error {
	if c.Loaded() {
		return nil
	}

	var config CatalogConfig
	if err := yaml.Unmarshal(data, &config); err != nil {
		return apperr.WrapWithCode(err, apperr.CodeValidation, "failed to parse spell catalog")
	}

	var spells []*spell.Spell
	for id, def := range config.Spells {
		s, err := spellFromDefinition(id, def)
		if err != nil {
			log.Printf("catalog: skipping malformed spell %q: %v", id, err)
			continue
		}
		spells = append(spells, s)
	}

	if len(spells) == 0 {
		return apperr.Validation("spell catalog contains no usable spells")
	}

	c.install(spells)
	return nil
}

func spellFromDefinition(id string, def SpellDefinition) (*spell.Spell, error) {
	effect, err := effectFromDefinition(def.Effect)
	if err != nil {
		return nil, err
	}

	s := &spell.Spell{
		ID:                 id,
		Name:               def.Name,
		Description:        def.Description,
		School:             schoolFromString(def.School),
		MPCost:             def.MPCost,
		LucidityCost:       def.LucidityCost,
		CorruptionOnLearn:  def.CorruptionOnLearn,
		CorruptionOnCast:   def.CorruptionOnCast,
		CastingTimeSeconds: def.CastingTimeSeconds,
		Target:             targetFromString(def.Target),
		Range:              rangeFromString(def.Range),
		Effect:             effect,
		Materials:          def.Materials,
		Prerequisites:      def.Prerequisites,
	}

	if err := s.Validate(); err != nil {
		return nil, err
	}
	return s, nil
}

func effectFromDefinition(def *EffectDefinition) (spell.Effect, error) {
	if def == nil {
		return nil, apperr.Validation("effect is required")
	}

	switch spell.EffectKind(def.Kind) {
	case spell.EffectHeal:
		return &spell.HealEffect{Amount: def.Amount}, nil
	case spell.EffectDamage:
		return &spell.DamageEffect{Amount: def.Amount, DamageType: def.DamageType}, nil
	case spell.EffectStatus:
		return &spell.StatusEffect{
			Status:          def.Status,
			DurationSeconds: def.DurationSeconds,
			Intensity:       def.Intensity,
		}, nil
	case spell.EffectStatMod:
		return &spell.StatModEffect{Mods: def.Mods, DurationSeconds: def.DurationSeconds}, nil
	case spell.EffectLucidity:
		return &spell.LucidityEffect{
			LucidityDelta:   def.LucidityDelta,
			CorruptionDelta: def.CorruptionDelta,
		}, nil
	case spell.EffectTeleport:
		return &spell.TeleportEffect{DestinationRoom: def.DestinationRoom}, nil
	case spell.EffectCreateObject:
		return &spell.CreateObjectEffect{PrototypeID: def.PrototypeID, Quantity: def.Quantity}, nil
	default:
		return nil, apperr.Validationf("unknown effect kind %q", def.Kind)
	}
}

func schoolFromString(s string) spell.School {
	switch spell.School(s) {
	case spell.SchoolMythos, spell.SchoolClerical, spell.SchoolElemental:
		return spell.School(s)
	default:
		return spell.SchoolOther
	}
}

func targetFromString(s string) spell.TargetKind {
	switch spell.TargetKind(s) {
	case spell.TargetEntity, spell.TargetLocation, spell.TargetArea, spell.TargetAll:
		return spell.TargetKind(s)
	default:
		return spell.TargetSelf
	}
}

func rangeFromString(s string) spell.RangeClass {
	switch spell.RangeClass(s) {
	case spell.RangeTouch, spell.RangeSight, spell.RangeUnlimited:
		return spell.RangeClass(s)
	default:
		return spell.RangeRoom
	}
}
