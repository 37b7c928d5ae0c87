// Package spell defines the immutable spell catalog entries and their
// effect specifications.
package spell

import (
	apperr "github.com/arkanwolfshade/MythosMUD-sub010/internal/errors"
)

// School identifies the tradition a spell belongs to
type School string

const (
	SchoolMythos    School = "mythos"
	SchoolClerical  School = "clerical"
	SchoolElemental School = "elemental"
	SchoolOther     School = "other"
)

// TargetKind identifies what a spell must be aimed at
type TargetKind string

const (
	TargetSelf     TargetKind = "self"
	TargetEntity   TargetKind = "entity"
	TargetLocation TargetKind = "location"
	TargetArea     TargetKind = "area"
	TargetAll      TargetKind = "all"
)

// RangeClass identifies how far a spell reaches
type RangeClass string

const (
	RangeTouch     RangeClass = "touch"
	RangeRoom      RangeClass = "room"
	RangeSight     RangeClass = "sight"
	RangeUnlimited RangeClass = "unlimited"
)

// Material is a required spell component backed by inventory
type Material struct {
	ItemID   string `yaml:"item_id" json:"item_id"`
	Consumed bool   `yaml:"consumed" json:"consumed"`
}

// Prerequisites gate who may learn a spell
type Prerequisites struct {
	MinStats       map[string]int `yaml:"min_stats" json:"min_stats"`
	RequiredSpells []string       `yaml:"required_spells" json:"required_spells"`
}

// Spell is an immutable catalog entry
type Spell struct {
	ID                 string
	Name               string
	Description        string
	School             School
	MPCost             int
	LucidityCost       int
	CorruptionOnLearn  int
	CorruptionOnCast   int
	CastingTimeSeconds float64
	Target             TargetKind
	Range              RangeClass
	Effect             Effect
	Materials          []Material
	Prerequisites      *Prerequisites
}

// IsMythos reports whether the spell belongs to the mythos school
func (s *Spell) IsMythos() bool {
	return s.School == SchoolMythos
}

// RequiresLucidity reports whether casting this spell drains lucidity
func (s *Spell) RequiresLucidity() bool {
	return s.IsMythos() && s.LucidityCost > 0
}

// IsInstant reports whether the spell completes in the same operation that
// started it
func (s *Spell) IsInstant() bool {
	return s.CastingTimeSeconds <= 0
}

// Validate checks the catalog-entry invariants
func (s *Spell) Validate() error {
	if s.ID == "" {
		return apperr.Validation("spell id is required")
	}
	if s.Name == "" {
		return apperr.Validationf("spell %q has no name", s.ID)
	}
	if s.MPCost < 0 || s.LucidityCost < 0 || s.CorruptionOnLearn < 0 || s.CorruptionOnCast < 0 {
		return apperr.Validationf("spell %q has a negative cost", s.ID)
	}
	if s.CastingTimeSeconds < 0 {
		return apperr.Validationf("spell %q has a negative casting time", s.ID)
	}
	if s.Effect == nil {
		return apperr.Validationf("spell %q has no effect", s.ID)
	}
	return nil
}
