package targeting

//go:generate mockgen -destination=mock/mock_collaborators.go -package=mocktargeting -source=types.go

import (
	"context"

	"github.com/arkanwolfshade/MythosMUD-sub010/internal/domain/combat"
	"github.com/arkanwolfshade/MythosMUD-sub010/internal/domain/player"
)

// MatchKind classifies what a resolved target is
type MatchKind string

const (
	MatchPlayer MatchKind = "player"
	MatchNPC    MatchKind = "npc"
	MatchRoom   MatchKind = "room"
	MatchArea   MatchKind = "area"
)

// Match is a resolved, validated spell target. It is transient: a snapshot
// taken at resolution time, never persisted.
type Match struct {
	ID     string
	Name   string
	Kind   MatchKind
	RoomID string
}

// NameResolver is the general world resolver this engine delegates to when
// the caster supplies a target name. A nil match with a nil error means
// nothing by that name is in reach.
type NameResolver interface {
	Resolve(ctx context.Context, caster *player.Player, name string) (*Match, error)
}

// CombatLookup finds the active combat session a caster participates in.
// A nil session with a nil error means the caster is not fighting.
type CombatLookup interface {
	ActiveSessionFor(ctx context.Context, casterID string) (*combat.Session, error)
}
