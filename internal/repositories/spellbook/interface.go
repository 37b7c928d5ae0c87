package spellbook

//go:generate mockgen -destination=mock/mock_repository.go -package=mockspellbook -source=interface.go

import (
	"context"

	"github.com/arkanwolfshade/MythosMUD-sub010/internal/domain/player"
)

// Repository defines the interface for player-spell (spellbook) storage.
// One row exists per player and learned spell.
type Repository interface {
	// Create inserts a new row, failing with AlreadyExists if the player
	// already knows the spell
	Create(ctx context.Context, ps *player.PlayerSpell) error

	// Get retrieves one row, NotFound if the spell is not learned
	Get(ctx context.Context, playerID, spellID string) (*player.PlayerSpell, error)

	// ListByPlayer returns every spell the player has learned
	ListByPlayer(ctx context.Context, playerID string) ([]*player.PlayerSpell, error)

	// Update persists mastery/cast-count changes to an existing row
	Update(ctx context.Context, ps *player.PlayerSpell) error
}
