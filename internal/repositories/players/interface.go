package players

//go:generate mockgen -destination=mock/mock_repository.go -package=mockplayers -source=interface.go

import (
	"context"

	"github.com/arkanwolfshade/MythosMUD-sub010/internal/domain/player"
)

// Repository defines the interface for player storage operations. The player
// aggregate is owned by this layer; every mutating caller must
// read-modify-write through one Save per logical operation.
type Repository interface {
	// Create stores a new player, failing if the id is taken
	Create(ctx context.Context, p *player.Player) error

	// Get retrieves a player by ID
	Get(ctx context.Context, id string) (*player.Player, error)

	// GetByName retrieves a player by exact name, case-insensitive
	GetByName(ctx context.Context, name string) (*player.Player, error)

	// Save persists the current state of an existing player
	Save(ctx context.Context, p *player.Player) error
}
