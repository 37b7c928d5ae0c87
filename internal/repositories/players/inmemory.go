package players

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/arkanwolfshade/MythosMUD-sub010/internal/domain/player"
	apperr "github.com/arkanwolfshade/MythosMUD-sub010/internal/errors"
)

// InMemoryRepository is an in-memory implementation of the player repository.
// Useful for testing and development.
type InMemoryRepository struct {
	mu      sync.RWMutex
	players map[string]*player.Player
}

// NewInMemoryRepository creates a new in-memory repository
func NewInMemoryRepository() Repository {
	return &InMemoryRepository{
		players: make(map[string]*player.Player),
	}
}

// Create stores a new player
func (r *InMemoryRepository) Create(ctx context.Context, p *player.Player) error {
	if p == nil {
		return apperr.InvalidArgument("player cannot be nil")
	}

	if p.ID == "" {
		return apperr.InvalidArgument("player ID is required")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.players[p.ID]; exists {
		return apperr.AlreadyExistsf("player with ID '%s' already exists", p.ID).
			WithMeta("player_id", p.ID)
	}

	stored := p.Clone()
	stored.CreatedAt = time.Now().UTC()
	stored.UpdatedAt = stored.CreatedAt
	r.players[p.ID] = stored

	return nil
}

// Get retrieves a player by ID
func (r *InMemoryRepository) Get(ctx context.Context, id string) (*player.Player, error) {
	if id == "" {
		return nil, apperr.InvalidArgument("player ID is required")
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	p, exists := r.players[id]
	if !exists {
		return nil, apperr.NotFoundf("player with ID '%s' not found", id).
			WithMeta("player_id", id)
	}

	return p.Clone(), nil
}

// GetByName retrieves a player by exact name, case-insensitive
func (r *InMemoryRepository) GetByName(ctx context.Context, name string) (*player.Player, error) {
	if name == "" {
		return nil, apperr.InvalidArgument("player name is required")
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, p := range r.players {
		if strings.EqualFold(p.Name, name) {
			return p.Clone(), nil
		}
	}

	return nil, apperr.NotFoundf("player named '%s' not found", name).
		WithMeta("player_name", name)
}

// Save persists the current state of an existing player
func (r *InMemoryRepository) Save(ctx context.Context, p *player.Player) error {
	if p == nil {
		return apperr.InvalidArgument("player cannot be nil")
	}

	if p.ID == "" {
		return apperr.InvalidArgument("player ID is required")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.players[p.ID]; !exists {
		return apperr.NotFoundf("player with ID '%s' not found", p.ID).
			WithMeta("player_id", p.ID)
	}

	stored := p.Clone()
	stored.UpdatedAt = time.Now().UTC()
	r.players[p.ID] = stored

	return nil
}
