package players

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/arkanwolfshade/MythosMUD-sub010/internal/domain/player"
	apperr "github.com/arkanwolfshade/MythosMUD-sub010/internal/errors"
)

// redisRepo implements the Repository interface using Redis. Players are
// stored as JSON under player:{id} with a name:{lowered name} index for
// case-insensitive name lookup.
type redisRepo struct {
	client redis.UniversalClient
}

// NewRedis creates a Redis-backed player repository
func NewRedis(client redis.UniversalClient) Repository {
	return &redisRepo{client: client}
}

func (r *redisRepo) key(id string) string {
	return fmt.Sprintf("player:%s", id)
}

func (r *redisRepo) nameKey(name string) string {
	return fmt.Sprintf("player:name:%s", strings.ToLower(name))
}

// Create stores a new player
func (r *redisRepo) Create(ctx context.Context, p *player.Player) error {
	if p == nil {
		return apperr.InvalidArgument("player cannot be nil")
	}
	if p.ID == "" {
		return apperr.InvalidArgument("player ID is required")
	}

	exists, err := r.client.Exists(ctx, r.key(p.ID)).Result()
	if err != nil {
		return fmt.Errorf("failed to check player existence: %w", err)
	}
	if exists > 0 {
		return apperr.AlreadyExistsf("player with ID '%s' already exists", p.ID).
			WithMeta("player_id", p.ID)
	}

	stored := p.Clone()
	stored.CreatedAt = time.Now().UTC()
	stored.UpdatedAt = stored.CreatedAt

	jsonData, err := json.Marshal(stored)
	if err != nil {
		return fmt.Errorf("failed to marshal player: %w", err)
	}

	pipe := r.client.Pipeline()
	pipe.Set(ctx, r.key(p.ID), string(jsonData), 0)
	if p.Name != "" {
		pipe.Set(ctx, r.nameKey(p.Name), p.ID, 0)
	}
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to create player: %w", err)
	}

	return nil
}

// Get retrieves a player by ID
func (r *redisRepo) Get(ctx context.Context, id string) (*player.Player, error) {
	if id == "" {
		return nil, apperr.InvalidArgument("player ID is required")
	}

	jsonData, err := r.client.Get(ctx, r.key(id)).Result()
	if err == redis.Nil {
		return nil, apperr.NotFoundf("player with ID '%s' not found", id).
			WithMeta("player_id", id)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get player: %w", err)
	}

	var p player.Player
	if unmarshalErr := json.Unmarshal([]byte(jsonData), &p); unmarshalErr != nil {
		return nil, fmt.Errorf("failed to unmarshal player: %w", unmarshalErr)
	}

	return &p, nil
}

// GetByName retrieves a player via the name index
func (r *redisRepo) GetByName(ctx context.Context, name string) (*player.Player, error) {
	if name == "" {
		return nil, apperr.InvalidArgument("player name is required")
	}

	id, err := r.client.Get(ctx, r.nameKey(name)).Result()
	if err == redis.Nil {
		return nil, apperr.NotFoundf("player named '%s' not found", name).
			WithMeta("player_name", name)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to resolve player name: %w", err)
	}

	return r.Get(ctx, id)
}

// Save persists the current state of an existing player
func (r *redisRepo) Save(ctx context.Context, p *player.Player) error {
	if p == nil {
		return apperr.InvalidArgument("player cannot be nil")
	}
	if p.ID == "" {
		return apperr.InvalidArgument("player ID is required")
	}

	exists, err := r.client.Exists(ctx, r.key(p.ID)).Result()
	if err != nil {
		return fmt.Errorf("failed to check player existence: %w", err)
	}
	if exists == 0 {
		return apperr.NotFoundf("player with ID '%s' not found", p.ID).
			WithMeta("player_id", p.ID)
	}

	stored := p.Clone()
	stored.UpdatedAt = time.Now().UTC()

	jsonData, err := json.Marshal(stored)
	if err != nil {
		return fmt.Errorf("failed to marshal player: %w", err)
	}

	if err := r.client.Set(ctx, r.key(p.ID), string(jsonData), 0).Err(); err != nil {
		return fmt.Errorf("failed to save player: %w", err)
	}

	return nil
}
