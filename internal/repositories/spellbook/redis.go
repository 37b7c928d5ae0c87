package spellbook

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"

	"github.com/redis/go-redis/v9"
	"golang.org/x/sync/errgroup"

	"github.com/arkanwolfshade/MythosMUD-sub010/internal/domain/player"
	apperr "github.com/arkanwolfshade/MythosMUD-sub010/internal/errors"
)

// redisRepo implements the spellbook Repository using Redis. Rows are JSON
// under spellbook:{player}:{spell}, with spellbook:{player} as a set of
// learned spell ids for listing.
type redisRepo struct {
	client redis.UniversalClient
}

// NewRedis creates a Redis-backed spellbook repository
func NewRedis(client redis.UniversalClient) Repository {
	return &redisRepo{client: client}
}

func (r *redisRepo) rowKey(playerID, spellID string) string {
	return fmt.Sprintf("spellbook:%s:%s", playerID, spellID)
}

func (r *redisRepo) indexKey(playerID string) string {
	return fmt.Sprintf("spellbook:%s", playerID)
}

// Create inserts a new row
func (r *redisRepo) Create(ctx context.Context, ps *player.PlayerSpell) error {
	if err := validateRow(ps); err != nil {
		return err
	}

	exists, err := r.client.Exists(ctx, r.rowKey(ps.PlayerID, ps.SpellID)).Result()
	if err != nil {
		return fmt.Errorf("failed to check spellbook row existence: %w", err)
	}
	if exists > 0 {
		return apperr.AlreadyExistsf("player '%s' already knows spell '%s'", ps.PlayerID, ps.SpellID).
			WithMeta("player_id", ps.PlayerID).
			WithMeta("spell_id", ps.SpellID)
	}

	jsonData, err := json.Marshal(ps)
	if err != nil {
		return fmt.Errorf("failed to marshal spellbook row: %w", err)
	}

	pipe := r.client.Pipeline()
	pipe.Set(ctx, r.rowKey(ps.PlayerID, ps.SpellID), string(jsonData), 0)
	pipe.SAdd(ctx, r.indexKey(ps.PlayerID), ps.SpellID)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to create spellbook row: %w", err)
	}

	return nil
}

// Get retrieves one row
func (r *redisRepo) Get(ctx context.Context, playerID, spellID string) (*player.PlayerSpell, error) {
	if playerID == "" || spellID == "" {
		return nil, apperr.InvalidArgument("player ID and spell ID are required")
	}

	jsonData, err := r.client.Get(ctx, r.rowKey(playerID, spellID)).Result()
	if err == redis.Nil {
		return nil, apperr.NotFoundf("player '%s' has not learned spell '%s'", playerID, spellID).
			WithMeta("player_id", playerID).
			WithMeta("spell_id", spellID)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get spellbook row: %w", err)
	}

	var ps player.PlayerSpell
	if unmarshalErr := json.Unmarshal([]byte(jsonData), &ps); unmarshalErr != nil {
		return nil, fmt.Errorf("failed to unmarshal spellbook row: %w", unmarshalErr)
	}

	return &ps, nil
}

// ListByPlayer fans out over the index set and fetches rows concurrently
func (r *redisRepo) ListByPlayer(ctx context.Context, playerID string) ([]*player.PlayerSpell, error) {
	if playerID == "" {
		return nil, apperr.InvalidArgument("player ID is required")
	}

	spellIDs, err := r.client.SMembers(ctx, r.indexKey(playerID)).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to list spellbook index: %w", err)
	}
	if len(spellIDs) == 0 {
		return nil, nil
	}

	rows := make([]*player.PlayerSpell, len(spellIDs))
	g, ctx := errgroup.WithContext(ctx)
	for i, id := range spellIDs {
		i, id := i, id
		g.Go(func() error {
			row, err := r.Get(ctx, playerID, id)
			if err != nil {
				return fmt.Errorf("failed to get spellbook row %s: %w", id, err)
			}
			rows[i] = row
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	sort.Slice(rows, func(i, j int) bool { return rows[i].SpellID < rows[j].SpellID })
	return rows, nil
}

// Update persists changes to an existing row
func (r *redisRepo) Update(ctx context.Context, ps *player.PlayerSpell) error {
	if err := validateRow(ps); err != nil {
		return err
	}

	exists, err := r.client.Exists(ctx, r.rowKey(ps.PlayerID, ps.SpellID)).Result()
	if err != nil {
		return fmt.Errorf("failed to check spellbook row existence: %w", err)
	}
	if exists == 0 {
		return apperr.NotFoundf("player '%s' has not learned spell '%s'", ps.PlayerID, ps.SpellID).
			WithMeta("player_id", ps.PlayerID).
			WithMeta("spell_id", ps.SpellID)
	}

	jsonData, err := json.Marshal(ps)
	if err != nil {
		return fmt.Errorf("failed to marshal spellbook row: %w", err)
	}

	if err := r.client.Set(ctx, r.rowKey(ps.PlayerID, ps.SpellID), string(jsonData), 0).Err(); err != nil {
		return fmt.Errorf("failed to update spellbook row: %w", err)
	}

	return nil
}
