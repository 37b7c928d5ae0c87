package spellbook

import (
	"context"
	"sort"
	"sync"

	"github.com/arkanwolfshade/MythosMUD-sub010/internal/domain/player"
	apperr "github.com/arkanwolfshade/MythosMUD-sub010/internal/errors"
)

// InMemoryRepository is an in-memory implementation of the spellbook
// repository. Useful for testing and development.
type InMemoryRepository struct {
	mu   sync.RWMutex
	rows map[string]map[string]*player.PlayerSpell // playerID -> spellID -> row
}

// NewInMemoryRepository creates a new in-memory repository
func NewInMemoryRepository() Repository {
	return &InMemoryRepository{
		rows: make(map[string]map[string]*player.PlayerSpell),
	}
}

// Create inserts a new row
func (r *InMemoryRepository) Create(ctx context.Context, ps *player.PlayerSpell) error {
	if err := validateRow(ps); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	bySpell := r.rows[ps.PlayerID]
	if bySpell == nil {
		bySpell = make(map[string]*player.PlayerSpell)
		r.rows[ps.PlayerID] = bySpell
	}

	if _, exists := bySpell[ps.SpellID]; exists {
		return apperr.AlreadyExistsf("player '%s' already knows spell '%s'", ps.PlayerID, ps.SpellID).
			WithMeta("player_id", ps.PlayerID).
			WithMeta("spell_id", ps.SpellID)
	}

	row := *ps
	bySpell[ps.SpellID] = &row
	return nil
}

// Get retrieves one row
func (r *InMemoryRepository) Get(ctx context.Context, playerID, spellID string) (*player.PlayerSpell, error) {
	if playerID == "" || spellID == "" {
		return nil, apperr.InvalidArgument("player ID and spell ID are required")
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	row, exists := r.rows[playerID][spellID]
	if !exists {
		return nil, apperr.NotFoundf("player '%s' has not learned spell '%s'", playerID, spellID).
			WithMeta("player_id", playerID).
			WithMeta("spell_id", spellID)
	}

	copied := *row
	return &copied, nil
}

// ListByPlayer returns every learned spell in spell-id order
func (r *InMemoryRepository) ListByPlayer(ctx context.Context, playerID string) ([]*player.PlayerSpell, error) {
	if playerID == "" {
		return nil, apperr.InvalidArgument("player ID is required")
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	var result []*player.PlayerSpell
	for _, row := range r.rows[playerID] {
		copied := *row
		result = append(result, &copied)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].SpellID < result[j].SpellID })

	return result, nil
}

// Update persists changes to an existing row
func (r *InMemoryRepository) Update(ctx context.Context, ps *player.PlayerSpell) error {
	if err := validateRow(ps); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.rows[ps.PlayerID][ps.SpellID]; !exists {
		return apperr.NotFoundf("player '%s' has not learned spell '%s'", ps.PlayerID, ps.SpellID).
			WithMeta("player_id", ps.PlayerID).
			WithMeta("spell_id", ps.SpellID)
	}

	row := *ps
	r.rows[ps.PlayerID][ps.SpellID] = &row
	return nil
}

func validateRow(ps *player.PlayerSpell) error {
	if ps == nil {
		return apperr.InvalidArgument("player spell cannot be nil")
	}
	if ps.PlayerID == "" {
		return apperr.InvalidArgument("player ID is required")
	}
	if ps.SpellID == "" {
		return apperr.InvalidArgument("spell ID is required")
	}
	return nil
}
