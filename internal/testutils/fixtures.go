package testutils

import (
	"time"

	"github.com/arkanwolfshade/MythosMUD-sub010/internal/domain/player"
)

// CreateTestPlayer creates a caster with enough of every stat to cast
func CreateTestPlayer(id, name string) *player.Player {
	return &player.Player{
		ID:       id,
		Name:     name,
		RoomID:   "room-1",
		Position: player.PositionStanding,
		Stats: map[string]int{
			player.StatHealth:       80,
			player.StatMaxHealth:    100,
			player.StatMagicPoints:  50,
			player.StatLucidity:     60,
			player.StatCorruption:   0,
			player.StatIntelligence: 40,
			player.StatLuck:         30,
			player.StatPower:        250,
		},
		Inventory: []player.InventoryItem{},
	}
}

// CreateTestSpellbookRow creates a learned-spell row at the given mastery
func CreateTestSpellbookRow(playerID, spellID string, mastery int) *player.PlayerSpell {
	return &player.PlayerSpell{
		PlayerID:  playerID,
		SpellID:   spellID,
		Mastery:   mastery,
		LearnedAt: time.Now().UTC(),
	}
}
