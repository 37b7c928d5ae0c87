// Package player holds the player aggregate as seen by the spellcasting
// engine: a mutable stats bag, an inventory, status effects and a location.
package player

import (
	"math"
	"time"
)

// Stat names used by the spellcasting engine. The stats bag is open-ended;
// these are the keys the engine itself reads and writes.
const (
	StatHealth       = "health"
	StatMaxHealth    = "max_health"
	StatMagicPoints  = "magic_points"
	StatMaxMP        = "max_magic_points"
	StatLucidity     = "lucidity"
	StatCorruption   = "corruption"
	StatIntelligence = "intelligence"
	StatLuck         = "luck"
	StatPower        = "power"
)

// Position is the player's physical posture, which scales regeneration
type Position string

const (
	PositionStanding Position = "standing"
	PositionSitting  Position = "sitting"
	PositionLying    Position = "lying"
)

// InventoryItem is one stack of items carried by a player
type InventoryItem struct {
	ItemID      string `json:"item_id"`
	PrototypeID string `json:"prototype_id"`
	Quantity    int    `json:"quantity"`
}

// Matches reports whether this stack satisfies a requirement for the given
// item or prototype id
func (i *InventoryItem) Matches(id string) bool {
	return i.ItemID == id || i.PrototypeID == id
}

// ActiveStatus is a timed condition currently affecting a player
type ActiveStatus struct {
	Status          string         `json:"status"`
	DurationSeconds int            `json:"duration_seconds"`
	Intensity       int            `json:"intensity"`
	StatMods        map[string]int `json:"stat_mods,omitempty"`
	AppliedAt       time.Time      `json:"applied_at"`
}

// Player is the aggregate owned by the persistence layer. Components must
// read-modify-write it through one repository Save per logical operation.
type Player struct {
	ID            string          `json:"id"`
	Name          string          `json:"name"`
	Stats         map[string]int  `json:"stats"`
	Inventory     []InventoryItem `json:"inventory"`
	StatusEffects []ActiveStatus  `json:"status_effects"`
	RoomID        string          `json:"room_id"`
	Position      Position        `json:"position"`

	// MPRemainder carries the fractional part of regeneration between ticks
	MPRemainder float64 `json:"mp_remainder"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// GetStat returns a stat value, zero when absent
func (p *Player) GetStat(name string) int {
	if p.Stats == nil {
		return 0
	}
	return p.Stats[name]
}

// HasStat reports whether the stat has ever been set
func (p *Player) HasStat(name string) bool {
	if p.Stats == nil {
		return false
	}
	_, ok := p.Stats[name]
	return ok
}

// SetStat writes a stat value
func (p *Player) SetStat(name string, value int) {
	if p.Stats == nil {
		p.Stats = make(map[string]int)
	}
	p.Stats[name] = value
}

// AddStat adjusts a stat by delta and returns the new value
func (p *Player) AddStat(name string, delta int) int {
	v := p.GetStat(name) + delta
	p.SetStat(name, v)
	return v
}

// MaxMagicPoints returns the player's magic point capacity: the explicit
// max stat when present, otherwise derived from power
func (p *Player) MaxMagicPoints() int {
	if p.HasStat(StatMaxMP) {
		return p.GetStat(StatMaxMP)
	}
	return int(math.Ceil(float64(p.GetStat(StatPower)) * 0.2))
}

// NormalizeMagicPoints initializes an unset magic point pool to its maximum.
// Returns the pool value after normalization.
func (p *Player) NormalizeMagicPoints() int {
	if !p.HasStat(StatMagicPoints) {
		p.SetStat(StatMagicPoints, p.MaxMagicPoints())
	}
	return p.GetStat(StatMagicPoints)
}

// FindInventory returns the index of the first stack matching the item or
// prototype id, or -1
func (p *Player) FindInventory(id string) int {
	for i := range p.Inventory {
		if p.Inventory[i].Matches(id) {
			return i
		}
	}
	return -1
}

// RemoveInventoryAt drops one unit from the stack at index i, removing the
// stack entirely when it empties
func (p *Player) RemoveInventoryAt(i int) {
	if i < 0 || i >= len(p.Inventory) {
		return
	}
	if p.Inventory[i].Quantity > 1 {
		p.Inventory[i].Quantity--
		return
	}
	p.Inventory = append(p.Inventory[:i], p.Inventory[i+1:]...)
}

// AddStatusEffect appends a timed condition
func (p *Player) AddStatusEffect(effect ActiveStatus) {
	if effect.AppliedAt.IsZero() {
		effect.AppliedAt = time.Now().UTC()
	}
	p.StatusEffects = append(p.StatusEffects, effect)
}
