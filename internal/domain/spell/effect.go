package spell

// EffectKind identifies a spell's mechanical consequence
type EffectKind string

const (
	EffectHeal         EffectKind = "heal"
	EffectDamage       EffectKind = "damage"
	EffectStatus       EffectKind = "status"
	EffectStatMod      EffectKind = "stat_mod"
	EffectLucidity     EffectKind = "lucidity"
	EffectTeleport     EffectKind = "teleport"
	EffectCreateObject EffectKind = "create_object"
)

// Effect is the tagged union of spell consequences. Each variant carries only
// the fields its kind needs, so handling can be exhaustively type-switched.
type Effect interface {
	Kind() EffectKind
}

// HealEffect restores health to the target
type HealEffect struct {
	Amount int `yaml:"amount" json:"amount"`
}

func (*HealEffect) Kind() EffectKind { return EffectHeal }

// DamageEffect deals typed damage to the target
type DamageEffect struct {
	Amount     int    `yaml:"amount" json:"amount"`
	DamageType string `yaml:"damage_type" json:"damage_type"`
}

func (*DamageEffect) Kind() EffectKind { return EffectDamage }

// StatusEffect applies a timed status condition to the target
type StatusEffect struct {
	Status          string `yaml:"status" json:"status"`
	DurationSeconds int    `yaml:"duration_seconds" json:"duration_seconds"`
	Intensity       int    `yaml:"intensity" json:"intensity"`
}

func (*StatusEffect) Kind() EffectKind { return EffectStatus }

// StatModEffect applies timed stat modifications to the target
type StatModEffect struct {
	Mods            map[string]int `yaml:"mods" json:"mods"`
	DurationSeconds int            `yaml:"duration_seconds" json:"duration_seconds"`
}

func (*StatModEffect) Kind() EffectKind { return EffectStatMod }

// LucidityEffect adjusts the target's lucidity and corruption pools
type LucidityEffect struct {
	LucidityDelta   int `yaml:"lucidity_delta" json:"lucidity_delta"`
	CorruptionDelta int `yaml:"corruption_delta" json:"corruption_delta"`
}

func (*LucidityEffect) Kind() EffectKind { return EffectLucidity }

// TeleportEffect relocates the target to another room
type TeleportEffect struct {
	DestinationRoom string `yaml:"destination_room" json:"destination_room"`
}

func (*TeleportEffect) Kind() EffectKind { return EffectTeleport }

// CreateObjectEffect conjures items into the target's inventory
type CreateObjectEffect struct {
	PrototypeID string `yaml:"prototype_id" json:"prototype_id"`
	Quantity    int    `yaml:"quantity" json:"quantity"`
}

func (*CreateObjectEffect) Kind() EffectKind { return EffectCreateObject }
