package main

import (
	"context"
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"

	"github.com/arkanwolfshade/MythosMUD-sub010/internal/catalog"
	"github.com/arkanwolfshade/MythosMUD-sub010/internal/config"
	"github.com/arkanwolfshade/MythosMUD-sub010/internal/domain/combat"
	"github.com/arkanwolfshade/MythosMUD-sub010/internal/domain/player"
	"github.com/arkanwolfshade/MythosMUD-sub010/internal/notify"
	playerrepo "github.com/arkanwolfshade/MythosMUD-sub010/internal/repositories/players"
	spellbookrepo "github.com/arkanwolfshade/MythosMUD-sub010/internal/repositories/spellbook"
	"github.com/arkanwolfshade/MythosMUD-sub010/internal/services/casting"
	"github.com/arkanwolfshade/MythosMUD-sub010/internal/services/effects"
	"github.com/arkanwolfshade/MythosMUD-sub010/internal/services/mastery"
	"github.com/arkanwolfshade/MythosMUD-sub010/internal/services/materials"
	"github.com/arkanwolfshade/MythosMUD-sub010/internal/services/resources"
	"github.com/arkanwolfshade/MythosMUD-sub010/internal/services/targeting"
	"github.com/arkanwolfshade/MythosMUD-sub010/internal/uuid"
	"github.com/arkanwolfshade/MythosMUD-sub010/internal/world"
)

// gameClock is the simulator's tick source; the real server drives this
// from its main loop.
type gameClock struct {
	tick int64
}

func (c *gameClock) CurrentTick() int64 { return c.tick }

// eventLogger prints every engine event the simulator subscribes to
type eventLogger struct{}

func (l *eventLogger) HandleEvent(event notify.Event) error {
	log.Printf("[event] %s player=%s payload=%v", event.Kind, event.PlayerID, event.Payload)
	return nil
}

func (l *eventLogger) Priority() int { return 0 }
func (l *eventLogger) ID() string    { return "castsim-event-logger" }

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	var (
		playerRepo    playerrepo.Repository
		spellbookRepo spellbookrepo.Repository
		redisClient   *redis.Client
	)
	if cfg.Redis.Addr != "" {
		log.Printf("Connecting to Redis at: %s", cfg.Redis.Addr)
		redisClient = redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})

		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		if err := redisClient.Ping(ctx).Err(); err != nil {
			cancel()
			log.Printf("Redis connection failed: %v", err)
			log.Println("Falling back to in-memory repositories")
			redisClient = nil
		} else {
			cancel()
			log.Println("Connected to Redis")
		}
	}
	if redisClient != nil {
		playerRepo = playerrepo.NewRedis(redisClient)
		spellbookRepo = spellbookrepo.NewRedis(redisClient)
		defer func() {
			if err := redisClient.Close(); err != nil {
				log.Printf("Failed to close Redis client: %v", err)
			}
		}()
	} else {
		log.Println("Using in-memory repositories")
		playerRepo = playerrepo.NewInMemoryRepository()
		spellbookRepo = spellbookrepo.NewInMemoryRepository()
	}

	spells := catalog.New()
	if err := spells.Load(cfg.Engine.SpellsFile); err != nil {
		log.Fatalf("Failed to load spell catalog from %s: %v", cfg.Engine.SpellsFile, err)
	}
	log.Printf("Loaded %d spells", spells.Count())

	roster := world.NewRoster(playerRepo)
	clock := &gameClock{}
	bus := notify.NewBus(uuid.NewGoogleUUIDGenerator())
	for _, kind := range []notify.EventKind{
		notify.EventCastStarted,
		notify.EventCastCompleted,
		notify.EventCastFailed,
		notify.EventCastInterrupted,
		notify.EventSpellLearned,
		notify.EventVitalsUpdate,
	} {
		bus.Subscribe(kind, &eventLogger{})
	}

	masteryService := mastery.NewService(&mastery.ServiceConfig{
		Catalog:   spells,
		Players:   playerRepo,
		Spellbook: spellbookRepo,
	})
	resourceService := resources.NewService(&resources.ServiceConfig{
		Players:       playerRepo,
		BaseRegenRate: cfg.Engine.BaseRegenRate,
		TickSeconds:   cfg.Engine.TickSeconds,
	})
	castingService := casting.NewService(&casting.ServiceConfig{
		Catalog: spells,
		Players: playerRepo,
		Mastery: masteryService,
		Materials: materials.NewService(&materials.ServiceConfig{
			Players: playerRepo,
		}),
		Resources: resourceService,
		Effects: effects.NewService(&effects.ServiceConfig{
			Players: playerRepo,
			Damage:  roster,
		}),
		Targeting: targeting.NewService(&targeting.ServiceConfig{
			Resolver: roster,
			Combat:   roster,
		}),
		Combat:      roster,
		Clock:       clock,
		Notifier:    bus,
		TickSeconds: cfg.Engine.TickSeconds,
	})

	runSimulation(cfg, spells, playerRepo, roster, clock, masteryService, resourceService, castingService)
}

// runSimulation walks one caster through learn, cast, combat and regen to
// exercise the whole engine end to end
func runSimulation(
	cfg *config.Config,
	spells *catalog.Catalog,
	playerRepo playerrepo.Repository,
	roster *world.Roster,
	clock *gameClock,
	masteryService mastery.Service,
	resourceService resources.Service,
	castingService casting.Service,
) {
	ctx := context.Background()

	caster := &player.Player{
		ID:       "caster-1",
		Name:     "Armitage",
		RoomID:   "room-1",
		Position: player.PositionStanding,
		Stats: map[string]int{
			player.StatHealth:       60,
			player.StatMaxHealth:    100,
			player.StatLucidity:     80,
			player.StatIntelligence: 55,
			player.StatLuck:         35,
			player.StatPower:        300,
		},
	}
	caster.NormalizeMagicPoints()
	if err := playerRepo.Create(ctx, caster); err != nil {
		log.Fatalf("Failed to create caster: %v", err)
	}

	roster.AddNPC(&world.NPC{ID: "npc-1", Name: "a shambling horror", RoomID: "room-1", Health: 120})
	roster.StartCombat(&combat.Session{
		ID: "combat-1",
		Participants: []combat.Participant{
			{ID: caster.ID, Name: caster.Name, Kind: combat.ParticipantPlayer},
			{ID: "npc-1", Name: "a shambling horror", Kind: combat.ParticipantNPC},
		},
		CurrentTurnID:     "npc-1",
		NextTurnTick:      80,
		TurnIntervalTicks: cfg.Engine.TurnIntervalTicks,
	})

	for _, sp := range spells.List("") {
		result, err := masteryService.LearnSpell(ctx, caster.ID, sp.ID, "simulation")
		if err != nil {
			log.Printf("Learn %s failed: %v", sp.Name, err)
			continue
		}
		log.Printf("Learn %s: %s", sp.Name, result.Message)
	}

	names := []string{"", "horror", "horror"}
	for i, sp := range spells.List("") {
		targetName := ""
		if i < len(names) {
			targetName = names[i]
		}
		result, err := castingService.CastSpell(ctx, &casting.CastInput{
			CasterID:      caster.ID,
			SpellIDOrName: sp.ID,
			TargetName:    targetName,
		})
		if err != nil {
			log.Printf("Cast %s failed: %v", sp.Name, err)
			continue
		}
		log.Printf("Cast %s: %s", sp.Name, result.Message)
		if result.Started {
			break
		}
	}

	// Drive the game loop until every in-flight cast resolves
	for i := 0; i < 200 && len(castingService.ActiveCasters()) > 0; i++ {
		clock.tick++
		if err := castingService.CheckCastingProgress(ctx); err != nil {
			log.Printf("Progress check failed: %v", err)
		}
		if _, err := resourceService.RegenTick(ctx, caster.ID); err != nil {
			log.Printf("Regen tick failed: %v", err)
		}
	}

	gained, err := resourceService.Meditate(ctx, caster.ID, 30)
	if err != nil {
		log.Printf("Meditation failed: %v", err)
	} else {
		log.Printf("Meditation restored %d magic points", gained)
	}

	final, err := playerRepo.Get(ctx, caster.ID)
	if err != nil {
		log.Fatalf("Failed to reload caster: %v", err)
	}
	log.Printf("Final state: mp=%d lucidity=%d corruption=%d",
		final.GetStat(player.StatMagicPoints),
		final.GetStat(player.StatLucidity),
		final.GetStat(player.StatCorruption))
}
