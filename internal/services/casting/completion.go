package casting

import (
	"context"
	"fmt"
	"log"

	apperr "github.com/arkanwolfshade/MythosMUD-sub010/internal/errors"
	"github.com/arkanwolfshade/MythosMUD-sub010/internal/notify"
)

// completeCasting finishes one elapsed cast. The CastingState entry is
// removed before costs or effects run; a fault after that point leaves the
// caster free rather than stuck mid-cast.
func (s *service) completeCasting(ctx context.Context, casterID string) {
	unlock := s.locks.lock(casterID)
	defer unlock()

	state, ok := s.states.complete(casterID)
	if !ok {
		// Interrupted between the sweep and here
		return
	}

	if _, err := s.players.Get(ctx, casterID); err != nil {
		if apperr.IsNotFound(err) {
			log.Printf("casting: caster %s vanished before completing %s; discarding cast", casterID, state.SpellID)
		} else {
			log.Printf("casting: failed to load caster %s completing %s: %v", casterID, state.SpellID, err)
		}
		return
	}

	sp, found := s.catalog.GetByID(state.SpellID)
	if !found {
		log.Printf("casting: spell %s missing from catalog at completion for %s", state.SpellID, casterID)
		return
	}

	if err := s.resources.ApplyCosts(ctx, casterID, sp); err != nil {
		log.Printf("casting: failed to apply costs completing %s for %s: %v", sp.ID, casterID, err)
		return
	}

	// Target was validated at cast time; apply against the snapshot
	target := state.Target
	outcome, err := s.effects.Apply(ctx, casterID, &target, sp, state.MasteryAtCast)
	if err != nil {
		log.Printf("casting: failed to apply effect completing %s for %s: %v", sp.ID, casterID, err)
		return
	}

	if err := s.mastery.RecordCast(ctx, casterID, sp.ID); err != nil {
		log.Printf("casting: failed to record cast of %s by %s: %v", sp.ID, casterID, err)
	}
	if err := s.mastery.IncreaseMasteryOnCast(ctx, casterID, sp.ID, true); err != nil {
		log.Printf("casting: failed to advance mastery of %s for %s: %v", sp.ID, casterID, err)
	}

	message := fmt.Sprintf("You complete your casting of %s. %s", sp.Name, outcome.Message)
	s.notifier.Notify(ctx, casterID, notify.EventCastCompleted, map[string]any{
		"spell_id":  sp.ID,
		"target_id": outcome.TargetID,
		"message":   message,
	})
	s.notifyVitals(ctx, outcome)
}
