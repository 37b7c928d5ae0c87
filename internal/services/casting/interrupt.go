package casting

import (
	"context"
	"fmt"
	"log"

	"github.com/arkanwolfshade/MythosMUD-sub010/internal/domain/player"
	apperr "github.com/arkanwolfshade/MythosMUD-sub010/internal/errors"
	"github.com/arkanwolfshade/MythosMUD-sub010/internal/notify"
)

// InterruptCasting implements Service. The casting entry is removed whether
// or not the caster rides out the disruption; only the resource penalty is
// conditional on the LUCK check.
func (s *service) InterruptCasting(ctx context.Context, casterID string) (*InterruptResult, error) {
	unlock := s.locks.lock(casterID)
	defer unlock()

	state, ok := s.states.interrupt(casterID)
	if !ok {
		return &InterruptResult{Message: "You are not casting anything."}, nil
	}

	p, err := s.players.Get(ctx, casterID)
	if err != nil {
		return nil, apperr.Wrap(err, "failed to load caster")
	}

	roll, err := s.diceRoller.Percent()
	if err != nil {
		return nil, apperr.Wrap(err, "failed to roll luck check")
	}

	result := &InterruptResult{Interrupted: true}
	if roll <= p.GetStat(player.StatLuck) {
		result.Message = fmt.Sprintf("Your concentration on %s shatters, but you release the energies harmlessly.", state.SpellName)
	} else {
		if sp, found := s.catalog.GetByID(state.SpellID); found {
			if err := s.resources.ApplyCosts(ctx, casterID, sp); err != nil {
				return nil, apperr.Wrap(err, "failed to apply interruption costs")
			}
		} else {
			log.Printf("casting: spell %s missing from catalog at interruption for %s", state.SpellID, casterID)
		}
		result.MPLost = true
		result.Message = fmt.Sprintf("Your casting of %s is interrupted and the gathered power drains away!", state.SpellName)
	}

	s.notifier.Notify(ctx, casterID, notify.EventCastInterrupted, map[string]any{
		"spell_id": state.SpellID,
		"mp_lost":  result.MPLost,
	})
	return result, nil
}
