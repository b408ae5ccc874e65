package systems

import (
	"github.com/hptcg/hptcg-engine-go/internal/game/engine"
	"github.com/hptcg/hptcg-engine-go/internal/game/model"
	"github.com/hptcg/hptcg-engine-go/internal/game/rules"
)

const reasonNoOwner = "Card has no owner"

// DiscardSystem moves cards to the discard pile.
type DiscardSystem struct {
	engine.GameSystem
	players *PlayerSystem
}

// NewDiscardSystem creates the discard system.
func NewDiscardSystem(c *engine.Container) *DiscardSystem {
	return &DiscardSystem{GameSystem: engine.NewGameSystem(c, "discard")}
}

func (s *DiscardSystem) Awake() error {
	if err := engine.Require(s.Container(), &s.players); err != nil {
		return err
	}
	s.Subscribe(rules.ValidateKey(rules.ActionDiscard), s.onValidateDiscard)
	s.Subscribe(rules.PerformKey(rules.ActionDiscard), s.onPerformDiscard)
	return nil
}

func (s *DiscardSystem) onValidateDiscard(n rules.Notification) {
	action := n.Action.(*rules.DiscardAction)
	for _, card := range action.Cards {
		if card.Owner == nil {
			n.Validator.Invalidate(reasonNoOwner)
			return
		}
	}
}

// onPerformDiscard leaves every discarded card with its attributes back at
// their defaults. Cards already in the discard pile are only reset.
func (s *DiscardSystem) onPerformDiscard(n rules.Notification) {
	action := n.Action.(*rules.DiscardAction)
	for _, card := range action.Cards {
		if card.Zone != model.ZoneDiscard {
			s.players.ChangeZone(card, model.ZoneDiscard)
		}
		card.ResetAttributes()
	}
}
