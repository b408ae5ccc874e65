package systems

import (
	"github.com/hptcg/hptcg-engine-go/internal/game/engine"
	"github.com/hptcg/hptcg-engine-go/internal/game/model"
	"github.com/hptcg/hptcg-engine-go/internal/game/rules"
	"go.uber.org/zap"
)

const reasonNoPlayer = "No target player"

// DamageSystem applies damage to players. Each point of damage moves the top
// card of the deck to the discard pile.
type DamageSystem struct {
	engine.GameSystem
	players *PlayerSystem
}

// NewDamageSystem creates the player damage system.
func NewDamageSystem(c *engine.Container) *DamageSystem {
	return &DamageSystem{GameSystem: engine.NewGameSystem(c, "damage")}
}

func (s *DamageSystem) Awake() error {
	if err := engine.Require(s.Container(), &s.players); err != nil {
		return err
	}
	s.Subscribe(rules.ValidateKey(rules.ActionDamagePlayer), s.onValidateDamagePlayer)
	s.Subscribe(rules.PerformKey(rules.ActionDamagePlayer), s.onPerformDamagePlayer)
	return nil
}

func (s *DamageSystem) onValidateDamagePlayer(n rules.Notification) {
	action := n.Action.(*rules.DamagePlayerAction)
	if action.Target == nil {
		n.Validator.Invalidate(reasonNoPlayer)
	}
	if action.Amount < 0 {
		n.Validator.Invalidate(reasonNegativeAmount)
	}
}

func (s *DamageSystem) onPerformDamagePlayer(n rules.Notification) {
	action := n.Action.(*rules.DamagePlayerAction)
	deck := action.Target.Cards(model.ZoneDeck)
	milled := deck[:min(action.Amount, len(deck))]
	s.players.ChangeZones(milled, model.ZoneDiscard)

	s.Logger().Debug("player damaged",
		zap.Stringer("player", action.Target),
		zap.Stringer("source", action.Source),
		zap.Int("amount", action.Amount),
		zap.Int("deck", action.Target.Count(model.ZoneDeck)),
	)
}
