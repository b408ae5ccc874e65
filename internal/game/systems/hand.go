package systems

import (
	"github.com/hptcg/hptcg-engine-go/internal/game/engine"
	"github.com/hptcg/hptcg-engine-go/internal/game/model"
	"github.com/hptcg/hptcg-engine-go/internal/game/rules"
	"go.uber.org/zap"
)

const reasonNegativeAmount = "Amount must not be negative"

// HandSystem draws cards from the top of the deck.
type HandSystem struct {
	engine.GameSystem
	players *PlayerSystem
}

// NewHandSystem creates the draw system.
func NewHandSystem(c *engine.Container) *HandSystem {
	return &HandSystem{GameSystem: engine.NewGameSystem(c, "hand")}
}

func (s *HandSystem) Awake() error {
	if err := engine.Require(s.Container(), &s.players); err != nil {
		return err
	}
	s.Subscribe(rules.ValidateKey(rules.ActionDrawCards), s.onValidateDraw)
	s.Subscribe(rules.PerformKey(rules.ActionDrawCards), s.onPerformDraw)
	return nil
}

func (s *HandSystem) onValidateDraw(n rules.Notification) {
	action := n.Action.(*rules.DrawCardsAction)
	if action.Player == nil {
		n.Validator.Invalidate(reasonNoPlayer)
	}
	if action.Amount < 0 {
		n.Validator.Invalidate(reasonNegativeAmount)
	}
}

// onPerformDraw draws as many cards as the deck holds, up to Amount.
func (s *HandSystem) onPerformDraw(n rules.Notification) {
	action := n.Action.(*rules.DrawCardsAction)
	deck := action.Player.Cards(model.ZoneDeck)
	drawn := deck[:min(action.Amount, len(deck))]

	s.players.ChangeZones(drawn, model.ZoneHand)
	action.Drawn = drawn

	s.Logger().Debug("cards drawn",
		zap.Stringer("player", action.Player),
		zap.Int("requested", action.Amount),
		zap.Int("drawn", len(drawn)),
	)
}
