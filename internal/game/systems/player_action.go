package systems

import (
	"github.com/hptcg/hptcg-engine-go/internal/game/engine"
	"github.com/hptcg/hptcg-engine-go/internal/game/model"
	"github.com/hptcg/hptcg-engine-go/internal/game/rules"
	"go.uber.org/zap"
)

const (
	reasonNotYourTurn      = "Not your turn"
	reasonNotInHand        = "Card is not in hand"
	reasonNotEnoughActions = "Not enough actions"
)

// PlayerActionSystem charges actions for playing cards and ends the turn once
// the current player has none left.
type PlayerActionSystem struct {
	engine.GameSystem
	match *MatchSystem
}

// NewPlayerActionSystem creates the action economy system.
func NewPlayerActionSystem(c *engine.Container) *PlayerActionSystem {
	return &PlayerActionSystem{GameSystem: engine.NewGameSystem(c, "player_action")}
}

func (s *PlayerActionSystem) Awake() error {
	if err := engine.Require(s.Container(), &s.match); err != nil {
		return err
	}
	s.Subscribe(rules.ValidateKey(rules.ActionPlayCard), s.onValidatePlayCard)
	s.Subscribe(rules.PerformKey(rules.ActionPlayCard), s.onPerformPlayCard)
	return nil
}

func (s *PlayerActionSystem) onValidatePlayCard(n rules.Notification) {
	card := n.Action.(*rules.PlayCardAction).Card
	match := s.Match()

	if match.IsGameOver() {
		n.Validator.Invalidate(reasonGameOver)
	}
	if card.Owner == nil {
		n.Validator.Invalidate(reasonNoOwner)
		return
	}
	if card.Owner != match.CurrentPlayer() {
		n.Validator.Invalidate(reasonNotYourTurn)
	}
	if card.Zone != model.ZoneHand {
		n.Validator.Invalidate(reasonNotInHand)
	}
	if card.Owner.ActionsAvailable < card.ActionCost() {
		n.Validator.Invalidate(reasonNotEnoughActions)
	}
}

func (s *PlayerActionSystem) onPerformPlayCard(n rules.Notification) {
	card := n.Action.(*rules.PlayCardAction).Card
	player := card.Owner
	player.ActionsAvailable -= card.ActionCost()

	s.Logger().Debug("actions spent",
		zap.Stringer("player", player),
		zap.Stringer("card", card),
		zap.Int("remaining", player.ActionsAvailable),
	)

	if player == s.Match().CurrentPlayer() && player.ActionsAvailable <= 0 {
		s.match.ChangeTurn()
	}
}
