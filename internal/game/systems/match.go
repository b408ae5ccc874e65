package systems

import (
	"github.com/hptcg/hptcg-engine-go/internal/game/engine"
	"github.com/hptcg/hptcg-engine-go/internal/game/rules"
	"go.uber.org/zap"
)

const (
	reasonGameOver           = "Game is over"
	reasonInvalidPlayerIndex = "Invalid player index"
)

// MatchSystem owns turn rollover.
type MatchSystem struct {
	engine.GameSystem
	actionsPerTurn int
}

// NewMatchSystem creates the turn rollover system. Each new turn grants
// actionsPerTurn actions.
func NewMatchSystem(c *engine.Container, actionsPerTurn int) *MatchSystem {
	return &MatchSystem{
		GameSystem:     engine.NewGameSystem(c, "match"),
		actionsPerTurn: actionsPerTurn,
	}
}

func (s *MatchSystem) Awake() error {
	s.Subscribe(rules.ValidateKey(rules.ActionChangeTurn), s.onValidateChangeTurn)
	s.Subscribe(rules.PerformKey(rules.ActionChangeTurn), s.onPerformChangeTurn)
	return nil
}

// ChangeTurn ends the current player's turn.
func (s *MatchSystem) ChangeTurn() *rules.ChangeTurnAction {
	action := rules.NewChangeTurnAction(1 - s.Match().CurrentPlayerIndex)
	s.Container().Perform(action)
	return action
}

func (s *MatchSystem) onValidateChangeTurn(n rules.Notification) {
	action := n.Action.(*rules.ChangeTurnAction)
	if action.NextPlayerIndex != 0 && action.NextPlayerIndex != 1 {
		n.Validator.Invalidate(reasonInvalidPlayerIndex)
	}
	if s.Match().IsGameOver() {
		n.Validator.Invalidate(reasonGameOver)
	}
}

func (s *MatchSystem) onPerformChangeTurn(n rules.Notification) {
	action := n.Action.(*rules.ChangeTurnAction)
	match := s.Match()

	match.CurrentPlayerIndex = action.NextPlayerIndex
	match.CurrentPlayer().ActionsAvailable += s.actionsPerTurn
	match.TurnNumber++

	s.Logger().Info("turn changed",
		zap.Int("turn", match.TurnNumber),
		zap.Stringer("player", match.CurrentPlayer()),
		zap.Int("actions", match.CurrentPlayer().ActionsAvailable),
	)
}
