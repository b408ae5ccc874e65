package systems

import (
	"github.com/hptcg/hptcg-engine-go/internal/game/engine"
	"github.com/hptcg/hptcg-engine-go/internal/game/model"
	"github.com/hptcg/hptcg-engine-go/internal/game/rules"
	"go.uber.org/zap"
)

const reasonGameStarted = "Game already started"

// TurnSystem deals the opening hands and the draw at the start of each turn.
type TurnSystem struct {
	engine.GameSystem
	settings Settings
}

// NewTurnSystem creates the turn structure system.
func NewTurnSystem(c *engine.Container, settings Settings) *TurnSystem {
	return &TurnSystem{
		GameSystem: engine.NewGameSystem(c, "turn"),
		settings:   settings,
	}
}

func (s *TurnSystem) Awake() error {
	s.Subscribe(rules.ValidateKey(rules.ActionBeginGame), s.onValidateBeginGame)
	s.Subscribe(rules.PerformKey(rules.ActionBeginGame), s.onPerformBeginGame)
	s.Subscribe(rules.PerformKey(rules.ActionChangeTurn), s.onPerformChangeTurn)
	return nil
}

func (s *TurnSystem) onValidateBeginGame(n rules.Notification) {
	if s.Match().TurnNumber > 0 {
		n.Validator.Invalidate(reasonGameStarted)
	}
}

func (s *TurnSystem) onPerformBeginGame(rules.Notification) {
	match := s.Match()
	rng := s.Container().Rand()
	for _, p := range match.Players {
		match.Shuffle(p, model.ZoneDeck, rng)
		s.Container().Perform(rules.NewDrawCardsAction(p, s.settings.StartingHandSize))
	}
	s.Logger().Info("game started",
		zap.Int64("seed", s.Container().Seed()),
		zap.Int("first_player", s.settings.FirstPlayer),
	)
	s.Container().Perform(rules.NewChangeTurnAction(s.settings.FirstPlayer))
}

func (s *TurnSystem) onPerformChangeTurn(n rules.Notification) {
	if s.settings.DrawPerTurn <= 0 {
		return
	}
	action := n.Action.(*rules.ChangeTurnAction)
	player := s.Match().Players[action.NextPlayerIndex]
	s.Container().Perform(rules.NewDrawCardsAction(player, s.settings.DrawPerTurn))
}
