package systems

import (
	"github.com/hptcg/hptcg-engine-go/internal/game/engine"
	"github.com/hptcg/hptcg-engine-go/internal/game/model"
	"github.com/hptcg/hptcg-engine-go/internal/game/rules"
	"github.com/hptcg/hptcg-engine-go/internal/game/targeting"
	"go.uber.org/zap"
)

// AISystem plays for computer-controlled players, one move per tick.
type AISystem struct {
	engine.GameSystem
	actions *engine.ActionSystem
	cards   *CardSystem
	targets *targeting.TargetSystem
	match   *MatchSystem
}

// NewAISystem creates the computer player driver.
func NewAISystem(c *engine.Container) *AISystem {
	return &AISystem{GameSystem: engine.NewGameSystem(c, "ai")}
}

func (s *AISystem) Awake() error {
	c := s.Container()
	for _, err := range []error{
		engine.Require(c, &s.actions),
		engine.Require(c, &s.cards),
		engine.Require(c, &s.targets),
		engine.Require(c, &s.match),
	} {
		if err != nil {
			return err
		}
	}
	return nil
}

// Update makes one move for the current player when it is computer
// controlled and nothing is in flight: play a card, or end the turn.
func (s *AISystem) Update() {
	match := s.Match()
	if s.actions.IsActive() || match.IsGameOver() || match.TurnNumber == 0 {
		return
	}
	player := match.CurrentPlayer()
	if player.ControlMode != model.ControlComputer {
		return
	}

	if card := s.pickCard(player); card != nil {
		s.targets.AutoTarget(card, player.ControlMode)
		s.Logger().Debug("ai plays card", zap.Stringer("player", player), zap.Stringer("card", card))
		s.Container().Perform(rules.NewPlayCardAction(card))
		return
	}
	s.Logger().Debug("ai ends turn", zap.Stringer("player", player))
	s.match.ChangeTurn()
}

// pickCard prefers anything over a lesson, so lessons are only laid down
// when nothing else can be played yet.
func (s *AISystem) pickCard(player *model.Player) *model.Card {
	var lesson *model.Card
	for _, card := range player.Cards(model.ZoneHand) {
		if !s.playable(card, player.ControlMode) {
			continue
		}
		if card.Type() != model.CardTypeLesson {
			return card
		}
		if lesson == nil {
			lesson = card
		}
	}
	return lesson
}

// playable checks card against a trial target pick and restores the card's
// selection afterwards.
func (s *AISystem) playable(card *model.Card, mode model.ControlMode) bool {
	target := card.ManualTarget()
	if target == nil {
		return s.cards.IsPlayable(card)
	}
	saved := target.Selected
	defer func() { target.Selected = saved }()
	s.targets.AutoTarget(card, mode)
	return s.cards.IsPlayable(card)
}
