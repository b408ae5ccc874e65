package systems

import (
	"github.com/hptcg/hptcg-engine-go/internal/game/engine"
	"github.com/hptcg/hptcg-engine-go/internal/game/model"
	"github.com/hptcg/hptcg-engine-go/internal/game/rules"
	"go.uber.org/zap"
)

// VictorySystem ends the match when a player runs out of cards.
type VictorySystem struct {
	engine.GameSystem
}

// NewVictorySystem creates the win condition check.
func NewVictorySystem(c *engine.Container) *VictorySystem {
	return &VictorySystem{GameSystem: engine.NewGameSystem(c, "victory")}
}

func (s *VictorySystem) Awake() error {
	s.Subscribe(rules.PerformKey(rules.ActionDamagePlayer), func(n rules.Notification) {
		s.checkDeck(n.Action.(*rules.DamagePlayerAction).Target)
	})
	s.Subscribe(rules.PerformKey(rules.ActionDrawCards), func(n rules.Notification) {
		s.checkDeck(n.Action.(*rules.DrawCardsAction).Player)
	})
	return nil
}

// checkDeck makes the opponent of p the winner once p's deck is empty. The
// first decided winner stands.
func (s *VictorySystem) checkDeck(p *model.Player) {
	match := s.Match()
	if match.IsGameOver() || p.Count(model.ZoneDeck) > 0 {
		return
	}
	winner := match.OpponentOf(p)
	match.Winner = winner.Index
	s.Logger().Info("game over",
		zap.Stringer("winner", winner),
		zap.Stringer("loser", p),
		zap.Int("turn", match.TurnNumber),
	)
}
