package systems

import (
	"github.com/hptcg/hptcg-engine-go/internal/game/engine"
	"github.com/hptcg/hptcg-engine-go/internal/game/model"
	"github.com/hptcg/hptcg-engine-go/internal/game/rules"
	"go.uber.org/zap"
)

// BoardSystem puts played permanents into their zone on the board.
type BoardSystem struct {
	engine.GameSystem
	players *PlayerSystem
}

// NewBoardSystem creates the board placement system.
func NewBoardSystem(c *engine.Container) *BoardSystem {
	return &BoardSystem{GameSystem: engine.NewGameSystem(c, "board")}
}

func (s *BoardSystem) Awake() error {
	if err := engine.Require(s.Container(), &s.players); err != nil {
		return err
	}
	s.Subscribe(rules.PerformKey(rules.ActionPlayCard), s.onPerformPlayCard)
	return nil
}

func (s *BoardSystem) onPerformPlayCard(n rules.Notification) {
	card := n.Action.(*rules.PlayCardAction).Card
	if card.Type() == model.CardTypeSpell {
		return
	}
	zone := card.Type().TargetZone()
	if !zone.IsInBoard() {
		s.Logger().Warn("card type has no board zone", zap.Stringer("card", card))
		return
	}
	s.players.ChangeZone(card, zone)
}

// Board returns every card a player has in play, zone by zone.
func (s *BoardSystem) Board(p *model.Player) []*model.Card {
	var cards []*model.Card
	for _, zone := range model.AllZones {
		if zone.IsInBoard() {
			cards = append(cards, p.Cards(zone)...)
		}
	}
	return cards
}
