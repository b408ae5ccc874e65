package systems

import (
	"github.com/hptcg/hptcg-engine-go/internal/game/engine"
	"github.com/hptcg/hptcg-engine-go/internal/game/model"
	"github.com/hptcg/hptcg-engine-go/internal/game/rules"
)

// CardSystem answers read-only questions about cards.
type CardSystem struct {
	engine.GameSystem
	actions *engine.ActionSystem
}

// NewCardSystem creates the card query system.
func NewCardSystem(c *engine.Container) *CardSystem {
	return &CardSystem{GameSystem: engine.NewGameSystem(c, "card")}
}

func (s *CardSystem) Awake() error {
	return engine.Require(s.Container(), &s.actions)
}

// IsPlayable reports whether playing card right now would pass validation.
func (s *CardSystem) IsPlayable(card *model.Card) bool {
	return s.actions.Validate(rules.NewPlayCardAction(card)).IsValid()
}

// PlayReasons returns why card cannot be played right now, or nil.
func (s *CardSystem) PlayReasons(card *model.Card) []string {
	validator := s.actions.Validate(rules.NewPlayCardAction(card))
	if validator.IsValid() {
		return nil
	}
	return validator.Reasons()
}

// Playable returns the cards in p's hand that can be played right now.
func (s *CardSystem) Playable(p *model.Player) []*model.Card {
	var cards []*model.Card
	for _, card := range p.Cards(model.ZoneHand) {
		if s.IsPlayable(card) {
			cards = append(cards, card)
		}
	}
	return cards
}
