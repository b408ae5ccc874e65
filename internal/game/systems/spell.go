package systems

import (
	"github.com/hptcg/hptcg-engine-go/internal/game/engine"
	"github.com/hptcg/hptcg-engine-go/internal/game/model"
	"github.com/hptcg/hptcg-engine-go/internal/game/rules"
)

// SpellSystem sends played spells to the discard pile once their effects are
// queued.
type SpellSystem struct {
	engine.GameSystem
}

// NewSpellSystem creates the spell system.
func NewSpellSystem(c *engine.Container) *SpellSystem {
	return &SpellSystem{GameSystem: engine.NewGameSystem(c, "spell")}
}

func (s *SpellSystem) Awake() error {
	s.Subscribe(rules.PerformKey(rules.ActionPlayCard), s.onPerformPlayCard)
	return nil
}

func (s *SpellSystem) onPerformPlayCard(n rules.Notification) {
	card := n.Action.(*rules.PlayCardAction).Card
	if card.Type() != model.CardTypeSpell {
		return
	}
	s.Container().Perform(rules.NewDiscardAction(card, card))
}
