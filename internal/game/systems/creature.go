package systems

import (
	"github.com/hptcg/hptcg-engine-go/internal/game/engine"
	"github.com/hptcg/hptcg-engine-go/internal/game/model"
	"github.com/hptcg/hptcg-engine-go/internal/game/rules"
	"go.uber.org/zap"
)

const reasonNotACreature = "Target is not a creature in play"

// CreatureSystem handles creature attacks and creature damage.
type CreatureSystem struct {
	engine.GameSystem
}

// NewCreatureSystem creates the combat system.
func NewCreatureSystem(c *engine.Container) *CreatureSystem {
	return &CreatureSystem{GameSystem: engine.NewGameSystem(c, "creature")}
}

func (s *CreatureSystem) Awake() error {
	s.Subscribe(rules.PerformKey(rules.ActionChangeTurn), s.onPerformChangeTurn)
	s.Subscribe(rules.ValidateKey(rules.ActionDamageCreature), s.onValidateDamageCreature)
	s.Subscribe(rules.PerformKey(rules.ActionDamageCreature), s.onPerformDamageCreature)
	return nil
}

// onPerformChangeTurn lets every creature of the player starting their turn
// attack the opponent.
func (s *CreatureSystem) onPerformChangeTurn(n rules.Notification) {
	action := n.Action.(*rules.ChangeTurnAction)
	match := s.Match()
	attacker := match.Players[action.NextPlayerIndex]
	defender := match.OpponentOf(attacker)

	for _, card := range attacker.Cards(model.ZoneCreatures) {
		creature := card.Creature()
		if creature == nil || creature.Attack <= 0 {
			continue
		}
		s.Container().Perform(rules.NewDamagePlayerAction(card, defender, creature.Attack))
	}
}

func (s *CreatureSystem) onValidateDamageCreature(n rules.Notification) {
	action := n.Action.(*rules.DamageCreatureAction)
	if action.Target == nil || action.Target.Creature() == nil || action.Target.Zone != model.ZoneCreatures {
		n.Validator.Invalidate(reasonNotACreature)
	}
	if action.Amount < 0 {
		n.Validator.Invalidate(reasonNegativeAmount)
	}
}

func (s *CreatureSystem) onPerformDamageCreature(n rules.Notification) {
	action := n.Action.(*rules.DamageCreatureAction)
	creature := action.Target.Creature()
	creature.Health -= action.Amount

	s.Logger().Debug("creature damaged",
		zap.Stringer("creature", action.Target),
		zap.Int("amount", action.Amount),
		zap.Int("health", creature.Health),
	)

	if creature.IsDead() {
		s.Container().Perform(rules.NewDiscardAction(action.Source, action.Target))
	}
}
