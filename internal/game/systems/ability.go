package systems

import (
	"github.com/hptcg/hptcg-engine-go/internal/game/engine"
	"github.com/hptcg/hptcg-engine-go/internal/game/model"
	"github.com/hptcg/hptcg-engine-go/internal/game/rules"
	"github.com/hptcg/hptcg-engine-go/internal/game/targeting"
	"go.uber.org/zap"
)

// AbilitySystem resolves on-play abilities into actions.
type AbilitySystem struct {
	engine.GameSystem
	targets *targeting.TargetSystem
}

// NewAbilitySystem creates the ability resolver.
func NewAbilitySystem(c *engine.Container) *AbilitySystem {
	return &AbilitySystem{GameSystem: engine.NewGameSystem(c, "ability")}
}

func (s *AbilitySystem) Awake() error {
	if err := engine.Require(s.Container(), &s.targets); err != nil {
		return err
	}
	s.Subscribe(rules.PerformKey(rules.ActionPlayCard), s.onPerformPlayCard)
	return nil
}

func (s *AbilitySystem) onPerformPlayCard(n rules.Notification) {
	card := n.Action.(*rules.PlayCardAction).Card
	ability := card.Ability()
	if ability == nil || ability.Type != model.AbilityWhenPlayed {
		return
	}

	targets := s.targets.SelectTargets(card, ability.Selector)
	for _, effect := range ability.Effects {
		for _, action := range s.effectActions(card, effect, targets) {
			s.Container().Perform(action)
		}
	}
	s.Logger().Debug("ability resolved",
		zap.Stringer("card", card),
		zap.Int("effects", len(ability.Effects)),
		zap.Int("targets", len(targets)),
	)
}

// effectActions builds the actions for one effect. Player effects aim at the
// owner or the opponent; card effects aim at the selected targets.
func (s *AbilitySystem) effectActions(source *model.Card, effect model.Effect, targets []*model.Card) []rules.Action {
	owner := source.Owner
	switch effect.Kind {
	case model.EffectDamagePlayer:
		return []rules.Action{rules.NewDamagePlayerAction(source, s.Match().OpponentOf(owner), effect.Amount)}
	case model.EffectDraw:
		return []rules.Action{rules.NewDrawCardsAction(owner, effect.Amount)}
	case model.EffectDiscard:
		if len(targets) == 0 {
			return nil
		}
		return []rules.Action{rules.NewDiscardAction(source, targets...)}
	case model.EffectDamageCreature:
		var actions []rules.Action
		for _, target := range targets {
			if target.Creature() != nil {
				actions = append(actions, rules.NewDamageCreatureAction(source, target, effect.Amount))
			}
		}
		return actions
	default:
		s.Logger().Warn("unknown effect", zap.Stringer("effect", effect.Kind), zap.Stringer("card", source))
		return nil
	}
}
