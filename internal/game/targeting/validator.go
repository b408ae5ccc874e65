package targeting

import (
	"github.com/hptcg/hptcg-engine-go/internal/game/model"
	"github.com/hptcg/hptcg-engine-go/internal/game/rules"
)

const (
	reasonNotEnoughTargets = "Not enough valid targets"
	reasonInvalidTarget    = "Invalid target"
	reasonTooManyTargets   = "Too many targets"
)

func (s *TargetSystem) onValidatePlayCard(n rules.Notification) {
	action := n.Action.(*rules.PlayCardAction)

	s.validateManualTarget(action.Card, n.Validator)
	s.validateAbilityTarget(action.Card, n.Validator)
}

// validateManualTarget recomputes the candidate set so stale or forged
// selections are caught. A card listed twice counts once.
func (s *TargetSystem) validateManualTarget(card *model.Card, validator *rules.Validator) {
	target := card.ManualTarget()
	if target == nil {
		return
	}

	candidates := make(map[*model.Card]struct{})
	for _, c := range s.GetTargetCandidates(card, target.Allowed) {
		candidates[c] = struct{}{}
	}
	seen := make(map[*model.Card]struct{}, len(target.Selected))
	invalid := 0
	for _, selected := range target.Selected {
		if _, dup := seen[selected]; dup {
			invalid++
			continue
		}
		seen[selected] = struct{}{}
		if _, ok := candidates[selected]; !ok {
			invalid++
		}
	}

	if len(seen) < target.RequiredAmount {
		validator.Invalidate(reasonNotEnoughTargets)
	}
	if len(target.Selected) > target.MaxAmount {
		validator.Invalidate(reasonTooManyTargets)
	}
	for range invalid {
		validator.Invalidate(reasonInvalidTarget)
	}
}

func (s *TargetSystem) validateAbilityTarget(card *model.Card, validator *rules.Validator) {
	ability := card.Ability()
	if ability == nil || ability.Type != model.AbilityWhenPlayed || ability.Selector == nil {
		return
	}
	// Manual selectors read the target request checked above.
	if ability.Selector.Kind == model.SelectManual && card.ManualTarget() != nil {
		return
	}
	if !s.HasEnoughTargets(card, ability.Selector) {
		validator.Invalidate(reasonNotEnoughTargets)
	}
}
