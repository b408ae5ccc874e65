package targeting

import (
	"errors"
	"fmt"

	"github.com/hptcg/hptcg-engine-go/internal/game/model"
	"github.com/hptcg/hptcg-engine-go/internal/game/rules"
)

// ErrNoTargetRequest is returned when a selection is started for a card that
// has no manual target request.
var ErrNoTargetRequest = errors.New("card has no target request")

// Selection is a target pick in progress. It stays local until Commit, so
// abandoning it needs no rollback.
type Selection struct {
	card       *model.Card
	target     *model.ManualTarget
	candidates []*model.Card
	picked     []*model.Card
}

// BeginSelection starts picking targets for card.
func (s *TargetSystem) BeginSelection(card *model.Card) (*Selection, error) {
	target := card.ManualTarget()
	if target == nil {
		return nil, fmt.Errorf("select targets for %s: %w", card, ErrNoTargetRequest)
	}
	return &Selection{
		card:       card,
		target:     target,
		candidates: s.GetTargetCandidates(card, target.Allowed),
	}, nil
}

// Card returns the card being targeted for.
func (sel *Selection) Card() *model.Card { return sel.card }

// Candidates returns the cards that may be picked.
func (sel *Selection) Candidates() []*model.Card {
	return append([]*model.Card(nil), sel.candidates...)
}

// IsCandidate reports whether card may be picked.
func (sel *Selection) IsCandidate(card *model.Card) bool {
	return indexOf(sel.candidates, card) >= 0
}

// Toggle picks card, or un-picks it when already picked. Non-candidates and
// picks beyond the maximum are ignored. It reports whether card is picked
// afterwards.
func (sel *Selection) Toggle(card *model.Card) bool {
	if !sel.IsCandidate(card) {
		return false
	}
	if idx := indexOf(sel.picked, card); idx >= 0 {
		sel.picked = append(sel.picked[:idx], sel.picked[idx+1:]...)
		return false
	}
	if len(sel.picked) >= sel.target.MaxAmount {
		return false
	}
	sel.picked = append(sel.picked, card)
	return true
}

// Selected returns the current picks in pick order.
func (sel *Selection) Selected() []*model.Card {
	return append([]*model.Card(nil), sel.picked...)
}

// Ready reports whether enough targets are picked to play the card.
func (sel *Selection) Ready() bool {
	return len(sel.picked) >= sel.target.RequiredAmount
}

// Commit stores the picks on the card and returns the play to submit.
func (sel *Selection) Commit() *rules.PlayCardAction {
	sel.target.Selected = sel.Selected()
	sel.picked = nil
	return rules.NewPlayCardAction(sel.card)
}

// Cancel discards the picks.
func (sel *Selection) Cancel() {
	sel.picked = nil
}

func indexOf(cards []*model.Card, card *model.Card) int {
	for i, c := range cards {
		if c == card {
			return i
		}
	}
	return -1
}
