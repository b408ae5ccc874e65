package targeting

import (
	"github.com/hptcg/hptcg-engine-go/internal/game/engine"
	"github.com/hptcg/hptcg-engine-go/internal/game/model"
	"github.com/hptcg/hptcg-engine-go/internal/game/rules"
	"go.uber.org/zap"
)

// searchableZones are the zones candidate resolution walks, in result order.
var searchableZones = []model.Zone{
	model.ZoneDeck,
	model.ZoneDiscard,
	model.ZoneHand,
	model.ZoneCharacters,
	model.ZoneLessons,
	model.ZoneCreatures,
	model.ZoneLocation,
}

// TargetSystem resolves target candidates and validates selections.
type TargetSystem struct {
	engine.GameSystem
}

// NewTargetSystem creates the target system for c.
func NewTargetSystem(c *engine.Container) *TargetSystem {
	return &TargetSystem{GameSystem: engine.NewGameSystem(c, "targeting")}
}

// Awake subscribes the PlayCard validation hooks.
func (s *TargetSystem) Awake() error {
	s.Subscribe(rules.ValidateKey(rules.ActionPlayCard), s.onValidatePlayCard)
	return nil
}

// GetTargetCandidates returns every card mark allows source to target,
// ordered by player (self first), then zone, then the zone's own order.
func (s *TargetSystem) GetTargetCandidates(source *model.Card, mark model.Mark) []*model.Card {
	var marks []*model.Card
	for _, player := range s.GetPlayers(source, mark.Alliance) {
		marks = append(marks, cardsFor(mark, player)...)
	}
	return marks
}

// GetPlayers resolves alliance relative to the owner of source.
func (s *TargetSystem) GetPlayers(source *model.Card, alliance model.Alliance) []*model.Player {
	if source == nil || source.Owner == nil {
		return nil
	}
	match := s.Match()
	owner := match.Players[source.Owner.Index]
	relations := []struct {
		alliance model.Alliance
		player   *model.Player
	}{
		{model.AllianceSelf, owner},
		{model.AllianceOpponent, match.OpponentOf(owner)},
	}

	var players []*model.Player
	for _, rel := range relations {
		if rel.alliance.HasAlliance(alliance) {
			players = append(players, rel.player)
		}
	}
	return players
}

func cardsFor(mark model.Mark, player *model.Player) []*model.Card {
	var cards []*model.Card
	for _, zone := range searchableZones {
		if !zone.HasZone(mark.Zones) {
			continue
		}
		for _, card := range player.Cards(zone) {
			if mark.FiltersCardType() && !card.Type().HasCardType(mark.CardType) {
				continue
			}
			if mark.FiltersLessonType() && !hasLessonType(card, mark.LessonType) {
				continue
			}
			cards = append(cards, card)
		}
	}
	return cards
}

// hasLessonType checks the lesson a card provides, then the lesson it costs.
// Cards with neither never match.
func hasLessonType(card *model.Card, lesson model.LessonType) bool {
	if provider := card.LessonProvider(); provider != nil {
		return provider.Type.HasLessonType(lesson)
	}
	if cost := card.LessonCost(); cost != nil {
		return cost.Type.HasLessonType(lesson)
	}
	return false
}

// AutoTarget fills in the card's manual target request with a random
// selection of candidates, or clears it when there are too few.
func (s *TargetSystem) AutoTarget(card *model.Card, mode model.ControlMode) {
	target := card.ManualTarget()
	if target == nil {
		return
	}

	candidates := s.GetTargetCandidates(card, target.Allowed)
	if len(candidates) >= target.RequiredAmount {
		amount := min(len(candidates), target.MaxAmount)
		// TODO: smarter picks for ControlComputer once the AI scores targets.
		target.Selected = s.takeRandom(candidates, amount)
	} else {
		target.Selected = nil
	}

	s.Logger().Debug("auto targeted",
		zap.Stringer("card", card),
		zap.Stringer("mode", mode),
		zap.Int("candidates", len(candidates)),
		zap.Int("selected", len(target.Selected)),
	)
}

// HasEnoughTargets reports whether selector can currently resolve for card.
func (s *TargetSystem) HasEnoughTargets(card *model.Card, selector *model.TargetSelector) bool {
	if selector == nil {
		return true
	}
	switch selector.Kind {
	case model.SelectManual:
		target := card.ManualTarget()
		return target != nil && len(target.Selected) >= target.RequiredAmount
	default:
		return len(s.GetTargetCandidates(card, selector.Mark)) >= selector.Amount
	}
}

// SelectTargets resolves selector into concrete cards.
func (s *TargetSystem) SelectTargets(card *model.Card, selector *model.TargetSelector) []*model.Card {
	if selector == nil {
		return nil
	}
	switch selector.Kind {
	case model.SelectManual:
		target := card.ManualTarget()
		if target == nil {
			return nil
		}
		return append([]*model.Card(nil), target.Selected...)
	case model.SelectRandom:
		candidates := s.GetTargetCandidates(card, selector.Mark)
		return s.takeRandom(candidates, min(selector.Amount, len(candidates)))
	default:
		return s.GetTargetCandidates(card, selector.Mark)
	}
}

// IsCandidateZone reports whether card sits in a zone the active card's
// target request may pick from.
func (s *TargetSystem) IsCandidateZone(active, card *model.Card) bool {
	target := active.ManualTarget()
	return target != nil && card.Zone != model.ZoneNone && card.Zone.HasZone(target.Allowed.Zones)
}

func (s *TargetSystem) takeRandom(cards []*model.Card, n int) []*model.Card {
	if n <= 0 {
		return nil
	}
	perm := s.Container().Rand().Perm(len(cards))
	picked := make([]*model.Card, 0, n)
	for _, idx := range perm[:n] {
		picked = append(picked, cards[idx])
	}
	return picked
}
