package systems

import (
	"github.com/hptcg/hptcg-engine-go/internal/game/engine"
	"github.com/hptcg/hptcg-engine-go/internal/game/rules"
)

const (
	reasonNotEnoughLessons = "Not enough lessons"
	reasonMissingLesson    = "Missing lesson type"
)

// LessonSystem checks that a card's lesson cost is covered by the lessons its
// owner has in play. Lessons are not spent.
type LessonSystem struct {
	engine.GameSystem
}

// NewLessonSystem creates the lesson cost check.
func NewLessonSystem(c *engine.Container) *LessonSystem {
	return &LessonSystem{GameSystem: engine.NewGameSystem(c, "lesson")}
}

func (s *LessonSystem) Awake() error {
	s.Subscribe(rules.ValidateKey(rules.ActionPlayCard), s.onValidatePlayCard)
	return nil
}

func (s *LessonSystem) onValidatePlayCard(n rules.Notification) {
	card := n.Action.(*rules.PlayCardAction).Card
	cost := card.LessonCost()
	if cost == nil || card.Owner == nil {
		return
	}

	total, types := card.Owner.LessonCount()
	if total < cost.Amount {
		n.Validator.Invalidate(reasonNotEnoughLessons)
	}
	if cost.Amount > 0 && !cost.Type.HasLessonType(types) {
		n.Validator.Invalidate(reasonMissingLesson)
	}
}
