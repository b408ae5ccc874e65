package model

import "fmt"

// Mark is a declarative description of which cards may be targeted.
// A zero CardType, and a LessonType of None or Any, disable the matching
// filter.
type Mark struct {
	Alliance   Alliance
	Zones      Zone
	CardType   CardType
	LessonType LessonType
}

// FiltersCardType reports whether the mark restricts candidates by card type.
func (m Mark) FiltersCardType() bool {
	return m.CardType != CardTypeNone
}

// FiltersLessonType reports whether the mark restricts candidates by lesson.
func (m Mark) FiltersLessonType() bool {
	return m.LessonType != LessonNone && m.LessonType != LessonAny
}

func (m Mark) String() string {
	return fmt.Sprintf("mark(%s %s %s %s)", m.Alliance, m.Zones, m.CardType, m.LessonType)
}
