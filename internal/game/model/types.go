package model

import "fmt"

// CardType classifies a card template. Values are bit flags so a Mark can
// accept several types.
type CardType uint16

const (
	CardTypeNone CardType = 0
)

const (
	CardTypeLesson CardType = 1 << iota
	CardTypeCreature
	CardTypeSpell
	CardTypeItem
	CardTypeLocation
	CardTypeMatch
	CardTypeAdventure
	CardTypeCharacter
)

var cardTypeNames = map[CardType]string{
	CardTypeNone:      "NONE",
	CardTypeLesson:    "LESSON",
	CardTypeCreature:  "CREATURE",
	CardTypeSpell:     "SPELL",
	CardTypeItem:      "ITEM",
	CardTypeLocation:  "LOCATION",
	CardTypeMatch:     "MATCH",
	CardTypeAdventure: "ADVENTURE",
	CardTypeCharacter: "CHARACTER",
}

func (t CardType) String() string {
	if name, ok := cardTypeNames[t]; ok {
		return name
	}
	return fmt.Sprintf("CARD_TYPE_%d", uint16(t))
}

// HasCardType reports whether every bit of t is contained in target.
func (t CardType) HasCardType(target CardType) bool {
	return t&target == t
}

var targetZones = map[CardType]Zone{
	CardTypeLesson:    ZoneLessons,
	CardTypeCreature:  ZoneCreatures,
	CardTypeSpell:     ZoneDiscard,
	CardTypeItem:      ZoneItems,
	CardTypeLocation:  ZoneLocation,
	CardTypeMatch:     ZoneMatch,
	CardTypeAdventure: ZoneAdventure,
	CardTypeCharacter: ZoneCharacters,
}

// TargetZone returns the zone a card of this type lands in when played.
func (t CardType) TargetZone() Zone {
	return targetZones[t]
}

// LessonType is the flavour of magic a lesson provides or a card costs.
type LessonType uint8

const (
	LessonNone LessonType = 0
)

const (
	LessonCreatures LessonType = 1 << iota
	LessonCharms
	LessonTransfiguration
	LessonPotions
	LessonQuidditch

	LessonAny = LessonCreatures | LessonCharms | LessonTransfiguration | LessonPotions | LessonQuidditch
)

var lessonNames = map[LessonType]string{
	LessonNone:            "NONE",
	LessonCreatures:       "CREATURES",
	LessonCharms:          "CHARMS",
	LessonTransfiguration: "TRANSFIGURATION",
	LessonPotions:         "POTIONS",
	LessonQuidditch:       "QUIDDITCH",
	LessonAny:             "ANY",
}

func (l LessonType) String() string {
	if name, ok := lessonNames[l]; ok {
		return name
	}
	return fmt.Sprintf("LESSON_%d", uint8(l))
}

// HasLessonType reports whether every bit of l is contained in target.
func (l LessonType) HasLessonType(target LessonType) bool {
	return l&target == l
}

// Alliance is the relationship between a target set and the acting player.
type Alliance uint8

const (
	AllianceNone Alliance = 0
	AllianceSelf Alliance = 1 << (iota - 1)
	AllianceOpponent

	AllianceBoth = AllianceSelf | AllianceOpponent
)

func (a Alliance) String() string {
	switch a {
	case AllianceNone:
		return "NONE"
	case AllianceSelf:
		return "SELF"
	case AllianceOpponent:
		return "OPPONENT"
	case AllianceBoth:
		return "BOTH"
	default:
		return fmt.Sprintf("ALLIANCE_%d", uint8(a))
	}
}

// HasAlliance reports whether source is a subset of target.
func HasAlliance(source, target Alliance) bool {
	return source&target == source
}

// HasAlliance is the method form of the package-level subset test.
func (a Alliance) HasAlliance(target Alliance) bool {
	return HasAlliance(a, target)
}

// ControlMode says who drives a player's decisions.
type ControlMode int

const (
	ControlLocal ControlMode = iota
	ControlComputer
	ControlRemote
)

func (m ControlMode) String() string {
	switch m {
	case ControlLocal:
		return "LOCAL"
	case ControlComputer:
		return "COMPUTER"
	case ControlRemote:
		return "REMOTE"
	default:
		return "UNKNOWN"
	}
}
