package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testCard(name string, cardType CardType, attrs ...Attribute) *Card {
	return NewCard(&CardData{
		Name: name,
		Type: cardType,
		Attributes: func() []Attribute {
			return attrs
		},
	})
}

func TestAllianceSubsetLaw(t *testing.T) {
	assert.True(t, HasAlliance(AllianceSelf, AllianceSelf|AllianceOpponent))
	assert.False(t, HasAlliance(AllianceSelf, AllianceOpponent))
	assert.False(t, HasAlliance(AllianceSelf|AllianceOpponent, AllianceSelf))
	assert.True(t, AllianceBoth.HasAlliance(AllianceBoth))
	assert.True(t, AllianceOpponent.HasAlliance(AllianceBoth))
}

func TestZonePredicates(t *testing.T) {
	assert.True(t, ZoneCreatures.IsInBoard())
	assert.True(t, ZoneLessons.IsInPlay())
	assert.False(t, ZoneHand.IsInBoard())
	assert.False(t, ZoneDiscard.IsInPlay())
	assert.False(t, (ZoneCreatures | ZoneLessons).IsInPlay())

	assert.True(t, ZoneHand.HasZone(ZoneHand|ZoneDeck))
	assert.False(t, (ZoneHand | ZoneDeck).HasZone(ZoneHand))
	assert.Equal(t, "HAND|CREATURES", (ZoneHand | ZoneCreatures).String())
}

func TestCardTypeTargetZone(t *testing.T) {
	assert.Equal(t, ZoneLessons, CardTypeLesson.TargetZone())
	assert.Equal(t, ZoneCreatures, CardTypeCreature.TargetZone())
	assert.Equal(t, ZoneDiscard, CardTypeSpell.TargetZone())
	assert.Equal(t, ZoneCharacters, CardTypeCharacter.TargetZone())
}

func TestMarkFilters(t *testing.T) {
	assert.False(t, Mark{}.FiltersCardType())
	assert.False(t, Mark{LessonType: LessonAny}.FiltersLessonType())
	assert.True(t, Mark{LessonType: LessonCharms}.FiltersLessonType())
}

func TestAttributeSingletonPerKind(t *testing.T) {
	card := testCard("Hagrid's Hut", CardTypeLocation, NewLessonCost(2, LessonCharms))
	card.SetAttribute(NewLessonCost(5, LessonPotions))

	require.Len(t, card.Attributes(), 1)
	assert.Equal(t, 5, card.LessonCost().Amount)
	assert.Equal(t, LessonPotions, card.LessonType())

	card.RemoveAttribute(AttributeLessonCost)
	assert.Nil(t, card.LessonCost())
	assert.Equal(t, LessonNone, card.LessonType())
}

func TestAttributeReset(t *testing.T) {
	target := testCard("Target", CardTypeCreature)
	creature := NewCreature(2, 4)
	cost := NewLessonCost(3, LessonCreatures)
	manual := NewManualTarget(Mark{Alliance: AllianceOpponent, Zones: ZoneCreatures}, 1, 1)
	card := testCard("Fluffy", CardTypeCreature, creature, cost, manual)

	creature.Health = 1
	creature.Attack = 7
	cost.Amount = 0
	manual.Selected = []*Card{target}

	card.ResetAttributes()

	assert.Equal(t, *NewCreature(2, 4), *creature)
	assert.Equal(t, 3, cost.Amount)
	assert.Empty(t, manual.Selected)
}

func TestManualTargetClampsMaximum(t *testing.T) {
	target := NewManualTarget(Mark{}, 3, 1)
	assert.Equal(t, 3, target.MaxAmount)
}

func TestMoveCardIsAtomic(t *testing.T) {
	match := NewMatch("Harry", "Draco")
	p := match.Players[0]
	card := testCard("Charms", CardTypeLesson, NewLessonProvider(1, LessonCharms))
	require.NoError(t, p.AddCard(card, ZoneHand))

	require.NoError(t, match.MoveCard(card, ZoneLessons))
	assert.Equal(t, ZoneLessons, card.Zone)
	assert.Equal(t, 0, p.Count(ZoneHand))
	assert.True(t, p.Contains(ZoneLessons, card))
	require.NoError(t, match.CheckZones())

	err := match.MoveCard(card, ZoneHand|ZoneDeck)
	assert.ErrorIs(t, err, ErrInvalidZone)
	assert.Equal(t, ZoneLessons, card.Zone)

	// Corrupt the recorded zone and make sure the move refuses to run.
	card.Zone = ZoneDeck
	err = match.MoveCard(card, ZoneDiscard)
	assert.ErrorIs(t, err, ErrCardNotInZone)
	assert.True(t, p.Contains(ZoneLessons, card))
	assert.Equal(t, 0, p.Count(ZoneDiscard))
	assert.Error(t, match.CheckZones())
}

func TestAddCardRejectsPlacedCard(t *testing.T) {
	match := NewMatch("Harry", "Draco")
	card := testCard("Charms", CardTypeLesson)
	require.NoError(t, match.Players[0].AddCard(card, ZoneDeck))

	err := match.Players[1].AddCard(card, ZoneDeck)
	assert.ErrorIs(t, err, ErrCardPlaced)
	assert.Equal(t, match.Players[0], card.Owner)
	require.NoError(t, match.CheckZones())
}

func TestLessonCount(t *testing.T) {
	match := NewMatch("Harry", "Draco")
	p := match.Players[0]
	for _, lesson := range []LessonType{LessonCharms, LessonCharms, LessonPotions} {
		card := testCard("Lesson", CardTypeLesson, NewLessonProvider(1, lesson))
		require.NoError(t, p.AddCard(card, ZoneLessons))
	}

	total, types := p.LessonCount()
	assert.Equal(t, 3, total)
	assert.True(t, LessonCharms.HasLessonType(types))
	assert.True(t, LessonPotions.HasLessonType(types))
	assert.False(t, LessonQuidditch.HasLessonType(types))
}

func TestMatchPlayers(t *testing.T) {
	match := NewMatch("Harry", "Draco")
	assert.Equal(t, NoWinner, match.Winner)
	assert.False(t, match.IsGameOver())
	assert.Equal(t, match.Players[1], match.OpponentOf(match.CurrentPlayer()))
}
