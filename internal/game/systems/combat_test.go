package systems_test

import (
	"testing"

	"github.com/hptcg/hptcg-engine-go/internal/game/engine"
	"github.com/hptcg/hptcg-engine-go/internal/game/model"
	"github.com/hptcg/hptcg-engine-go/internal/game/rules"
	"github.com/hptcg/hptcg-engine-go/internal/game/systems"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTargetedSpellKillsCreature(t *testing.T) {
	f := newFixture(t)
	f.decks(10)
	f.turn(0, 2)
	f.give(0, model.ZoneLessons, "Charms", 3)
	hippogriff := f.one(1, model.ZoneCreatures, "Hippogriff")
	stupefy := f.one(0, model.ZoneHand, "Stupefy")

	sel, err := f.g.Targets().BeginSelection(stupefy)
	require.NoError(t, err)
	require.True(t, sel.Toggle(hippogriff))
	play := sel.Commit()
	f.g.Perform(play)
	require.True(t, play.Performed())

	assert.Equal(t, model.ZoneDiscard, hippogriff.Zone)
	assert.Equal(t, 4, hippogriff.Creature().Health)
	assert.Equal(t, model.ZoneDiscard, stupefy.Zone)
	assert.Empty(t, stupefy.ManualTarget().Selected)
	assert.NoError(t, f.match.CheckZones())
}

func TestAreaDamageSparesTheHealthy(t *testing.T) {
	f := newFixture(t)
	f.decks(10)
	f.turn(0, 2)
	f.give(0, model.ZoneLessons, "Quidditch", 2)
	hippogriff := f.one(1, model.ZoneCreatures, "Hippogriff")
	pixie := f.one(1, model.ZoneCreatures, "Pixie")
	quaffle := f.one(0, model.ZoneHand, "Quaffle")

	require.True(t, f.play(quaffle).Performed())

	assert.Equal(t, model.ZoneCreatures, hippogriff.Zone)
	assert.Equal(t, 3, hippogriff.Creature().Health)
	assert.Equal(t, model.ZoneDiscard, pixie.Zone)
	assert.Equal(t, 1, pixie.Creature().Health)
}

func TestCreaturesAttackWhenTheirTurnStarts(t *testing.T) {
	f := newFixture(t)
	f.decks(10)
	f.turn(1, 0)
	f.one(0, model.ZoneCreatures, "Hippogriff")
	f.one(0, model.ZoneCreatures, "Pixie")
	f.one(1, model.ZoneCreatures, "Pixie")

	f.g.Turns().ChangeTurn()

	assert.Equal(t, 7, f.player(1).Count(model.ZoneDeck))
	assert.Equal(t, 3, f.player(1).Count(model.ZoneDiscard))
	assert.Equal(t, 9, f.player(0).Count(model.ZoneDeck))
	assert.Equal(t, 0, f.player(0).Count(model.ZoneDiscard))
}

func TestDamageCreatureNeedsACreatureInPlay(t *testing.T) {
	f := newFixture(t)
	f.decks(10)
	inDeck := f.player(1).Cards(model.ZoneDeck)[0]

	action := rules.NewDamageCreatureAction(nil, inDeck, 1)
	f.g.Perform(action)
	assert.Equal(t, []string{"Target is not a creature in play"}, action.Status().Reasons)
}

func TestDiscardResetsAttributes(t *testing.T) {
	f := newFixture(t)
	f.decks(10)
	hippogriff := f.one(1, model.ZoneCreatures, "Hippogriff")
	stupefy := f.one(0, model.ZoneHand, "Stupefy")

	f.g.Perform(rules.NewDamageCreatureAction(nil, hippogriff, 2))
	require.Equal(t, 2, hippogriff.Creature().Health)
	stupefy.ManualTarget().Selected = []*model.Card{hippogriff}

	discard := rules.NewDiscardAction(nil, hippogriff, stupefy)
	f.g.Perform(discard)
	require.True(t, discard.Performed())

	assert.Equal(t, model.ZoneDiscard, hippogriff.Zone)
	assert.Equal(t, 4, hippogriff.Creature().Health)
	assert.Equal(t, model.ZoneDiscard, stupefy.Zone)
	assert.Empty(t, stupefy.ManualTarget().Selected)
}

func TestVictoryByMilling(t *testing.T) {
	f := newFixture(t)
	f.decks(2)
	f.turn(0, 2)
	f.give(0, model.ZoneLessons, "Charms", 2)
	incendio := f.one(0, model.ZoneHand, "Incendio")
	accio := f.one(0, model.ZoneHand, "Accio")

	require.True(t, f.play(incendio).Performed())
	assert.Equal(t, 0, f.match.Winner)
	assert.True(t, f.g.IsGameOver())

	assert.Contains(t, f.g.Cards().PlayReasons(accio), "Game is over")
	assert.True(t, f.g.Turns().ChangeTurn().Rejected())

	// The first winner stands.
	f.g.Perform(rules.NewDrawCardsAction(f.player(0), 2))
	assert.Equal(t, 0, f.match.Winner)
}

func TestChangeZonePanicsOnCorruptedZones(t *testing.T) {
	f := newFixture(t)
	players, ok := engine.GetSystem[*systems.PlayerSystem](f.g.Container)
	require.True(t, ok)

	card := f.one(0, model.ZoneHand, "Charms")
	card.Zone = model.ZoneLessons
	assert.Panics(t, func() {
		players.ChangeZone(card, model.ZoneDiscard)
	})
}

func TestBoardListsCardsInPlay(t *testing.T) {
	f := newFixture(t)
	board, ok := engine.GetSystem[*systems.BoardSystem](f.g.Container)
	require.True(t, ok)

	lesson := f.one(0, model.ZoneLessons, "Charms")
	pixie := f.one(0, model.ZoneCreatures, "Pixie")
	f.one(0, model.ZoneHand, "Accio")

	assert.Equal(t, []*model.Card{lesson, pixie}, board.Board(f.player(0)))
}
