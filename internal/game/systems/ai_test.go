package systems_test

import (
	"testing"

	"github.com/hptcg/hptcg-engine-go/internal/game/model"
	"github.com/stretchr/testify/assert"
)

func TestAIPlaysLessonThenEndsTurn(t *testing.T) {
	f := newFixture(t)
	f.decks(10)
	f.turn(0, 2)
	f.player(0).ControlMode = model.ControlComputer
	lesson := f.one(0, model.ZoneHand, "Charms")
	f.one(0, model.ZoneHand, "Incendio")

	f.g.Tick()
	assert.Equal(t, model.ZoneLessons, lesson.Zone)
	assert.Equal(t, 1, f.player(0).ActionsAvailable)

	// Incendio still needs a second lesson.
	f.g.Tick()
	assert.Equal(t, 1, f.match.CurrentPlayerIndex)
	assert.Equal(t, 1, f.player(0).ActionsAvailable)

	// The opponent is not computer controlled.
	f.g.Tick()
	assert.Equal(t, 1, f.match.CurrentPlayerIndex)
	assert.Equal(t, 2, f.player(1).ActionsAvailable)
}

func TestAIPrefersSpellsOverLessons(t *testing.T) {
	f := newFixture(t)
	f.decks(10)
	f.turn(0, 2)
	f.player(0).ControlMode = model.ControlComputer
	f.one(0, model.ZoneLessons, "Charms")
	lesson := f.one(0, model.ZoneHand, "Charms")
	accio := f.one(0, model.ZoneHand, "Accio")

	f.g.Tick()
	assert.Equal(t, model.ZoneDiscard, accio.Zone)
	assert.Equal(t, model.ZoneHand, lesson.Zone)
	assert.Equal(t, 3, f.player(0).Count(model.ZoneHand))
}

func TestAITargetsBeforePlaying(t *testing.T) {
	f := newFixture(t)
	f.decks(10)
	f.turn(0, 2)
	f.player(0).ControlMode = model.ControlComputer
	f.give(0, model.ZoneLessons, "Charms", 3)
	pixie := f.one(1, model.ZoneCreatures, "Pixie")
	stupefy := f.one(0, model.ZoneHand, "Stupefy")

	f.g.Tick()
	assert.Equal(t, model.ZoneDiscard, stupefy.Zone)
	assert.Equal(t, model.ZoneDiscard, pixie.Zone)
}

func TestAIWaitsForGameStart(t *testing.T) {
	f := newFixture(t)
	f.decks(10)
	f.player(0).ControlMode = model.ControlComputer
	f.one(0, model.ZoneHand, "Charms")

	f.g.Tick()
	assert.Equal(t, 0, f.match.TurnNumber)
	assert.Equal(t, 1, f.player(0).Count(model.ZoneHand))
}

func TestAILeavesUnplayedTargetsAlone(t *testing.T) {
	f := newFixture(t)
	f.decks(10)
	f.turn(0, 2)
	f.player(0).ControlMode = model.ControlComputer
	f.one(1, model.ZoneCreatures, "Pixie")
	// Stupefy needs three Charms lessons, so only the lesson is played.
	stupefy := f.one(0, model.ZoneHand, "Stupefy")
	lesson := f.one(0, model.ZoneHand, "Charms")

	f.g.Tick()
	assert.Equal(t, model.ZoneLessons, lesson.Zone)
	assert.Equal(t, model.ZoneHand, stupefy.Zone)
	assert.Empty(t, stupefy.ManualTarget().Selected)
}
