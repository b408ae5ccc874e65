package game

import (
	"testing"

	"github.com/hptcg/hptcg-engine-go/internal/game/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChecksumTracksState(t *testing.T) {
	match := model.NewMatch("Harry", "Draco")
	creature := model.NewCard(&model.CardData{
		Name:       "Hippogriff",
		Type:       model.CardTypeCreature,
		Attributes: func() []model.Attribute { return []model.Attribute{model.NewCreature(2, 4)} },
	})
	lesson := model.NewCard(&model.CardData{Name: "Charms", Type: model.CardTypeLesson})
	require.NoError(t, match.Players[0].AddCard(creature, model.ZoneDeck))
	require.NoError(t, match.Players[0].AddCard(lesson, model.ZoneDeck))

	base := Checksum(match)
	assert.Len(t, base, 64)
	assert.Equal(t, base, Checksum(match))

	creature.Creature().Health = 3
	damaged := Checksum(match)
	assert.NotEqual(t, base, damaged)
	creature.Creature().Reset()
	assert.Equal(t, base, Checksum(match))

	// Deck order is state.
	require.NoError(t, match.MoveCard(creature, model.ZoneHand))
	require.NoError(t, match.MoveCard(creature, model.ZoneDeck))
	assert.NotEqual(t, base, Checksum(match))

	match.Players[1].ActionsAvailable = 2
	assert.NotEqual(t, Checksum(match), base)
}
