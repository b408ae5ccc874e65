package catalog

import (
	"testing"

	"github.com/hptcg/hptcg-engine-go/internal/game/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLookup(t *testing.T) {
	c := Default()

	data, err := c.Lookup("Incendio")
	require.NoError(t, err)
	assert.Equal(t, model.CardTypeSpell, data.Type)

	_, err = c.Lookup("Avada Kedavra")
	assert.ErrorIs(t, err, ErrUnknownCard)
}

func TestTemplatesBuildFreshAttributes(t *testing.T) {
	data, err := Default().Lookup("Hippogriff")
	require.NoError(t, err)

	a, b := model.NewCard(data), model.NewCard(data)
	a.Creature().Health = 1
	assert.Equal(t, 4, b.Creature().Health)
	assert.NotEqual(t, a.ID, b.ID)
}

func TestParseLesson(t *testing.T) {
	lesson, err := ParseLesson(" Charms ")
	require.NoError(t, err)
	assert.Equal(t, model.LessonCharms, lesson)

	_, err = ParseLesson("divination")
	assert.ErrorIs(t, err, ErrUnknownLesson)
}

func TestStarterDeck(t *testing.T) {
	c := Default()
	for _, lesson := range []model.LessonType{
		model.LessonCreatures,
		model.LessonCharms,
		model.LessonTransfiguration,
		model.LessonPotions,
		model.LessonQuidditch,
	} {
		deck, err := c.StarterDeck(lesson, 41)
		require.NoError(t, err, lesson)
		assert.Equal(t, 41, deck.Size(), lesson)
		assert.Equal(t, DeckEntry{Name: LessonCardName(lesson), Count: 20}, deck[0], lesson)
		for _, entry := range deck[1:] {
			data, err := c.Lookup(entry.Name)
			require.NoError(t, err)
			assert.Equal(t, lesson, data.Attributes()[0].(*model.LessonCost).Type, entry.Name)
		}
	}

	_, err := c.StarterDeck(model.LessonAny, 40)
	assert.ErrorIs(t, err, ErrUnknownLesson)
}

func TestBuild(t *testing.T) {
	c := Default()
	p := model.NewPlayer(0, "Harry")

	require.NoError(t, c.Build(p, DeckList{{Name: "Charms", Count: 3}, {Name: "Accio", Count: 2}}))
	assert.Equal(t, 5, p.Count(model.ZoneDeck))
	for _, card := range p.Cards(model.ZoneDeck) {
		assert.Same(t, p, card.Owner)
	}

	err := c.Build(p, DeckList{{Name: "Charms", Count: 1}, {Name: "Nope", Count: 1}})
	assert.ErrorIs(t, err, ErrUnknownCard)
	assert.Equal(t, 5, p.Count(model.ZoneDeck))
}
