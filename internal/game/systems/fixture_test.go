package systems_test

import (
	"testing"

	"github.com/hptcg/hptcg-engine-go/internal/catalog"
	"github.com/hptcg/hptcg-engine-go/internal/game"
	"github.com/hptcg/hptcg-engine-go/internal/game/engine"
	"github.com/hptcg/hptcg-engine-go/internal/game/model"
	"github.com/hptcg/hptcg-engine-go/internal/game/rules"
	"github.com/hptcg/hptcg-engine-go/internal/game/systems"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

type fixture struct {
	t     *testing.T
	g     *game.Game
	match *model.Match
	cards *catalog.Catalog
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	match := model.NewMatch("Harry", "Draco")
	g, err := game.New(match, systems.DefaultSettings(),
		engine.WithLogger(zaptest.NewLogger(t)),
		engine.WithSeed(5),
	)
	require.NoError(t, err)
	t.Cleanup(func() { require.NoError(t, g.Close()) })
	return &fixture{t: t, g: g, match: match, cards: catalog.Default()}
}

// give puts count fresh copies of the named card into a player's zone.
func (f *fixture) give(player int, zone model.Zone, name string, count int) []*model.Card {
	f.t.Helper()
	data, err := f.cards.Lookup(name)
	require.NoError(f.t, err)
	cards := make([]*model.Card, 0, count)
	for range count {
		card := model.NewCard(data)
		require.NoError(f.t, f.match.Players[player].AddCard(card, zone))
		cards = append(cards, card)
	}
	return cards
}

func (f *fixture) one(player int, zone model.Zone, name string) *model.Card {
	f.t.Helper()
	return f.give(player, zone, name, 1)[0]
}

// decks gives both players n filler cards.
func (f *fixture) decks(n int) {
	f.t.Helper()
	f.give(0, model.ZoneDeck, "Pixie", n)
	f.give(1, model.ZoneDeck, "Pixie", n)
}

// turn hands player the turn with the given actions, as if the game were
// under way.
func (f *fixture) turn(player, actions int) {
	f.match.CurrentPlayerIndex = player
	f.match.TurnNumber = 1
	f.match.Players[player].ActionsAvailable = actions
}

func (f *fixture) play(card *model.Card) *rules.PlayCardAction {
	action := rules.NewPlayCardAction(card)
	f.g.Perform(action)
	return action
}

func (f *fixture) player(i int) *model.Player {
	return f.match.Players[i]
}
