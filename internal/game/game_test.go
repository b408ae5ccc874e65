package game

import (
	"testing"

	"github.com/hptcg/hptcg-engine-go/internal/catalog"
	"github.com/hptcg/hptcg-engine-go/internal/game/engine"
	"github.com/hptcg/hptcg-engine-go/internal/game/model"
	"github.com/hptcg/hptcg-engine-go/internal/game/rules"
	"github.com/hptcg/hptcg-engine-go/internal/game/systems"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

func newComputerMatch(t *testing.T, deckSize int) *model.Match {
	t.Helper()
	cards := catalog.Default()
	match := model.NewMatch("Harry", "Draco")
	for i, lesson := range []model.LessonType{model.LessonCharms, model.LessonCreatures} {
		deck, err := cards.StarterDeck(lesson, deckSize)
		require.NoError(t, err)
		require.NoError(t, cards.Build(match.Players[i], deck))
		match.Players[i].ControlMode = model.ControlComputer
	}
	return match
}

func newTestGame(t *testing.T, match *model.Match, seed int64) *Game {
	t.Helper()
	g, err := New(match, systems.DefaultSettings(),
		engine.WithLogger(zaptest.NewLogger(t)),
		engine.WithSeed(seed),
	)
	require.NoError(t, err)
	t.Cleanup(func() { require.NoError(t, g.Close()) })
	return g
}

func playOut(g *Game, maxTicks int) int {
	ticks := 0
	for ; ticks < maxTicks && !g.IsGameOver(); ticks++ {
		g.Tick()
	}
	return ticks
}

func TestNewWiresEverySystem(t *testing.T) {
	g := newTestGame(t, model.NewMatch("Harry", "Draco"), 3)

	assert.Len(t, g.Systems(), 17)
	assert.NotNil(t, g.Actions())
	assert.NotNil(t, g.Turns())
	assert.NotNil(t, g.Cards())
	assert.NotNil(t, g.Targets())

	ai, ok := engine.GetSystem[*systems.AISystem](g.Container)
	require.True(t, ok)
	var updater engine.Updater = ai
	assert.NotNil(t, updater)

	// PlayCard is validated by lessons, targets and the action economy.
	assert.Equal(t, 3, g.Bus().HandlerCount(rules.ValidateKey(rules.ActionPlayCard)))
}

func TestCloseDropsSubscriptions(t *testing.T) {
	g, err := New(model.NewMatch("Harry", "Draco"), systems.DefaultSettings(), engine.WithSeed(3))
	require.NoError(t, err)
	require.NoError(t, g.Close())

	for _, kind := range rules.ActionKinds {
		assert.Zero(t, g.Bus().HandlerCount(rules.ValidateKey(kind)), kind)
		assert.Zero(t, g.Bus().HandlerCount(rules.PerformKey(kind)), kind)
	}
}

func TestRejectedActionLeavesStateUntouched(t *testing.T) {
	match := newComputerMatch(t, 30)
	g := newTestGame(t, match, 11)
	g.Begin()

	// A card the current player cannot afford.
	current := match.CurrentPlayer()
	current.ActionsAvailable = 0
	hand := current.Cards(model.ZoneHand)
	require.NotEmpty(t, hand)

	before := Checksum(match)
	play := rules.NewPlayCardAction(hand[0])
	g.Perform(play)

	require.True(t, play.Rejected())
	assert.Contains(t, play.Status().Reasons, "Not enough actions")
	assert.Equal(t, before, Checksum(match))

	last, ok := g.Journal().At(g.Journal().Size() - 1)
	require.True(t, ok)
	assert.Equal(t, rules.StateRejected, last.State)
	assert.Equal(t, before, last.Checksum)
}

func TestCascadeRunsDepthFirst(t *testing.T) {
	match := newComputerMatch(t, 30)
	g := newTestGame(t, match, 11)

	g.Begin()

	var kinds []rules.ActionKind
	for _, e := range g.Journal().Entries() {
		kinds = append(kinds, e.Kind)
	}
	// Opening draws, then the first turn and its own draw.
	assert.Equal(t, []rules.ActionKind{
		rules.ActionBeginGame,
		rules.ActionDrawCards,
		rules.ActionDrawCards,
		rules.ActionChangeTurn,
		rules.ActionDrawCards,
	}, kinds)
}

func TestFullGameKeepsZonesConsistent(t *testing.T) {
	match := newComputerMatch(t, 40)
	g := newTestGame(t, match, 2024)
	g.Begin()

	ticks := playOut(g, 5000)
	require.True(t, g.IsGameOver(), "no winner after %d ticks", ticks)
	assert.NoError(t, match.CheckZones())

	total := 0
	for _, p := range match.Players {
		for _, zone := range model.AllZones {
			total += p.Count(zone)
		}
	}
	assert.Equal(t, 80, total)
}

func TestSameSeedSameGame(t *testing.T) {
	run := func() []Entry {
		match := newComputerMatch(t, 40)
		g := newTestGame(t, match, 77)
		g.Begin()
		playOut(g, 5000)
		return g.Journal().Entries()
	}

	a, b := run(), run()
	require.Equal(t, len(a), len(b))
	for i := range a {
		assert.Equal(t, a[i].Kind, b[i].Kind, i)
		assert.Equal(t, a[i].State, b[i].State, i)
		assert.Equal(t, a[i].Turn, b[i].Turn, i)
	}
}
