package game

import (
	"fmt"

	"github.com/hptcg/hptcg-engine-go/internal/game/engine"
	"github.com/hptcg/hptcg-engine-go/internal/game/model"
	"github.com/hptcg/hptcg-engine-go/internal/game/rules"
	"github.com/hptcg/hptcg-engine-go/internal/game/systems"
	"github.com/hptcg/hptcg-engine-go/internal/game/targeting"
	"go.uber.org/zap"
)

// Game is a fully assembled rule engine for one match.
type Game struct {
	*engine.Container

	actions *engine.ActionSystem
	match   *systems.MatchSystem
	cards   *systems.CardSystem
	targets *targeting.TargetSystem
	journal *Journal
}

// New assembles the rule systems around match and wakes them. Systems are
// registered in the order their notification handlers must run.
func New(match *model.Match, settings systems.Settings, opts ...engine.Option) (*Game, error) {
	c, err := engine.NewContainer(match, opts...)
	if err != nil {
		return nil, fmt.Errorf("create container: %w", err)
	}

	g := &Game{
		Container: c,
		actions:   engine.NewActionSystem(c),
		match:     systems.NewMatchSystem(c, settings.ActionsPerTurn),
		cards:     systems.NewCardSystem(c),
		targets:   targeting.NewTargetSystem(c),
	}

	registry := []any{
		g.actions,
		g.match,
		systems.NewTurnSystem(c, settings),
		systems.NewPlayerSystem(c),
		systems.NewBoardSystem(c),
		systems.NewHandSystem(c),
		systems.NewCreatureSystem(c),
		systems.NewLessonSystem(c),
		systems.NewDamageSystem(c),
		systems.NewDiscardSystem(c),
		systems.NewVictorySystem(c),
		g.targets,
		g.cards,
		systems.NewAbilitySystem(c),
		systems.NewSpellSystem(c),
		// Ending the turn must queue behind the played card's effects.
		systems.NewPlayerActionSystem(c),
		systems.NewAISystem(c),
	}
	for _, sys := range registry {
		if err := c.AddSystem(sys); err != nil {
			return nil, err
		}
	}
	if err := c.Awake(); err != nil {
		return nil, err
	}

	g.journal = NewJournal(match)
	g.actions.Observe(g.journal.Record)

	c.Logger().Info("game assembled",
		zap.String("journal_id", g.journal.ID()),
		zap.Int64("seed", c.Seed()),
		zap.Int("systems", len(registry)),
	)
	return g, nil
}

// Begin deals the opening hands and starts the first turn.
func (g *Game) Begin() *rules.BeginGameAction {
	action := &rules.BeginGameAction{}
	g.Perform(action)
	return action
}

// Tick advances the driven systems by one step.
func (g *Game) Tick() {
	g.Update()
}

// Close releases every subscription.
func (g *Game) Close() error {
	return g.Destroy()
}

// Actions returns the action pipeline.
func (g *Game) Actions() *engine.ActionSystem { return g.actions }

// Turns returns the turn rollover system.
func (g *Game) Turns() *systems.MatchSystem { return g.match }

// Cards returns the card query system.
func (g *Game) Cards() *systems.CardSystem { return g.cards }

// Targets returns the target system.
func (g *Game) Targets() *targeting.TargetSystem { return g.targets }

// Journal returns the record of every action verdict.
func (g *Game) Journal() *Journal { return g.journal }
