package main

import (
	"context"
	"testing"

	"github.com/hptcg/hptcg-engine-go/internal/catalog"
	"github.com/hptcg/hptcg-engine-go/internal/config"
	"github.com/hptcg/hptcg-engine-go/internal/game/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest"
)

func TestNewMatchBuildsComputerDecks(t *testing.T) {
	cfg, err := config.Load("")
	require.NoError(t, err)

	match, err := newMatch(cfg.Simulation, catalog.Default())
	require.NoError(t, err)
	for _, p := range match.Players {
		assert.Equal(t, model.ControlComputer, p.ControlMode)
		assert.Equal(t, cfg.Simulation.DeckSize, p.Count(model.ZoneDeck))
	}
}

func TestNewMatchRejectsUnknownLesson(t *testing.T) {
	cfg, err := config.Load("")
	require.NoError(t, err)
	cfg.Simulation.Players[1].Lesson = "divination"

	_, err = newMatch(cfg.Simulation, catalog.Default())
	assert.ErrorIs(t, err, catalog.ErrUnknownLesson)
}

func TestRunCompletes(t *testing.T) {
	cfg, err := config.Load("")
	require.NoError(t, err)
	cfg.Engine.Seed = 2024

	require.NoError(t, run(context.Background(), cfg, zaptest.NewLogger(t)))
}

func TestInitLogger(t *testing.T) {
	for _, format := range []string{"json", "console"} {
		logger, err := initLogger(config.LoggingConfig{Level: "warn", Format: format})
		require.NoError(t, err)
		assert.False(t, logger.Core().Enabled(zapcore.InfoLevel))
		assert.True(t, logger.Core().Enabled(zapcore.WarnLevel))
	}

	_, err := initLogger(config.LoggingConfig{Level: "loud"})
	assert.Error(t, err)
}
