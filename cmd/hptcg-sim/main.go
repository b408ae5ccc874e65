package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/hptcg/hptcg-engine-go/internal/catalog"
	"github.com/hptcg/hptcg-engine-go/internal/config"
	"github.com/hptcg/hptcg-engine-go/internal/game"
	"github.com/hptcg/hptcg-engine-go/internal/game/engine"
	"github.com/hptcg/hptcg-engine-go/internal/game/model"
	"github.com/hptcg/hptcg-engine-go/internal/game/systems"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	configPath = flag.String("config", "config/hptcg.yaml", "path to configuration file")
	seed       = flag.Int64("seed", 0, "random seed, overrides engine.seed when non-zero")
	version    = "dev" // set via ldflags during build
)

func main() {
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}
	if *seed != 0 {
		cfg.Engine.Seed = *seed
	}

	logger, err := initLogger(cfg.Logging)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("starting simulation",
		zap.String("version", version),
		zap.String("config", *configPath),
	)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, logger); err != nil {
		logger.Error("simulation failed", zap.Error(err))
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg *config.Config, logger *zap.Logger) error {
	match, err := newMatch(cfg.Simulation, catalog.Default())
	if err != nil {
		return err
	}

	g, err := game.New(match, settingsFrom(cfg.Engine),
		engine.WithLogger(logger),
		engine.WithSeed(cfg.Engine.Seed),
	)
	if err != nil {
		return fmt.Errorf("assemble game: %w", err)
	}
	defer func() {
		if err := g.Close(); err != nil {
			logger.Warn("teardown failed", zap.Error(err))
		}
	}()

	g.Begin()

	ticks := 0
	for ; ticks < cfg.Simulation.MaxTicks && !g.IsGameOver(); ticks++ {
		select {
		case <-ctx.Done():
			logger.Info("simulation interrupted", zap.Int("ticks", ticks))
			return nil
		default:
		}
		g.Tick()
	}

	winner := "none"
	if match.IsGameOver() {
		winner = match.Players[match.Winner].Name
	}
	logger.Info("simulation finished",
		zap.String("winner", winner),
		zap.Int("turns", match.TurnNumber),
		zap.Int("ticks", ticks),
		zap.Int("actions", g.Journal().Size()),
		zap.Int("rejected", len(g.Journal().Rejected())),
		zap.Int64("seed", g.Seed()),
		zap.String("checksum", game.Checksum(match)),
	)
	if err := match.CheckZones(); err != nil {
		return fmt.Errorf("zone check: %w", err)
	}
	return nil
}

func newMatch(cfg config.SimulationConfig, cards *catalog.Catalog) (*model.Match, error) {
	match := model.NewMatch(cfg.Players[0].Name, cfg.Players[1].Name)
	for i, pc := range cfg.Players {
		lesson, err := catalog.ParseLesson(pc.Lesson)
		if err != nil {
			return nil, fmt.Errorf("player %s: %w", pc.Name, err)
		}
		deck, err := cards.StarterDeck(lesson, cfg.DeckSize)
		if err != nil {
			return nil, err
		}
		player := match.Players[i]
		player.ControlMode = model.ControlComputer
		if err := cards.Build(player, deck); err != nil {
			return nil, err
		}
	}
	return match, nil
}

func settingsFrom(cfg config.EngineConfig) systems.Settings {
	return systems.Settings{
		ActionsPerTurn:   cfg.ActionsPerTurn,
		StartingHandSize: cfg.StartingHandSize,
		DrawPerTurn:      cfg.DrawPerTurn,
		FirstPlayer:      cfg.FirstPlayer,
	}
}

// initLogger initializes the zap logger based on configuration
func initLogger(cfg config.LoggingConfig) (*zap.Logger, error) {
	level, err := zapcore.ParseLevel(cfg.Level)
	if err != nil {
		return nil, fmt.Errorf("parse log level: %w", err)
	}

	zapCfg := zap.NewDevelopmentConfig()
	if cfg.Format == "json" {
		zapCfg = zap.NewProductionConfig()
	} else {
		zapCfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	}
	zapCfg.Level = zap.NewAtomicLevelAt(level)
	return zapCfg.Build()
}
