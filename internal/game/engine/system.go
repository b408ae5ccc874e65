package engine

import (
	"github.com/hptcg/hptcg-engine-go/internal/game/model"
	"github.com/hptcg/hptcg-engine-go/internal/game/rules"
	"go.uber.org/zap"
)

// GameSystem is embedded by rule systems. It tracks bus subscriptions so they
// can all be dropped on teardown.
type GameSystem struct {
	container *Container
	logger    *zap.Logger
	handles   []int
}

// NewGameSystem binds a system named name to c.
func NewGameSystem(c *Container, name string) GameSystem {
	return GameSystem{
		container: c,
		logger:    c.Logger().Named(name),
	}
}

// Container returns the owning registry.
func (s *GameSystem) Container() *Container { return s.container }

// Match returns the shared game state.
func (s *GameSystem) Match() *model.Match { return s.container.Match() }

// Logger returns the system's named logger.
func (s *GameSystem) Logger() *zap.Logger { return s.logger }

// Subscribe registers handler on the container's bus and remembers the handle.
func (s *GameSystem) Subscribe(key rules.Key, handler rules.Handler) {
	s.handles = append(s.handles, s.container.Bus().Subscribe(key, handler))
}

// UnsubscribeAll removes every subscription made through Subscribe.
func (s *GameSystem) UnsubscribeAll() {
	for _, handle := range s.handles {
		s.container.Bus().Unsubscribe(handle)
	}
	s.handles = nil
}

// Destroy drops the system's subscriptions.
func (s *GameSystem) Destroy() error {
	s.UnsubscribeAll()
	return nil
}
