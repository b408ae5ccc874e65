package engine

import (
	crand "crypto/rand"
	"encoding/binary"
	"errors"
	"fmt"
	"math/rand"
	"reflect"

	"github.com/hptcg/hptcg-engine-go/internal/game/model"
	"github.com/hptcg/hptcg-engine-go/internal/game/rules"
	"go.uber.org/multierr"
	"go.uber.org/zap"
)

var (
	// ErrMissingSystem is returned when a required system was never added.
	ErrMissingSystem = errors.New("required system not registered")
	// ErrDuplicateSystem is returned when a system kind is added twice.
	ErrDuplicateSystem = errors.New("system already registered")
)

// Awaker is implemented by systems that need to subscribe or resolve their
// collaborators once the registry is assembled.
type Awaker interface {
	Awake() error
}

// Destroyer is implemented by systems that release subscriptions on teardown.
type Destroyer interface {
	Destroy() error
}

// Updater is implemented by systems driven by the outer tick loop.
type Updater interface {
	Update()
}

// Container owns the match state and one instance of each system kind.
type Container struct {
	match  *model.Match
	bus    *rules.Bus
	logger *zap.Logger
	rng    *rand.Rand
	seed   int64

	systems map[reflect.Type]any
	order   []any
	actions *ActionSystem
}

// Option configures a Container.
type Option func(*Container)

// WithLogger sets the logger shared by every system.
func WithLogger(logger *zap.Logger) Option {
	return func(c *Container) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// WithBus injects the notification bus. A fresh bus is used otherwise.
func WithBus(bus *rules.Bus) Option {
	return func(c *Container) {
		if bus != nil {
			c.bus = bus
		}
	}
}

// WithSeed fixes the random source. Zero picks a random seed.
func WithSeed(seed int64) Option {
	return func(c *Container) {
		c.seed = seed
	}
}

// NewContainer creates a registry around match.
func NewContainer(match *model.Match, opts ...Option) (*Container, error) {
	c := &Container{
		match:   match,
		logger:  zap.NewNop(),
		systems: make(map[reflect.Type]any),
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.bus == nil {
		c.bus = rules.NewBus()
	}
	if c.seed == 0 {
		seed, err := newSeed()
		if err != nil {
			return nil, err
		}
		c.seed = seed
	}
	c.rng = rand.New(rand.NewSource(c.seed))
	return c, nil
}

// Match returns the game state.
func (c *Container) Match() *model.Match { return c.match }

// Bus returns the notification bus.
func (c *Container) Bus() *rules.Bus { return c.bus }

// Logger returns the shared logger.
func (c *Container) Logger() *zap.Logger { return c.logger }

// Rand returns the seeded random source.
func (c *Container) Rand() *rand.Rand { return c.rng }

// Seed returns the seed the random source was built from.
func (c *Container) Seed() int64 { return c.seed }

// AddSystem registers sys under its concrete type.
func (c *Container) AddSystem(sys any) error {
	if sys == nil {
		return fmt.Errorf("add system: nil")
	}
	typ := reflect.TypeOf(sys)
	if _, ok := c.systems[typ]; ok {
		return fmt.Errorf("add system %s: %w", typ, ErrDuplicateSystem)
	}
	c.systems[typ] = sys
	c.order = append(c.order, sys)
	if actions, ok := sys.(*ActionSystem); ok {
		c.actions = actions
	}
	return nil
}

// Systems returns every registered system in registration order.
func (c *Container) Systems() []any {
	out := make([]any, len(c.order))
	copy(out, c.order)
	return out
}

// GetSystem looks up the system registered under type T.
func GetSystem[T any](c *Container) (T, bool) {
	sys, ok := c.systems[reflect.TypeFor[T]()]
	if !ok {
		var zero T
		return zero, false
	}
	return sys.(T), true
}

// Require resolves T into dst or reports ErrMissingSystem. Systems call it
// from Awake.
func Require[T any](c *Container, dst *T) error {
	sys, ok := GetSystem[T](c)
	if !ok {
		return fmt.Errorf("%s: %w", reflect.TypeFor[T](), ErrMissingSystem)
	}
	*dst = sys
	return nil
}

// MustGetSystem is GetSystem for collaborators that cannot be missing.
func MustGetSystem[T any](c *Container) T {
	sys, ok := GetSystem[T](c)
	if !ok {
		c.logger.Panic("required system missing", zap.Stringer("system", reflect.TypeFor[T]()))
	}
	return sys
}

// Awake runs every Awaker in registration order. All systems are awoken even
// when some fail; the errors are combined.
func (c *Container) Awake() error {
	var err error
	for _, sys := range c.order {
		if a, ok := sys.(Awaker); ok {
			err = multierr.Append(err, a.Awake())
		}
	}
	if err != nil {
		return fmt.Errorf("awake: %w", err)
	}
	c.logger.Debug("systems awake", zap.Int("systems", len(c.order)), zap.Int64("seed", c.seed))
	return nil
}

// Destroy runs every Destroyer in registration order.
func (c *Container) Destroy() error {
	var err error
	for _, sys := range c.order {
		if d, ok := sys.(Destroyer); ok {
			err = multierr.Append(err, d.Destroy())
		}
	}
	if err != nil {
		return fmt.Errorf("destroy: %w", err)
	}
	return nil
}

// Update advances every Updater by one tick.
func (c *Container) Update() {
	for _, sys := range c.order {
		if u, ok := sys.(Updater); ok {
			u.Update()
		}
	}
}

// Perform submits action to the action pipeline.
func (c *Container) Perform(action rules.Action) {
	if c.actions == nil {
		c.logger.Panic("perform without an action system", zap.Stringer("action", action.Kind()))
	}
	c.actions.Perform(action)
}

// IsGameOver reports whether the match has a winner.
func (c *Container) IsGameOver() bool {
	return c.match.IsGameOver()
}

func newSeed() (int64, error) {
	var b [8]byte
	if _, err := crand.Read(b[:]); err != nil {
		return 0, fmt.Errorf("read random seed: %w", err)
	}
	return int64(binary.LittleEndian.Uint64(b[:])), nil
}
