package engine

import (
	"github.com/hptcg/hptcg-engine-go/internal/game/rules"
	"go.uber.org/zap"
)

// ActionSystem runs actions through validate, perform and notify.
//
// Only one action is active at a time. Actions submitted while one is active
// are queued against the action currently performing and run after it, in
// submission order; each of them finishes its own cascade before the next
// sibling starts.
type ActionSystem struct {
	GameSystem

	active     bool
	validating bool
	pending    []rules.Action
	processed  int
	observers  []func(rules.Action)
}

// NewActionSystem creates the pipeline for c.
func NewActionSystem(c *Container) *ActionSystem {
	return &ActionSystem{GameSystem: NewGameSystem(c, "actions")}
}

// IsActive reports whether an action is being processed.
func (a *ActionSystem) IsActive() bool {
	return a.active
}

// Processed returns the number of actions that reached a verdict.
func (a *ActionSystem) Processed() int {
	return a.processed
}

// Observe registers fn to be called with every action once its verdict is
// in, before its cascade runs. Observers must not submit actions.
func (a *ActionSystem) Observe(fn func(rules.Action)) {
	if fn != nil {
		a.observers = append(a.observers, fn)
	}
}

// Perform runs action, or queues it when another action is active.
func (a *ActionSystem) Perform(action rules.Action) {
	if action == nil {
		return
	}
	if a.validating {
		a.Logger().Warn("action submitted during validation dropped", zap.Stringer("action", action.Kind()))
		status := action.Status()
		status.State = rules.StateRejected
		status.Reasons = append(status.Reasons, "submitted during validation")
		return
	}
	if a.active {
		action.Status().State = rules.StateQueued
		a.pending = append(a.pending, action)
		return
	}

	a.active = true
	defer func() {
		a.active = false
		a.pending = nil
	}()
	a.process(action)
}

// Validate runs the validation phase for action without performing it.
// Validation handlers must not mutate state, so this is safe to call from
// read-only queries.
func (a *ActionSystem) Validate(action rules.Action) *rules.Validator {
	validator := rules.NewValidator(action, a.Logger())
	wasValidating := a.validating
	a.validating = true
	a.Container().Bus().Publish(rules.ValidateKey(action.Kind()), rules.Notification{
		Action:    action,
		Validator: validator,
	})
	a.validating = wasValidating
	return validator
}

func (a *ActionSystem) process(action rules.Action) {
	parent := a.pending
	a.pending = nil

	status := action.Status()
	validator := a.Validate(action)
	a.processed++

	if !validator.IsValid() {
		status.State = rules.StateRejected
		status.Reasons = validator.Reasons()
		a.Logger().Info("action rejected",
			zap.Stringer("action", action.Kind()),
			zap.Strings("reasons", status.Reasons),
		)
	} else {
		a.Logger().Debug("performing action", zap.Stringer("action", action.Kind()))
		a.Container().Bus().Publish(rules.PerformKey(action.Kind()), rules.Notification{Action: action})
		status.State = rules.StatePerformed
	}
	for _, fn := range a.observers {
		fn(action)
	}

	cascade := a.pending
	a.pending = parent
	for _, next := range cascade {
		a.process(next)
	}
}
