package rules

import "go.uber.org/zap"

// Validator collects the reasons an action may not run. It starts valid and
// latches to invalid on the first rejection; later rejections are still
// recorded.
type Validator struct {
	action  Action
	logger  *zap.Logger
	valid   bool
	reasons []string
}

// NewValidator creates a validator for one validation pass of action.
func NewValidator(action Action, logger *zap.Logger) *Validator {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Validator{action: action, logger: logger, valid: true}
}

// Invalidate rejects the action for reason.
func (v *Validator) Invalidate(reason string) {
	v.logger.Debug("action invalidated",
		zap.Stringer("action", v.action.Kind()),
		zap.String("reason", reason),
	)
	v.valid = false
	v.reasons = append(v.reasons, reason)
}

// IsValid reports whether no handler has rejected the action.
func (v *Validator) IsValid() bool {
	return v.valid
}

// Reasons returns every rejection reason recorded so far.
func (v *Validator) Reasons() []string {
	out := make([]string, len(v.reasons))
	copy(out, v.reasons)
	return out
}
