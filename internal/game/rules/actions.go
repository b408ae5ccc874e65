package rules

import (
	"fmt"

	"github.com/hptcg/hptcg-engine-go/internal/game/model"
)

// ActionKind identifies the kind of an action. Together with a Phase it forms
// the key notifications are published under.
type ActionKind int

const (
	ActionBeginGame ActionKind = iota + 1
	ActionChangeTurn
	ActionPlayCard
	ActionDrawCards
	ActionDiscard
	ActionDamagePlayer
	ActionDamageCreature
)

var actionKindNames = map[ActionKind]string{
	ActionBeginGame:      "BEGIN_GAME",
	ActionChangeTurn:     "CHANGE_TURN",
	ActionPlayCard:       "PLAY_CARD",
	ActionDrawCards:      "DRAW_CARDS",
	ActionDiscard:        "DISCARD",
	ActionDamagePlayer:   "DAMAGE_PLAYER",
	ActionDamageCreature: "DAMAGE_CREATURE",
}

// ActionKinds lists the built-in action kinds.
var ActionKinds = []ActionKind{
	ActionBeginGame,
	ActionChangeTurn,
	ActionPlayCard,
	ActionDrawCards,
	ActionDiscard,
	ActionDamagePlayer,
	ActionDamageCreature,
}

func (k ActionKind) String() string {
	if name, ok := actionKindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("ACTION_%d", int(k))
}

// ActionState tracks an action through the pipeline.
type ActionState int

const (
	StatePending ActionState = iota
	StateQueued
	StatePerformed
	StateRejected
)

func (s ActionState) String() string {
	switch s {
	case StatePending:
		return "PENDING"
	case StateQueued:
		return "QUEUED"
	case StatePerformed:
		return "PERFORMED"
	case StateRejected:
		return "REJECTED"
	default:
		return "UNKNOWN"
	}
}

// Status is the pipeline's record of what happened to an action.
type Status struct {
	State ActionState
	// Reasons holds every rejection reason, in the order they were raised.
	Reasons []string
}

// Action is a request for a state change.
type Action interface {
	Kind() ActionKind
	Status() *Status
}

// Base carries the pipeline status. Embed it in every action.
type Base struct {
	status Status
}

// Status returns the mutable pipeline status.
func (b *Base) Status() *Status {
	return &b.status
}

// Performed reports whether the action passed validation and ran.
func (b *Base) Performed() bool {
	return b.status.State == StatePerformed
}

// Rejected reports whether validation vetoed the action.
func (b *Base) Rejected() bool {
	return b.status.State == StateRejected
}

// BeginGameAction deals opening hands and hands the first turn out.
type BeginGameAction struct {
	Base
}

func (*BeginGameAction) Kind() ActionKind { return ActionBeginGame }

// ChangeTurnAction passes the turn to NextPlayerIndex.
type ChangeTurnAction struct {
	Base
	NextPlayerIndex int
}

// NewChangeTurnAction creates a turn change to the given player index.
func NewChangeTurnAction(next int) *ChangeTurnAction {
	return &ChangeTurnAction{NextPlayerIndex: next}
}

func (*ChangeTurnAction) Kind() ActionKind { return ActionChangeTurn }

// PlayCardAction plays Card from its owner's hand. Targets are read from the
// card's ManualTarget attribute.
type PlayCardAction struct {
	Base
	Card *model.Card
}

// NewPlayCardAction creates a play for card.
func NewPlayCardAction(card *model.Card) *PlayCardAction {
	return &PlayCardAction{Card: card}
}

func (*PlayCardAction) Kind() ActionKind { return ActionPlayCard }

// DrawCardsAction moves Amount cards from the top of Player's deck to hand.
type DrawCardsAction struct {
	Base
	Player *model.Player
	Amount int
	// Drawn is filled in when the action is performed.
	Drawn []*model.Card
}

// NewDrawCardsAction creates a draw of amount cards for player.
func NewDrawCardsAction(player *model.Player, amount int) *DrawCardsAction {
	return &DrawCardsAction{Player: player, Amount: amount}
}

func (*DrawCardsAction) Kind() ActionKind { return ActionDrawCards }

// DiscardAction moves Cards to their owners' discard piles.
type DiscardAction struct {
	Base
	Source *model.Card
	Cards  []*model.Card
}

// NewDiscardAction creates a discard of cards caused by source (may be nil).
func NewDiscardAction(source *model.Card, cards ...*model.Card) *DiscardAction {
	return &DiscardAction{Source: source, Cards: cards}
}

func (*DiscardAction) Kind() ActionKind { return ActionDiscard }

// DamagePlayerAction mills Amount cards from Target's deck.
type DamagePlayerAction struct {
	Base
	Source *model.Card
	Target *model.Player
	Amount int
}

// NewDamagePlayerAction creates amount damage to target from source.
func NewDamagePlayerAction(source *model.Card, target *model.Player, amount int) *DamagePlayerAction {
	return &DamagePlayerAction{Source: source, Target: target, Amount: amount}
}

func (*DamagePlayerAction) Kind() ActionKind { return ActionDamagePlayer }

// DamageCreatureAction lowers the health of a creature card.
type DamageCreatureAction struct {
	Base
	Source *model.Card
	Target *model.Card
	Amount int
}

// NewDamageCreatureAction creates amount damage to the creature target.
func NewDamageCreatureAction(source, target *model.Card, amount int) *DamageCreatureAction {
	return &DamageCreatureAction{Source: source, Target: target, Amount: amount}
}

func (*DamageCreatureAction) Kind() ActionKind { return ActionDamageCreature }
