package model

import (
	"fmt"
	"strings"
)

// AttributeKind identifies an attribute variant. A card holds at most one
// attribute per kind.
type AttributeKind int

const (
	AttributeLessonCost AttributeKind = iota + 1
	AttributeLessonProvider
	AttributeCreature
	AttributeManualTarget
	AttributeAbility
)

// AttributeKinds lists every variant in canonical order.
var AttributeKinds = []AttributeKind{
	AttributeLessonCost,
	AttributeLessonProvider,
	AttributeCreature,
	AttributeManualTarget,
	AttributeAbility,
}

var attributeKindNames = map[AttributeKind]string{
	AttributeLessonCost:     "LESSON_COST",
	AttributeLessonProvider: "LESSON_PROVIDER",
	AttributeCreature:       "CREATURE",
	AttributeManualTarget:   "MANUAL_TARGET",
	AttributeAbility:        "ABILITY",
}

func (k AttributeKind) String() string {
	if name, ok := attributeKindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("ATTRIBUTE_%d", int(k))
}

// Attribute is a typed state fragment attached to a card.
type Attribute interface {
	Kind() AttributeKind
	// Reset restores the value the attribute was built with.
	Reset()
	String() string
}

// LessonCost is the lesson requirement for playing a card.
type LessonCost struct {
	Amount int
	Type   LessonType

	baseAmount int
	baseType   LessonType
}

// NewLessonCost creates a lesson cost attribute.
func NewLessonCost(amount int, lesson LessonType) *LessonCost {
	return &LessonCost{Amount: amount, Type: lesson, baseAmount: amount, baseType: lesson}
}

func (c *LessonCost) Kind() AttributeKind { return AttributeLessonCost }

func (c *LessonCost) Reset() {
	c.Amount = c.baseAmount
	c.Type = c.baseType
}

func (c *LessonCost) String() string {
	return fmt.Sprintf("cost:%d:%s", c.Amount, c.Type)
}

// LessonProvider marks a card that pays for lesson costs while on the board.
type LessonProvider struct {
	Amount int
	Type   LessonType

	baseAmount int
	baseType   LessonType
}

// NewLessonProvider creates a lesson provider attribute.
func NewLessonProvider(amount int, lesson LessonType) *LessonProvider {
	return &LessonProvider{Amount: amount, Type: lesson, baseAmount: amount, baseType: lesson}
}

func (p *LessonProvider) Kind() AttributeKind { return AttributeLessonProvider }

func (p *LessonProvider) Reset() {
	p.Amount = p.baseAmount
	p.Type = p.baseType
}

func (p *LessonProvider) String() string {
	return fmt.Sprintf("provider:%d:%s", p.Amount, p.Type)
}

// Creature holds combat stats.
type Creature struct {
	Attack    int
	Health    int
	MaxHealth int

	baseAttack int
}

// NewCreature creates a creature attribute at full health.
func NewCreature(attack, health int) *Creature {
	return &Creature{Attack: attack, Health: health, MaxHealth: health, baseAttack: attack}
}

func (c *Creature) Kind() AttributeKind { return AttributeCreature }

func (c *Creature) Reset() {
	c.Attack = c.baseAttack
	c.Health = c.MaxHealth
}

// IsDead reports whether the creature has no health left.
func (c *Creature) IsDead() bool {
	return c.Health <= 0
}

func (c *Creature) String() string {
	return fmt.Sprintf("creature:%d:%d/%d", c.Attack, c.Health, c.MaxHealth)
}

// ManualTarget is a pending target request that a player or the AI fills
// in before the card is played.
type ManualTarget struct {
	Allowed        Mark
	RequiredAmount int
	MaxAmount      int
	Selected       []*Card
}

// NewManualTarget creates a target request for between required and max
// cards matching allowed.
func NewManualTarget(allowed Mark, required, maxAmount int) *ManualTarget {
	if maxAmount < required {
		maxAmount = required
	}
	return &ManualTarget{Allowed: allowed, RequiredAmount: required, MaxAmount: maxAmount}
}

func (t *ManualTarget) Kind() AttributeKind { return AttributeManualTarget }

func (t *ManualTarget) Reset() {
	t.Selected = nil
}

func (t *ManualTarget) String() string {
	ids := make([]string, 0, len(t.Selected))
	for _, c := range t.Selected {
		ids = append(ids, c.ID)
	}
	return fmt.Sprintf("target:%d-%d:%s:[%s]", t.RequiredAmount, t.MaxAmount, t.Allowed, strings.Join(ids, ","))
}

// AbilityType says when an ability fires.
type AbilityType int

const (
	AbilityWhenPlayed AbilityType = iota
	AbilityActivated
)

func (t AbilityType) String() string {
	switch t {
	case AbilityWhenPlayed:
		return "WHEN_PLAYED"
	case AbilityActivated:
		return "ACTIVATED"
	default:
		return "UNKNOWN"
	}
}

// SelectorKind says how an ability picks its targets.
type SelectorKind int

const (
	// SelectManual uses the card's ManualTarget selection.
	SelectManual SelectorKind = iota
	// SelectAll takes every candidate matching the selector's mark.
	SelectAll
	// SelectRandom takes Amount random candidates matching the mark.
	SelectRandom
)

// TargetSelector describes how an ability resolves its targets.
type TargetSelector struct {
	Kind   SelectorKind
	Mark   Mark
	Amount int
}

// EffectKind enumerates what an ability does once it resolves.
type EffectKind int

const (
	// EffectDamagePlayer damages the opponent of the card's owner.
	EffectDamagePlayer EffectKind = iota
	// EffectDamageCreature damages every selected creature.
	EffectDamageCreature
	// EffectDiscard discards every selected card.
	EffectDiscard
	// EffectDraw makes the card's owner draw.
	EffectDraw
)

func (k EffectKind) String() string {
	switch k {
	case EffectDamagePlayer:
		return "DAMAGE_PLAYER"
	case EffectDamageCreature:
		return "DAMAGE_CREATURE"
	case EffectDiscard:
		return "DISCARD"
	case EffectDraw:
		return "DRAW"
	default:
		return fmt.Sprintf("EFFECT_%d", int(k))
	}
}

// Effect is one step of an ability.
type Effect struct {
	Kind   EffectKind
	Amount int
}

// Ability is a hook that turns into follow-up actions when it fires.
type Ability struct {
	Type     AbilityType
	Selector *TargetSelector
	Effects  []Effect
}

func (a *Ability) Kind() AttributeKind { return AttributeAbility }

// Reset is a no-op: abilities carry no mutable state.
func (a *Ability) Reset() {}

func (a *Ability) String() string {
	effects := make([]string, 0, len(a.Effects))
	for _, e := range a.Effects {
		effects = append(effects, fmt.Sprintf("%s:%d", e.Kind, e.Amount))
	}
	return fmt.Sprintf("ability:%s:[%s]", a.Type, strings.Join(effects, ","))
}
