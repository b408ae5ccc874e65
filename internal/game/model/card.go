package model

import (
	"fmt"

	"github.com/google/uuid"
)

// CardData is the immutable template a card is printed from.
type CardData struct {
	Name        string
	Type        CardType
	Description string
	Artwork     string
	// ActionCost is the number of action points spent to play the card.
	ActionCost int
	// Attributes builds a fresh attribute set for each card instance.
	Attributes func() []Attribute
}

// Card is one physical card in a match.
type Card struct {
	ID    string
	Data  *CardData
	Zone  Zone
	Owner *Player

	attributes map[AttributeKind]Attribute
}

// NewCard instantiates a card from its template. The card is not in any zone
// until a player adds it.
func NewCard(data *CardData) *Card {
	card := &Card{
		ID:         uuid.NewString(),
		Data:       data,
		Zone:       ZoneNone,
		attributes: make(map[AttributeKind]Attribute),
	}
	if data.Attributes != nil {
		for _, attr := range data.Attributes() {
			card.SetAttribute(attr)
		}
	}
	return card
}

func (c *Card) String() string {
	return fmt.Sprintf("%s(%s)", c.Data.Name, shortID(c.ID))
}

// Type is a shortcut for the template's card type.
func (c *Card) Type() CardType {
	return c.Data.Type
}

// ActionCost returns the action points needed to play the card (at least 1).
func (c *Card) ActionCost() int {
	if c.Data.ActionCost <= 0 {
		return 1
	}
	return c.Data.ActionCost
}

// SetAttribute stores attr, replacing any attribute of the same kind.
func (c *Card) SetAttribute(attr Attribute) {
	if attr == nil {
		return
	}
	c.attributes[attr.Kind()] = attr
}

// RemoveAttribute drops the attribute of the given kind, if any.
func (c *Card) RemoveAttribute(kind AttributeKind) {
	delete(c.attributes, kind)
}

// Attribute returns the attribute of the given kind.
func (c *Card) Attribute(kind AttributeKind) (Attribute, bool) {
	attr, ok := c.attributes[kind]
	return attr, ok
}

// Attributes returns the card's attributes in canonical kind order.
func (c *Card) Attributes() []Attribute {
	attrs := make([]Attribute, 0, len(c.attributes))
	for _, kind := range AttributeKinds {
		if attr, ok := c.attributes[kind]; ok {
			attrs = append(attrs, attr)
		}
	}
	return attrs
}

// ResetAttributes returns every attribute to its default state.
func (c *Card) ResetAttributes() {
	for _, attr := range c.attributes {
		attr.Reset()
	}
}

func (c *Card) LessonCost() *LessonCost {
	attr, _ := c.attributes[AttributeLessonCost].(*LessonCost)
	return attr
}

func (c *Card) LessonProvider() *LessonProvider {
	attr, _ := c.attributes[AttributeLessonProvider].(*LessonProvider)
	return attr
}

func (c *Card) Creature() *Creature {
	attr, _ := c.attributes[AttributeCreature].(*Creature)
	return attr
}

func (c *Card) ManualTarget() *ManualTarget {
	attr, _ := c.attributes[AttributeManualTarget].(*ManualTarget)
	return attr
}

func (c *Card) Ability() *Ability {
	attr, _ := c.attributes[AttributeAbility].(*Ability)
	return attr
}

// LessonType returns the lesson a card costs, falling back to the lesson it
// provides.
func (c *Card) LessonType() LessonType {
	if cost := c.LessonCost(); cost != nil {
		return cost.Type
	}
	if provider := c.LessonProvider(); provider != nil {
		return provider.Type
	}
	return LessonNone
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
