package model

import (
	"errors"
	"fmt"
)

var (
	// ErrCardNotInZone means a card was missing from the collection its Zone
	// field names. This is a corrupted zone model.
	ErrCardNotInZone = errors.New("card not found in its zone")
	// ErrInvalidZone means a move named zero or several zones.
	ErrInvalidZone = errors.New("zone must name exactly one zone")
	// ErrCardPlaced means a card that already sits in a zone was added again.
	ErrCardPlaced = errors.New("card already placed")
)

// Player is one side of a match.
type Player struct {
	Index            int
	Name             string
	ControlMode      ControlMode
	ActionsAvailable int

	zones map[Zone][]*Card
}

// NewPlayer creates a player with empty zones.
func NewPlayer(index int, name string) *Player {
	p := &Player{
		Index: index,
		Name:  name,
		zones: make(map[Zone][]*Card, len(AllZones)),
	}
	for _, zone := range AllZones {
		p.zones[zone] = make([]*Card, 0)
	}
	return p
}

func (p *Player) String() string {
	return fmt.Sprintf("player%d(%s)", p.Index, p.Name)
}

// Cards returns a copy of the cards in zone, in zone order. The top of the
// deck is the first element.
func (p *Player) Cards(zone Zone) []*Card {
	cards := p.zones[zone]
	out := make([]*Card, len(cards))
	copy(out, cards)
	return out
}

// Count returns the number of cards in zone.
func (p *Player) Count(zone Zone) int {
	return len(p.zones[zone])
}

// Contains reports whether card sits in zone.
func (p *Player) Contains(zone Zone, card *Card) bool {
	return indexOf(p.zones[zone], card) >= 0
}

// AddCard places a new card in zone and makes p its owner.
func (p *Player) AddCard(card *Card, zone Zone) error {
	if !zone.isSingle() {
		return fmt.Errorf("add %s to %s: %w", card, zone, ErrInvalidZone)
	}
	if card.Zone != ZoneNone {
		return fmt.Errorf("add %s to %s: %w", card, zone, ErrCardPlaced)
	}
	card.Owner = p
	card.Zone = zone
	p.zones[zone] = append(p.zones[zone], card)
	return nil
}

// moveCard moves card from its current zone to the end of to. Nothing is
// changed when the card cannot be found.
func (p *Player) moveCard(card *Card, to Zone) error {
	if !to.isSingle() {
		return fmt.Errorf("move %s to %s: %w", card, to, ErrInvalidZone)
	}
	from := card.Zone
	idx := indexOf(p.zones[from], card)
	if idx < 0 {
		return fmt.Errorf("move %s from %s: %w", card, from, ErrCardNotInZone)
	}
	p.zones[from] = append(p.zones[from][:idx], p.zones[from][idx+1:]...)
	p.zones[to] = append(p.zones[to], card)
	card.Zone = to
	return nil
}

// shuffle reorders zone with the provided swap-based permutation.
func (p *Player) shuffle(zone Zone, shuffle func(n int, swap func(i, j int))) {
	cards := p.zones[zone]
	shuffle(len(cards), func(i, j int) {
		cards[i], cards[j] = cards[j], cards[i]
	})
}

// LessonCount sums the lesson amounts provided by the cards in the Lessons
// zone, and reports which lesson types are present.
func (p *Player) LessonCount() (int, LessonType) {
	total := 0
	var types LessonType
	for _, card := range p.zones[ZoneLessons] {
		if provider := card.LessonProvider(); provider != nil {
			total += provider.Amount
			types |= provider.Type
		}
	}
	return total, types
}

func indexOf(cards []*Card, card *Card) int {
	for i, c := range cards {
		if c == card {
			return i
		}
	}
	return -1
}
