package catalog

import (
	"fmt"

	"github.com/hptcg/hptcg-engine-go/internal/game/model"
)

// DeckEntry is a number of copies of one card.
type DeckEntry struct {
	Name  string
	Count int
}

// DeckList is an ordered deck recipe.
type DeckList []DeckEntry

// Size returns the number of cards in the list.
func (d DeckList) Size() int {
	total := 0
	for _, e := range d {
		total += e.Count
	}
	return total
}

// StarterDeck builds a size-card list for lesson: half lessons, the rest the
// catalog's cards of that lesson in turn.
func (c *Catalog) StarterDeck(lesson model.LessonType, size int) (DeckList, error) {
	lessonName := LessonCardName(lesson)
	if lessonName == "" {
		return nil, fmt.Errorf("starter deck for %s: %w", lesson, ErrUnknownLesson)
	}
	spells := c.ForLesson(lesson)
	if len(spells) == 0 {
		return nil, fmt.Errorf("starter deck for %s: no cards use it", lesson)
	}

	lessons := size / 2
	deck := DeckList{{Name: lessonName, Count: lessons}}
	counts := make([]int, len(spells))
	for i := 0; i < size-lessons; i++ {
		counts[i%len(spells)]++
	}
	for i, data := range spells {
		if counts[i] > 0 {
			deck = append(deck, DeckEntry{Name: data.Name, Count: counts[i]})
		}
	}
	return deck, nil
}

// Build instantiates list into p's deck. Nothing is added when any entry is
// unknown.
func (c *Catalog) Build(p *model.Player, list DeckList) error {
	var cards []*model.Card
	for _, entry := range list {
		data, err := c.Lookup(entry.Name)
		if err != nil {
			return fmt.Errorf("build deck for %s: %w", p, err)
		}
		for range entry.Count {
			cards = append(cards, model.NewCard(data))
		}
	}

	for _, card := range cards {
		if err := p.AddCard(card, model.ZoneDeck); err != nil {
			return fmt.Errorf("build deck for %s: %w", p, err)
		}
	}
	return nil
}
