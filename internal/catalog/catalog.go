package catalog

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/hptcg/hptcg-engine-go/internal/game/model"
)

var (
	// ErrUnknownCard is returned for a card name the catalog does not hold.
	ErrUnknownCard = errors.New("unknown card")
	// ErrUnknownLesson is returned for an unrecognised lesson name.
	ErrUnknownLesson = errors.New("unknown lesson")
)

// Catalog holds the card templates decks are built from.
type Catalog struct {
	cards map[string]*model.CardData
}

// New creates a catalog from templates. Later templates with a duplicate
// name replace earlier ones.
func New(templates ...*model.CardData) *Catalog {
	c := &Catalog{cards: make(map[string]*model.CardData, len(templates))}
	for _, data := range templates {
		c.cards[data.Name] = data
	}
	return c
}

// Default returns the built-in card set.
func Default() *Catalog {
	return New(builtin()...)
}

// Lookup returns the template called name.
func (c *Catalog) Lookup(name string) (*model.CardData, error) {
	data, ok := c.cards[name]
	if !ok {
		return nil, fmt.Errorf("%q: %w", name, ErrUnknownCard)
	}
	return data, nil
}

// Names returns every template name, sorted.
func (c *Catalog) Names() []string {
	names := make([]string, 0, len(c.cards))
	for name := range c.cards {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ForLesson returns the non-lesson templates that cost lesson, sorted by name.
func (c *Catalog) ForLesson(lesson model.LessonType) []*model.CardData {
	var out []*model.CardData
	for _, name := range c.Names() {
		data := c.cards[name]
		if data.Type == model.CardTypeLesson {
			continue
		}
		if lessonOf(data) == lesson {
			out = append(out, data)
		}
	}
	return out
}

// lessonOf reports the lesson a template costs or provides.
func lessonOf(data *model.CardData) model.LessonType {
	if data.Attributes == nil {
		return model.LessonNone
	}
	for _, attr := range data.Attributes() {
		switch a := attr.(type) {
		case *model.LessonCost:
			return a.Type
		case *model.LessonProvider:
			return a.Type
		}
	}
	return model.LessonNone
}

var lessonsByName = map[string]model.LessonType{
	"creatures":       model.LessonCreatures,
	"charms":          model.LessonCharms,
	"transfiguration": model.LessonTransfiguration,
	"potions":         model.LessonPotions,
	"quidditch":       model.LessonQuidditch,
}

// ParseLesson maps a lesson name such as "charms" to its type.
func ParseLesson(name string) (model.LessonType, error) {
	lesson, ok := lessonsByName[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return model.LessonNone, fmt.Errorf("%q: %w", name, ErrUnknownLesson)
	}
	return lesson, nil
}
