package catalog

import "github.com/hptcg/hptcg-engine-go/internal/game/model"

// LessonCardName returns the name of the basic lesson card of a type.
func LessonCardName(lesson model.LessonType) string {
	return lessonCardNames[lesson]
}

var lessonCardNames = map[model.LessonType]string{
	model.LessonCreatures:       "Care of Magical Creatures",
	model.LessonCharms:          "Charms",
	model.LessonTransfiguration: "Transfiguration",
	model.LessonPotions:         "Potions",
	model.LessonQuidditch:       "Quidditch",
}

func lessonCard(lesson model.LessonType) *model.CardData {
	return &model.CardData{
		Name:        lessonCardNames[lesson],
		Type:        model.CardTypeLesson,
		Description: "Provides 1 " + lesson.String() + " lesson.",
		Attributes: func() []model.Attribute {
			return []model.Attribute{model.NewLessonProvider(1, lesson)}
		},
	}
}

func creatureCard(name string, cost, attack, health int, lesson model.LessonType) *model.CardData {
	return &model.CardData{
		Name: name,
		Type: model.CardTypeCreature,
		Attributes: func() []model.Attribute {
			return []model.Attribute{
				model.NewLessonCost(cost, lesson),
				model.NewCreature(attack, health),
			}
		},
	}
}

var opposingCreatures = model.Mark{Alliance: model.AllianceOpponent, Zones: model.ZoneCreatures, CardType: model.CardTypeCreature}

func builtin() []*model.CardData {
	cards := make([]*model.CardData, 0, 20)
	for _, lesson := range []model.LessonType{
		model.LessonCreatures,
		model.LessonCharms,
		model.LessonTransfiguration,
		model.LessonPotions,
		model.LessonQuidditch,
	} {
		cards = append(cards, lessonCard(lesson))
	}

	cards = append(cards,
		creatureCard("Pixie", 2, 1, 1, model.LessonCreatures),
		creatureCard("Hippogriff", 4, 2, 4, model.LessonCreatures),
		creatureCard("Transfigured Toad", 2, 1, 2, model.LessonTransfiguration),
		&model.CardData{
			Name:        "Incendio",
			Type:        model.CardTypeSpell,
			Description: "Do 3 damage to your opponent.",
			Attributes: func() []model.Attribute {
				return []model.Attribute{
					model.NewLessonCost(2, model.LessonCharms),
					&model.Ability{
						Type:    model.AbilityWhenPlayed,
						Effects: []model.Effect{{Kind: model.EffectDamagePlayer, Amount: 3}},
					},
				}
			},
		},
		&model.CardData{
			Name:        "Accio",
			Type:        model.CardTypeSpell,
			Description: "Draw 2 cards.",
			Attributes: func() []model.Attribute {
				return []model.Attribute{
					model.NewLessonCost(1, model.LessonCharms),
					&model.Ability{
						Type:    model.AbilityWhenPlayed,
						Effects: []model.Effect{{Kind: model.EffectDraw, Amount: 2}},
					},
				}
			},
		},
		&model.CardData{
			Name:        "Stupefy",
			Type:        model.CardTypeSpell,
			Description: "Do 4 damage to a creature your opponent controls.",
			Attributes: func() []model.Attribute {
				return []model.Attribute{
					model.NewLessonCost(3, model.LessonCharms),
					model.NewManualTarget(opposingCreatures, 1, 1),
					&model.Ability{
						Type:     model.AbilityWhenPlayed,
						Selector: &model.TargetSelector{Kind: model.SelectManual},
						Effects:  []model.Effect{{Kind: model.EffectDamageCreature, Amount: 4}},
					},
				}
			},
		},
		&model.CardData{
			Name:        "Avifors",
			Type:        model.CardTypeSpell,
			Description: "Discard up to 2 of your opponent's creatures.",
			ActionCost:  2,
			Attributes: func() []model.Attribute {
				return []model.Attribute{
					model.NewLessonCost(4, model.LessonTransfiguration),
					model.NewManualTarget(opposingCreatures, 1, 2),
					&model.Ability{
						Type:     model.AbilityWhenPlayed,
						Selector: &model.TargetSelector{Kind: model.SelectManual},
						Effects:  []model.Effect{{Kind: model.EffectDiscard}},
					},
				}
			},
		},
		&model.CardData{
			Name:        "Shrinking Potion",
			Type:        model.CardTypeSpell,
			Description: "Discard a random lesson your opponent has in play.",
			Attributes: func() []model.Attribute {
				return []model.Attribute{
					model.NewLessonCost(3, model.LessonPotions),
					&model.Ability{
						Type: model.AbilityWhenPlayed,
						Selector: &model.TargetSelector{
							Kind:   model.SelectRandom,
							Mark:   model.Mark{Alliance: model.AllianceOpponent, Zones: model.ZoneLessons, CardType: model.CardTypeLesson},
							Amount: 1,
						},
						Effects: []model.Effect{{Kind: model.EffectDiscard}},
					},
				}
			},
		},
		&model.CardData{
			Name:        "Wiggenweld Potion",
			Type:        model.CardTypeSpell,
			Description: "Draw 3 cards.",
			Attributes: func() []model.Attribute {
				return []model.Attribute{
					model.NewLessonCost(2, model.LessonPotions),
					&model.Ability{
						Type:    model.AbilityWhenPlayed,
						Effects: []model.Effect{{Kind: model.EffectDraw, Amount: 3}},
					},
				}
			},
		},
		&model.CardData{
			Name:        "Cauldron",
			Type:        model.CardTypeItem,
			Description: "A sturdy pewter cauldron.",
			Attributes: func() []model.Attribute {
				return []model.Attribute{model.NewLessonCost(1, model.LessonPotions)}
			},
		},
		&model.CardData{
			Name:        "Bludger",
			Type:        model.CardTypeSpell,
			Description: "Do 2 damage to your opponent.",
			Attributes: func() []model.Attribute {
				return []model.Attribute{
					model.NewLessonCost(1, model.LessonQuidditch),
					&model.Ability{
						Type:    model.AbilityWhenPlayed,
						Effects: []model.Effect{{Kind: model.EffectDamagePlayer, Amount: 2}},
					},
				}
			},
		},
		&model.CardData{
			Name:        "Quaffle",
			Type:        model.CardTypeSpell,
			Description: "Do 1 damage to each creature your opponent controls.",
			Attributes: func() []model.Attribute {
				return []model.Attribute{
					model.NewLessonCost(2, model.LessonQuidditch),
					&model.Ability{
						Type:     model.AbilityWhenPlayed,
						Selector: &model.TargetSelector{Kind: model.SelectAll, Mark: opposingCreatures},
						Effects:  []model.Effect{{Kind: model.EffectDamageCreature, Amount: 1}},
					},
				}
			},
		},
	)
	return cards
}
