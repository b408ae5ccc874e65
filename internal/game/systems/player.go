package systems

import (
	"github.com/hptcg/hptcg-engine-go/internal/game/engine"
	"github.com/hptcg/hptcg-engine-go/internal/game/model"
	"go.uber.org/zap"
)

// PlayerSystem is the only system that moves cards between zones.
type PlayerSystem struct {
	engine.GameSystem
}

// NewPlayerSystem creates the zone mover for c.
func NewPlayerSystem(c *engine.Container) *PlayerSystem {
	return &PlayerSystem{GameSystem: engine.NewGameSystem(c, "player")}
}

// ChangeZone moves card into zone. A card missing from its recorded zone is a
// corrupted model and panics.
func (s *PlayerSystem) ChangeZone(card *model.Card, zone model.Zone) {
	from := card.Zone
	if err := s.Match().MoveCard(card, zone); err != nil {
		s.Logger().Panic("zone change failed",
			zap.Stringer("card", card),
			zap.Stringer("from", from),
			zap.Stringer("to", zone),
			zap.Error(err),
		)
	}
	s.Logger().Debug("zone changed",
		zap.Stringer("card", card),
		zap.Stringer("from", from),
		zap.Stringer("to", zone),
	)
}

// ChangeZones moves every card into zone, in order.
func (s *PlayerSystem) ChangeZones(cards []*model.Card, zone model.Zone) {
	for _, card := range cards {
		s.ChangeZone(card, zone)
	}
}
