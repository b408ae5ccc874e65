package model

import (
	"fmt"
	"strings"
)

// Zone identifies a per-player card container. Zones are bit flags so a Mark
// can address several of them at once.
type Zone uint16

// ZoneNone marks a card that has not been placed yet.
const ZoneNone Zone = 0

const (
	ZoneDeck Zone = 1 << iota
	ZoneDiscard
	ZoneHand
	ZoneCharacters
	ZoneLessons
	ZoneCreatures
	ZoneItems
	ZoneLocation
	ZoneMatch
	ZoneAdventure
)

// AllZones lists every concrete zone in canonical order.
var AllZones = []Zone{
	ZoneDeck,
	ZoneDiscard,
	ZoneHand,
	ZoneCharacters,
	ZoneLessons,
	ZoneCreatures,
	ZoneItems,
	ZoneLocation,
	ZoneMatch,
	ZoneAdventure,
}

const boardZones = ZoneCharacters |
	ZoneLessons |
	ZoneCreatures |
	ZoneItems |
	ZoneLocation |
	ZoneMatch |
	ZoneAdventure

var zoneNames = map[Zone]string{
	ZoneNone:       "NONE",
	ZoneDeck:       "DECK",
	ZoneDiscard:    "DISCARD",
	ZoneHand:       "HAND",
	ZoneCharacters: "CHARACTERS",
	ZoneLessons:    "LESSONS",
	ZoneCreatures:  "CREATURES",
	ZoneItems:      "ITEMS",
	ZoneLocation:   "LOCATION",
	ZoneMatch:      "MATCH",
	ZoneAdventure:  "ADVENTURE",
}

func (z Zone) String() string {
	if name, ok := zoneNames[z]; ok {
		return name
	}
	var parts []string
	for _, zone := range AllZones {
		if z&zone != 0 {
			parts = append(parts, zoneNames[zone])
		}
	}
	if len(parts) == 0 {
		return fmt.Sprintf("ZONE_%d", uint16(z))
	}
	return strings.Join(parts, "|")
}

// HasZone reports whether every bit of z is contained in target.
func (z Zone) HasZone(target Zone) bool {
	return z&target == z
}

// IsInBoard reports whether z overlaps the zones laid out on the table.
func (z Zone) IsInBoard() bool {
	return z&boardZones != 0
}

// IsInPlay reports whether z is exactly one of the in-play zones.
func (z Zone) IsInPlay() bool {
	switch z {
	case ZoneItems, ZoneCreatures, ZoneLocation, ZoneMatch, ZoneCharacters, ZoneAdventure, ZoneLessons:
		return true
	default:
		return false
	}
}

// isSingle reports whether z names exactly one concrete zone.
func (z Zone) isSingle() bool {
	_, ok := zoneNames[z]
	return ok && z != ZoneNone
}
