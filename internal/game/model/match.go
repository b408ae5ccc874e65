package model

import (
	"fmt"
	"math/rand"
)

// NoWinner is the Winner value while a match is still running.
const NoWinner = -1

// Match is the root aggregate of a game.
type Match struct {
	Players            [2]*Player
	CurrentPlayerIndex int
	TurnNumber         int
	Winner             int
}

// NewMatch creates a match between two empty players.
func NewMatch(name0, name1 string) *Match {
	return &Match{
		Players: [2]*Player{
			NewPlayer(0, name0),
			NewPlayer(1, name1),
		},
		Winner: NoWinner,
	}
}

// CurrentPlayer returns the player whose turn it is.
func (m *Match) CurrentPlayer() *Player {
	return m.Players[m.CurrentPlayerIndex]
}

// OpponentOf returns the other player.
func (m *Match) OpponentOf(p *Player) *Player {
	return m.Players[1-p.Index]
}

// IsGameOver reports whether a winner has been decided.
func (m *Match) IsGameOver() bool {
	return m.Winner != NoWinner
}

// MoveCard moves card into to within its owner's zones. The move either
// completes or leaves the match untouched.
func (m *Match) MoveCard(card *Card, to Zone) error {
	if card.Owner == nil {
		return fmt.Errorf("move %s: %w", card, ErrCardNotInZone)
	}
	return card.Owner.moveCard(card, to)
}

// Shuffle randomises the order of a player's zone.
func (m *Match) Shuffle(p *Player, zone Zone, rng *rand.Rand) {
	p.shuffle(zone, rng.Shuffle)
}

// CheckZones verifies that every card appears in exactly one zone collection
// and that the collection matches the card's Zone field.
func (m *Match) CheckZones() error {
	seen := make(map[*Card]Zone)
	for _, p := range m.Players {
		for _, zone := range AllZones {
			for _, card := range p.zones[zone] {
				if prev, dup := seen[card]; dup {
					return fmt.Errorf("%s found in %s and %s", card, prev, zone)
				}
				seen[card] = zone
				if card.Zone != zone {
					return fmt.Errorf("%s recorded in %s but stored in %s", card, card.Zone, zone)
				}
				if card.Owner != p {
					return fmt.Errorf("%s stored under %s but owned by %s", card, p, card.Owner)
				}
			}
		}
	}
	return nil
}
