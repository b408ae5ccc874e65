package game

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"
	"fmt"

	"github.com/hptcg/hptcg-engine-go/internal/game/model"
)

// Checksum returns a SHA-256 digest of the match state. Zone order is part of
// the state, so cards are rendered in zone order rather than sorted.
func Checksum(match *model.Match) string {
	sum := sha256.Sum256([]byte(render(match)))
	return hex.EncodeToString(sum[:])
}

func render(match *model.Match) string {
	var buf bytes.Buffer

	fmt.Fprintf(&buf, "MATCH:%d|%d|%d\n", match.CurrentPlayerIndex, match.TurnNumber, match.Winner)
	for _, p := range match.Players {
		fmt.Fprintf(&buf, "PLAYER:%d|%s|%s|%d\n", p.Index, p.Name, p.ControlMode, p.ActionsAvailable)
		for _, zone := range model.AllZones {
			cards := p.Cards(zone)
			if len(cards) == 0 {
				continue
			}
			fmt.Fprintf(&buf, "  ZONE:%s\n", zone)
			for _, card := range cards {
				fmt.Fprintf(&buf, "    CARD:%s|%s|%s\n", card.ID, card.Data.Name, card.Zone)
				for _, attr := range card.Attributes() {
					fmt.Fprintf(&buf, "      %s\n", attr)
				}
			}
		}
	}
	return buf.String()
}
