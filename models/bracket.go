package models

import "time"

// DrawSize is the number of slots in the first knockout round: four pairings,
// filled by the winner and runner-up of each of the four groups.
const DrawSize = 8

type BracketPairing struct {
	Home string `json:"home"`
	Away string `json:"away"`
}

// BracketDraw is the ordered assignment of qualifiers to the first knockout
// round. Consecutive slot pairs form a pairing: slots[0] vs slots[1] and so
// on. The draw lives in process memory only and is replaced wholesale on
// reshuffle.
type BracketDraw struct {
	Slots       [DrawSize]string `json:"slots"`
	GeneratedAt time.Time        `json:"generated_at"`
}

func (d *BracketDraw) Pairings() []BracketPairing {
	pairings := make([]BracketPairing, 0, DrawSize/2)
	for i := 0; i+1 < DrawSize; i += 2 {
		pairings = append(pairings, BracketPairing{Home: d.Slots[i], Away: d.Slots[i+1]})
	}
	return pairings
}
