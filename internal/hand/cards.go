package hand

import (
	rand "math/rand/v2"
)

// Suit represents a card suit.
type Suit int

const (
	Spades Suit = iota
	Hearts
	Diamonds
	Clubs
)

// Glyph returns the suit symbol.
func (s Suit) Glyph() string {
	switch s {
	case Spades:
		return "♠"
	case Hearts:
		return "♥"
	case Diamonds:
		return "♦"
	case Clubs:
		return "♣"
	default:
		return "?"
	}
}

// Color returns the fixed display color for the suit.
func (s Suit) Color() string {
	switch s {
	case Spades:
		return "#9CA3AF"
	case Hearts:
		return "#EF4444"
	case Diamonds:
		return "#3B82F6"
	case Clubs:
		return "#22C55E"
	default:
		return "#FFFFFF"
	}
}

// Card is a single visualised card: a rank character and a suit.
type Card struct {
	Rank byte
	Suit Suit
}

// Display returns the rank as shown on the card face. Tens render as
// "10", every other rank as its single character.
func (c Card) Display() string {
	if c.Rank == 'T' {
		return "10"
	}
	return string(c.Rank)
}

// String returns the card as rank plus suit glyph, e.g. "A♠".
func (c Card) String() string {
	return c.Display() + c.Suit.Glyph()
}

// defaultVisual is the fallback pair shown for labels whose ranks
// cannot be parsed.
var defaultVisual = [2]Card{
	{Rank: 'A', Suit: Spades},
	{Rank: 'A', Suit: Hearts},
}

// CardVisuals derives the two-card visual for a label. When fixed
// cards are supplied they are used verbatim, which keeps rendering
// deterministic. Otherwise ranks come from the label and suits are
// drawn from rng: pairs and offsuit hands get two distinct suits,
// suited hands share one. A nil rng falls back to the global source.
func CardVisuals(l Label, rng *rand.Rand, fixed ...Card) [2]Card {
	if len(fixed) >= 2 {
		return [2]Card{fixed[0], fixed[1]}
	}

	hi, lo, ok := l.Ranks()
	if !ok {
		return defaultVisual
	}

	intn := rand.IntN
	if rng != nil {
		intn = rng.IntN
	}

	if l.Shape() == Suited {
		suit := Suit(intn(4))
		return [2]Card{{Rank: hi, Suit: suit}, {Rank: lo, Suit: suit}}
	}

	// Pairs, offsuit hands and ambiguous two-character labels all get
	// two distinct suits.
	first := Suit(intn(4))
	second := Suit(intn(3))
	if second >= first {
		second++
	}
	return [2]Card{{Rank: hi, Suit: first}, {Rank: lo, Suit: second}}
}
