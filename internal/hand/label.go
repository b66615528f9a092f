// Package hand provides starting-hand notation for the 13x13 preflop
// grid: label parsing, combination counts and card visuals.
package hand

// Ranks lists the thirteen rank characters in grid order, high to low.
const Ranks = "AKQJT98765432"

// Label is a canonical starting-hand notation: a pocket pair ("77"),
// a suited hand ("AKs") or an offsuit hand ("72o").
type Label string

// Shape classifies the structural form of a label.
type Shape int

const (
	Malformed Shape = iota
	Pair
	Suited
	Offsuit
)

// String returns the shape name.
func (s Shape) String() string {
	switch s {
	case Pair:
		return "pair"
	case Suited:
		return "suited"
	case Offsuit:
		return "offsuit"
	default:
		return "malformed"
	}
}

// rankValue converts a rank character to its numeric value (2-14),
// or 0 for anything that is not a rank.
func rankValue(c byte) int {
	switch c {
	case '2', '3', '4', '5', '6', '7', '8', '9':
		return int(c - '0')
	case 'T':
		return 10
	case 'J':
		return 11
	case 'Q':
		return 12
	case 'K':
		return 13
	case 'A':
		return 14
	default:
		return 0
	}
}

// Shape returns the structural form of the label. Labels that do not
// match the pair/suited/offsuit grammar are Malformed.
func (l Label) Shape() Shape {
	switch len(l) {
	case 2:
		if rankValue(l[0]) == 0 || rankValue(l[1]) == 0 {
			return Malformed
		}
		if l[0] == l[1] {
			return Pair
		}
		return Malformed
	case 3:
		if rankValue(l[0]) == 0 || rankValue(l[1]) == 0 || l[0] == l[1] {
			return Malformed
		}
		switch l[2] {
		case 's':
			return Suited
		case 'o':
			return Offsuit
		}
	}
	return Malformed
}

// Combinations returns the number of concrete two-card combinations
// the label stands for: 6 for a pair, 4 suited, 12 offsuit. Malformed
// labels count zero. The 169 canonical labels sum to 1326, the number
// of two-card draws from a 52-card deck.
func (l Label) Combinations() int {
	switch l.Shape() {
	case Pair:
		return 6
	case Suited:
		return 4
	case Offsuit:
		return 12
	default:
		return 0
	}
}

// Ranks returns the two rank characters of the label, high rank first
// as written. ok is false for labels too short to carry two ranks.
func (l Label) Ranks() (hi, lo byte, ok bool) {
	if len(l) < 2 || rankValue(l[0]) == 0 || rankValue(l[1]) == 0 {
		return 0, 0, false
	}
	return l[0], l[1], true
}
