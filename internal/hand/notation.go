package hand

import (
	"fmt"
	"sort"
	"strings"
)

// ParseNotation expands a comma-separated range notation into the set
// of grid labels it covers. Supported parts: single hands ("AA",
// "AKs", "QJo"), bare unpaired hands covering both forms ("AK"), plus
// ranges ("TT+", "ATs+", "KJo+") and dash spans ("22-66", "A5s-A2s").
func ParseNotation(notation string) (map[Label]struct{}, error) {
	set := make(map[Label]struct{})

	for part := range strings.SplitSeq(notation, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		if err := addPart(set, part); err != nil {
			return nil, fmt.Errorf("invalid range part %q: %w", part, err)
		}
	}

	return set, nil
}

func addPart(set map[Label]struct{}, part string) error {
	if strings.HasSuffix(part, "+") {
		return addPlus(set, strings.TrimSuffix(part, "+"))
	}
	if strings.Contains(part, "-") {
		return addSpan(set, part)
	}
	return addSingle(set, part)
}

func addSingle(set map[Label]struct{}, part string) error {
	switch len(part) {
	case 2:
		hi, lo := rankValue(part[0]), rankValue(part[1])
		if hi == 0 || lo == 0 {
			return fmt.Errorf("invalid rank")
		}
		if hi == lo {
			set[pairLabel(hi)] = struct{}{}
			return nil
		}
		// Bare unpaired notation covers both suited and offsuit.
		set[unpairedLabel(hi, lo, 's')] = struct{}{}
		set[unpairedLabel(hi, lo, 'o')] = struct{}{}
		return nil
	case 3:
		l := Label(part)
		if l.Shape() == Malformed {
			return fmt.Errorf("invalid notation")
		}
		hi, lo := rankValue(part[0]), rankValue(part[1])
		set[unpairedLabel(hi, lo, part[2])] = struct{}{}
		return nil
	default:
		return fmt.Errorf("invalid notation length")
	}
}

// addPlus handles "TT+" (pairs upward) and "ATs+"/"KJo+"/"AT+"
// (kickers upward to one below the high card).
func addPlus(set map[Label]struct{}, base string) error {
	if len(base) < 2 || len(base) > 3 {
		return fmt.Errorf("invalid base notation")
	}
	hi, lo := rankValue(base[0]), rankValue(base[1])
	if hi == 0 || lo == 0 {
		return fmt.Errorf("invalid rank")
	}

	if hi == lo {
		if len(base) == 3 {
			return fmt.Errorf("pairs take no suited/offsuit modifier")
		}
		for r := hi; r <= 14; r++ {
			set[pairLabel(r)] = struct{}{}
		}
		return nil
	}

	suffixes, err := spanSuffixes(base)
	if err != nil {
		return err
	}
	for r := lo; r < hi; r++ {
		for _, suffix := range suffixes {
			set[unpairedLabel(hi, r, suffix)] = struct{}{}
		}
	}
	return nil
}

// addSpan handles "22-66" and same-high-card spans like "A5s-A2s".
func addSpan(set map[Label]struct{}, part string) error {
	first, second, ok := strings.Cut(part, "-")
	if !ok {
		return fmt.Errorf("invalid span")
	}
	first = strings.TrimSpace(first)
	second = strings.TrimSpace(second)
	if len(first) < 2 || len(second) < 2 {
		return fmt.Errorf("invalid span endpoint")
	}

	fHi, fLo := rankValue(first[0]), rankValue(first[1])
	sHi, sLo := rankValue(second[0]), rankValue(second[1])
	if fHi == 0 || fLo == 0 || sHi == 0 || sLo == 0 {
		return fmt.Errorf("invalid rank in span")
	}

	// Pair spans.
	if fHi == fLo && sHi == sLo {
		for r := min(fHi, sHi); r <= max(fHi, sHi); r++ {
			set[pairLabel(r)] = struct{}{}
		}
		return nil
	}

	// Same high card, varying kicker.
	if fHi == sHi {
		suffixes, err := spanSuffixes(first)
		if err != nil {
			return err
		}
		for r := min(fLo, sLo); r <= max(fLo, sLo); r++ {
			for _, suffix := range suffixes {
				set[unpairedLabel(fHi, r, suffix)] = struct{}{}
			}
		}
		return nil
	}

	return fmt.Errorf("unsupported span form")
}

func spanSuffixes(base string) ([]byte, error) {
	if len(base) == 2 {
		return []byte{'s', 'o'}, nil
	}
	switch base[2] {
	case 's', 'o':
		return []byte{base[2]}, nil
	default:
		return nil, fmt.Errorf("invalid modifier %q", base[2])
	}
}

func rankChar(v int) byte {
	return Ranks[14-v]
}

func pairLabel(v int) Label {
	c := rankChar(v)
	return Label([]byte{c, c})
}

func unpairedLabel(hi, lo int, suffix byte) Label {
	if lo > hi {
		hi, lo = lo, hi
	}
	return Label([]byte{rankChar(hi), rankChar(lo), suffix})
}

// RenderNotation writes a label set back to compact notation: pair
// runs collapse to "TT+" or "66-22" style spans, unpaired runs with a
// shared high card collapse to "ATs+" or "A5s-A2s". Output is ordered
// pairs first, then suited then offsuit groups by descending high
// card. Malformed labels in the set are skipped.
func RenderNotation(set map[Label]struct{}) string {
	var pairs []int
	suited := make(map[int][]int)
	offsuit := make(map[int][]int)

	for l := range set {
		hi, lo, ok := l.Ranks()
		if !ok {
			continue
		}
		switch l.Shape() {
		case Pair:
			pairs = append(pairs, rankValue(hi))
		case Suited:
			suited[rankValue(hi)] = append(suited[rankValue(hi)], rankValue(lo))
		case Offsuit:
			offsuit[rankValue(hi)] = append(offsuit[rankValue(hi)], rankValue(lo))
		}
	}

	var parts []string
	parts = append(parts, renderPairRuns(pairs)...)
	parts = append(parts, renderUnpairedRuns(suited, 's')...)
	parts = append(parts, renderUnpairedRuns(offsuit, 'o')...)
	return strings.Join(parts, ",")
}

func renderPairRuns(values []int) []string {
	var parts []string
	for _, run := range descendingRuns(values) {
		top, bottom := run[0], run[1]
		switch {
		case top == 14 && bottom == 14:
			parts = append(parts, string(pairLabel(14)))
		case top == 14:
			parts = append(parts, string(pairLabel(bottom))+"+")
		case top == bottom:
			parts = append(parts, string(pairLabel(top)))
		default:
			parts = append(parts, fmt.Sprintf("%s-%s", pairLabel(top), pairLabel(bottom)))
		}
	}
	return parts
}

func renderUnpairedRuns(groups map[int][]int, suffix byte) []string {
	his := make([]int, 0, len(groups))
	for hi := range groups {
		his = append(his, hi)
	}
	sort.Sort(sort.Reverse(sort.IntSlice(his)))

	var parts []string
	for _, hi := range his {
		for _, run := range descendingRuns(groups[hi]) {
			top, bottom := run[0], run[1]
			switch {
			case top == hi-1 && bottom == top:
				// A lone connector like "AKs" stays a single hand.
				parts = append(parts, string(unpairedLabel(hi, top, suffix)))
			case top == hi-1:
				parts = append(parts, string(unpairedLabel(hi, bottom, suffix))+"+")
			case top == bottom:
				parts = append(parts, string(unpairedLabel(hi, top, suffix)))
			default:
				parts = append(parts, fmt.Sprintf("%s-%s",
					unpairedLabel(hi, top, suffix), unpairedLabel(hi, bottom, suffix)))
			}
		}
	}
	return parts
}

// descendingRuns sorts values descending, dedupes them and returns
// maximal consecutive runs as [top, bottom] pairs.
func descendingRuns(values []int) [][2]int {
	if len(values) == 0 {
		return nil
	}
	sort.Sort(sort.Reverse(sort.IntSlice(values)))

	var runs [][2]int
	top, prev := values[0], values[0]
	for _, v := range values[1:] {
		if v == prev || v == prev-1 {
			if v == prev-1 {
				prev = v
			}
			continue
		}
		runs = append(runs, [2]int{top, prev})
		top, prev = v, v
	}
	runs = append(runs, [2]int{top, prev})
	return runs
}
