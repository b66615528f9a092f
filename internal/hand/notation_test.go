package hand

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func labels(ls ...Label) map[Label]struct{} {
	set := make(map[Label]struct{}, len(ls))
	for _, l := range ls {
		set[l] = struct{}{}
	}
	return set
}

func TestParseNotation(t *testing.T) {
	tests := []struct {
		notation string
		want     map[Label]struct{}
	}{
		{"AA", labels("AA")},
		{"AA, KK", labels("AA", "KK")},
		{"AKs", labels("AKs")},
		{"QJo", labels("QJo")},
		{"AK", labels("AKs", "AKo")},
		{"QQ+", labels("QQ", "KK", "AA")},
		{"ATs+", labels("ATs", "AJs", "AQs", "AKs")},
		{"KJo+", labels("KJo", "KQo")},
		{"22-44", labels("22", "33", "44")},
		{"44-22", labels("22", "33", "44")},
		{"A5s-A2s", labels("A2s", "A3s", "A4s", "A5s")},
	}

	for _, tt := range tests {
		t.Run(tt.notation, func(t *testing.T) {
			got, err := ParseNotation(tt.notation)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseNotationErrors(t *testing.T) {
	for _, notation := range []string{
		"ZZ",
		"AAs",
		"AAs+",
		"AKx",
		"AKs-QJs", // different high cards
		"A",
	} {
		t.Run(notation, func(t *testing.T) {
			_, err := ParseNotation(notation)
			assert.Error(t, err)
		})
	}
}

func TestParseNotationIgnoresEmptyParts(t *testing.T) {
	got, err := ParseNotation(" AA ,, KK , ")
	require.NoError(t, err)
	assert.Equal(t, labels("AA", "KK"), got)
}

func TestRenderNotation(t *testing.T) {
	tests := []struct {
		name string
		set  map[Label]struct{}
		want string
	}{
		{"single pair", labels("TT"), "TT"},
		{"pairs to ace", labels("QQ", "KK", "AA"), "QQ+"},
		{"pair span", labels("22", "33", "44"), "44-22"},
		{"kickers to connector", labels("ATs", "AJs", "AQs", "AKs"), "ATs+"},
		{"lone connector", labels("AKs"), "AKs"},
		{"kicker span", labels("A2s", "A3s", "A4s", "A5s"), "A5s-A2s"},
		{"single offsuit", labels("72o"), "72o"},
		{"empty", labels(), ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, RenderNotation(tt.set))
		})
	}
}

func TestNotationRoundTrip(t *testing.T) {
	sets := []map[Label]struct{}{
		labels("AA", "KK", "QQ", "ATs", "AJs", "AQs", "AKs", "72o"),
		labels("22", "33", "55", "66", "77"),
		labels("KQs", "KJs", "K9s", "QJo", "QTo"),
	}
	for _, set := range sets {
		rendered := RenderNotation(set)
		parsed, err := ParseNotation(rendered)
		require.NoError(t, err, "notation %q", rendered)
		assert.Equal(t, set, parsed, "notation %q", rendered)
	}
}
