package service

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalize(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want string
	}{
		{in: "  Lieben ", want: "lieben"},
		{in: "das   Haus", want: "das haus"},
		{in: "gehen;", want: "gehen"},
		{in: "Frau!?", want: "frau"},
		{in: "   ", want: ""},
	}

	for _, tt := range tests {

		tt := tt
		t.Run(tt.in, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, Normalize(tt.in))
		})
	}
}

func TestTrueMeanings(t *testing.T) {
	t.Parallel()

	got := TrueMeanings("Lieben", []string{"gern haben.", " ", "lieben"})

	assert.Equal(t, map[string]struct{}{"lieben": {}, "gern haben": {}}, got)
}

func TestDistractorGenerator_Build(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		pool      []string
		correct   string
		meanings  []string
		wantFills int
	}{
		{
			name:    "default pool",
			pool:    DefaultDistractorPool(),
			correct: "lieben",
		},
		{
			name:      "pool entries colliding with meanings are dropped",
			pool:      []string{"Lieben", "gern haben", "Haus"},
			correct:   "lieben",
			meanings:  []string{"gern haben"},
			wantFills: 2,
		},
		{
			name:      "empty pool pads with placeholders",
			pool:      nil,
			correct:   "Stadt",
			wantFills: 3,
		},
		{
			name:      "blank and duplicate candidates are skipped",
			pool:      []string{" ", "Haus", "haus.", "Tisch"},
			correct:   "Stadt",
			wantFills: 1,
		},
	}

	for _, tt := range tests {

		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			gen := NewDistractorGenerator(tt.pool, 42)
			meanings := TrueMeanings(tt.correct, tt.meanings)

			for i := 0; i < 50; i++ {
				options, idx := gen.Build(tt.correct, meanings)

				require.Len(t, options, DistractorCount+1)
				require.Equal(t, tt.correct, options[idx])

				seen := 0
				fills := 0
				for j, o := range options {
					if o == tt.correct {
						seen++
						continue
					}
					_, isMeaning := meanings[Normalize(o)]
					assert.False(t, isMeaning, "option %d %q is a true meaning", j, o)
					if strings.HasPrefix(o, "Other wrong translation") {
						fills++
					}
				}
				require.Equal(t, 1, seen)
				assert.Equal(t, tt.wantFills, fills)
			}
		})
	}
}

func TestDistractorGenerator_PlaceholderSkipsMeaning(t *testing.T) {
	t.Parallel()

	gen := NewDistractorGenerator(nil, 1)
	meanings := TrueMeanings("Other wrong translation 1", nil)

	options, idx := gen.Build("Other wrong translation 1", meanings)

	require.Len(t, options, 4)
	assert.Equal(t, "Other wrong translation 1", options[idx])
	assert.ElementsMatch(t, []string{
		"Other wrong translation 1",
		"Other wrong translation 2",
		"Other wrong translation 3",
		"Other wrong translation 4",
	}, options)
}

func TestDefaultDistractorPool(t *testing.T) {
	t.Parallel()

	pool := DefaultDistractorPool()
	require.GreaterOrEqual(t, len(pool), DistractorCount)
	for _, w := range pool {
		assert.NotEmpty(t, w)
		assert.NotEqual(t, '#', rune(w[0]))
	}

	pool[0] = "changed"
	assert.NotEqual(t, "changed", DefaultDistractorPool()[0])
}
