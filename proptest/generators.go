package proptest

import (
	"github.com/vunamdddddds/bookstore/internal/catalog"
	"pgregory.net/rapid"
)

var queryGen = rapid.StringMatching(`[a-zA-Z]{1,10}`)

func nameGen() *rapid.Generator[string] {
	return rapid.OneOf(
		rapid.StringMatching(`[a-zA-Z][a-zA-Z0-9 .:-]{0,30}`),
		rapid.SampledFrom([]string{"Dune", "dune", "DUNE", "Clean Code", ""}),
	)
}

func ownerGen() *rapid.Generator[string] {
	return rapid.OneOf(
		rapid.StringMatching(`[A-Z][a-z]{1,10} [A-Z][a-z]{1,12}`),
		rapid.Just(""),
	)
}

// Small range so that equal years show up often.
func yearGen() *rapid.Generator[int] {
	return rapid.IntRange(-5, 5).Map(func(n int) int { return 2000 + n })
}

func sortFieldGen() *rapid.Generator[catalog.SortField] {
	return rapid.SampledFrom(catalog.SortFields())
}

func strategyGen() *rapid.Generator[catalog.SortStrategy] {
	return rapid.Custom(func(t *rapid.T) catalog.SortStrategy {
		s, err := catalog.StrategyFor(sortFieldGen().Draw(t, "field"), rapid.Bool().Draw(t, "desc"))
		if err != nil {
			t.Fatalf("strategy: %v", err)
		}
		return s
	})
}

// caseVariant returns s with the case of each ASCII letter drawn at random.
func caseVariant(t *rapid.T, s string) string {
	out := []byte(s)
	for i, c := range out {
		if !rapid.Bool().Draw(t, "flip") {
			continue
		}
		switch {
		case c >= 'a' && c <= 'z':
			out[i] = c - 'a' + 'A'
		case c >= 'A' && c <= 'Z':
			out[i] = c - 'A' + 'a'
		}
	}
	return string(out)
}
