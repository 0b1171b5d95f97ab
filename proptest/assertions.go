package proptest

import (
	"strings"

	"github.com/google/go-cmp/cmp"
	"github.com/vunamdddddds/bookstore/internal/catalog"
	"pgregory.net/rapid"
)

func ids(items []*catalog.Item) []string {
	out := make([]string, len(items))
	for i, it := range items {
		out[i] = it.ID()
	}
	return out
}

func assertSameOrder(t *rapid.T, inv string, expected, actual []*catalog.Item) {
	t.Helper()
	if diff := cmp.Diff(ids(expected), ids(actual)); diff != "" {
		t.Fatalf("[%s] order mismatch (-want +got):\n%s", inv, diff)
	}
}

func assertPermutation(t *rapid.T, before, after []*catalog.Item) {
	t.Helper()
	if len(before) != len(after) {
		t.Fatalf("[%s] violated: length changed from %d to %d", InvSortPermutation, len(before), len(after))
	}
	counts := make(map[*catalog.Item]int)
	for _, it := range before {
		counts[it]++
	}
	for _, it := range after {
		counts[it]--
	}
	for it, n := range counts {
		if n != 0 {
			t.Fatalf("[%s] violated: item %q count off by %d", InvSortPermutation, it.Name(), n)
		}
	}
}

func sortKey(field catalog.SortField, it *catalog.Item) (string, int) {
	switch field {
	case catalog.SortByOwner:
		return strings.ToLower(it.Owner()), 0
	case catalog.SortByYear:
		return "", it.Year()
	default:
		return strings.ToLower(it.Name()), 0
	}
}

func compareKeys(field catalog.SortField, a, b *catalog.Item) int {
	as, ai := sortKey(field, a)
	bs, bi := sortKey(field, b)
	switch {
	case as < bs, as == bs && ai < bi:
		return -1
	case as == bs && ai == bi:
		return 0
	default:
		return 1
	}
}

// assertSortedStable checks ordering by field and that items with equal keys
// kept the relative order they had in before.
func assertSortedStable(t *rapid.T, field catalog.SortField, desc bool, before, after []*catalog.Item) {
	t.Helper()

	position := make(map[*catalog.Item]int, len(before))
	for i, it := range before {
		if _, seen := position[it]; !seen {
			position[it] = i
		}
	}

	for i := 0; i+1 < len(after); i++ {
		a, b := after[i], after[i+1]
		c := compareKeys(field, a, b)
		if desc {
			c = -c
		}
		if c > 0 {
			t.Fatalf("[%s] violated at %d: %q before %q by %s (desc=%v)", InvSortOrdered, i, a, b, field, desc)
		}
		if c == 0 && a != b && position[a] > position[b] {
			t.Fatalf("[%s] violated at %d: %q and %q swapped", InvSortStable, i, a, b)
		}
	}
}
