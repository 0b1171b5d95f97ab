package proptest

import (
	"github.com/vunamdddddds/bookstore/internal/catalog"
	"pgregory.net/rapid"
)

const (
	InvLenEqualsItems      = "INV-1"
	InvInsertionOrder      = "INV-2"
	InvFindCaseInsensitive = "INV-3"
	InvFindFirstMatch      = "INV-4"
	InvSortOrdered         = "INV-5"
	InvSortStable          = "INV-6"
	InvSortPermutation     = "INV-7"
	InvNotifyOrder         = "INV-8"
	InvCursorSnapshot      = "INV-9"
	InvCursorExhaustion    = "INV-10"
	InvModelConsistent     = "INV-11"
	InvCodecRoundTrip      = "INV-12"
)

func verifyStructuralInvariants(t *rapid.T, cat *catalog.Catalog) {
	items := cat.Items()

	if cat.Len() != len(items) {
		t.Fatalf("[%s] violated: Len()=%d but len(Items())=%d", InvLenEqualsItems, cat.Len(), len(items))
	}

	cur := cat.Cursor()
	if cur.Remaining() != len(items) {
		t.Fatalf("[%s] violated: fresh cursor has %d items, catalog has %d", InvCursorSnapshot, cur.Remaining(), len(items))
	}

	for i, it := range items {
		if it == nil {
			t.Fatalf("[%s] violated: nil item at position %d", InvLenEqualsItems, i)
		}
	}
}
