package lexgen

import (
	"sort"
	"strconv"
	"strings"
)

// Item is an immutable, canonically ordered set of leaf references
// derived from a syntax tree. Equality is set equality over leaf
// indices; Key gives a canonical encoding used to intern states.
type Item struct {
	leaves []int
}

func newItem(indices []int) Item {
	set := append([]int(nil), indices...)
	sort.Ints(set)
	set = dedupSorted(set)
	return Item{leaves: set}
}

func dedupSorted(s []int) []int {
	out := s[:0]
	for i, v := range s {
		if i == 0 || v != out[len(out)-1] {
			out = append(out, v)
		}
	}
	return out
}

// Leaves returns the item's leaf indices in canonical (sorted) order.
func (it Item) Leaves() []int { return it.leaves }

// Key returns the canonical encoding two items with equal leaf sets
// share, used by Generator to intern states (§9).
func (it Item) Key() string {
	var b strings.Builder
	for i, l := range it.leaves {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(strconv.Itoa(l))
	}
	return b.String()
}
