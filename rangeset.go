package lexgen

import "sort"

// Range is a half-open code-point interval [Begin, End).
type Range struct {
	Begin, End int
}

// RangeSet accumulates half-open ranges and partitions the code-point
// axis at every distinct begin/end boundary any of them introduced. It
// is represented as a sorted sequence of boundaries, each carrying
// whether the span starting at that boundary is covered. Two inserted
// ranges that overlap without being equal (e.g. [0,10) and [5,15))
// must stay cut at their shared boundary even though both sides are
// covered: goto construction (§4.3) relies on every enumerated range
// being contained in the same set of leaf ranges, not merely covered
// by at least one.
type RangeSet struct {
	bounds []rsBound
}

type rsBound struct {
	boundary int
	inside   bool
}

// Clear empties the set, ready for reuse against the next state.
func (r *RangeSet) Clear() {
	r.bounds = r.bounds[:0]
}

// Insert marks [begin, end) as covered. Ranges may be inserted in any
// order and overlapping or repeated ranges are idempotent.
func (r *RangeSet) Insert(begin, end int) {
	if begin >= end {
		return
	}
	r.ensureBoundary(begin)
	r.ensureBoundary(end)
	for i := range r.bounds {
		if r.bounds[i].boundary >= begin && r.bounds[i].boundary < end {
			r.bounds[i].inside = true
		}
	}
}

func (r *RangeSet) ensureBoundary(x int) {
	i := sort.Search(len(r.bounds), func(i int) bool { return r.bounds[i].boundary >= x })
	if i < len(r.bounds) && r.bounds[i].boundary == x {
		return
	}
	prevInside := false
	if i > 0 {
		prevInside = r.bounds[i-1].inside
	}
	r.bounds = append(r.bounds, rsBound{})
	copy(r.bounds[i+1:], r.bounds[i:])
	r.bounds[i] = rsBound{boundary: x, inside: prevInside}
}

// Enumerate returns the current set's covered ranges, sorted and
// non-overlapping, cut at every boundary any Insert introduced. Two
// adjacent covered ranges are never merged even when both are inside:
// they may be covered by different leaves, and callers need to tell
// those apart (see RangeSet's doc comment).
func (r *RangeSet) Enumerate() []Range {
	if len(r.bounds) == 0 {
		return nil
	}
	out := make([]Range, 0, len(r.bounds)/2)
	for i := 0; i < len(r.bounds)-1; i++ {
		if r.bounds[i].inside {
			out = append(out, Range{Begin: r.bounds[i].boundary, End: r.bounds[i+1].boundary})
		}
	}
	return out
}
