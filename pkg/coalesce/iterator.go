package coalesce

import "github.com/henderiw/idxrange/pkg/interval"

// Iterator walks a snapshot of the set in ascending (max, min) order.
type Iterator struct {
	current int
	items   []interval.Interval
}

func (r *Iterator) Value() interval.Interval {
	return r.items[r.current]
}

func (r *Iterator) Next() bool {
	r.current++
	return r.current < len(r.items)
}

