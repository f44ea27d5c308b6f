package coalesce

import (
	"errors"
	"fmt"
	"math"
	"math/big"
	"strings"

	"github.com/google/btree"
	"github.com/henderiw/idxrange/pkg/interval"
)

// Set is an ordered set of intervals kept minimal on every insert: no two
// stored intervals overlap or touch. A Set is not safe for concurrent use.
type Set interface {
	Insert(min, max int64) error
	InsertInterval(i interval.Interval) error
	InsertAll(rr []interval.Interval) error

	Contains(point int64) bool
	Count(points []int64) int
	TotalCovered() *big.Int

	Len() int
	Intervals() []interval.Interval
	Iterate() *Iterator
	Validate() error
	String() string
}

const degree = 16

func New() Set {
	return &set{
		tree: btree.NewG[interval.Interval](degree, interval.Less),
	}
}

type set struct {
	tree *btree.BTreeG[interval.Interval]
}

func (r *set) Insert(min, max int64) error {
	return r.InsertInterval(interval.New(min, max))
}

func (r *set) InsertInterval(i interval.Interval) error {
	if !i.IsValid() {
		return fmt.Errorf("insert %s: %w", i, interval.ErrInvalidInterval)
	}
	merged, absorbed := r.neighbours(i)
	for _, n := range absorbed {
		r.tree.Delete(n)
	}
	r.tree.ReplaceOrInsert(merged)
	return nil
}

// InsertAll inserts rr in order. Invalid intervals are skipped and
// reported together once all valid ones are inserted.
func (r *set) InsertAll(rr []interval.Interval) error {
	var errm error
	for _, i := range rr {
		if err := r.InsertInterval(i); err != nil {
			errm = errors.Join(errm, err)
		}
	}
	return errm
}

// neighbours returns the union of c with every stored interval it
// overlaps or touches, and the stored intervals absorbed into it. It does
// not mutate the tree.
//
// Stored intervals are disjoint and non-touching, so ordering them by max
// orders them by min as well. Nothing with max < c.min-1 can merge, and
// the first stored interval after that point that does not merge starts
// beyond the grown candidate, as does everything after it.
func (r *set) neighbours(c interval.Interval) (interval.Interval, []interval.Interval) {
	var absorbed []interval.Interval
	r.tree.AscendGreaterOrEqual(pivot(c.Min()), func(s interval.Interval) bool {
		m, ok := c.Merge(s)
		if !ok {
			return false
		}
		absorbed = append(absorbed, s)
		c = m
		return true
	})
	return c, absorbed
}

// pivot returns the smallest key whose max is min-1.
func pivot(min int64) interval.Interval {
	if min == math.MinInt64 {
		return interval.New(math.MinInt64, math.MinInt64)
	}
	return interval.New(math.MinInt64, min-1)
}

// Contains reports whether some stored interval holds point. The first
// stored interval with max >= point is the only candidate.
func (r *set) Contains(point int64) bool {
	found := false
	r.tree.AscendGreaterOrEqual(interval.New(math.MinInt64, point), func(s interval.Interval) bool {
		found = s.Contains(point)
		return false
	})
	return found
}

// Count returns how many of points are covered; duplicates count once
// per occurrence.
func (r *set) Count(points []int64) int {
	count := 0
	for _, p := range points {
		if r.Contains(p) {
			count++
		}
	}
	return count
}

func (r *set) TotalCovered() *big.Int {
	total := new(big.Int)
	r.tree.Ascend(func(s interval.Interval) bool {
		total.Add(total, s.Len())
		return true
	})
	return total
}

func (r *set) Len() int {
	return r.tree.Len()
}

func (r *set) Intervals() []interval.Interval {
	out := make([]interval.Interval, 0, r.tree.Len())
	r.tree.Ascend(func(s interval.Interval) bool {
		out = append(out, s)
		return true
	})
	return out
}

func (r *set) Iterate() *Iterator {
	return &Iterator{current: -1, items: r.Intervals()}
}

// Validate checks that the stored intervals are valid and that no two of
// them overlap or touch. A failure indicates a bug in the set.
func (r *set) Validate() error {
	var errm error
	var prev *interval.Interval
	r.tree.Ascend(func(s interval.Interval) bool {
		if !s.IsValid() {
			errm = errors.Join(errm, fmt.Errorf("stored %s: %w", s, interval.ErrInvalidInterval))
		}
		if prev != nil {
			if _, ok := prev.Merge(s); ok {
				errm = errors.Join(errm, fmt.Errorf("stored %s and %s overlap or touch", *prev, s))
			}
		}
		prev = &s
		return true
	})
	return errm
}

func (r *set) String() string {
	var sb strings.Builder
	sb.WriteByte('[')
	first := true
	r.tree.Ascend(func(s interval.Interval) bool {
		if !first {
			sb.WriteByte(' ')
		}
		first = false
		sb.WriteString(s.String())
		return true
	})
	sb.WriteByte(']')
	return sb.String()
}
