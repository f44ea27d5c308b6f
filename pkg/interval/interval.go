package interval

import (
	"errors"
	"fmt"
	"math/big"
	"strconv"
	"strings"
)

// ErrInvalidInterval is returned when an interval has min > max.
var ErrInvalidInterval = errors.New("invalid interval")

// Interval is a closed range [min, max] of signed integers.
// An Interval is never mutated; Merge always returns a new value.
type Interval struct {
	min int64
	max int64
}

// New returns the interval [a, b]. The inputs are not reordered.
func New(a, b int64) Interval {
	return Interval{min: a, max: b}
}

// Parse parses "a-b" where a and b are signed decimal integers,
// e.g. "3-5" or "-10--2".
func Parse(s string) (Interval, error) {
	var r Interval
	s = strings.TrimSpace(s)
	if s == "" {
		return r, fmt.Errorf("empty range")
	}
	// a leading '-' is the sign of the lower bound, not the separator
	h := strings.IndexByte(s[1:], '-')
	if h == -1 {
		return r, fmt.Errorf("no hyphen in range %q", s)
	}
	h++
	from, to := s[:h], s[h+1:]
	min, err := strconv.ParseInt(from, 10, 64)
	if err != nil {
		return r, fmt.Errorf("invalid min %q in range %q", from, s)
	}
	max, err := strconv.ParseInt(to, 10, 64)
	if err != nil {
		return r, fmt.Errorf("invalid max %q in range %q", to, s)
	}
	r = New(min, max)
	if !r.IsValid() {
		return r, fmt.Errorf("range %q: %w", s, ErrInvalidInterval)
	}
	return r, nil
}

// Min returns the lower bound of r.
func (r Interval) Min() int64 { return r.min }

// Max returns the upper bound of r.
func (r Interval) Max() int64 { return r.max }

func (r Interval) String() string {
	return fmt.Sprintf("%d-%d", r.min, r.max)
}

func (r Interval) IsValid() bool {
	return r.min <= r.max
}

// Len returns the number of integers in r, or zero if r is invalid.
func (r Interval) Len() *big.Int {
	if !r.IsValid() {
		return new(big.Int)
	}
	l := new(big.Int).Sub(big.NewInt(r.max), big.NewInt(r.min))
	return l.Add(l, big.NewInt(1))
}

func (r Interval) Contains(point int64) bool {
	return r.min <= point && point <= r.max
}

// Compare orders intervals by max, then by min.
func (r Interval) Compare(other Interval) int {
	switch {
	case r.max < other.max:
		return -1
	case r.max > other.max:
		return 1
	case r.min < other.min:
		return -1
	case r.min > other.min:
		return 1
	}
	return 0
}

func (r Interval) Less(other Interval) bool {
	return r.Compare(other) < 0
}

// Less is the ordering used to key intervals in sorted containers.
func Less(a, b Interval) bool { return a.Less(b) }

// Merge returns the union of r and other when they overlap or touch
// (no integer lies between them). It returns false when a gap of at
// least one integer separates them.
//
//	f----t f----t   touch, merged
//	f----t  f----t  gap of one, not merged
func (r Interval) Merge(other Interval) (Interval, bool) {
	lo, hi := r, other
	if other.min < r.min || (other.min == r.min && other.max < r.max) {
		lo, hi = other, r
	}
	// hi.min > lo.max implies 1 <= hi.min-lo.max < 2^64, exact in uint64
	if hi.min > lo.max && uint64(hi.min)-uint64(lo.max) > 1 {
		return Interval{}, false
	}
	return Interval{
		min: lo.min,
		max: maxInt64(lo.max, hi.max),
	}, true
}

func maxInt64(a, b int64) int64 {
	if a > b {
		return a
	}
	return b
}
