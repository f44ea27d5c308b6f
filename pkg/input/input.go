// Package input reads the two-section puzzle input: one "min-max" range per
// line, a blank line, then one query point per line.
package input

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/henderiw/idxrange/pkg/interval"
	utilerrors "k8s.io/apimachinery/pkg/util/errors"
)

type Document struct {
	Ranges []interval.Interval
	Points []int64
}

func ReadFile(path string) (*Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Read(f)
}

// Read parses r. Every malformed line is reported, each prefixed with its
// line number; the returned Document holds the lines that did parse.
func Read(r io.Reader) (*Document, error) {
	doc := &Document{}
	var errs []error

	s := bufio.NewScanner(r)
	line := 0
	inPoints, seen := false, false
	for s.Scan() {
		line++
		text := strings.TrimSpace(s.Text())
		if text == "" {
			// the first blank line separates the sections
			if seen {
				inPoints = true
			}
			continue
		}
		seen = true
		if !inPoints {
			rng, err := interval.Parse(text)
			if err != nil {
				errs = append(errs, fmt.Errorf("line %d: %w", line, err))
				continue
			}
			doc.Ranges = append(doc.Ranges, rng)
			continue
		}
		p, err := strconv.ParseInt(text, 10, 64)
		if err != nil {
			errs = append(errs, fmt.Errorf("line %d: invalid point %q", line, text))
			continue
		}
		doc.Points = append(doc.Points, p)
	}
	if err := s.Err(); err != nil {
		errs = append(errs, err)
	}
	return doc, utilerrors.NewAggregate(errs)
}
