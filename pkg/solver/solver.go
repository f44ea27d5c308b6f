package solver

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"

	"github.com/henderiw/idxrange/pkg/coalesce"
	"github.com/henderiw/idxrange/pkg/input"
	"github.com/henderiw/idxrange/pkg/interval"
	"github.com/henderiw/idxrange/pkg/logging"
)

type Part int

const (
	// PartMembership counts the query points covered by the ranges.
	PartMembership Part = 1
	// PartCoverage counts every integer covered by the ranges.
	PartCoverage Part = 2
)

func ParsePart(s string) (Part, error) {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("invalid part %q", s)
	}
	p := Part(n)
	if !p.IsValid() {
		return 0, fmt.Errorf("unknown part %d", n)
	}
	return p, nil
}

func (p Part) IsValid() bool {
	return p == PartMembership || p == PartCoverage
}

func (p Part) String() string {
	switch p {
	case PartMembership:
		return "membership"
	case PartCoverage:
		return "coverage"
	}
	return fmt.Sprintf("part(%d)", int(p))
}

type Result struct {
	Part      int      `json:"part" yaml:"part"`
	Mode      string   `json:"mode" yaml:"mode"`
	Intervals []string `json:"intervals" yaml:"intervals"`
	Answer    string   `json:"answer" yaml:"answer"`
}

// checkEvery is how many insertions run between context checks.
const checkEvery = 1024

type Solver struct {
	log *slog.Logger
}

func New(log *slog.Logger) *Solver {
	if log == nil {
		log = logging.Discard()
	}
	return &Solver{log: log}
}

// Build coalesces the document ranges in input order.
func (r *Solver) Build(ctx context.Context, doc *input.Document) (coalesce.Set, error) {
	s := coalesce.New()
	for i, rng := range doc.Ranges {
		if i%checkEvery == 0 {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
		}
		if err := s.InsertInterval(rng); err != nil {
			return nil, fmt.Errorf("range %d: %w", i+1, err)
		}
		r.log.Debug("inserted", "range", rng.String(), "stored", s.Len())
	}
	return s, nil
}

func (r *Solver) Solve(ctx context.Context, doc *input.Document, part Part) (*Result, error) {
	if !part.IsValid() {
		return nil, fmt.Errorf("unknown part %d", int(part))
	}
	s, err := r.Build(ctx, doc)
	if err != nil {
		return nil, err
	}

	res := &Result{
		Part:      int(part),
		Mode:      part.String(),
		Intervals: intervalStrings(s.Intervals()),
	}
	switch part {
	case PartMembership:
		res.Answer = strconv.Itoa(s.Count(doc.Points))
	case PartCoverage:
		res.Answer = s.TotalCovered().String()
	}
	r.log.Info("solved",
		"mode", res.Mode,
		"ranges", len(doc.Ranges),
		"points", len(doc.Points),
		"coalesced", s.Len(),
		"answer", res.Answer,
	)
	return res, nil
}

func intervalStrings(rr []interval.Interval) []string {
	out := make([]string, 0, len(rr))
	for _, r := range rr {
		out = append(out, r.String())
	}
	return out
}
