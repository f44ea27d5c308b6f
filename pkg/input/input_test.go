package input

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/henderiw/idxrange/pkg/interval"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	utilerrors "k8s.io/apimachinery/pkg/util/errors"
)

func TestReadFile(t *testing.T) {
	doc, err := ReadFile("testdata/sample.txt")
	require.NoError(t, err)

	expected := &Document{
		Ranges: []interval.Interval{
			interval.New(3, 5),
			interval.New(10, 14),
			interval.New(16, 20),
			interval.New(12, 18),
		},
		Points: []int64{1, 5, 8, 11, 17, 32},
	}
	if diff := cmp.Diff(expected, doc, cmp.AllowUnexported(interval.Interval{})); diff != "" {
		t.Errorf("-want, +got:\n%s", diff)
	}

	_, err = ReadFile("testdata/missing.txt")
	assert.Error(t, err)
}

func TestRead(t *testing.T) {
	cases := map[string]struct {
		input          string
		expectedRanges int
		expectedPoints []int64
		expectedErrs   int
	}{
		"RangesOnly": {
			input:          "3-5\n10-14\n",
			expectedRanges: 2,
		},
		"LeadingBlank": {
			input:          "\n\n3-5\n\n7\n",
			expectedRanges: 1,
			expectedPoints: []int64{7},
		},
		"TrailingBlank": {
			input:          "3-5\n\n7\n\n\n",
			expectedRanges: 1,
			expectedPoints: []int64{7},
		},
		"Whitespace": {
			input:          "  3-5 \r\n\r\n -7 \r\n",
			expectedRanges: 1,
			expectedPoints: []int64{-7},
		},
		"BadLines": {
			input:          "3-5\n5-3\nx\n\n7\nseven\n",
			expectedRanges: 1,
			expectedPoints: []int64{7},
			expectedErrs:   3,
		},
		"Empty": {},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			doc, err := Read(strings.NewReader(tc.input))
			require.NotNil(t, doc)
			if tc.expectedErrs > 0 {
				require.Error(t, err)
				var agg utilerrors.Aggregate
				require.True(t, errors.As(err, &agg))
				assert.Len(t, agg.Errors(), tc.expectedErrs)
			} else {
				assert.NoError(t, err)
			}
			assert.Len(t, doc.Ranges, tc.expectedRanges)
			assert.Equal(t, tc.expectedPoints, doc.Points)
		})
	}
}

func TestReadReportsLine(t *testing.T) {
	_, err := Read(strings.NewReader("3-5\n9-2\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "line 2")
	assert.True(t, errors.Is(err, interval.ErrInvalidInterval))
}
