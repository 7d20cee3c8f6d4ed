package sweepline

import (
	"bytes"
	"math/big"
	"strings"
	"testing"

	"github.com/tdewolff/parse/v2"
	"github.com/tdewolff/test"
)

func TestParseSegments(t *testing.T) {
	var tts = []struct {
		in   string
		segs []Segment
	}{
		{"", []Segment{}},
		{" \n\t", []Segment{}},
		{"1 2 3 4", []Segment{Seg(1, 2, 3, 4)}},
		{"1 2 3 4\n-5 6 7 -8\n", []Segment{Seg(1, 2, 3, 4), Seg(-5, 6, 7, -8)}},
		{"1,2,3,4 5, 6, 7, 8", []Segment{Seg(1, 2, 3, 4), Seg(5, 6, 7, 8)}},
		{"1 2\n3 4", []Segment{Seg(1, 2, 3, 4)}},
		{"1/2 0.25 1e2 -6/4", []Segment{{Point{big.NewRat(1, 2), big.NewRat(1, 4)}, Point{big.NewRat(100, 1), big.NewRat(-3, 2)}}}},
	}
	for _, tt := range tts {
		t.Run(tt.in, func(t *testing.T) {
			segs, err := ParseSegments(strings.NewReader(tt.in))
			test.Error(t, err)
			test.T(t, segs, tt.segs)
		})
	}
}

func TestParseSegmentsErrors(t *testing.T) {
	var tts = []struct {
		in  string
		err string
	}{
		{"1 2 x 4", "bad number: x"},
		{"1 2 3 4\n1 2 3 4 5", "incomplete segment"},
		{"1 2 3", "incomplete segment"},
		{"1 2 3/0 4", "bad number: 3/0"},
		{"1 2\x00 3 4", "unexpected NULL character"},
	}
	for _, tt := range tts {
		t.Run(tt.in, func(t *testing.T) {
			_, err := ParseSegments(strings.NewReader(tt.in))
			test.That(t, err != nil, "must fail")
			test.That(t, strings.Contains(err.Error(), tt.err), err)
		})
	}

	// position of the error
	_, err := ParseSegments(strings.NewReader("1 2 3 4\n5 6 seven 8"))
	perr, ok := err.(*parse.Error)
	test.That(t, ok, "parse error")
	test.T(t, perr.Line, 2)

	_, err = ParseSegments(test.NewErrorReader(0))
	test.T(t, err, test.ErrPlain)
}

func TestMustParseSegments(t *testing.T) {
	test.T(t, MustParseSegments("0 0 1 1"), []Segment{Seg(0, 0, 1, 1)})
	defer func() {
		test.That(t, recover() != nil, "must panic")
	}()
	MustParseSegments("0 0 1")
}

func TestWriteIntersections(t *testing.T) {
	segs := MustParseSegments("0 0 1 1  1 0 0 1  0 1/2 1 1/2")
	w := &bytes.Buffer{}
	err := WriteIntersections(w, Collect(segs))
	test.Error(t, err)
	test.String(t, w.String(), "Intersection 1/2 1/2\nSegment 0 0 1 1\nSegment 0 1/2 1 1/2\nSegment 0 1 1 0\n\n")

	// round trip of the segments
	out, err := ParseSegments(strings.NewReader(strings.ReplaceAll(strings.ReplaceAll(w.String(), "Intersection 1/2 1/2", ""), "Segment", "")))
	test.Error(t, err)
	test.T(t, len(out), 3)

	err = WriteIntersections(test.NewErrorWriter(0), Collect(segs))
	test.T(t, err, test.ErrPlain)
	err = WriteIntersections(test.NewErrorWriter(1), Collect(segs))
	test.T(t, err, test.ErrPlain)
}
