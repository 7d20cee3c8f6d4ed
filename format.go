package sweepline

import (
	"fmt"
	"io"
	"math/big"
	"strings"

	"github.com/tdewolff/parse/v2"
)

// Prompt is the message shown when reading segments interactively.
const Prompt = "Enter segments as 4 numbers. For example, the segment ((1, 2), (3, 4)) should be entered as 1 2 3 4. Press Ctrl + D to end your input. The output will contain intersection points and corresponding segments."

func isSeparator(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r' || c == '\f' || c == ','
}

// ParseSegments reads segments written as four numbers ax ay bx by, separated by whitespace or commas. Numbers are exact and may be integers, decimals, exponents, or fractions such as 2/3.
func ParseSegments(r io.Reader) ([]Segment, error) {
	z := parse.NewInput(r)
	defer z.Restore()

	segs := []Segment{}
	coords := [4]*big.Rat{}
	n := 0
	for {
		for isSeparator(z.Peek(0)) {
			z.Move(1)
		}
		z.Skip()
		if z.Peek(0) == 0 {
			if err := z.Err(); err == io.EOF {
				break
			} else if err != nil {
				return nil, err
			}
			return nil, parse.NewErrorLexer(z, "unexpected NULL character")
		}

		for c := z.Peek(0); c != 0 && !isSeparator(c); c = z.Peek(0) {
			z.Move(1)
		}
		v := string(z.Shift())
		f, ok := new(big.Rat).SetString(v)
		if !ok {
			return nil, parse.NewErrorLexer(z, "bad number: %s", v)
		}
		coords[n] = f
		if n++; n == 4 {
			segs = append(segs, Segment{Point{coords[0], coords[1]}, Point{coords[2], coords[3]}})
			n = 0
		}
	}
	if n != 0 {
		return nil, fmt.Errorf("incomplete segment: expected 4 numbers, got %d", n)
	}
	return segs, nil
}

// MustParseSegments parses segments from a string and panics on error.
func MustParseSegments(s string) []Segment {
	segs, err := ParseSegments(strings.NewReader(s))
	if err != nil {
		panic(err)
	}
	return segs
}

// WriteIntersections writes each intersection as a line "Intersection x y" followed by a line "Segment ax ay bx by" for each of its segments and an empty line.
func WriteIntersections(w io.Writer, zs Intersections) error {
	for _, z := range zs {
		if _, err := fmt.Fprintf(w, "Intersection %v %v\n", z.X.RatString(), z.Y.RatString()); err != nil {
			return err
		}
		for _, seg := range z.Segments {
			if _, err := fmt.Fprintf(w, "Segment %v %v %v %v\n", seg.A.X.RatString(), seg.A.Y.RatString(), seg.B.X.RatString(), seg.B.Y.RatString()); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintln(w); err != nil {
			return err
		}
	}
	return nil
}
