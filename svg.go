package sweepline

import (
	"bufio"
	"fmt"
	"io"
	"math"

	"github.com/tdewolff/minify/v2"
)

// Precision is the number of significant digits for coordinates in SVG output.
var Precision = 6

type num float64

func (f num) String() string {
	s := fmt.Sprintf("%.*g", Precision, f)
	return string(minify.Number([]byte(s), Precision))
}

// WriteSVG draws the segments as black lines and the intersections as red dots, with the Y axis pointing up.
func WriteSVG(w io.Writer, segments []Segment, zs Intersections) error {
	x0, y0 := math.Inf(1), math.Inf(1)
	x1, y1 := math.Inf(-1), math.Inf(-1)
	for _, seg := range segments {
		for _, p := range []Point{seg.A, seg.B} {
			x, y := p.Float64()
			x0, y0 = math.Min(x0, x), math.Min(y0, y)
			x1, y1 = math.Max(x1, x), math.Max(y1, y)
		}
	}
	if len(segments) == 0 {
		x0, y0, x1, y1 = 0.0, 0.0, 1.0, 1.0
	}
	size := math.Max(x1-x0, y1-y0)
	if size == 0.0 {
		size = 1.0
	}
	pad := 0.05 * size
	x0, y0 = x0-pad, y0-pad
	width, height := x1-x0+pad, y1-y0+pad

	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, `<svg version="1.1" viewBox="%v %v %v %v" xmlns="http://www.w3.org/2000/svg">`, num(x0), num(-y0-height), num(width), num(height))
	fmt.Fprintf(bw, `<g transform="scale(1,-1)" stroke="#000" stroke-width="%v" stroke-linecap="round">`, num(size/250.0))
	for _, seg := range segments {
		ax, ay := seg.A.Float64()
		bx, by := seg.B.Float64()
		fmt.Fprintf(bw, `<path d="M%v %vL%v %v"/>`, num(ax), num(ay), num(bx), num(by))
	}
	fmt.Fprintf(bw, `</g><g transform="scale(1,-1)" fill="#f00">`)
	for _, z := range zs {
		x, y := z.Float64()
		fmt.Fprintf(bw, `<circle cx="%v" cy="%v" r="%v"/>`, num(x), num(y), num(size/100.0))
	}
	fmt.Fprintf(bw, "</g></svg>")
	return bw.Flush()
}
