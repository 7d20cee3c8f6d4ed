package sweepline

import (
	"bytes"
	"strings"
	"testing"

	"github.com/tdewolff/test"
)

func TestNum(t *testing.T) {
	var tts = []struct {
		f num
		s string
	}{
		{0.0, "0"},
		{0.5, ".5"},
		{-0.05, "-.05"},
		{100.0, "100"},
		{1.0 / 3.0, ".333333"},
	}
	for _, tt := range tts {
		t.Run(tt.s, func(t *testing.T) {
			test.String(t, tt.f.String(), tt.s)
		})
	}
}

func TestWriteSVG(t *testing.T) {
	segs := MustParseSegments("0 0 1 1  1 0 0 1  0 1/2 1 1/2  2 2 3 3")
	zs := Collect(segs)

	w := &bytes.Buffer{}
	err := WriteSVG(w, segs, zs)
	test.Error(t, err)
	svg := w.String()
	test.That(t, strings.HasPrefix(svg, "<svg "), svg)
	test.That(t, strings.HasSuffix(svg, "</svg>"), svg)
	test.T(t, strings.Count(svg, "<path "), len(segs))
	test.T(t, strings.Count(svg, "<circle "), len(zs))
	test.That(t, strings.Contains(svg, `<circle cx=".5" cy=".5"`), svg)
	test.That(t, strings.Contains(svg, `<path d="M0 .5L1 .5"/>`), svg)

	err = WriteSVG(test.NewErrorWriter(0), segs, zs)
	test.T(t, err, test.ErrPlain)
}

func TestWriteSVGEmpty(t *testing.T) {
	w := &bytes.Buffer{}
	err := WriteSVG(w, nil, nil)
	test.Error(t, err)
	test.That(t, strings.HasPrefix(w.String(), "<svg "))
	test.T(t, strings.Count(w.String(), "<path "), 0)

	// a single point has a non-zero view box
	w.Reset()
	err = WriteSVG(w, MustParseSegments("1 1 1 1"), nil)
	test.Error(t, err)
	test.That(t, !strings.Contains(w.String(), `viewBox="1 -1 0 0"`), w.String())
}
