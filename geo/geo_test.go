package geo

import (
	"math"
	"strings"
	"testing"

	"github.com/paulmach/orb"
	"github.com/tdewolff/sweepline"
	"github.com/tdewolff/test"
)

func TestReadGeoJSON(t *testing.T) {
	var tts = []struct {
		name string
		json string
		n    int
		zs   sweepline.Points
	}{
		{"collection", `{"type":"FeatureCollection","features":[
			{"type":"Feature","properties":{},"geometry":{"type":"LineString","coordinates":[[0,0],[2,2]]}},
			{"type":"Feature","properties":{},"geometry":{"type":"LineString","coordinates":[[0,2],[2,0]]}}]}`, 2, sweepline.Points{sweepline.Pt(1, 1)}},
		{"feature", `{"type":"Feature","properties":{"name":"z"},"geometry":{"type":"LineString","coordinates":[[0,0],[2,0],[2,2],[0,-2]]}}`, 3, sweepline.Points{sweepline.Pt(1, 0), sweepline.Pt(2, 0), sweepline.Pt(2, 2)}},
		{"polygon", `{"type":"Polygon","coordinates":[[[0,0],[1,0],[1,1],[0,1],[0,0]]]}`, 4, sweepline.Points{sweepline.Pt(0, 0), sweepline.Pt(0, 1), sweepline.Pt(1, 0), sweepline.Pt(1, 1)}},
		{"point", `{"type":"Point","coordinates":[1,1]}`, 0, sweepline.Points{}},
		{"multilinestring", `{"type":"MultiLineString","coordinates":[[[0,0],[1,1]],[[0,1],[1,0]]]}`, 2, nil},
	}
	for _, tt := range tts {
		t.Run(tt.name, func(t *testing.T) {
			segs, err := ReadGeoJSON(strings.NewReader(tt.json), nil)
			test.Error(t, err)
			test.T(t, len(segs), tt.n)
			if tt.zs != nil {
				zs := sweepline.Collect(segs).Points()
				test.T(t, zs, tt.zs)
			}
		})
	}
}

func TestReadGeoJSONErrors(t *testing.T) {
	for _, in := range []string{"", "{", `{"type":"Feature","geometry":{"type":"Nope"}}`, `{"type":"FeatureCollection","features":3}`} {
		t.Run(in, func(t *testing.T) {
			_, err := ReadGeoJSON(strings.NewReader(in), nil)
			test.That(t, err != nil, "must fail")
			test.That(t, strings.HasPrefix(err.Error(), "bad GeoJSON"), err)
		})
	}

	_, err := ReadGeoJSON(test.NewErrorReader(0), nil)
	test.T(t, err, test.ErrPlain)
}

func TestFromGeometry(t *testing.T) {
	// rings are closed
	segs, err := FromGeometry(orb.Ring{{0, 0}, {1, 0}, {0, 1}}, nil)
	test.Error(t, err)
	test.T(t, len(segs), 3)
	test.T(t, segs[2], sweepline.Seg(0, 1, 0, 0))

	segs, err = FromGeometry(orb.Bound{Min: orb.Point{0, 0}, Max: orb.Point{2, 1}}, nil)
	test.Error(t, err)
	test.T(t, len(segs), 4)

	segs, err = FromGeometry(orb.Collection{orb.LineString{{0, 0}, {1, 0}}, orb.MultiPoint{{3, 3}}, orb.LineString{{5, 5}}}, nil)
	test.Error(t, err)
	test.T(t, segs, []sweepline.Segment{sweepline.Seg(0, 0, 1, 0)})

	// coordinates are exact
	segs, err = FromGeometry(orb.LineString{{0.1, 0}, {0.5, 0.25}}, nil)
	test.Error(t, err)
	x, _ := segs[0].A.X.Float64()
	test.T(t, x, 0.1)
	test.T(t, segs[0].B.X.RatString(), "1/2")

	segs, err = FromGeometry(nil, nil)
	test.Error(t, err)
	test.T(t, len(segs), 0)
}

func TestFromGeometryProjection(t *testing.T) {
	double := func(lon, lat float64) (float64, float64) {
		return 2.0 * lon, 2.0 * lat
	}
	segs, err := FromGeometry(orb.LineString{{0, 0}, {1, 3}}, double)
	test.Error(t, err)
	test.T(t, segs, []sweepline.Segment{sweepline.Seg(0, 0, 2, 6)})

	bad := func(lon, lat float64) (float64, float64) {
		return math.NaN(), lat
	}
	_, err = FromGeometry(orb.Polygon{{{0, 0}, {1, 0}, {1, 1}, {0, 0}}}, bad)
	test.That(t, err != nil, "must fail")
	test.That(t, strings.HasPrefix(err.Error(), "bad coordinate"), err)
}

func TestEPSG(t *testing.T) {
	// central meridian of UTM zone 33N on the equator
	x, y := EPSG(32633)(15.0, 0.0)
	test.That(t, math.Abs(x-500000.0) < 1.0, x)
	test.That(t, math.Abs(y) < 1.0, y)
}

func TestReadOSM(t *testing.T) {
	in := `<?xml version="1.0" encoding="UTF-8"?>
<osm version="0.6" generator="test">
  <node id="1" lat="0" lon="0"/>
  <node id="2" lat="2" lon="2"/>
  <node id="3" lat="2" lon="0"/>
  <node id="4" lat="0" lon="2"/>
  <way id="10">
    <nd ref="1"/>
    <nd ref="2"/>
    <tag k="highway" v="residential"/>
  </way>
  <way id="11">
    <nd ref="3"/>
    <nd ref="4"/>
    <tag k="highway" v="residential"/>
  </way>
</osm>`
	segs, err := ReadOSM(strings.NewReader(in), nil)
	test.Error(t, err)
	test.T(t, len(segs), 2)
	test.T(t, sweepline.IntersectionPoints(segs), sweepline.Points{sweepline.Pt(1, 1)})

	_, err = ReadOSM(strings.NewReader("<osm"), nil)
	test.That(t, err != nil, "must fail")
}
