// Package geo converts geographic vector data into segments for the sweep line intersection search.
package geo

import (
	"encoding/json"
	"encoding/xml"
	"fmt"
	"io"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
	"github.com/paulmach/osm"
	"github.com/paulmach/osm/osmgeojson"
	"github.com/tdewolff/sweepline"
	"github.com/wroge/wgs84/v2"
)

// Projection maps a longitude and latitude to planar coordinates. A nil Projection keeps the coordinates as they are.
type Projection func(lon, lat float64) (float64, float64)

// EPSG returns the projection from WGS84 longitude and latitude to the coordinate reference system with the given EPSG code, such as 32631 for UTM zone 31N or 3857 for web mercator.
func EPSG(code int) Projection {
	transform := wgs84.Transform(wgs84.EPSG(4326), wgs84.EPSG(code))
	return func(lon, lat float64) (float64, float64) {
		x, y, _ := transform(lon, lat, 0.0)
		return x, y
	}
}

// FromGeometry returns the segments between consecutive vertices of all line strings and polygon rings in g. Points are ignored. Coordinates are converted exactly from their floating point values after projection.
func FromGeometry(g orb.Geometry, proj Projection) ([]sweepline.Segment, error) {
	c := converter{proj: proj}
	if err := c.geometry(g); err != nil {
		return nil, err
	}
	return c.segs, nil
}

type converter struct {
	proj Projection
	segs []sweepline.Segment
}

func (c *converter) point(p orb.Point) (sweepline.Point, error) {
	x, y := p[0], p[1]
	if c.proj != nil {
		x, y = c.proj(x, y)
	}
	q, ok := sweepline.FloatPoint(x, y)
	if !ok {
		return sweepline.Point{}, fmt.Errorf("bad coordinate: %v,%v", x, y)
	}
	return q, nil
}

func (c *converter) lineString(ps []orb.Point, closed bool) error {
	if len(ps) < 2 {
		return nil
	}
	first, err := c.point(ps[0])
	if err != nil {
		return err
	}
	prev := first
	for _, p := range ps[1:] {
		q, err := c.point(p)
		if err != nil {
			return err
		}
		c.segs = append(c.segs, sweepline.Segment{A: prev, B: q})
		prev = q
	}
	if closed && !prev.Equals(first) {
		c.segs = append(c.segs, sweepline.Segment{A: prev, B: first})
	}
	return nil
}

func (c *converter) geometry(g orb.Geometry) error {
	switch g := g.(type) {
	case nil, orb.Point, orb.MultiPoint:
		// no segments
	case orb.LineString:
		return c.lineString(g, false)
	case orb.MultiLineString:
		for _, ls := range g {
			if err := c.lineString(ls, false); err != nil {
				return err
			}
		}
	case orb.Ring:
		return c.lineString(g, true)
	case orb.Polygon:
		for _, r := range g {
			if err := c.lineString(r, true); err != nil {
				return err
			}
		}
	case orb.MultiPolygon:
		for _, poly := range g {
			if err := c.geometry(poly); err != nil {
				return err
			}
		}
	case orb.Bound:
		return c.geometry(g.ToPolygon())
	case orb.Collection:
		for _, h := range g {
			if err := c.geometry(h); err != nil {
				return err
			}
		}
	default:
		return fmt.Errorf("unsupported geometry: %T", g)
	}
	return nil
}

// FromFeatures returns the segments of all features.
func FromFeatures(fc *geojson.FeatureCollection, proj Projection) ([]sweepline.Segment, error) {
	c := converter{proj: proj}
	for _, f := range fc.Features {
		if err := c.geometry(f.Geometry); err != nil {
			return nil, err
		}
	}
	return c.segs, nil
}

// ReadGeoJSON reads a GeoJSON feature collection, feature, or geometry and returns its segments.
func ReadGeoJSON(r io.Reader, proj Projection) ([]sweepline.Segment, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	var doc struct {
		Type string `json:"type"`
	}
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("bad GeoJSON: %w", err)
	}
	switch doc.Type {
	case "FeatureCollection":
		fc, err := geojson.UnmarshalFeatureCollection(data)
		if err != nil {
			return nil, fmt.Errorf("bad GeoJSON: %w", err)
		}
		return FromFeatures(fc, proj)
	case "Feature":
		f, err := geojson.UnmarshalFeature(data)
		if err != nil {
			return nil, fmt.Errorf("bad GeoJSON: %w", err)
		}
		return FromGeometry(f.Geometry, proj)
	}
	g, err := geojson.UnmarshalGeometry(data)
	if err != nil {
		return nil, fmt.Errorf("bad GeoJSON: %w", err)
	}
	return FromGeometry(g.Geometry(), proj)
}

// ReadOSM reads OpenStreetMap XML and returns the segments of its ways and areas.
func ReadOSM(r io.Reader, proj Projection) ([]sweepline.Segment, error) {
	o := &osm.OSM{}
	if err := xml.NewDecoder(r).Decode(o); err != nil {
		return nil, fmt.Errorf("bad OSM: %w", err)
	}
	fc, err := osmgeojson.Convert(o,
		osmgeojson.NoID(true),
		osmgeojson.NoMeta(true),
		osmgeojson.NoRelationMembership(true))
	if err != nil {
		return nil, fmt.Errorf("bad OSM: %w", err)
	}
	return FromFeatures(fc, proj)
}
