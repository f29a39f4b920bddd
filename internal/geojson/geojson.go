// Package geojson parses and encodes GeoJSON Polygon geometries in
// EPSG:4326 (longitude/latitude) coordinate order.
package geojson

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
)

// ErrInvalidGeometry is wrapped by every parse failure.
var ErrInvalidGeometry = errors.New("invalid geometry")

// Position is a (longitude, latitude) pair.
type Position [2]float64

// Lon returns the longitude component.
func (p Position) Lon() float64 { return p[0] }

// Lat returns the latitude component.
func (p Position) Lat() float64 { return p[1] }

// Ring is a closed sequence of positions: first and last are equal.
type Ring []Position

// Polygon is a simple polygon: an exterior ring plus optional holes.
type Polygon struct {
	Rings []Ring
}

// geometry is the GeoJSON wire form.
type geometry struct {
	Type        string        `json:"type"`
	Coordinates [][][]float64 `json:"coordinates"`
}

// ParsePolygon decodes GeoJSON text into a Polygon. It fails when the text
// is not valid JSON, the type tag is not "Polygon", a ring is unclosed or
// has fewer than 4 positions, a ring has fewer than 3 distinct vertices, or
// a coordinate is not a finite (lon, lat) pair.
func ParsePolygon(text string) (*Polygon, error) {
	var geom geometry
	if err := json.Unmarshal([]byte(text), &geom); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidGeometry, err)
	}

	if geom.Type != "Polygon" {
		return nil, fmt.Errorf("%w: type %q is not Polygon", ErrInvalidGeometry, geom.Type)
	}
	if len(geom.Coordinates) == 0 {
		return nil, fmt.Errorf("%w: polygon has no rings", ErrInvalidGeometry)
	}

	poly := &Polygon{Rings: make([]Ring, 0, len(geom.Coordinates))}
	for i, coords := range geom.Coordinates {
		ring, err := parseRing(coords)
		if err != nil {
			return nil, fmt.Errorf("%w: ring %d: %v", ErrInvalidGeometry, i, err)
		}
		poly.Rings = append(poly.Rings, ring)
	}
	return poly, nil
}

func parseRing(coords [][]float64) (Ring, error) {
	if len(coords) < 4 {
		return nil, fmt.Errorf("ring has %d positions, need at least 4", len(coords))
	}

	ring := make(Ring, 0, len(coords))
	for _, pos := range coords {
		if len(pos) != 2 {
			return nil, fmt.Errorf("position has %d components, need exactly 2", len(pos))
		}
		if !isFinite(pos[0]) || !isFinite(pos[1]) {
			return nil, fmt.Errorf("position (%v, %v) is not finite", pos[0], pos[1])
		}
		ring = append(ring, Position{pos[0], pos[1]})
	}

	if ring[0] != ring[len(ring)-1] {
		return nil, errors.New("ring is not closed")
	}

	distinct := make(map[Position]struct{}, len(ring))
	for _, pos := range ring[:len(ring)-1] {
		distinct[pos] = struct{}{}
	}
	if len(distinct) < 3 {
		return nil, fmt.Errorf("ring has %d distinct vertices, need at least 3", len(distinct))
	}

	return ring, nil
}

func isFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

// Encode produces the canonical GeoJSON text for the polygon. Parsing the
// result yields a polygon with the same ordered vertices.
func (p *Polygon) Encode() string {
	coords := make([][][]float64, 0, len(p.Rings))
	for _, ring := range p.Rings {
		positions := make([][]float64, 0, len(ring))
		for _, pos := range ring {
			positions = append(positions, []float64{pos[0], pos[1]})
		}
		coords = append(coords, positions)
	}

	// Marshal of plain floats and strings cannot fail.
	out, _ := json.Marshal(geometry{Type: "Polygon", Coordinates: coords})
	return string(out)
}
