package drift

import (
	"log"
	"math/rand/v2"
)

// Point is a position in container-local pixels.
type Point struct {
	X, Y float64
}

// Edge identifies one side of a container.
type Edge int

const (
	EdgeTop Edge = iota
	EdgeRight
	EdgeBottom
	EdgeLeft
)

func (e Edge) String() string {
	switch e {
	case EdgeTop:
		return "top"
	case EdgeRight:
		return "right"
	case EdgeBottom:
		return "bottom"
	case EdgeLeft:
		return "left"
	}
	return "unknown"
}

// RandomEdgePosition returns a point just outside a random edge of a
// width x height container. The point sits size*multiplier pixels past the
// edge; the coordinate along the edge is drawn from [0, span-size].
//
// Zero or negative dimensions log a warning and yield the origin.
func RandomEdgePosition(r *rand.Rand, width, height, size, multiplier float64) Point {
	p, _ := randomEdgePosition(r, width, height, size, multiplier)
	return p
}

func randomEdgePosition(r *rand.Rand, width, height, size, multiplier float64) (Point, Edge) {
	if width <= 0 || height <= 0 {
		log.Printf("[EdgePosition] Warning: invalid container dimensions %vx%v, using origin", width, height)
		return Point{}, EdgeTop
	}

	edge := Edge(RandomInRange(r, 0, 3))
	offset := size * multiplier

	switch edge {
	case EdgeTop:
		return Point{X: alongEdge(r, width, size), Y: -offset}, edge
	case EdgeRight:
		return Point{X: width + offset, Y: alongEdge(r, height, size)}, edge
	case EdgeBottom:
		return Point{X: alongEdge(r, width, size), Y: height + offset}, edge
	default:
		return Point{X: -offset, Y: alongEdge(r, height, size)}, edge
	}
}

// alongEdge draws a whole-pixel coordinate in [0, span-size]. Objects larger
// than the span collapse to 0.
func alongEdge(r *rand.Rand, span, size float64) float64 {
	limit := int(span - size)
	if limit < 0 {
		limit = 0
	}
	return float64(RandomInRange(r, 0, limit))
}
