package geo

import (
	"fmt"
	"math"
)

// Point is a location on the map, expressed as plain (x, y) coordinates
// in kilometres from the origin.
type Point struct {
	X float64
	Y float64
}

// DistanceTo returns the Euclidean distance between p and q.
func (p Point) DistanceTo(q Point) float64 {
	return math.Hypot(q.X-p.X, q.Y-p.Y)
}

// Equal reports exact coordinate equality.
func (p Point) Equal(q Point) bool {
	return p.X == q.X && p.Y == q.Y
}

func (p Point) String() string {
	return fmt.Sprintf("(%g, %g)", p.X, p.Y)
}
