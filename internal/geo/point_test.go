package geo

import (
	"math"
	"testing"
)

func TestDistanceTo(t *testing.T) {
	tests := []struct {
		name string
		a, b Point
		want float64
	}{
		{"same point", Point{1, 1}, Point{1, 1}, 0},
		{"unit x", Point{0, 0}, Point{1, 0}, 1},
		{"unit y", Point{0, 0}, Point{0, 1}, 1},
		{"3-4-5 triangle", Point{0, 0}, Point{3, 4}, 5},
		{"negative coordinates", Point{-1, -1}, Point{2, 3}, 5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.a.DistanceTo(tt.b)
			if math.Abs(got-tt.want) > 1e-12 {
				t.Errorf("DistanceTo() = %v, want %v", got, tt.want)
			}
			if sym := tt.b.DistanceTo(tt.a); sym != got {
				t.Errorf("distance is not symmetric: %v vs %v", got, sym)
			}
		})
	}
}

func TestEqual(t *testing.T) {
	if !(Point{1.5, 2.5}).Equal(Point{1.5, 2.5}) {
		t.Error("identical points should be equal")
	}
	if (Point{1.5, 2.5}).Equal(Point{1.5, 2.500001}) {
		t.Error("different points should not be equal")
	}
}
