// pkg/geom/extent_test.go - Unit tests for extent calculation
package geom

import "testing"

func TestExtentOf(t *testing.T) {
	tests := []struct {
		name   string
		coords []float64
		want   Extent
	}{
		{"single pair", []float64{3, 4}, Extent{3, 4, 3, 4}},
		{"two points", []float64{0, 0, 10, 5}, Extent{0, 0, 10, 5}},
		{"unordered", []float64{10, -5, -2, 8, 4, 4}, Extent{-2, -5, 10, 8}},
		{"collinear", []float64{1, 1, 2, 1, 3, 1}, Extent{1, 1, 3, 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ExtentOf(tt.coords)
			if got != tt.want {
				t.Errorf("ExtentOf() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestExtentOfBoundsEveryPair(t *testing.T) {
	coords := []float64{-3, 7, 12, -4, 0.5, 0.5, 9, 9}
	ext := ExtentOf(coords)
	for i := 0; i < len(coords); i += Stride {
		if !ext.ContainsXY(coords[i], coords[i+1]) {
			t.Errorf("extent %v does not contain pair (%v, %v)", ext, coords[i], coords[i+1])
		}
	}
}

func TestExtentOfTypePoint(t *testing.T) {
	ext := ExtentOfType(TypePoint, []float64{5, -2})
	want := Extent{5, -2, 5, -2}
	if ext != want {
		t.Errorf("ExtentOfType(Point) = %v, want %v", ext, want)
	}
	if ext.Width() != 0 || ext.Height() != 0 {
		t.Errorf("point extent has non-zero area: %v", ext)
	}
}

func TestExtentCenter(t *testing.T) {
	x, y := NewExtent(0, 0, 10, 4).Center()
	if x != 5 || y != 2 {
		t.Errorf("Center() = (%v, %v), want (5, 2)", x, y)
	}
}

func TestExtentExtend(t *testing.T) {
	a := NewExtent(0, 0, 1, 1)
	b := NewExtent(-2, 0.5, 0.5, 3)
	got := a.Extend(b)
	want := Extent{-2, 0, 1, 3}
	if got != want {
		t.Errorf("Extend() = %v, want %v", got, want)
	}
}

func TestEmptyExtentExtend(t *testing.T) {
	got := EmptyExtent().Extend(NewExtent(1, 2, 3, 4))
	want := Extent{1, 2, 3, 4}
	if got != want {
		t.Errorf("EmptyExtent().Extend() = %v, want %v", got, want)
	}
}
