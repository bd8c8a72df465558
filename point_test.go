package easel

import "testing"

func TestPointDist(t *testing.T) {
	a := Pt(0, 0, 1)
	b := Pt(3, 4, 1)
	if got := a.Dist(b); got != 5 {
		t.Errorf("Dist = %g, want 5", got)
	}
	if got := a.Dist(a); got != 0 {
		t.Errorf("Dist to self = %g", got)
	}
}

func TestPointLerp(t *testing.T) {
	a := StrokePoint{X: 0, Y: 0, Pressure: 1, Timestamp: 0}
	b := StrokePoint{X: 10, Y: 20, Pressure: 0, Timestamp: 100}

	mid := a.Lerp(b, 0.5)
	if mid.X != 5 || mid.Y != 10 || mid.Pressure != 0.5 {
		t.Errorf("Lerp midpoint = %+v", mid)
	}
	if mid.Timestamp != 50 {
		t.Errorf("Lerp timestamp = %d, want 50", mid.Timestamp)
	}
}
