package rain

import "testing"

func TestSpiralAt(t *testing.T) {
	sp := Projector{Coef: 4, CenterX: 20, CenterY: 10}

	tests := []struct {
		p    int
		x, y int
	}{
		// radius 4/1 = 4: offsets floor(4*cos 1)=2, floor(4*sin 1)=3.
		{p: 1, x: 22, y: 13},
		// radius 4/4 = 1: cos 4 and sin 4 are both negative, and the
		// floor truncates toward negative infinity.
		{p: 4, x: 19, y: 9},
	}
	for _, tt := range tests {
		x, y := sp.At(tt.p)
		if x != tt.x || y != tt.y {
			t.Fatalf("At(%d) = (%d,%d), want (%d,%d)", tt.p, x, y, tt.x, tt.y)
		}
	}
}

func TestSpiralAtZeroCoef(t *testing.T) {
	sp := Projector{CenterX: 7, CenterY: 3}
	for p := 1; p <= 10; p++ {
		x, y := sp.At(p)
		if x > 7 || x < 6 || y > 3 || y < 2 {
			t.Fatalf("At(%d) = (%d,%d), want within one cell of center", p, x, y)
		}
	}
}

func TestRayLength(t *testing.T) {
	if got := RayLength(80, 24); got != 208 {
		t.Fatalf("RayLength(80,24) = %d, want 208", got)
	}
	if got := RayLength(1, 1); got != 4 {
		t.Fatalf("RayLength(1,1) = %d, want 4", got)
	}
}
