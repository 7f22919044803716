package raster

import "testing"

func TestToFixedFromFixedRoundTrip(t *testing.T) {
	for _, n := range []int{0, 1, -1, 42, -42, 1000} {
		if got := FromFixed(ToFixed(n)); got != n {
			t.Errorf("FromFixed(ToFixed(%d)) = %d, want %d", n, got, n)
		}
	}
}

func TestFloatToFixed(t *testing.T) {
	half := FloatToFixed(0.5)
	if got := FromFixed(half * 2); got != 1 {
		t.Errorf("FloatToFixed(0.5)*2 = %d as int, want 1", got)
	}
}

func TestMulDivFixed(t *testing.T) {
	f := ToFixed(3)
	if got := FromFixed(mulFixed(f, 4)); got != 12 {
		t.Errorf("mulFixed(3, 4) = %d, want 12", got)
	}
	if got := FromFixed(divFixed(ToFixed(12), 4)); got != 3 {
		t.Errorf("divFixed(12, 4) = %d, want 3", got)
	}
}
