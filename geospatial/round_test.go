package geospatial

import "testing"

func TestRound2HalfUp(t *testing.T) {
	cases := []struct {
		in   float64
		want float64
	}{
		{123.455, 123.46},
		{123.454, 123.45},
		{2.675, 2.68}, // stored as 2.67499…; shortest-decimal rounding still goes up
		{69.0932, 69.09},
		{0, 0},
	}
	for _, tc := range cases {
		if got := round2(tc.in); got != tc.want {
			t.Errorf("round2(%v) = %v, want %v", tc.in, got, tc.want)
		}
	}
}
