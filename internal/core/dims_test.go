package core

import "testing"

func TestNewCubeClamped(t *testing.T) {
	cases := []struct {
		edge, want int
	}{
		{-5, 16},
		{0, 16},
		{15, 16},
		{16, 16},
		{17, 17},
		{64, 64},
		{96, 96},
		{97, 96},
		{100000, 96},
	}
	for _, tc := range cases {
		d := NewCubeClamped(16, 96, tc.edge)
		if d.X != tc.want || d.Y != tc.want || d.Z != tc.want {
			t.Fatalf("NewCubeClamped(16, 96, %d) = %+v, want all axes %d", tc.edge, d, tc.want)
		}
	}
}

func TestVolume(t *testing.T) {
	d := NewCubeClamped(16, 96, 16)
	if got := d.Volume(); got != 16*16*16 {
		t.Fatalf("Volume() = %d, want %d", got, 16*16*16)
	}
}

func TestCoreRange(t *testing.T) {
	cases := []struct {
		extent, fract, start, end int
	}{
		{64, 10, 29, 36}, // part = 64/10+1 = 7
		{16, 10, 7, 9},   // part = 16/10+1 = 2
		{64, 1, 0, 65},   // part = 65, degenerate full-and-then-some
		{96, 4, 35, 60},  // part = 25
	}
	for _, tc := range cases {
		start, end := CoreRange(tc.extent, tc.fract)
		if start != tc.start || end != tc.end {
			t.Fatalf("CoreRange(%d, %d) = [%d, %d), want [%d, %d)",
				tc.extent, tc.fract, start, end, tc.start, tc.end)
		}
		if end-start != tc.extent/tc.fract+1 {
			t.Fatalf("CoreRange(%d, %d) has size %d, want %d",
				tc.extent, tc.fract, end-start, tc.extent/tc.fract+1)
		}
	}
}

func TestCoreRangeAxesAgree(t *testing.T) {
	d := NewCubeClamped(16, 96, 64)
	xs, xe := d.CoreRangeX(10)
	ys, ye := d.CoreRangeY(10)
	zs, ze := d.CoreRangeZ(10)
	if xs != ys || xs != zs || xe != ye || xe != ze {
		t.Fatalf("core ranges differ across axes of a cube: x [%d,%d) y [%d,%d) z [%d,%d)",
			xs, xe, ys, ye, zs, ze)
	}
}
