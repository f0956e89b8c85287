package game

import (
	"testing"
	"time"
)

func TestHsvToRgb(t *testing.T) {
	tests := []struct {
		name    string
		h, s, v float64
		r, g, b uint8
	}{
		{"red", 0, 1, 1, 255, 0, 0},
		{"green", 120, 1, 1, 0, 255, 0},
		{"blue", 240, 1, 1, 0, 0, 255},
		{"wraps", 360, 1, 1, 255, 0, 0},
		{"negative wraps", -120, 1, 1, 0, 0, 255},
		{"grey", 42, 0, 0.5, 128, 128, 128},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, g, b := hsvToRgb(tt.h, tt.s, tt.v)
			if r != tt.r || g != tt.g || b != tt.b {
				t.Errorf("hsvToRgb(%v, %v, %v) = (%d, %d, %d), want (%d, %d, %d)", tt.h, tt.s, tt.v, r, g, b, tt.r, tt.g, tt.b)
			}
		})
	}
}

func TestFormatDuration(t *testing.T) {
	if got := formatDuration(83 * time.Second); got != "01:23" {
		t.Errorf("formatDuration(83s) = %q", got)
	}
	if got := formatDuration(0); got != "00:00" {
		t.Errorf("formatDuration(0) = %q", got)
	}
}

func TestSoftCircle(t *testing.T) {
	img := softCircle(100, 20)
	if b := img.Bounds(); b.Dx() != 140 || b.Dy() != 140 {
		t.Fatalf("bounds = %v, want 140x140", b)
	}
	if a := img.RGBAAt(70, 70).A; a != 255 {
		t.Errorf("centre alpha = %d, want 255", a)
	}
	if a := img.RGBAAt(0, 0).A; a != 0 {
		t.Errorf("corner alpha = %d, want 0", a)
	}
	edge := img.RGBAAt(70+50, 70).A
	if edge == 0 || edge == 255 {
		t.Errorf("alpha at the disc edge = %d, want a partial fade", edge)
	}
}

func TestCoverageHardEdge(t *testing.T) {
	if coverage(9, 10, 0) != 1 || coverage(11, 10, 0) != 0 {
		t.Error("unblurred disc should have a hard edge")
	}
}

func TestBucketFor(t *testing.T) {
	tests := []struct {
		size float64
		want int
	}{
		{150, 150},
		{162, 150},
		{163, 175},
		{5, sizeBucket},
	}
	for _, tt := range tests {
		if got := bucketFor(tt.size); got != tt.want {
			t.Errorf("bucketFor(%v) = %d, want %d", tt.size, got, tt.want)
		}
	}
}
