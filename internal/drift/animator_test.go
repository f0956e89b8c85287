package drift

import (
	"math"
	"testing"
	"time"
)

func TestLerp(t *testing.T) {
	tests := []struct {
		name     string
		a, b, t  float64
		expected float64
	}{
		{"start", 10, 20, 0, 10},
		{"middle", 10, 20, 0.5, 15},
		{"end", 10, 20, 1, 20},
		{"negative direction", 0, -100, 0.25, -25},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Lerp(tt.a, tt.b, EaseLinear(tt.t)); math.Abs(got-tt.expected) > 1e-9 {
				t.Errorf("Lerp(%v, %v, %v) = %v, want %v", tt.a, tt.b, tt.t, got, tt.expected)
			}
		})
	}
}

func TestAnimatorInterpolatesLinearly(t *testing.T) {
	a := NewAnimator()
	a.Start(1, Point{X: 0, Y: 0}, Point{X: 100, Y: -50}, 10*time.Second)

	if done := a.Advance(5 * time.Second); len(done) != 0 {
		t.Fatalf("tween finished early: %v", done)
	}
	p, ok := a.Position(1)
	if !ok {
		t.Fatal("tween missing after half its duration")
	}
	if math.Abs(p.X-50) > 1e-9 || math.Abs(p.Y+25) > 1e-9 {
		t.Errorf("position at half time = %+v, want (50, -25)", p)
	}
}

func TestAnimatorCompletesExactlyOnce(t *testing.T) {
	a := NewAnimator()
	a.Start(1, Point{}, Point{X: 1}, time.Second)

	done := a.Advance(2 * time.Second)
	if len(done) != 1 || done[0] != 1 {
		t.Fatalf("first advance = %v, want [1]", done)
	}
	if done := a.Advance(2 * time.Second); len(done) != 0 {
		t.Errorf("tween completed twice: %v", done)
	}
	if _, ok := a.Position(1); ok {
		t.Error("finished tween still reports a position")
	}
}

func TestAnimatorCompletionOrder(t *testing.T) {
	a := NewAnimator()
	a.Start(3, Point{}, Point{}, 2*time.Second)
	a.Start(1, Point{}, Point{}, 1*time.Second)
	a.Start(2, Point{}, Point{}, 3*time.Second)

	done := a.Advance(5 * time.Second)
	want := []CircleID{3, 1, 2}
	if len(done) != len(want) {
		t.Fatalf("done = %v, want %v", done, want)
	}
	for i := range want {
		if done[i] != want[i] {
			t.Fatalf("done = %v, want %v", done, want)
		}
	}
	if a.Running() != 0 {
		t.Errorf("Running() = %d, want 0", a.Running())
	}
}

func TestAnimatorIgnoresDuplicateStart(t *testing.T) {
	a := NewAnimator()
	a.Start(1, Point{}, Point{X: 10}, time.Second)
	a.Start(1, Point{}, Point{X: 99}, time.Hour)

	if a.Running() != 1 {
		t.Fatalf("Running() = %d, want 1", a.Running())
	}
	if done := a.Advance(time.Second); len(done) != 1 {
		t.Errorf("duplicate start replaced the original tween")
	}
}
