package drift

import "time"

// CircleID identifies one spawned circle. IDs are never reused.
type CircleID uint64

type tween struct {
	from, to Point
	duration time.Duration
	elapsed  time.Duration
}

func (tw *tween) progress() float64 {
	if tw.duration <= 0 {
		return 1
	}
	p := float64(tw.elapsed) / float64(tw.duration)
	if p > 1 {
		return 1
	}
	return p
}

// Animator runs one-shot linear tweens advanced by an external clock.
// It has no pause, seek or cancel: once started, a tween runs to completion
// and is reported exactly once.
type Animator struct {
	tweens map[CircleID]*tween
	order  []CircleID
}

// NewAnimator creates an empty Animator.
func NewAnimator() *Animator {
	return &Animator{
		tweens: make(map[CircleID]*tween),
	}
}

// Start registers a tween from one point to another. Starting an id that is
// already running is ignored.
func (a *Animator) Start(id CircleID, from, to Point, duration time.Duration) {
	if _, exists := a.tweens[id]; exists {
		return
	}
	a.tweens[id] = &tween{from: from, to: to, duration: duration}
	a.order = append(a.order, id)
}

// Advance moves every running tween forward by dt and returns the ids that
// finished, in the order they were started.
func (a *Animator) Advance(dt time.Duration) []CircleID {
	var done []CircleID
	kept := a.order[:0]
	for _, id := range a.order {
		tw := a.tweens[id]
		tw.elapsed += dt
		if tw.elapsed >= tw.duration {
			delete(a.tweens, id)
			done = append(done, id)
			continue
		}
		kept = append(kept, id)
	}
	a.order = kept
	return done
}

// Position returns the current interpolated position of a running tween.
func (a *Animator) Position(id CircleID) (Point, bool) {
	tw, ok := a.tweens[id]
	if !ok {
		return Point{}, false
	}
	return lerpPoint(tw.from, tw.to, EaseLinear(tw.progress())), true
}

// Running reports how many tweens have not yet completed.
func (a *Animator) Running() int {
	return len(a.order)
}
