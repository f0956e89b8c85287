package drift

// EaseLinear is the identity easing: constant speed from start to end.
func EaseLinear(t float64) float64 {
	return t
}

// Lerp interpolates between a and b; t=0 yields a and t=1 yields b.
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

func lerpPoint(a, b Point, t float64) Point {
	return Point{X: Lerp(a.X, b.X, t), Y: Lerp(a.Y, b.Y, t)}
}
