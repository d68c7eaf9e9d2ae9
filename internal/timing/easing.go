package timing

// Lerp linearly interpolates between start and end by t in [0, 1].
func Lerp(start, end, t float64) float64 {
	return start + (end-start)*t
}

// EaseInQuad accelerates from zero velocity.
func EaseInQuad(t float64) float64 {
	return t * t
}

// EaseOutQuad decelerates to zero velocity.
func EaseOutQuad(t float64) float64 {
	return 1 - (1-t)*(1-t)
}

// EaseInOutQuad accelerates then decelerates.
func EaseInOutQuad(t float64) float64 {
	if t < 0.5 {
		return 2 * t * t
	}
	u := -2*t + 2
	return 1 - u*u/2
}

// SmoothStep is the classic hermite interpolation.
func SmoothStep(t float64) float64 {
	return t * t * (3 - 2*t)
}

// SmootherStep is Perlin's higher-order variant with zero first and
// second derivatives at the ends.
func SmootherStep(t float64) float64 {
	return t * t * t * (t*(t*6-15) + 10)
}
