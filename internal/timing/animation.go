package timing

// Animation tracks progress through a timed animation, optionally
// looping or reversing at the ends. Feed it Update(dt) each frame and
// interpolate with Progress.
type Animation struct {
	duration    float64
	loop        bool
	autoReverse bool
	time        float64
	playing     bool
	direction   float64 // 1 forward, -1 reverse
}

// NewAnimation creates a stopped animation with the given duration in
// seconds.
func NewAnimation(duration float64, loop, autoReverse bool) *Animation {
	return &Animation{
		duration:    duration,
		loop:        loop,
		autoReverse: autoReverse,
		direction:   1,
	}
}

// Start restarts the animation from the beginning.
func (a *Animation) Start() {
	a.time = 0
	a.playing = true
	a.direction = 1
}

// Stop halts the animation.
func (a *Animation) Stop() { a.playing = false }

// Resume continues a paused animation.
func (a *Animation) Resume() { a.playing = true }

// Update advances the animation by dt seconds.
func (a *Animation) Update(dt float64) {
	if !a.playing {
		return
	}

	a.time += dt * a.direction

	if a.time >= a.duration {
		switch {
		case a.autoReverse:
			a.time = a.duration
			a.direction = -1
		case a.loop:
			a.time = 0
		default:
			a.time = a.duration
			a.playing = false
		}
	}

	if a.autoReverse && a.time <= 0 {
		if a.loop {
			a.time = 0
			a.direction = 1
		} else {
			a.time = 0
			a.playing = false
		}
	}
}

// Progress returns the animation position from 0.0 to 1.0.
func (a *Animation) Progress() float64 {
	if a.duration <= 0 {
		return 1.0
	}
	p := a.time / a.duration
	if p < 0 {
		return 0
	}
	if p > 1 {
		return 1
	}
	return p
}

// Playing reports whether the animation is currently advancing.
func (a *Animation) Playing() bool { return a.playing }

// Finished reports whether a non-looping animation has run to an end.
func (a *Animation) Finished() bool {
	return !a.playing && (a.time >= a.duration || a.time <= 0)
}
