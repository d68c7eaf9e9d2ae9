package timing

// DeltaTimer measures the time between frames. Delta values are clamped
// to three target frame times so a stall (window drag, debugger pause)
// does not produce a huge simulation jump.
type DeltaTimer struct {
	clock    Clock
	last     float64
	delta    float64
	total    float64
	frames   int
	fps      float64
	fpsTimer float64
}

// NewDeltaTimer creates a timer. A nil clock uses the system clock.
func NewDeltaTimer(clock Clock) *DeltaTimer {
	if clock == nil {
		clock = RealClock{}
	}
	t := &DeltaTimer{clock: clock}
	t.last = seconds(t.clock)
	return t
}

func seconds(c Clock) float64 {
	return float64(c.Now().UnixNano()) / 1e9
}

// Tick returns the clamped delta time in seconds since the last call.
func (t *DeltaTimer) Tick(targetFPS int) float64 {
	if targetFPS <= 0 {
		targetFPS = 60
	}

	now := seconds(t.clock)
	t.delta = now - t.last
	t.last = now

	maxDt := 1.0 / float64(targetFPS) * 3
	if t.delta > maxDt {
		t.delta = maxDt
	}

	t.total += t.delta

	t.frames++
	t.fpsTimer += t.delta
	if t.fpsTimer >= 1.0 {
		t.fps = float64(t.frames) / t.fpsTimer
		t.frames = 0
		t.fpsTimer = 0
	}

	return t.delta
}

// FPS returns the frame rate measured over the last second.
func (t *DeltaTimer) FPS() float64 { return t.fps }

// TotalTime returns the accumulated clamped time in seconds.
func (t *DeltaTimer) TotalTime() float64 { return t.total }

// Reset restarts the timer from the current clock reading.
func (t *DeltaTimer) Reset() {
	t.last = seconds(t.clock)
	t.delta = 0
	t.total = 0
	t.frames = 0
	t.fps = 0
	t.fpsTimer = 0
}
