package timing

import (
	"math"
	"testing"
	"time"
)

// fakeClock advances by a fixed step on demand.
type fakeClock struct {
	now time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{now: time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)}
}

func (c *fakeClock) Now() time.Time { return c.now }

func (c *fakeClock) advance(d time.Duration) { c.now = c.now.Add(d) }

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-6
}

func TestDeltaTimerTick(t *testing.T) {
	clock := newFakeClock()
	timer := NewDeltaTimer(clock)

	clock.advance(16 * time.Millisecond)
	dt := timer.Tick(60)

	if !almostEqual(dt, 0.016) {
		t.Errorf("Tick() = %v, want 0.016", dt)
	}
	if !almostEqual(timer.TotalTime(), 0.016) {
		t.Errorf("TotalTime() = %v, want 0.016", timer.TotalTime())
	}
}

func TestDeltaTimerClampsLargeDelta(t *testing.T) {
	clock := newFakeClock()
	timer := NewDeltaTimer(clock)

	// A two second stall must clamp to 3x the target frame time.
	clock.advance(2 * time.Second)
	dt := timer.Tick(60)

	maxDt := 1.0 / 60 * 3
	if !almostEqual(dt, maxDt) {
		t.Errorf("Tick() after stall = %v, want clamped %v", dt, maxDt)
	}
}

func TestDeltaTimerFPS(t *testing.T) {
	clock := newFakeClock()
	timer := NewDeltaTimer(clock)

	// 50 frames at 20ms fills exactly one second of measurement.
	for i := 0; i < 50; i++ {
		clock.advance(20 * time.Millisecond)
		timer.Tick(60)
	}

	if !almostEqual(timer.FPS(), 50) {
		t.Errorf("FPS() = %v, want 50", timer.FPS())
	}
}

func TestDeltaTimerReset(t *testing.T) {
	clock := newFakeClock()
	timer := NewDeltaTimer(clock)

	clock.advance(100 * time.Millisecond)
	timer.Tick(60)
	timer.Reset()

	if timer.TotalTime() != 0 {
		t.Errorf("TotalTime() after reset = %v, want 0", timer.TotalTime())
	}

	clock.advance(10 * time.Millisecond)
	if dt := timer.Tick(60); !almostEqual(dt, 0.01) {
		t.Errorf("Tick() after reset = %v, want 0.01", dt)
	}
}

func TestCooldown(t *testing.T) {
	cd := NewCooldown(1.0)

	if !cd.Ready() {
		t.Error("new cooldown should be ready")
	}

	cd.Start()
	if cd.Ready() {
		t.Error("started cooldown should not be ready")
	}
	if !almostEqual(cd.Progress(), 0) {
		t.Errorf("Progress() = %v just after Start, want 0", cd.Progress())
	}

	cd.Update(0.4)
	if !almostEqual(cd.Remaining(), 0.6) {
		t.Errorf("Remaining() = %v, want 0.6", cd.Remaining())
	}
	if !almostEqual(cd.Progress(), 0.4) {
		t.Errorf("Progress() = %v, want 0.4", cd.Progress())
	}

	cd.Update(0.7)
	if !cd.Ready() {
		t.Error("cooldown should be ready after full duration elapsed")
	}
	if cd.Remaining() != 0 {
		t.Errorf("Remaining() = %v, want 0", cd.Remaining())
	}
}

func TestCooldownResetAndZeroDuration(t *testing.T) {
	cd := NewCooldown(5.0)
	cd.Start()
	cd.Reset()
	if !cd.Ready() {
		t.Error("Reset should make the cooldown ready")
	}

	zero := NewCooldown(0)
	zero.Start()
	if !zero.Ready() {
		t.Error("zero-duration cooldown should always be ready")
	}
	if !almostEqual(zero.Progress(), 1.0) {
		t.Errorf("zero-duration Progress() = %v, want 1.0", zero.Progress())
	}
}

func TestAnimationOneShot(t *testing.T) {
	anim := NewAnimation(1.0, false, false)
	anim.Start()

	anim.Update(0.5)
	if !almostEqual(anim.Progress(), 0.5) {
		t.Errorf("Progress() = %v, want 0.5", anim.Progress())
	}
	if !anim.Playing() {
		t.Error("animation should still be playing at 0.5")
	}

	anim.Update(0.6)
	if anim.Playing() {
		t.Error("animation should stop at the end")
	}
	if !almostEqual(anim.Progress(), 1.0) {
		t.Errorf("Progress() = %v at end, want 1.0", anim.Progress())
	}
	if !anim.Finished() {
		t.Error("Finished() should be true after a one-shot completes")
	}
}

func TestAnimationLoop(t *testing.T) {
	anim := NewAnimation(1.0, true, false)
	anim.Start()

	anim.Update(1.2)
	if !anim.Playing() {
		t.Error("looping animation should keep playing")
	}
	if !almostEqual(anim.Progress(), 0) {
		t.Errorf("Progress() = %v after loop wrap, want 0", anim.Progress())
	}
}

func TestAnimationAutoReverse(t *testing.T) {
	anim := NewAnimation(1.0, false, true)
	anim.Start()

	anim.Update(1.0)
	if !almostEqual(anim.Progress(), 1.0) {
		t.Errorf("Progress() = %v at the top, want 1.0", anim.Progress())
	}
	if !anim.Playing() {
		t.Error("auto-reverse animation should still be playing at the top")
	}

	anim.Update(0.5)
	if !almostEqual(anim.Progress(), 0.5) {
		t.Errorf("Progress() = %v on the way back, want 0.5", anim.Progress())
	}

	anim.Update(0.6)
	if anim.Playing() {
		t.Error("non-looping auto-reverse should stop back at the start")
	}
}

func TestAnimationStopResume(t *testing.T) {
	anim := NewAnimation(1.0, false, false)
	anim.Start()
	anim.Update(0.3)
	anim.Stop()
	anim.Update(0.5)

	if !almostEqual(anim.Progress(), 0.3) {
		t.Errorf("Progress() advanced while stopped: %v", anim.Progress())
	}

	anim.Resume()
	anim.Update(0.2)
	if !almostEqual(anim.Progress(), 0.5) {
		t.Errorf("Progress() = %v after resume, want 0.5", anim.Progress())
	}
}

func TestEasing(t *testing.T) {
	tests := []struct {
		name string
		fn   func(float64) float64
	}{
		{"EaseInQuad", EaseInQuad},
		{"EaseOutQuad", EaseOutQuad},
		{"EaseInOutQuad", EaseInOutQuad},
		{"SmoothStep", SmoothStep},
		{"SmootherStep", SmootherStep},
	}

	for _, tt := range tests {
		if got := tt.fn(0); !almostEqual(got, 0) {
			t.Errorf("%s(0) = %v, want 0", tt.name, got)
		}
		if got := tt.fn(1); !almostEqual(got, 1) {
			t.Errorf("%s(1) = %v, want 1", tt.name, got)
		}
		if got := tt.fn(0.5); got <= 0 || got >= 1 {
			t.Errorf("%s(0.5) = %v, want strictly inside (0, 1)", tt.name, got)
		}
	}

	if got := EaseInQuad(0.5); !almostEqual(got, 0.25) {
		t.Errorf("EaseInQuad(0.5) = %v, want 0.25", got)
	}
	if got := EaseOutQuad(0.5); !almostEqual(got, 0.75) {
		t.Errorf("EaseOutQuad(0.5) = %v, want 0.75", got)
	}
	if got := EaseInOutQuad(0.5); !almostEqual(got, 0.5) {
		t.Errorf("EaseInOutQuad(0.5) = %v, want 0.5", got)
	}
}

func TestLerp(t *testing.T) {
	tests := []struct {
		start, end, t, expected float64
	}{
		{0, 10, 0, 0},
		{0, 10, 0.5, 5},
		{0, 10, 1, 10},
		{-5, 5, 0.5, 0},
	}

	for _, tt := range tests {
		if got := Lerp(tt.start, tt.end, tt.t); !almostEqual(got, tt.expected) {
			t.Errorf("Lerp(%v, %v, %v) = %v, want %v", tt.start, tt.end, tt.t, got, tt.expected)
		}
	}
}
