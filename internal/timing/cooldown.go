package timing

// Cooldown is a delta-time based countdown. Start it after an action,
// feed it Update(dt) each frame, and Ready reports when the action may
// fire again.
type Cooldown struct {
	duration  float64
	remaining float64
}

// NewCooldown creates a ready cooldown with the given duration in
// seconds.
func NewCooldown(duration float64) *Cooldown {
	return &Cooldown{duration: duration}
}

// Start begins the countdown from the full duration.
func (c *Cooldown) Start() {
	c.remaining = c.duration
}

// Update advances the countdown by dt seconds.
func (c *Cooldown) Update(dt float64) {
	if c.remaining > 0 {
		c.remaining -= dt
		if c.remaining < 0 {
			c.remaining = 0
		}
	}
}

// Ready reports whether the countdown has finished.
func (c *Cooldown) Ready() bool {
	return c.remaining <= 0
}

// Remaining returns the seconds left, never negative.
func (c *Cooldown) Remaining() float64 {
	if c.remaining < 0 {
		return 0
	}
	return c.remaining
}

// Progress returns 0.0 just after Start up to 1.0 when ready.
func (c *Cooldown) Progress() float64 {
	if c.duration <= 0 {
		return 1.0
	}
	return 1.0 - c.remaining/c.duration
}

// Reset makes the cooldown immediately ready.
func (c *Cooldown) Reset() {
	c.remaining = 0
}

// SetDuration changes the duration used by the next Start.
func (c *Cooldown) SetDuration(duration float64) {
	c.duration = duration
}
