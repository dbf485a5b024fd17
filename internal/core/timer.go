package core

import "time"

// Pacer decides, once per rendered frame, whether the simulation advances.
type Pacer interface {
	ShouldStep() bool
}

// FrameStep advances the simulation once every N rendered frames.
type FrameStep struct {
	every  int
	frames int
}

// NewFrameStep constructs a FrameStep that fires on every nth frame.
func NewFrameStep(every int) *FrameStep {
	if every <= 0 {
		every = 1
	}
	return &FrameStep{every: every}
}

// ShouldStep counts one frame and reports whether a step is due.
func (f *FrameStep) ShouldStep() bool {
	f.frames++
	if f.frames >= f.every {
		f.frames = 0
		return true
	}
	return false
}

// FixedStep helps run simulation updates at a steady interval regardless of
// how often frames are rendered.
type FixedStep struct {
	step        time.Duration
	accumulator time.Duration
	last        time.Time
	now         func() time.Time
}

// NewFixedInterval constructs a FixedStep that fires once per interval.
// The first call to ShouldStep fires immediately.
func NewFixedInterval(interval time.Duration, now func() time.Time) *FixedStep {
	if now == nil {
		now = time.Now
	}
	fs := &FixedStep{now: now}
	fs.SetInterval(interval)
	fs.accumulator = fs.step
	return fs
}

// SetInterval changes the time between steps. It is safe to call from the
// main loop.
func (f *FixedStep) SetInterval(d time.Duration) {
	if d <= 0 {
		d = time.Second / 60
	}
	f.step = d
}

// ShouldStep reports whether the simulation should advance by one tick.
// At most one step is reported per call; surplus time stays accumulated.
func (f *FixedStep) ShouldStep() bool {
	now := f.now()
	if f.last.IsZero() {
		f.last = now
	}
	delta := now.Sub(f.last)
	f.last = now
	f.accumulator += delta
	if f.accumulator >= f.step {
		f.accumulator -= f.step
		return true
	}
	return false
}

// NewPacer returns a FixedStep when interval is positive and a FrameStep
// firing every stepEvery frames otherwise.
func NewPacer(stepEvery int, interval time.Duration) Pacer {
	if interval > 0 {
		return NewFixedInterval(interval, nil)
	}
	return NewFrameStep(stepEvery)
}
