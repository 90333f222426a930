package examsession

import "time"

// deadlineTimer is the single-shot auto-submit trigger for one attempt. A
// fresh instance is armed per attempt and never rearmed.
type deadlineTimer struct {
	deadline time.Time
	timer    *time.Timer
}

// armTimer schedules fire to run exactly once when deadline passes.
func armTimer(deadline time.Time, fire func()) *deadlineTimer {
	return &deadlineTimer{
		deadline: deadline,
		timer:    time.AfterFunc(time.Until(deadline), fire),
	}
}

// Cancel stops a pending firing. Safe to call repeatedly or after firing.
func (t *deadlineTimer) Cancel() {
	t.timer.Stop()
}

// Remaining returns deadline minus now, clamped at zero. Display code may
// poll it at any frequency without affecting the scheduled firing.
func (t *deadlineTimer) Remaining(now time.Time) time.Duration {
	if left := t.deadline.Sub(now); left > 0 {
		return left
	}
	return 0
}
