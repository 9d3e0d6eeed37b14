// Package throttle provides a leading+trailing call throttle for coalescing
// bursts of identical work into at most one run per window.
//
// The policy is the one commonly used for user-activity tracking: the first
// call in a window is applied immediately (leading edge), while subsequent
// calls inside the window are collapsed into a single deferred run at the
// window boundary (trailing flush). The trailing run guarantees that the last
// call's effect is never silently lost, even under continuous input.
//
// Unlike ad hoc closure-based throttles, the state (last-fire timestamp,
// pending flag, timer handle) is explicit and the reschedule step is atomic
// under an internal mutex, which makes the behavior independently testable.
//
// Basic usage:
//
//	th := throttle.New(30*time.Second, func() {
//		tracker.Touch()
//	})
//
//	// Called on every input event; at most one Touch per 30s window,
//	// plus one trailing Touch if events kept arriving.
//	th.Call()
//
//	// Apply immediately, bypassing the window (e.g. an explicit
//	// "user is active" assertion):
//	th.Force()
//
//	// Release the pending deferred run on teardown:
//	th.Stop()
//
// The clock is injectable for deterministic tests:
//
//	fc := clockwork.NewFakeClock()
//	th := throttle.New(time.Minute, fn, throttle.WithClock(fc))
package throttle
