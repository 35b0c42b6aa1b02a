// Package timing provides cancelable one-shot timers for UI animation.
//
// Two schedulers implement [Scheduler]:
//
//   - [Loop]: wall-clock timers whose callbacks are serialized onto the
//     Bubble Tea update goroutine through [Loop.Listen] and [Loop.Dispatch]
//   - [Virtual]: a manual clock that fires callbacks in due order inside
//     [Virtual.Advance], used for deterministic rendering and tests
//
// # Cancellation
//
// [Timer.Stop] is synchronous with respect to the callback: once Stop
// returns, the callback will not run. Callers that re-arm a timer must
// stop the previous one first.
package timing
