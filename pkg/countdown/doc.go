// Package countdown implements the life countdown state machine.
//
// # Lifecycle
//
// An Engine is in exactly one of three states:
//
//	idle ──Start──▶ running ──target reached──▶ finished
//	  ▲                │                            │
//	  └─────Reset──────┴────────────Reset───────────┘
//
// Start may also be called while running or finished; it replaces the
// current countdown.
//
// # Persistence
//
// The target is an absolute time, so the remaining time is always measured
// against the current clock and survives restarts and sleep. The store holds
// a target exactly while the engine is running: Start saves it, Reset clears
// it, and reaching the target clears it so the next launch does not finish a
// second time.
//
// A failed save is logged and the countdown keeps running for the session.
//
// # Ticks
//
// While running, the engine re-evaluates the remaining time once per tick and
// notifies subscribers with the whole seconds left (see FormatRemaining).
// Every Start, Reset and finish replaces the pending tick; a tick scheduled
// before the replacement is ignored, so at most one tick source is live.
package countdown
