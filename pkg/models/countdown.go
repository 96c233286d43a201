package models

// State is the lifecycle state of the countdown
type State int

const (
	StateIdle     State = iota // No countdown configured
	StateRunning               // Counting down to a persisted target
	StateFinished              // Target reached, waiting for reset or a new start
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateRunning:
		return "running"
	case StateFinished:
		return "finished"
	default:
		return "unknown"
	}
}
