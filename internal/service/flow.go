package service

import "fmt"

// FlowState models a single report submission as an explicit state machine
// instead of nested callbacks. One flow instance lives for one attempt chain;
// terminal rejection (outside the fence) is a hard stop, while Failed is a
// transient stop the user may retry from immediately.
type FlowState string

const (
	FlowIdle             FlowState = "idle"
	FlowAwaitingLocation FlowState = "awaiting_location_confirmation"
	FlowReady            FlowState = "ready"
	FlowThrottled        FlowState = "throttled"
	FlowSubmitting       FlowState = "submitting"
	FlowSent             FlowState = "sent"
	FlowFailed           FlowState = "failed"
	FlowLocationRejected FlowState = "location_rejected"
)

type FlowEvent string

const (
	EventFixReceived     FlowEvent = "fix_received"
	EventSendRequested   FlowEvent = "send_requested"
	EventConfirmed       FlowEvent = "location_confirmed"
	EventRejected        FlowEvent = "location_rejected"
	EventThrottleBlocked FlowEvent = "throttle_blocked"
	EventThrottleCleared FlowEvent = "throttle_cleared"
	EventSubmitStarted   FlowEvent = "submit_started"
	EventPersistComplete FlowEvent = "persist_complete"
	EventStepFailed      FlowEvent = "step_failed"
	EventRetry           FlowEvent = "retry"
)

var flowTransitions = map[FlowState]map[FlowEvent]FlowState{
	FlowIdle: {
		EventFixReceived:   FlowAwaitingLocation,
		EventSendRequested: FlowAwaitingLocation, // send without a verdict re-enters confirmation
	},
	FlowAwaitingLocation: {
		EventConfirmed: FlowReady,
		EventRejected:  FlowLocationRejected,
	},
	FlowReady: {
		EventThrottleBlocked: FlowThrottled,
		EventSubmitStarted:   FlowSubmitting,
		EventFixReceived:     FlowAwaitingLocation, // fresh fix restarts confirmation
	},
	FlowThrottled: {
		EventThrottleCleared: FlowReady,
	},
	FlowSubmitting: {
		EventPersistComplete: FlowSent,
		EventStepFailed:      FlowFailed,
	},
	FlowFailed: {
		EventRetry: FlowReady,
	},
}

type Flow struct {
	state FlowState
}

func NewFlow() *Flow {
	return &Flow{state: FlowIdle}
}

func (f *Flow) State() FlowState { return f.state }

// Fire applies an event; an event with no transition from the current state
// is a programming error surfaced loudly rather than swallowed.
func (f *Flow) Fire(ev FlowEvent) error {
	next, ok := flowTransitions[f.state][ev]
	if !ok {
		return fmt.Errorf("flow: invalid event %q in state %q", ev, f.state)
	}
	f.state = next
	return nil
}

// Terminal reports whether the flow can make no further progress.
func (f *Flow) Terminal() bool {
	return f.state == FlowSent || f.state == FlowLocationRejected
}
