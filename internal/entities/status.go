package entities

import "fmt"

type Status string

const (
	StatusPending   Status = "pending"
	StatusPreparing Status = "preparing"
	StatusReady     Status = "ready"
	StatusDelivered Status = "delivered"
	StatusExpired   Status = "expired"
)

// ActiveStatuses are the statuses shown in the canteen queue.
var ActiveStatuses = []Status{StatusPending, StatusPreparing, StatusReady}

var transitions = map[Status][]Status{
	StatusPending:   {StatusPreparing},
	StatusPreparing: {StatusReady},
	StatusReady:     {StatusDelivered, StatusExpired},
}

func ParseStatus(s string) (Status, error) {
	switch st := Status(s); st {
	case StatusPending, StatusPreparing, StatusReady, StatusDelivered, StatusExpired:
		return st, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidStatus, s)
	}
}

func (s Status) String() string {
	return string(s)
}

// Terminal reports whether no transition leaves s.
func (s Status) Terminal() bool {
	return s == StatusDelivered || s == StatusExpired
}

// CanTransitionTo reports whether next is an edge of the order state machine.
func (s Status) CanTransitionTo(next Status) bool {
	for _, allowed := range transitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// TransitionPolicy decides whether a staff-requested status change is accepted.
type TransitionPolicy string

const (
	TransitionsStrict     TransitionPolicy = "strict"
	TransitionsPermissive TransitionPolicy = "permissive"
)

// Check returns ErrInvalidTransition when the policy rejects from -> to.
// The permissive policy accepts any recognized status, including moves out of terminal states.
func (p TransitionPolicy) Check(from, to Status) error {
	if p == TransitionsPermissive {
		return nil
	}
	if from.Terminal() {
		return fmt.Errorf("%w: %s is final", ErrInvalidTransition, from)
	}
	if !from.CanTransitionTo(to) {
		return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, from, to)
	}
	return nil
}
