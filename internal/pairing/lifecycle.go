package pairing

import "errors"

var (
	// ErrNotPending is returned when a transition is attempted on a request
	// that already reached a terminal status.
	ErrNotPending = errors.New("pairing: request is no longer pending")

	// ErrNotAuthorized is returned when the acting user is not the party
	// allowed to perform the transition.
	ErrNotAuthorized = errors.New("pairing: user is not authorized for this transition")

	// ErrInvalidStatus is returned for a transition target outside the
	// accepted/declined/cancelled set.
	ErrInvalidStatus = errors.New("pairing: invalid target status")
)

// CanTransition reports whether a request may move from one status to
// another. The only legal moves are pending → accepted|declined|cancelled.
func CanTransition(from, to RequestStatus) bool {
	if from != StatusPending {
		return false
	}
	switch to {
	case StatusAccepted, StatusDeclined, StatusCancelled:
		return true
	}
	return false
}

// Transition applies a status change on behalf of actorID, enforcing both
// the state machine and who may drive it: the requested party accepts or
// declines, the requester cancels. The request is mutated only on success.
func Transition(req *PairRequest, to RequestStatus, actorID uint) error {
	switch to {
	case StatusAccepted, StatusDeclined:
		if actorID != req.RequestedID {
			return ErrNotAuthorized
		}
	case StatusCancelled:
		if actorID != req.RequesterID {
			return ErrNotAuthorized
		}
	default:
		return ErrInvalidStatus
	}

	if !CanTransition(req.Status, to) {
		return ErrNotPending
	}

	req.Status = to
	return nil
}
