package pairing

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanTransition(t *testing.T) {
	tests := []struct {
		name string
		from RequestStatus
		to   RequestStatus
		want bool
	}{
		{"pending to accepted", StatusPending, StatusAccepted, true},
		{"pending to declined", StatusPending, StatusDeclined, true},
		{"pending to cancelled", StatusPending, StatusCancelled, true},
		{"pending to pending", StatusPending, StatusPending, false},
		{"accepted is terminal", StatusAccepted, StatusDeclined, false},
		{"declined is terminal", StatusDeclined, StatusAccepted, false},
		{"cancelled is terminal", StatusCancelled, StatusAccepted, false},
		{"unknown target", StatusPending, RequestStatus("expired"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CanTransition(tt.from, tt.to))
		})
	}
}

func newPendingRequest() *PairRequest {
	return &PairRequest{
		RequesterID: 1,
		RequestedID: 2,
		Skill:       "Python",
		Status:      StatusPending,
	}
}

func TestTransitionAcceptByRequestedParty(t *testing.T) {
	req := newPendingRequest()
	err := Transition(req, StatusAccepted, 2)
	assert.NoError(t, err)
	assert.Equal(t, StatusAccepted, req.Status)
}

func TestTransitionAcceptByRequesterFails(t *testing.T) {
	req := newPendingRequest()
	err := Transition(req, StatusAccepted, 1)
	assert.ErrorIs(t, err, ErrNotAuthorized)
	assert.Equal(t, StatusPending, req.Status) // untouched on failure
}

func TestTransitionDeclineByStrangerFails(t *testing.T) {
	req := newPendingRequest()
	err := Transition(req, StatusDeclined, 99)
	assert.ErrorIs(t, err, ErrNotAuthorized)
}

func TestTransitionCancelByRequester(t *testing.T) {
	req := newPendingRequest()
	err := Transition(req, StatusCancelled, 1)
	assert.NoError(t, err)
	assert.Equal(t, StatusCancelled, req.Status)
}

func TestTransitionCancelByRequestedPartyFails(t *testing.T) {
	req := newPendingRequest()
	err := Transition(req, StatusCancelled, 2)
	assert.ErrorIs(t, err, ErrNotAuthorized)
}

func TestTransitionFromTerminalStatusFails(t *testing.T) {
	for _, terminal := range []RequestStatus{StatusAccepted, StatusDeclined, StatusCancelled} {
		req := newPendingRequest()
		req.Status = terminal

		err := Transition(req, StatusAccepted, 2)
		assert.ErrorIs(t, err, ErrNotPending, "from %s", terminal)
		assert.Equal(t, terminal, req.Status)
	}
}

func TestTransitionInvalidTarget(t *testing.T) {
	req := newPendingRequest()
	err := Transition(req, StatusPending, 2)
	assert.ErrorIs(t, err, ErrInvalidStatus)
}
