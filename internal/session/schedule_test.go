package session

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDeriveRoles(t *testing.T) {
	teacherID, learnerID := DeriveRoles(42, 7)
	assert.Equal(t, uint(42), teacherID, "the accepting party teaches")
	assert.Equal(t, uint(7), learnerID, "the requester learns")
}

func timePtr(t time.Time) *time.Time { return &t }

func TestClassification(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
	future := timePtr(now.Add(48 * time.Hour))
	pastDate := timePtr(now.Add(-48 * time.Hour))

	tests := []struct {
		name         string
		session      Session
		wantUpcoming bool
		wantPast     bool
	}{
		{"scheduled without date", Session{Status: StatusScheduled}, true, false},
		{"scheduled in the future", Session{Status: StatusScheduled, ScheduledAt: future}, true, false},
		{"scheduled date already passed", Session{Status: StatusScheduled, ScheduledAt: pastDate}, false, true},
		{"scheduled exactly now", Session{Status: StatusScheduled, ScheduledAt: timePtr(now)}, true, false},
		{"rescheduled in the future", Session{Status: StatusRescheduled, ScheduledAt: future}, true, false},
		{"rescheduled date already passed", Session{Status: StatusRescheduled, ScheduledAt: pastDate}, false, true},
		{"completed without date", Session{Status: StatusCompleted}, false, true},
		{"completed with future date", Session{Status: StatusCompleted, ScheduledAt: future}, false, true},
		{"cancelled without date", Session{Status: StatusCancelled}, false, false},
		{"cancelled with past date", Session{Status: StatusCancelled, ScheduledAt: pastDate}, false, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantUpcoming, IsUpcoming(&tt.session, now), "IsUpcoming")
			assert.Equal(t, tt.wantPast, IsPast(&tt.session, now), "IsPast")
		})
	}
}

func TestPartition(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

	sessions := []Session{
		{Skill: "Python", Status: StatusScheduled},                                           // upcoming
		{Skill: "Guitar", Status: StatusScheduled, ScheduledAt: timePtr(now.Add(-time.Hour))}, // past despite status
		{Skill: "Piano", Status: StatusCompleted},                                            // past
		{Skill: "Yoga", Status: StatusCancelled},                                             // neither
	}

	upcoming, past := Partition(sessions, now)

	assert.Len(t, upcoming, 1)
	assert.Equal(t, "Python", upcoming[0].Skill)

	assert.Len(t, past, 2)
	assert.Equal(t, "Guitar", past[0].Skill)
	assert.Equal(t, "Piano", past[1].Skill)
}
