package session

import "time"

// DeriveRoles assigns teacher and learner for a session created from an
// accepted pairing request. The accepting party is the teacher: the
// received request, by definition, asked for something the accepter can
// teach. The requester becomes the learner.
func DeriveRoles(accepterID, requesterID uint) (teacherID, learnerID uint) {
	return accepterID, requesterID
}

// IsPast classifies a session for display as past: completed sessions
// always are, and any dated session whose date already went by is shown as
// past even when its status field still says scheduled. This is a
// display-time reclassification, not a state change.
func IsPast(s *Session, now time.Time) bool {
	if s.Status == StatusCompleted {
		return true
	}
	return s.ScheduledAt != nil && s.ScheduledAt.Before(now)
}

// IsUpcoming classifies a session for display as upcoming: it must still be
// on the calendar (scheduled or rescheduled) and either have no date yet or
// a date that has not passed.
func IsUpcoming(s *Session, now time.Time) bool {
	if s.Status != StatusScheduled && s.Status != StatusRescheduled {
		return false
	}
	return s.ScheduledAt == nil || !s.ScheduledAt.Before(now)
}

// Partition splits sessions into the upcoming and past display groups.
// Cancelled sessions without a date fall into neither group.
func Partition(sessions []Session, now time.Time) (upcoming, past []Session) {
	for _, s := range sessions {
		if IsUpcoming(&s, now) {
			upcoming = append(upcoming, s)
		}
		if IsPast(&s, now) {
			past = append(past, s)
		}
	}
	return upcoming, past
}
