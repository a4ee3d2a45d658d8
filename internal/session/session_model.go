// internal/session/session_model.go
package session

import (
	"time"

	"gorm.io/gorm"

	"github.com/skillswap/skillswap/internal/pairing"
	"github.com/skillswap/skillswap/internal/user"
)

type SessionStatus string

const (
	StatusScheduled   SessionStatus = "scheduled"
	StatusCompleted   SessionStatus = "completed"
	StatusCancelled   SessionStatus = "cancelled"
	StatusRescheduled SessionStatus = "rescheduled"
)

// Session is one scheduled or completed teaching meeting, derived 1:1 from
// an accepted pairing request. Either participant may edit it; sessions are
// never deleted.
type Session struct {
	gorm.Model
	PairRequestID   uint                `json:"pair_request_id" gorm:"uniqueIndex;not null"`
	PairRequest     pairing.PairRequest `json:"-" gorm:"foreignKey:PairRequestID"`
	TeacherID       uint                `json:"teacher_id" gorm:"index;not null"`
	Teacher         user.User           `json:"teacher" gorm:"foreignKey:TeacherID"`
	LearnerID       uint                `json:"learner_id" gorm:"index;not null"`
	Learner         user.User           `json:"learner" gorm:"foreignKey:LearnerID"`
	Skill           string              `json:"skill" gorm:"not null"`
	ScheduledAt     *time.Time          `json:"scheduled_at,omitempty" gorm:"index"`
	DurationMinutes int                 `json:"duration_minutes,omitempty"`
	MeetingLink     string              `json:"meeting_link,omitempty"`
	RoomCode        string              `json:"room_code" gorm:"uniqueIndex;not null"`
	Notes           string              `json:"notes,omitempty" gorm:"type:text"`
	Status          SessionStatus       `json:"status" gorm:"index;not null;default:'scheduled'"`
}

// HasParticipant reports whether the given user is the teacher or learner.
func (s *Session) HasParticipant(userID uint) bool {
	return s.TeacherID == userID || s.LearnerID == userID
}
