// internal/pairing/request_model.go
package pairing

import (
	"gorm.io/gorm"

	"github.com/skillswap/skillswap/internal/user"
)

type RequestStatus string

const (
	StatusPending   RequestStatus = "pending"
	StatusAccepted  RequestStatus = "accepted"
	StatusDeclined  RequestStatus = "declined"
	StatusCancelled RequestStatus = "cancelled"
)

// PairRequest is a directed proposal from requester to requested to exchange
// instruction in one skill. Requests are never deleted; they only move
// through status transitions.
type PairRequest struct {
	gorm.Model
	RequesterID uint          `json:"requester_id" gorm:"index;not null"`
	Requester   user.User     `json:"requester" gorm:"foreignKey:RequesterID"`
	RequestedID uint          `json:"requested_id" gorm:"index;not null"`
	Requested   user.User     `json:"requested" gorm:"foreignKey:RequestedID"`
	Skill       string        `json:"skill" gorm:"index;not null"`
	Message     string        `json:"message,omitempty" gorm:"type:text"`
	Status      RequestStatus `json:"status" gorm:"index;not null;default:'pending'"`
}
