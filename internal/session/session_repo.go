package session

import (
	"errors"

	"gorm.io/gorm"
)

type SessionRepository interface {
	Create(session *Session) error
	GetByID(id uint) (*Session, error)
	GetByPairRequestID(pairRequestID uint) (*Session, error)
	ListForUser(userID uint) ([]Session, error)
	Update(session *Session) error
}

type sessionRepository struct {
	db *gorm.DB
}

// NewSessionRepository creates a new instance of SessionRepository.
func NewSessionRepository(db *gorm.DB) SessionRepository {
	return &sessionRepository{db: db}
}

func (r *sessionRepository) Create(session *Session) error {
	return r.db.Create(session).Error
}

func (r *sessionRepository) GetByID(id uint) (*Session, error) {
	var session Session
	err := r.db.Preload("Teacher").Preload("Learner").First(&session, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &session, nil
}

func (r *sessionRepository) GetByPairRequestID(pairRequestID uint) (*Session, error) {
	var session Session
	err := r.db.Where("pair_request_id = ?", pairRequestID).First(&session).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &session, nil
}

// ListForUser returns every session the user participates in, soonest
// scheduled date first, undated sessions last.
func (r *sessionRepository) ListForUser(userID uint) ([]Session, error) {
	var sessions []Session
	err := r.db.Preload("Teacher").Preload("Learner").
		Where("teacher_id = ? OR learner_id = ?", userID, userID).
		Order("scheduled_at ASC NULLS LAST").
		Find(&sessions).Error
	return sessions, err
}

func (r *sessionRepository) Update(session *Session) error {
	return r.db.Save(session).Error
}
