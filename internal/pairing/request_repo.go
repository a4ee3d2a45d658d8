package pairing

import (
	"errors"

	"gorm.io/gorm"
)

type RequestRepository interface {
	Create(req *PairRequest) error
	GetByID(id uint) (*PairRequest, error)
	ListSent(userID uint) ([]PairRequest, error)
	ListReceived(userID uint) ([]PairRequest, error)
	UpdateStatus(req *PairRequest) error
	HasPending(requesterID, requestedID uint, skill string) (bool, error)
}

type requestRepository struct {
	db *gorm.DB
}

// NewRequestRepository creates a new instance of RequestRepository.
func NewRequestRepository(db *gorm.DB) RequestRepository {
	return &requestRepository{db: db}
}

func (r *requestRepository) Create(req *PairRequest) error {
	return r.db.Create(req).Error
}

func (r *requestRepository) GetByID(id uint) (*PairRequest, error) {
	var req PairRequest
	err := r.db.Preload("Requester").Preload("Requested").First(&req, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &req, nil
}

func (r *requestRepository) ListSent(userID uint) ([]PairRequest, error) {
	var reqs []PairRequest
	err := r.db.Preload("Requested").
		Where("requester_id = ?", userID).
		Order("created_at DESC").
		Find(&reqs).Error
	return reqs, err
}

func (r *requestRepository) ListReceived(userID uint) ([]PairRequest, error) {
	var reqs []PairRequest
	err := r.db.Preload("Requester").
		Where("requested_id = ?", userID).
		Order("created_at DESC").
		Find(&reqs).Error
	return reqs, err
}

func (r *requestRepository) UpdateStatus(req *PairRequest) error {
	return r.db.Model(&PairRequest{}).
		Where("id = ?", req.ID).
		Update("status", req.Status).Error
}

// HasPending reports whether an active request already exists for the
// (requester, requested, skill) triple. Only pending requests count;
// declined or cancelled history never blocks a new attempt.
func (r *requestRepository) HasPending(requesterID, requestedID uint, skill string) (bool, error) {
	var count int64
	err := r.db.Model(&PairRequest{}).
		Where("requester_id = ? AND requested_id = ? AND skill = ? AND status = ?",
			requesterID, requestedID, skill, StatusPending).
		Count(&count).Error
	return count > 0, err
}
