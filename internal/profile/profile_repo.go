package profile

import (
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ProfileRepository interface {
	GetByUserID(userID uint) (*Profile, error)
	Upsert(profile *Profile) error
	ListPublic(excludeUserID uint) ([]Profile, error)
}

type profileRepository struct {
	db *gorm.DB
}

// NewProfileRepository creates a new instance of ProfileRepository.
func NewProfileRepository(db *gorm.DB) ProfileRepository {
	return &profileRepository{db: db}
}

func (r *profileRepository) GetByUserID(userID uint) (*Profile, error) {
	var profile Profile
	err := r.db.Preload("User").Where("user_id = ?", userID).First(&profile).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil // Missing profile is a normal empty state, not an error
		}
		return nil, err
	}
	return &profile, nil
}

// Upsert creates the profile on first save and fully replaces the editable
// fields afterwards. Saving the same payload twice leaves the same row, so
// the operation is idempotent.
func (r *profileRepository) Upsert(profile *Profile) error {
	return r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"teach_skills", "learn_skills", "bio", "is_public", "updated_at"}),
	}).Create(profile).Error
}

// ListPublic returns every public profile except the given user's, ordered
// by user id so match-engine tie-breaks are deterministic.
func (r *profileRepository) ListPublic(excludeUserID uint) ([]Profile, error) {
	var profiles []Profile
	err := r.db.Preload("User").
		Where("is_public = ? AND user_id <> ?", true, excludeUserID).
		Order("user_id ASC").
		Find(&profiles).Error
	return profiles, err
}
