package auth

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/skillswap/skillswap/internal/user"
)

type AuthRepository interface {
	CreateUser(u *user.User) error
	GetUserByEmail(email string) (*user.User, error)
	GetUserByID(id uint) (*user.User, error)
	SaveRefreshToken(userID uint, token string, expiresAt time.Time) error
	GetRefreshToken(token string) (*user.RefreshToken, error)
	InvalidateRefreshToken(token string) error
}

type authRepository struct {
	db *gorm.DB
}

// NewAuthRepository creates a new instance of AuthRepository.
func NewAuthRepository(db *gorm.DB) AuthRepository {
	return &authRepository{db: db}
}

func (r *authRepository) CreateUser(u *user.User) error {
	return r.db.Create(u).Error
}

func (r *authRepository) GetUserByEmail(email string) (*user.User, error) {
	var u user.User
	err := r.db.Where("email = ?", email).First(&u).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &u, nil
}

func (r *authRepository) GetUserByID(id uint) (*user.User, error) {
	var u user.User
	err := r.db.First(&u, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &u, nil
}

func (r *authRepository) SaveRefreshToken(userID uint, token string, expiresAt time.Time) error {
	return r.db.Create(&user.RefreshToken{
		UserID:    userID,
		Token:     token,
		ExpiresAt: expiresAt,
	}).Error
}

func (r *authRepository) GetRefreshToken(token string) (*user.RefreshToken, error) {
	var rt user.RefreshToken
	err := r.db.Where("token = ?", token).First(&rt).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &rt, nil
}

func (r *authRepository) InvalidateRefreshToken(token string) error {
	return r.db.Model(&user.RefreshToken{}).
		Where("token = ?", token).
		Update("revoked", true).Error
}
