package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/DhavalSuthar-24/livescore/internal/user"
	"gorm.io/gorm"
)

// TokenRepository stores refresh tokens.
type TokenRepository interface {
	SaveRefreshToken(token *user.RefreshToken) error
	GetRefreshToken(tokenString string) (*user.RefreshToken, error)
	InvalidateRefreshToken(userID uint, tokenString string) error
	InvalidateAllRefreshTokensForUser(userID uint) error
}

type tokenRepository struct {
	db *gorm.DB
}

func NewTokenRepository(db *gorm.DB) TokenRepository {
	return &tokenRepository{db: db}
}

func (r *tokenRepository) SaveRefreshToken(token *user.RefreshToken) error {
	return r.db.Create(token).Error
}

// GetRefreshToken returns a live token, or nil when it is unknown, expired or revoked.
func (r *tokenRepository) GetRefreshToken(tokenString string) (*user.RefreshToken, error) {
	var rt user.RefreshToken
	err := r.db.Where("token = ? AND expires_at > ? AND revoked = ?", tokenString, time.Now(), false).First(&rt).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &rt, nil
}

// InvalidateRefreshToken revokes tokenString only when it belongs to userID.
func (r *tokenRepository) InvalidateRefreshToken(userID uint, tokenString string) error {
	return r.db.Model(&user.RefreshToken{}).
		Where("token = ? AND user_id = ?", tokenString, userID).
		Update("revoked", true).Error
}

func (r *tokenRepository) InvalidateAllRefreshTokensForUser(userID uint) error {
	result := r.db.Model(&user.RefreshToken{}).
		Where("user_id = ? AND revoked = ?", userID, false).
		Update("revoked", true)

	if result.Error != nil {
		return fmt.Errorf("failed to invalidate all refresh tokens: %w", result.Error)
	}
	return nil
}
