package repository

import (
	"github.com/freshmart-next/internal/models"

	"gorm.io/gorm"
)

// UserLoginLogRepository is the login audit data access interface.
type UserLoginLogRepository interface {
	Create(entry *models.UserLoginLog) error
	CountByUser(userID uint) (int64, error)
}

// GormUserLoginLogRepository is the GORM implementation.
type GormUserLoginLogRepository struct {
	db *gorm.DB
}

// NewUserLoginLogRepository creates a login log repository.
func NewUserLoginLogRepository(db *gorm.DB) *GormUserLoginLogRepository {
	return &GormUserLoginLogRepository{db: db}
}

// Create inserts an audit entry.
func (r *GormUserLoginLogRepository) Create(entry *models.UserLoginLog) error {
	return r.db.Create(entry).Error
}

// CountByUser counts entries for one user.
func (r *GormUserLoginLogRepository) CountByUser(userID uint) (int64, error) {
	var count int64
	if err := r.db.Model(&models.UserLoginLog{}).Where("user_id = ?", userID).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
