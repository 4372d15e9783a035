package service

import (
	"github.com/freshmart-next/internal/models"
	"github.com/freshmart-next/internal/repository"
)

// UserLoginLogService records successful logins. Entries are written by the
// worker from queued tasks so the login path never blocks on audit writes.
type UserLoginLogService struct {
	logRepo repository.UserLoginLogRepository
}

func NewUserLoginLogService(logRepo repository.UserLoginLogRepository) *UserLoginLogService {
	return &UserLoginLogService{logRepo: logRepo}
}

func (s *UserLoginLogService) Record(userID uint, clientIP, userAgent string) error {
	return s.logRepo.Create(&models.UserLoginLog{
		UserID:    userID,
		ClientIP:  clientIP,
		UserAgent: userAgent,
	})
}

func (s *UserLoginLogService) CountByUser(userID uint) (int64, error) {
	return s.logRepo.CountByUser(userID)
}
