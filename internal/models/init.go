package models

import (
	"github.com/freshmart-next/internal/constants"
	"github.com/freshmart-next/internal/logger"

	"golang.org/x/crypto/bcrypt"
)

// InitDefaultUser creates a bootstrap user account when the users table is
// empty, so a fresh install has a login to exercise the cart with.
func InitDefaultUser(username, password string) error {
	var count int64
	DB.Model(&User{}).Count(&count)
	if count > 0 {
		return nil
	}

	if username == "" {
		username = "demo"
	}
	if password == "" {
		password = "demo12345"
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	user := User{
		Username:     username,
		PasswordHash: string(hash),
		Status:       constants.UserStatusActive,
	}
	if err := DB.Create(&user).Error; err != nil {
		return err
	}

	if password == "demo12345" {
		logger.Warnw("default_user_created_with_default_password", "username", username)
	} else {
		logger.Warnw("default_user_created", "username", username, "password_hidden", true)
	}
	return nil
}
