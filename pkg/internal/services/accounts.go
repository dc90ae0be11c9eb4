package services

import (
	"errors"

	"github.com/likelion-vlog/server/pkg/internal/database"
	"github.com/likelion-vlog/server/pkg/internal/models"
	"gorm.io/gorm"
)

func GetUser(id uint) (models.User, error) {
	var user models.User
	if err := database.C.Where("id = ?", id).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return user, &NotFoundError{Subject: "user", ID: id}
		}
		return user, err
	}
	return user, nil
}
