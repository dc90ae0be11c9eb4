package database

import (
	"github.com/likelion-vlog/server/pkg/internal/models"
	"gorm.io/gorm"
)

var AutoMaintainRange = []any{
	&models.User{},
	&models.Blog{},
	&models.Post{},
	&models.Tag{},
	&models.TagMap{},
	&models.Comment{},
	&models.Follow{},
}

func RunMigration(source *gorm.DB) error {
	if err := source.AutoMigrate(
		append(
			AutoMaintainRange,
			&models.Like{},
			&models.PostView{},
		)...,
	); err != nil {
		return err
	}

	return nil
}
