package services

import (
	"github.com/likelion-vlog/server/pkg/internal/database"
	"github.com/likelion-vlog/server/pkg/internal/models"
)

// The batch counters are the N+1 guard for listing: one grouped query
// per aggregate for a whole page, never one per row. Posts that never
// got a like or comment simply have no row in the result, so callers
// read absent keys as zero.

func BatchCountLikes(idx []uint) (map[uint]int64, error) {
	out := map[uint]int64{}
	if len(idx) == 0 {
		return out, nil
	}

	var rows []struct {
		PostID uint
		Count  int64
	}
	if err := database.C.Model(&models.Like{}).
		Select("post_id, COUNT(id) as count").
		Where("post_id IN ?", idx).
		Group("post_id").
		Scan(&rows).Error; err != nil {
		return out, err
	}

	for _, row := range rows {
		out[row.PostID] = row.Count
	}
	return out, nil
}

func BatchCountComments(idx []uint) (map[uint]int64, error) {
	out := map[uint]int64{}
	if len(idx) == 0 {
		return out, nil
	}

	var rows []struct {
		PostID uint
		Count  int64
	}
	if err := database.C.Model(&models.Comment{}).
		Select("post_id, COUNT(id) as count").
		Where("post_id IN ?", idx).
		Group("post_id").
		Scan(&rows).Error; err != nil {
		return out, err
	}

	for _, row := range rows {
		out[row.PostID] = row.Count
	}
	return out, nil
}

func CountPostLikes(id uint) (int64, error) {
	var count int64
	if err := database.C.Model(&models.Like{}).
		Where("post_id = ?", id).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func CountPostComments(id uint) (int64, error) {
	var count int64
	if err := database.C.Model(&models.Comment{}).
		Where("post_id = ?", id).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
