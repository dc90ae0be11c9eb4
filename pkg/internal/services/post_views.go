package services

import (
	"sync"

	"github.com/likelion-vlog/server/pkg/internal/database"
	"github.com/likelion-vlog/server/pkg/internal/models"
	"gorm.io/gorm/clause"
)

var (
	postViewQueue   []models.PostView
	postViewQueueMu sync.Mutex
)

// AddPostView queues a view record; nothing is written until the cron
// flush runs. The core list/mutation paths never touch view_count.
func AddPostView(postID, userID uint) {
	postViewQueueMu.Lock()
	defer postViewQueueMu.Unlock()
	postViewQueue = append(postViewQueue, models.PostView{
		UserID: userID,
		PostID: postID,
	})
}

func FlushPostViews() {
	postViewQueueMu.Lock()
	if len(postViewQueue) == 0 {
		postViewQueueMu.Unlock()
		return
	}
	workingQueue := make([]models.PostView, len(postViewQueue))
	copy(workingQueue, postViewQueue)
	postViewQueue = postViewQueue[:0]
	postViewQueueMu.Unlock()

	updateRequiredPost := make(map[uint]bool)
	for _, item := range workingQueue {
		updateRequiredPost[item.PostID] = true
	}

	_ = database.C.
		Clauses(clause.OnConflict{DoNothing: true}).
		CreateInBatches(workingQueue, 1000).Error

	for k := range updateRequiredPost {
		var count int64
		if err := database.C.Model(&models.PostView{}).Where("post_id = ?", k).Count(&count).Error; err != nil {
			continue
		}
		database.C.Model(&models.Post{}).Where("id = ?", k).Update("view_count", count)
	}
}
