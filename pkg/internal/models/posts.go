package models

import "time"

type Post struct {
	BaseModel

	Title     string `json:"title"`
	Content   string `json:"content" gorm:"type:text"`
	ViewCount int64  `json:"view_count"`

	BlogID uint `json:"blog_id"`
	Blog   Blog `json:"blog"`

	TagMaps []TagMap `json:"-"`

	// Filled by the read side, never persisted.
	Tags   []string   `json:"tags" gorm:"-"`
	Metric PostMetric `json:"metric" gorm:"-"`
}

type PostMetric struct {
	LikeCount    int64 `json:"like_count"`
	CommentCount int64 `json:"comment_count"`
}

// PostView records one viewer hitting one post. Rows are queued
// in-process and flushed in batches, see services.FlushPostViews.
type PostView struct {
	UserID    uint      `json:"user_id" gorm:"primaryKey"`
	PostID    uint      `json:"post_id" gorm:"primaryKey"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
