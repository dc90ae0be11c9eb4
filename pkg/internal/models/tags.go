package models

// Tag titles are unique at the store level; a create racing another
// create fails on the index and re-fetches (services.GetTagOrCreate).
type Tag struct {
	BaseModel

	Title string `json:"title" gorm:"uniqueIndex"`

	Maps []TagMap `json:"-"`
}

// TagMap is the join row attaching one tag to one post. Rows are
// bulk-deleted by post when tags are replaced or the post is removed.
type TagMap struct {
	BaseModel

	PostID uint `json:"post_id" gorm:"index"`
	Post   Post `json:"-"`
	TagID  uint `json:"tag_id"`
	Tag    Tag  `json:"tag"`
}
