package models

// Comment threading is stored but only top-level rows (parent_id IS
// NULL) are surfaced by the post detail view.
type Comment struct {
	BaseModel

	Content string `json:"content" gorm:"type:text"`

	PostID uint `json:"post_id" gorm:"index"`
	Post   Post `json:"-"`
	UserID uint `json:"user_id"`
	User   User `json:"user"`

	ParentID *uint     `json:"parent_id"`
	Parent   *Comment  `json:"-" gorm:"foreignKey:ParentID"`
	Replies  []Comment `json:"-" gorm:"foreignKey:ParentID"`
}
