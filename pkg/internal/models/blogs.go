package models

// Blog is the per-user post container. Exactly one per user, enforced
// by the unique index on user_id.
type Blog struct {
	BaseModel

	Title string `json:"title"`

	UserID uint `json:"user_id" gorm:"uniqueIndex"`
	User   User `json:"user"`

	Posts []Post `json:"posts,omitempty"`
}
