package models

// Like marks that one user liked one post, at most once per pair.
type Like struct {
	BaseModel

	UserID uint `json:"user_id" gorm:"uniqueIndex:idx_likes_user_post"`
	User   User `json:"-"`
	PostID uint `json:"post_id" gorm:"uniqueIndex:idx_likes_user_post"`
	Post   Post `json:"-"`
}
