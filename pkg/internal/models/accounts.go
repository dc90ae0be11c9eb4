package models

type User struct {
	BaseModel

	Email    string `json:"email" gorm:"uniqueIndex"`
	Nickname string `json:"nickname" gorm:"uniqueIndex"`
	Password string `json:"-"`

	Blog *Blog `json:"blog,omitempty"`
}
