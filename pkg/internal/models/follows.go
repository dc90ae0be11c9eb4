package models

// Follow links a follower to a followed user. Migrated with the rest
// of the schema but carries no operations yet.
type Follow struct {
	BaseModel

	FollowerID uint `json:"follower_id" gorm:"uniqueIndex:idx_follows_pair"`
	Follower   User `json:"-"`
	FolloweeID uint `json:"followee_id" gorm:"uniqueIndex:idx_follows_pair"`
	Followee   User `json:"-"`
}
