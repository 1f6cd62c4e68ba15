package models

import "time"

// Follow records that FollowerID follows FolloweeID. The same edge is
// mirrored in Fan so that both directions of the relation are a plain
// membership test; every mutation writes both tables in one transaction.
type Follow struct {
	ID         uint      `json:"id" gorm:"primaryKey"`
	FollowerID uint      `json:"follower_id" gorm:"index;uniqueIndex:idx_follow_pair"`
	FolloweeID uint      `json:"followee_id" gorm:"uniqueIndex:idx_follow_pair"`
	CreatedAt  time.Time `json:"created_at"`
}

// Fan is the reverse side of Follow: FanID follows UserID.
type Fan struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	UserID    uint      `json:"user_id" gorm:"index;uniqueIndex:idx_fan_pair"`
	FanID     uint      `json:"fan_id" gorm:"uniqueIndex:idx_fan_pair"`
	CreatedAt time.Time `json:"created_at"`
}
