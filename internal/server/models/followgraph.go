package models

import "time"

// FollowGraph is the per-user follower/following record, created exactly
// once at registration. Both lists start empty.
type FollowGraph struct {
	ID        string    `json:"id"`
	UserID    string    `json:"userId"`
	Followers []string  `json:"followers"`
	Following []string  `json:"following"`
	CreatedAt time.Time `json:"createdAt"`
}
