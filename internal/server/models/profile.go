package models

import "time"

// Profile is the per-user profile record, created exactly once at
// registration. AvatarKey names an object in the avatar bucket; empty
// means no avatar has been uploaded.
type Profile struct {
	ID        string    `json:"id"`
	UserID    string    `json:"userId"`
	Bio       string    `json:"bio"`
	AvatarKey string    `json:"avatarKey,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}
