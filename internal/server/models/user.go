// Package models defines the persistent records of the authentication
// service. JSON tags follow the public API field names.
package models

import "time"

// User is a registered account. The handle (UserName) is unique and
// case-sensitive. PasswordHash holds the bcrypt digest and is excluded
// from JSON so it never leaves the service in a response payload.
type User struct {
	ID           string    `json:"id"`
	FullName     string    `json:"FullName"`
	UserName     string    `json:"UserName"`
	Email        string    `json:"emailId"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"createdAt"`
}
