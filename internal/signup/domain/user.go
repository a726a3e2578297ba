package domain

import "time"

// User is a registration entry. Records are create-only.
type User struct {
	ID             string
	Name           string
	Email          string
	ProfilePicture string   // Generated name of the stored profile picture
	Attachments    []string // Generated names, in submission order
	CreatedAt      time.Time
}
