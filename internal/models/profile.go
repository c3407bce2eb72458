package models

import "time"

// Profile represents a user identity and its settings. The ID doubles as
// the JWT subject; every other entity is scoped to it.
type Profile struct {
	ID                   string    `json:"id"`
	Email                string    `json:"email"`
	FullName             string    `json:"full_name"`
	AvatarURL            string    `json:"avatar_url"`
	NotificationsEnabled bool      `json:"notifications_enabled"`
	PasswordHash         string    `json:"-"` // Not serialized
	CreatedAt            time.Time `json:"created_at"`
}
