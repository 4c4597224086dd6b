package model

import "time"

type User struct {
	ID        string
	Name      string
	Email     string
	Avatar    *string
	CreatedAt time.Time
}

// AuthPayload is what login and registration exchange credentials for.
type AuthPayload struct {
	Token string
	User  User
}
