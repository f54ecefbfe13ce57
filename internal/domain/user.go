package domain

import "time"

type User struct {
	Id        UserId
	Username  Username
	PassHash  string
	CreatedAt time.Time
}

// Credentials iterate thru layers: handler -> service -> storage
type Credentials struct {
	Username Username
	Password Password
}

// CreatedUser is the public view returned after registration.
type CreatedUser struct {
	Id       UserId   `json:"id"`
	Username Username `json:"username"`
}
