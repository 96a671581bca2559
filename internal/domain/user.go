package domain

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	ID           uuid.UUID `json:"-" db:"id"`
	UserID       string    `json:"id" db:"user_id"`
	Name         string    `json:"name" db:"name"`
	AvatarURL    *string   `json:"avatar,omitempty" db:"avatar_url"`
	PasswordHash string    `json:"-" db:"password_hash"`
	CreatedAt    time.Time `json:"-" db:"created_at"`
	UpdatedAt    time.Time `json:"-" db:"updated_at"`
}

// Participant is the public shape of a user inside an album: the login
// handle, display name and avatar. Days and events reference participants,
// they never own them.
type Participant struct {
	ID     string  `json:"id" db:"user_id"`
	Name   string  `json:"name" db:"name"`
	Avatar *string `json:"avatar,omitempty" db:"avatar_url"`
}

func (u *User) Participant() Participant {
	return Participant{ID: u.UserID, Name: u.Name, Avatar: u.AvatarURL}
}

type LoginInput struct {
	UserID   string `json:"userId"`
	Password string `json:"password"`
}

type TokenPair struct {
	AccessToken  string `json:"token"`
	RefreshToken string `json:"refreshToken"`
}
