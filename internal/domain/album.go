package domain

import (
	"time"

	"github.com/google/uuid"
)

type Album struct {
	ID        uuid.UUID `json:"id" db:"id"`
	Title     string    `json:"title" db:"title"`
	CoverURL  *string   `json:"coverUrl,omitempty" db:"cover_url"`
	OwnerID   uuid.UUID `json:"-" db:"owner_id"`
	CreatedAt time.Time `json:"-" db:"created_at"`
	UpdatedAt time.Time `json:"-" db:"updated_at"`
}

// FullAlbum is the single-round-trip album graph: metadata, the participant
// set, and every day with its events and media. Clients replace their whole
// tree with it atomically.
type FullAlbum struct {
	Album        Album         `json:"album"`
	Participants []Participant `json:"participants"`
	Days         []DayView     `json:"days"`
}

type DayView struct {
	ID              int64         `json:"id"`
	Title           string        `json:"title"`
	Date            string        `json:"date"`
	HeroPhoto       *string       `json:"heroPhoto,omitempty"`
	PhotoCount      int           `json:"photoCount"`
	BackgroundColor *string       `json:"backgroundColor,omitempty"`
	Participants    []Participant `json:"participants"`
	Events          []EventView   `json:"events"`
}

type EventView struct {
	ID           int64         `json:"id"`
	Name         string        `json:"name"`
	Description  string        `json:"description"`
	Emoji        string        `json:"emoji"`
	Location     *string       `json:"location,omitempty"`
	Photos       []MediaView   `json:"photos"`
	Videos       []MediaView   `json:"videos"`
	Participants []Participant `json:"participants"`
}

type MediaView struct {
	URL      string      `json:"url"`
	Uploader Participant `json:"uploader"`
}

type InviteInput struct {
	Email string `json:"email"`
	Name  string `json:"name"`
	// ParticipantID is the invitee's login handle when their account
	// already exists; the invite then also attaches them to the album.
	ParticipantID string `json:"participantId,omitempty"`
}
