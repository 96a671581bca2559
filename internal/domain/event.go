package domain

import "time"

type Event struct {
	ID          int64     `json:"id" db:"id"`
	TripDayID   int64     `json:"tripDayId" db:"trip_day_id"`
	Name        string    `json:"name" db:"name"`
	Description string    `json:"description" db:"description"`
	Emoji       string    `json:"emoji" db:"emoji"`
	Location    *string   `json:"location,omitempty" db:"location"`
	SortOrder   int       `json:"sortOrder" db:"sort_order"`
	CreatedAt   time.Time `json:"-" db:"created_at"`
	UpdatedAt   time.Time `json:"-" db:"updated_at"`
}

type CreateEventInput struct {
	TripDayID      int64    `json:"tripDayId"`
	Name           string   `json:"name"`
	Description    string   `json:"description"`
	Emoji          string   `json:"emoji"`
	Location       *string  `json:"location,omitempty"`
	SortOrder      int      `json:"sortOrder"`
	ParticipantIDs []string `json:"participantIds"`
}

type UpdateEventInput struct {
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Emoji       string  `json:"emoji"`
	Location    *string `json:"location,omitempty"`
}

type ParticipantAction string

const (
	ParticipantAdd    ParticipantAction = "add"
	ParticipantRemove ParticipantAction = "remove"
)

type EventParticipantInput struct {
	ParticipantID string            `json:"participantId"`
	Action        ParticipantAction `json:"action"`
}
