package domain

import (
	"time"

	"github.com/google/uuid"
)

// DateFormat is the wire format for trip-day dates.
const DateFormat = "2006-01-02"

type TripDay struct {
	ID              int64     `json:"id" db:"id"`
	AlbumID         uuid.UUID `json:"albumId" db:"album_id"`
	Title           string    `json:"title" db:"title"`
	Date            time.Time `json:"date" db:"date"`
	SortOrder       int       `json:"sortOrder" db:"sort_order"`
	BackgroundColor *string   `json:"backgroundColor,omitempty" db:"background_color"`
	CreatedAt       time.Time `json:"-" db:"created_at"`
	UpdatedAt       time.Time `json:"-" db:"updated_at"`
}

type CreateTripDayInput struct {
	AlbumID uuid.UUID `json:"albumId"`
	Title   string    `json:"title"`
	Date    string    `json:"date"`
}

type UpdateTripDayInput struct {
	Title string `json:"title"`
	Date  string `json:"date"`
}
