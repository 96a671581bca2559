// Package client is the state-synchronization layer of the album client:
// an in-memory tree of days, events, media and participants kept consistent
// with the backend across optimistic edits, reordering and uploads.
//
// The layer is cooperative and single-goroutine: all mutations are driven
// by UI event handlers, one at a time. None of the types here are safe for
// concurrent use.
package client

import "time"

type Participant struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Avatar string `json:"avatar,omitempty"`
}

type MediaItem struct {
	URL      string      `json:"url"`
	Uploader Participant `json:"uploader"`
}

// TripEvent is an ordered entry within a day; the slice order in
// TripDay.Events is the timeline order.
type TripEvent struct {
	ID           int64         `json:"id"`
	Name         string        `json:"name"`
	Description  string        `json:"description"`
	Emoji        string        `json:"emoji"`
	Location     string        `json:"location,omitempty"`
	Photos       []MediaItem   `json:"photos"`
	Videos       []MediaItem   `json:"videos"`
	Participants []Participant `json:"participants"`
}

type TripDay struct {
	ID              int64         `json:"id"`
	Title           string        `json:"title"`
	Date            string        `json:"date"`
	HeroPhoto       string        `json:"heroPhoto,omitempty"`
	PhotoCount      int           `json:"photoCount"`
	BackgroundColor string        `json:"backgroundColor,omitempty"`
	Participants    []Participant `json:"participants"`
	Events          []TripEvent   `json:"events"`
}

type Album struct {
	ID       string `json:"id"`
	Title    string `json:"title"`
	CoverURL string `json:"coverUrl,omitempty"`
}

type Comment struct {
	ID        string      `json:"id"`
	UserID    string      `json:"userId"`
	Author    Participant `json:"author"`
	Content   string      `json:"content"`
	CreatedAt time.Time   `json:"createdAt"`
	UpdatedAt time.Time   `json:"updatedAt"`
}

// HasMedia reports whether any photos or videos are attached; events with
// media cannot be deleted.
func (e *TripEvent) HasMedia() bool {
	return len(e.Photos) > 0 || len(e.Videos) > 0
}
