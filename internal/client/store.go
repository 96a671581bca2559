package client

import (
	"context"
	"sort"
	"time"
)

// Store holds the client's in-memory album tree. LoadAll is atomic: either
// the whole graph is replaced or the previous state survives untouched.
type Store struct {
	gw *Gateway

	album        Album
	days         []TripDay
	participants []Participant
	loaded       bool
	loadErr      error
}

func NewStore(gw *Gateway) *Store {
	return &Store{gw: gw}
}

// LoadAll fetches the full album graph in one round trip and swaps it in.
// On failure the store keeps whatever it held before and records the error.
func (s *Store) LoadAll(ctx context.Context, albumID string) error {
	full, err := s.gw.FetchFullAlbum(ctx, albumID)
	if err != nil {
		s.loadErr = err
		return err
	}

	s.album = full.Album
	s.days = full.Days
	s.participants = full.Participants
	s.loaded = true
	s.loadErr = nil
	s.sortDays()
	return nil
}

// Clear drops all loaded state, typically on logout.
func (s *Store) Clear() {
	s.album = Album{}
	s.days = nil
	s.participants = nil
	s.loaded = false
	s.loadErr = nil
}

func (s *Store) Loaded() bool    { return s.loaded }
func (s *Store) LoadErr() error  { return s.loadErr }
func (s *Store) Album() Album    { return s.album }
func (s *Store) Days() []TripDay { return s.days }

func (s *Store) Participants() []Participant {
	return s.participants
}

// Day returns a pointer into the live tree, valid until the next structural
// mutation of the days slice.
func (s *Store) Day(dayID int64) *TripDay {
	for i := range s.days {
		if s.days[i].ID == dayID {
			return &s.days[i]
		}
	}
	return nil
}

func (s *Store) Event(dayID, eventID int64) *TripEvent {
	day := s.Day(dayID)
	if day == nil {
		return nil
	}
	for i := range day.Events {
		if day.Events[i].ID == eventID {
			return &day.Events[i]
		}
	}
	return nil
}

func (s *Store) insertDay(day TripDay) {
	s.days = append(s.days, day)
	s.sortDays()
}

func (s *Store) removeDay(dayID int64) {
	for i := range s.days {
		if s.days[i].ID == dayID {
			s.days = append(s.days[:i], s.days[i+1:]...)
			return
		}
	}
}

// sortDays keeps the tree chronological. The sort is stable so days whose
// dates cannot be parsed keep their relative order at the end.
func (s *Store) sortDays() {
	sort.SliceStable(s.days, func(i, j int) bool {
		ti, oki := parseDayDate(s.days[i].Date)
		tj, okj := parseDayDate(s.days[j].Date)
		if oki && okj {
			return ti.Before(tj)
		}
		return oki && !okj
	})
}

var dayDateLayouts = []string{
	"2006-01-02",
	"January 2, 2006",
}

func parseDayDate(s string) (time.Time, bool) {
	for _, layout := range dayDateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}
