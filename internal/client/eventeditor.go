package client

import (
	"context"
	"fmt"
)

// EventEditor drives inline editing of events. Saving is optimistic: edit
// mode closes and the tree updates immediately, and the previous state is
// restored if the backend rejects the change.
type EventEditor struct {
	store *Store
	gw    *Gateway

	Confirm func(prompt string) bool

	editingID   int64
	Name        string
	Description string
	Emoji       string
	Location    string
	errMsg      string

	inflight map[int64]bool
}

func NewEventEditor(store *Store, gw *Gateway) *EventEditor {
	return &EventEditor{store: store, gw: gw, inflight: make(map[int64]bool)}
}

func (e *EventEditor) Editing() int64 { return e.editingID }
func (e *EventEditor) Error() string  { return e.errMsg }

func (e *EventEditor) StartEdit(dayID, eventID int64) {
	ev := e.store.Event(dayID, eventID)
	if ev == nil {
		return
	}
	e.editingID = eventID
	e.Name = ev.Name
	e.Description = ev.Description
	e.Emoji = ev.Emoji
	e.Location = ev.Location
	e.errMsg = ""
}

func (e *EventEditor) Cancel() {
	e.editingID = 0
	e.Name = ""
	e.Description = ""
	e.Emoji = ""
	e.Location = ""
	e.errMsg = ""
}

// Save persists the edit buffers. A save already in flight for the same
// event makes further saves silent no-ops until it settles, so a double
// click cannot issue two requests.
func (e *EventEditor) Save(ctx context.Context, dayID, eventID int64) error {
	if e.inflight[eventID] {
		return nil
	}

	ev := e.store.Event(dayID, eventID)
	if ev == nil {
		return fmt.Errorf("event %d not loaded", eventID)
	}
	if e.Name == "" {
		e.errMsg = "Name cannot be empty"
		return fmt.Errorf("name cannot be empty")
	}

	name, description, emoji, location := e.Name, e.Description, e.Emoji, e.Location
	e.inflight[eventID] = true
	e.Cancel()

	err := applyOptimistic(ev, func(ev *TripEvent) {
		ev.Name = name
		ev.Description = description
		ev.Emoji = emoji
		ev.Location = location
	}, func() error {
		return e.gw.UpdateEvent(ctx, eventID, name, description, emoji, location)
	})
	delete(e.inflight, eventID)
	if err != nil {
		e.errMsg = err.Error()
		return err
	}
	return nil
}

// Create appends a new event to the day with placeholder values and every
// album participant attached, then enters edit mode on it.
func (e *EventEditor) Create(ctx context.Context, dayID int64) (int64, error) {
	day := e.store.Day(dayID)
	if day == nil {
		return 0, fmt.Errorf("day %d not loaded", dayID)
	}

	participants := e.store.Participants()
	ids := make([]string, 0, len(participants))
	for _, p := range participants {
		ids = append(ids, p.ID)
	}

	name, emoji := "New Event", "📍"
	description, location := "Add a description", "Add location"
	id, err := e.gw.CreateEvent(ctx, dayID, name, description, emoji, location, ids)
	if err != nil {
		e.errMsg = err.Error()
		return 0, err
	}

	day.Events = append(day.Events, TripEvent{
		ID:           id,
		Name:         name,
		Description:  description,
		Emoji:        emoji,
		Location:     location,
		Participants: participants,
	})
	e.StartEdit(dayID, id)
	return id, nil
}

// Delete removes an event after confirmation. Events with media attached
// are refused before any request is made.
func (e *EventEditor) Delete(ctx context.Context, dayID, eventID int64) error {
	day := e.store.Day(dayID)
	ev := e.store.Event(dayID, eventID)
	if day == nil || ev == nil {
		return fmt.Errorf("event %d not loaded", eventID)
	}
	if ev.HasMedia() {
		e.errMsg = "Remove the event's media first"
		return fmt.Errorf("event %d still has media", eventID)
	}
	if e.Confirm != nil && !e.Confirm(fmt.Sprintf("Delete %q?", ev.Name)) {
		return nil
	}

	if err := e.gw.DeleteEvent(ctx, eventID); err != nil {
		e.errMsg = err.Error()
		return err
	}

	for i := range day.Events {
		if day.Events[i].ID == eventID {
			day.Events = append(day.Events[:i], day.Events[i+1:]...)
			break
		}
	}
	if e.editingID == eventID {
		e.Cancel()
	}
	return nil
}

// SetParticipant toggles a participant on an event optimistically.
func (e *EventEditor) SetParticipant(ctx context.Context, dayID, eventID int64, p Participant, add bool) error {
	ev := e.store.Event(dayID, eventID)
	if ev == nil {
		return fmt.Errorf("event %d not loaded", eventID)
	}

	action := "remove"
	if add {
		action = "add"
	}

	err := applyOptimistic(ev, func(ev *TripEvent) {
		next := make([]Participant, 0, len(ev.Participants)+1)
		for _, existing := range ev.Participants {
			if existing.ID != p.ID {
				next = append(next, existing)
			}
		}
		if add {
			next = append(next, p)
		}
		ev.Participants = next
	}, func() error {
		return e.gw.SetEventParticipant(ctx, eventID, p.ID, action)
	})
	if err != nil {
		e.errMsg = err.Error()
	}
	return err
}
