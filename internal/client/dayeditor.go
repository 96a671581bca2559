package client

import (
	"context"
	"fmt"
	"time"
)

// DayEditor drives inline editing of a day's title and date. At most one
// day is in edit mode at a time; starting an edit on another day abandons
// the first without saving.
type DayEditor struct {
	store *Store
	gw    *Gateway

	// Confirm is asked before destructive actions. A nil hook means
	// "always yes", which suits tests.
	Confirm func(prompt string) bool

	editingID int64
	Title     string
	Date      string
	errMsg    string
}

func NewDayEditor(store *Store, gw *Gateway) *DayEditor {
	return &DayEditor{store: store, gw: gw}
}

func (e *DayEditor) Editing() int64 { return e.editingID }
func (e *DayEditor) Error() string  { return e.errMsg }

// StartEdit enters edit mode for the day, seeding the buffers from the
// current tree state.
func (e *DayEditor) StartEdit(dayID int64) {
	day := e.store.Day(dayID)
	if day == nil {
		return
	}
	e.editingID = dayID
	e.Title = day.Title
	e.Date = day.Date
	e.errMsg = ""
}

func (e *DayEditor) Cancel() {
	e.editingID = 0
	e.Title = ""
	e.Date = ""
	e.errMsg = ""
}

// Save validates the buffers, persists the change, and applies it to the
// local tree. Validation failures never reach the backend.
func (e *DayEditor) Save(ctx context.Context, dayID int64) error {
	day := e.store.Day(dayID)
	if day == nil {
		return fmt.Errorf("day %d not loaded", dayID)
	}

	if e.Title == "" {
		e.errMsg = "Title cannot be empty"
		return fmt.Errorf("title cannot be empty")
	}
	parsed, ok := parseDayDate(e.Date)
	if !ok {
		e.errMsg = "Invalid date"
		return fmt.Errorf("invalid date %q", e.Date)
	}
	date := parsed.Format("2006-01-02")

	err := applyOptimistic(day, func(d *TripDay) {
		d.Title = e.Title
		d.Date = date
	}, func() error {
		return e.gw.UpdateDay(ctx, dayID, e.Title, date)
	})
	if err != nil {
		e.errMsg = err.Error()
		return err
	}

	e.store.sortDays()
	e.Cancel()
	return nil
}

// Create adds a new day with placeholder values and drops straight into
// edit mode on it. A duplicate-date conflict surfaces as an error message
// without touching the tree.
func (e *DayEditor) Create(ctx context.Context, albumID string) (int64, error) {
	title := "New Day"
	date := time.Now().Format("2006-01-02")

	id, err := e.gw.CreateDay(ctx, albumID, title, date)
	if err != nil {
		e.errMsg = err.Error()
		return 0, err
	}

	e.store.insertDay(TripDay{ID: id, Title: title, Date: date})
	e.StartEdit(id)
	return id, nil
}

// Delete removes an empty day after confirmation. Days with events are
// refused locally before any request is made.
func (e *DayEditor) Delete(ctx context.Context, dayID int64) error {
	day := e.store.Day(dayID)
	if day == nil {
		return fmt.Errorf("day %d not loaded", dayID)
	}
	if len(day.Events) > 0 {
		e.errMsg = "Delete the day's events first"
		return fmt.Errorf("day %d still has events", dayID)
	}
	if e.Confirm != nil && !e.Confirm(fmt.Sprintf("Delete %q?", day.Title)) {
		return nil
	}

	if err := e.gw.DeleteDay(ctx, dayID); err != nil {
		e.errMsg = err.Error()
		return err
	}

	e.store.removeDay(dayID)
	if e.editingID == dayID {
		e.Cancel()
	}
	return nil
}
