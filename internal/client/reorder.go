package client

import "context"

// OrderPersister is an optional hook for persisting a day's event order
// after a reorder. The Gateway satisfies it; a nil persister keeps
// reordering local to the session.
type OrderPersister interface {
	PersistEventOrder(ctx context.Context, dayID int64, eventIDs []int64) error
}

// DragSource identifies the event a drag started from.
type DragSource struct {
	DayID   int64
	EventID int64
}

// Reorderer rearranges events within and across days, by arrow moves or by
// drag and drop. All moves mutate the tree immediately; persistence goes
// through the optional Persister.
type Reorderer struct {
	store     *Store
	Persister OrderPersister

	drag *DragSource
}

func NewReorderer(store *Store) *Reorderer {
	return &Reorderer{store: store}
}

func (r *Reorderer) CanMoveUp(dayID, eventID int64) bool {
	day := r.store.Day(dayID)
	return day != nil && indexOfEvent(day, eventID) > 0
}

func (r *Reorderer) CanMoveDown(dayID, eventID int64) bool {
	day := r.store.Day(dayID)
	if day == nil {
		return false
	}
	i := indexOfEvent(day, eventID)
	return i >= 0 && i < len(day.Events)-1
}

// MoveUp swaps the event with its predecessor. Already-first is a no-op.
func (r *Reorderer) MoveUp(ctx context.Context, dayID, eventID int64) error {
	day := r.store.Day(dayID)
	if day == nil {
		return nil
	}
	i := indexOfEvent(day, eventID)
	if i <= 0 {
		return nil
	}
	day.Events[i-1], day.Events[i] = day.Events[i], day.Events[i-1]
	return r.persist(ctx, day)
}

// MoveDown swaps the event with its successor. Already-last is a no-op.
func (r *Reorderer) MoveDown(ctx context.Context, dayID, eventID int64) error {
	day := r.store.Day(dayID)
	if day == nil {
		return nil
	}
	i := indexOfEvent(day, eventID)
	if i < 0 || i >= len(day.Events)-1 {
		return nil
	}
	day.Events[i], day.Events[i+1] = day.Events[i+1], day.Events[i]
	return r.persist(ctx, day)
}

func (r *Reorderer) BeginDrag(dayID, eventID int64) {
	r.drag = &DragSource{DayID: dayID, EventID: eventID}
}

func (r *Reorderer) CancelDrag() {
	r.drag = nil
}

func (r *Reorderer) Dragging() *DragSource {
	return r.drag
}

// DropOnEvent places the dragged event immediately before the target,
// possibly moving it across days. Dropping an event onto itself is a no-op.
func (r *Reorderer) DropOnEvent(ctx context.Context, targetDayID, targetEventID int64) error {
	src := r.drag
	r.drag = nil
	if src == nil {
		return nil
	}
	if src.DayID == targetDayID && src.EventID == targetEventID {
		return nil
	}

	// Resolve the target before detaching: an unknown target day must
	// leave the tree untouched.
	target := r.store.Day(targetDayID)
	if target == nil {
		return nil
	}

	moved, ok := r.detach(src)
	if !ok {
		return nil
	}

	i := indexOfEvent(target, targetEventID)
	if i < 0 {
		i = len(target.Events)
	}
	target.Events = append(target.Events, TripEvent{})
	copy(target.Events[i+1:], target.Events[i:])
	target.Events[i] = moved

	if err := r.persist(ctx, target); err != nil {
		return err
	}
	if src.DayID != targetDayID {
		if day := r.store.Day(src.DayID); day != nil {
			return r.persist(ctx, day)
		}
	}
	return nil
}

// DropOnDay appends the dragged event to the end of the target day.
func (r *Reorderer) DropOnDay(ctx context.Context, targetDayID int64) error {
	src := r.drag
	r.drag = nil
	if src == nil {
		return nil
	}

	target := r.store.Day(targetDayID)
	if target == nil {
		return nil
	}

	moved, ok := r.detach(src)
	if !ok {
		return nil
	}
	target.Events = append(target.Events, moved)

	if err := r.persist(ctx, target); err != nil {
		return err
	}
	if src.DayID != targetDayID {
		if day := r.store.Day(src.DayID); day != nil {
			return r.persist(ctx, day)
		}
	}
	return nil
}

func (r *Reorderer) detach(src *DragSource) (TripEvent, bool) {
	day := r.store.Day(src.DayID)
	if day == nil {
		return TripEvent{}, false
	}
	i := indexOfEvent(day, src.EventID)
	if i < 0 {
		return TripEvent{}, false
	}
	moved := day.Events[i]
	day.Events = append(day.Events[:i], day.Events[i+1:]...)
	return moved, true
}

func (r *Reorderer) persist(ctx context.Context, day *TripDay) error {
	if r.Persister == nil {
		return nil
	}
	ids := make([]int64, len(day.Events))
	for i, ev := range day.Events {
		ids[i] = ev.ID
	}
	return r.Persister.PersistEventOrder(ctx, day.ID, ids)
}

func indexOfEvent(day *TripDay, eventID int64) int {
	for i := range day.Events {
		if day.Events[i].ID == eventID {
			return i
		}
	}
	return -1
}
