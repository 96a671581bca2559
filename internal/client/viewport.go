package client

// Section is a vertical slab of the rendered page.
type Section struct {
	ID     int64
	Top    float64
	Height float64
}

func (s Section) contains(y float64) bool {
	return y >= s.Top && y < s.Top+s.Height
}

// DaySection is a day's slab plus the slabs of its events.
type DaySection struct {
	Section
	Events []Section
}

// Viewport maps a scroll position to the day and event currently in view.
// Offset shifts the probe line below the top of the window, typically by
// the height of a fixed header.
type Viewport struct {
	Offset float64

	days        []DaySection
	activeDay   int64
	activeEvent int64
}

func NewViewport(offset float64) *Viewport {
	return &Viewport{Offset: offset}
}

// SetSections installs the page geometry. The first day becomes active so
// the navigation always highlights something.
func (v *Viewport) SetSections(days []DaySection) {
	v.days = days
	v.activeDay = 0
	v.activeEvent = 0
	if len(days) > 0 {
		v.activeDay = days[0].ID
	}
}

// Update recomputes the active day and event for a scroll position. When
// no section contains the probe line (past the end, between slabs) the
// previous answer stands.
func (v *Viewport) Update(scrollY float64) {
	probe := scrollY + v.Offset

	for _, day := range v.days {
		if !day.contains(probe) {
			continue
		}
		v.activeDay = day.ID
		v.activeEvent = 0
		for _, ev := range day.Events {
			if ev.contains(probe) {
				v.activeEvent = ev.ID
				break
			}
		}
		return
	}
}

func (v *Viewport) ActiveDay() int64   { return v.activeDay }
func (v *Viewport) ActiveEvent() int64 { return v.activeEvent }
