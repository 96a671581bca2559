package client

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func viewportFixture() *Viewport {
	v := NewViewport(80)
	v.SetSections([]DaySection{
		{
			Section: Section{ID: 1, Top: 0, Height: 600},
			Events: []Section{
				{ID: 10, Top: 100, Height: 200},
				{ID: 11, Top: 300, Height: 200},
			},
		},
		{
			Section: Section{ID: 2, Top: 700, Height: 400},
			Events: []Section{
				{ID: 20, Top: 750, Height: 300},
			},
		},
	})
	return v
}

func TestViewport_DefaultsToFirstDay(t *testing.T) {
	v := viewportFixture()

	assert.Equal(t, int64(1), v.ActiveDay())
	assert.Zero(t, v.ActiveEvent())
}

func TestViewport_Update(t *testing.T) {
	v := viewportFixture()

	// Probe line is scroll position plus header offset.
	v.Update(50) // probe 130: day 1, event 10
	assert.Equal(t, int64(1), v.ActiveDay())
	assert.Equal(t, int64(10), v.ActiveEvent())

	v.Update(270) // probe 350: day 1, event 11
	assert.Equal(t, int64(11), v.ActiveEvent())

	v.Update(500) // probe 580: day 1, between events
	assert.Equal(t, int64(1), v.ActiveDay())
	assert.Zero(t, v.ActiveEvent())

	v.Update(700) // probe 780: day 2, event 20
	assert.Equal(t, int64(2), v.ActiveDay())
	assert.Equal(t, int64(20), v.ActiveEvent())
}

func TestViewport_GapKeepsPreviousAnswer(t *testing.T) {
	v := viewportFixture()

	v.Update(270)
	assert.Equal(t, int64(11), v.ActiveEvent())

	// Probe in the gap between days: the last answer stands.
	v.Update(570) // probe 650
	assert.Equal(t, int64(1), v.ActiveDay())
	assert.Equal(t, int64(11), v.ActiveEvent())

	// Probe past the end of the page too.
	v.Update(2000)
	assert.Equal(t, int64(1), v.ActiveDay())
}

func TestViewport_EmptySections(t *testing.T) {
	v := NewViewport(0)
	v.SetSections(nil)
	v.Update(100)

	assert.Zero(t, v.ActiveDay())
	assert.Zero(t, v.ActiveEvent())
}
