// SPDX-License-Identifier: Unlicense OR MIT

/*
Package gesture implements common pointer gestures.

Gestures reduce low level pointer Events delivered by the host
into higher level actions such as repeated clicks and scrolling.
A handler feeds the pointer events routed to it into its gesture
recognizers one by one.
*/
package gesture

import (
	"math"
	"time"

	"github.com/tamewild/imtext/f32"
	"github.com/tamewild/imtext/io/key"
	"github.com/tamewild/imtext/io/pointer"
)

// The duration is somewhat arbitrary.
const doubleClickDuration = 500 * time.Millisecond

// Click detects click gestures in the form
// of ClickEvents.
type Click struct {
	// clickedAt is the timestamp at which
	// the last click occurred.
	clickedAt time.Duration
	// clicks is the number of consecutive clicks.
	clicks int
	// pressed tracks whether the pointer is pressed.
	pressed bool
	// pid is the pointer.ID.
	pid pointer.ID
}

// ClickEvent represent a click action, either a
// KindPress for the beginning of a click or a
// KindClick for a completed click.
type ClickEvent struct {
	Kind      ClickKind
	Position  f32.Point
	Source    pointer.Source
	Modifiers key.Modifiers
	// NumClicks records successive clicks occurring
	// within a short duration of each other.
	NumClicks int
}

type ClickKind uint8

// Scroll detects scroll gestures and reduces them to
// scroll distances.
type Scroll struct {
	axis   Axis
	scroll float32
}

type Axis uint8

const (
	Horizontal Axis = iota
	Vertical
)

const (
	// KindPress is reported for the first pointer
	// press.
	KindPress ClickKind = iota
	// KindClick is reported when a click action
	// is complete.
	KindClick
	// KindCancel is reported when the gesture is
	// cancelled.
	KindCancel
)

// Update processes a pointer event, reporting a ClickEvent when one
// was recognized.
func (c *Click) Update(e pointer.Event) (ClickEvent, bool) {
	switch e.Kind {
	case pointer.Release:
		if !c.pressed || c.pid != e.PointerID {
			break
		}
		c.pressed = false
		return ClickEvent{
			Kind:      KindClick,
			Position:  e.Position,
			Source:    e.Source,
			Modifiers: e.Modifiers,
			NumClicks: c.clicks,
		}, true
	case pointer.Cancel:
		wasPressed := c.pressed
		c.pressed = false
		if wasPressed {
			return ClickEvent{Kind: KindCancel}, true
		}
	case pointer.Press:
		if c.pressed {
			break
		}
		if e.Source == pointer.Mouse && e.Buttons != pointer.ButtonPrimary {
			break
		}
		c.pressed = true
		c.pid = e.PointerID
		if e.Time-c.clickedAt < doubleClickDuration {
			c.clicks++
		} else {
			c.clicks = 1
		}
		c.clickedAt = e.Time
		return ClickEvent{
			Kind:      KindPress,
			Position:  e.Position,
			Source:    e.Source,
			Modifiers: e.Modifiers,
			NumClicks: c.clicks,
		}, true
	}
	return ClickEvent{}, false
}

// Pressed reports whether a pointer is pressing.
func (c *Click) Pressed() bool {
	return c.pressed
}

// Update accumulates the scroll distance of a pointer scroll event
// along the axis, in integer pixels. Leftover fractions carry over
// to the next event.
func (s *Scroll) Update(e pointer.Event, axis Axis) int {
	if s.axis != axis {
		s.axis = axis
		s.scroll = 0
	}
	if e.Kind != pointer.Scroll {
		return 0
	}
	switch s.axis {
	case Horizontal:
		s.scroll += e.Scroll.X
	case Vertical:
		s.scroll += e.Scroll.Y
	}
	iscroll := int(math.Trunc(float64(s.scroll)))
	s.scroll -= float32(iscroll)
	return iscroll
}

func (a Axis) String() string {
	switch a {
	case Horizontal:
		return "Horizontal"
	case Vertical:
		return "Vertical"
	default:
		panic("invalid Axis")
	}
}

func (ct ClickKind) String() string {
	switch ct {
	case KindPress:
		return "KindPress"
	case KindClick:
		return "KindClick"
	case KindCancel:
		return "KindCancel"
	default:
		panic("invalid ClickKind")
	}
}
