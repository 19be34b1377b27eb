// SPDX-License-Identifier: Unlicense OR MIT

// Package system contains events and commands usually handled at the
// top-level program level.
package system

import "time"

// Locale provides language information for the current system.
type Locale struct {
	// Language is the BCP-47 tag for the primary language of the system.
	Language string
	// Direction indicates the primary direction of text and layout
	// flow for the system.
	Direction TextDirection
}

// TextDirection defines a direction for text flow.
type TextDirection byte

// Progression indicates the direction text flows along the axis.
type Progression byte

const (
	// LTR is left-to-right text.
	LTR TextDirection = TextDirection(FromOrigin)
	// RTL is right-to-left text.
	RTL TextDirection = TextDirection(TowardOrigin)

	// FromOrigin indicates text that flows from the origin towards
	// the positive extent of the axis.
	FromOrigin Progression = 0
	// TowardOrigin indicates text that flows from the positive extent
	// of the axis towards the origin.
	TowardOrigin Progression = 1
)

// Progression returns the text flow of the direction relative to
// the layout origin in the top left corner.
func (d TextDirection) Progression() Progression {
	return Progression(d & 1)
}

func (d TextDirection) String() string {
	switch d {
	case LTR:
		return "LTR"
	case RTL:
		return "RTL"
	default:
		return "unknown"
	}
}

// RedrawCmd schedules a redraw no later than At. A zero At requests
// an immediate redraw. Handlers animating visible state, such as a
// blinking caret, issue it to be invoked again at the deadline.
type RedrawCmd struct {
	At time.Time
}

func (RedrawCmd) ImplementsCommand() {}
