// SPDX-License-Identifier: Unlicense OR MIT

package layout

import (
	"time"

	"github.com/tamewild/imtext/io/event"
	"github.com/tamewild/imtext/io/system"
	"github.com/tamewild/imtext/unit"
)

// Context carries the state needed by almost all widgets. The host
// constructs one per frame, delivers the frame's input events through
// Queue and executes the commands accumulated in Commands after the
// frame.
type Context struct {
	// Constraints track the constraints for the active widget or
	// layout.
	Constraints Constraints

	Metric unit.Metric
	// Now is the animation time.
	Now time.Time
	// Locale provides information on the system's language preferences.
	Locale system.Locale

	// Queue delivers this frame's events. A nil Queue delivers no
	// events.
	Queue event.Queue
	// Commands collects the commands queued by widgets during the
	// frame. A nil Commands discards them.
	Commands *[]event.Command
}

// Dp converts v to pixels.
func (c Context) Dp(v unit.Dp) int {
	return c.Metric.Dp(v)
}

// Sp converts v to pixels.
func (c Context) Sp(v unit.Sp) int {
	return c.Metric.Sp(v)
}

// Events returns the events available to the handler tag this
// frame.
func (c Context) Events(tag event.Tag) []event.Event {
	if c.Queue == nil {
		return nil
	}
	return c.Queue.Events(tag)
}

// Execute queues cmd for the host to run after the frame.
func (c Context) Execute(cmd event.Command) {
	if c.Commands == nil {
		return
	}
	*c.Commands = append(*c.Commands, cmd)
}

// Redraw requests a new frame no later than at.
func (c Context) Redraw(at time.Time) {
	c.Execute(system.RedrawCmd{At: at})
}
