// SPDX-License-Identifier: Unlicense OR MIT

// Package event contains the types for input event handling.
package event

// Tag is the stable identifier for an event handler.
// For a handler h, the tag is typically &h.
type Tag interface{}

// Event is the marker interface for events.
type Event interface {
	ImplementsEvent()
}

// Command is the marker interface for commands queued by handlers
// for the host to execute after the frame, such as clipboard
// requests and redraw scheduling.
type Command interface {
	ImplementsCommand()
}

// Queue delivers the events routed to a handler for the
// current frame.
type Queue interface {
	// Events returns the available events for a tag.
	Events(t Tag) []Event
}
