// SPDX-License-Identifier: Unlicense OR MIT

// Package clipboard implements clipboard commands and events.
package clipboard

import (
	"github.com/tamewild/imtext/io/event"
)

// WriteCmd copies Text to the clipboard.
type WriteCmd struct {
	Text string
}

// ReadCmd requests the text of the clipboard, delivered to
// the handler as an Event.
type ReadCmd struct {
	Tag event.Tag
}

// Event is generated when the clipboard content is requested.
type Event struct {
	Text string
}

func (Event) ImplementsEvent() {}

func (WriteCmd) ImplementsCommand() {}
func (ReadCmd) ImplementsCommand()  {}
