// SPDX-License-Identifier: Unlicense OR MIT

// Package widget implements interactive text controls. Widgets contain
// persistent state and process user events; drawing goes through a
// render command list backed by the shared glyph atlas.
package widget
