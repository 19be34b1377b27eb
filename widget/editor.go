// SPDX-License-Identifier: Unlicense OR MIT

package widget

import (
	"image"
	"image/color"
	"math"
	"os"
	"strings"
	"time"
	"unicode/utf8"

	"golang.org/x/exp/slices"

	"github.com/tamewild/imtext/atlas"
	"github.com/tamewild/imtext/f32"
	"github.com/tamewild/imtext/font"
	"github.com/tamewild/imtext/gesture"
	"github.com/tamewild/imtext/internal/f32color"
	"github.com/tamewild/imtext/io/clipboard"
	"github.com/tamewild/imtext/io/key"
	"github.com/tamewild/imtext/io/pointer"
	"github.com/tamewild/imtext/io/system"
	"github.com/tamewild/imtext/layout"
	"github.com/tamewild/imtext/render"
	"github.com/tamewild/imtext/text"
	"github.com/tamewild/imtext/unit"
)

// debugFatal makes internal invariant violations panic instead of being
// clamped, to surface bugs during development.
var debugFatal = os.Getenv("IMTEXTDEBUG") == "fatal"

// Editor implements an editable and scrollable text area.
//
// The editor is its own event tag: the host delivers the key, pointer
// and clipboard events routed to the editor under the *Editor pointer.
type Editor struct {
	// text manages the text buffer and provides shaping and cursor
	// positioning services.
	text textView
	// Alignment controls the alignment of text within the editor.
	Alignment text.Alignment
	// SingleLine force the text to stay on a single line.
	// SingleLine also sets the scrolling direction to
	// horizontal.
	SingleLine bool
	// ReadOnly controls whether the contents of the editor can be
	// altered by user interaction. If true, the editor still allows
	// selecting and copying text, and hides the caret.
	ReadOnly bool
	// Submit enabled translation of carriage return keys to SubmitEvents.
	// If not enabled, carriage returns are inserted as newlines in the text.
	Submit bool
	// Mask replaces the visual display of each rune in the contents with
	// the given rune. Newline characters are not masked. When non-zero,
	// the unmasked contents are accessed by Len, Text, and SetText.
	Mask rune
	// MaxLen limits the editor content to a maximum length. Zero means
	// no limit.
	MaxLen int
	// WrapPolicy configures how displayed text will be broken into lines.
	WrapPolicy text.WrapPolicy
	// Color is the text and caret color. The zero value draws black text.
	Color color.NRGBA
	// SelectionColor is the background color of selected text. The zero
	// value uses a translucent tint of Color.
	SelectionColor color.NRGBA

	buffer     *editBuffer
	blinkStart time.Time
	focused    bool

	// history contains undo history.
	history []modification
	// nextHistoryIdx is the index within the history of the next modification. This
	// is only not len(history) immediately after undo operations occur. It is framed as the "next" value
	// to make the zero value consistent.
	nextHistoryIdx int

	// gr segments the buffer into grapheme clusters.
	gr graphemeReader
	// graphemes are the rune offsets of the grapheme cluster boundaries
	// of the entire buffer.
	graphemes []int
	// graphemeGen is the buffer generation graphemes was computed from.
	graphemeGen uint
	// graphemesValid tracks whether graphemes has been computed at all.
	graphemesValid bool

	scroller    gesture.Scroll
	scrollCaret bool
	showCaret   bool

	clicker  gesture.Click
	dragging bool

	// contextRequested is set by a secondary click until the next
	// ContextMenu call.
	contextRequested bool
	contextPos       f32.Point

	// pending events are delivered to the caller one at a time by
	// Update.
	pending []EditorEvent
}

// modification represents a change to the contents of the editor buffer.
// It contains the necessary information to both apply the change and
// reverse it, and is used in the undo/redo history.
type modification struct {
	// StartRune is the inclusive index of the first rune
	// modified.
	StartRune int
	// ApplyContent is the data inserted at StartRune to
	// apply this operation.
	ApplyContent string
	// ReverseContent is the data inserted at StartRune to
	// reverse this operation.
	ReverseContent string
}

type selectionAction int

const (
	selectionExtend selectionAction = iota
	selectionClear
)

type EditorEvent interface {
	isEditorEvent()
}

// A ChangeEvent is generated for every user change to the text.
type ChangeEvent struct{}

// A SubmitEvent is generated when Submit is set
// and a carriage return key is pressed.
type SubmitEvent struct {
	Text string
}

// A SelectEvent is generated when the user selects some text, or changes the
// selection (e.g. with a shift-click), including if they remove the
// selection. The selected text is not part of the event, on the theory that
// it could be a relatively expensive operation (for a large editor), most
// applications won't actually care about it, and those that do can call
// Editor.SelectedText() (which can be empty).
type SelectEvent struct{}

func (s ChangeEvent) isEditorEvent() {}
func (s SubmitEvent) isEditorEvent() {}
func (s SelectEvent) isEditorEvent() {}

// ContextAction identifies an entry of the editor's context menu.
type ContextAction uint8

const (
	ActionCut ContextAction = iota
	ActionCopy
	ActionPaste
	ActionSelectAll
)

func (a ContextAction) String() string {
	switch a {
	case ActionCut:
		return "Cut"
	case ActionCopy:
		return "Copy"
	case ActionPaste:
		return "Paste"
	case ActionSelectAll:
		return "Select All"
	default:
		panic("invalid ContextAction")
	}
}

// ContextMenu describes the actions available for the editor's current
// state. The host owns presentation: it draws the menu where it sees
// fit and reports activations through PerformAction.
type ContextMenu struct {
	// Items holds the enabled actions, in display order.
	Items []ContextAction
	// Position is the editor-relative position of the triggering click.
	Position f32.Point
}

const (
	blinksPerSecond  = 1
	maxBlinkDuration = 10 * time.Second
)

func (e *Editor) initBuffer() {
	if e.buffer == nil {
		e.buffer = new(editBuffer)
		e.text.SetSource(e.buffer)
	}
	e.text.Alignment = e.Alignment
	e.text.SingleLine = e.SingleLine
	e.text.Mask = e.Mask
	e.text.WrapPolicy = e.WrapPolicy
}

// Update the state of the editor in response to input events. Update
// consumes editor events until there are no remaining events or an
// editor event is generated. To fully update the state of the editor,
// callers should call Update until it returns false.
func (e *Editor) Update(gtx layout.Context) (EditorEvent, bool) {
	e.initBuffer()
	if len(e.pending) == 0 {
		e.processEvents(gtx)
	}
	if len(e.pending) > 0 {
		out := e.pending[0]
		e.pending = e.pending[:copy(e.pending, e.pending[1:])]
		return out, true
	}
	return nil, false
}

func (e *Editor) processEvents(gtx layout.Context) {
	startSel, endSel := e.text.Selection()
	for _, evt := range gtx.Events(e) {
		switch evt := evt.(type) {
		case key.FocusEvent:
			e.focused = evt.Focus
			if e.focused {
				e.blinkStart = gtx.Now
			}
		case key.Event:
			e.processKey(gtx, evt)
		case key.EditEvent:
			e.processEdit(gtx, evt)
		case pointer.Event:
			e.processPointer(gtx, evt)
		case clipboard.Event:
			e.processPaste(gtx, evt)
		}
	}
	if newStart, newEnd := e.text.Selection(); newStart != startSel || newEnd != endSel {
		e.pending = append(e.pending, SelectEvent{})
	}
}

func (e *Editor) processPointer(gtx layout.Context, evt pointer.Event) {
	var scrollAxis gesture.Axis
	if e.SingleLine {
		scrollAxis = gesture.Horizontal
	} else {
		scrollAxis = gesture.Vertical
	}
	if sdist := e.scroller.Update(evt, scrollAxis); sdist != 0 {
		if e.SingleLine {
			e.text.ScrollRel(sdist, 0)
		} else {
			e.text.ScrollRel(0, sdist)
		}
	}

	if evt.Kind == pointer.Press && evt.Buttons == pointer.ButtonSecondary {
		e.contextRequested = true
		e.contextPos = evt.Position
		pos := image.Point{
			X: int(math.Round(float64(evt.Position.X))),
			Y: int(math.Round(float64(evt.Position.Y))),
		}
		// A secondary click within the selection keeps it; outside, the
		// caret moves to the click.
		if !e.positionSelected(pos) {
			e.blinkStart = gtx.Now
			e.text.MoveCoord(pos)
			e.clampCursorToGraphemes()
			e.text.ClearSelection()
		}
		gtx.Execute(key.FocusCmd{Tag: e})
		return
	}

	if clickEvt, ok := e.clicker.Update(evt); ok && clickEvt.Kind == gesture.KindPress && clickEvt.Source == pointer.Mouse {
		e.blinkStart = gtx.Now
		e.text.MoveCoord(image.Point{
			X: int(math.Round(float64(clickEvt.Position.X))),
			Y: int(math.Round(float64(clickEvt.Position.Y))),
		})
		gtx.Execute(key.FocusCmd{Tag: e})
		e.scrollCaret = true
		e.scroller = gesture.Scroll{}
		switch {
		case clickEvt.NumClicks == 2:
			e.text.MoveWord(-1, selectionClear)
			e.text.MoveWord(1, selectionExtend)
			e.clampCursorToGraphemes()
		case clickEvt.NumClicks >= 3:
			e.text.MoveStart(selectionClear)
			e.text.MoveEnd(selectionExtend)
			e.clampCursorToGraphemes()
		default:
			e.text.ClearSelection()
			e.dragging = true
		}
	}

	release := false
	switch {
	case evt.Kind == pointer.Release && evt.Source == pointer.Mouse:
		release = true
		fallthrough
	case evt.Kind == pointer.Drag && evt.Source == pointer.Mouse:
		if e.dragging {
			e.blinkStart = gtx.Now
			e.text.MoveCoord(image.Point{
				X: int(math.Round(float64(evt.Position.X))),
				Y: int(math.Round(float64(evt.Position.Y))),
			})
			e.clampCursorToGraphemes()
			e.scrollCaret = true
			if release {
				e.dragging = false
			}
		}
	case evt.Kind == pointer.Cancel:
		e.dragging = false
	}
}

// positionSelected reports whether pos lies within the current selection.
func (e *Editor) positionSelected(pos image.Point) bool {
	start, end := e.text.Selection()
	if start == end {
		return false
	}
	doc := pos.Add(e.text.ScrollOff())
	for _, region := range e.text.Regions(start, end, nil) {
		if doc.In(region.Bounds) {
			return true
		}
	}
	return false
}

func (e *Editor) processKey(gtx layout.Context, ke key.Event) {
	if ke.State != key.Press {
		return
	}
	e.blinkStart = gtx.Now

	direction := 1
	if gtx.Locale.Direction.Progression() == system.TowardOrigin {
		direction = -1
	}
	moveByWord := ke.Modifiers.Contain(key.ModShortcutAlt)
	selAct := selectionClear
	if ke.Modifiers.Contain(key.ModShift) {
		selAct = selectionExtend
	}

	if ke.Modifiers.Contain(key.ModShortcut) {
		switch ke.Name {
		case "C":
			e.Copy(gtx)
			return
		case "X":
			if e.Cut(gtx) {
				e.pending = append(e.pending, ChangeEvent{})
			}
			return
		case "V":
			e.RequestPaste(gtx)
			return
		case "A":
			e.text.SetCaret(0, e.text.Len())
			return
		case "Z":
			if e.ReadOnly {
				return
			}
			changed := false
			if ke.Modifiers.Contain(key.ModShift) {
				changed = e.redo()
			} else {
				changed = e.undo()
			}
			if changed {
				e.scrollCaret = true
				e.scroller = gesture.Scroll{}
				e.pending = append(e.pending, ChangeEvent{})
			}
			return
		}
	}

	switch ke.Name {
	case key.NameReturn, key.NameEnter:
		if e.Submit && !ke.Modifiers.Contain(key.ModShift) {
			e.pending = append(e.pending, SubmitEvent{Text: e.Text()})
			return
		}
		if e.ReadOnly {
			return
		}
		e.scrollCaret = true
		e.scroller = gesture.Scroll{}
		if e.Insert("\n") > 0 {
			e.pending = append(e.pending, ChangeEvent{})
		}
	case key.NameDeleteBackward:
		if e.ReadOnly {
			return
		}
		e.scrollCaret = true
		e.scroller = gesture.Scroll{}
		if moveByWord {
			if e.deleteWord(-1) != 0 {
				e.pending = append(e.pending, ChangeEvent{})
			}
		} else {
			if e.Delete(-1) != 0 {
				e.pending = append(e.pending, ChangeEvent{})
			}
		}
	case key.NameDeleteForward:
		if e.ReadOnly {
			return
		}
		e.scrollCaret = true
		e.scroller = gesture.Scroll{}
		if moveByWord {
			if e.deleteWord(1) != 0 {
				e.pending = append(e.pending, ChangeEvent{})
			}
		} else {
			if e.Delete(1) != 0 {
				e.pending = append(e.pending, ChangeEvent{})
			}
		}
	case key.NameUpArrow:
		e.scrollCaret = true
		e.scroller = gesture.Scroll{}
		e.text.MoveLines(-1, selAct)
		e.clampCursorToGraphemes()
	case key.NameDownArrow:
		e.scrollCaret = true
		e.scroller = gesture.Scroll{}
		e.text.MoveLines(+1, selAct)
		e.clampCursorToGraphemes()
	case key.NameLeftArrow:
		e.scrollCaret = true
		e.scroller = gesture.Scroll{}
		if moveByWord {
			e.text.MoveWord(-1*direction, selAct)
			e.clampCursorToGraphemes()
		} else {
			if selAct == selectionClear {
				e.text.ClearSelection()
			}
			e.MoveCaret(-1*direction, -1*direction*int(selAct))
		}
	case key.NameRightArrow:
		e.scrollCaret = true
		e.scroller = gesture.Scroll{}
		if moveByWord {
			e.text.MoveWord(1*direction, selAct)
			e.clampCursorToGraphemes()
		} else {
			if selAct == selectionClear {
				e.text.ClearSelection()
			}
			e.MoveCaret(1*direction, 1*direction*int(selAct))
		}
	case key.NamePageUp:
		e.scrollCaret = true
		e.scroller = gesture.Scroll{}
		e.text.MovePages(-1, selAct)
		e.clampCursorToGraphemes()
	case key.NamePageDown:
		e.scrollCaret = true
		e.scroller = gesture.Scroll{}
		e.text.MovePages(+1, selAct)
		e.clampCursorToGraphemes()
	case key.NameHome:
		e.scrollCaret = true
		e.scroller = gesture.Scroll{}
		if ke.Modifiers.Contain(key.ModShortcut) {
			e.text.MoveTextStart(selAct)
		} else {
			e.text.MoveStart(selAct)
		}
		e.clampCursorToGraphemes()
	case key.NameEnd:
		e.scrollCaret = true
		e.scroller = gesture.Scroll{}
		if ke.Modifiers.Contain(key.ModShortcut) {
			e.text.MoveTextEnd(selAct)
		} else {
			e.text.MoveEnd(selAct)
		}
		e.clampCursorToGraphemes()
	case key.NameEscape:
		e.text.ClearSelection()
	}
}

func (e *Editor) processEdit(gtx layout.Context, ke key.EditEvent) {
	if e.ReadOnly {
		return
	}
	e.blinkStart = gtx.Now
	e.scrollCaret = true
	e.scroller = gesture.Scroll{}
	if e.Insert(ke.Text) > 0 {
		e.pending = append(e.pending, ChangeEvent{})
	}
}

func (e *Editor) processPaste(gtx layout.Context, evt clipboard.Event) {
	if e.ReadOnly {
		return
	}
	// Malformed clipboard content is rejected wholesale rather than
	// partially decoded into the buffer.
	if !utf8.ValidString(evt.Text) {
		return
	}
	e.blinkStart = gtx.Now
	e.scrollCaret = true
	if e.Insert(evt.Text) > 0 {
		e.pending = append(e.pending, ChangeEvent{})
	}
}

// Copy queues a clipboard write of the selected text, if any.
func (e *Editor) Copy(gtx layout.Context) bool {
	e.initBuffer()
	if e.text.SelectionLen() == 0 {
		return false
	}
	gtx.Execute(clipboard.WriteCmd{Text: e.SelectedText()})
	return true
}

// Cut copies the selected text to the clipboard and deletes it from the
// buffer. It reports whether the contents changed.
func (e *Editor) Cut(gtx layout.Context) bool {
	e.initBuffer()
	if e.ReadOnly || e.text.SelectionLen() == 0 {
		return false
	}
	gtx.Execute(clipboard.WriteCmd{Text: e.SelectedText()})
	e.Delete(1)
	e.scrollCaret = true
	return true
}

// RequestPaste queues a clipboard read. Its content is delivered as a
// clipboard.Event in a later frame and inserted at the caret.
func (e *Editor) RequestPaste(gtx layout.Context) {
	if e.ReadOnly {
		return
	}
	gtx.Execute(clipboard.ReadCmd{Tag: e})
}

// ContextMenu returns the menu for the editor's current state and
// whether a secondary click requested one since the last call.
func (e *Editor) ContextMenu() (ContextMenu, bool) {
	e.initBuffer()
	requested := e.contextRequested
	e.contextRequested = false
	menu := ContextMenu{Position: e.contextPos}
	hasSelection := e.text.SelectionLen() > 0
	if hasSelection && !e.ReadOnly {
		menu.Items = append(menu.Items, ActionCut)
	}
	if hasSelection {
		menu.Items = append(menu.Items, ActionCopy)
	}
	if !e.ReadOnly {
		menu.Items = append(menu.Items, ActionPaste)
	}
	if e.text.Len() > 0 {
		menu.Items = append(menu.Items, ActionSelectAll)
	}
	return menu, requested
}

// PerformAction applies a context menu action to the editor.
func (e *Editor) PerformAction(gtx layout.Context, action ContextAction) {
	e.initBuffer()
	switch action {
	case ActionCut:
		if e.Cut(gtx) {
			e.pending = append(e.pending, ChangeEvent{})
		}
	case ActionCopy:
		e.Copy(gtx)
	case ActionPaste:
		e.RequestPaste(gtx)
	case ActionSelectAll:
		e.text.SetCaret(0, e.text.Len())
	}
}

// Layout updates the editor state, reshapes its text as needed and
// appends its draw commands to list, caching glyph rasterizations in
// at. Events not consumed through Update before Layout are processed
// and their editor events discarded.
func (e *Editor) Layout(gtx layout.Context, lt *text.Shaper, font font.Font, size unit.Sp, at *atlas.Atlas, list *render.List) layout.Dimensions {
	for {
		_, ok := e.Update(gtx)
		if !ok {
			break
		}
	}

	e.text.Update(gtx, lt, font, size, func(gtx layout.Context) {
		e.graphemesValid = false
		if e.scrollCaret {
			e.scrollCaret = false
			e.text.ScrollToCaret()
		}
	})

	e.updateBlink(gtx)
	dims := e.text.Dimensions()
	e.draw(gtx, at, list)
	return dims
}

func (e *Editor) updateBlink(gtx layout.Context) {
	e.showCaret = false
	if !e.focused || e.ReadOnly {
		return
	}
	now := gtx.Now
	dt := now.Sub(e.blinkStart)
	blinking := dt < maxBlinkDuration
	const timePerBlink = time.Second / blinksPerSecond
	nextBlink := now.Add(timePerBlink/2 - dt%(timePerBlink/2))
	if blinking {
		gtx.Redraw(nextBlink)
	}
	e.showCaret = !blinking || dt%timePerBlink < timePerBlink/2
}

func (e *Editor) draw(gtx layout.Context, at *atlas.Atlas, list *render.List) {
	textColor := e.Color
	if (textColor == color.NRGBA{}) {
		textColor = color.NRGBA{A: 0xFF}
	}
	selColor := e.SelectionColor
	if (selColor == color.NRGBA{}) {
		selColor = f32color.MulAlpha(textColor, 0x60)
	}
	if e.text.SelectionLen() > 0 {
		e.text.PaintSelection(gtx, list, selColor)
	}
	e.text.PaintText(gtx, at, list, textColor)
	if e.showCaret {
		e.text.PaintCaret(gtx, list, textColor)
	}
}

// CursorShape returns the cursor to display over the editor area.
func (e *Editor) CursorShape() pointer.Cursor {
	return pointer.CursorText
}

// makeGraphemes rebuilds the grapheme cluster boundaries when the buffer
// has changed since they were last computed.
func (e *Editor) makeGraphemes() {
	if e.graphemesValid && e.graphemeGen == e.buffer.Generation() {
		return
	}
	e.gr.SetSource(e.buffer)
	e.graphemes = e.graphemes[:0]
	for g := e.gr.Graphemes(); len(g) > 0; g = e.gr.Graphemes() {
		if len(e.graphemes) > 0 && g[0] == e.graphemes[len(e.graphemes)-1] {
			g = g[1:]
		}
		e.graphemes = append(e.graphemes, g...)
	}
	e.graphemesValid = true
	e.graphemeGen = e.buffer.Generation()
}

// closestGrapheme returns the index within e.graphemes of the boundary
// nearest to the rune offset r.
func (e *Editor) closestGrapheme(r int) int {
	e.makeGraphemes()
	if len(e.graphemes) == 0 {
		return 0
	}
	idx, exact := slices.BinarySearch(e.graphemes, r)
	if !exact {
		if debugFatal {
			panic("offset off grapheme boundary")
		}
		if idx == len(e.graphemes) || (idx > 0 && r-e.graphemes[idx-1] <= e.graphemes[idx]-r) {
			idx--
		}
	}
	return idx
}

// moveByGraphemes returns the rune offset of the grapheme boundary
// reached by moving the given number of clusters from runeOffset.
func (e *Editor) moveByGraphemes(runeOffset, graphemes int) int {
	e.makeGraphemes()
	if len(e.graphemes) == 0 {
		return runeOffset
	}
	idx := e.closestGrapheme(runeOffset)
	idx += graphemes
	if idx < 0 {
		idx = 0
	}
	if idx > len(e.graphemes)-1 {
		idx = len(e.graphemes) - 1
	}
	return e.graphemes[idx]
}

// clampCursorToGraphemes ensures that the final start/end positions of
// the cursor are on grapheme cluster boundaries.
func (e *Editor) clampCursorToGraphemes() {
	start, end := e.text.Selection()
	e.makeGraphemes()
	if len(e.graphemes) == 0 {
		return
	}
	start = e.graphemes[e.closestGrapheme(start)]
	end = e.graphemes[e.closestGrapheme(end)]
	e.text.SetCaret(start, end)
}

// MoveCaret moves the caret (aka selection start) and the selection end
// relative to their current positions. Positive distances moves forward,
// negative distances moves backward. Distances are in grapheme clusters.
func (e *Editor) MoveCaret(startDelta, endDelta int) {
	e.initBuffer()
	start, end := e.text.Selection()
	newStart := e.moveByGraphemes(start, startDelta)
	newEnd := e.moveByGraphemes(end, endDelta)
	e.text.SetCaret(newStart, newEnd)
}

// deleteWord deletes a word from the caret in the specified direction.
// Positive is forward, negative is backward. A selection is deleted in
// place of a word.
func (e *Editor) deleteWord(direction int) (deletedRunes int) {
	start, end := e.text.Selection()
	if start != end {
		return e.Delete(1)
	}
	e.text.MoveWord(direction, selectionExtend)
	e.clampCursorToGraphemes()
	if start, end := e.text.Selection(); start == end {
		// The caret was already at the boundary the word motion targets.
		return 0
	}
	return e.Delete(1)
}

// Delete runes from the caret position. The sign of the argument
// specifies the direction to delete: positive is forward, negative is
// backward.
//
// If there is a selection, it is deleted and counts as a single grapheme
// cluster.
func (e *Editor) Delete(graphemeClusters int) (deletedRunes int) {
	e.initBuffer()
	if graphemeClusters == 0 {
		return 0
	}
	start, end := e.text.Selection()
	if start != end {
		graphemeClusters -= sign(graphemeClusters)
	}

	// Move the selection end to the grapheme cluster at the deletion
	// boundary.
	end = e.moveByGraphemes(end, graphemeClusters)
	e.text.SetCaret(start, end)

	start, end = e.text.Selection()
	if start == end {
		return 0
	}
	e.replace(start, end, "", true)
	deletedRunes = abs(end - start)
	e.text.ClearSelection()
	e.scrollCaret = true
	return deletedRunes
}

// Insert inserts text at the caret, moving the caret forward. If there
// is a selection, Insert overwrites it. The number of runes inserted is
// returned.
func (e *Editor) Insert(s string) (insertedRunes int) {
	e.initBuffer()
	if e.ReadOnly {
		return 0
	}
	start, end := e.text.Selection()
	moves := e.replace(start, end, s, true)
	if end < start {
		start = end
	}
	// Reset xoff and move the caret to the end of the inserted text.
	e.text.SetCaret(start+moves, start+moves)
	e.scrollCaret = true
	return moves
}

// replace the text between start and end with s. Indices are in runes.
// It returns the number of runes inserted. addHistory controls whether
// this modification is recorded in the undo history.
func (e *Editor) replace(start, end int, s string, addHistory bool) int {
	length := e.text.Len()
	if start > end {
		start, end = end, start
	}
	start = min(start, length)
	end = min(end, length)
	replaceSize := end - start
	if e.SingleLine {
		s = strings.ReplaceAll(s, "\n", " ")
	}
	if e.MaxLen > 0 {
		// Truncate the insertion at a grapheme cluster boundary so that
		// the capped content never ends mid-cluster.
		available := e.MaxLen - (length - replaceSize)
		s = truncateAtClusterBoundary(s, available)
	}

	if addHistory {
		deleted := make([]rune, 0, replaceSize)
		readPos := e.text.ByteOffset(start)
		for i := 0; i < replaceSize; i++ {
			ru, s, _ := e.text.ReadRuneAt(readPos)
			readPos += int64(s)
			deleted = append(deleted, ru)
		}
		if e.nextHistoryIdx < len(e.history) {
			e.history = e.history[:e.nextHistoryIdx]
		}
		e.history = append(e.history, modification{
			StartRune:      start,
			ApplyContent:   s,
			ReverseContent: string(deleted),
		})
		e.nextHistoryIdx++
	}

	sc := e.text.Replace(start, end, s)
	e.graphemesValid = false
	return sc
}

// truncateAtClusterBoundary truncates s to at most maxRunes runes,
// backing off to the nearest grapheme cluster boundary so the result
// never ends mid-cluster.
func truncateAtClusterBoundary(s string, maxRunes int) string {
	if maxRunes <= 0 {
		return ""
	}
	if utf8.RuneCountInString(s) <= maxRunes {
		return s
	}
	var seg graphemeReader
	seg.SetSource(strings.NewReader(s))
	keep := 0
	for g := seg.Graphemes(); len(g) > 0; g = seg.Graphemes() {
		for i := 1; i < len(g); i++ {
			if g[i] > maxRunes {
				return string([]rune(s)[:keep])
			}
			keep = g[i]
		}
	}
	return string([]rune(s)[:keep])
}

// undo applies the modification at e.history[e.nextHistoryIdx-1] in
// reverse and decrements e.nextHistoryIdx. It reports whether the
// contents changed.
func (e *Editor) undo() bool {
	e.initBuffer()
	if len(e.history) < 1 || e.nextHistoryIdx == 0 {
		return false
	}
	mod := e.history[e.nextHistoryIdx-1]
	replaceEnd := mod.StartRune + utf8.RuneCountInString(mod.ApplyContent)
	e.replace(mod.StartRune, replaceEnd, mod.ReverseContent, false)
	caretEnd := mod.StartRune + utf8.RuneCountInString(mod.ReverseContent)
	e.text.SetCaret(caretEnd, caretEnd)
	e.nextHistoryIdx--
	return true
}

// redo applies the modification at e.history[e.nextHistoryIdx] and
// increments e.nextHistoryIdx. It reports whether the contents changed.
func (e *Editor) redo() bool {
	e.initBuffer()
	if len(e.history) < 1 || e.nextHistoryIdx == len(e.history) {
		return false
	}
	mod := e.history[e.nextHistoryIdx]
	end := mod.StartRune + utf8.RuneCountInString(mod.ReverseContent)
	e.replace(mod.StartRune, end, mod.ApplyContent, false)
	caretEnd := mod.StartRune + utf8.RuneCountInString(mod.ApplyContent)
	e.text.SetCaret(caretEnd, caretEnd)
	e.nextHistoryIdx++
	return true
}

// SetCaret moves the caret to start, and sets the selection end to end.
// start and end are in runes, and represent offsets into the editor
// text.
func (e *Editor) SetCaret(start, end int) {
	e.initBuffer()
	e.text.SetCaret(start, end)
	e.clampCursorToGraphemes()
	e.scrollCaret = true
	e.scroller = gesture.Scroll{}
}

// SelectedText returns the currently selected text (if any) from the
// editor.
func (e *Editor) SelectedText() string {
	e.initBuffer()
	return e.text.SelectedText()
}

// Selection returns the start and end of the selection, as rune offsets.
// start can be > end.
func (e *Editor) Selection() (start, end int) {
	e.initBuffer()
	return e.text.Selection()
}

// SelectionLen returns the length of the selection, in runes; it is
// equivalent to utf8.RuneCountInString(e.SelectedText()).
func (e *Editor) SelectionLen() int {
	e.initBuffer()
	return e.text.SelectionLen()
}

// ClearSelection clears the selection, by setting the selection end
// equal to the selection start.
func (e *Editor) ClearSelection() {
	e.initBuffer()
	e.text.ClearSelection()
}

// CaretPos returns the line & column numbers of the caret.
func (e *Editor) CaretPos() (line, col int) {
	e.initBuffer()
	return e.text.CaretPos()
}

// CaretCoords returns the coordinates of the caret, relative to the
// editor itself.
func (e *Editor) CaretCoords() f32.Point {
	e.initBuffer()
	return e.text.CaretCoords()
}

// Len is the length of the editor contents, in runes.
func (e *Editor) Len() int {
	e.initBuffer()
	return e.text.Len()
}

// Text returns the contents of the editor.
func (e *Editor) Text() string {
	e.initBuffer()
	return e.text.Text()
}

// SetText replaces the contents of the editor, clearing any selection
// first.
func (e *Editor) SetText(s string) {
	e.initBuffer()
	if e.SingleLine {
		s = strings.ReplaceAll(s, "\n", " ")
	}
	e.text.SetCaret(0, 0)
	e.replace(0, e.text.Len(), s, true)
	// Reset xoff and other state.
	e.text.SetCaret(0, 0)
	e.scrollCaret = true
}

// ScrollOff returns the scroll offset of the text viewport.
func (e *Editor) ScrollOff() image.Point {
	e.initBuffer()
	return e.text.ScrollOff()
}

func sign(n int) int {
	switch {
	case n < 0:
		return -1
	case n > 0:
		return 1
	default:
		return 0
	}
}
