package canvas

import (
	"math"
	"time"

	"github.com/rafaelfne/pressroom-sub002/internal/doctree"
	"github.com/rafaelfne/pressroom-sub002/internal/geometry"
	"github.com/rafaelfne/pressroom-sub002/internal/idgen"
	"github.com/rafaelfne/pressroom-sub002/internal/selection"
	"github.com/rafaelfne/pressroom-sub002/internal/types"
)

// DefaultDragThreshold is the cumulative pointer movement, in pixels,
// before an armed pointer-down formally starts a marquee. An ordinary
// click must never produce a zero-area marquee.
const DefaultDragThreshold = 5.0

// Dispatcher receives "replace current Document" commands. The controller
// never persists anything itself.
type Dispatcher func(doc *types.Document)

// Options tunes a Controller.
type Options struct {
	// DragThreshold overrides DefaultDragThreshold when positive
	DragThreshold float64
}

// pendingDrag is an armed-but-not-started marquee gesture.
type pendingDrag struct {
	// origin is the pointer-down position in workspace-content space
	origin geometry.Point
	// additive records whether the modifier was held at pointer-down
	additive bool
	// started flips once movement exceeds the drag threshold
	started bool
}

// Controller turns raw pointer and keyboard events into selection
// transitions and tree operations. It owns the session's SelectionState
// and the current Document value; mutated Documents are handed to the
// host through the Dispatcher.
//
// The controller is single-threaded by contract: the host delivers events
// sequentially, matching the cooperative model of the editing core.
type Controller struct {
	viewport  Viewport
	dispatch  Dispatcher
	generator idgen.Generator
	threshold float64

	doc   *types.Document
	state *selection.State

	pending         *pendingDrag
	unsubscribeMove func()
	unsubscribeUp   func()
	suppressClick   bool
}

// NewController creates a controller over the given viewport. dispatch
// may be nil for hosts that only read Document() back.
func NewController(viewport Viewport, dispatch Dispatcher, generator idgen.Generator, opts Options) *Controller {
	threshold := opts.DragThreshold
	if threshold <= 0 {
		threshold = DefaultDragThreshold
	}
	return &Controller{
		viewport:  viewport,
		dispatch:  dispatch,
		generator: generator,
		threshold: threshold,
		doc:       &types.Document{},
		state:     selection.NewState(),
	}
}

// State returns the current selection state snapshot.
func (c *Controller) State() *selection.State {
	return c.state
}

// Document returns the current document value.
func (c *Controller) Document() *types.Document {
	return c.doc
}

// SetDocument switches the controller to a new page or document. The
// selection and any in-progress gesture reset; the clipboard survives the
// switch so copied content can be pasted across pages.
func (c *Controller) SetDocument(doc *types.Document) {
	c.Cancel()
	clipboard := c.state.Clipboard
	c.doc = doc
	c.state = selection.NewState()
	c.state.Clipboard = clipboard
}

// PointerDown arms a marquee gesture when the pointer lands on empty
// canvas. Pointer-downs starting inside a rendered node, an overlay, or
// an editable field never arm one. Arming only records the origin and
// attaches the gesture-scoped move/up listeners; the marquee itself starts
// once movement clears the drag threshold.
func (c *Controller) PointerDown(event PointerEvent) {
	if event.Target != TargetCanvas {
		return
	}
	if c.pending != nil {
		return
	}

	c.pending = &pendingDrag{
		origin:   c.toContent(event),
		additive: event.Modifier,
	}
	c.unsubscribeMove = c.viewport.Subscribe(EventPointerMove, c.pointerMove)
	c.unsubscribeUp = c.viewport.Subscribe(EventPointerUp, c.pointerUp)
}

// pointerMove tracks an armed gesture. Coordinates are converted to
// workspace-content space immediately, so the rectangle stays correct if
// the user scrolls mid-drag.
func (c *Controller) pointerMove(event PointerEvent) {
	if c.pending == nil {
		return
	}

	point := c.toContent(event)

	if !c.pending.started {
		if math.Hypot(point.X-c.pending.origin.X, point.Y-c.pending.origin.Y) < c.threshold {
			return
		}
		c.pending.started = true
		c.apply(selection.Event{
			Type:     selection.StartMarquee,
			X:        c.pending.origin.X,
			Y:        c.pending.origin.Y,
			Additive: c.pending.additive,
		})
	}

	c.apply(selection.Event{Type: selection.UpdateMarquee, X: point.X, Y: point.Y})
}

// pointerUp completes an armed gesture. A started marquee resolves its
// intersected nodes and suppresses the browser's synthetic click exactly
// once; an armed-but-never-started gesture just disarms and lets the
// click through.
func (c *Controller) pointerUp(event PointerEvent) {
	pending := c.pending
	c.disarm()
	if pending == nil || !pending.started {
		return
	}

	point := c.toContent(event)
	c.apply(selection.Event{Type: selection.UpdateMarquee, X: point.X, Y: point.Y})

	c.apply(selection.Event{
		Type: selection.EndMarquee,
		IDs:  c.intersectedIDs(),
	})
	c.suppressClick = true
}

// Cancel aborts any in-progress gesture (Escape). The prior selection is
// left untouched, per CancelMarquee semantics.
func (c *Controller) Cancel() {
	pending := c.pending
	c.disarm()
	if pending != nil && pending.started {
		c.apply(selection.Event{Type: selection.CancelMarquee})
	}
}

// Click processes the host's synthetic click. The return value reports
// whether the controller intercepted it: the one click following a
// completed marquee drag is swallowed so the default single-select does
// not overwrite the marquee result, and a modifier click only toggles the
// target's membership. A plain click while more than one node is selected
// collapses the multi-selection and falls through to normal
// single-select; a plain click with one or no nodes selected is not
// intercepted.
func (c *Controller) Click(event PointerEvent) bool {
	if c.suppressClick {
		c.suppressClick = false
		return true
	}

	switch event.Target {
	case TargetNode:
		if event.Modifier {
			c.apply(selection.Event{Type: selection.ToggleSelection, ID: event.NodeID})
			return true
		}
		intercepted := c.state.SelectionCount() > 1
		c.apply(selection.Event{Type: selection.SelectOne, ID: event.NodeID})
		return intercepted
	case TargetCanvas:
		c.apply(selection.Event{Type: selection.ClearSelection})
	}
	return false
}

// ContextMenu gates right-clicks. It reports whether the host should open
// its context menu: yes when the target node is already selected or the
// selection is non-empty. Right-clicking an unselected node first
// collapses the selection to that node, then opens the menu.
func (c *Controller) ContextMenu(event PointerEvent) bool {
	if event.Target == TargetNode {
		if !c.state.Selected(event.NodeID) {
			c.apply(selection.Event{Type: selection.SelectOne, ID: event.NodeID})
		}
		return true
	}
	return c.state.SelectionCount() > 0
}

// RemoveSelected removes every selected node from the document and clears
// the selection.
func (c *Controller) RemoveSelected() {
	ids := c.selectedIDs()
	if len(ids) == 0 {
		return
	}
	next := doctree.Remove(c.doc, ids)
	c.replaceDocument(next)
	c.apply(selection.Event{Type: selection.ClearSelection})
}

// DuplicateSelected deep-clones every selected node and moves the
// selection onto the copies.
func (c *Controller) DuplicateSelected() {
	ids := c.selectedIDs()
	if len(ids) == 0 {
		return
	}
	next, newIDs := doctree.Duplicate(c.doc, ids, c.generator)
	if len(newIDs) == 0 {
		return
	}
	c.replaceDocument(next)
	c.apply(selection.Event{Type: selection.SelectMultiple, IDs: newIDs})
}

// CopySelection extracts the selected subtrees into a clipboard payload.
// The selection itself is untouched.
func (c *Controller) CopySelection(source types.SourceMetadata) {
	components := doctree.ExtractAndSerialize(c.doc, c.selectedIDs())
	if len(components) == 0 {
		return
	}
	c.apply(selection.Event{
		Type: selection.SetClipboard,
		Payload: &types.ClipboardPayload{
			Version:        types.ClipboardPayloadVersion,
			SourceMetadata: source,
			Components:     components,
			CopiedAt:       time.Now(),
		},
	})
}

// PasteClipboard materializes the clipboard into the document and selects
// the pasted nodes. No clipboard is a defined no-op.
func (c *Controller) PasteClipboard(targetZoneKey, afterID string) {
	clipboard := c.state.Clipboard
	if clipboard == nil || len(clipboard.Components) == 0 {
		return
	}
	next, newIDs := doctree.PasteComponents(c.doc, clipboard.Components, targetZoneKey, afterID, c.generator)
	if len(newIDs) == 0 {
		return
	}
	c.replaceDocument(next)
	c.apply(selection.Event{Type: selection.SelectMultiple, IDs: newIDs})
}

// intersectedIDs resolves the finished marquee against the rendered
// bounding boxes. The content-space rectangle converts to viewport space
// once, here at drag end, using the current scroll offset.
func (c *Controller) intersectedIDs() []string {
	marquee := c.state.Marquee
	if marquee == nil {
		return nil
	}

	contentRect := geometry.FromPoints(
		geometry.Point{X: marquee.StartX, Y: marquee.StartY},
		geometry.Point{X: marquee.CurrentX, Y: marquee.CurrentY},
	)
	viewportRect := geometry.ContentToViewport(contentRect, c.viewport.ScrollOffset(), c.viewport.WorkspaceOrigin())

	var ids []string
	for id, rect := range c.viewport.BoundingRects() {
		if geometry.Intersects(viewportRect, rect) {
			ids = append(ids, id)
		}
	}
	return ids
}

// disarm drops the pending gesture and detaches the gesture-scoped
// listeners. Listeners live only for the duration of one gesture.
func (c *Controller) disarm() {
	c.pending = nil
	if c.unsubscribeMove != nil {
		c.unsubscribeMove()
		c.unsubscribeMove = nil
	}
	if c.unsubscribeUp != nil {
		c.unsubscribeUp()
		c.unsubscribeUp = nil
	}
}

func (c *Controller) apply(event selection.Event) {
	c.state = selection.Reduce(c.state, event)
}

func (c *Controller) replaceDocument(doc *types.Document) {
	if doc == c.doc {
		return
	}
	c.doc = doc
	if c.dispatch != nil {
		c.dispatch(doc)
	}
}

func (c *Controller) selectedIDs() []string {
	ids := make([]string, 0, len(c.state.SelectedIDs))
	for id := range c.state.SelectedIDs {
		ids = append(ids, id)
	}
	return ids
}

func (c *Controller) toContent(event PointerEvent) geometry.Point {
	return geometry.ViewportToContent(
		geometry.Point{X: event.X, Y: event.Y},
		c.viewport.ScrollOffset(),
		c.viewport.WorkspaceOrigin(),
	)
}
