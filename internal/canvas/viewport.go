// Package canvas bridges host pointer/keyboard events to the selection
// state machine and the tree operations. It is host-agnostic: every
// viewport concern (bounding-rect reads, scroll offset, event
// subscription) sits behind the Viewport capability interface, so the
// controller is testable without a DOM.
package canvas

import (
	"github.com/rafaelfne/pressroom-sub002/internal/geometry"
)

// TargetKind classifies what a pointer event landed on. Pointer-downs on
// anything but the bare canvas never arm a marquee.
type TargetKind string

const (
	// TargetCanvas is the empty workspace background
	TargetCanvas TargetKind = "canvas"
	// TargetNode is a rendered component
	TargetNode TargetKind = "node"
	// TargetOverlay is a drawer, toolbar or other floating chrome
	TargetOverlay TargetKind = "overlay"
	// TargetEditable is an editable text field
	TargetEditable TargetKind = "editable"
)

// PointerEvent is a host pointer event in viewport coordinates.
type PointerEvent struct {
	// X, Y are viewport coordinates
	X float64
	Y float64
	// Modifier is true while the platform multi-select modifier is held
	Modifier bool
	// Target classifies the element under the pointer
	Target TargetKind
	// NodeID identifies the node when Target is TargetNode
	NodeID string
}

// Gesture-scoped event names for Viewport.Subscribe.
const (
	EventPointerMove = "pointermove"
	EventPointerUp   = "pointerup"
)

// Viewport is the capability set the controller needs from its host.
// Subscriptions are gesture-scoped: the controller subscribes when a
// gesture arms and calls the returned unsubscribe as soon as the gesture
// completes or cancels.
type Viewport interface {
	// BoundingRects returns the current viewport-space bounding box of
	// every rendered node, keyed by node id.
	BoundingRects() map[string]geometry.Rect
	// ScrollOffset returns the workspace scroll position.
	ScrollOffset() geometry.Point
	// WorkspaceOrigin returns the viewport position of the workspace's
	// unscrolled top-left corner.
	WorkspaceOrigin() geometry.Point
	// Subscribe registers a handler for EventPointerMove or
	// EventPointerUp and returns its unsubscribe function.
	Subscribe(event string, handler func(PointerEvent)) (unsubscribe func())
}
