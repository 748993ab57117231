// Package selection implements the editor's selection state machine: a
// pure reducer over the selected id set, the clipboard payload, and the
// marquee rectangle.
//
// Reduce never mutates its input state. When an event matches no active
// condition (for example UpdateMarquee while no marquee is in progress)
// Reduce returns the exact input pointer, not a copy; callers rely on
// reference equality to skip re-renders.
package selection

import (
	"github.com/rafaelfne/pressroom-sub002/internal/types"
)

// Mode is the gesture mode of the selection machine.
type Mode string

const (
	// ModeIdle is the resting state.
	ModeIdle Mode = "idle"
	// ModeMarquee means a drag-select rectangle is active.
	ModeMarquee Mode = "marquee"
	// ModeDragging is a move-gesture placeholder, opaque to this core.
	ModeDragging Mode = "dragging"
)

// MarqueeRect is an in-progress drag rectangle tracked in
// workspace-content coordinates.
type MarqueeRect struct {
	// StartX, StartY anchor the drag origin
	StartX float64
	StartY float64
	// CurrentX, CurrentY track the pointer
	CurrentX float64
	CurrentY float64
	// Additive preserves the prior selection and unions the result
	Additive bool
}

// State is one immutable snapshot of the selection machine. A fresh State
// is created per editor session and reset on every page or document
// switch.
type State struct {
	// SelectedIDs is the current selection set
	SelectedIDs map[string]bool
	// Clipboard holds the last copied payload, if any
	Clipboard *types.ClipboardPayload
	// Marquee is the in-progress drag rectangle, nil outside a drag
	Marquee *MarqueeRect
	// Mode is the current gesture mode
	Mode Mode
}

// NewState returns the initial idle state with an empty selection.
func NewState() *State {
	return &State{
		SelectedIDs: map[string]bool{},
		Mode:        ModeIdle,
	}
}

// Selected reports whether id is in the selection set.
func (s *State) Selected(id string) bool {
	return s.SelectedIDs[id]
}

// SelectionCount returns the size of the selection set.
func (s *State) SelectionCount() int {
	return len(s.SelectedIDs)
}

// EventType discriminates reducer events.
type EventType string

const (
	SelectOne       EventType = "SELECT_ONE"
	ToggleSelection EventType = "TOGGLE_SELECTION"
	SelectMultiple  EventType = "SELECT_MULTIPLE"
	SelectAll       EventType = "SELECT_ALL"
	ClearSelection  EventType = "CLEAR_SELECTION"
	StartMarquee    EventType = "START_MARQUEE"
	UpdateMarquee   EventType = "UPDATE_MARQUEE"
	EndMarquee      EventType = "END_MARQUEE"
	CancelMarquee   EventType = "CANCEL_MARQUEE"
	SetClipboard    EventType = "SET_CLIPBOARD"
	ClearClipboard  EventType = "CLEAR_CLIPBOARD"
)

// Event is one reducer input. Only the fields relevant to the event type
// are read.
type Event struct {
	Type EventType
	// ID is the subject of SelectOne / ToggleSelection
	ID string
	// IDs is the subject of SelectMultiple / SelectAll / EndMarquee
	IDs []string
	// X, Y carry marquee coordinates for StartMarquee / UpdateMarquee
	X float64
	Y float64
	// Additive marks a modifier-held StartMarquee
	Additive bool
	// Payload is the subject of SetClipboard
	Payload *types.ClipboardPayload
}

// Reduce applies one event and returns the next state. Pure: the input
// state is never modified. No-op transitions return state itself.
func Reduce(state *State, event Event) *State {
	switch event.Type {
	case SelectOne:
		return &State{
			SelectedIDs: map[string]bool{event.ID: true},
			Clipboard:   state.Clipboard,
			Mode:        ModeIdle,
		}

	case ToggleSelection:
		next := cloneIDs(state.SelectedIDs)
		if next[event.ID] {
			delete(next, event.ID)
		} else {
			next[event.ID] = true
		}
		return &State{
			SelectedIDs: next,
			Clipboard:   state.Clipboard,
			Mode:        ModeIdle,
		}

	case SelectMultiple, SelectAll:
		return &State{
			SelectedIDs: idSet(event.IDs),
			Clipboard:   state.Clipboard,
			Mode:        ModeIdle,
		}

	case ClearSelection:
		if len(state.SelectedIDs) == 0 && state.Marquee == nil && state.Mode == ModeIdle {
			return state
		}
		return &State{
			SelectedIDs: map[string]bool{},
			Clipboard:   state.Clipboard,
			Mode:        ModeIdle,
		}

	case StartMarquee:
		selected := state.SelectedIDs
		if !event.Additive {
			selected = map[string]bool{}
		}
		return &State{
			SelectedIDs: selected,
			Clipboard:   state.Clipboard,
			Marquee: &MarqueeRect{
				StartX:   event.X,
				StartY:   event.Y,
				CurrentX: event.X,
				CurrentY: event.Y,
				Additive: event.Additive,
			},
			Mode: ModeMarquee,
		}

	case UpdateMarquee:
		if state.Marquee == nil {
			return state
		}
		marquee := *state.Marquee
		marquee.CurrentX = event.X
		marquee.CurrentY = event.Y
		return &State{
			SelectedIDs: state.SelectedIDs,
			Clipboard:   state.Clipboard,
			Marquee:     &marquee,
			Mode:        ModeMarquee,
		}

	case EndMarquee:
		if state.Marquee == nil {
			return state
		}
		selected := idSet(event.IDs)
		if state.Marquee.Additive {
			for id := range state.SelectedIDs {
				selected[id] = true
			}
		}
		return &State{
			SelectedIDs: selected,
			Clipboard:   state.Clipboard,
			Mode:        ModeIdle,
		}

	case CancelMarquee:
		if state.Marquee == nil && state.Mode == ModeIdle {
			return state
		}
		return &State{
			SelectedIDs: state.SelectedIDs,
			Clipboard:   state.Clipboard,
			Mode:        ModeIdle,
		}

	case SetClipboard:
		return &State{
			SelectedIDs: state.SelectedIDs,
			Clipboard:   event.Payload,
			Marquee:     state.Marquee,
			Mode:        state.Mode,
		}

	case ClearClipboard:
		if state.Clipboard == nil {
			return state
		}
		return &State{
			SelectedIDs: state.SelectedIDs,
			Marquee:     state.Marquee,
			Mode:        state.Mode,
		}
	}

	return state
}

func cloneIDs(ids map[string]bool) map[string]bool {
	next := make(map[string]bool, len(ids))
	for id := range ids {
		next[id] = true
	}
	return next
}

func idSet(ids []string) map[string]bool {
	set := make(map[string]bool, len(ids))
	for _, id := range ids {
		set[id] = true
	}
	return set
}
