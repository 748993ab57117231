package canvas

import (
	"sync"

	"github.com/rafaelfne/pressroom-sub002/internal/geometry"
)

// RectProvider tracks the on-screen bounding boxes of rendered nodes for
// marquee hit-testing. The rendering layer updates it on every relayout;
// hosts typically embed it in their Viewport implementation.
type RectProvider struct {
	mutex sync.RWMutex
	rects map[string]geometry.Rect
}

// NewRectProvider creates an empty rect provider.
func NewRectProvider() *RectProvider {
	return &RectProvider{
		rects: make(map[string]geometry.Rect),
	}
}

// Set records the viewport-space bounding box of a rendered node.
func (p *RectProvider) Set(nodeID string, rect geometry.Rect) {
	p.mutex.Lock()
	defer p.mutex.Unlock()
	p.rects[nodeID] = rect
}

// Rect returns the tracked bounding box for a node.
func (p *RectProvider) Rect(nodeID string) (geometry.Rect, bool) {
	p.mutex.RLock()
	defer p.mutex.RUnlock()
	rect, exists := p.rects[nodeID]
	return rect, exists
}

// Invalidate drops a node's bounding box, for example when it leaves the
// render tree.
func (p *RectProvider) Invalidate(nodeID string) {
	p.mutex.Lock()
	defer p.mutex.Unlock()
	delete(p.rects, nodeID)
}

// InvalidateAll drops every tracked bounding box, for example on a full
// relayout or document switch.
func (p *RectProvider) InvalidateAll() {
	p.mutex.Lock()
	defer p.mutex.Unlock()
	p.rects = make(map[string]geometry.Rect)
}

// BoundingRects returns a snapshot of every tracked bounding box.
func (p *RectProvider) BoundingRects() map[string]geometry.Rect {
	p.mutex.RLock()
	defer p.mutex.RUnlock()
	snapshot := make(map[string]geometry.Rect, len(p.rects))
	for id, rect := range p.rects {
		snapshot[id] = rect
	}
	return snapshot
}

// Count returns the number of tracked nodes.
func (p *RectProvider) Count() int {
	p.mutex.RLock()
	defer p.mutex.RUnlock()
	return len(p.rects)
}
