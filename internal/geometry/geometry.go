// Package geometry maps item indices to absolute vertical offsets and
// classifies which items of a uniform-height list fall inside a viewport.
// Everything here is pure math: no state, no side effects, and every
// function is total over malformed input.
package geometry

import "math"

// Layout describes the fixed geometry of a uniform list: every item is
// ItemHeight tall and items are separated (and surrounded) by ItemMargin.
// Changing a layout invalidates every previously computed offset.
type Layout struct {
	ItemHeight float64
	ItemMargin float64
}

// Viewport is the currently visible window over the list content.
type Viewport struct {
	// ScrollOffset is the distance scrolled from the top of the content.
	ScrollOffset float64
	// Height is the visible extent. Zero means the viewport has not been
	// measured yet; nothing is visible.
	Height float64
}

// Indexed is anything that knows its position in the logical list order.
type Indexed interface {
	Index() int
}

// Clamp normalizes a malformed measurement: NaN and negative values
// become 0. A transient bad measurement mid-layout should degrade to
// "nothing visible", never crash or propagate.
func Clamp(v float64) float64 {
	if math.IsNaN(v) || v < 0 {
		return 0
	}
	return v
}

func (l Layout) itemHeight() float64 { return Clamp(l.ItemHeight) }
func (l Layout) itemMargin() float64 { return Clamp(l.ItemMargin) }

// step is the vertical distance between the top edges of two adjacent items.
func (l Layout) step() float64 { return l.itemHeight() + l.itemMargin() }

// OffsetOf returns the top edge of the item's absolute box. Indices are
// trusted as supplied; out-of-range values yield out-of-range geometry,
// not an error.
func (l Layout) OffsetOf(index int) float64 {
	return float64(index)*l.step() + l.itemMargin()
}

// ExtentOf returns the total scrollable height consumed by count items
// plus the trailing margin. It both sizes the virtual content and places
// the footer, which sits immediately below the last item's box.
func (l Layout) ExtentOf(count int) float64 {
	return float64(count)*l.step() + l.itemMargin()
}

// IsVisible reports whether the item's box overlaps the viewport expanded
// by one item height of slack on each side. The slack keeps fast scrolling
// from popping items in at the edges.
func (l Layout) IsVisible(index int, vp Viewport) bool {
	height := Clamp(vp.Height)
	if height <= 0 {
		return false
	}
	offset := Clamp(vp.ScrollOffset)
	top := l.OffsetOf(index)
	bottom := top + l.itemHeight()
	return bottom > offset-l.itemHeight() && top < offset+height+l.itemHeight()
}

// VisibleSubset filters items down to those visible in the viewport,
// preserving input order. O(n) over the full list; the caller already
// holds all items in memory, only rendering is windowed.
func VisibleSubset[T Indexed](l Layout, items []T, vp Viewport) []T {
	if Clamp(vp.Height) <= 0 || len(items) == 0 {
		return nil
	}
	var visible []T
	for _, item := range items {
		if l.IsVisible(item.Index(), vp) {
			visible = append(visible, item)
		}
	}
	return visible
}
