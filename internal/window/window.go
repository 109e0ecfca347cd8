// Package window bridges raw scroll and resize notifications to the
// geometry engine and decides when to ask the host for more data. One
// Controller owns the viewport state of exactly one mounted list; all
// mutation happens on the host's single event-processing path.
package window

// Item is the caller-supplied payload. The controller never mutates or
// reorders items; it trusts Index to match the intended vertical order.
type Item interface {
	// ID is a stable unique key for the item.
	ID() string
	// Index is the item's position in the logical ordering.
	Index() int
}

// Pagination carries the caller-owned data-fetch flags. The controller
// only observes them; it never flips them itself.
type Pagination struct {
	HasMore bool
	Loading bool
}

// PositionedItem pairs an item with the absolute top offset the caller
// must render it at.
type PositionedItem struct {
	Item
	Offset float64
}

// Footer describes the loading/end-of-data row rendered below the last
// item's box.
type Footer struct {
	Offset float64
	Label  string
}

// Plan is everything the caller needs to draw one frame: the visible
// items with their offsets, the footer, and the total virtual content
// height for sizing the scroll container.
type Plan struct {
	Items         []PositionedItem
	Footer        Footer
	ContentExtent float64
}

// Labels are the footer messages for the three pagination states.
type Labels struct {
	NoMore  string
	Loading string
	Idle    string
}

// DefaultLabels returns the stock footer messages.
func DefaultLabels() Labels {
	return Labels{
		NoMore:  "no more items",
		Loading: "loading…",
		Idle:    "scroll for more",
	}
}

// DefaultNearEndThreshold is the slack distance from the bottom of the
// scrollable content within which the user counts as having reached the
// end.
const DefaultNearEndThreshold = 10.0
