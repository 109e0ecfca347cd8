package window

import (
	"log/slog"

	"github.com/taigrr/vlist/internal/geometry"
)

// Controller owns the observed scroll/viewport state of one list and runs
// the load-more trigger. It is not safe for concurrent use: the host is
// expected to deliver notifications one at a time.
type Controller struct {
	layout   geometry.Layout
	viewport geometry.Viewport

	// extent is the last observed scrollable extent, kept so a resize can
	// re-evaluate the end classification without a fresh scroll event.
	extent float64

	threshold  float64
	labels     Labels
	pagination Pagination

	// atEnd is the trigger state: false is IDLE, true is AT_END. The
	// load-more callback fires only on the IDLE→AT_END transition.
	atEnd    bool
	loadMore func()
}

// Option configures a Controller.
type Option func(*Controller)

// WithNearEndThreshold overrides the slack distance used to classify
// "reached the end".
func WithNearEndThreshold(threshold float64) Option {
	return func(c *Controller) {
		c.threshold = geometry.Clamp(threshold)
	}
}

// WithLabels overrides the footer messages.
func WithLabels(labels Labels) Option {
	return func(c *Controller) {
		c.labels = labels
	}
}

// WithLoadMore registers the callback invoked when the user reaches the
// end while more data is available. The call is fire-and-forget: the
// controller does not wait for data, it only observes the Pagination
// flags the caller supplies afterwards.
func WithLoadMore(fn func()) Option {
	return func(c *Controller) {
		c.loadMore = fn
	}
}

// New creates a Controller for a list with the given layout.
func New(layout geometry.Layout, opts ...Option) *Controller {
	c := &Controller{
		layout:    layout,
		threshold: DefaultNearEndThreshold,
		labels:    DefaultLabels(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Layout returns the current layout.
func (c *Controller) Layout() geometry.Layout {
	return c.layout
}

// SetLayout swaps the list geometry. This is a full relayout: every
// offset handed out by the next RenderPlan is recomputed from scratch.
func (c *Controller) SetLayout(layout geometry.Layout) {
	c.layout = layout
}

// Viewport returns the current viewport state.
func (c *Controller) Viewport() geometry.Viewport {
	return c.viewport
}

// AtEnd reports whether the last scroll/resize update classified the
// viewport as near the bottom of the content.
func (c *Controller) AtEnd() bool {
	return c.atEnd
}

// SetPagination stores the caller-owned data-fetch flags. HasMore gates
// whether entering the end actually invokes the load-more callback;
// neither flag affects the trigger state transitions themselves.
func (c *Controller) SetPagination(p Pagination) {
	c.pagination = p
}

// Pagination returns the last supplied pagination flags.
func (c *Controller) Pagination() Pagination {
	return c.pagination
}

// OnScroll processes a scroll notification. Malformed values clamp to
// zero rather than failing; a mid-layout glitch should degrade to an
// empty window, not crash the view.
func (c *Controller) OnScroll(scrollOffset, scrollExtent, viewportHeight float64) {
	c.viewport.ScrollOffset = geometry.Clamp(scrollOffset)
	c.viewport.Height = geometry.Clamp(viewportHeight)
	c.extent = geometry.Clamp(scrollExtent)
	c.recompute()
}

// OnResize processes a viewport resize. The end classification is
// re-evaluated against the last known scroll offset and extent, since a
// height change alone can newly reveal the bottom.
func (c *Controller) OnResize(viewportHeight float64) {
	c.viewport.Height = geometry.Clamp(viewportHeight)
	c.recompute()
}

// recompute derives reachedEnd from the freshest observed values and runs
// the trigger state machine. Updates that keep the controller at the end
// are no-ops; without that, continuous scrolling at the bottom would fire
// an unbounded stream of duplicate load requests.
func (c *Controller) recompute() {
	reached := c.extent-c.viewport.ScrollOffset < c.viewport.Height+c.threshold

	switch {
	case reached && !c.atEnd:
		c.atEnd = true
		if c.pagination.HasMore && c.loadMore != nil {
			slog.Debug("near end of content, requesting more items",
				"offset", c.viewport.ScrollOffset,
				"extent", c.extent,
				"height", c.viewport.Height)
			c.loadMore()
		}
	case !reached:
		c.atEnd = false
	}
}

// RenderPlan computes the visible window over items for the current
// viewport state. It is a pure read: calling it any number of times
// neither mutates the controller nor re-arms the load-more trigger.
func (c *Controller) RenderPlan(items []Item) Plan {
	visible := geometry.VisibleSubset(c.layout, items, c.viewport)

	positioned := make([]PositionedItem, 0, len(visible))
	for _, item := range visible {
		positioned = append(positioned, PositionedItem{
			Item:   item,
			Offset: c.layout.OffsetOf(item.Index()),
		})
	}

	return Plan{
		Items: positioned,
		Footer: Footer{
			Offset: c.layout.ExtentOf(len(items)),
			Label:  c.footerLabel(),
		},
		ContentExtent: c.layout.ExtentOf(len(items)),
	}
}

// footerLabel picks the footer message: exhausted data wins over an
// in-flight load, which wins over the idle hint.
func (c *Controller) footerLabel() string {
	switch {
	case !c.pagination.HasMore:
		return c.labels.NoMore
	case c.pagination.Loading:
		return c.labels.Loading
	default:
		return c.labels.Idle
	}
}
