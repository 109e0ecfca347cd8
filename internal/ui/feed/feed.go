// Package feed implements the infinite-scroll demo feed. It is the
// "host environment" side of the windowing contract: it turns key and
// mouse input into scroll notifications, terminal resizes into viewport
// updates, fetches pages when the controller asks for more, and renders
// the controller's plan into terminal rows.
package feed

import (
	"context"
	"fmt"
	"math"
	"strings"
	"time"

	"charm.land/bubbles/v2/help"
	"charm.land/bubbles/v2/key"
	"charm.land/bubbles/v2/spinner"
	tea "charm.land/bubbletea/v2"
	"github.com/charmbracelet/x/ansi"

	"github.com/taigrr/vlist/internal/data"
	"github.com/taigrr/vlist/internal/geometry"
	"github.com/taigrr/vlist/internal/ui/styles"
	"github.com/taigrr/vlist/internal/uiutil"
	"github.com/taigrr/vlist/internal/window"
)

// wheelScrollRows is how many rows one mouse wheel notch scrolls.
const wheelScrollRows = 3

// footerRows is the extra scrollable row the footer occupies below the
// last item's box. The scroll range must include it or the footer could
// never be brought into view on a long list.
const footerRows = 1

// errorStatusTTL is how long a fetch error stays on the status line.
const errorStatusTTL = 5 * time.Second

// Config describes a feed instance.
type Config struct {
	// Layout is the row geometry, in terminal rows.
	Layout geometry.Layout
	// Threshold overrides the near-end slack when positive.
	Threshold float64
	// Source serves the pages.
	Source *data.Source
}

// pageMsg delivers a fetched page back to the update loop.
type pageMsg struct {
	page data.Page
	err  error
}

// Feed is the bubbletea model for the demo.
type Feed struct {
	styles  styles.Styles
	keyMap  KeyMap
	help    help.Model
	spinner spinner.Model

	ctrl   *window.Controller
	source *data.Source

	items      []window.Item
	pagination window.Pagination

	width, height int
	scrollOffset  float64

	// pendingLoad is set by the controller's load-more callback while an
	// OnScroll runs and is drained into a fetch command on the same
	// update pass.
	pendingLoad bool

	status string
}

// New creates a feed for the given config.
func New(cfg Config) *Feed {
	t := styles.DefaultStyles()

	f := &Feed{
		styles:     t,
		keyMap:     DefaultKeyMap(),
		help:       help.New(),
		source:     cfg.Source,
		pagination: window.Pagination{HasMore: true},
	}

	f.spinner = spinner.New(
		spinner.WithSpinner(spinner.Dot),
		spinner.WithStyle(t.FooterLoading),
	)

	opts := []window.Option{
		window.WithLoadMore(func() { f.pendingLoad = true }),
	}
	if cfg.Threshold > 0 {
		opts = append(opts, window.WithNearEndThreshold(cfg.Threshold))
	}
	f.ctrl = window.New(cfg.Layout, opts...)
	f.ctrl.SetPagination(f.pagination)

	return f
}

// Init implements tea.Model. It kicks off the first page load.
func (f *Feed) Init() tea.Cmd {
	f.pagination.Loading = true
	f.ctrl.SetPagination(f.pagination)
	return tea.Batch(f.spinner.Tick, f.fetch())
}

// Update implements tea.Model.
func (f *Feed) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		f.width, f.height = msg.Width, msg.Height
		f.ctrl.OnResize(float64(f.contentHeight()))
		f.clampScroll()
		if cmd := f.drainLoad(); cmd != nil {
			cmds = append(cmds, cmd)
		}

	case spinner.TickMsg:
		if f.pagination.Loading {
			var cmd tea.Cmd
			f.spinner, cmd = f.spinner.Update(msg)
			if cmd != nil {
				cmds = append(cmds, cmd)
			}
		}

	case pageMsg:
		if cmd := f.handlePage(msg); cmd != nil {
			cmds = append(cmds, cmd)
		}

	case uiutil.InfoMsg:
		f.status = msg.Msg
		ttl := msg.TTL
		if ttl == 0 && msg.Type == uiutil.InfoTypeError {
			ttl = errorStatusTTL
		}
		if ttl > 0 {
			cmds = append(cmds, tea.Tick(ttl, func(time.Time) tea.Msg {
				return uiutil.ClearStatusMsg{}
			}))
		}

	case uiutil.ClearStatusMsg:
		f.status = fmt.Sprintf("%d items", len(f.items))

	case tea.MouseWheelMsg:
		switch msg.Button {
		case tea.MouseWheelUp:
			f.ScrollBy(-wheelScrollRows)
		case tea.MouseWheelDown:
			f.ScrollBy(wheelScrollRows)
		}
		if cmd := f.drainLoad(); cmd != nil {
			cmds = append(cmds, cmd)
		}

	case tea.KeyPressMsg:
		if cmd := f.handleKeyPress(msg); cmd != nil {
			cmds = append(cmds, cmd)
		}
	}

	return f, tea.Batch(cmds...)
}

func (f *Feed) handlePage(msg pageMsg) tea.Cmd {
	if msg.err != nil {
		f.pagination.Loading = false
		f.ctrl.SetPagination(f.pagination)
		return uiutil.ReportError(msg.err)
	}

	for _, entry := range msg.page.Entries {
		f.items = append(f.items, entry)
	}
	f.pagination = window.Pagination{HasMore: msg.page.HasMore, Loading: false}
	f.ctrl.SetPagination(f.pagination)

	// The content extent grew; refresh the end classification so the
	// trigger re-arms once the user is no longer near the new bottom.
	f.syncScroll()
	return tea.Batch(
		f.drainLoad(),
		uiutil.ReportInfo(fmt.Sprintf("%d items", len(f.items))),
	)
}

func (f *Feed) handleKeyPress(msg tea.KeyPressMsg) tea.Cmd {
	page := float64(max(1, f.contentHeight()-1))

	switch {
	case key.Matches(msg, f.keyMap.Quit):
		return tea.Quit
	case key.Matches(msg, f.keyMap.Help):
		f.help.ShowAll = !f.help.ShowAll
		f.ctrl.OnResize(float64(f.contentHeight()))
		f.clampScroll()
	case key.Matches(msg, f.keyMap.Up):
		f.ScrollBy(-1)
	case key.Matches(msg, f.keyMap.Down):
		f.ScrollBy(1)
	case key.Matches(msg, f.keyMap.PageUp):
		f.ScrollBy(-page)
	case key.Matches(msg, f.keyMap.PageDown):
		f.ScrollBy(page)
	case key.Matches(msg, f.keyMap.Top):
		f.ScrollTo(0)
	case key.Matches(msg, f.keyMap.Bottom):
		f.ScrollTo(f.maxScroll())
	}

	return f.drainLoad()
}

// ScrollBy scrolls the feed by the given number of rows.
func (f *Feed) ScrollBy(rows float64) {
	f.ScrollTo(f.scrollOffset + rows)
}

// ScrollTo scrolls the feed to the given absolute offset, clamped to the
// valid range.
func (f *Feed) ScrollTo(offset float64) {
	f.scrollOffset = math.Min(math.Max(offset, 0), f.maxScroll())
	f.syncScroll()
}

// syncScroll feeds the freshest observed values into the controller.
func (f *Feed) syncScroll() {
	f.ctrl.OnScroll(f.scrollOffset, f.extent(), float64(f.contentHeight()))
}

func (f *Feed) clampScroll() {
	f.ScrollTo(f.scrollOffset)
}

func (f *Feed) extent() float64 {
	return f.ctrl.Layout().ExtentOf(len(f.items))
}

// maxScroll is the largest valid scroll offset. The footer sits one row
// past the last item's box, so its row counts toward the scrollable
// range.
func (f *Feed) maxScroll() float64 {
	return math.Max(0, f.extent()+footerRows-float64(f.contentHeight()))
}

// contentHeight is the number of terminal rows available to the list,
// excluding the status bar and the help line.
func (f *Feed) contentHeight() int {
	chrome := 1 + f.helpHeight()
	return max(0, f.height-chrome)
}

func (f *Feed) helpHeight() int {
	if f.help.ShowAll {
		return len(f.keyMap.FullHelp()[0])
	}
	return 1
}

// drainLoad turns a pending load-more trigger into a fetch command. The
// controller already guarantees at most one trigger per end-reached
// episode; this only serializes fetches.
func (f *Feed) drainLoad() tea.Cmd {
	if !f.pendingLoad {
		return nil
	}
	if !f.pagination.HasMore {
		f.pendingLoad = false
		return nil
	}
	if f.pagination.Loading {
		// Keep the request queued until the in-flight fetch lands; the
		// post-page update will drain it.
		return nil
	}
	f.pendingLoad = false
	f.pagination.Loading = true
	f.ctrl.SetPagination(f.pagination)

	return tea.Batch(f.spinner.Tick, f.fetch())
}

func (f *Feed) fetch() tea.Cmd {
	offset := len(f.items)
	return func() tea.Msg {
		page, err := f.source.Fetch(context.Background(), offset)
		return pageMsg{page: page, err: err}
	}
}

// View implements tea.Model.
func (f *Feed) View() tea.View {
	var v tea.View
	v.AltScreen = true
	v.MouseMode = tea.MouseModeCellMotion

	if f.width < 20 || f.height < 5 {
		v.Content = f.styles.WindowTooSmall.Render("Window too small")
		return v
	}

	v.Content = strings.Join([]string{
		f.contentView(),
		f.statusView(),
		f.help.View(f.keyMap),
	}, "\n")

	return v
}

// contentView composites the controller's plan into terminal rows. Each
// visible item is painted at its absolute offset minus the scroll
// position, exactly like an absolutely positioned box.
func (f *Feed) contentView() string {
	height := f.contentHeight()
	rows := make([]string, height)

	plan := f.ctrl.RenderPlan(f.items)
	top := int(math.Round(f.scrollOffset))

	for _, item := range plan.Items {
		entry, ok := item.Item.(data.Entry)
		if !ok {
			continue
		}
		start := int(math.Round(item.Offset)) - top
		for i, line := range strings.Split(f.renderEntry(entry), "\n") {
			row := start + i
			if row < 0 || row >= height {
				continue
			}
			rows[row] = line
		}
	}

	if row := int(math.Round(plan.Footer.Offset)) - top; row >= 0 && row < height {
		rows[row] = f.footerView(plan.Footer.Label)
	}

	for i, row := range rows {
		rows[i] = ansi.Truncate(row, f.width, "…")
	}

	return strings.Join(rows, "\n")
}

// renderEntry renders one feed row at exactly the layout's item height.
func (f *Feed) renderEntry(entry data.Entry) string {
	t := f.styles
	content := t.RowTitle.Render(entry.Title) + "\n" + t.RowMeta.Render(entry.Meta())

	lines := strings.Split(t.Row.Render(content), "\n")
	want := max(1, int(f.ctrl.Layout().ItemHeight))
	for len(lines) < want {
		lines = append(lines, "")
	}
	return strings.Join(lines[:want], "\n")
}

func (f *Feed) footerView(label string) string {
	t := f.styles
	switch {
	case !f.pagination.HasMore:
		return t.FooterEnd.Render(styles.EndIcon + " " + label)
	case f.pagination.Loading:
		return t.FooterLoading.Render(f.spinner.View() + label)
	default:
		return t.FooterIdle.Render(styles.HintIcon + " " + label)
	}
}

func (f *Feed) statusView() string {
	return f.styles.StatusBar.Render(
		fmt.Sprintf("%s · %.0f/%.0f", f.status, f.scrollOffset, f.extent()))
}

// Items returns the number of loaded items. Used by the status line and
// tests.
func (f *Feed) Items() int { return len(f.items) }
