package geometry

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

type testRow int

func (r testRow) Index() int { return int(r) }

func rows(n int) []testRow {
	items := make([]testRow, n)
	for i := range items {
		items[i] = testRow(i)
	}
	return items
}

func TestOffsetSpacing(t *testing.T) {
	t.Parallel()

	layouts := []Layout{
		{ItemHeight: 300, ItemMargin: 10},
		{ItemHeight: 1, ItemMargin: 0},
		{ItemHeight: 42.5, ItemMargin: 7.25},
	}

	for _, l := range layouts {
		for index := range 100 {
			got := l.OffsetOf(index+1) - l.OffsetOf(index)
			want := l.ItemHeight + l.ItemMargin
			if math.Abs(got-want) > 1e-9 {
				t.Errorf("layout %+v index %d: spacing %f, want %f", l, index, got, want)
			}
		}
	}
}

func TestExtentIdentity(t *testing.T) {
	t.Parallel()

	l := Layout{ItemHeight: 300, ItemMargin: 10}

	require.Equal(t, l.ItemMargin, l.ExtentOf(0))

	for n := 1; n <= 50; n++ {
		want := l.OffsetOf(n-1) + l.ItemHeight + l.ItemMargin
		require.InDelta(t, want, l.ExtentOf(n), 1e-9, "n=%d", n)
	}
}

func TestConcreteScenario(t *testing.T) {
	t.Parallel()

	l := Layout{ItemHeight: 300, ItemMargin: 10}

	require.Equal(t, 10.0, l.OffsetOf(0))
	require.Equal(t, 320.0, l.OffsetOf(1))
	require.Equal(t, 1560.0, l.ExtentOf(5))

	vp := Viewport{ScrollOffset: 0, Height: 650}
	visible := VisibleSubset(l, rows(5), vp)

	// Items 0 and 1 are within [0, 650); item 4 starts at 1250, beyond the
	// slack-expanded window [−300, 950).
	require.Contains(t, visible, testRow(0))
	require.Contains(t, visible, testRow(1))
	require.NotContains(t, visible, testRow(4))
}

func TestVisibilityBounds(t *testing.T) {
	t.Parallel()

	l := Layout{ItemHeight: 50, ItemMargin: 5}
	items := rows(200)

	offsets := []float64{0, 55, 137, 1000, 5432.5, l.ExtentOf(200)}
	for _, scroll := range offsets {
		vp := Viewport{ScrollOffset: scroll, Height: 300}
		visible := VisibleSubset(l, items, vp)

		seen := make(map[int]bool, len(visible))
		for _, item := range visible {
			seen[item.Index()] = true
		}

		for _, item := range items {
			top := l.OffsetOf(item.Index())
			bottom := top + l.ItemHeight

			fullyInside := top >= scroll && bottom <= scroll+vp.Height
			fullyOutside := bottom <= scroll-l.ItemHeight || top >= scroll+vp.Height+l.ItemHeight

			if fullyInside && !seen[item.Index()] {
				t.Errorf("scroll %f: item %d fully inside viewport but not visible", scroll, item.Index())
			}
			if fullyOutside && seen[item.Index()] {
				t.Errorf("scroll %f: item %d fully outside slack window but visible", scroll, item.Index())
			}
		}
	}
}

func TestVisibleSubsetPreservesOrder(t *testing.T) {
	t.Parallel()

	l := Layout{ItemHeight: 10, ItemMargin: 2}
	visible := VisibleSubset(l, rows(100), Viewport{ScrollOffset: 120, Height: 60})

	require.NotEmpty(t, visible)
	for i := 1; i < len(visible); i++ {
		if visible[i].Index() <= visible[i-1].Index() {
			t.Fatalf("visible subset out of order at %d: %v", i, visible)
		}
	}
}

func TestUnmeasuredViewport(t *testing.T) {
	t.Parallel()

	l := Layout{ItemHeight: 300, ItemMargin: 10}

	require.Empty(t, VisibleSubset(l, rows(5), Viewport{}))
	require.Empty(t, VisibleSubset(l, rows(5), Viewport{Height: math.NaN()}))
	require.False(t, l.IsVisible(0, Viewport{Height: 0}))
}

func TestClamp(t *testing.T) {
	t.Parallel()

	require.Equal(t, 0.0, Clamp(math.NaN()))
	require.Equal(t, 0.0, Clamp(-1))
	require.Equal(t, 0.0, Clamp(0))
	require.Equal(t, 3.5, Clamp(3.5))
}

func TestMalformedLayout(t *testing.T) {
	t.Parallel()

	// Negative and NaN dimensions degrade to zero geometry, never panic.
	l := Layout{ItemHeight: -300, ItemMargin: math.NaN()}

	require.Equal(t, 0.0, l.OffsetOf(10))
	require.Equal(t, 0.0, l.ExtentOf(10))
	require.Empty(t, VisibleSubset(l, rows(10), Viewport{ScrollOffset: 0, Height: 100}))
}

func TestGarbageIndexDoesNotPanic(t *testing.T) {
	t.Parallel()

	l := Layout{ItemHeight: 300, ItemMargin: 10}

	// Garbage in, garbage geometry out.
	require.Equal(t, -300.0, l.OffsetOf(-1))
	require.False(t, l.IsVisible(-5, Viewport{ScrollOffset: 0, Height: 650}))
}
