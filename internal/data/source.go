// Package data implements the demo feed's paged data source. It plays
// the host-side role of the windowing contract: it owns the HasMore and
// Loading flags and serves pages with simulated network latency.
package data

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/google/uuid"
)

// Entry is one feed row. It satisfies the windowing engine's Item
// contract: a stable unique ID and a fixed position in the feed order.
type Entry struct {
	id    string
	index int

	Title     string
	CreatedAt time.Time
}

// ID returns the entry's stable unique key.
func (e Entry) ID() string { return e.id }

// Index returns the entry's position in the feed order.
func (e Entry) Index() int { return e.index }

// Meta returns the human-readable age of the entry.
func (e Entry) Meta() string { return humanize.Time(e.CreatedAt) }

// Page is one fetched batch of entries.
type Page struct {
	Entries []Entry
	// HasMore reports whether another page exists after this one.
	HasMore bool
}

// Source is a fake remote feed with a fixed total size. Safe to call
// from bubbletea command goroutines; it has no mutable state.
type Source struct {
	pageSize int
	total    int
	latency  time.Duration
	epoch    time.Time
}

// NewSource creates a source serving total entries in pages of pageSize,
// each fetch taking latency to complete.
func NewSource(pageSize, total int, latency time.Duration) *Source {
	return &Source{
		pageSize: pageSize,
		total:    total,
		latency:  latency,
		epoch:    time.Now(),
	}
}

var headlines = []string{
	"Release notes you actually want to read",
	"Scrolling considered harmful",
	"A field guide to terminal renderers",
	"Why your list widget is slow",
	"Windowing without tears",
	"The margin is part of the layout",
	"Offsets, extents, and other lies",
	"Pagination state machines in practice",
}

// Fetch returns the page starting at offset. It blocks for the
// configured latency or until ctx is canceled.
func (s *Source) Fetch(ctx context.Context, offset int) (Page, error) {
	if s.latency > 0 {
		select {
		case <-ctx.Done():
			return Page{}, ctx.Err()
		case <-time.After(s.latency):
		}
	}

	if offset < 0 {
		offset = 0
	}

	count := min(s.pageSize, s.total-offset)
	if count < 0 {
		count = 0
	}

	entries := make([]Entry, 0, count)
	for i := range count {
		index := offset + i
		entries = append(entries, Entry{
			id:        uuid.NewString(),
			index:     index,
			Title:     fmt.Sprintf("#%d %s", index+1, headlines[index%len(headlines)]),
			CreatedAt: s.epoch.Add(-time.Duration(index) * 7 * time.Minute),
		})
	}

	page := Page{
		Entries: entries,
		HasMore: offset+count < s.total,
	}

	slog.Info("fetched feed page",
		"offset", offset,
		"count", count,
		"hasMore", page.HasMore)

	return page, nil
}

// Total returns the number of entries the source will ever serve.
func (s *Source) Total() int { return s.total }
