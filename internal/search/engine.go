// Package search filters the note collection. Filters compose
// conjunctively: a note must satisfy the time window, the tag set, the
// todo filter and the text query to appear in the result.
package search

import (
	"sort"
	"strings"
	"time"

	"github.com/vibecoding/vibenotes/internal/models"
	"github.com/vibecoding/vibenotes/internal/storage"
)

// TimeWindow restricts results to notes created inside a rolling or
// calendar-aligned window.
type TimeWindow string

const (
	WindowAll   TimeWindow = "all"
	WindowToday TimeWindow = "today"
	WindowWeek  TimeWindow = "week"
	WindowMonth TimeWindow = "month"
)

// Valid reports whether w is a known window.
func (w TimeWindow) Valid() bool {
	switch w {
	case WindowAll, WindowToday, WindowWeek, WindowMonth:
		return true
	}
	return false
}

// TodoFilter restricts results by todo state.
type TodoFilter string

const (
	TodoAll       TodoFilter = "all"
	TodoAny       TodoFilter = "todos"
	TodoActive    TodoFilter = "active"
	TodoCompleted TodoFilter = "completed"
)

// Valid reports whether f is a known todo filter.
func (f TodoFilter) Valid() bool {
	switch f {
	case TodoAll, TodoAny, TodoActive, TodoCompleted:
		return true
	}
	return false
}

// Query is one filter state. Zero values mean "no restriction".
type Query struct {
	Text   string
	Window TimeWindow
	Tags   []string
	Todo   TodoFilter
}

// Engine applies queries against a note slice. The clock anchors the
// time windows so results are reproducible in tests.
type Engine struct {
	clock storage.Clock
}

// New creates an Engine. A nil clock falls back to the system clock.
func New(clock storage.Clock) *Engine {
	if clock == nil {
		clock = storage.SystemClock{}
	}
	return &Engine{clock: clock}
}

// Apply filters notes by q and returns matches sorted by creation time,
// newest first. The input slice is not modified.
func (e *Engine) Apply(notes []models.Note, q Query) []models.Note {
	now := e.clock.Now()

	out := make([]models.Note, 0, len(notes))
	for _, n := range notes {
		if !inWindow(n.CreatedAt, q.Window, now) {
			continue
		}
		if !matchesTags(n, q.Tags) {
			continue
		}
		if !matchesTodo(n, q.Todo) {
			continue
		}
		if !matchesText(n, q.Text) {
			continue
		}
		out = append(out, n)
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out
}

// inWindow implements the three window shapes: today is anchored to
// local midnight, week is a rolling 7 days, month uses calendar
// arithmetic (one month back from now, clamped the way AddDate clamps).
func inWindow(created time.Time, w TimeWindow, now time.Time) bool {
	switch w {
	case WindowToday:
		midnight := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
		return !created.Before(midnight)
	case WindowWeek:
		return !created.Before(now.AddDate(0, 0, -7))
	case WindowMonth:
		return !created.Before(now.AddDate(0, -1, 0))
	default:
		return true
	}
}

// matchesTags requires the note to carry at least one of the selected
// tags. An empty selection matches everything.
func matchesTags(n models.Note, tags []string) bool {
	if len(tags) == 0 {
		return true
	}
	for _, t := range tags {
		if n.HasTag(strings.ToLower(strings.TrimSpace(t))) {
			return true
		}
	}
	return false
}

func matchesTodo(n models.Note, f TodoFilter) bool {
	switch f {
	case TodoAny:
		return n.IsTodo
	case TodoActive:
		return n.IsTodo && !n.IsCompleted
	case TodoCompleted:
		return n.IsTodo && n.IsCompleted
	default:
		return true
	}
}

// matchesText does a case-insensitive substring match over the title,
// the content and every tag.
func matchesText(n models.Note, text string) bool {
	text = strings.ToLower(strings.TrimSpace(text))
	if text == "" {
		return true
	}
	if strings.Contains(strings.ToLower(n.Title), text) {
		return true
	}
	if strings.Contains(strings.ToLower(n.Content), text) {
		return true
	}
	for _, t := range n.Tags {
		if strings.Contains(strings.ToLower(t), text) {
			return true
		}
	}
	return false
}
