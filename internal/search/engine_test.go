// Package search tests: window math, filter conjunction and ordering.
package search

import (
	"testing"
	"time"

	"github.com/vibecoding/vibenotes/internal/models"
	"github.com/vibecoding/vibenotes/internal/storage"
)

// Anchored mid-day so the today window has room on both sides.
var testNow = time.Date(2026, 8, 30, 15, 0, 0, 0, time.UTC)

func testEngine() *Engine {
	return New(storage.FixedClock{Time: testNow})
}

func noteAt(id string, created time.Time) models.Note {
	return models.Note{ID: id, Title: id, Content: "content of " + id, CreatedAt: created}
}

// TestEngine_TimeWindows verifies the three window shapes against
// boundary timestamps.
func TestEngine_TimeWindows(t *testing.T) {
	notes := []models.Note{
		noteAt("this-morning", time.Date(2026, 8, 30, 1, 0, 0, 0, time.UTC)),
		noteAt("yesterday", testNow.AddDate(0, 0, -1)),
		noteAt("six-days-ago", testNow.AddDate(0, 0, -6)),
		noteAt("two-weeks-ago", testNow.AddDate(0, 0, -14)),
		noteAt("two-months-ago", testNow.AddDate(0, -2, 0)),
	}

	tests := []struct {
		name   string
		window TimeWindow
		want   []string
	}{
		{"all", WindowAll, []string{"this-morning", "yesterday", "six-days-ago", "two-weeks-ago", "two-months-ago"}},
		{"today", WindowToday, []string{"this-morning"}},
		{"week", WindowWeek, []string{"this-morning", "yesterday", "six-days-ago"}},
		{"month", WindowMonth, []string{"this-morning", "yesterday", "six-days-ago", "two-weeks-ago"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := testEngine().Apply(notes, Query{Window: tt.window})
			assertIDs(t, got, tt.want)
		})
	}
}

// TestEngine_TagFilter verifies OR semantics inside the tag selection.
func TestEngine_TagFilter(t *testing.T) {
	notes := []models.Note{
		{ID: "a", Content: "note a", Tags: []string{"go", "testing"}, CreatedAt: testNow},
		{ID: "b", Content: "note b", Tags: []string{"rust"}, CreatedAt: testNow.Add(-time.Hour)},
		{ID: "c", Content: "note c", CreatedAt: testNow.Add(-2 * time.Hour)},
	}

	got := testEngine().Apply(notes, Query{Tags: []string{"go", "rust"}})
	assertIDs(t, got, []string{"a", "b"})

	// The query side is normalized like stored tags.
	got = testEngine().Apply(notes, Query{Tags: []string{" GO "}})
	assertIDs(t, got, []string{"a"})
}

// TestEngine_TodoFilter verifies the four todo filter modes.
func TestEngine_TodoFilter(t *testing.T) {
	notes := []models.Note{
		{ID: "plain", Content: "plain note", CreatedAt: testNow},
		{ID: "active", Content: "active todo", IsTodo: true, CreatedAt: testNow.Add(-time.Hour)},
		{ID: "done", Content: "done todo", IsTodo: true, IsCompleted: true, CreatedAt: testNow.Add(-2 * time.Hour)},
	}

	tests := []struct {
		name   string
		filter TodoFilter
		want   []string
	}{
		{"all", TodoAll, []string{"plain", "active", "done"}},
		{"todos", TodoAny, []string{"active", "done"}},
		{"active", TodoActive, []string{"active"}},
		{"completed", TodoCompleted, []string{"done"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := testEngine().Apply(notes, Query{Todo: tt.filter})
			assertIDs(t, got, tt.want)
		})
	}
}

// TestEngine_TextSearch verifies the case-insensitive substring match
// over title, content and tags.
func TestEngine_TextSearch(t *testing.T) {
	notes := []models.Note{
		{ID: "title-hit", Title: "Deploy Checklist", Content: "steps", CreatedAt: testNow},
		{ID: "content-hit", Title: "misc", Content: "remember to DEPLOY friday", CreatedAt: testNow.Add(-time.Hour)},
		{ID: "tag-hit", Title: "misc", Content: "nothing", Tags: []string{"deployment"}, CreatedAt: testNow.Add(-2 * time.Hour)},
		{ID: "miss", Title: "misc", Content: "unrelated", CreatedAt: testNow.Add(-3 * time.Hour)},
	}

	got := testEngine().Apply(notes, Query{Text: "deploy"})
	assertIDs(t, got, []string{"title-hit", "content-hit", "tag-hit"})
}

// TestEngine_Conjunction verifies filters must all hold at once.
func TestEngine_Conjunction(t *testing.T) {
	notes := []models.Note{
		{ID: "match", Content: "fix the build", Tags: []string{"ci"}, IsTodo: true, CreatedAt: testNow},
		{ID: "wrong-tag", Content: "fix the docs", Tags: []string{"docs"}, IsTodo: true, CreatedAt: testNow},
		{ID: "not-todo", Content: "fix ideas", Tags: []string{"ci"}, CreatedAt: testNow},
		{ID: "too-old", Content: "fix everything", Tags: []string{"ci"}, IsTodo: true, CreatedAt: testNow.AddDate(0, 0, -30)},
	}

	got := testEngine().Apply(notes, Query{
		Text:   "fix",
		Window: WindowWeek,
		Tags:   []string{"ci"},
		Todo:   TodoActive,
	})
	assertIDs(t, got, []string{"match"})
}

// TestEngine_SortStable verifies newest-first order with ties keeping
// their relative position.
func TestEngine_SortStable(t *testing.T) {
	same := testNow.Add(-time.Hour)
	notes := []models.Note{
		{ID: "old", Content: "oldest", CreatedAt: testNow.Add(-2 * time.Hour)},
		{ID: "tie-1", Content: "tied first", CreatedAt: same},
		{ID: "tie-2", Content: "tied second", CreatedAt: same},
		{ID: "new", Content: "newest", CreatedAt: testNow},
	}

	got := testEngine().Apply(notes, Query{})
	assertIDs(t, got, []string{"new", "tie-1", "tie-2", "old"})
}

func assertIDs(t *testing.T, notes []models.Note, want []string) {
	t.Helper()
	if len(notes) != len(want) {
		ids := make([]string, len(notes))
		for i, n := range notes {
			ids[i] = n.ID
		}
		t.Fatalf("got %v, want %v", ids, want)
	}
	for i, n := range notes {
		if n.ID != want[i] {
			t.Errorf("result[%d] = %s, want %s", i, n.ID, want[i])
		}
	}
}
