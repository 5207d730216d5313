// Package insight tests: stats counters, tag cloud buckets and the
// snapshot refresh wiring.
package insight

import (
	"testing"
	"time"

	"github.com/vibecoding/vibenotes/internal/models"
	"github.com/vibecoding/vibenotes/internal/storage"
	"github.com/vibecoding/vibenotes/internal/store"
)

var testNow = time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)

// TestComputeStats verifies the counters split todos correctly.
func TestComputeStats(t *testing.T) {
	notes := []models.Note{
		{Content: "plain", Tags: []string{"go"}},
		{Content: "active", IsTodo: true, Tags: []string{"go", "work"}},
		{Content: "done", IsTodo: true, IsCompleted: true},
		{Content: "another plain", Tags: []string{"home"}},
	}

	st := computeStats(notes)
	if st.TotalNotes != 4 {
		t.Errorf("TotalNotes = %d, want 4", st.TotalNotes)
	}
	if st.ActiveTodos != 1 {
		t.Errorf("ActiveTodos = %d, want 1", st.ActiveTodos)
	}
	if st.CompletedTodos != 1 {
		t.Errorf("CompletedTodos = %d, want 1", st.CompletedTodos)
	}
	if st.UniqueTags != 3 {
		t.Errorf("UniqueTags = %d, want 3", st.UniqueTags)
	}
}

// TestBuildTagCloud verifies ordering and the ratio-based size buckets.
func TestBuildTagCloud(t *testing.T) {
	// go appears 4 times, work 2, home 1: ratios 1.0, 0.5, 0.25.
	notes := []models.Note{
		{Tags: []string{"go", "work"}},
		{Tags: []string{"go", "work"}},
		{Tags: []string{"go", "home"}},
		{Tags: []string{"go"}},
	}

	cloud := BuildTagCloud(notes)
	if len(cloud) != 3 {
		t.Fatalf("cloud has %d tags, want 3", len(cloud))
	}

	want := []TagWeight{
		{Tag: "go", Count: 4, Size: 4},
		{Tag: "work", Count: 2, Size: 3},
		{Tag: "home", Count: 1, Size: 2},
	}
	for i, w := range want {
		if cloud[i] != w {
			t.Errorf("cloud[%d] = %+v, want %+v", i, cloud[i], w)
		}
	}
}

// TestBuildTagCloud_TiesAlphabetical verifies ties on count order by
// name.
func TestBuildTagCloud_TiesAlphabetical(t *testing.T) {
	notes := []models.Note{
		{Tags: []string{"zeta", "alpha"}},
	}
	cloud := BuildTagCloud(notes)
	if cloud[0].Tag != "alpha" || cloud[1].Tag != "zeta" {
		t.Errorf("tie order = [%s %s], want [alpha zeta]", cloud[0].Tag, cloud[1].Tag)
	}
}

// TestBuildTagCloud_Empty verifies an untagged collection yields no
// cloud.
func TestBuildTagCloud_Empty(t *testing.T) {
	if cloud := BuildTagCloud([]models.Note{{Content: "untagged"}}); cloud != nil {
		t.Errorf("cloud = %v, want nil", cloud)
	}
}

// TestExtractor_Bind verifies the snapshot refreshes after mutations.
func TestExtractor_Bind(t *testing.T) {
	mem := storage.NewMemStore()
	s := store.New(mem, storage.FixedClock{Time: testNow})
	if err := s.Load(); err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	ext := New(storage.FixedClock{Time: testNow})
	ext.Bind(s)

	if got := ext.Snapshot().Stats.TotalNotes; got != 0 {
		t.Fatalf("initial TotalNotes = %d, want 0", got)
	}

	if _, err := s.Add(store.NoteDraft{Content: "observed note", Tags: "go"}); err != nil {
		t.Fatalf("Add() error = %v", err)
	}

	snap := ext.Snapshot()
	if snap.Stats.TotalNotes != 1 {
		t.Errorf("TotalNotes after add = %d, want 1", snap.Stats.TotalNotes)
	}
	if snap.Stats.UniqueTags != 1 {
		t.Errorf("UniqueTags after add = %d, want 1", snap.Stats.UniqueTags)
	}
}
