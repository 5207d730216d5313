// Package insight derives read-only views over the note collection:
// aggregate stats, extracted key points from recent notes, and a
// weighted tag cloud. A Snapshot is rebuilt from scratch on demand and
// after every store mutation, never maintained incrementally.
package insight

import (
	"sort"

	"github.com/vibecoding/vibenotes/internal/models"
	"github.com/vibecoding/vibenotes/internal/storage"
	"github.com/vibecoding/vibenotes/internal/store"
)

// Stats are the collection-wide counters shown in the summary header.
type Stats struct {
	TotalNotes     int `json:"totalNotes"`
	ActiveTodos    int `json:"activeTodos"`
	CompletedTodos int `json:"completedTodos"`
	UniqueTags     int `json:"uniqueTags"`
}

// TagWeight is one entry of the tag cloud. Size is a display bucket
// from 1 (rare) to 4 (dominant), derived from the count's ratio to the
// most frequent tag.
type TagWeight struct {
	Tag   string `json:"tag"`
	Count int    `json:"count"`
	Size  int    `json:"size"`
}

// Snapshot is one full derivation over the collection.
type Snapshot struct {
	Stats     Stats       `json:"stats"`
	KeyPoints []KeyPoint  `json:"keyPoints"`
	TagCloud  []TagWeight `json:"tagCloud"`
}

// Extractor builds snapshots. The clock anchors the recency window for
// key-point extraction.
type Extractor struct {
	clock    storage.Clock
	snapshot Snapshot
}

// New creates an Extractor. A nil clock falls back to the system clock.
func New(clock storage.Clock) *Extractor {
	if clock == nil {
		clock = storage.SystemClock{}
	}
	return &Extractor{clock: clock}
}

// Bind subscribes the extractor to a store so the snapshot refreshes
// after every mutation, and primes it from the current collection.
func (e *Extractor) Bind(s *store.Store) {
	e.Refresh(s.Notes())
	s.Subscribe(func(store.Event) {
		e.Refresh(s.Notes())
	})
}

// Snapshot returns the last computed snapshot.
func (e *Extractor) Snapshot() Snapshot {
	return e.snapshot
}

// Refresh recomputes the snapshot from the given collection and returns
// it.
func (e *Extractor) Refresh(notes []models.Note) Snapshot {
	e.snapshot = Snapshot{
		Stats:     computeStats(notes),
		KeyPoints: ExtractKeyPoints(notes, e.clock.Now()),
		TagCloud:  BuildTagCloud(notes),
	}
	return e.snapshot
}

func computeStats(notes []models.Note) Stats {
	var st Stats
	st.TotalNotes = len(notes)
	tags := make(map[string]bool)
	for _, n := range notes {
		if n.IsTodo && n.IsCompleted {
			st.CompletedTodos++
		} else if n.IsTodo {
			st.ActiveTodos++
		}
		for _, t := range n.Tags {
			tags[t] = true
		}
	}
	st.UniqueTags = len(tags)
	return st
}

// BuildTagCloud counts tag usage across the collection and assigns each
// tag a display bucket relative to the most used tag: >=75% of the max
// is size 4, >=50% size 3, >=25% size 2, the rest size 1. Ties on count
// order alphabetically.
func BuildTagCloud(notes []models.Note) []TagWeight {
	counts := make(map[string]int)
	for _, n := range notes {
		for _, t := range n.Tags {
			counts[t]++
		}
	}
	if len(counts) == 0 {
		return nil
	}

	cloud := make([]TagWeight, 0, len(counts))
	max := 0
	for tag, c := range counts {
		cloud = append(cloud, TagWeight{Tag: tag, Count: c})
		if c > max {
			max = c
		}
	}
	sort.Slice(cloud, func(i, j int) bool {
		if cloud[i].Count != cloud[j].Count {
			return cloud[i].Count > cloud[j].Count
		}
		return cloud[i].Tag < cloud[j].Tag
	})

	for i := range cloud {
		ratio := float64(cloud[i].Count) / float64(max)
		switch {
		case ratio >= 0.75:
			cloud[i].Size = 4
		case ratio >= 0.5:
			cloud[i].Size = 3
		case ratio >= 0.25:
			cloud[i].Size = 2
		default:
			cloud[i].Size = 1
		}
	}
	return cloud
}
