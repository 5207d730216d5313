// Package store owns the canonical note collection: loading and
// normalizing the persisted blob, every mutation, and the mutation
// events derived views subscribe to. All external access to notes goes
// through this package.
package store

import (
	"encoding/json"
	"sort"
	"strings"

	"github.com/google/uuid"

	apperrors "github.com/vibecoding/vibenotes/internal/errors"
	"github.com/vibecoding/vibenotes/internal/logging"
	"github.com/vibecoding/vibenotes/internal/models"
	"github.com/vibecoding/vibenotes/internal/storage"
)

// Persisted-state keys, one blob per key.
const (
	NotesKey = "vibe-coding-notes"
	ThemeKey = "theme-preference"
	DraftKey = "note-draft"
)

// NoteDraft is the input to Add and Update. Tags arrive as raw
// comma-separated text. The todo fields are pointers so Update can tell
// "not provided, keep existing" apart from an explicit false/zero.
type NoteDraft struct {
	Title   string
	Content string
	Tags    string

	IsTodo      *bool
	IsCompleted *bool
	Priority    *models.Priority
}

// Store is the note store. It is single-threaded by design: every
// operation runs to completion on the caller's goroutine, and listeners
// fire synchronously after the blob is written.
type Store struct {
	persist   storage.Persistence
	clock     storage.Clock
	notes     []models.Note
	listeners []Listener
}

// New creates a Store over the given persistence port. A nil clock
// falls back to the system clock.
func New(persist storage.Persistence, clock storage.Clock) *Store {
	if clock == nil {
		clock = storage.SystemClock{}
	}
	return &Store{
		persist: persist,
		clock:   clock,
		notes:   []models.Note{},
	}
}

// Load reads the persisted blob and normalizes every record to the full
// note shape, backfilling missing ids and defaults. An absent or
// unparsable blob yields an empty collection; neither case is an error
// beyond a log line. The normalized form is written back best-effort.
func (s *Store) Load() error {
	s.notes = []models.Note{}

	raw, err := s.persist.Get(NotesKey)
	if err != nil {
		logging.Warn("failed to read notes blob, starting empty", map[string]interface{}{
			"error": err.Error(),
		})
		return nil
	}
	if raw == "" {
		return nil
	}

	var loaded []models.Note
	if err := json.Unmarshal([]byte(raw), &loaded); err != nil {
		logging.Warn("notes blob is unparsable, starting empty", map[string]interface{}{
			"error": err.Error(),
		})
		return nil
	}

	now := s.clock.Now()
	for i := range loaded {
		if loaded[i].ID == "" {
			loaded[i].ID = uuid.NewString()
		}
		if loaded[i].CreatedAt.IsZero() && loaded[i].UpdatedAt.IsZero() {
			loaded[i].CreatedAt = now
		}
		loaded[i].Normalize()
	}
	s.notes = loaded

	if err := s.save(); err != nil {
		logging.Warn("failed to write back normalized notes", map[string]interface{}{
			"error": err.Error(),
		})
	}
	return nil
}

// Add validates and inserts a new note at the head of the collection.
// The returned error is nil on full success; a STORAGE_ERROR-coded
// error means the note exists in memory but could not be persisted.
func (s *Store) Add(draft NoteDraft) (models.Note, error) {
	content := strings.TrimSpace(draft.Content)
	if err := models.ValidateContent(content); err != nil {
		return models.Note{}, err
	}

	now := s.clock.Now()
	note := models.Note{
		ID:        uuid.NewString(),
		Title:     strings.TrimSpace(draft.Title),
		Content:   content,
		Tags:      models.ParseTags(draft.Tags),
		CreatedAt: now,
		UpdatedAt: now,
	}
	if note.Title == "" {
		note.Title = models.DeriveTitle(content)
	}
	if draft.IsTodo != nil {
		note.IsTodo = *draft.IsTodo
	}
	if draft.IsCompleted != nil {
		note.IsCompleted = *draft.IsCompleted
	}
	if draft.Priority != nil {
		note.Priority = *draft.Priority
	}
	note.Normalize()

	s.notes = append([]models.Note{note}, s.notes...)
	saveErr := s.save()
	s.emit(Event{Kind: EventCreated, Note: &note})
	return note, saveErr
}

// Update overwrites the editable fields of an existing note. Title,
// content and tags always come from the draft; the todo fields only
// overwrite when provided. Id and creation time are preserved.
func (s *Store) Update(id string, draft NoteDraft) (models.Note, error) {
	idx := s.indexOf(id)
	if idx < 0 {
		return models.Note{}, apperrors.New(apperrors.ErrNotFound, "note not found: "+id)
	}

	content := strings.TrimSpace(draft.Content)
	if err := models.ValidateContent(content); err != nil {
		return models.Note{}, err
	}

	note := s.notes[idx]
	note.Title = strings.TrimSpace(draft.Title)
	note.Content = content
	note.Tags = models.ParseTags(draft.Tags)
	if note.Title == "" {
		note.Title = models.DeriveTitle(content)
	}
	if draft.IsTodo != nil {
		note.IsTodo = *draft.IsTodo
	}
	if draft.IsCompleted != nil {
		note.IsCompleted = *draft.IsCompleted
	}
	if draft.Priority != nil {
		note.Priority = *draft.Priority
	}
	note.Touch(s.clock.Now())
	note.Normalize()

	s.notes[idx] = note
	saveErr := s.save()
	s.emit(Event{Kind: EventUpdated, Note: &note})
	return note, saveErr
}

// Delete removes a note. A missing id is a silent no-op returning
// false. The error only ever carries the persistence warning.
func (s *Store) Delete(id string) (bool, error) {
	idx := s.indexOf(id)
	if idx < 0 {
		return false, nil
	}

	note := s.notes[idx]
	s.notes = append(s.notes[:idx], s.notes[idx+1:]...)
	saveErr := s.save()
	s.emit(Event{Kind: EventDeleted, Note: &note})
	return true, saveErr
}

// CycleTodoState advances the note's three-state todo machine exactly
// one step: note -> active todo -> completed todo -> note.
func (s *Store) CycleTodoState(id string) (models.Note, error) {
	idx := s.indexOf(id)
	if idx < 0 {
		return models.Note{}, apperrors.New(apperrors.ErrNotFound, "note not found: "+id)
	}

	note := s.notes[idx]
	note.SetTodoState(note.TodoState().Next())
	note.Touch(s.clock.Now())

	s.notes[idx] = note
	saveErr := s.save()
	s.emit(Event{Kind: EventStateCycled, Note: &note})
	return note, saveErr
}

// SetPriority sets the note's Eisenhower quadrant.
func (s *Store) SetPriority(id string, p models.Priority) (models.Note, error) {
	if !p.Valid() {
		return models.Note{}, apperrors.New(apperrors.ErrValidation, "priority must be between 0 and 3")
	}
	idx := s.indexOf(id)
	if idx < 0 {
		return models.Note{}, apperrors.New(apperrors.ErrNotFound, "note not found: "+id)
	}

	note := s.notes[idx]
	note.Priority = p
	note.Touch(s.clock.Now())

	s.notes[idx] = note
	saveErr := s.save()
	s.emit(Event{Kind: EventPriorityChanged, Note: &note})
	return note, saveErr
}

// Get returns a note by id.
func (s *Store) Get(id string) (models.Note, bool) {
	idx := s.indexOf(id)
	if idx < 0 {
		return models.Note{}, false
	}
	return s.notes[idx], true
}

// Notes returns a copy of the collection in insertion order (newest
// first by convention).
func (s *Store) Notes() []models.Note {
	out := make([]models.Note, len(s.notes))
	copy(out, s.notes)
	return out
}

// Len returns the number of notes in the collection.
func (s *Store) Len() int {
	return len(s.notes)
}

// AllTags returns every distinct tag across the collection, in first-use
// order.
func (s *Store) AllTags() []string {
	var tags []string
	seen := make(map[string]bool)
	for _, n := range s.notes {
		for _, t := range n.Tags {
			if !seen[t] {
				seen[t] = true
				tags = append(tags, t)
			}
		}
	}
	return tags
}

func (s *Store) indexOf(id string) int {
	for i := range s.notes {
		if s.notes[i].ID == id {
			return i
		}
	}
	return -1
}

// sortByCreatedDesc re-sorts the whole collection newest-first, keeping
// the relative order of equal timestamps.
func (s *Store) sortByCreatedDesc() {
	sort.SliceStable(s.notes, func(i, j int) bool {
		return s.notes[i].CreatedAt.After(s.notes[j].CreatedAt)
	})
}

// save writes the full collection to the persistence port. A write
// failure keeps the in-memory state authoritative for the session and
// comes back as a STORAGE_ERROR the caller should surface as a warning.
func (s *Store) save() error {
	data, err := json.Marshal(s.notes)
	if err != nil {
		return apperrors.Wrap(apperrors.ErrInternal, "failed to encode notes", err)
	}
	if err := s.persist.Set(NotesKey, string(data)); err != nil {
		logging.Warn("failed to persist notes, in-memory state kept for this session", map[string]interface{}{
			"error": err.Error(),
		})
		return apperrors.Wrap(apperrors.ErrStorage, "changes may not survive a reload", err)
	}
	return nil
}
