// Package models provides data model definitions for the vibenotes core.
package models

import (
	"strings"
	"time"

	apperrors "github.com/vibecoding/vibenotes/internal/errors"
	"github.com/vibecoding/vibenotes/internal/markdown"
)

const (
	// ContentMinLen is the minimum accepted content length in characters.
	ContentMinLen = 3

	// ContentMaxLen is the maximum accepted content length in characters.
	ContentMaxLen = 2000

	// MaxTags is the maximum number of tags kept per note.
	MaxTags = 10

	// TitleMaxLen is the length a derived title is truncated to.
	TitleMaxLen = 50
)

// Note represents a single note record, optionally flagged as a todo.
// The JSON shape matches the persisted blob layout.
type Note struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	Tags      []string  `json:"tags"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	// Todo fields. IsCompleted is meaningful only when IsTodo is set,
	// but both are stored regardless.
	IsTodo      bool     `json:"isTodo"`
	IsCompleted bool     `json:"isCompleted"`
	Priority    Priority `json:"priority"`
}

// DisplayTitle returns the title, deriving one from content if blank.
func (n *Note) DisplayTitle() string {
	if strings.TrimSpace(n.Title) != "" {
		return n.Title
	}
	return DeriveTitle(n.Content)
}

// TodoState returns the note's todo lifecycle state as a tagged value.
func (n *Note) TodoState() TodoState {
	switch {
	case !n.IsTodo:
		return StateNotTodo
	case n.IsCompleted:
		return StateCompletedTodo
	default:
		return StateActiveTodo
	}
}

// SetTodoState projects a tagged state back onto the stored boolean pair.
// Invalid combinations (completed but not a todo) cannot be produced.
func (n *Note) SetTodoState(s TodoState) {
	switch s {
	case StateActiveTodo:
		n.IsTodo = true
		n.IsCompleted = false
	case StateCompletedTodo:
		n.IsTodo = true
		n.IsCompleted = true
	default:
		n.IsTodo = false
		n.IsCompleted = false
	}
}

// Touch refreshes the UpdatedAt timestamp.
func (n *Note) Touch(now time.Time) {
	n.UpdatedAt = now
}

// Normalize backfills missing fields and re-applies the tag and timestamp
// invariants. Records loaded from an older blob layout pass through here
// before use.
func (n *Note) Normalize() {
	n.Tags = NormalizeTags(n.Tags)
	if n.CreatedAt.IsZero() {
		n.CreatedAt = n.UpdatedAt
	}
	if n.UpdatedAt.Before(n.CreatedAt) {
		n.UpdatedAt = n.CreatedAt
	}
	if !n.Priority.Valid() {
		n.Priority = PriorityUrgentImportant
	}
	if !n.IsTodo {
		n.IsCompleted = false
	}
}

// ValidateContent checks the content length bounds applied on add/update.
func ValidateContent(content string) error {
	runes := len([]rune(content))
	switch {
	case strings.TrimSpace(content) == "":
		return errContent("content is required")
	case runes < ContentMinLen:
		return errContent("content must be at least 3 characters")
	case runes > ContentMaxLen:
		return errContent("content must be less than 2000 characters")
	}
	return nil
}

// DeriveTitle builds a title from the first meaningful line of content,
// with markdown markers stripped.
func DeriveTitle(content string) string {
	for _, line := range strings.Split(content, "\n") {
		plain := strings.TrimSpace(markdown.PlainText(line))
		if plain == "" {
			continue
		}
		runes := []rune(plain)
		if len(runes) > TitleMaxLen {
			return string(runes[:TitleMaxLen]) + "..."
		}
		return plain
	}
	return "Untitled Note"
}

// ParseTags splits comma-separated tag text into the canonical tag set:
// trimmed, lowercased, deduplicated, order-preserving, capped at MaxTags.
func ParseTags(tagText string) []string {
	if strings.TrimSpace(tagText) == "" {
		return []string{}
	}
	return NormalizeTags(strings.Split(tagText, ","))
}

// NormalizeTags applies the tag invariants to an existing tag list.
func NormalizeTags(tags []string) []string {
	out := make([]string, 0, len(tags))
	seen := make(map[string]bool, len(tags))
	for _, tag := range tags {
		tag = strings.ToLower(strings.TrimSpace(tag))
		if tag == "" || seen[tag] {
			continue
		}
		seen[tag] = true
		out = append(out, tag)
		if len(out) == MaxTags {
			break
		}
	}
	return out
}

func errContent(msg string) error {
	return apperrors.New(apperrors.ErrValidation, msg)
}

// HasTag reports whether the note carries the given (lowercase) tag.
func (n *Note) HasTag(tag string) bool {
	for _, t := range n.Tags {
		if t == tag {
			return true
		}
	}
	return false
}
