package store

import (
	"encoding/json"

	apperrors "github.com/vibecoding/vibenotes/internal/errors"
	"github.com/vibecoding/vibenotes/internal/logging"
	"github.com/vibecoding/vibenotes/internal/models"
)

// Theme returns the persisted theme preference, or "" when none has
// been saved yet. Read failures come back empty with a log line.
func (s *Store) Theme() string {
	v, err := s.persist.Get(ThemeKey)
	if err != nil {
		logging.Warn("failed to read theme preference", map[string]interface{}{
			"error": err.Error(),
		})
		return ""
	}
	return v
}

// SetTheme persists the theme preference. Only "light" and "dark" are
// accepted.
func (s *Store) SetTheme(theme string) error {
	if theme != "light" && theme != "dark" {
		return apperrors.New(apperrors.ErrValidation, "theme must be light or dark")
	}
	if err := s.persist.Set(ThemeKey, theme); err != nil {
		return apperrors.Wrap(apperrors.ErrStorage, "failed to save theme preference", err)
	}
	return nil
}

// SaveDraft stamps and persists an in-progress note so an interrupted
// edit can be picked back up.
func (s *Store) SaveDraft(d models.Draft) error {
	d.Timestamp = s.clock.Now()
	data, err := json.Marshal(d)
	if err != nil {
		return apperrors.Wrap(apperrors.ErrInternal, "failed to encode draft", err)
	}
	if err := s.persist.Set(DraftKey, string(data)); err != nil {
		return apperrors.Wrap(apperrors.ErrStorage, "failed to save draft", err)
	}
	return nil
}

// LoadDraft returns the saved draft, if any. An unparsable draft is
// treated as absent.
func (s *Store) LoadDraft() (models.Draft, bool) {
	raw, err := s.persist.Get(DraftKey)
	if err != nil {
		logging.Warn("failed to read draft", map[string]interface{}{
			"error": err.Error(),
		})
		return models.Draft{}, false
	}
	if raw == "" {
		return models.Draft{}, false
	}
	var d models.Draft
	if err := json.Unmarshal([]byte(raw), &d); err != nil {
		logging.Warn("draft blob is unparsable, discarding", map[string]interface{}{
			"error": err.Error(),
		})
		return models.Draft{}, false
	}
	return d, true
}

// ClearDraft removes any saved draft.
func (s *Store) ClearDraft() error {
	if err := s.persist.Delete(DraftKey); err != nil {
		return apperrors.Wrap(apperrors.ErrStorage, "failed to clear draft", err)
	}
	return nil
}
