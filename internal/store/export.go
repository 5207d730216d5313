package store

import (
	"encoding/json"

	apperrors "github.com/vibecoding/vibenotes/internal/errors"
	"github.com/vibecoding/vibenotes/internal/models"
)

// ExportAll snapshots the whole collection into a versioned envelope.
func (s *Store) ExportAll() models.ExportEnvelope {
	return models.ExportEnvelope{
		Version:    models.ExportVersion,
		ExportDate: s.clock.Now(),
		Notes:      s.Notes(),
	}
}

// ParseEnvelope decodes a raw export payload. Anything that is not a
// JSON object with a notes array is a FORMAT_ERROR.
func ParseEnvelope(data []byte) (*models.ExportEnvelope, error) {
	var env models.ExportEnvelope
	if err := json.Unmarshal(data, &env); err != nil {
		return nil, apperrors.Wrap(apperrors.ErrFormat, "invalid import file format", err)
	}
	if env.Notes == nil {
		return nil, apperrors.New(apperrors.ErrFormat, "import file has no notes array")
	}
	return &env, nil
}

// ImportMerge merges an export envelope into the collection. Records
// missing an id, content or creation time are dropped; records whose id
// already exists are skipped; the rest are normalized and appended, and
// the whole collection is re-sorted newest-first.
func (s *Store) ImportMerge(env *models.ExportEnvelope) (models.ImportResult, error) {
	if env == nil || env.Notes == nil {
		return models.ImportResult{}, apperrors.New(apperrors.ErrFormat, "import file has no notes array")
	}

	existing := make(map[string]bool, len(s.notes))
	for _, n := range s.notes {
		existing[n.ID] = true
	}

	var result models.ImportResult
	for _, n := range env.Notes {
		if n.ID == "" || n.Content == "" || n.CreatedAt.IsZero() {
			continue
		}
		result.Total++
		if existing[n.ID] {
			result.Skipped++
			continue
		}
		n.Normalize()
		existing[n.ID] = true
		s.notes = append(s.notes, n)
		result.Imported++
	}
	s.sortByCreatedDesc()

	saveErr := s.save()
	s.emit(Event{Kind: EventImported})
	return result, saveErr
}
