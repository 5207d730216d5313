package insight

import (
	"regexp"
	"sort"
	"strings"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/vibecoding/vibenotes/internal/markdown"
	"github.com/vibecoding/vibenotes/internal/models"
)

// Key-point extraction limits.
const (
	recencyDays      = 30
	maxSourceNotes   = 10
	maxPointsPerNote = 2
	maxKeyPoints     = 5
)

// keywords that signal an actionable or instructive sentence. Each hit
// adds one point to the sentence score.
var signalKeywords = []string{
	"important", "key", "critical", "essential", "must", "should",
	"learn", "discovered", "found", "realized", "understand",
	"fix", "solve", "implement", "create", "build", "improve",
	"mcp", "tool", "workflow", "practice", "tip", "technique",
}

var (
	sentenceRe   = regexp.MustCompile(`[^.!?]+[.!?]+`)
	listMarkerRe = regexp.MustCompile(`^\d+\.|^-|^•|^→`)
	acronymRe    = regexp.MustCompile(`[A-Z]{2,}`)
)

// KeyPoint is one extracted sentence with enough context to link back
// to its source note.
type KeyPoint struct {
	Text         string `json:"text"`
	NoteID       string `json:"noteId"`
	NoteTitle    string `json:"noteTitle"`
	RelativeDate string `json:"relativeDate"`
}

type scoredPoint struct {
	KeyPoint
	score int
}

// ExtractKeyPoints pulls the highest-signal sentences out of the most
// recent notes. Only notes created in the last 30 days are considered,
// newest first, capped at 10 source notes; each note contributes at
// most 2 sentences and the result is capped at 5.
func ExtractKeyPoints(notes []models.Note, now time.Time) []KeyPoint {
	cutoff := now.AddDate(0, 0, -recencyDays)

	recent := make([]models.Note, 0, len(notes))
	for _, n := range notes {
		if !n.CreatedAt.Before(cutoff) {
			recent = append(recent, n)
		}
	}
	sort.SliceStable(recent, func(i, j int) bool {
		return recent[i].CreatedAt.After(recent[j].CreatedAt)
	})
	if len(recent) > maxSourceNotes {
		recent = recent[:maxSourceNotes]
	}

	var points []KeyPoint
	for _, n := range recent {
		for _, sp := range scoreNote(n) {
			points = append(points, sp.KeyPoint)
			if len(points) == maxKeyPoints {
				return points
			}
		}
	}
	return points
}

// scoreNote splits a note into sentences, scores each, and returns the
// top positive scorers for that note, best first. Sentence splitting
// runs on the extracted plain text so markup never scores.
func scoreNote(n models.Note) []scoredPoint {
	var scored []scoredPoint
	for _, raw := range sentenceRe.FindAllString(markdown.PlainText(n.Content), -1) {
		sentence := strings.TrimSpace(raw)
		if sentence == "" {
			continue
		}
		score := scoreSentence(sentence)
		if score <= 0 {
			continue
		}
		scored = append(scored, scoredPoint{
			KeyPoint: KeyPoint{
				Text:         sentence,
				NoteID:       n.ID,
				NoteTitle:    n.DisplayTitle(),
				RelativeDate: humanize.Time(n.CreatedAt),
			},
			score: score,
		})
	}
	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].score > scored[j].score
	})
	if len(scored) > maxPointsPerNote {
		scored = scored[:maxPointsPerNote]
	}
	return scored
}

// scoreSentence applies the heuristic signals: a comfortable length,
// keyword hits, a leading list marker, a colon, and an acronym.
func scoreSentence(sentence string) int {
	score := 0
	if len(sentence) >= 30 && len(sentence) < 200 {
		score += 2
	}
	lower := strings.ToLower(sentence)
	for _, kw := range signalKeywords {
		if strings.Contains(lower, kw) {
			score++
		}
	}
	if listMarkerRe.MatchString(sentence) {
		score++
	}
	if strings.Contains(sentence, ":") {
		score++
	}
	if acronymRe.MatchString(sentence) {
		score++
	}
	return score
}
