package models

import "time"

// Draft holds unsent form input the UI collaborator parks between
// sessions. Tags stay as raw comma-separated text until submission.
type Draft struct {
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	Tags      string    `json:"tags"`
	Timestamp time.Time `json:"timestamp"`
}
