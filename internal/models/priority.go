package models

// Priority encodes the four Eisenhower-matrix quadrants.
type Priority int

const (
	PriorityUrgentImportant       Priority = 0
	PriorityNotUrgentImportant    Priority = 1
	PriorityUrgentNotImportant    Priority = 2
	PriorityNotUrgentNotImportant Priority = 3
)

// Valid reports whether p is one of the four quadrants.
func (p Priority) Valid() bool {
	return p >= PriorityUrgentImportant && p <= PriorityNotUrgentNotImportant
}

// Label returns the full human-readable quadrant name.
func (p Priority) Label() string {
	switch p {
	case PriorityUrgentImportant:
		return "Urgent & Important"
	case PriorityNotUrgentImportant:
		return "Not Urgent but Important"
	case PriorityUrgentNotImportant:
		return "Urgent but Not Important"
	case PriorityNotUrgentNotImportant:
		return "Not Urgent & Not Important"
	default:
		return "Unknown"
	}
}

// ShortLabel returns the two-letter quadrant code shown on compact output.
func (p Priority) ShortLabel() string {
	switch p {
	case PriorityUrgentImportant:
		return "UI"
	case PriorityNotUrgentImportant:
		return "NI"
	case PriorityUrgentNotImportant:
		return "UN"
	case PriorityNotUrgentNotImportant:
		return "NN"
	default:
		return "??"
	}
}
