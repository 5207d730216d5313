package models

// TodoState is the tagged todo lifecycle state of a note. Modeling the
// state explicitly keeps the invalid combination "completed but not a
// todo" unrepresentable at the transition level.
type TodoState int

const (
	StateNotTodo TodoState = iota
	StateActiveTodo
	StateCompletedTodo
)

// Next returns the successor in the three-state cycle:
// not-todo -> active todo -> completed todo -> not-todo.
func (s TodoState) Next() TodoState {
	switch s {
	case StateNotTodo:
		return StateActiveTodo
	case StateActiveTodo:
		return StateCompletedTodo
	default:
		return StateNotTodo
	}
}

// String returns the state name used in logs and CLI output.
func (s TodoState) String() string {
	switch s {
	case StateActiveTodo:
		return "active todo"
	case StateCompletedTodo:
		return "completed todo"
	default:
		return "note"
	}
}
