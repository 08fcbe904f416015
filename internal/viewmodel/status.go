package viewmodel

// Status is the outcome message shown after a save.
type Status int

const (
	StatusNone Status = iota
	StatusSaved
	StatusSaveFailed
)

// Message returns the user-facing text of the status.
func (s Status) Message() string {
	switch s {
	case StatusSaved:
		return "Data saved successfully!"
	case StatusSaveFailed:
		return "Error saving data!"
	default:
		return ""
	}
}
