package export

import "fmt"

// Status classifies the outcome of an export or import run.
type Status string

const (
	StatusOK        Status = "ok"
	StatusCancelled Status = "cancelled"
	StatusError     Status = "error"
)

// Result is the typed outcome handed across the command boundary, so callers
// branch on Status instead of parsing error text.
type Result struct {
	Status   Status `json:"status"`
	Path     string `json:"path,omitempty"`
	Dreams   int    `json:"dreams,omitempty"`
	Trashed  int    `json:"trashed,omitempty"`
	Remapped int    `json:"remapped,omitempty"`
	Message  string `json:"message,omitempty"`
}

// OK builds a success result for the given file.
func OK(path string, dreams, trashed int) Result {
	return Result{Status: StatusOK, Path: path, Dreams: dreams, Trashed: trashed}
}

// Cancelled marks a run the user backed out of before any write.
func Cancelled() Result {
	return Result{Status: StatusCancelled}
}

// Errorf builds an error result carrying the failure message.
func Errorf(format string, args ...any) Result {
	return Result{Status: StatusError, Message: fmt.Sprintf(format, args...)}
}

// Err exposes an error Result as a Go error, nil otherwise.
func (r Result) Err() error {
	if r.Status == StatusError {
		return fmt.Errorf("%s", r.Message)
	}
	return nil
}
