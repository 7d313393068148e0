package valueobjects

import "fmt"

// Status is the lifecycle state of a service request. Each status
// carries a machine code and the dispatcher-facing Russian name, both
// of which are persisted.
type Status string

const (
	StatusNew               Status = "new"
	StatusPendingProcessing Status = "pending_processing"
	StatusInProgress        Status = "in_progress"
	StatusClosed            Status = "closed"
)

var statusNames = map[Status]string{
	StatusNew:               "Новая",
	StatusPendingProcessing: "Ожидает обработки",
	StatusInProgress:        "В работе",
	StatusClosed:            "Закрыта",
}

// statusTransitions covers the normal forward flow plus the
// closed-to-new rework edge.
var statusTransitions = map[Status][]Status{
	StatusNew: {
		StatusPendingProcessing,
		StatusInProgress,
		StatusClosed,
	},
	StatusPendingProcessing: {
		StatusInProgress,
		StatusClosed,
	},
	StatusInProgress: {
		StatusClosed,
	},
	StatusClosed: {
		StatusNew,
	},
}

func (s Status) String() string {
	return string(s)
}

// Name returns the display name stored alongside the code.
func (s Status) Name() string {
	return statusNames[s]
}

func (s Status) IsValid() bool {
	_, ok := statusNames[s]
	return ok
}

func (s Status) CanTransitionTo(next Status) bool {
	for _, allowed := range statusTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

func (s Status) IsNew() bool {
	return s == StatusNew
}

func (s Status) IsClosed() bool {
	return s == StatusClosed
}

// IsOpen reports whether the request is still actionable: new,
// pending processing, or in progress.
func (s Status) IsOpen() bool {
	return s == StatusNew || s == StatusPendingProcessing || s == StatusInProgress
}

func NewStatus(code string) (Status, error) {
	s := Status(code)
	if !s.IsValid() {
		return "", fmt.Errorf("invalid request status: %s", code)
	}
	return s, nil
}

// StatusFromName resolves a status by its display name.
func StatusFromName(name string) (Status, error) {
	for code, n := range statusNames {
		if n == name {
			return code, nil
		}
	}
	return "", fmt.Errorf("unknown status name: %s", name)
}
