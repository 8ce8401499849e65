package employee

type Status string

const (
	StatusDraft      Status = "draft"
	StatusActive     Status = "active"
	StatusOnNotice   Status = "on_notice"
	StatusRelieved   Status = "relieved"
	StatusTerminated Status = "terminated"
)

var transitions = map[Status][]Status{
	StatusDraft:    {StatusActive},
	StatusActive:   {StatusOnNotice, StatusRelieved, StatusTerminated},
	StatusOnNotice: {StatusActive, StatusRelieved, StatusTerminated},
}

func (s Status) IsValid() bool {
	switch s {
	case StatusDraft, StatusActive, StatusOnNotice, StatusRelieved, StatusTerminated:
		return true
	}
	return false
}

// IsTerminal reports whether no transition leaves s.
func (s Status) IsTerminal() bool {
	return len(transitions[s]) == 0
}

// Label is the human readable form used in messages and documents.
func (s Status) Label() string {
	switch s {
	case StatusDraft:
		return "Draft"
	case StatusActive:
		return "Active"
	case StatusOnNotice:
		return "On Notice"
	case StatusRelieved:
		return "Relieved"
	case StatusTerminated:
		return "Terminated"
	}
	return string(s)
}

// CanTransition reports whether an employee may move from one status to another.
func CanTransition(from, to Status) bool {
	for _, next := range transitions[from] {
		if next == to {
			return true
		}
	}
	return false
}
