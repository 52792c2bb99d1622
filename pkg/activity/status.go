package activity

import "strings"

// Status tags an activity for display. The vocabulary is open on purpose:
// the backend may grow new tags, so unknown values keep their raw text and
// get the normal display treatment.
type Status string

const (
	StatusNormal  Status = "normal"
	StatusWarning Status = "warning"
	StatusSuccess Status = "success"
	StatusDanger  Status = "danger"
)

// Known reports whether s is one of the four recognized tags.
func (s Status) Known() bool {
	switch s {
	case StatusNormal, StatusWarning, StatusSuccess, StatusDanger:
		return true
	}
	return false
}

// Badge is the uppercased label rendered inside a status badge.
func (s Status) Badge() string {
	if s == "" {
		return "NORMAL"
	}
	return strings.ToUpper(string(s))
}

func (s Status) String() string {
	if s == "" {
		return string(StatusNormal)
	}
	return string(s)
}
