package match

import (
	"fmt"

	"luggage/internal/pkg/errs"
)

// Status is the coarse lifecycle state of a match.
type Status int

const (
	// Unknown catches uninitialised values.
	Unknown Status = iota
	Pending
	Accepted
	Rejected
	Completed
)

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is not a valid status
	return map[Status]string{
		Pending:   "pending",
		Accepted:  "accepted",
		Rejected:  "rejected",
		Completed: "completed",
	}
}

// ParseStatus maps the persisted and API spelling onto a Status.
func ParseStatus(s string) (Status, error) {
	for st, str := range getValidStatusStrings() {
		if str == s {
			return st, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause(
		"status",
		fmt.Errorf("%q must be one of pending, accepted, rejected, completed", s),
	)
}

func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

func (s Status) String() string {
	if str, ok := getValidStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// IsTerminal reports whether no further transition is possible.
func (s Status) IsTerminal() bool {
	return s == Rejected || s == Completed
}
