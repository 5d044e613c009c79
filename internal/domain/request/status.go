package request

import (
	"errors"
	"strings"
)

// Status is the lifecycle state shared by leave, attendance-status and
// daily-report-edit requests. Pending is the only non-terminal state.
type Status string

const (
	StatusPending  Status = "Pending"
	StatusApproved Status = "Approved"
	StatusRejected Status = "Rejected"
)

var (
	ErrNotActionable   = errors.New("request has already been processed")
	ErrInvalidDecision = errors.New("decision must be approve or reject")
)

// Actionable reports whether approve/reject may still be offered.
func (s Status) Actionable() bool {
	return s == StatusPending
}

type Decision string

const (
	DecisionApprove Decision = "approve"
	DecisionReject  Decision = "reject"
)

func ParseDecision(raw string) (Decision, error) {
	switch Decision(strings.ToLower(strings.TrimSpace(raw))) {
	case DecisionApprove:
		return DecisionApprove, nil
	case DecisionReject:
		return DecisionReject, nil
	}
	return "", ErrInvalidDecision
}

// Status returns the terminal status a decision moves a request to.
func (d Decision) Status() Status {
	if d == DecisionApprove {
		return StatusApproved
	}
	return StatusRejected
}

// CheckTransition refuses a decision on a request whose last known status is terminal.
func CheckTransition(current Status, d Decision) error {
	if d != DecisionApprove && d != DecisionReject {
		return ErrInvalidDecision
	}
	if !current.Actionable() {
		return ErrNotActionable
	}
	return nil
}

// FilterPending keeps the items whose status is Pending.
func FilterPending[T any](items []T, status func(T) Status) []T {
	pending := make([]T, 0, len(items))
	for _, item := range items {
		if status(item) == StatusPending {
			pending = append(pending, item)
		}
	}
	return pending
}
