package model

import "fmt"

// ResourceState is the moderation state shared by languages, frameworks
// and reviews. A freshly created resource is always assigned a state
// explicitly; there is no zero-value fallback in the workflow.
type ResourceState string

const (
	StateWaiting  ResourceState = "WAITING"
	StateApproved ResourceState = "APPROVED"
	StateDeclined ResourceState = "DECLINED"
)

// IsValid reports whether s is one of the three moderation states
func (s ResourceState) IsValid() bool {
	switch s {
	case StateWaiting, StateApproved, StateDeclined:
		return true
	}
	return false
}

// ParseResourceState converts a request string into a ResourceState
func ParseResourceState(raw string) (ResourceState, error) {
	state := ResourceState(raw)
	if !state.IsValid() {
		return "", fmt.Errorf("invalid state %q, must be one of WAITING, APPROVED, DECLINED", raw)
	}
	return state, nil
}
