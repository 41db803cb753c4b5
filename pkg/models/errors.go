package models

import "fmt"

// InvalidScenarioError reports a resolved parameter that violates a structural
// invariant, such as a non-positive count or capacity.
type InvalidScenarioError struct {
	Parameter string
	Value     any
	Reason    string
}

func (e *InvalidScenarioError) Error() string {
	return fmt.Sprintf("invalid scenario: parameter %q = %v: %s", e.Parameter, e.Value, e.Reason)
}
