// Package matching compares candidate profiles against job descriptions and
// produces weighted, explainable match scores.
package matching

import "fmt"

// InvalidConfigurationError reports a malformed weight set or scoring config.
// It is fatal at scorer construction; scoring never starts with bad weights.
type InvalidConfigurationError struct {
	Message string
	Cause   error
}

func (e *InvalidConfigurationError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("invalid configuration: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("invalid configuration: %s", e.Message)
}

func (e *InvalidConfigurationError) Unwrap() error {
	return e.Cause
}

// InvalidInputError reports a malformed JobDescription. It fails the one
// request that carried it.
type InvalidInputError struct {
	Message string
	Cause   error
}

func (e *InvalidInputError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("invalid input: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("invalid input: %s", e.Message)
}

func (e *InvalidInputError) Unwrap() error {
	return e.Cause
}
