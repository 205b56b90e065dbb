package run

import "fmt"

// AssertionError is raised by a test body when an assertion fails. It
// converts the test outcome to Failed.
type AssertionError struct {
	Message string
}

func (e *AssertionError) Error() string {
	return e.Message
}

// Failf builds an AssertionError.
func Failf(format string, args ...interface{}) error {
	return &AssertionError{Message: fmt.Sprintf(format, args...)}
}

// SkipError is returned by a test body to skip the test.
type SkipError struct {
	Message string
}

func (e *SkipError) Error() string {
	return e.Message
}

// Skipf builds a SkipError.
func Skipf(format string, args ...interface{}) error {
	return &SkipError{Message: fmt.Sprintf(format, args...)}
}

// TimeLimitError marks a test forcibly terminated for exceeding its time
// limit.
type TimeLimitError struct {
	Limit string
}

func (e *TimeLimitError) Error() string {
	return fmt.Sprintf("exceeded time limit of %s", e.Limit)
}
