package run

import "fmt"

// Body is a test body. It returns nil on success, an *AssertionError on
// assertion failure, a *SkipError to skip, or any other error to mark the
// test errored. Panics are caught at the test boundary and treated as
// errors.
type Body func(tc *TestContext) error

// Test is one runnable test method.
type Test struct {
	// Class and Method identify the test for metadata lookup and naming.
	Class  string
	Method string
	// Body is the executable test.
	Body Body
}

// Name returns the canonical test name, Class::Method.
func (t *Test) Name() string {
	return fmt.Sprintf("%s::%s", t.Class, t.Method)
}

// Suite is a named collection of tests and nested suites. Suite events
// bracket every contained test's events; nesting is strictly well-formed.
type Suite struct {
	Name   string
	Tests  []*Test
	Suites []*Suite
}

// CountTests returns the number of test methods in the suite and all
// nested suites, before data provider expansion.
func (s *Suite) CountTests() int {
	n := len(s.Tests)
	for _, child := range s.Suites {
		n += child.CountTests()
	}
	return n
}
