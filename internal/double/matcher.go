package double

import (
	"fmt"
	"reflect"
	"strings"
)

// ArgMatcher matches a single argument.
type ArgMatcher interface {
	Matches(arg interface{}) bool
	fmt.Stringer
}

// ArgsMatcher matches a full argument list.
type ArgsMatcher interface {
	MatchesArgs(args []interface{}) bool
	fmt.Stringer
}

type eqlMatcher struct {
	expected interface{}
}

func (m eqlMatcher) Matches(arg interface{}) bool {
	return reflect.DeepEqual(m.expected, arg)
}

func (m eqlMatcher) String() string {
	return fmt.Sprintf("%v", m.expected)
}

// Eql returns a matcher comparing the argument with reflect.DeepEqual.
func Eql(expected interface{}) ArgMatcher {
	return eqlMatcher{expected: expected}
}

type anyMatcher struct{}

func (anyMatcher) Matches(interface{}) bool { return true }
func (anyMatcher) String() string           { return "<any>" }

// Any returns a matcher accepting any single argument.
func Any() ArgMatcher {
	return anyMatcher{}
}

type predicateMatcher struct {
	name string
	fn   func(interface{}) bool
}

func (m predicateMatcher) Matches(arg interface{}) bool { return m.fn(arg) }
func (m predicateMatcher) String() string               { return m.name }

// Predicate returns a matcher delegating to fn. The name appears in
// failure messages.
func Predicate(name string, fn func(interface{}) bool) ArgMatcher {
	return predicateMatcher{name: name, fn: fn}
}

type argsMatcher []ArgMatcher

func (m argsMatcher) MatchesArgs(args []interface{}) bool {
	if len(args) != len(m) {
		return false
	}
	for i, matcher := range m {
		if !matcher.Matches(args[i]) {
			return false
		}
	}
	return true
}

func (m argsMatcher) String() string {
	parts := make([]string, len(m))
	for i, matcher := range m {
		parts[i] = matcher.String()
	}
	return "(" + strings.Join(parts, ", ") + ")"
}

// Args combines per-argument matchers into an ArgsMatcher requiring the
// same arity and a positional match for every argument.
func Args(matchers ...ArgMatcher) ArgsMatcher {
	return argsMatcher(matchers)
}

// Values is shorthand for Args with an Eql matcher per value.
func Values(values ...interface{}) ArgsMatcher {
	matchers := make([]ArgMatcher, len(values))
	for i, v := range values {
		matchers[i] = Eql(v)
	}
	return argsMatcher(matchers)
}
