package double

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEql_DeepEquality(t *testing.T) {
	assert.True(t, Eql(42).Matches(42))
	assert.False(t, Eql(42).Matches(43))
	assert.True(t, Eql([]string{"a", "b"}).Matches([]string{"a", "b"}))
	assert.False(t, Eql([]string{"a"}).Matches([]string{"b"}))
}

func TestAny_MatchesEverything(t *testing.T) {
	assert.True(t, Any().Matches(nil))
	assert.True(t, Any().Matches("x"))
	assert.True(t, Any().Matches(struct{}{}))
}

func TestPredicate_DelegatesAndNames(t *testing.T) {
	positive := Predicate("positive", func(arg interface{}) bool {
		n, ok := arg.(int)
		return ok && n > 0
	})
	assert.True(t, positive.Matches(1))
	assert.False(t, positive.Matches(-1))
	assert.False(t, positive.Matches("nope"))
	assert.Equal(t, "positive", positive.String())
}

func TestArgs_ArityAndPosition(t *testing.T) {
	m := Args(Eql("a"), Any())
	assert.True(t, m.MatchesArgs([]interface{}{"a", 99}))
	assert.False(t, m.MatchesArgs([]interface{}{"b", 99}))
	assert.False(t, m.MatchesArgs([]interface{}{"a"}))
	assert.False(t, m.MatchesArgs([]interface{}{"a", 99, "extra"}))
}

func TestValues_Shorthand(t *testing.T) {
	m := Values("a", 1)
	assert.True(t, m.MatchesArgs([]interface{}{"a", 1}))
	assert.False(t, m.MatchesArgs([]interface{}{"a", 2}))
	assert.Equal(t, "(a, 1)", m.String())
}

func TestArgs_EmptyMatchesNoArgs(t *testing.T) {
	m := Args()
	assert.True(t, m.MatchesArgs(nil))
	assert.False(t, m.MatchesArgs([]interface{}{1}))
}
