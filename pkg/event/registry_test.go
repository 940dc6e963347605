package event

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// inlinableTally is small enough for the compiler to inline; each inlined call
// site then carries its own copy of the returned literal.
func inlinableTally(n *int) func() {
	return func() { *n++ }
}

func TestRemoveFuncFollowsCodeIdentity(t *testing.T) {
	t.Parallel()

	var a, b int
	first := inlinableTally(&a)
	second := inlinableTally(&b)

	firstCode, ok := codeOf(first)
	require.True(t, ok)
	secondCode, ok := codeOf(second)
	require.True(t, ok)

	var r registry[func()]
	r.add(first)
	r.removeFunc(second)

	// With inlining the two call sites compile separate closures and nothing
	// matches; without it they share one function and the entry goes.
	if firstCode == secondCode {
		assert.Equal(t, 0, r.SubscriberCount())
	} else {
		assert.Equal(t, 1, r.SubscriberCount())
	}

	r.removeFunc(first)
	assert.Equal(t, 0, r.SubscriberCount(), "the subscribed value always matches itself")
}

func TestCodeOf(t *testing.T) {
	t.Parallel()

	_, ok := codeOf((func())(nil))
	assert.False(t, ok)

	_, ok = codeOf(42)
	assert.False(t, ok)

	fn := func() {}
	code, ok := codeOf(fn)
	require.True(t, ok)
	again, _ := codeOf(fn)
	assert.Equal(t, code, again)
}
