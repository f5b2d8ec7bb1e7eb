package vtscreen

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSavepointStackPushPopOrder(t *testing.T) {
	var st SavepointStack
	st.Push(Savepoint{Cursor: Cursor{X: 1}})
	st.Push(Savepoint{Cursor: Cursor{X: 2}})

	sp, ok := st.Pop()
	assert.True(t, ok)
	assert.Equal(t, 2, sp.Cursor.X)

	sp, ok = st.Pop()
	assert.True(t, ok)
	assert.Equal(t, 1, sp.Cursor.X)

	_, ok = st.Pop()
	assert.False(t, ok)
}

func TestSavepointStackOverflowDropsOldestAndFiresHook(t *testing.T) {
	var st SavepointStack
	overflowed := 0
	st.onOverflow = func() { overflowed++ }

	for i := 0; i < SavepointDepth+3; i++ {
		st.Push(Savepoint{Cursor: Cursor{X: i}})
	}

	assert.Equal(t, 3, overflowed)
	assert.Equal(t, SavepointDepth, st.Len())

	// The oldest three entries (X: 0,1,2) should have been evicted; the
	// bottom of the stack is now X: 3.
	var last Savepoint
	for i := 0; i < SavepointDepth; i++ {
		last, _ = st.Pop()
	}
	assert.Equal(t, 3, last.Cursor.X)
	_, ok := st.Pop()
	assert.False(t, ok)
}
