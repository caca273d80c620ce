package htmltag

import (
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestBookmarksSetGetRelease(t *testing.T) {
	b := newBookmarks(0, discardLogger())

	require.NoError(t, b.set("a", Span{Start: 3, Length: 5}))
	span, ok := b.get("a")
	require.True(t, ok)
	assert.Equal(t, Span{Start: 3, Length: 5}, span)

	assert.True(t, b.has("a"))
	assert.True(t, b.release("a"))
	assert.False(t, b.release("a"))
	assert.False(t, b.has("a"))
}

func TestBookmarksLimitExceeded(t *testing.T) {
	b := newBookmarks(2, discardLogger())

	require.NoError(t, b.set("a", Span{Start: 0, Length: 1}))
	require.NoError(t, b.set("b", Span{Start: 1, Length: 1}))

	err := b.set("c", Span{Start: 2, Length: 1})
	assert.ErrorIs(t, err, ErrBookmarkLimitExceeded)

	// Updating an existing bookmark never counts against the limit.
	require.NoError(t, b.set("a", Span{Start: 9, Length: 1}))
}

func TestBookmarksShiftAfter(t *testing.T) {
	b := newBookmarks(0, discardLogger())
	require.NoError(t, b.set("before", Span{Start: 1, Length: 1}))
	require.NoError(t, b.set("after", Span{Start: 10, Length: 1}))

	b.shiftAfter(5, 3)

	before, _ := b.get("before")
	after, _ := b.get("after")
	assert.Equal(t, 1, before.Start)
	assert.Equal(t, 13, after.Start)
}

func TestLexicalUpdateQueueFlush(t *testing.T) {
	q := newLexicalUpdateQueue(0, discardLogger())
	q.push(LexicalUpdate{Start: 5, Length: 3, Replacement: []byte("XYZ")})

	out := q.flush([]byte("hello-world"))
	assert.Equal(t, "helloXYZrld", string(out))
	assert.Empty(t, q.updates)
}

func TestLexicalUpdateQueueShouldFlush(t *testing.T) {
	q := newLexicalUpdateQueue(2, discardLogger())
	assert.False(t, q.shouldFlush())
	q.push(LexicalUpdate{Start: 0, Length: 0})
	assert.False(t, q.shouldFlush())
	q.push(LexicalUpdate{Start: 0, Length: 0})
	assert.True(t, q.shouldFlush())
}
