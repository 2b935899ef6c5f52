package lexer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMerge(t *testing.T) {
	assert.Nil(t, Merge(nil, 10))
	assert.Equal(t, []TextRange{{1, 4}}, Merge([]TextRange{{1, 2}, {2, 4}}, 10))
	assert.Equal(t, []TextRange{{1, 2}, {3, 4}}, Merge([]TextRange{{3, 4}, {1, 2}}, 10))
	assert.Equal(t, []TextRange{{1, 3}, {5, 7}}, Merge([]TextRange{{5, 7}, {1, 3}}, 10))
	// out-of-range clamped
	assert.Equal(t, []TextRange{{0, 5}}, Merge([]TextRange{{-3, 5}}, 5))
	// empty ranges dropped
	assert.Nil(t, Merge([]TextRange{{3, 3}}, 10))
	// idempotent
	merged := Merge([]TextRange{{1, 2}, {2, 4}, {10, 12}}, 20)
	assert.Equal(t, merged, Merge(merged, 20))
}

func TestTotalLen(t *testing.T) {
	assert.Equal(t, 0, TotalLen(nil))
	assert.Equal(t, 5, TotalLen([]TextRange{{0, 2}, {4, 7}}))
}

func TestContains(t *testing.T) {
	ranges := []TextRange{{2, 5}, {10, 12}}
	r, ok := Contains(ranges, 3)
	assert.True(t, ok)
	assert.Equal(t, TextRange{2, 5}, r)

	_, ok = Contains(ranges, 5)
	assert.False(t, ok)

	_, ok = Contains(ranges, 1)
	assert.False(t, ok)

	r, ok = Contains(ranges, 11)
	assert.True(t, ok)
	assert.Equal(t, TextRange{10, 12}, r)
}

func TestIntersect(t *testing.T) {
	global := []TextRange{{2, 5}, {10, 12}, {20, 25}}
	cursor := 0

	first := Intersect(global, 0, 8, &cursor)
	assert.Equal(t, []TextRange{{2, 5}}, first)

	second := Intersect(global, 8, 15, &cursor)
	assert.Equal(t, []TextRange{{2, 4}}, second)

	third := Intersect(global, 15, 30, &cursor)
	assert.Equal(t, []TextRange{{5, 10}}, third)
}

func TestIntersectSpanningWindow(t *testing.T) {
	global := []TextRange{{3, 20}}
	cursor := 0

	first := Intersect(global, 0, 10, &cursor)
	assert.Equal(t, []TextRange{{3, 10}}, first)

	second := Intersect(global, 10, 25, &cursor)
	assert.Equal(t, []TextRange{{0, 10}}, second)
}
