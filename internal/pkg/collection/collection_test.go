package collection

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAppendUnbounded(t *testing.T) {
	got, err := Append([]string{"a"}, []string{"b", "c"}, 0)
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b", "c"}, got)
}

func TestAppendCapacity(t *testing.T) {
	items := []string{"a", "b", "c"}

	_, err := Append(items, []string{"d"}, 3)
	assert.ErrorIs(t, err, ErrCapacityExceeded)
	// original untouched
	assert.Equal(t, []string{"a", "b", "c"}, items)

	got, err := Append([]string{"a", "b"}, []string{"c"}, 3)
	require.NoError(t, err)
	assert.Len(t, got, 3)
}

func TestAppendCapacityCheckedBeforeAppend(t *testing.T) {
	// a multi-item append that would cross the cap must reject everything
	got, err := Append([]string{"a", "b"}, []string{"c", "d"}, 3)
	assert.ErrorIs(t, err, ErrCapacityExceeded)
	assert.Nil(t, got)
}

func TestFits(t *testing.T) {
	assert.True(t, Fits([]string{"a", "b"}, 1, 3))
	assert.False(t, Fits([]string{"a", "b", "c"}, 1, 3))
	assert.True(t, Fits([]string{"a", "b", "c"}, 10, 0))
}

func TestReplaceAt(t *testing.T) {
	items := []string{"a", "b", "c"}

	got, err := ReplaceAt(items, 1, "x")
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "x", "c"}, got)
	// no shifting, original untouched
	assert.Equal(t, []string{"a", "b", "c"}, items)

	_, err = ReplaceAt(items, 3, "x")
	assert.ErrorIs(t, err, ErrIndexOutOfRange)
	_, err = ReplaceAt(items, -1, "x")
	assert.ErrorIs(t, err, ErrIndexOutOfRange)
}

func TestDeleteAtCompacts(t *testing.T) {
	items := []string{"a", "b", "c", "d"}

	got, err := DeleteAt(items, 1)
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "c", "d"}, got)

	got, err = DeleteAt(got, 2)
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "c"}, got)

	_, err = DeleteAt(got, 2)
	assert.ErrorIs(t, err, ErrIndexOutOfRange)

	_, err = DeleteAt([]string{}, 0)
	assert.ErrorIs(t, err, ErrIndexOutOfRange)
}

func TestFilterIndices(t *testing.T) {
	items := []string{"A", "B", "C"}

	got, err := FilterIndices(items, []int{1})
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "C"}, got)

	// indices refer to the original snapshot, so [0, 2] drops A and C
	got, err = FilterIndices(items, []int{0, 2})
	require.NoError(t, err)
	assert.Equal(t, []string{"B"}, got)

	// duplicates tolerated
	got, err = FilterIndices(items, []int{1, 1})
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "C"}, got)

	// empty removal is a no-op
	got, err = FilterIndices(items, nil)
	require.NoError(t, err)
	assert.Equal(t, items, got)
}

func TestFilterIndicesOutOfRange(t *testing.T) {
	items := []string{"A", "B", "C"}

	// one bad index fails the whole call, nothing is filtered
	_, err := FilterIndices(items, []int{1, 3})
	assert.ErrorIs(t, err, ErrIndexOutOfRange)
	_, err = FilterIndices(items, []int{-1})
	assert.ErrorIs(t, err, ErrIndexOutOfRange)
	assert.Equal(t, []string{"A", "B", "C"}, items)
}

func TestRemoveThenAppendSemantics(t *testing.T) {
	// the sample-work update path: filter by pre-update indices, then
	// append the newly uploaded URLs to what remains
	items := []string{"A", "B", "C"}

	kept, err := FilterIndices(items, []int{1})
	require.NoError(t, err)

	got, err := Append(kept, []string{"D"}, 0)
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "C", "D"}, got)
}
