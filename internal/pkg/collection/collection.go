// Package collection implements the index-addressed update rules shared by
// every array-valued document field: portfolio hero images, sample works,
// nested sample-work media URLs and project media files.
//
// All operations work on an in-memory snapshot of the slice; the caller
// persists the whole parent document afterwards. Indices are positional,
// not stable identifiers: a delete compacts the slice, so clients holding
// previously fetched indices must refetch after any delete.
package collection

import "errors"

var (
	ErrCapacityExceeded = errors.New("collection capacity exceeded")
	ErrIndexOutOfRange  = errors.New("index out of range")
)

// Append adds items to the end of the slice. When maxLen > 0 the combined
// length may not exceed it; the check happens before anything is appended
// so a rejected append leaves the slice untouched. Callers that upload
// media must run this check (or Fits) before invoking the upload adapter,
// otherwise a rejected append orphans an already-uploaded file.
func Append[T any](items []T, toAdd []T, maxLen int) ([]T, error) {
	if maxLen > 0 && len(items)+len(toAdd) > maxLen {
		return nil, ErrCapacityExceeded
	}
	out := make([]T, 0, len(items)+len(toAdd))
	out = append(out, items...)
	out = append(out, toAdd...)
	return out, nil
}

// Fits reports whether n more items fit under maxLen (0 = unbounded).
func Fits[T any](items []T, n, maxLen int) bool {
	return maxLen <= 0 || len(items)+n <= maxLen
}

// ReplaceAt overwrites the slot at index i without shifting other
// elements. Fails with ErrIndexOutOfRange unless 0 <= i < len(items).
func ReplaceAt[T any](items []T, i int, v T) ([]T, error) {
	if i < 0 || i >= len(items) {
		return nil, ErrIndexOutOfRange
	}
	out := make([]T, len(items))
	copy(out, items)
	out[i] = v
	return out, nil
}

// DeleteAt removes the element at index i and compacts the slice: elements
// after i shift down by one, the sequence stays dense.
func DeleteAt[T any](items []T, i int) ([]T, error) {
	if i < 0 || i >= len(items) {
		return nil, ErrIndexOutOfRange
	}
	out := make([]T, 0, len(items)-1)
	out = append(out, items[:i]...)
	out = append(out, items[i+1:]...)
	return out, nil
}

// FilterIndices removes the elements whose indices appear in remove,
// validated in one pass against the original slice. Every index refers to
// the slice as it was when the caller fetched it, never to the partially
// filtered result, which is why removal is computed against a single
// snapshot. Duplicate indices are tolerated; any index outside
// [0, len(items)) fails the whole call with ErrIndexOutOfRange.
func FilterIndices[T any](items []T, remove []int) ([]T, error) {
	drop := make(map[int]struct{}, len(remove))
	for _, i := range remove {
		if i < 0 || i >= len(items) {
			return nil, ErrIndexOutOfRange
		}
		drop[i] = struct{}{}
	}
	out := make([]T, 0, len(items)-len(drop))
	for i, v := range items {
		if _, ok := drop[i]; ok {
			continue
		}
		out = append(out, v)
	}
	return out, nil
}
