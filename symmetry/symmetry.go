// Package symmetry removes mirror-equivalent wheel labelings.
//
// A wheel labeling is indexed hub first (slot 0), then rim vertices 1..n.
// With the hub and rim vertex 1 fixed, the remaining symmetry of W_n is the
// reflection that fixes vertex 1 and maps rim vertex k to n+2−k. Two
// labelings related by that reflection are complementary; Reduce keeps the
// first of each such pair.
package symmetry

import (
	"errors"
	"fmt"
)

// MinRim is the smallest rim length a wheel can have.
const MinRim = 3

var (
	// ErrShortLabeling is returned when a labeling has fewer than n+1 slots.
	ErrShortLabeling = errors.New("symmetry: labeling shorter than n+1")

	// ErrRimTooShort is returned for n < MinRim.
	ErrRimTooShort = errors.New("symmetry: rim length too small")
)

// mirrorOf is the rim position k is reflected to.
func mirrorOf(k, n int) int { return n + 2 - k }

// half is ceil(n/2), the last rim position Complementary inspects.
func half(n int) int { return (n + 1) / 2 }

// Complementary reports whether a and b mirror each other on W_n: for every
// k in 2..ceil(n/2), a[k] == b[n+2−k] and b[k] == a[n+2−k].
// Both slices must have at least n+1 entries.
func Complementary(a, b []int, n int) bool {
	for k := 2; k <= half(n); k++ {
		m := mirrorOf(k, n)
		if a[k] != b[m] || b[k] != a[m] {
			return false
		}
	}

	return true
}

// Mirror returns the reflection of a: slots 0 and 1 are kept, rim position
// k takes the label of position n+2−k.
func Mirror(a []int, n int) ([]int, error) {
	if err := check(a, n); err != nil {
		return nil, fmt.Errorf("Mirror: %w", err)
	}
	out := make([]int, len(a))
	copy(out, a)
	for k := 2; k <= n; k++ {
		out[k] = a[mirrorOf(k, n)]
	}

	return out, nil
}

// Reduce scans labelings once forward. Each labeling not yet marked marks
// every later complementary one as a duplicate. It returns the unmarked
// labelings in their original order together with the duplicate flags.
// Reduce is idempotent: reducing its own output changes nothing.
//
// Complexity: O(k²·n) for k labelings.
func Reduce(labelings [][]int, n int) (distinct [][]int, duplicate []bool, err error) {
	if n < MinRim {
		return nil, nil, fmt.Errorf("Reduce: n=%d < %d: %w", n, MinRim, ErrRimTooShort)
	}
	for i, a := range labelings {
		if err = check(a, n); err != nil {
			return nil, nil, fmt.Errorf("Reduce: labeling #%d: %w", i, err)
		}
	}

	duplicate = make([]bool, len(labelings))
	for i, a := range labelings {
		if duplicate[i] {
			continue
		}
		for j := i + 1; j < len(labelings); j++ {
			if !duplicate[j] && Complementary(a, labelings[j], n) {
				duplicate[j] = true
			}
		}
	}

	distinct = make([][]int, 0, len(labelings))
	for i, a := range labelings {
		if !duplicate[i] {
			distinct = append(distinct, a)
		}
	}

	return distinct, duplicate, nil
}

func check(a []int, n int) error {
	if len(a) < n+1 {
		return fmt.Errorf("len=%d, n=%d: %w", len(a), n, ErrShortLabeling)
	}

	return nil
}
