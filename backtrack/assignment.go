package backtrack

// Assignment is the labeling state: one label per slot, Unset when free.
type Assignment []int

// NewAssignment returns n slots, all Unset.
func NewAssignment(n int) Assignment {
	a := make(Assignment, n)
	a.Reset()

	return a
}

// Reset sets every slot to Unset.
func (a Assignment) Reset() {
	for i := range a {
		a[i] = Unset
	}
}

// Complete reports whether no slot is Unset.
func (a Assignment) Complete() bool {
	for _, v := range a {
		if v == Unset {
			return false
		}
	}

	return true
}

// Contains reports whether some slot holds v.
func (a Assignment) Contains(v int) bool {
	for _, x := range a {
		if x == v {
			return true
		}
	}

	return false
}

// Clone returns an independent copy as a plain slice.
func (a Assignment) Clone() []int {
	out := make([]int, len(a))
	copy(out, a)

	return out
}
