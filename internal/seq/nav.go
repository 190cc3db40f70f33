package seq

// Neighbors returns the navigation projections immediately before and after
// position i in the flattened sequence, or nil at the boundaries. Pure index
// arithmetic: the sequence already encodes canonical order, so crossing a
// chapter or book boundary needs no special casing.
func Neighbors(refs []VerseRef, i int) (prev, next *RefID) {
	if i > 0 && i < len(refs) {
		id := refs[i-1].ID()
		prev = &id
	}
	if i >= 0 && i < len(refs)-1 {
		id := refs[i+1].ID()
		next = &id
	}
	return prev, next
}
