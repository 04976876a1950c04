package diag

import "sort"

// Bag accumulates diagnostics across one or more passes over the same
// file set. It is not safe for concurrent writes; pipeline stages collect
// into their own Bag and merge.
type Bag struct {
	items []*Diagnostic
}

// NewBag returns an empty Bag.
func NewBag() *Bag { return &Bag{} }

// Add appends d to the bag. A nil d is ignored so callers can write
// `bag.Add(maybeDiagnostic)` without a guard.
func (b *Bag) Add(d *Diagnostic) {
	if d == nil {
		return
	}
	b.items = append(b.items, d)
}

// Extend appends every diagnostic in other to b.
func (b *Bag) Extend(other []*Diagnostic) {
	for _, d := range other {
		b.Add(d)
	}
}

// Merge folds the contents of other into b, leaving other untouched.
func (b *Bag) Merge(other *Bag) {
	if other == nil {
		return
	}
	b.Extend(other.items)
}

// Len returns the number of diagnostics in the bag.
func (b *Bag) Len() int { return len(b.items) }

// HasErrors reports whether any diagnostic in the bag is error severity.
func (b *Bag) HasErrors() bool {
	for _, d := range b.items {
		if d.Severity.Fatal() {
			return true
		}
	}
	return false
}

// All returns the bag's diagnostics sorted by primary span offset, stable
// on ties so diagnostics emitted at the same position keep emission order.
func (b *Bag) All() []*Diagnostic {
	out := make([]*Diagnostic, len(b.items))
	copy(out, b.items)
	sort.SliceStable(out, func(i, j int) bool {
		si, sj := out[i].PrimarySpan(), out[j].PrimarySpan()
		if si.File != sj.File {
			return si.File < sj.File
		}
		return si.Lo < sj.Lo
	})
	return out
}

// CountBySeverity tallies diagnostics of each severity.
func (b *Bag) CountBySeverity() map[Severity]int {
	counts := make(map[Severity]int)
	for _, d := range b.items {
		counts[d.Severity]++
	}
	return counts
}
