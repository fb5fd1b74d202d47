package hkx

import "fmt"

// Ref is an object reference token of the form "#0052". Cross-references
// between hkobjects use these; NullRef stands for a missing reference.
type Ref = string

// NullRef is the null object reference.
const NullRef Ref = "null"

// rootIndex is the fixed index of the hkRootLevelContainer. Game-shipped
// behavior files start their object numbering here.
const rootIndex = 51

// allocator issues monotonically increasing object references, scoped to a
// single Document. The root container keeps rootIndex for itself; allocated
// objects start one past it.
type allocator struct {
	last int
}

func newAllocator() allocator {
	return allocator{last: rootIndex}
}

func (a *allocator) next() Ref {
	a.last++
	return formatRef(a.last)
}

func formatRef(index int) Ref {
	return fmt.Sprintf("#%04d", index)
}
