package hkx

// StringTable is a deduplicated, insertion-ordered name registry. The event
// and variable name tables of a behavior file are StringTables; every
// transition and wildcard refers to its event by the interned index.
type StringTable struct {
	names []string
	index map[string]int
}

func NewStringTable() *StringTable {
	return &StringTable{index: make(map[string]int)}
}

// Intern returns the index for name, appending it on first sight. The same
// name always maps to the same index within one table.
func (t *StringTable) Intern(name string) int {
	if i, ok := t.index[name]; ok {
		return i
	}
	i := len(t.names)
	t.names = append(t.names, name)
	t.index[name] = i
	return i
}

// Index reports the index assigned to name, if any.
func (t *StringTable) Index(name string) (int, bool) {
	i, ok := t.index[name]
	return i, ok
}

// Names returns the interned names in first-seen order.
func (t *StringTable) Names() []string {
	return t.names
}

func (t *StringTable) Len() int {
	return len(t.names)
}
