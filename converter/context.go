package converter

// listKind distinguishes ordered from unordered list nesting.
type listKind int

const (
	listUnordered listKind = iota
	listOrdered
)

// Context carries per-subtree conversion state down the tree walk. It is
// passed by value: entering a nested structure derives a copy, so sibling
// subtrees never observe each other's state and nothing needs restoring
// when a handler returns, on any return path.
type Context struct {
	// BaseURL resolves relative image targets against the source document.
	BaseURL string
	// InPre marks preformatted content, where text keeps its raw whitespace.
	InPre bool
	// InTable marks table cell content. The table handler sets it but no
	// handler reads it yet; cell-scoped formatting rules would consult it.
	InTable bool

	lists []listKind
}

func newContext(baseURL string) Context {
	return Context{BaseURL: baseURL}
}

// pushList derives a context one list level deeper. The stack backing array
// is copied, never shared, so two nested lists under the same parent cannot
// append into each other's storage.
func (c Context) pushList(kind listKind) Context {
	stack := make([]listKind, len(c.lists), len(c.lists)+1)
	copy(stack, c.lists)
	c.lists = append(stack, kind)
	return c
}

// listDepth reports how many lists enclose the current position.
func (c Context) listDepth() int {
	return len(c.lists)
}

// withPre derives a context flagged as preformatted.
func (c Context) withPre() Context {
	c.InPre = true
	return c
}

// withTable derives a context flagged as table cell content.
func (c Context) withTable() Context {
	c.InTable = true
	return c
}
