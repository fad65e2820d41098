package verify

import "strings"

// Context is the recorder's breadcrumb path (spec.md §4.7: "Each node
// extends the recorder's context breadcrumb with a fixed label before
// emitting predicates"). It is copied by value into every child node so
// that a label one branch appends never leaks into a sibling branch.
type Context struct {
	segments []string
}

// RootContext starts a breadcrumb at label.
func RootContext(label string) Context {
	return Context{segments: []string{label}}
}

// Child returns a copy of c with label appended.
func (c Context) Child(label string) Context {
	segs := make([]string, len(c.segments), len(c.segments)+1)
	copy(segs, c.segments)
	return Context{segments: append(segs, label)}
}

func (c Context) String() string {
	return strings.Join(c.segments, " / ")
}
