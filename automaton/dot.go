package automaton

import (
	"fmt"
	"io"
	"strings"
)

// WriteDOT writes a Graphviz DOT rendering of a to w.
//
// Terminal states are drawn as double circles and the initial state is pointed
// at by an invisible start node. Labels implementing fmt.Stringer are printed
// with String, others with Key.
func WriteDOT[L Label](w io.Writer, a *Automaton[L], name string) error {
	if name == "" {
		name = "automaton"
	}
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("digraph %q {\n", name))
	sb.WriteString("  rankdir=LR;\n")
	sb.WriteString("  node [shape=circle];\n")

	for _, s := range a.States() {
		shape := "circle"
		if s.Terminal {
			shape = "doublecircle"
		}
		sb.WriteString(fmt.Sprintf("  s%d [label=\"%d\", shape=%s];\n", s.ID, s.ID, shape))
		if s.Initial {
			sb.WriteString(fmt.Sprintf("  start%d [shape=point];\n", s.ID))
			sb.WriteString(fmt.Sprintf("  start%d -> s%d;\n", s.ID, s.ID))
		}
	}

	for _, t := range a.Transitions() {
		sb.WriteString(fmt.Sprintf("  s%d -> s%d [label=%q];\n", t.From, t.To, labelText(t.Label)))
	}
	sb.WriteString("}\n")

	_, err := io.WriteString(w, sb.String())

	return err
}

func labelText(l Label) string {
	if s, ok := l.(fmt.Stringer); ok {
		return s.String()
	}

	return l.Key()
}
