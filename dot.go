package lexgen

import (
	"fmt"
	"io"
)

// WriteDOT renders a to w as a Graphviz DOT digraph, one node per
// state and one edge per transition, labeled with its range and (for
// accepting states) the accepted token's identifier. It exists purely
// for debugging a generated automaton; it is not part of the core
// contract and touches no other component's state.
func WriteDOT(w io.Writer, a Automaton, name string) error {
	if _, err := fmt.Fprintf(w, "digraph %s {\n\trankdir=LR;\n", name); err != nil {
		return err
	}
	for _, s := range a.States {
		shape := "circle"
		label := fmt.Sprintf("%d", s.Index)
		if s.Accept != nil {
			shape = "doublecircle"
			label = fmt.Sprintf("%d\\n%s", s.Index, s.Accept.Identifier)
		}
		if _, err := fmt.Fprintf(w, "\tn%d [shape=%s label=%q];\n", s.Index, shape, label); err != nil {
			return err
		}
	}
	if a.Start != nil {
		if _, err := fmt.Fprintf(w, "\t__start__ [shape=point];\n\t__start__ -> n%d;\n", a.Start.Index); err != nil {
			return err
		}
	}
	for _, s := range a.States {
		for _, t := range s.Transitions {
			if _, err := fmt.Fprintf(w, "\tn%d -> n%d [label=%q];\n", s.Index, t.Target.Index, rangeLabel(t.Begin, t.End)); err != nil {
				return err
			}
		}
	}
	_, err := fmt.Fprint(w, "}\n")
	return err
}

func rangeLabel(begin, end int) string {
	if end-begin == 1 {
		return dotChar(begin)
	}
	return fmt.Sprintf("%s-%s", dotChar(begin), dotChar(end-1))
}

func dotChar(c int) string {
	switch {
	case c == '\n':
		return `\n`
	case c == '\t':
		return `\t`
	case c >= 0x20 && c < 0x7F:
		return string(rune(c))
	default:
		return fmt.Sprintf("U+%04X", c)
	}
}
