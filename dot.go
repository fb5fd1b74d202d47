package behaviorx

import (
	"bytes"
	"fmt"
)

// DOT generates Graphviz DOT source for the graph: one box per state,
// event-labeled edges for transitions, and dashed edges from a synthetic
// "any" node for wildcards. Intended for eyeballing a behavior before
// exporting it.
func (g *Graph) DOT() string {
	var buf bytes.Buffer
	buf.WriteString(`digraph behavior {
  rankdir=LR;
  node [shape=box, fontsize=10, style=rounded];
  edge [fontsize=9];
`)

	start := g.start
	if start == "" && len(g.states) > 0 {
		start = g.states[0].Name
	}
	for _, s := range g.states {
		label := s.Name
		if _, seq := s.Animation.(SequenceAnimation); seq {
			label += "\\n(sequence)"
		} else if clip, ok := s.Animation.(ClipAnimation); ok && clip.Looping {
			label += "\\n(looping)"
		}
		if s.Name == start {
			fmt.Fprintf(&buf, "  \"%s\" [label=\"%s\", penwidth=2];\n", s.Name, label)
		} else {
			fmt.Fprintf(&buf, "  \"%s\" [label=\"%s\"];\n", s.Name, label)
		}
	}

	for _, t := range g.transitions {
		fmt.Fprintf(&buf, "  \"%s\" -> \"%s\" [label=\"%s\"];\n", t.From, t.To, t.Event)
	}

	if len(g.wildcards) > 0 {
		buf.WriteString("  \"*\" [shape=circle];\n")
		for _, w := range g.wildcards {
			fmt.Fprintf(&buf, "  \"*\" -> \"%s\" [label=\"%s\", style=dashed];\n", w.State, w.Event)
		}
	}

	buf.WriteString("}\n")
	return buf.String()
}
