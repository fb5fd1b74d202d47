package behaviorx_test

import (
	"strings"
	"testing"
)

func TestDOT(t *testing.T) {
	g := exampleGraph(t)
	dot := g.DOT()

	if !strings.HasPrefix(dot, "digraph behavior {") {
		t.Fatalf("unexpected DOT prefix %.40q", dot)
	}
	if !strings.Contains(dot, `"retract" -> "extend" [label="PlayExtend"];`) {
		t.Error("missing transition edge")
	}
	if !strings.Contains(dot, `"*" -> "retract" [label="gotoRetract", style=dashed];`) {
		t.Error("missing wildcard edge")
	}
	if !strings.Contains(dot, "(looping)") {
		t.Error("looping state not annotated")
	}
}
