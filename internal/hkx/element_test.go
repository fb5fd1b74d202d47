package hkx

import (
	"bytes"
	"testing"
)

func TestAllocator(t *testing.T) {
	a := newAllocator()
	refs := []Ref{a.next(), a.next(), a.next()}
	want := []Ref{"#0052", "#0053", "#0054"}
	for i := range want {
		if refs[i] != want[i] {
			t.Errorf("allocation %d: expected %s, got %s", i, want[i], refs[i])
		}
	}
}

func TestStringTableIntern(t *testing.T) {
	st := NewStringTable()
	if i := st.Intern("PlayExtend"); i != 0 {
		t.Errorf("first name: expected index 0, got %d", i)
	}
	if i := st.Intern("PlayRetract"); i != 1 {
		t.Errorf("second name: expected index 1, got %d", i)
	}
	if i := st.Intern("PlayExtend"); i != 0 {
		t.Errorf("repeat intern minted a new index: %d", i)
	}
	if st.Len() != 2 {
		t.Errorf("expected 2 interned names, got %d", st.Len())
	}
	names := st.Names()
	if names[0] != "PlayExtend" || names[1] != "PlayRetract" {
		t.Errorf("unexpected iteration order %v", names)
	}
	if _, ok := st.Index("missing"); ok {
		t.Error("uninterned name reported as present")
	}
}

func TestElementRender(t *testing.T) {
	root := newElement("hkpackfile")
	root.Set("classversion", "8")
	sec := root.Add(newElement("hksection"))
	sec.Set("name", "__data__")
	obj := sec.Add(newElement("hkobject"))
	obj.Set("name", "#0052")
	obj.Comment("memSizeAndFlags SERIALIZE_IGNORED")
	param(obj, "animationName", `animations\a&b.hkx`)
	arrayParam(obj, "variableNames", 0)

	var buf bytes.Buffer
	root.render(&buf, 0)

	want := "<hkpackfile classversion=\"8\">\n" +
		"\t<hksection name=\"__data__\">\n" +
		"\t\t<hkobject name=\"#0052\">\n" +
		"\t\t\t<!-- memSizeAndFlags SERIALIZE_IGNORED -->\n" +
		"\t\t\t<hkparam name=\"animationName\">animations\\a&amp;b.hkx</hkparam>\n" +
		"\t\t\t<hkparam name=\"variableNames\" numelements=\"0\"></hkparam>\n" +
		"\t\t</hkobject>\n" +
		"\t</hksection>\n" +
		"</hkpackfile>"
	if got := buf.String(); got != want {
		t.Errorf("render mismatch:\ngot:\n%s\nwant:\n%s", got, want)
	}
}

func TestElementRenderPreservesEmbeddedWhitespace(t *testing.T) {
	p := newElement("hkparam")
	p.Set("name", "states")
	p.Set("numelements", "2")
	p.Text = "\n\t\t\t\t#0058 #0061\n\t\t\t"

	var buf bytes.Buffer
	p.render(&buf, 3)

	want := "<hkparam name=\"states\" numelements=\"2\">\n\t\t\t\t#0058 #0061\n\t\t\t</hkparam>"
	if got := buf.String(); got != want {
		t.Errorf("render mismatch:\ngot:\n%q\nwant:\n%q", got, want)
	}
}

func TestEscape(t *testing.T) {
	if got := escape(`a<b>&"c`, false); got != `a&lt;b&gt;&amp;"c` {
		t.Errorf("text escape: got %q", got)
	}
	if got := escape(`a"b`, true); got != `a&quot;b` {
		t.Errorf("attr escape: got %q", got)
	}
	if got := escape("få", false); got != "f&#229;" {
		t.Errorf("non-ascii escape: got %q", got)
	}
}
