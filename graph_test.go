package behaviorx_test

import (
	"errors"
	"testing"

	. "github.com/hkbtools/behaviorx"
)

func TestAddStateDuplicateName(t *testing.T) {
	g := New("test")
	if err := g.AddState("idle", WithAnimation(`animations\idle.hkx`)); err != nil {
		t.Fatal(err)
	}
	err := g.AddState("idle", WithAnimation(`animations\other.hkx`))
	if !errors.Is(err, ErrDuplicateState) {
		t.Errorf("expected ErrDuplicateState, got %v", err)
	}
	if len(g.States()) != 1 {
		t.Errorf("expected 1 state after rejected duplicate, got %d", len(g.States()))
	}
}

func TestAddStateConflictingAnimation(t *testing.T) {
	g := New("test")
	err := g.AddState("door", WithAnimation(`animations\open.hkx`), AsGamebryoSequence())
	if !errors.Is(err, ErrConflictingAnimation) {
		t.Errorf("expected ErrConflictingAnimation, got %v", err)
	}
}

func TestStatesRetrievable(t *testing.T) {
	g := New("test")
	names := []string{"open", "closed", "opening"}
	for _, name := range names {
		if err := g.AddState(name, WithAnimation(`animations\` + name + `.hkx`)); err != nil {
			t.Fatal(err)
		}
	}
	for _, name := range names {
		s, ok := g.State(name)
		if !ok {
			t.Fatalf("state %q not retrievable", name)
		}
		if s.Name != name {
			t.Errorf("state %q has name %q", name, s.Name)
		}
	}
	if _, ok := g.State("missing"); ok {
		t.Error("unregistered state reported as present")
	}
}

func TestConnectStatesUnknownState(t *testing.T) {
	g := New("test")
	if err := g.AddState("extend", WithAnimation(`animations\extend.hkx`)); err != nil {
		t.Fatal(err)
	}

	if err := g.ConnectStates("missing", "extend", "E"); !errors.Is(err, ErrUnknownState) {
		t.Errorf("expected ErrUnknownState for source, got %v", err)
	}
	if err := g.ConnectStates("extend", "missing", "E"); !errors.Is(err, ErrUnknownState) {
		t.Errorf("expected ErrUnknownState for target, got %v", err)
	}

	// Failed calls must not touch the transition set or the event table.
	if len(g.Transitions()) != 0 {
		t.Errorf("expected no transitions, got %d", len(g.Transitions()))
	}
	if len(g.Events()) != 0 {
		t.Errorf("expected no events, got %v", g.Events())
	}
}

func TestConnectStatesSelf(t *testing.T) {
	g := New("test")
	if err := g.AddState("spin", WithAnimation(`animations\spin.hkx`)); err != nil {
		t.Fatal(err)
	}
	if err := g.ConnectStates("spin", "spin", "E"); !errors.Is(err, ErrSelfTransition) {
		t.Errorf("expected ErrSelfTransition, got %v", err)
	}
}

func TestConnectStatesLastWriteWins(t *testing.T) {
	g := New("test")
	for _, name := range []string{"a", "b", "c"} {
		if err := g.AddState(name, WithAnimation(`animations\` + name + `.hkx`)); err != nil {
			t.Fatal(err)
		}
	}
	if err := g.ConnectStates("a", "b", "Go"); err != nil {
		t.Fatal(err)
	}
	if err := g.ConnectStates("a", "c", "Go"); err != nil {
		t.Fatal(err)
	}

	transitions := g.Transitions()
	if len(transitions) != 1 {
		t.Fatalf("expected 1 transition after replacement, got %d", len(transitions))
	}
	if transitions[0].To != "c" {
		t.Errorf("expected replaced target c, got %q", transitions[0].To)
	}
}

func TestAddWildcardUnknownState(t *testing.T) {
	g := New("test")
	if err := g.AddWildcard("missing", "gotoMissing"); !errors.Is(err, ErrUnknownState) {
		t.Errorf("expected ErrUnknownState, got %v", err)
	}
	if len(g.Wildcards()) != 0 {
		t.Errorf("expected no wildcards, got %d", len(g.Wildcards()))
	}
}

func TestAddClipTriggerOnSequenceState(t *testing.T) {
	g := New("test")
	if err := g.AddState("nifAnim", AsGamebryoSequence()); err != nil {
		t.Fatal(err)
	}
	err := g.AddClipTrigger("nifAnim", "SoundPlay", AtTime(0.5))
	if !errors.Is(err, ErrSequenceTrigger) {
		t.Errorf("expected ErrSequenceTrigger, got %v", err)
	}
}

func TestAddClipTriggerUnknownState(t *testing.T) {
	g := New("test")
	if err := g.AddClipTrigger("missing", "SoundPlay"); !errors.Is(err, ErrUnknownState) {
		t.Errorf("expected ErrUnknownState, got %v", err)
	}
}

func TestSetStartStateUnknown(t *testing.T) {
	g := New("test")
	if err := g.SetStartState("missing"); !errors.Is(err, ErrUnknownState) {
		t.Errorf("expected ErrUnknownState, got %v", err)
	}
}

func TestEventTableOrder(t *testing.T) {
	g := New("test")
	for _, name := range []string{"a", "b"} {
		if err := g.AddState(name,
			WithAnimation(`animations\`+name+`.hkx`),
			WithEnterNotify("entered_"+name),
		); err != nil {
			t.Fatal(err)
		}
	}
	if err := g.ConnectStates("a", "b", "Go"); err != nil {
		t.Fatal(err)
	}
	if err := g.ConnectStates("b", "a", "Back"); err != nil {
		t.Fatal(err)
	}
	if err := g.AddWildcard("a", "Reset"); err != nil {
		t.Fatal(err)
	}
	// Reuses of interned names must not mint new indices.
	if err := g.AddWildcard("b", "Go"); err != nil {
		t.Fatal(err)
	}
	if err := g.AddClipTrigger("a", "Halfway", AtTime(0.5)); err != nil {
		t.Fatal(err)
	}

	want := []string{"Go", "Back", "Reset", "entered_a", "entered_b", "Halfway"}
	got := g.Events()
	if len(got) != len(want) {
		t.Fatalf("expected events %v, got %v", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("expected events %v, got %v", want, got)
		}
	}
}
