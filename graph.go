package behaviorx

import (
	"fmt"
	"log/slog"
)

// defaultGraphName names the state machine and behavior graph records when
// the caller does not supply one.
const defaultGraphName = "defaultNameBehavior"

// Graph is a mutable behavior graph: named states, event-labeled transitions
// between them, and wildcard (global) transitions valid from every state.
// A Graph only grows; there are no removal operations. It is not safe for
// concurrent mutation.
//
// The graph holds no object identifiers. Each Export builds a fresh document
// and allocates identifiers there, so repeated exports of an unmodified
// graph are byte-identical.
type Graph struct {
	name   string
	logger *slog.Logger

	states     []*State
	stateIndex map[string]int // name -> position in states, doubles as state ID

	transitions []*Transition
	wildcards   []Wildcard
	triggers    []*ClipTrigger

	start string // overrides the first-added default when set
}

// New creates an empty behavior graph. name becomes the state machine's name
// in the exported file.
func New(name string, opts ...GraphOption) *Graph {
	if name == "" {
		name = defaultGraphName
	}
	g := &Graph{
		name:       name,
		logger:     slog.Default(),
		stateIndex: make(map[string]int),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// AddState registers a new state. The name must be unique. A state needs an
// animation source before export: either WithAnimation or AsGamebryoSequence,
// not both. A state with neither is accepted here and rejected at export,
// since definitions may fill the source in later.
func (g *Graph) AddState(name string, opts ...StateOption) error {
	if name == "" {
		return fmt.Errorf("state name is required")
	}
	if _, ok := g.stateIndex[name]; ok {
		return fmt.Errorf("%w: %q", ErrDuplicateState, name)
	}
	var cfg stateConfig
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.sequence && cfg.animationPath != "" {
		return fmt.Errorf("%w: %q", ErrConflictingAnimation, name)
	}
	s := &State{
		Name:        name,
		EnterNotify: cfg.enterNotify,
		ExitNotify:  cfg.exitNotify,
	}
	switch {
	case cfg.sequence:
		s.Animation = SequenceAnimation{}
	case cfg.animationPath != "":
		s.Animation = ClipAnimation{Path: cfg.animationPath, Looping: cfg.looping}
	}
	g.stateIndex[name] = len(g.states)
	g.states = append(g.states, s)
	g.logger.Debug("added state", "state", name, "stateId", g.stateIndex[name])
	return nil
}

// ConnectStates records a transition from one state to another on event.
// Both states must already be registered, and a state cannot transition to
// itself. If a transition for (from, event) already exists, its target is
// replaced: last write wins, and the transition keeps its original position
// in registration order.
func (g *Graph) ConnectStates(from, to, event string) error {
	if event == "" {
		return fmt.Errorf("event name is required")
	}
	if _, ok := g.stateIndex[from]; !ok {
		return fmt.Errorf("%w: %q", ErrUnknownState, from)
	}
	if _, ok := g.stateIndex[to]; !ok {
		return fmt.Errorf("%w: %q", ErrUnknownState, to)
	}
	if from == to {
		return fmt.Errorf("%w: %q", ErrSelfTransition, from)
	}
	for _, t := range g.transitions {
		if t.From == from && t.Event == event {
			g.logger.Debug("replaced transition target", "from", from, "event", event, "old", t.To, "new", to)
			t.To = to
			return nil
		}
	}
	g.transitions = append(g.transitions, &Transition{From: from, To: to, Event: event})
	g.logger.Debug("added transition", "from", from, "to", to, "event", event)
	return nil
}

// AddWildcard records that event, received in any state, transitions to
// state. All wildcards share one global transition table in the exported
// document, one entry per registration in registration order.
func (g *Graph) AddWildcard(state, event string) error {
	if event == "" {
		return fmt.Errorf("event name is required")
	}
	if _, ok := g.stateIndex[state]; !ok {
		return fmt.Errorf("%w: %q", ErrUnknownState, state)
	}
	g.wildcards = append(g.wildcards, Wildcard{State: state, Event: event})
	g.logger.Debug("added wildcard", "state", state, "event", event)
	return nil
}

// AddClipTrigger fires event at a point during the clip played by state.
// Gamebryo sequence states are rejected; their triggers are authored as nif
// text keys.
func (g *Graph) AddClipTrigger(state, event string, opts ...TriggerOption) error {
	if event == "" {
		return fmt.Errorf("event name is required")
	}
	i, ok := g.stateIndex[state]
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownState, state)
	}
	if _, seq := g.states[i].Animation.(SequenceAnimation); seq {
		return fmt.Errorf("%w: %q", ErrSequenceTrigger, state)
	}
	tr := &ClipTrigger{State: state, Event: event}
	for _, opt := range opts {
		opt(tr)
	}
	g.triggers = append(g.triggers, tr)
	g.logger.Debug("added clip trigger", "state", state, "event", event, "localTime", tr.LocalTime)
	return nil
}

// SetStartState overrides the default start state (the first state added).
func (g *Graph) SetStartState(name string) error {
	if _, ok := g.stateIndex[name]; !ok {
		return fmt.Errorf("%w: %q", ErrUnknownState, name)
	}
	g.start = name
	return nil
}

// State returns the state registered under name.
func (g *Graph) State(name string) (*State, bool) {
	i, ok := g.stateIndex[name]
	if !ok {
		return nil, false
	}
	return g.states[i], true
}

// States returns the state names in insertion order.
func (g *Graph) States() []string {
	names := make([]string, len(g.states))
	for i, s := range g.states {
		names[i] = s.Name
	}
	return names
}

// Transitions returns the transitions in registration order.
func (g *Graph) Transitions() []Transition {
	out := make([]Transition, len(g.transitions))
	for i, t := range g.transitions {
		out[i] = *t
	}
	return out
}

// Wildcards returns the wildcard registrations in order.
func (g *Graph) Wildcards() []Wildcard {
	return append([]Wildcard(nil), g.wildcards...)
}

// Events returns the event names in the order the exported event table will
// list them: transition events first, then wildcard events, then enter/exit
// notify events per state, then clip trigger events, each in registration
// order and deduplicated.
func (g *Graph) Events() []string {
	seen := make(map[string]bool)
	var names []string
	add := func(name string) {
		if !seen[name] {
			seen[name] = true
			names = append(names, name)
		}
	}
	for _, t := range g.transitions {
		add(t.Event)
	}
	for _, w := range g.wildcards {
		add(w.Event)
	}
	for _, s := range g.states {
		for _, e := range s.EnterNotify {
			add(e)
		}
		for _, e := range s.ExitNotify {
			add(e)
		}
	}
	for _, t := range g.triggers {
		add(t.Event)
	}
	return names
}
