package behaviorx

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Definition is the declarative form of a behavior graph, loadable from YAML
// or JSON. It mirrors the Graph API one to one; Graph() replays it through
// the same calls, so it inherits the same validation and ordering rules.
type Definition struct {
	Name        string                 `json:"name" yaml:"name"`
	Start       string                 `json:"start,omitempty" yaml:"start,omitempty"`
	States      []StateDefinition      `json:"states" yaml:"states"`
	Transitions []TransitionDefinition `json:"transitions,omitempty" yaml:"transitions,omitempty"`
	Wildcards   []WildcardDefinition   `json:"wildcards,omitempty" yaml:"wildcards,omitempty"`
	Triggers    []TriggerDefinition    `json:"triggers,omitempty" yaml:"triggers,omitempty"`
}

// StateDefinition declares one state.
type StateDefinition struct {
	Name        string   `json:"name" yaml:"name"`
	Animation   string   `json:"animation,omitempty" yaml:"animation,omitempty"`
	Looping     bool     `json:"looping,omitempty" yaml:"looping,omitempty"`
	Sequence    bool     `json:"sequence,omitempty" yaml:"sequence,omitempty"`
	EnterNotify []string `json:"enter_notify,omitempty" yaml:"enter_notify,omitempty"`
	ExitNotify  []string `json:"exit_notify,omitempty" yaml:"exit_notify,omitempty"`
}

// TransitionDefinition declares one event-labeled edge.
type TransitionDefinition struct {
	From  string `json:"from" yaml:"from"`
	To    string `json:"to" yaml:"to"`
	Event string `json:"event" yaml:"event"`
}

// WildcardDefinition declares one wildcard registration.
type WildcardDefinition struct {
	State string `json:"state" yaml:"state"`
	Event string `json:"event" yaml:"event"`
}

// TriggerDefinition declares one clip trigger.
type TriggerDefinition struct {
	State   string  `json:"state" yaml:"state"`
	Event   string  `json:"event" yaml:"event"`
	At      float64 `json:"at,omitempty" yaml:"at,omitempty"`
	FromEnd bool    `json:"from_end,omitempty" yaml:"from_end,omitempty"`
}

// LoadDefinition reads a definition file. The format follows the extension:
// .json is JSON, everything else is parsed as YAML.
func LoadDefinition(path string) (*Definition, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read definition %s: %w", path, err)
	}
	var def Definition
	if filepath.Ext(path) == ".json" {
		if err := json.Unmarshal(data, &def); err != nil {
			return nil, fmt.Errorf("json unmarshal %s: %w", path, err)
		}
	} else {
		if err := yaml.Unmarshal(data, &def); err != nil {
			return nil, fmt.Errorf("yaml unmarshal %s: %w", path, err)
		}
	}
	return &def, nil
}

// Validate checks required fields and that transitions, wildcards, triggers
// and the start override only reference declared states.
func (d *Definition) Validate() error {
	if len(d.States) == 0 {
		return errors.New("definition has no states")
	}
	declared := make(map[string]bool, len(d.States))
	for i, s := range d.States {
		if s.Name == "" {
			return fmt.Errorf("state %d: name is required", i)
		}
		if declared[s.Name] {
			return fmt.Errorf("state %q declared twice", s.Name)
		}
		declared[s.Name] = true
	}
	if d.Start != "" && !declared[d.Start] {
		return fmt.Errorf("start state %q not declared", d.Start)
	}
	for _, t := range d.Transitions {
		if !declared[t.From] {
			return fmt.Errorf("transition %q -> %q: state %q not declared", t.From, t.To, t.From)
		}
		if !declared[t.To] {
			return fmt.Errorf("transition %q -> %q: state %q not declared", t.From, t.To, t.To)
		}
		if t.Event == "" {
			return fmt.Errorf("transition %q -> %q: event is required", t.From, t.To)
		}
	}
	for _, w := range d.Wildcards {
		if !declared[w.State] {
			return fmt.Errorf("wildcard %q: state %q not declared", w.Event, w.State)
		}
	}
	for _, t := range d.Triggers {
		if !declared[t.State] {
			return fmt.Errorf("trigger %q: state %q not declared", t.Event, t.State)
		}
	}
	return nil
}

// Graph validates the definition and replays it into a Graph.
func (d *Definition) Graph(opts ...GraphOption) (*Graph, error) {
	if err := d.Validate(); err != nil {
		return nil, err
	}
	g := New(d.Name, opts...)
	for _, s := range d.States {
		var stateOpts []StateOption
		if s.Animation != "" {
			stateOpts = append(stateOpts, WithAnimation(s.Animation))
		}
		if s.Looping {
			stateOpts = append(stateOpts, Looping())
		}
		if s.Sequence {
			stateOpts = append(stateOpts, AsGamebryoSequence())
		}
		if len(s.EnterNotify) > 0 {
			stateOpts = append(stateOpts, WithEnterNotify(s.EnterNotify...))
		}
		if len(s.ExitNotify) > 0 {
			stateOpts = append(stateOpts, WithExitNotify(s.ExitNotify...))
		}
		if err := g.AddState(s.Name, stateOpts...); err != nil {
			return nil, err
		}
	}
	for _, t := range d.Transitions {
		if err := g.ConnectStates(t.From, t.To, t.Event); err != nil {
			return nil, err
		}
	}
	for _, w := range d.Wildcards {
		if err := g.AddWildcard(w.State, w.Event); err != nil {
			return nil, err
		}
	}
	for _, t := range d.Triggers {
		var triggerOpts []TriggerOption
		triggerOpts = append(triggerOpts, AtTime(t.At))
		if t.FromEnd {
			triggerOpts = append(triggerOpts, RelativeToEndOfClip())
		}
		if err := g.AddClipTrigger(t.State, t.Event, triggerOpts...); err != nil {
			return nil, err
		}
	}
	if d.Start != "" {
		if err := g.SetStartState(d.Start); err != nil {
			return nil, err
		}
	}
	return g, nil
}
