package behaviorx

import (
	"fmt"
	"io"

	"github.com/hkbtools/behaviorx/internal/hkx"
)

// Export builds the behavior document and writes it to path, replacing any
// existing file. The document is rendered fully in memory first; if the
// build fails, an existing file at path is left untouched.
func (g *Graph) Export(path string) error {
	doc, err := g.buildDocument()
	if err != nil {
		return err
	}
	if err := doc.WriteFile(path); err != nil {
		return err
	}
	g.logger.Info("exported behavior", "path", path, "states", len(g.states), "events", doc.Events.Len())
	return nil
}

// WriteTo builds the behavior document and writes it to w.
func (g *Graph) WriteTo(w io.Writer) (int64, error) {
	doc, err := g.buildDocument()
	if err != nil {
		return 0, err
	}
	return doc.WriteTo(w)
}

// buildDocument runs the export pipeline: validate animation sources, intern
// every event name in table order, then emit records in the fixed document
// order the engine's own files use.
func (g *Graph) buildDocument() (*hkx.Document, error) {
	for _, s := range g.states {
		if s.Animation == nil {
			return nil, fmt.Errorf("%w: %q", ErrNoAnimation, s.Name)
		}
	}

	doc := hkx.NewDocument()
	for _, name := range g.Events() {
		doc.Events.Intern(name)
	}

	stringData := doc.AddBehaviorGraphStringData()
	valueSet := doc.AddVariableValueSet()
	graphData := doc.AddBehaviorGraphData(stringData, valueSet)
	blend := doc.AddBlendingTransitionEffect("ZeroDuration")

	stateRefs := make([]hkx.Ref, 0, len(g.states))
	for i, s := range g.states {
		var entries []hkx.TransitionEntry
		for _, t := range g.transitions {
			if t.From != s.Name {
				continue
			}
			entries = append(entries, hkx.TransitionEntry{
				EventID:   doc.Events.Intern(t.Event),
				ToStateID: g.stateIndex[t.To],
				Effect:    blend,
			})
		}
		transitions := doc.AddTransitionArray(entries)

		triggers := hkx.NullRef
		var rows []hkx.Trigger
		for _, t := range g.triggers {
			if t.State != s.Name {
				continue
			}
			rows = append(rows, hkx.Trigger{
				LocalTime:           t.LocalTime,
				EventID:             doc.Events.Intern(t.Event),
				RelativeToEndOfClip: t.RelativeToEndOfClip,
			})
		}
		if len(rows) > 0 {
			triggers = doc.AddClipTriggerArray(rows)
		}

		var generator hkx.Ref
		switch a := s.Animation.(type) {
		case ClipAnimation:
			generator = doc.AddClipGenerator(s.Name, a.Path, a.Looping, triggers)
		case SequenceAnimation:
			generator = doc.AddGamebryoSequenceGenerator(s.Name)
		}

		enterNotify := g.notifyArray(doc, s.EnterNotify)
		exitNotify := g.notifyArray(doc, s.ExitNotify)

		stateRefs = append(stateRefs, doc.AddStateInfo(s.Name, i, generator, transitions, enterNotify, exitNotify))
	}

	wildcards := hkx.NullRef
	if len(g.wildcards) > 0 {
		entries := make([]hkx.TransitionEntry, 0, len(g.wildcards))
		for _, w := range g.wildcards {
			entries = append(entries, hkx.TransitionEntry{
				EventID:   doc.Events.Intern(w.Event),
				ToStateID: g.stateIndex[w.State],
				Effect:    blend,
				Wildcard:  true,
			})
		}
		wildcards = doc.AddTransitionArray(entries)
	}

	startID := 0
	if g.start != "" {
		startID = g.stateIndex[g.start]
	}
	machine := doc.AddStateMachine(g.name, startID, stateRefs, wildcards)
	graph := doc.AddBehaviorGraph(g.name, machine, graphData)
	doc.AddRootContainer(graph)
	return doc, nil
}

func (g *Graph) notifyArray(doc *hkx.Document, events []string) hkx.Ref {
	if len(events) == 0 {
		return hkx.NullRef
	}
	ids := make([]int, len(events))
	for i, e := range events {
		ids[i] = doc.Events.Intern(e)
	}
	return doc.AddEventPropertyArray(ids)
}
