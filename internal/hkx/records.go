package hkx

import (
	"fmt"
	"strconv"
	"strings"
)

// TransitionEntry is one row of an hkbStateMachineTransitionInfoArray.
type TransitionEntry struct {
	EventID   int
	ToStateID int
	Effect    Ref
	Wildcard  bool
}

// Trigger is one row of an hkbClipTriggerArray.
type Trigger struct {
	LocalTime           float64
	EventID             int
	RelativeToEndOfClip bool
}

func param(parent *Element, name, text string) *Element {
	p := parent.Add(newElement("hkparam"))
	p.Set("name", name)
	p.Text = text
	return p
}

func arrayParam(parent *Element, name string, n int) *Element {
	p := parent.Add(newElement("hkparam"))
	p.Set("name", name)
	p.Set("numelements", strconv.Itoa(n))
	return p
}

// real renders a float the way the engine's tooling does.
func real(v float64) string {
	return fmt.Sprintf("%.6f", v)
}

func boolText(v bool) string {
	if v {
		return "true"
	}
	return "false"
}

// refCounted adds the two comment placeholders every reference-counted
// hkobject starts with.
func refCounted(obj *Element) {
	obj.Comment("memSizeAndFlags SERIALIZE_IGNORED")
	obj.Comment("referenceCount SERIALIZE_IGNORED")
}

// bindable adds the variable binding preamble shared by generator and
// transition-effect nodes.
func bindable(obj *Element) {
	param(obj, "variableBindingSet", NullRef)
	obj.Comment("cachedBindables SERIALIZE_IGNORED")
	obj.Comment("areBindablesCached SERIALIZE_IGNORED")
}

// nodeHeader adds the userData/name pair plus the skipped node bookkeeping
// fields that follow them.
func nodeHeader(obj *Element, name string) {
	param(obj, "userData", "0")
	param(obj, "name", name)
	obj.Comment("id SERIALIZE_IGNORED")
	obj.Comment("cloneState SERIALIZE_IGNORED")
	obj.Comment("padNode SERIALIZE_IGNORED")
}

// AddBehaviorGraphStringData emits the shared name tables. Event names come
// from the document's interned table; attribute, variable and character
// property names are never populated by this builder.
func (d *Document) AddBehaviorGraphStringData() Ref {
	obj, ref := d.addObject("hkbBehaviorGraphStringData", "0xc713064e")
	refCounted(obj)
	names := d.Events.Names()
	events := arrayParam(obj, "eventNames", len(names))
	for _, name := range names {
		s := events.Add(newElement("hkcstring"))
		s.Text = name
	}
	arrayParam(obj, "attributeNames", 0)
	arrayParam(obj, "variableNames", 0)
	arrayParam(obj, "characterPropertyNames", 0)
	return ref
}

// AddVariableValueSet emits the (empty) variable value storage.
func (d *Document) AddVariableValueSet() Ref {
	obj, ref := d.addObject("hkbVariableValueSet", "0x27812d8d")
	refCounted(obj)
	arrayParam(obj, "wordVariableValues", 0)
	arrayParam(obj, "quadVariableValues", 0)
	arrayParam(obj, "variantVariableValues", 0)
	return ref
}

// AddBehaviorGraphData emits the graph data block: one eventInfos row per
// interned event, plus references to the value set and string data.
func (d *Document) AddBehaviorGraphData(stringData, valueSet Ref) Ref {
	obj, ref := d.addObject("hkbBehaviorGraphData", "0x95aca5d")
	refCounted(obj)
	arrayParam(obj, "attributeDefaults", 0)
	arrayParam(obj, "variableInfos", 0)
	arrayParam(obj, "characterPropertyInfos", 0)
	infos := arrayParam(obj, "eventInfos", d.Events.Len())
	for range d.Events.Names() {
		row := infos.Add(newElement("hkobject"))
		param(row, "flags", "0")
	}
	arrayParam(obj, "wordMinVariableValues", 0)
	arrayParam(obj, "wordMaxVariableValues", 0)
	param(obj, "variableInitialValues", valueSet)
	param(obj, "stringData", stringData)
	return ref
}

// AddBlendingTransitionEffect emits the zero-duration blend every transition
// in the file points at.
func (d *Document) AddBlendingTransitionEffect(name string) Ref {
	obj, ref := d.addObject("hkbBlendingTransitionEffect", "0xfd8584fe")
	refCounted(obj)
	param(obj, "variableBindingSet", NullRef)
	nodeHeader(obj, name)
	param(obj, "selfTransitionMode", "SELF_TRANSITION_MODE_CONTINUE_IF_CYCLIC_BLEND_IF_ACYCLIC")
	param(obj, "eventMode", "EVENT_MODE_DEFAULT")
	obj.Comment("defaultEventMode SERIALIZE_IGNORED")
	param(obj, "duration", real(0))
	param(obj, "toGeneratorStartTimeFraction", real(0))
	param(obj, "flags", "0")
	param(obj, "endMode", "END_MODE_NONE")
	param(obj, "blendCurve", "BLEND_CURVE_SMOOTH")
	obj.Comment("fromGenerator SERIALIZE_IGNORED")
	obj.Comment("toGenerator SERIALIZE_IGNORED")
	obj.Comment("characterPoseAtBeginningOfTransition SERIALIZE_IGNORED")
	obj.Comment("timeRemaining SERIALIZE_IGNORED")
	obj.Comment("timeInTransition SERIALIZE_IGNORED")
	obj.Comment("applySelfTransition SERIALIZE_IGNORED")
	obj.Comment("initializeCharacterPose SERIALIZE_IGNORED")
	return ref
}

// AddTransitionArray emits a transition info array. The same record class
// backs both per-state transitions and the state machine's wildcard table;
// wildcard rows carry the local-wildcard flag.
func (d *Document) AddTransitionArray(entries []TransitionEntry) Ref {
	obj, ref := d.addObject("hkbStateMachineTransitionInfoArray", "0xe397b11e")
	refCounted(obj)
	transitions := arrayParam(obj, "transitions", len(entries))
	for _, entry := range entries {
		row := transitions.Add(newElement("hkobject"))
		interval := param(row, "triggerInterval", "")
		iv := interval.Add(newElement("hkobject"))
		param(iv, "enterEventId", "-1")
		param(iv, "exitEventId", "-1")
		param(iv, "enterTime", real(0))
		param(iv, "exitTime", real(0))
		param(row, "transition", entry.Effect)
		param(row, "condition", NullRef)
		param(row, "eventId", strconv.Itoa(entry.EventID))
		param(row, "toStateId", strconv.Itoa(entry.ToStateID))
		param(row, "fromNestedStateId", "0")
		param(row, "toNestedStateId", "0")
		param(row, "priority", "0")
		if entry.Wildcard {
			param(row, "flags", "FLAG_IS_LOCAL_WILDCARD|FLAG_DISABLE_CONDITION")
		} else {
			param(row, "flags", "FLAG_DISABLE_CONDITION")
		}
	}
	return ref
}

// AddEventPropertyArray emits an enter/exit notify event list.
func (d *Document) AddEventPropertyArray(eventIDs []int) Ref {
	obj, ref := d.addObject("hkbStateMachineEventPropertyArray", "0xb07b4388")
	refCounted(obj)
	events := arrayParam(obj, "events", len(eventIDs))
	for _, id := range eventIDs {
		row := events.Add(newElement("hkobject"))
		param(row, "id", strconv.Itoa(id))
		param(row, "payload", NullRef)
	}
	return ref
}

// AddClipTriggerArray emits the triggers fired while a clip plays.
func (d *Document) AddClipTriggerArray(triggers []Trigger) Ref {
	obj, ref := d.addObject("hkbClipTriggerArray", "0x59c23a0f")
	refCounted(obj)
	rows := arrayParam(obj, "triggers", len(triggers))
	for _, t := range triggers {
		row := rows.Add(newElement("hkobject"))
		param(row, "localTime", real(t.LocalTime))
		event := param(row, "event", "")
		ev := event.Add(newElement("hkobject"))
		param(ev, "id", strconv.Itoa(t.EventID))
		param(ev, "payload", NullRef)
		param(row, "relativeToEndOfClip", boolText(t.RelativeToEndOfClip))
		param(row, "acyclic", "false")
		param(row, "isAnnotation", "false")
	}
	return ref
}

// AddClipGenerator emits an hkbClipGenerator playing animationPath.
func (d *Document) AddClipGenerator(name, animationPath string, looping bool, triggers Ref) Ref {
	obj, ref := d.addObject("hkbClipGenerator", "0x333b85b9")
	refCounted(obj)
	bindable(obj)
	nodeHeader(obj, name)
	param(obj, "animationName", animationPath)
	param(obj, "triggers", triggers)
	param(obj, "cropStartAmountLocalTime", real(0))
	param(obj, "cropEndAmountLocalTime", real(0))
	param(obj, "startTime", real(0))
	param(obj, "playbackSpeed", real(1))
	param(obj, "enforcedDuration", real(0))
	param(obj, "userControlledTimeFraction", real(0))
	param(obj, "animationBindingIndex", "-1")
	if looping {
		param(obj, "mode", "MODE_LOOPING")
	} else {
		param(obj, "mode", "MODE_SINGLE_PLAY")
	}
	param(obj, "flags", "0")
	for _, c := range []string{
		"animDatas", "animationControl", "originalTriggers", "mapperData",
		"binding", "mirroredAnimation", "extractedMotion", "echos",
		"localTime", "time", "previousUserControlledTimeFraction",
		"bufferSize", "echoBufferSize", "atEnd", "ignoreStartTime",
		"pingPongBackward",
	} {
		obj.Comment(c + " SERIALIZE_IGNORED")
	}
	return ref
}

// AddGamebryoSequenceGenerator emits a BGSGamebryoSequenceGenerator driving
// the nif text-key sequence named animName.
func (d *Document) AddGamebryoSequenceGenerator(animName string) Ref {
	obj, ref := d.addObject("BGSGamebryoSequenceGenerator", "0xc8df2d77")
	refCounted(obj)
	bindable(obj)
	nodeHeader(obj, animName+"Sequence")
	param(obj, "pSequence", animName)
	param(obj, "eBlendModeFunction", "BMF_NONE")
	param(obj, "fPercent", real(1))
	obj.Comment("events SERIALIZE_IGNORED")
	obj.Comment("fTime SERIALIZE_IGNORED")
	obj.Comment("bDelayedActivate SERIALIZE_IGNORED")
	obj.Comment("bLooping SERIALIZE_IGNORED")
	return ref
}

// AddStateInfo emits the per-state record tying together its generator,
// transition array and notify arrays.
func (d *Document) AddStateInfo(name string, stateID int, generator, transitions, enterNotify, exitNotify Ref) Ref {
	obj, ref := d.addObject("hkbStateMachineStateInfo", "0xed7f9d0")
	refCounted(obj)
	bindable(obj)
	arrayParam(obj, "listeners", 0)
	param(obj, "enterNotifyEvents", enterNotify)
	param(obj, "exitNotifyEvents", exitNotify)
	param(obj, "transitions", transitions)
	param(obj, "generator", generator)
	param(obj, "name", name)
	param(obj, "stateId", strconv.Itoa(stateID))
	param(obj, "probability", real(1))
	param(obj, "enable", "true")
	return ref
}

// AddStateMachine emits the top-level state machine referencing every state
// info record, the start state and the wildcard transition array.
func (d *Document) AddStateMachine(name string, startStateID int, states []Ref, wildcardTransitions Ref) Ref {
	obj, ref := d.addObject("hkbStateMachine", "0x816c1dcb")
	refCounted(obj)
	bindable(obj)
	nodeHeader(obj, name)
	event := param(obj, "eventToSendWhenStateOrTransitionChanges", "")
	ev := event.Add(newElement("hkobject"))
	param(ev, "id", "-1")
	param(ev, "payload", NullRef)
	ev.Comment("sender SERIALIZE_IGNORED")
	param(obj, "startStateChooser", NullRef)
	param(obj, "startStateId", strconv.Itoa(startStateID))
	param(obj, "returnToPreviousStateEventId", "-1")
	param(obj, "randomTransitionEventId", "-1")
	param(obj, "transitionToNextHigherStateEventId", "-1")
	param(obj, "transitionToNextLowerStateEventId", "-1")
	param(obj, "syncVariableIndex", "-1")
	obj.Comment("currentStateId SERIALIZE_IGNORED")
	param(obj, "wrapAroundStateId", "false")
	param(obj, "maxSimultaneousTransitions", "32")
	param(obj, "startStateMode", "START_STATE_MODE_DEFAULT")
	param(obj, "selfTransitionMode", "SELF_TRANSITION_MODE_NO_TRANSITION")
	obj.Comment("isActive SERIALIZE_IGNORED")
	list := arrayParam(obj, "states", len(states))
	if len(states) > 0 {
		list.Text = "\n\t\t\t\t" + strings.Join(states, " ") + "\n\t\t\t"
	}
	param(obj, "wildcardTransitions", wildcardTransitions)
	for _, c := range []string{
		"stateIdToIndexMap", "activeTransitions", "transitionFlags",
		"wildcardTransitionFlags", "delayedTransitions", "timeInState",
		"lastLocalTime", "previousStateId", "nextStartStateIndexOverride",
		"stateOrTransitionChanged", "echoNextUpdate",
		"sCurrentStateIndexAndEntered",
	} {
		obj.Comment(c + " SERIALIZE_IGNORED")
	}
	return ref
}

// AddBehaviorGraph emits the behavior graph wrapping the state machine.
func (d *Document) AddBehaviorGraph(name string, rootGenerator, data Ref) Ref {
	obj, ref := d.addObject("hkbBehaviorGraph", "0xb1218f86")
	refCounted(obj)
	bindable(obj)
	nodeHeader(obj, name+".hkb")
	param(obj, "variableMode", "VARIABLE_MODE_DISCARD_WHEN_INACTIVE")
	obj.Comment("uniqueIdPool SERIALIZE_IGNORED")
	obj.Comment("idToStateMachineTemplateMap SERIALIZE_IGNORED")
	obj.Comment("mirroredExternalIdMap SERIALIZE_IGNORED")
	obj.Comment("pseudoRandomGenerator SERIALIZE_IGNORED")
	param(obj, "rootGenerator", rootGenerator)
	param(obj, "data", data)
	for _, c := range []string{
		"rootGeneratorClone", "activeNodes", "activeNodeTemplateToIndexMap",
		"activeNodesChildrenIndices", "globalTransitionData", "eventIdMap",
		"attributeIdMap", "variableIdMap", "characterPropertyIdMap",
		"variableValueSet", "nodeTemplateToCloneMap", "nodeCloneToTemplateMap",
		"stateListenerTemplateToCloneMap", "nodePartitionInfo",
		"numIntermediateOutputs", "jobs", "allPartitionMemory",
		"numStaticNodes", "nextUniqueId", "isActive", "isLinked",
		"updateActiveNodes", "stateOrTransitionChanged",
	} {
		obj.Comment(c + " SERIALIZE_IGNORED")
	}
	return ref
}

// AddRootContainer emits the hkRootLevelContainer under the reserved root
// reference and finalizes the document. Must be called exactly once, last.
func (d *Document) AddRootContainer(behaviorGraph Ref) {
	obj := d.data.Add(newElement("hkobject"))
	obj.Set("name", formatRef(rootIndex))
	obj.Set("class", "hkRootLevelContainer")
	obj.Set("signature", "0x2772c11e")
	variants := arrayParam(obj, "namedVariants", 1)
	row := variants.Add(newElement("hkobject"))
	param(row, "name", "hkbBehaviorGraph")
	param(row, "className", "hkbBehaviorGraph")
	param(row, "variant", behaviorGraph)
	d.finalized = true
}
