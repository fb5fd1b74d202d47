package behaviorx

// AnimationSource selects how a state's generator plays its animation.
// Exactly two variants exist: a native Havok clip loaded from disk, and a
// Gamebryo text-key sequence driven from the nif. A state whose source is
// still nil at export time is a configuration error.
type AnimationSource interface {
	animationSource()
}

// ClipAnimation plays a .hkx animation file through an hkbClipGenerator.
type ClipAnimation struct {
	Path    string
	Looping bool
}

// SequenceAnimation plays a nif-embedded Gamebryo sequence through a
// BGSGamebryoSequenceGenerator. It carries no file reference.
type SequenceAnimation struct{}

func (ClipAnimation) animationSource()     {}
func (SequenceAnimation) animationSource() {}

// State is a named node of the behavior graph. States are owned by the Graph
// and identified by name; their numeric state IDs and object references are
// assigned per export.
type State struct {
	Name        string
	Animation   AnimationSource
	EnterNotify []string
	ExitNotify  []string
}

// Transition is a directed, event-labeled edge between two states.
type Transition struct {
	From  string
	To    string
	Event string
}

// Wildcard routes Event to State from anywhere in the machine, with lower
// precedence than explicit transitions.
type Wildcard struct {
	State string
	Event string
}

// ClipTrigger fires Event at a point in time while a state's clip plays.
type ClipTrigger struct {
	State               string
	Event               string
	LocalTime           float64
	RelativeToEndOfClip bool
}
