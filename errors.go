package behaviorx

import "errors"

var (
	// ErrDuplicateState is returned by AddState when the name is taken.
	ErrDuplicateState = errors.New("duplicate state name")
	// ErrUnknownState is returned when an operation names a state that was
	// never registered.
	ErrUnknownState = errors.New("unknown state")
	// ErrSelfTransition is returned by ConnectStates when source and target
	// are the same state.
	ErrSelfTransition = errors.New("transition source and target are the same state")
	// ErrConflictingAnimation is returned by AddState when a state is given
	// both a clip path and the gamebryo sequence flag.
	ErrConflictingAnimation = errors.New("state has both an animation path and a gamebryo sequence")
	// ErrNoAnimation is reported at export for states configured with
	// neither a clip path nor the gamebryo sequence flag.
	ErrNoAnimation = errors.New("state has neither an animation path nor a gamebryo sequence")
	// ErrSequenceTrigger is returned by AddClipTrigger for gamebryo sequence
	// states; their triggers live in the nif as text keys.
	ErrSequenceTrigger = errors.New("clip triggers cannot be attached to a gamebryo sequence state")
)
