package behaviorx

import "log/slog"

// GraphOption configures a Graph at construction.
type GraphOption func(*Graph)

// WithLogger sets the logger the graph reports mutations and exports to.
func WithLogger(logger *slog.Logger) GraphOption {
	return func(g *Graph) {
		g.logger = logger
	}
}

// stateConfig collects AddState options before the animation source variant
// is assembled.
type stateConfig struct {
	animationPath string
	looping       bool
	sequence      bool
	enterNotify   []string
	exitNotify    []string
}

// StateOption configures a state being added.
type StateOption func(*stateConfig)

// WithAnimation sets the .hkx clip the state plays, e.g.
// `animations\retract.hkx`.
func WithAnimation(path string) StateOption {
	return func(c *stateConfig) {
		c.animationPath = path
	}
}

// Looping makes the state's clip loop instead of playing once.
func Looping() StateOption {
	return func(c *stateConfig) {
		c.looping = true
	}
}

// AsGamebryoSequence marks the state as playing a nif text-key sequence
// named after the state, instead of a clip file.
func AsGamebryoSequence() StateOption {
	return func(c *stateConfig) {
		c.sequence = true
	}
}

// WithEnterNotify sends the given events whenever the state is entered.
func WithEnterNotify(events ...string) StateOption {
	return func(c *stateConfig) {
		c.enterNotify = append(c.enterNotify, events...)
	}
}

// WithExitNotify sends the given events whenever the state is exited.
func WithExitNotify(events ...string) StateOption {
	return func(c *stateConfig) {
		c.exitNotify = append(c.exitNotify, events...)
	}
}

// TriggerOption configures a clip trigger.
type TriggerOption func(*ClipTrigger)

// AtTime fires the trigger t seconds into the clip.
func AtTime(t float64) TriggerOption {
	return func(tr *ClipTrigger) {
		tr.LocalTime = t
	}
}

// RelativeToEndOfClip measures the trigger time backwards from the end of
// the clip.
func RelativeToEndOfClip() TriggerOption {
	return func(tr *ClipTrigger) {
		tr.RelativeToEndOfClip = true
	}
}
