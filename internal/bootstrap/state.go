package bootstrap

// State tracks how far the pipeline progressed. Any state can transition to
// StateFailed, which short-circuits all later phases. There is no resumption:
// a new run restarts from StateStart and relies on idempotent file-system
// checks to avoid redoing completed work.
type State int

const (
	StateStart State = iota
	StateManifestCleared
	StateRequirementsParsed
	StateDependenciesInstalled
	StateSkeletonCreated
	StateDone
	StateFailed
)

// String returns a human-readable name for the state.
func (s State) String() string {
	switch s {
	case StateStart:
		return "start"
	case StateManifestCleared:
		return "manifest-cleared"
	case StateRequirementsParsed:
		return "requirements-parsed"
	case StateDependenciesInstalled:
		return "dependencies-installed"
	case StateSkeletonCreated:
		return "skeleton-created"
	case StateDone:
		return "done"
	case StateFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// Phase tags a diagnostic with the pipeline stage that produced it.
type Phase string

const (
	PhaseManifest Phase = "manifest"
	PhaseParse    Phase = "parse"
	PhaseInstall  Phase = "install"
	PhaseSkeleton Phase = "skeleton"
)

// Diagnostic is one reported condition from a pipeline phase. Fatal
// diagnostics drive the transition to StateFailed; the rest are narrative.
type Diagnostic struct {
	Phase   Phase
	Message string
	Fatal   bool
}

func (d Diagnostic) String() string {
	return string(d.Phase) + ": " + d.Message
}
