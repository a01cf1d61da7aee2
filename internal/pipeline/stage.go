package pipeline

// Stage is a step of the generation pass. Stages only move forward.
type Stage int

const (
	StageNew Stage = iota
	StageLoaded
	StageTemplated
	StagePlaced
	StagePropagated
	StageSerialized
)

func (s Stage) String() string {
	switch s {
	case StageNew:
		return "new"
	case StageLoaded:
		return "loaded"
	case StageTemplated:
		return "templated"
	case StagePlaced:
		return "placed"
	case StagePropagated:
		return "propagated"
	case StageSerialized:
		return "serialized"
	default:
		return "unknown"
	}
}
