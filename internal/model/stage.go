package model

// Stage is one discrete phase in a value-loss case file's progression.
type Stage string

// Case stage constants, in strict forward order.
const (
	StageOpen       Stage = "open"
	StageAssigned   Stage = "assigned"
	StageApplied    Stage = "applied"
	StageInProgress Stage = "inProgress"
	StageConcluded  Stage = "concluded"
	StageClosed     Stage = "closed"
)

var stageOrder = []Stage{
	StageOpen,
	StageAssigned,
	StageApplied,
	StageInProgress,
	StageConcluded,
	StageClosed,
}

// Human-facing labels shown in the case timeline; also used as the default
// note when a stage transition is recorded without one.
var stageLabels = map[Stage]string{
	StageOpen:       "Dosya Acildi",
	StageAssigned:   "Avukata Atandi",
	StageApplied:    "Basvuru Yapildi",
	StageInProgress: "Tahkim/Mahkeme",
	StageConcluded:  "Sonuclandi",
	StageClosed:     "Dosya Kapandi",
}

// Stages returns the full progression in order.
func Stages() []Stage {
	out := make([]Stage, len(stageOrder))
	copy(out, stageOrder)
	return out
}

// Valid reports whether s is a known stage.
func (s Stage) Valid() bool {
	_, ok := stageLabels[s]
	return ok
}

// Next returns the immediate successor of s in the fixed progression.
// It returns false for the terminal stage and for unknown values.
func (s Stage) Next() (Stage, bool) {
	for i, st := range stageOrder {
		if st == s && i < len(stageOrder)-1 {
			return stageOrder[i+1], true
		}
	}
	return "", false
}

// Label returns the human-facing label for s, or the raw value if unknown.
func (s Stage) Label() string {
	if l, ok := stageLabels[s]; ok {
		return l
	}
	return string(s)
}
