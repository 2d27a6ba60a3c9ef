package domain

import "fmt"

// Phase is one step of the conversational flow.
type Phase int

const (
	PhaseLangSelect Phase = iota
	PhaseLevelSelect
	PhaseJSSGrade
	PhaseSeniorGrade
	PhaseTerm
	PhaseMath
	PhaseScience
	PhaseSocial
	PhaseCreative
	PhaseTech
	PhasePathwaySelect
	PhaseCareerSelect
	PhaseDone
)

var phaseNames = map[Phase]string{
	PhaseLangSelect:    "LANG_SELECT",
	PhaseLevelSelect:   "LEVEL_SELECT",
	PhaseJSSGrade:      "JSS_GRADE",
	PhaseSeniorGrade:   "SENIOR_GRADE",
	PhaseTerm:          "TERM",
	PhaseMath:          "MATH",
	PhaseScience:       "SCIENCE",
	PhaseSocial:        "SOCIAL",
	PhaseCreative:      "CREATIVE",
	PhaseTech:          "TECH",
	PhasePathwaySelect: "PATHWAY_SELECT",
	PhaseCareerSelect:  "CAREER_SELECT",
	PhaseDone:          "DONE",
}

func (p Phase) String() string {
	if name, ok := phaseNames[p]; ok {
		return name
	}
	return fmt.Sprintf("Phase(%d)", int(p))
}

// ParsePhase converts a stored phase name back to a Phase.
func ParsePhase(name string) (Phase, error) {
	for p, n := range phaseNames {
		if n == name {
			return p, nil
		}
	}
	return 0, fmt.Errorf("unknown phase %q", name)
}

// Subject returns the learning area a rating phase collects, or false
// when the phase is not a rating phase.
func (p Phase) Subject() (Subject, bool) {
	switch p {
	case PhaseMath:
		return SubjectMath, true
	case PhaseScience:
		return SubjectScience, true
	case PhaseSocial:
		return SubjectSocial, true
	case PhaseCreative:
		return SubjectCreative, true
	case PhaseTech:
		return SubjectTechnical, true
	}
	return "", false
}

// Strict reports whether the phase accepts only its own menu digits.
// Global commands and free-text questions are not recognized here.
func (p Phase) Strict() bool {
	switch p {
	case PhaseCareerSelect, PhaseDone:
		return false
	}
	return true
}

// State is the machine position of a session. A paused session keeps
// the phase it was interrupted in so resume can re-enter it exactly.
// FullCatalog widens the career page from the short list to all
// records and only matters while Phase is PhaseCareerSelect.
type State struct {
	Phase       Phase
	Paused      bool
	FullCatalog bool
}

func (s State) String() string {
	if s.Paused {
		return "PAUSED(" + s.Phase.String() + ")"
	}
	return s.Phase.String()
}

// Pause wraps the state in the paused marker, keeping everything else.
func (s State) Pause() State {
	s.Paused = true
	return s
}

// Resume clears the paused marker, restoring the interrupted phase.
func (s State) Resume() State {
	s.Paused = false
	return s
}
