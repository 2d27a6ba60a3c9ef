package domain

// Mutation is one field write produced by a transition. The set of
// variants is closed: the store switches over the concrete types and
// rejects anything else, so there is no string-keyed field update
// anywhere in the write path.
type Mutation interface {
	IsMutation()
}

// SetLanguage records the chosen conversation language.
type SetLanguage struct{ Language Language }

// SetLevel records the chosen school level.
type SetLevel struct{ Level Level }

// SetGrade records the chosen grade.
type SetGrade struct{ Grade Grade }

// SetTerm records the chosen school term.
type SetTerm struct{ Term Term }

// SetScore records one subject rating.
type SetScore struct {
	Subject Subject
	Rating  Rating
}

// SetPathway records the chosen or computed pathway.
type SetPathway struct{ Pathway Pathway }

// SetCareerInterest records the selected career name.
type SetCareerInterest struct{ Career string }

// SetState moves the machine to a new state.
type SetState struct{ State State }

func (SetLanguage) IsMutation()       {}
func (SetLevel) IsMutation()          {}
func (SetGrade) IsMutation()          {}
func (SetTerm) IsMutation()           {}
func (SetScore) IsMutation()          {}
func (SetPathway) IsMutation()        {}
func (SetCareerInterest) IsMutation() {}
func (SetState) IsMutation()          {}
