package engine

import (
	"fmt"
	"strings"

	"github.com/edutena/pathways/internal/domain"
	"github.com/edutena/pathways/internal/prompts"
)

// feedback renders the grade 7/8 closing message: the subjects rated
// at Approaching or Below become focus areas, in assessment order so
// the text is deterministic for a given score set.
func (e *Engine) feedback(sess *domain.Session, scores domain.Scores) string {
	var focus []string
	for _, sub := range domain.Subjects {
		if r := scores.Get(sub); r != 0 && r <= domain.RatingApproaching {
			focus = append(focus, e.resolve(prompts.SubjectKey(sub), sess))
		}
	}

	if len(focus) == 0 {
		return e.resolve(prompts.KeyFeedbackStrong, sess)
	}
	return fmt.Sprintf(e.resolve(prompts.KeyFeedbackFocus, sess), strings.Join(focus, ", "))
}
