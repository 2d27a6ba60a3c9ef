// Package prompts resolves prompt keys to user-facing copy per language.
// The engine never builds sentence text itself; it only interpolates
// computed values (pathway, career, list bodies) into templates served
// from here.
package prompts

import "github.com/edutena/pathways/internal/domain"

// Key is a stable identifier for one piece of user-facing copy.
type Key string

const (
	KeyLangSelect    Key = "lang_select"
	KeyLevelSelect   Key = "level_select"
	KeyJSSGrade      Key = "jss_grade"
	KeySeniorGrade   Key = "senior_grade"
	KeyTerm          Key = "term"
	KeyRateMath      Key = "rate_math"
	KeyRateScience   Key = "rate_science"
	KeyRateSocial    Key = "rate_social"
	KeyRateCreative  Key = "rate_creative"
	KeyRateTech      Key = "rate_tech"
	KeyPathwaySelect Key = "pathway_select"

	// Templates. The engine interpolates with fmt.Sprintf.
	KeyCareerList    Key = "career_list"    // pathway name, numbered list body
	KeyCareerChosen  Key = "career_chosen"  // name, demand, trend, entry
	KeyPathwayResult Key = "pathway_result" // pathway name
	KeyFeedbackFocus Key = "feedback_focus" // comma-joined subject names

	KeyCareerFooterShort Key = "career_footer_short"
	KeyCareerFooterFull  Key = "career_footer_full"
	KeyFeedbackStrong    Key = "feedback_strong"
	KeyDoneReminder      Key = "done_reminder"
	KeyInvalidPrefix     Key = "invalid_prefix"
	KeyApology           Key = "apology"
	KeyCompleteFirst     Key = "complete_first"
	KeyPausedHint        Key = "paused_hint"
	KeyAssistantOffline  Key = "assistant_offline"

	KeySubjectMath      Key = "subject_math"
	KeySubjectScience   Key = "subject_science"
	KeySubjectSocial    Key = "subject_social"
	KeySubjectCreative  Key = "subject_creative"
	KeySubjectTechnical Key = "subject_technical"
)

// RateKey returns the rating prompt key for a subject.
func RateKey(sub domain.Subject) Key {
	switch sub {
	case domain.SubjectMath:
		return KeyRateMath
	case domain.SubjectScience:
		return KeyRateScience
	case domain.SubjectSocial:
		return KeyRateSocial
	case domain.SubjectCreative:
		return KeyRateCreative
	default:
		return KeyRateTech
	}
}

// SubjectKey returns the display-name key for a subject.
func SubjectKey(sub domain.Subject) Key {
	switch sub {
	case domain.SubjectMath:
		return KeySubjectMath
	case domain.SubjectScience:
		return KeySubjectScience
	case domain.SubjectSocial:
		return KeySubjectSocial
	case domain.SubjectCreative:
		return KeySubjectCreative
	default:
		return KeySubjectTechnical
	}
}

// Resolver looks up copy by key and language.
type Resolver struct {
	tables map[domain.Language]map[Key]string
}

// New returns a resolver backed by the built-in language tables.
func New() *Resolver {
	return &Resolver{
		tables: map[domain.Language]map[Key]string{
			domain.LanguageEnglish:   english,
			domain.LanguageKiswahili: kiswahili,
			domain.LanguageLuhya:     luhya,
			domain.LanguageKikuyu:    kikuyu,
		},
	}
}

// Resolve returns the copy for a key in the given language, falling
// back to English for missing translations, then to the key itself so
// a gap is visible rather than an empty message.
func (r *Resolver) Resolve(key Key, lang domain.Language) string {
	if table, ok := r.tables[lang]; ok {
		if text, ok := table[key]; ok {
			return text
		}
	}
	if text, ok := r.tables[domain.LanguageEnglish][key]; ok {
		return text
	}
	return string(key)
}
