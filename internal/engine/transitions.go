package engine

import (
	"context"
	"fmt"
	"strconv"

	"github.com/edutena/pathways/internal/domain"
	"github.com/edutena/pathways/internal/pathway"
	"github.com/edutena/pathways/internal/prompts"
)

// transition computes the outcome of one inbound message entirely in
// memory. Nothing here touches the store; Handle persists the returned
// mutations in one shot afterwards.
func (e *Engine) transition(ctx context.Context, sess *domain.Session, input string) result {
	st := sess.State

	if st.Paused {
		return e.transitionPaused(ctx, sess, input)
	}

	// Global commands and free-text questions are only recognized in
	// the non-strict phases; a strict menu accepts nothing but its own
	// digits.
	if !st.Phase.Strict() {
		if cmd := parseCommand(input); cmd != cmdNone {
			return e.handleCommand(sess, cmd)
		}
		if !isDigits(input) && st.Phase != domain.PhaseCareerSelect {
			return e.pause(ctx, sess, input)
		}
	}

	switch st.Phase {
	case domain.PhaseLangSelect:
		return e.selectLanguage(sess, input)
	case domain.PhaseLevelSelect:
		return e.selectLevel(sess, input)
	case domain.PhaseJSSGrade:
		return e.selectGrade(sess, input, domain.LevelJSS)
	case domain.PhaseSeniorGrade:
		return e.selectGrade(sess, input, domain.LevelSenior)
	case domain.PhaseTerm:
		return e.selectTerm(sess, input)
	case domain.PhaseMath, domain.PhaseScience, domain.PhaseSocial,
		domain.PhaseCreative, domain.PhaseTech:
		return e.rateSubject(ctx, sess, input)
	case domain.PhasePathwaySelect:
		return e.selectPathway(sess, input)
	case domain.PhaseCareerSelect:
		return e.selectCareer(ctx, sess, input)
	case domain.PhaseDone:
		// Bare digits after completion get the static reminder.
		return result{text: e.resolve(prompts.KeyDoneReminder, sess), done: true}
	}
	return e.invalid(sess, st)
}

// transitionPaused forwards everything to the assistant until an
// explicit resume, without touching any session field.
func (e *Engine) transitionPaused(ctx context.Context, sess *domain.Session, input string) result {
	switch parseCommand(input) {
	case cmdResume:
		restored := sess.State.Resume()
		return result{
			muts: []domain.Mutation{domain.SetState{State: restored}},
			text: e.promptFor(sess, restored),
		}
	case cmdRestart:
		return e.restart(sess)
	default:
		return result{text: e.ask(ctx, sess, input) + e.resolve(prompts.KeyPausedHint, sess)}
	}
}

// pause records the interrupted state and delegates the question. The
// state marker is the only field that changes.
func (e *Engine) pause(ctx context.Context, sess *domain.Session, question string) result {
	return result{
		muts: []domain.Mutation{domain.SetState{State: sess.State.Pause()}},
		text: e.ask(ctx, sess, question) + e.resolve(prompts.KeyPausedHint, sess),
	}
}

func (e *Engine) restart(sess *domain.Session) result {
	return result{
		reset: true,
		text:  e.prompts.Resolve(prompts.KeyLangSelect, domain.LanguageEnglish),
	}
}

// handleCommand runs a global command from a non-strict phase.
func (e *Engine) handleCommand(sess *domain.Session, cmd command) result {
	st := sess.State
	switch cmd {
	case cmdRestart:
		return e.restart(sess)
	case cmdCareers:
		if sess.Pathway == "" {
			return result{text: e.resolve(prompts.KeyCompleteFirst, sess)}
		}
		next := domain.State{Phase: domain.PhaseCareerSelect}
		if st == next {
			return result{text: e.promptFor(sess, st)}
		}
		return result{
			muts: []domain.Mutation{domain.SetState{State: next}},
			text: e.promptFor(sess, next),
		}
	case cmdMore:
		if st.Phase != domain.PhaseCareerSelect {
			return result{text: e.resolve(prompts.KeyDoneReminder, sess), done: true}
		}
		if st.FullCatalog {
			return result{text: e.promptFor(sess, st)}
		}
		wide := st
		wide.FullCatalog = true
		return result{
			muts: []domain.Mutation{domain.SetState{State: wide}},
			text: e.promptFor(sess, wide),
		}
	case cmdResume:
		// Not paused: nothing to resume, re-emit the current prompt.
		return result{text: e.promptFor(sess, st)}
	}
	return e.invalid(sess, st)
}

func (e *Engine) selectLanguage(sess *domain.Session, input string) result {
	langs := map[string]domain.Language{
		"1": domain.LanguageEnglish,
		"2": domain.LanguageKiswahili,
		"3": domain.LanguageLuhya,
		"4": domain.LanguageKikuyu,
	}
	lang, ok := langs[input]
	if !ok {
		return e.invalid(sess, sess.State)
	}

	next := domain.State{Phase: domain.PhaseLevelSelect}
	// The next prompt already speaks the chosen language.
	return result{
		muts: []domain.Mutation{
			domain.SetLanguage{Language: lang},
			domain.SetState{State: next},
		},
		text: e.prompts.Resolve(prompts.KeyLevelSelect, lang),
	}
}

func (e *Engine) selectLevel(sess *domain.Session, input string) result {
	var level domain.Level
	var next domain.State
	switch input {
	case "1":
		level, next = domain.LevelJSS, domain.State{Phase: domain.PhaseJSSGrade}
	case "2":
		// The Senior track never collects a term: it goes straight to
		// grade then pathway choice. Deliberate asymmetry.
		level, next = domain.LevelSenior, domain.State{Phase: domain.PhaseSeniorGrade}
	default:
		return e.invalid(sess, sess.State)
	}
	return result{
		muts: []domain.Mutation{
			domain.SetLevel{Level: level},
			domain.SetState{State: next},
		},
		text: e.promptFor(sess, next),
	}
}

func (e *Engine) selectGrade(sess *domain.Session, input string, level domain.Level) result {
	n, err := strconv.Atoi(input)
	if err != nil || n < 1 || n > 3 {
		return e.invalid(sess, sess.State)
	}

	var grade domain.Grade
	var next domain.State
	if level == domain.LevelJSS {
		grade = domain.Grade7 + domain.Grade(n-1)
		next = domain.State{Phase: domain.PhaseTerm}
	} else {
		grade = domain.Grade10 + domain.Grade(n-1)
		next = domain.State{Phase: domain.PhasePathwaySelect}
	}
	return result{
		muts: []domain.Mutation{
			domain.SetGrade{Grade: grade},
			domain.SetState{State: next},
		},
		text: e.promptFor(sess, next),
	}
}

func (e *Engine) selectTerm(sess *domain.Session, input string) result {
	n, err := strconv.Atoi(input)
	if err != nil || n < 1 || n > 3 {
		return e.invalid(sess, sess.State)
	}
	next := domain.State{Phase: domain.PhaseMath}
	return result{
		muts: []domain.Mutation{
			domain.SetTerm{Term: domain.Term(n)},
			domain.SetState{State: next},
		},
		text: e.promptFor(sess, next),
	}
}

// ratingOrder maps each rating phase to its successor.
var ratingOrder = map[domain.Phase]domain.Phase{
	domain.PhaseMath:     domain.PhaseScience,
	domain.PhaseScience:  domain.PhaseSocial,
	domain.PhaseSocial:   domain.PhaseCreative,
	domain.PhaseCreative: domain.PhaseTech,
}

// rateSubject handles the five rating phases. Menu position 1 is the
// best answer and stores the highest score: 1→4, 2→3, 3→2, 4→1.
func (e *Engine) rateSubject(ctx context.Context, sess *domain.Session, input string) result {
	n, err := strconv.Atoi(input)
	if err != nil || n < 1 || n > 4 {
		return e.invalid(sess, sess.State)
	}
	rating := domain.Rating(5 - n)

	sub, ok := sess.State.Phase.Subject()
	if !ok {
		return e.invalid(sess, sess.State)
	}

	if next, ok := ratingOrder[sess.State.Phase]; ok {
		nextState := domain.State{Phase: next}
		return result{
			muts: []domain.Mutation{
				domain.SetScore{Subject: sub, Rating: rating},
				domain.SetState{State: nextState},
			},
			text: e.promptFor(sess, nextState),
		}
	}

	// Final subject: the machine branches instead of advancing.
	return e.finishRatings(ctx, sess, sub, rating)
}

// finishRatings closes the JSS assessment after the technical rating.
// Grade 9 gets a computed pathway prediction; grades 7 and 8 get
// improvement feedback.
func (e *Engine) finishRatings(ctx context.Context, sess *domain.Session, sub domain.Subject, rating domain.Rating) result {
	scores := sess.Scores
	_ = scores.Set(sub, rating)

	done := domain.State{Phase: domain.PhaseDone}

	if sess.Grade == domain.Grade9 {
		pw := pathway.Calculate(scores)
		text := fmt.Sprintf(e.resolve(prompts.KeyPathwayResult, sess), string(pw))
		text += e.enrich(ctx, sess, "was recommended the "+string(pw)+" pathway")
		return result{
			muts: []domain.Mutation{
				domain.SetScore{Subject: sub, Rating: rating},
				domain.SetPathway{Pathway: pw},
				domain.SetState{State: done},
			},
			text: text,
			done: true,
		}
	}

	return result{
		muts: []domain.Mutation{
			domain.SetScore{Subject: sub, Rating: rating},
			domain.SetState{State: done},
		},
		text: e.feedback(sess, scores),
		done: true,
	}
}

func (e *Engine) selectPathway(sess *domain.Session, input string) result {
	// A direct choice on the Senior track, not a computed prediction.
	var pw domain.Pathway
	switch input {
	case "1":
		pw = domain.PathwaySTEM
	case "2":
		pw = domain.PathwaySocialSciences
	case "3":
		pw = domain.PathwayArtsAndSports
	default:
		return e.invalid(sess, sess.State)
	}

	next := domain.State{Phase: domain.PhaseCareerSelect}
	// promptFor reads the pathway off the session, which is not
	// persisted yet; render from a copy carrying the choice.
	chosen := *sess
	chosen.Pathway = pw
	return result{
		muts: []domain.Mutation{
			domain.SetPathway{Pathway: pw},
			domain.SetState{State: next},
		},
		text: e.promptFor(&chosen, next),
	}
}

func (e *Engine) selectCareer(ctx context.Context, sess *domain.Session, input string) result {
	st := sess.State

	if !isDigits(input) {
		return e.pause(ctx, sess, input)
	}

	n, err := strconv.Atoi(input)
	if err != nil {
		return e.invalid(sess, st)
	}
	rec, err := e.catalog.Get(sess.Pathway, n, st.FullCatalog)
	if err != nil {
		return e.invalid(sess, st)
	}

	text := fmt.Sprintf(e.resolve(prompts.KeyCareerChosen, sess),
		rec.Name, rec.Demand, rec.Trend, rec.Entry)
	text += e.enrich(ctx, sess, "chose a career in "+rec.Name)
	return result{
		muts: []domain.Mutation{
			domain.SetCareerInterest{Career: rec.Name},
			domain.SetState{State: domain.State{Phase: domain.PhaseDone}},
		},
		text: text,
		done: true,
	}
}
