// Package engine implements the conversational session state machine:
// given an inbound message and the persisted session, it validates the
// input, decides the next state and field writes, and renders the prompt
// to send back. All collaborators are injected; the engine owns no
// process-global state.
package engine

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/edutena/pathways/internal/assistant"
	"github.com/edutena/pathways/internal/catalog"
	"github.com/edutena/pathways/internal/domain"
	"github.com/edutena/pathways/internal/prompts"
	"github.com/edutena/pathways/internal/store"
)

// DefaultAskTimeout bounds the only suspend point in a transition: the
// optional assistant call.
const DefaultAskTimeout = 8 * time.Second

// Engine is the session state machine and decision core.
type Engine struct {
	repo       store.Repository
	catalog    *catalog.Catalog
	prompts    *prompts.Resolver
	assistant  assistant.Asker
	askTimeout time.Duration
	locks      *keyedLocks
}

// Options carries optional collaborators.
type Options struct {
	// Assistant answers free-text questions. Nil disables the feature;
	// the engine serves the deterministic fallback instead.
	Assistant assistant.Asker

	// AskTimeout overrides DefaultAskTimeout when positive.
	AskTimeout time.Duration
}

// New creates an engine with its collaborators.
func New(repo store.Repository, cat *catalog.Catalog, res *prompts.Resolver, opts Options) *Engine {
	timeout := opts.AskTimeout
	if timeout <= 0 {
		timeout = DefaultAskTimeout
	}
	return &Engine{
		repo:       repo,
		catalog:    cat,
		prompts:    res,
		assistant:  opts.Assistant,
		askTimeout: timeout,
		locks:      newKeyedLocks(),
	}
}

// Reply is the outcome of one inbound message.
type Reply struct {
	// Text is the literal message to send back.
	Text string

	// Done reports that the conversation expects no further input,
	// which lets the USSD adapter end its session.
	Done bool
}

// Handle processes one inbound message for a phone on a channel. The
// per-session lock covers the whole read, transition and persist span.
// On an internal failure the returned Reply already carries the apology
// text and the error describes what went wrong for the adapter to log;
// the persisted session is unchanged in that case.
func (e *Engine) Handle(ctx context.Context, channel domain.Channel, phone, input string) (Reply, error) {
	key := domain.Key{Phone: phone, Channel: channel}

	unlock := e.locks.Lock(key.String())
	defer unlock()

	sess, err := e.repo.Get(ctx, key)
	if err != nil {
		return e.apology(domain.LanguageEnglish), fmt.Errorf("load session %s: %w", key, err)
	}

	// First contact: create the session lazily and greet, without
	// consuming the message body as a menu choice.
	if sess == nil {
		sess, err = e.repo.Create(ctx, key)
		if err != nil {
			return e.apology(domain.LanguageEnglish), fmt.Errorf("create session %s: %w", key, err)
		}
		return Reply{Text: e.promptFor(sess, sess.State)}, nil
	}

	input = strings.TrimSpace(input)
	if input == "" {
		// USSD re-entry dials arrive with no input yet. Never done: the
		// re-emitted prompt always invites a reply, even after DONE, so
		// the gateway session must stay open to accept it.
		return Reply{Text: e.promptFor(sess, sess.State)}, nil
	}

	res := e.transition(ctx, sess, input)

	if res.reset {
		if err := e.repo.Reset(ctx, key); err != nil {
			return e.apology(sess.Language), fmt.Errorf("reset session %s: %w", key, err)
		}
		return Reply{Text: res.text}, nil
	}
	if len(res.muts) > 0 {
		if err := e.repo.Apply(ctx, key, res.muts); err != nil {
			return e.apology(sess.Language), fmt.Errorf("persist transition for %s: %w", key, err)
		}
	}
	return Reply{Text: res.text, Done: res.done}, nil
}

// result is the in-memory outcome of a transition, computed fully
// before anything is persisted.
type result struct {
	muts  []domain.Mutation
	text  string
	done  bool
	reset bool
}

func (e *Engine) apology(lang domain.Language) Reply {
	return Reply{Text: e.prompts.Resolve(prompts.KeyApology, lang)}
}

// resolve is shorthand for the session's language.
func (e *Engine) resolve(key prompts.Key, sess *domain.Session) string {
	return e.prompts.Resolve(key, sess.Language)
}

// invalid renders the error-prefixed current prompt without mutating
// anything: invalid menu input never advances state.
func (e *Engine) invalid(sess *domain.Session, st domain.State) result {
	return result{text: e.resolve(prompts.KeyInvalidPrefix, sess) + e.promptFor(sess, st)}
}

// promptFor renders the exact prompt a fresh entry into the state would
// produce. Resume relies on this being the single source of prompts.
func (e *Engine) promptFor(sess *domain.Session, st domain.State) string {
	switch st.Phase {
	case domain.PhaseLangSelect:
		return e.resolve(prompts.KeyLangSelect, sess)
	case domain.PhaseLevelSelect:
		return e.resolve(prompts.KeyLevelSelect, sess)
	case domain.PhaseJSSGrade:
		return e.resolve(prompts.KeyJSSGrade, sess)
	case domain.PhaseSeniorGrade:
		return e.resolve(prompts.KeySeniorGrade, sess)
	case domain.PhaseTerm:
		return e.resolve(prompts.KeyTerm, sess)
	case domain.PhasePathwaySelect:
		return e.resolve(prompts.KeyPathwaySelect, sess)
	case domain.PhaseCareerSelect:
		return e.careerList(sess, st.FullCatalog)
	case domain.PhaseDone:
		return e.resolve(prompts.KeyDoneReminder, sess)
	default:
		if sub, ok := st.Phase.Subject(); ok {
			return e.resolve(prompts.RateKey(sub), sess)
		}
		return e.resolve(prompts.KeyDoneReminder, sess)
	}
}

// careerList renders the numbered career page for the session's
// pathway with the pick-or-more footer.
func (e *Engine) careerList(sess *domain.Session, full bool) string {
	page := e.catalog.Page(sess.Pathway, full)

	var body strings.Builder
	for i, rec := range page {
		if i > 0 {
			body.WriteByte('\n')
		}
		fmt.Fprintf(&body, "%d. %s (%s demand)", i+1, rec.Name, rec.Demand)
	}

	footerKey := prompts.KeyCareerFooterShort
	if full {
		footerKey = prompts.KeyCareerFooterFull
	}
	list := fmt.Sprintf(e.resolve(prompts.KeyCareerList, sess), string(sess.Pathway), body.String())
	return list + "\n" + e.resolve(footerKey, sess)
}

// ask forwards a free-text question to the assistant within the
// configured timeout, falling back to the deterministic offline text.
func (e *Engine) ask(ctx context.Context, sess *domain.Session, question string) string {
	fallback := e.resolve(prompts.KeyAssistantOffline, sess)
	if e.assistant == nil {
		return fallback
	}

	cctx, cancel := context.WithTimeout(ctx, e.askTimeout)
	defer cancel()

	answer, err := e.assistant.Ask(cctx, assistant.SessionContext{
		Language: sess.Language,
		Level:    sess.Level,
		Grade:    sess.Grade,
		Pathway:  sess.Pathway,
		Phase:    sess.State.Phase.String(),
	}, question)
	if err != nil {
		slog.Warn("assistant call failed, serving fallback",
			"channel", string(sess.Channel), "phase", sess.State.Phase.String(), "error", err)
		return fallback
	}
	return answer
}

// enrich asks the assistant for one motivational line to append to a
// terminal prompt. Absence or failure just means no extra line: the
// deterministic prompt text must stand alone.
func (e *Engine) enrich(ctx context.Context, sess *domain.Session, topic string) string {
	if e.assistant == nil {
		return ""
	}

	cctx, cancel := context.WithTimeout(ctx, e.askTimeout)
	defer cancel()

	line, err := e.assistant.Ask(cctx, assistant.SessionContext{
		Language: sess.Language,
		Level:    sess.Level,
		Grade:    sess.Grade,
		Pathway:  sess.Pathway,
	}, "Write one short encouraging sentence for a student who just "+topic+". No questions, no emoji.")
	if err != nil {
		slog.Debug("enrichment skipped", "error", err)
		return ""
	}
	return "\n" + line
}
