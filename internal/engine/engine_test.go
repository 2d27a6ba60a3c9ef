package engine

import (
	"context"
	"errors"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/edutena/pathways/internal/assistant"
	"github.com/edutena/pathways/internal/catalog"
	"github.com/edutena/pathways/internal/domain"
	"github.com/edutena/pathways/internal/prompts"
	"github.com/edutena/pathways/internal/store"
)

type fakeAsker struct {
	answer    string
	err       error
	questions []string
}

func (f *fakeAsker) Ask(_ context.Context, _ assistant.SessionContext, q string) (string, error) {
	f.questions = append(f.questions, q)
	return f.answer, f.err
}

func newTestEngine(t *testing.T, asker assistant.Asker) (*Engine, store.Repository) {
	t.Helper()
	repo, err := store.NewSQLite(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("NewSQLite: %v", err)
	}
	t.Cleanup(func() { _ = repo.Close() })

	e := New(repo, catalog.New(), prompts.New(), Options{Assistant: asker})
	return e, repo
}

const testPhone = "+254711000001"

// drive sends each input over SMS and fails on an engine error.
func drive(t *testing.T, e *Engine, inputs ...string) Reply {
	t.Helper()
	var last Reply
	for _, in := range inputs {
		var err error
		last, err = e.Handle(context.Background(), domain.ChannelSMS, testPhone, in)
		if err != nil {
			t.Fatalf("Handle(%q): %v", in, err)
		}
	}
	return last
}

func getSession(t *testing.T, repo store.Repository) *domain.Session {
	t.Helper()
	sess, err := repo.Get(context.Background(), domain.Key{Phone: testPhone, Channel: domain.ChannelSMS})
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if sess == nil {
		t.Fatal("session not found")
	}
	return sess
}

func TestFirstContactGreets(t *testing.T) {
	e, repo := newTestEngine(t, nil)

	reply := drive(t, e, "hello")
	if !strings.Contains(reply.Text, "1. English") {
		t.Errorf("first reply = %q, want the language menu", reply.Text)
	}

	sess := getSession(t, repo)
	if sess.State.Phase != domain.PhaseLangSelect {
		t.Errorf("phase = %v, want LANG_SELECT", sess.State.Phase)
	}
}

func TestLanguageSelection(t *testing.T) {
	e, repo := newTestEngine(t, nil)
	drive(t, e, "hi")

	// Invalid choice re-prompts without advancing.
	reply := drive(t, e, "9")
	if !strings.HasPrefix(reply.Text, "Invalid input. ") {
		t.Errorf("invalid choice reply = %q, want error-prefixed prompt", reply.Text)
	}
	if got := getSession(t, repo); got.State.Phase != domain.PhaseLangSelect {
		t.Errorf("phase advanced on invalid input: %v", got.State.Phase)
	}

	// Valid choice persists the language and answers in it.
	reply = drive(t, e, "2")
	if !strings.Contains(reply.Text, "Chagua kiwango") {
		t.Errorf("reply = %q, want the Kiswahili level prompt", reply.Text)
	}
	sess := getSession(t, repo)
	if sess.Language != domain.LanguageKiswahili {
		t.Errorf("language = %q, want sw", sess.Language)
	}
	if sess.State.Phase != domain.PhaseLevelSelect {
		t.Errorf("phase = %v, want LEVEL_SELECT", sess.State.Phase)
	}
}

func TestJSSGrade9RoundTrip(t *testing.T) {
	e, repo := newTestEngine(t, nil)

	// hello → en → JSS → Grade 9 → Term 2 → all Exceeding.
	reply := drive(t, e, "hello", "1", "1", "3", "2", "1", "1", "1", "1", "1")

	if !strings.Contains(reply.Text, "Recommended Pathway") || !strings.Contains(reply.Text, "STEM") {
		t.Errorf("final reply = %q, want a STEM recommendation", reply.Text)
	}
	if !reply.Done {
		t.Error("final reply should mark the conversation done")
	}

	sess := getSession(t, repo)
	if sess.State.Phase != domain.PhaseDone {
		t.Errorf("phase = %v, want DONE", sess.State.Phase)
	}
	if sess.Pathway != domain.PathwaySTEM {
		t.Errorf("pathway = %q, want STEM", sess.Pathway)
	}
	if sess.Level != domain.LevelJSS || sess.Grade != domain.Grade9 || sess.Term != domain.Term2 {
		t.Errorf("level/grade/term = %q/%d/%d", sess.Level, sess.Grade, sess.Term)
	}
	want := domain.Scores{Math: 4, Science: 4, Social: 4, Creative: 4, Technical: 4}
	if sess.Scores != want {
		t.Errorf("scores = %+v, want all Exceeding", sess.Scores)
	}
}

func TestJSSGrade7Feedback(t *testing.T) {
	e, repo := newTestEngine(t, nil)

	// Grade 7, Math and Technical rated Below (menu 4), rest Exceeding.
	reply := drive(t, e, "hello", "1", "1", "1", "1", "4", "1", "1", "1", "4")

	if !strings.Contains(reply.Text, "Focus on improving") {
		t.Errorf("reply = %q, want improvement feedback", reply.Text)
	}
	if !strings.Contains(reply.Text, "Mathematics") || !strings.Contains(reply.Text, "Technical Skills") {
		t.Errorf("reply = %q, want the weak subjects named", reply.Text)
	}
	if strings.Index(reply.Text, "Mathematics") > strings.Index(reply.Text, "Technical Skills") {
		t.Errorf("focus areas out of assessment order: %q", reply.Text)
	}

	sess := getSession(t, repo)
	if sess.Pathway != "" {
		t.Errorf("grade 7 must not get a pathway, got %q", sess.Pathway)
	}
	if sess.State.Phase != domain.PhaseDone {
		t.Errorf("phase = %v, want DONE", sess.State.Phase)
	}
}

func TestInvalidRatingIsIdempotent(t *testing.T) {
	e, repo := newTestEngine(t, nil)
	drive(t, e, "hello", "1", "1", "3", "1") // at Rate Mathematics
	before := getSession(t, repo)

	for _, bad := range []string{"9", "0", "abc", "CAREERS", "START", ""} {
		reply, err := e.Handle(context.Background(), domain.ChannelSMS, testPhone, bad)
		if err != nil {
			t.Fatalf("Handle(%q): %v", bad, err)
		}
		if bad != "" && !strings.HasPrefix(reply.Text, "Invalid input. ") {
			t.Errorf("Handle(%q) = %q, want error-prefixed re-prompt", bad, reply.Text)
		}

		after := getSession(t, repo)
		if after.State != before.State {
			t.Errorf("Handle(%q) changed state: %v -> %v", bad, before.State, after.State)
		}
		if after.Scores != before.Scores {
			t.Errorf("Handle(%q) changed scores: %+v -> %+v", bad, before.Scores, after.Scores)
		}
	}
}

func TestSeniorTrackSkipsTerm(t *testing.T) {
	e, repo := newTestEngine(t, nil)

	// en → Senior → Grade 11 → STEM.
	reply := drive(t, e, "hello", "1", "2", "2", "1")

	if !strings.Contains(reply.Text, "Top careers in STEM") {
		t.Errorf("reply = %q, want the STEM career list", reply.Text)
	}
	if !strings.Contains(reply.Text, "1. Engineering") {
		t.Errorf("reply = %q, want Engineering ranked first", reply.Text)
	}

	sess := getSession(t, repo)
	if sess.Term != 0 {
		t.Errorf("senior track collected a term: %d", sess.Term)
	}
	if sess.Grade != domain.Grade11 {
		t.Errorf("grade = %d, want 11", sess.Grade)
	}
	if sess.State.Phase != domain.PhaseCareerSelect {
		t.Errorf("phase = %v, want CAREER_SELECT", sess.State.Phase)
	}
	if sess.Scores != (domain.Scores{}) {
		t.Errorf("senior track collected ratings: %+v", sess.Scores)
	}
}

func TestCareerSelectionBounds(t *testing.T) {
	e, repo := newTestEngine(t, nil)
	drive(t, e, "hello", "1", "2", "1", "1") // Senior, Grade 10, STEM → career list

	// Index 6 on the short five-item page must be rejected.
	reply := drive(t, e, "6")
	if !strings.HasPrefix(reply.Text, "Invalid input. ") {
		t.Errorf("index 6 on short page = %q, want rejection", reply.Text)
	}
	if got := getSession(t, repo); got.CareerInterest != "" {
		t.Errorf("careerInterest set by rejected index: %q", got.CareerInterest)
	}

	// MORE widens the page; the same state keeps accepting selection.
	reply = drive(t, e, "MORE")
	if !strings.Contains(reply.Text, "6. ") || !strings.Contains(reply.Text, "10. ") {
		t.Errorf("MORE reply = %q, want the ten-item list", reply.Text)
	}
	if got := getSession(t, repo); !got.State.FullCatalog || got.State.Phase != domain.PhaseCareerSelect {
		t.Errorf("state after MORE = %+v", got.State)
	}

	// Index 6 now succeeds.
	reply = drive(t, e, "6")
	if !strings.Contains(reply.Text, "You chose") {
		t.Errorf("index 6 on full page = %q, want a selection", reply.Text)
	}
	sess := getSession(t, repo)
	if sess.CareerInterest == "" {
		t.Error("careerInterest not persisted")
	}
	if sess.State.Phase != domain.PhaseDone {
		t.Errorf("phase = %v, want DONE", sess.State.Phase)
	}
}

func TestCareersCommandNeedsPathway(t *testing.T) {
	e, _ := newTestEngine(t, nil)
	// Grade 7 flow ends Done without a pathway.
	drive(t, e, "hello", "1", "1", "1", "1", "1", "1", "1", "1", "1")

	reply := drive(t, e, "CAREERS")
	if !strings.Contains(reply.Text, "complete the assessment first") {
		t.Errorf("CAREERS without pathway = %q, want a complete-first signal", reply.Text)
	}
}

func TestCareersCommandAfterPrediction(t *testing.T) {
	e, repo := newTestEngine(t, nil)
	drive(t, e, "hello", "1", "1", "3", "1", "1", "1", "1", "1", "1") // grade 9 → STEM

	reply := drive(t, e, "CAREERS")
	if !strings.Contains(reply.Text, "Top careers in STEM") {
		t.Errorf("CAREERS reply = %q, want the career list", reply.Text)
	}
	if got := getSession(t, repo); got.State.Phase != domain.PhaseCareerSelect {
		t.Errorf("phase = %v, want CAREER_SELECT", got.State.Phase)
	}
}

func TestPauseAndResume(t *testing.T) {
	asker := &fakeAsker{answer: "Engineering builds roads and bridges."}
	e, repo := newTestEngine(t, asker)
	drive(t, e, "hello", "1", "2", "1", "1") // Senior → career list
	entryPrompt := drive(t, e, "MORE")
	before := getSession(t, repo)

	// A free-text question pauses and delegates.
	reply := drive(t, e, "what does an engineer do?")
	if !strings.Contains(reply.Text, asker.answer) {
		t.Errorf("paused reply = %q, want the assistant answer", reply.Text)
	}
	if !strings.Contains(reply.Text, "RESUME") {
		t.Errorf("paused reply = %q, want a resume hint", reply.Text)
	}

	paused := getSession(t, repo)
	if !paused.State.Paused || paused.State.Phase != domain.PhaseCareerSelect || !paused.State.FullCatalog {
		t.Errorf("paused state = %+v", paused.State)
	}
	// Only the state marker may change.
	if paused.Pathway != before.Pathway || paused.CareerInterest != before.CareerInterest || paused.Scores != before.Scores {
		t.Error("pause mutated session fields beyond the state marker")
	}

	// Further free text keeps going to the assistant without writes.
	drive(t, e, "and a data scientist?")
	if len(asker.questions) != 2 {
		t.Errorf("assistant got %d questions, want 2", len(asker.questions))
	}

	// Resume restores the phase and re-emits the exact entry prompt.
	reply = drive(t, e, "RESUME")
	if reply.Text != entryPrompt.Text {
		t.Errorf("resume prompt = %q, want the exact entry prompt %q", reply.Text, entryPrompt.Text)
	}
	resumed := getSession(t, repo)
	if resumed.State.Paused || resumed.State.Phase != domain.PhaseCareerSelect || !resumed.State.FullCatalog {
		t.Errorf("resumed state = %+v", resumed.State)
	}
}

func TestAssistantFailureFallsBack(t *testing.T) {
	asker := &fakeAsker{err: errors.New("upstream timeout")}
	e, _ := newTestEngine(t, asker)
	drive(t, e, "hello", "1", "2", "1", "1")

	reply := drive(t, e, "what should I study?")
	if !strings.Contains(reply.Text, "cannot answer questions right now") {
		t.Errorf("reply = %q, want the deterministic fallback", reply.Text)
	}
}

func TestNoAssistantFallsBack(t *testing.T) {
	e, _ := newTestEngine(t, nil)
	drive(t, e, "hello", "1", "2", "1", "1")

	reply := drive(t, e, "what should I study?")
	if !strings.Contains(reply.Text, "cannot answer questions right now") {
		t.Errorf("reply = %q, want the deterministic fallback", reply.Text)
	}
}

func TestRestartResetsEverythingButPhone(t *testing.T) {
	e, repo := newTestEngine(t, nil)
	drive(t, e, "hello", "2", "1", "3", "2", "1", "1", "1", "1", "1") // sw, grade 9, done

	reply := drive(t, e, "START")
	if !strings.Contains(reply.Text, "1. English") {
		t.Errorf("restart reply = %q, want the language menu", reply.Text)
	}

	sess := getSession(t, repo)
	if sess.Phone != testPhone {
		t.Errorf("phone = %q, want %q", sess.Phone, testPhone)
	}
	if sess.State.Phase != domain.PhaseLangSelect || sess.Language != domain.LanguageEnglish {
		t.Errorf("state/language after restart = %v/%q", sess.State, sess.Language)
	}
	if sess.Level != "" || sess.Pathway != "" || sess.Scores != (domain.Scores{}) {
		t.Errorf("fields survived restart: %+v", sess)
	}
}

func TestDoneReminder(t *testing.T) {
	e, _ := newTestEngine(t, nil)
	drive(t, e, "hello", "1", "1", "3", "1", "1", "1", "1", "1", "1")

	reply := drive(t, e, "5")
	if !strings.Contains(reply.Text, "Assessment complete") {
		t.Errorf("digit in DONE = %q, want the completion reminder", reply.Text)
	}
}

func TestEmptyInputAfterDoneStaysOpen(t *testing.T) {
	e, _ := newTestEngine(t, nil)
	drive(t, e, "hello", "1", "1", "3", "1", "1", "1", "1", "1", "1")

	// An empty message is a channel re-entry, not a turn. The reminder
	// it re-emits asks for CAREERS or START, so the conversation must
	// not report done or those replies could never arrive.
	reply, err := e.Handle(context.Background(), domain.ChannelSMS, testPhone, "")
	if err != nil {
		t.Fatalf("Handle: %v", err)
	}
	if reply.Done {
		t.Error("re-entry into DONE reported done")
	}
	if !strings.Contains(reply.Text, "Assessment complete") {
		t.Errorf("re-entry reply = %q, want the completion reminder", reply.Text)
	}
}

func TestEnrichmentAppended(t *testing.T) {
	asker := &fakeAsker{answer: "Great choice, keep going!"}
	e, _ := newTestEngine(t, asker)

	reply := drive(t, e, "hello", "1", "1", "3", "1", "1", "1", "1", "1", "1")
	if !strings.Contains(reply.Text, "Recommended Pathway") {
		t.Errorf("reply = %q, want the deterministic recommendation first", reply.Text)
	}
	if !strings.Contains(reply.Text, asker.answer) {
		t.Errorf("reply = %q, want the motivational line appended", reply.Text)
	}
}

func TestKeyedLocks(t *testing.T) {
	locks := newKeyedLocks()

	unlock := locks.Lock("sms:+254700000001")
	done := make(chan struct{})
	go func() {
		inner := locks.Lock("sms:+254700000001")
		inner()
		close(done)
	}()

	time.Sleep(20 * time.Millisecond)
	select {
	case <-done:
		t.Fatal("second holder acquired the lock while it was held")
	default:
	}

	unlock()
	<-done

	locks.mu.Lock()
	if len(locks.held) != 0 {
		t.Errorf("lock table not cleaned up: %d entries", len(locks.held))
	}
	locks.mu.Unlock()
}
