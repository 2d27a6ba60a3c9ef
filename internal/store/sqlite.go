package store

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/edutena/pathways/internal/domain"
	_ "modernc.org/sqlite"
)

// SQLiteStore implements Repository using SQLite.
type SQLiteStore struct {
	db *sql.DB
}

// NewSQLite creates a new SQLite-backed repository.
func NewSQLite(dbPath string) (Repository, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		return nil, fmt.Errorf("create database directory: %w", err)
	}

	// Open database with WAL mode for better concurrency.
	dsn := dbPath + "?_journal=WAL&_sync=NORMAL&_busy_timeout=5000"
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(5 * time.Minute)

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("ping database: %w", err)
	}

	store := &SQLiteStore{db: db}
	if err := store.initSchema(); err != nil {
		return nil, fmt.Errorf("initialize schema: %w", err)
	}

	return store, nil
}

func (s *SQLiteStore) initSchema() error {
	query := `
	PRAGMA busy_timeout = 5000;
	CREATE TABLE IF NOT EXISTS sessions (
		phone TEXT NOT NULL,
		channel TEXT NOT NULL,
		language TEXT NOT NULL DEFAULT 'en',
		level TEXT,
		grade INTEGER,
		term INTEGER,
		pathway TEXT,
		math INTEGER,
		science INTEGER,
		social INTEGER,
		creative INTEGER,
		technical INTEGER,
		career_interest TEXT,
		phase TEXT NOT NULL,
		paused INTEGER NOT NULL DEFAULT 0,
		full_catalog INTEGER NOT NULL DEFAULT 0,
		created_at INTEGER NOT NULL,
		updated_at INTEGER NOT NULL,
		PRIMARY KEY (phone, channel)
	);
	CREATE INDEX IF NOT EXISTS idx_sessions_updated ON sessions(updated_at);
	`
	if _, err := s.db.Exec(query); err != nil {
		return fmt.Errorf("create schema: %w", err)
	}
	return nil
}

// Ping verifies database connectivity.
func (s *SQLiteStore) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

const sessionColumns = `phone, channel, language, level, grade, term, pathway,
	math, science, social, creative, technical,
	career_interest, phase, paused, full_catalog, created_at, updated_at`

// Get retrieves a session, or nil when none exists for the key.
func (s *SQLiteStore) Get(ctx context.Context, key domain.Key) (*domain.Session, error) {
	query := `SELECT ` + sessionColumns + ` FROM sessions WHERE phone = ? AND channel = ?`
	row := s.db.QueryRowContext(ctx, query, key.Phone, string(key.Channel))

	var sess domain.Session
	var channel, phase string
	var level, pathway, career sql.NullString
	var grade, term, math, science, social, creative, technical sql.NullInt64
	var paused, fullCatalog int
	var createdAt, updatedAt int64

	err := row.Scan(
		&sess.Phone, &channel, &sess.Language, &level, &grade, &term, &pathway,
		&math, &science, &social, &creative, &technical,
		&career, &phase, &paused, &fullCatalog, &createdAt, &updatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("scan session row: %w", err)
	}

	sess.Channel = domain.Channel(channel)
	sess.Level = domain.Level(level.String)
	sess.Grade = domain.Grade(grade.Int64)
	sess.Term = domain.Term(term.Int64)
	sess.Pathway = domain.Pathway(pathway.String)
	sess.Scores = domain.Scores{
		Math:      domain.Rating(math.Int64),
		Science:   domain.Rating(science.Int64),
		Social:    domain.Rating(social.Int64),
		Creative:  domain.Rating(creative.Int64),
		Technical: domain.Rating(technical.Int64),
	}
	sess.CareerInterest = career.String

	ph, err := domain.ParsePhase(phase)
	if err != nil {
		return nil, fmt.Errorf("stored session %s: %w", key, err)
	}
	sess.State = domain.State{Phase: ph, Paused: paused != 0, FullCatalog: fullCatalog != 0}
	sess.CreatedAt = time.Unix(createdAt, 0)
	sess.UpdatedAt = time.Unix(updatedAt, 0)

	return &sess, nil
}

// Create inserts a fresh session in the language-selection state.
func (s *SQLiteStore) Create(ctx context.Context, key domain.Key) (*domain.Session, error) {
	now := time.Now()
	query := `
	INSERT INTO sessions (phone, channel, language, phase, created_at, updated_at)
	VALUES (?, ?, ?, ?, ?, ?)
	ON CONFLICT(phone, channel) DO NOTHING`

	_, err := s.db.ExecContext(ctx, query,
		key.Phone, string(key.Channel), string(domain.LanguageEnglish),
		domain.PhaseLangSelect.String(), now.Unix(), now.Unix(),
	)
	if err != nil {
		return nil, fmt.Errorf("create session: %w", err)
	}
	return s.Get(ctx, key)
}

// Apply persists a transition's mutations inside one transaction.
// Each variant maps to its own typed column write; anything outside the
// closed set rolls the whole transaction back with ErrUnknownMutation.
func (s *SQLiteStore) Apply(ctx context.Context, key domain.Key, muts []domain.Mutation) error {
	if len(muts) == 0 {
		return nil
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	for _, m := range muts {
		var column string
		var value interface{}

		switch v := m.(type) {
		case domain.SetLanguage:
			column, value = "language", string(v.Language)
		case domain.SetLevel:
			column, value = "level", string(v.Level)
		case domain.SetGrade:
			column, value = "grade", int(v.Grade)
		case domain.SetTerm:
			column, value = "term", int(v.Term)
		case domain.SetScore:
			switch v.Subject {
			case domain.SubjectMath:
				column = "math"
			case domain.SubjectScience:
				column = "science"
			case domain.SubjectSocial:
				column = "social"
			case domain.SubjectCreative:
				column = "creative"
			case domain.SubjectTechnical:
				column = "technical"
			default:
				return fmt.Errorf("%w: score subject %q", ErrUnknownMutation, v.Subject)
			}
			value = int(v.Rating)
		case domain.SetPathway:
			column, value = "pathway", string(v.Pathway)
		case domain.SetCareerInterest:
			column, value = "career_interest", v.Career
		case domain.SetState:
			if err := applyState(ctx, tx, key, v.State); err != nil {
				return err
			}
			continue
		default:
			return fmt.Errorf("%w: %T", ErrUnknownMutation, m)
		}

		// column comes from the switch above, never from input.
		query := `UPDATE sessions SET ` + column + ` = ?, updated_at = ? WHERE phone = ? AND channel = ?`
		res, err := tx.ExecContext(ctx, query, value, time.Now().Unix(), key.Phone, string(key.Channel))
		if err != nil {
			return fmt.Errorf("apply %T: %w", m, err)
		}
		if err := requireRow(res, key); err != nil {
			return err
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

func applyState(ctx context.Context, tx *sql.Tx, key domain.Key, state domain.State) error {
	query := `UPDATE sessions SET phase = ?, paused = ?, full_catalog = ?, updated_at = ?
		WHERE phone = ? AND channel = ?`
	res, err := tx.ExecContext(ctx, query,
		state.Phase.String(), boolInt(state.Paused), boolInt(state.FullCatalog),
		time.Now().Unix(), key.Phone, string(key.Channel),
	)
	if err != nil {
		return fmt.Errorf("apply state: %w", err)
	}
	return requireRow(res, key)
}

// Reset clears every field except the phone and returns the session to
// the language-selection state.
func (s *SQLiteStore) Reset(ctx context.Context, key domain.Key) error {
	query := `
	UPDATE sessions SET
		language = ?, level = NULL, grade = NULL, term = NULL, pathway = NULL,
		math = NULL, science = NULL, social = NULL, creative = NULL, technical = NULL,
		career_interest = NULL, phase = ?, paused = 0, full_catalog = 0, updated_at = ?
	WHERE phone = ? AND channel = ?`

	res, err := s.db.ExecContext(ctx, query,
		string(domain.LanguageEnglish), domain.PhaseLangSelect.String(),
		time.Now().Unix(), key.Phone, string(key.Channel),
	)
	if err != nil {
		return fmt.Errorf("reset session: %w", err)
	}
	return requireRow(res, key)
}

// Close closes the database connection.
func (s *SQLiteStore) Close() error {
	if err := s.db.Close(); err != nil {
		return fmt.Errorf("close database: %w", err)
	}
	return nil
}

func requireRow(res sql.Result, key domain.Key) error {
	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("get rows affected: %w", err)
	}
	if rows == 0 {
		return fmt.Errorf("session %s not found", key)
	}
	return nil
}

func boolInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
