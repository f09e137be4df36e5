package store

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	_ "modernc.org/sqlite"
)

const (
	snapshotKey     = "construction-report-storage"
	snapshotVersion = 1
)

// snapshot is the persisted form of the whole store: one serialized value
// under a fixed key, the same layout the app has always written.
type snapshot struct {
	Reports  []DailyReport `json:"reports"`
	Projects []ProjectInfo `json:"projects"`
	Settings UserSettings  `json:"settings"`
	Version  int           `json:"version"`
}

// Store is the single source of truth for reports, projects and settings.
// Collections live in memory; every mutation synchronously rewrites the
// full snapshot to the backing database. Reads never mutate state.
type Store struct {
	db     *sql.DB
	logger *zap.Logger

	mu       sync.RWMutex
	reports  []DailyReport
	projects []ProjectInfo
	settings UserSettings
	current  *DailyReport

	subsMu  sync.Mutex
	subs    map[int]func()
	nextSub int

	// Injected for tests; default to time.Now and uuid.NewString.
	now   func() time.Time
	newID func() string
}

// New opens (or creates) the SQLite database at dbPath and rehydrates the
// last persisted snapshot. A missing snapshot yields the default empty
// state; a snapshot with a different version is discarded rather than
// migrated, so a bad write can never half-load.
func New(dbPath string, logger *zap.Logger) (*Store, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
		return nil, fmt.Errorf("create db directory: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	db.SetMaxOpenConns(1)

	pragmas := []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA busy_timeout=5000",
	}
	for _, p := range pragmas {
		if _, err := db.Exec(p); err != nil {
			db.Close()
			return nil, fmt.Errorf("exec pragma %q: %w", p, err)
		}
	}

	if _, err := db.Exec(
		`CREATE TABLE IF NOT EXISTS snapshots (key TEXT PRIMARY KEY, value TEXT NOT NULL)`,
	); err != nil {
		db.Close()
		return nil, fmt.Errorf("create snapshots table: %w", err)
	}

	s := &Store{
		db:       db,
		logger:   logger,
		settings: defaultSettings(),
		subs:     make(map[int]func()),
		now:      time.Now,
		newID:    uuid.NewString,
	}
	if err := s.load(); err != nil {
		db.Close()
		return nil, fmt.Errorf("load snapshot: %w", err)
	}
	return s, nil
}

// NewMemory creates an in-memory store for testing.
func NewMemory() (*Store, error) {
	return New(":memory:", zap.NewNop())
}

func (s *Store) Close() error {
	return s.db.Close()
}

// Subscribe registers fn to run after every successful mutation. The
// returned function removes the subscription.
func (s *Store) Subscribe(fn func()) (unsubscribe func()) {
	s.subsMu.Lock()
	defer s.subsMu.Unlock()
	id := s.nextSub
	s.nextSub++
	s.subs[id] = fn
	return func() {
		s.subsMu.Lock()
		defer s.subsMu.Unlock()
		delete(s.subs, id)
	}
}

func (s *Store) notify() {
	s.subsMu.Lock()
	fns := make([]func(), 0, len(s.subs))
	for _, fn := range s.subs {
		fns = append(fns, fn)
	}
	s.subsMu.Unlock()
	for _, fn := range fns {
		fn()
	}
}

// NewID returns a fresh unique identity for a nested record. Top-level
// entities get theirs assigned by the create operations.
func (s *Store) NewID() string {
	return s.newID()
}

func (s *Store) load() error {
	var raw string
	err := s.db.QueryRow(`SELECT value FROM snapshots WHERE key = ?`, snapshotKey).Scan(&raw)
	if err == sql.ErrNoRows {
		return nil
	}
	if err != nil {
		return fmt.Errorf("read snapshot: %w", err)
	}

	var snap snapshot
	if err := json.Unmarshal([]byte(raw), &snap); err != nil {
		s.logger.Warn("snapshot is corrupt, starting from defaults", zap.Error(err))
		return nil
	}
	if snap.Version != snapshotVersion {
		s.logger.Warn("snapshot version mismatch, starting from defaults",
			zap.Int("found", snap.Version),
			zap.Int("want", snapshotVersion))
		return nil
	}

	s.reports = snap.Reports
	s.projects = snap.Projects
	s.settings = snap.Settings
	return nil
}

// save writes the full snapshot. Called with s.mu held by every mutating
// operation. On failure the in-memory state stays authoritative for the
// rest of the session; the caller gets the error to surface.
func (s *Store) save() error {
	snap := snapshot{
		Reports:  s.reports,
		Projects: s.projects,
		Settings: s.settings,
		Version:  snapshotVersion,
	}
	data, err := json.Marshal(snap)
	if err != nil {
		return fmt.Errorf("marshal snapshot: %w", err)
	}
	_, err = s.db.Exec(
		`INSERT INTO snapshots (key, value) VALUES (?, ?)
		 ON CONFLICT(key) DO UPDATE SET value = excluded.value`,
		snapshotKey, string(data),
	)
	if err != nil {
		s.logger.Error("persist snapshot", zap.Error(err))
		return fmt.Errorf("persist snapshot: %w", err)
	}
	return nil
}

// sameDay reports whether a and b fall on the same local calendar day.
func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Local().Date()
	by, bm, bd := b.Local().Date()
	return ay == by && am == bm && ad == bd
}

// DefaultDBPath returns ~/.config/genba/genba.db
func DefaultDBPath() (string, error) {
	cfg, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(cfg, "genba", "genba.db"), nil
}
