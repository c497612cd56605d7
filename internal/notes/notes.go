package notes

import (
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

// flushDelay batches rapid edits into one disk write.
const flushDelay = 500 * time.Millisecond

// Store holds the single quick-notes text blob. Writes are debounced:
// each Set arms (or re-arms) a timer and only the last text within the
// window hits notes.txt. Memory stays authoritative in between.
type Store struct {
	mu    sync.Mutex
	path  string
	log   zerolog.Logger
	text  string
	timer *time.Timer
	saved bool
}

func NewStore(dataDir string, log zerolog.Logger) (*Store, error) {
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return nil, err
	}
	s := &Store{
		path:  filepath.Join(dataDir, "notes.txt"),
		log:   log.With().Str("component", "notes").Logger(),
		saved: true,
	}
	b, err := os.ReadFile(s.path)
	if err != nil {
		if !os.IsNotExist(err) {
			return nil, err
		}
	} else {
		s.text = string(b)
	}
	return s, nil
}

func (s *Store) Get() (text string, saved bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.text, s.saved
}

// Set replaces the note text and schedules a flush.
func (s *Store) Set(text string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.text = text
	s.saved = false
	if s.timer != nil {
		s.timer.Stop()
	}
	s.timer = time.AfterFunc(flushDelay, s.flush)
}

// Clear wipes the note and flushes immediately.
func (s *Store) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.text = ""
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
	s.writeLocked()
}

// Flush forces any pending text to disk. Called on shutdown.
func (s *Store) Flush() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
	if !s.saved {
		s.writeLocked()
	}
}

func (s *Store) flush() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.writeLocked()
}

func (s *Store) writeLocked() {
	if err := os.WriteFile(s.path, []byte(s.text), 0o644); err != nil {
		s.log.Error().Err(err).Msg("write notes")
		return
	}
	s.saved = true
}
