package task

import (
	"strings"
	"sync"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/zaidanavila-beep/daily-focus-hub/internal/model"
)

const dayLayout = "2006-01-02"

// Patch represents a partial update. nil pointer => "no change".
type Patch struct {
	Title       *string `json:"title,omitempty"`
	Description *string `json:"description,omitempty"`
	StartTime   *string `json:"startTime,omitempty"`
	EndTime     *string `json:"endTime,omitempty"`
	Category    *string `json:"category,omitempty"`
	Completed   *bool   `json:"completed,omitempty"`
}

// Store is the single authoritative collection of tasks for the current day.
// All mutations funnel through it; persistence is best-effort and never
// corrupts the in-memory collection (memory stays authoritative for the
// running session, write failures are logged).
type Store struct {
	mu         sync.RWMutex
	clock      Clock
	log        zerolog.Logger
	file       *fileStore
	tasks      []model.Task
	cleanupDay string

	stopOnce sync.Once
	stop     chan struct{}
}

// NewStore loads the persisted task list and runs the day-rollover purge if
// the stored cleanup marker is not today.
func NewStore(dataDir string, clock Clock, log zerolog.Logger) (*Store, error) {
	file, err := newFileStore(dataDir)
	if err != nil {
		return nil, err
	}

	tasks, err := file.loadTasks()
	if err != nil {
		return nil, err
	}
	marker, err := file.loadCleanupDay()
	if err != nil {
		return nil, err
	}

	s := &Store{
		clock:      clock,
		log:        log,
		file:       file,
		tasks:      tasks,
		cleanupDay: marker,
		stop:       make(chan struct{}),
	}

	today := s.clock.Now().Format(dayLayout)
	if s.cleanupDay != today {
		s.mu.Lock()
		s.purgeLocked(today)
		s.mu.Unlock()
	}
	return s, nil
}

// Add assigns a fresh id, stamps today's date and appends the task. Title
// validation is the caller's job.
func (s *Store) Add(in model.TaskUpsert) model.Task {
	s.mu.Lock()
	defer s.mu.Unlock()

	cat, ok := model.ParseCategory(in.Category)
	if !ok {
		cat = model.CategoryPersonal
	}

	t := model.Task{
		ID:          model.TaskID(uuid.NewString()),
		Title:       in.Title,
		Description: in.Description,
		StartTime:   in.StartTime,
		EndTime:     in.EndTime,
		Category:    cat,
		Completed:   false,
		Date:        s.clock.Now().Format(dayLayout),
	}
	s.tasks = append(s.tasks, t)
	s.persistLocked()
	return t
}

// Update merges partial fields into the matching task. Unknown id is a
// silent no-op (found=false).
func (s *Store) Update(id model.TaskID, p Patch) (model.Task, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.tasks {
		if s.tasks[i].ID != id {
			continue
		}
		t := &s.tasks[i]
		if p.Title != nil {
			t.Title = *p.Title
		}
		if p.Description != nil {
			t.Description = *p.Description
		}
		if p.StartTime != nil {
			t.StartTime = *p.StartTime
		}
		if p.EndTime != nil {
			t.EndTime = *p.EndTime
		}
		if p.Category != nil {
			if cat, ok := model.ParseCategory(*p.Category); ok {
				t.Category = cat
			}
		}
		if p.Completed != nil {
			t.Completed = *p.Completed
		}
		s.persistLocked()
		return *t, true
	}
	return model.Task{}, false
}

// Delete removes the matching task. Unknown id is a silent no-op.
func (s *Store) Delete(id model.TaskID) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.tasks {
		if s.tasks[i].ID == id {
			s.tasks = append(s.tasks[:i], s.tasks[i+1:]...)
			s.persistLocked()
			return true
		}
	}
	return false
}

// ToggleComplete flips the completed flag on the matching task.
func (s *Store) ToggleComplete(id model.TaskID) (model.Task, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.tasks {
		if s.tasks[i].ID == id {
			s.tasks[i].Completed = !s.tasks[i].Completed
			s.persistLocked()
			return s.tasks[i], true
		}
	}
	return model.Task{}, false
}

// Get returns a copy of the matching task.
func (s *Store) Get(id model.TaskID) (model.Task, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, t := range s.tasks {
		if t.ID == id {
			return t, true
		}
	}
	return model.Task{}, false
}

// List returns a copy of today's tasks sorted by start time, insertion order
// breaking ties.
func (s *Store) List() []model.Task {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]model.Task, len(s.tasks))
	copy(out, s.tasks)
	for i := 1; i < len(out); i++ {
		for j := i; j > 0 && out[j].StartTime < out[j-1].StartTime; j-- {
			out[j], out[j-1] = out[j-1], out[j]
		}
	}
	return out
}

// CleanupDay returns the last day the purge ran (YYYY-MM-DD).
func (s *Store) CleanupDay() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.cleanupDay
}

// purgeLocked drops every task whose date is strictly before today and moves
// the cleanup marker forward. Date-only comparison; YYYY-MM-DD strings order
// lexicographically.
func (s *Store) purgeLocked(today string) {
	kept := s.tasks[:0]
	removed := 0
	for _, t := range s.tasks {
		if strings.TrimSpace(t.Date) < today {
			removed++
			continue
		}
		kept = append(kept, t)
	}
	s.tasks = kept
	s.cleanupDay = today
	if removed > 0 {
		s.log.Info().Int("removed", removed).Str("day", today).Msg("purged stale tasks")
	}
	s.persistLocked()
	if err := s.file.saveCleanupDay(today); err != nil {
		s.log.Error().Err(err).Msg("persist cleanup marker failed")
	}
}

func (s *Store) persistLocked() {
	if err := s.file.saveTasks(s.tasks); err != nil {
		s.log.Error().Err(err).Msg("persist tasks failed")
	}
}
