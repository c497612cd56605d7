package habit

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
)

const dayLayout = "2006-01-02"

// Habit is a named recurring goal. CompletedDates holds the days it was
// checked off, YYYY-MM-DD, unique per day.
type Habit struct {
	ID             string   `json:"id"`
	Name           string   `json:"name"`
	CompletedDates []string `json:"completedDates"`
}

// DayMark is one slot of a habit's trailing week, oldest first.
type DayMark struct {
	Date string `json:"date"`
	Done bool   `json:"done"`
}

// View is a habit plus the derived fields the dashboard renders.
type View struct {
	Habit
	Streak         int       `json:"streak"`
	CompletedToday bool      `json:"completedToday"`
	Week           []DayMark `json:"week"`
}

type Clock interface {
	Now() time.Time
}

type realClock struct{}

func (realClock) Now() time.Time { return time.Now() }

func RealClock() Clock { return realClock{} }

// FileRepo keeps the habit list in habits.json.
type FileRepo struct {
	mu     sync.Mutex
	path   string
	clock  Clock
	habits []Habit
}

func NewFileRepo(dataDir string, clock Clock) (*FileRepo, error) {
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return nil, err
	}
	r := &FileRepo{
		path:  filepath.Join(dataDir, "habits.json"),
		clock: clock,
	}
	if err := r.load(); err != nil {
		return nil, err
	}
	return r, nil
}

func (r *FileRepo) load() error {
	b, err := os.ReadFile(r.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}
	var doc struct {
		Habits []Habit `json:"habits"`
	}
	if err := json.Unmarshal(b, &doc); err != nil {
		return err
	}
	r.habits = doc.Habits
	return nil
}

func (r *FileRepo) saveLocked() error {
	doc := struct {
		Habits []Habit `json:"habits"`
	}{Habits: r.habits}
	b, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(r.path, b, 0o644)
}

// Add creates a habit with no completions yet. The caller validates the
// name; the repo just stores it.
func (r *FileRepo) Add(name string) (Habit, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	h := Habit{
		ID:             uuid.NewString(),
		Name:           name,
		CompletedDates: []string{},
	}
	r.habits = append(r.habits, h)
	if err := r.saveLocked(); err != nil {
		return Habit{}, err
	}
	return h, nil
}

func (r *FileRepo) Delete(id string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, h := range r.habits {
		if h.ID == id {
			r.habits = append(r.habits[:i], r.habits[i+1:]...)
			return true, r.saveLocked()
		}
	}
	return false, nil
}

// ToggleToday checks today off, or unchecks it if it was already done.
// A day is recorded at most once no matter how often it is toggled.
func (r *FileRepo) ToggleToday(id string) (View, bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := r.clock.Now()
	today := now.Format(dayLayout)
	for i := range r.habits {
		if r.habits[i].ID != id {
			continue
		}
		dates := r.habits[i].CompletedDates
		if idx := indexOf(dates, today); idx >= 0 {
			dates = append(dates[:idx], dates[idx+1:]...)
		} else {
			dates = append(dates, today)
		}
		r.habits[i].CompletedDates = dates
		if err := r.saveLocked(); err != nil {
			return View{}, false, err
		}
		return viewOf(r.habits[i], now), true, nil
	}
	return View{}, false, nil
}

// List returns every habit with streak and week marks derived for now.
func (r *FileRepo) List() []View {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := r.clock.Now()
	out := make([]View, 0, len(r.habits))
	for _, h := range r.habits {
		out = append(out, viewOf(h, now))
	}
	return out
}

func viewOf(h Habit, now time.Time) View {
	today := now.Format(dayLayout)
	week := make([]DayMark, 0, 7)
	for i := 6; i >= 0; i-- {
		day := now.AddDate(0, 0, -i).Format(dayLayout)
		week = append(week, DayMark{Date: day, Done: indexOf(h.CompletedDates, day) >= 0})
	}
	v := View{
		Habit:          h,
		Streak:         streakFor(h.CompletedDates, now),
		CompletedToday: indexOf(h.CompletedDates, today) >= 0,
		Week:           week,
	}
	v.CompletedDates = append([]string{}, h.CompletedDates...)
	sort.Strings(v.CompletedDates)
	return v
}

// streakFor counts consecutive completed days ending today, or ending
// yesterday when today has not been checked off yet. A habit last done
// two or more days ago has no live streak.
func streakFor(dates []string, now time.Time) int {
	done := make(map[string]bool, len(dates))
	for _, d := range dates {
		done[d] = true
	}

	day := now
	if !done[day.Format(dayLayout)] {
		day = day.AddDate(0, 0, -1)
		if !done[day.Format(dayLayout)] {
			return 0
		}
	}

	streak := 0
	for done[day.Format(dayLayout)] {
		streak++
		day = day.AddDate(0, 0, -1)
	}
	return streak
}

func indexOf(dates []string, day string) int {
	for i, d := range dates {
		if d == day {
			return i
		}
	}
	return -1
}
