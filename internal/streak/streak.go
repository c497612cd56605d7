package streak

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sync"
	"time"
)

const dayLayout = "2006-01-02"

// Streak tracks consecutive days the planner was opened.
type Streak struct {
	Current   int    `json:"currentStreak"`
	Longest   int    `json:"longestStreak"`
	LastVisit string `json:"lastVisit"`
	TotalDays int    `json:"totalDays"`
}

type Clock interface {
	Now() time.Time
}

type realClock struct{}

func (realClock) Now() time.Time { return time.Now() }

func RealClock() Clock { return realClock{} }

type FileRepo struct {
	mu     sync.Mutex
	path   string
	clock  Clock
	streak Streak
}

func NewFileRepo(dataDir string, clock Clock) (*FileRepo, error) {
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return nil, err
	}
	r := &FileRepo{
		path:  filepath.Join(dataDir, "streak.json"),
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
	return json.Unmarshal(b, &r.streak)
}

func (r *FileRepo) saveLocked() error {
	b, err := json.MarshalIndent(r.streak, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(r.path, b, 0o644)
}

func (r *FileRepo) Get() Streak {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.streak
}

// RecordVisit marks today as visited. A repeat visit on the same day is
// a no-op; the day after the last visit extends the streak; any longer
// gap resets it to 1. TotalDays counts distinct visit days.
func (r *FileRepo) RecordVisit() (Streak, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	today := r.clock.Now().Format(dayLayout)
	if r.streak.LastVisit == today {
		return r.streak, nil
	}

	if r.streak.LastVisit == "" {
		r.streak = Streak{Current: 1, Longest: 1, LastVisit: today, TotalDays: 1}
	} else if isYesterday(r.streak.LastVisit, today) {
		r.streak.Current++
		if r.streak.Current > r.streak.Longest {
			r.streak.Longest = r.streak.Current
		}
		r.streak.LastVisit = today
		r.streak.TotalDays++
	} else {
		r.streak.Current = 1
		if r.streak.Longest < 1 {
			r.streak.Longest = 1
		}
		r.streak.LastVisit = today
		r.streak.TotalDays++
	}

	if err := r.saveLocked(); err != nil {
		return Streak{}, err
	}
	return r.streak, nil
}

func isYesterday(last, today string) bool {
	t, err := time.ParseInLocation(dayLayout, last, time.Local)
	if err != nil {
		return false
	}
	return t.AddDate(0, 0, 1).Format(dayLayout) == today
}

// Message is the encouragement line shown next to the flame.
func (s Streak) Message() string {
	switch {
	case s.Current >= 30:
		return "Unstoppable! 🔥"
	case s.Current >= 14:
		return "On fire! 🚀"
	case s.Current >= 7:
		return "Great week! ⭐"
	case s.Current >= 3:
		return "Building momentum! 💪"
	default:
		return "Keep going! 🌱"
	}
}
