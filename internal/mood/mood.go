package mood

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sort"
	"sync"
	"time"
)

const dayLayout = "2006-01-02"

// retention is how far back entries are kept. Anything older is pruned
// on the next write.
const retention = 30 * 24 * time.Hour

// Mood is a selectable feeling. Index into Moods() is what gets stored.
type Mood struct {
	Emoji string `json:"emoji"`
	Label string `json:"label"`
}

var moods = []Mood{
	{Emoji: "😊", Label: "Great"},
	{Emoji: "🙂", Label: "Good"},
	{Emoji: "😐", Label: "Okay"},
	{Emoji: "😔", Label: "Low"},
	{Emoji: "😫", Label: "Stressed"},
}

func Moods() []Mood {
	out := make([]Mood, len(moods))
	copy(out, moods)
	return out
}

func ValidMood(idx int) bool {
	return idx >= 0 && idx < len(moods)
}

type Entry struct {
	Date string `json:"date"`
	Mood int    `json:"mood"`
}

// DayView is one slot of the trailing week, oldest first.
type DayView struct {
	Date string `json:"date"`
	Mood *int   `json:"mood"`
}

type Clock interface {
	Now() time.Time
}

type realClock struct{}

func (realClock) Now() time.Time { return time.Now() }

func RealClock() Clock { return realClock{} }

// FileRepo keeps one mood entry per calendar day in mood.json.
type FileRepo struct {
	mu      sync.Mutex
	path    string
	clock   Clock
	entries []Entry
}

func NewFileRepo(dataDir string, clock Clock) (*FileRepo, error) {
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return nil, err
	}
	r := &FileRepo{
		path:  filepath.Join(dataDir, "mood.json"),
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
		Entries []Entry `json:"entries"`
	}
	if err := json.Unmarshal(b, &doc); err != nil {
		return err
	}
	r.entries = doc.Entries
	return nil
}

func (r *FileRepo) saveLocked() error {
	doc := struct {
		Entries []Entry `json:"entries"`
	}{Entries: r.entries}
	b, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(r.path, b, 0o644)
}

// Set records today's mood, replacing any earlier pick for today, and
// prunes entries past the retention window.
func (r *FileRepo) Set(idx int) error {
	if !ValidMood(idx) {
		return nil
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	now := r.clock.Now()
	today := now.Format(dayLayout)
	cutoff := now.Add(-retention).Format(dayLayout)

	kept := r.entries[:0]
	for _, e := range r.entries {
		if e.Date == today || e.Date < cutoff {
			continue
		}
		kept = append(kept, e)
	}
	r.entries = append(kept, Entry{Date: today, Mood: idx})
	sort.Slice(r.entries, func(i, j int) bool { return r.entries[i].Date < r.entries[j].Date })
	return r.saveLocked()
}

// Today returns today's mood index, or nil if none was picked yet.
func (r *FileRepo) Today() *int {
	r.mu.Lock()
	defer r.mu.Unlock()
	today := r.clock.Now().Format(dayLayout)
	for _, e := range r.entries {
		if e.Date == today {
			m := e.Mood
			return &m
		}
	}
	return nil
}

// Week returns the trailing seven days, oldest first, today last.
func (r *FileRepo) Week() []DayView {
	r.mu.Lock()
	defer r.mu.Unlock()

	byDate := make(map[string]int, len(r.entries))
	for _, e := range r.entries {
		byDate[e.Date] = e.Mood
	}

	now := r.clock.Now()
	week := make([]DayView, 0, 7)
	for i := 6; i >= 0; i-- {
		day := now.AddDate(0, 0, -i).Format(dayLayout)
		v := DayView{Date: day}
		if m, ok := byDate[day]; ok {
			mv := m
			v.Mood = &mv
		}
		week = append(week, v)
	}
	return week
}
