package quote

import (
	"encoding/json"
	"math/rand"
	"os"
	"path/filepath"
	"sync"
	"time"
)

const dayLayout = "2006-01-02"

type Clock interface {
	Now() time.Time
}

type realClock struct{}

func (realClock) Now() time.Time { return time.Now() }

func RealClock() Clock { return realClock{} }

// FileRepo serves the quote of the day. A random pick sticks for the
// whole calendar day; Refresh swaps it for a different one.
type FileRepo struct {
	mu    sync.Mutex
	path  string
	clock Clock
	rng   *rand.Rand

	day   string
	index int
}

func NewFileRepo(dataDir string, clock Clock) (*FileRepo, error) {
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return nil, err
	}
	r := &FileRepo{
		path:  filepath.Join(dataDir, "quote.json"),
		clock: clock,
		rng:   rand.New(rand.NewSource(clock.Now().UnixNano())),
		index: -1,
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
		Date  string `json:"date"`
		Index int    `json:"index"`
	}
	if err := json.Unmarshal(b, &doc); err != nil {
		return err
	}
	if doc.Index >= 0 && doc.Index < len(quotes) {
		r.day = doc.Date
		r.index = doc.Index
	}
	return nil
}

func (r *FileRepo) saveLocked() error {
	doc := struct {
		Date  string `json:"date"`
		Index int    `json:"index"`
	}{Date: r.day, Index: r.index}
	b, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(r.path, b, 0o644)
}

// Today returns the sticky quote for the current day, rolling a fresh
// one when the day changed since the last pick.
func (r *FileRepo) Today() (Quote, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	today := r.clock.Now().Format(dayLayout)
	if r.day == today && r.index >= 0 {
		return quotes[r.index], nil
	}
	r.day = today
	r.index = r.rng.Intn(len(quotes))
	if err := r.saveLocked(); err != nil {
		return Quote{}, err
	}
	return quotes[r.index], nil
}

// Refresh replaces today's quote with a different one.
func (r *FileRepo) Refresh() (Quote, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	today := r.clock.Now().Format(dayLayout)
	next := r.rng.Intn(len(quotes))
	for next == r.index {
		next = r.rng.Intn(len(quotes))
	}
	r.day = today
	r.index = next
	if err := r.saveLocked(); err != nil {
		return Quote{}, err
	}
	return quotes[r.index], nil
}
