package task

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/zaidanavila-beep/daily-focus-hub/internal/model"
)

// fileStore persists the task collection and the day-cleanup marker under two
// fixed keys in the data directory.
type fileStore struct {
	tasksPath  string
	markerPath string
}

type tasksFile struct {
	Tasks []model.Task `json:"tasks"`
}

type markerFile struct {
	LastCleanup string `json:"lastCleanup"`
}

func newFileStore(dataDir string) (*fileStore, error) {
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return nil, err
	}
	return &fileStore{
		tasksPath:  filepath.Join(dataDir, "tasks.json"),
		markerPath: filepath.Join(dataDir, "cleanup.json"),
	}, nil
}

func (f *fileStore) loadTasks() ([]model.Task, error) {
	b, err := os.ReadFile(f.tasksPath)
	if err != nil {
		if os.IsNotExist(err) {
			return []model.Task{}, nil
		}
		return nil, err
	}
	var loaded tasksFile
	if err := json.Unmarshal(b, &loaded); err != nil {
		return nil, err
	}
	if loaded.Tasks == nil {
		loaded.Tasks = []model.Task{}
	}
	return loaded.Tasks, nil
}

func (f *fileStore) saveTasks(tasks []model.Task) error {
	b, err := json.MarshalIndent(tasksFile{Tasks: tasks}, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(f.tasksPath, b, 0o644)
}

func (f *fileStore) loadCleanupDay() (string, error) {
	b, err := os.ReadFile(f.markerPath)
	if err != nil {
		if os.IsNotExist(err) {
			return "", nil
		}
		return "", err
	}
	var loaded markerFile
	if err := json.Unmarshal(b, &loaded); err != nil {
		return "", err
	}
	return loaded.LastCleanup, nil
}

func (f *fileStore) saveCleanupDay(day string) error {
	b, err := json.MarshalIndent(markerFile{LastCleanup: day}, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(f.markerPath, b, 0o644)
}
