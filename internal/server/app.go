package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/a-h/templ"
	"github.com/rs/zerolog"

	"github.com/zaidanavila-beep/daily-focus-hub/internal/chat"
	"github.com/zaidanavila-beep/daily-focus-hub/internal/config"
	"github.com/zaidanavila-beep/daily-focus-hub/internal/habit"
	"github.com/zaidanavila-beep/daily-focus-hub/internal/httpmw"
	"github.com/zaidanavila-beep/daily-focus-hub/internal/mood"
	"github.com/zaidanavila-beep/daily-focus-hub/internal/notes"
	"github.com/zaidanavila-beep/daily-focus-hub/internal/pet"
	"github.com/zaidanavila-beep/daily-focus-hub/internal/quote"
	"github.com/zaidanavila-beep/daily-focus-hub/internal/streak"
	"github.com/zaidanavila-beep/daily-focus-hub/internal/task"
	"github.com/zaidanavila-beep/daily-focus-hub/internal/weather"
	staticfiles "github.com/zaidanavila-beep/daily-focus-hub/static"
)

type Options struct {
	Config        *config.Config
	Log           zerolog.Logger
	StaticDir     string
	UseDiskStatic bool
}

// App owns the wired HTTP surface plus the background pieces that need
// an orderly shutdown.
type App struct {
	handler http.Handler
	tasks   *task.Store
	notes   *notes.Store
}

func New(opts Options) (*App, error) {
	if opts.Config == nil {
		return nil, errors.New("config is required")
	}
	if strings.TrimSpace(opts.StaticDir) == "" {
		opts.StaticDir = "static"
	}
	dataDir := opts.Config.Server.DataDir
	log := opts.Log

	mux := http.NewServeMux()
	rr := &RouteRegistry{}

	staticHandler := http.FileServer(http.FS(staticfiles.EmbeddedFS()))
	if opts.UseDiskStatic {
		staticHandler = http.FileServer(http.Dir(opts.StaticDir))
	}
	mux.Handle("/static/", http.StripPrefix("/static/", staticHandler))

	taskStore, err := task.NewStore(filepath.Join(dataDir, "tasks"), task.RealClock{}, log)
	if err != nil {
		return nil, err
	}
	taskStore.Start()
	taskHandler := task.NewHandler(taskStore)
	handle(mux, rr, "/api/tasks", "GET,POST", "list today's tasks / create a task", taskHandler.TasksRoot)
	handle(mux, rr, "/api/tasks/", "GET,PATCH,DELETE,POST", "read, edit, delete or toggle one task", taskHandler.TasksSub)

	chatClient := chat.NewClient(opts.Config.Chat.Endpoint, opts.Config.Chat.APIKey, opts.Config.Chat.Timeout.Std())
	chatHandler := chat.NewHandler(chatClient, log)
	handle(mux, rr, "/api/chat", "POST", "send a tutor message, streamed back as SSE", chatHandler.Chat)
	handle(mux, rr, "/api/chat/history", "GET", "conversation history for a session", chatHandler.History)

	petRepo, err := pet.NewFileRepo(filepath.Join(dataDir, "pet"))
	if err != nil {
		return nil, err
	}
	petHandler := pet.NewHandler(petRepo)
	handle(mux, rr, "/api/pet", "GET,PATCH", "companion state, rename or change type", petHandler.Root)
	handle(mux, rr, "/api/pet/", "POST", "xp, buy, equip, unequip", petHandler.Sub)

	moodRepo, err := mood.NewFileRepo(filepath.Join(dataDir, "mood"), mood.RealClock())
	if err != nil {
		return nil, err
	}
	handle(mux, rr, "/api/mood", "GET,PUT", "today's mood and the trailing week", mood.NewHandler(moodRepo).Root)

	streakRepo, err := streak.NewFileRepo(filepath.Join(dataDir, "streak"), streak.RealClock())
	if err != nil {
		return nil, err
	}
	streakHandler := streak.NewHandler(streakRepo)
	handle(mux, rr, "/api/streak", "GET", "visit streak counters", streakHandler.Get)
	handle(mux, rr, "/api/streak/visit", "POST", "record today's visit", streakHandler.Visit)

	habitRepo, err := habit.NewFileRepo(filepath.Join(dataDir, "habits"), habit.RealClock())
	if err != nil {
		return nil, err
	}
	habitHandler := habit.NewHandler(habitRepo)
	handle(mux, rr, "/api/habits", "GET,POST", "list habits with streaks / create a habit", habitHandler.Root)
	handle(mux, rr, "/api/habits/", "DELETE,POST", "delete one habit or toggle today's check", habitHandler.Sub)

	noteStore, err := notes.NewStore(filepath.Join(dataDir, "notes"), log)
	if err != nil {
		return nil, err
	}
	handle(mux, rr, "/api/notes", "GET,PUT,DELETE", "quick-notes scratchpad", notes.NewHandler(noteStore).Root)

	quoteRepo, err := quote.NewFileRepo(filepath.Join(dataDir, "quote"), quote.RealClock())
	if err != nil {
		return nil, err
	}
	handle(mux, rr, "/api/quote", "GET,POST", "quote of the day, POST rerolls", quote.NewHandler(quoteRepo).Root)

	weatherSvc, err := weather.NewService(
		filepath.Join(dataDir, "weather"),
		log,
		weather.WithCacheTTL(opts.Config.Weather.CacheTTL.Std()),
	)
	if err != nil {
		return nil, err
	}
	handle(mux, rr, "/api/weather", "GET", "current conditions for lat/lon", weather.NewHandler(weatherSvc).Get)

	mux.HandleFunc("/api/routes", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			w.WriteHeader(http.StatusMethodNotAllowed)
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{"routes": rr.List()})
	})

	mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			w.WriteHeader(http.StatusMethodNotAllowed)
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{
			"ok":      true,
			"service": "daily-focus-hub",
			"time":    time.Now().UTC().Format(time.RFC3339),
		})
	})

	mux.HandleFunc("/readyz", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			w.WriteHeader(http.StatusMethodNotAllowed)
			return
		}
		_ = taskStore.List()
		writeJSON(w, http.StatusOK, map[string]any{
			"ok":      true,
			"service": "daily-focus-hub",
			"time":    time.Now().UTC().Format(time.RFC3339),
		})
	})

	mux.Handle("/", templ.Handler(dashboardPage()))

	return &App{
		handler: httpmw.Chain(
			mux,
			httpmw.WithAccessLog(log),
			httpmw.WithRequestID,
			httpmw.WithRecover(log),
		),
		tasks: taskStore,
		notes: noteStore,
	}, nil
}

func (a *App) Handler() http.Handler { return a.handler }

// Close stops the midnight rollover scheduler and flushes any pending
// notes write.
func (a *App) Close() {
	a.tasks.Stop()
	a.notes.Flush()
}

func UseDiskStaticByEnv() bool {
	switch strings.ToLower(strings.TrimSpace(os.Getenv("FOCUSHUB_DEV_STATIC"))) {
	case "1", "true", "yes":
		return true
	default:
		return false
	}
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}
