package task

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/zaidanavila-beep/daily-focus-hub/internal/model"
)

type Handler struct {
	store *Store
}

func NewHandler(store *Store) *Handler {
	return &Handler{store: store}
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

func writeErr(w http.ResponseWriter, code int, msg string) {
	writeJSON(w, code, map[string]any{"error": msg})
}

func decodeJSON(r *http.Request, out any) error {
	return json.NewDecoder(r.Body).Decode(out)
}

// /api/tasks  (collection)
func (h *Handler) TasksRoot(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		writeJSON(w, 200, h.store.List())

	case http.MethodPost:
		var in model.TaskUpsert
		if err := decodeJSON(r, &in); err != nil {
			writeErr(w, 400, "bad json")
			return
		}
		in.Title = strings.TrimSpace(in.Title)
		if in.Title == "" {
			writeErr(w, 400, "title is required")
			return
		}
		if in.StartTime != "" && !model.ValidClockTime(in.StartTime) {
			writeErr(w, 400, "startTime must be HH:MM")
			return
		}
		if in.EndTime != "" && !model.ValidClockTime(in.EndTime) {
			writeErr(w, 400, "endTime must be HH:MM")
			return
		}
		writeJSON(w, 201, h.store.Add(in))

	default:
		writeErr(w, 405, "method not allowed")
	}
}

// /api/tasks/{id} and /api/tasks/{id}/toggle
func (h *Handler) TasksSub(w http.ResponseWriter, r *http.Request) {
	tail := strings.Trim(strings.TrimPrefix(r.URL.Path, "/api/tasks/"), "/")
	if tail == "" {
		writeErr(w, 404, "not found")
		return
	}
	parts := strings.Split(tail, "/")
	id := model.TaskID(parts[0])

	if len(parts) == 1 {
		switch r.Method {
		case http.MethodGet:
			t, ok := h.store.Get(id)
			if !ok {
				writeErr(w, 404, "not found")
				return
			}
			writeJSON(w, 200, t)

		case http.MethodPatch:
			var p Patch
			if err := decodeJSON(r, &p); err != nil {
				writeErr(w, 400, "bad json")
				return
			}
			if p.Title != nil && strings.TrimSpace(*p.Title) == "" {
				writeErr(w, 400, "title is required")
				return
			}
			if p.StartTime != nil && !model.ValidClockTime(*p.StartTime) {
				writeErr(w, 400, "startTime must be HH:MM")
				return
			}
			if p.EndTime != nil && !model.ValidClockTime(*p.EndTime) {
				writeErr(w, 400, "endTime must be HH:MM")
				return
			}
			// Unknown ids are idempotent-safe no-ops, not errors.
			t, found := h.store.Update(id, p)
			if !found {
				writeJSON(w, 200, map[string]any{"ok": true, "found": false})
				return
			}
			writeJSON(w, 200, t)

		case http.MethodDelete:
			found := h.store.Delete(id)
			writeJSON(w, 200, map[string]any{"ok": true, "found": found})

		default:
			writeErr(w, 405, "method not allowed")
		}
		return
	}

	if len(parts) == 2 && parts[1] == "toggle" {
		if r.Method != http.MethodPost {
			writeErr(w, 405, "method not allowed")
			return
		}
		t, found := h.store.ToggleComplete(id)
		if !found {
			writeJSON(w, 200, map[string]any{"ok": true, "found": false})
			return
		}
		writeJSON(w, 200, t)
		return
	}

	writeErr(w, 404, "not found")
}
