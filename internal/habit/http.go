package habit

import (
	"encoding/json"
	"net/http"
	"strings"
)

type Handler struct {
	repo *FileRepo
}

func NewHandler(repo *FileRepo) *Handler {
	return &Handler{repo: repo}
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

func writeErr(w http.ResponseWriter, code int, msg string) {
	writeJSON(w, code, map[string]any{"error": msg})
}

// /api/habits  (collection)
func (h *Handler) Root(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		writeJSON(w, 200, map[string]any{"habits": h.repo.List()})

	case http.MethodPost:
		var in struct {
			Name string `json:"name"`
		}
		if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
			writeErr(w, 400, "bad json")
			return
		}
		in.Name = strings.TrimSpace(in.Name)
		if in.Name == "" {
			writeErr(w, 400, "name is required")
			return
		}
		created, err := h.repo.Add(in.Name)
		if err != nil {
			writeErr(w, 500, err.Error())
			return
		}
		writeJSON(w, 201, created)

	default:
		writeErr(w, 405, "method not allowed")
	}
}

// /api/habits/{id} and /api/habits/{id}/toggle
func (h *Handler) Sub(w http.ResponseWriter, r *http.Request) {
	tail := strings.Trim(strings.TrimPrefix(r.URL.Path, "/api/habits/"), "/")
	if tail == "" {
		writeErr(w, 404, "not found")
		return
	}
	parts := strings.Split(tail, "/")
	id := parts[0]

	if len(parts) == 1 {
		if r.Method != http.MethodDelete {
			writeErr(w, 405, "method not allowed")
			return
		}
		found, err := h.repo.Delete(id)
		if err != nil {
			writeErr(w, 500, err.Error())
			return
		}
		writeJSON(w, 200, map[string]any{"ok": true, "found": found})
		return
	}

	if len(parts) == 2 && parts[1] == "toggle" {
		if r.Method != http.MethodPost {
			writeErr(w, 405, "method not allowed")
			return
		}
		v, found, err := h.repo.ToggleToday(id)
		if err != nil {
			writeErr(w, 500, err.Error())
			return
		}
		if !found {
			writeJSON(w, 200, map[string]any{"ok": true, "found": false})
			return
		}
		writeJSON(w, 200, v)
		return
	}

	writeErr(w, 404, "not found")
}
