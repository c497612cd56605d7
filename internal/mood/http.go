package mood

import (
	"encoding/json"
	"net/http"
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

// /api/mood — GET today + trailing week, PUT today's pick.
func (h *Handler) Root(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		writeJSON(w, 200, map[string]any{
			"today": h.repo.Today(),
			"week":  h.repo.Week(),
			"moods": Moods(),
		})

	case http.MethodPut:
		var in struct {
			Mood int `json:"mood"`
		}
		if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
			writeErr(w, 400, "bad json")
			return
		}
		if !ValidMood(in.Mood) {
			writeErr(w, 400, "mood out of range")
			return
		}
		if err := h.repo.Set(in.Mood); err != nil {
			writeErr(w, 500, err.Error())
			return
		}
		writeJSON(w, 200, map[string]any{
			"today": h.repo.Today(),
			"week":  h.repo.Week(),
		})

	default:
		writeErr(w, 405, "method not allowed")
	}
}
