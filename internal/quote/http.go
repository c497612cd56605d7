package quote

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

// /api/quote — GET quote of the day, POST rerolls it.
func (h *Handler) Root(w http.ResponseWriter, r *http.Request) {
	var (
		q   Quote
		err error
	)
	switch r.Method {
	case http.MethodGet:
		q, err = h.repo.Today()
	case http.MethodPost:
		q, err = h.repo.Refresh()
	default:
		writeJSON(w, 405, map[string]any{"error": "method not allowed"})
		return
	}
	if err != nil {
		writeJSON(w, 500, map[string]any{"error": err.Error()})
		return
	}
	writeJSON(w, 200, q)
}
