package notes

import (
	"encoding/json"
	"net/http"
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

// /api/notes — GET current text, PUT replace, DELETE clear.
func (h *Handler) Root(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		text, saved := h.store.Get()
		writeJSON(w, 200, map[string]any{"text": text, "saved": saved})

	case http.MethodPut:
		var in struct {
			Text string `json:"text"`
		}
		if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
			writeJSON(w, 400, map[string]any{"error": "bad json"})
			return
		}
		h.store.Set(in.Text)
		writeJSON(w, 200, map[string]any{"ok": true})

	case http.MethodDelete:
		h.store.Clear()
		writeJSON(w, 200, map[string]any{"ok": true})

	default:
		writeJSON(w, 405, map[string]any{"error": "method not allowed"})
	}
}
