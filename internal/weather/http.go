package weather

import (
	"encoding/json"
	"net/http"
	"strconv"
)

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

// GET /api/weather?lat=..&lon=..
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeJSON(w, 405, map[string]any{"error": "method not allowed"})
		return
	}

	var lat, lon *float64
	if ls, lo := r.URL.Query().Get("lat"), r.URL.Query().Get("lon"); ls != "" && lo != "" {
		la, err1 := strconv.ParseFloat(ls, 64)
		ln, err2 := strconv.ParseFloat(lo, 64)
		if err1 != nil || err2 != nil {
			writeJSON(w, 400, map[string]any{"error": "lat and lon must be numbers"})
			return
		}
		lat, lon = &la, &ln
	}

	report, err := h.svc.Current(r.Context(), lat, lon)
	if err != nil {
		writeJSON(w, 502, map[string]any{"error": "unable to fetch weather"})
		return
	}
	writeJSON(w, 200, report)
}
