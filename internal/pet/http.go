package pet

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

// /api/pet — GET state, PATCH name/type.
func (h *Handler) Root(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		writeJSON(w, 200, map[string]any{
			"pet":       h.repo.Get(),
			"catalogue": Catalogue(),
			"types":     Types(),
		})

	case http.MethodPatch:
		var in struct {
			Name *string `json:"name"`
			Type *string `json:"type"`
		}
		if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
			writeErr(w, 400, "bad json")
			return
		}
		p := h.repo.Get()
		var err error
		if in.Name != nil {
			if p, err = h.repo.Rename(*in.Name); err != nil {
				writeErr(w, 500, err.Error())
				return
			}
		}
		if in.Type != nil {
			if p, err = h.repo.SetType(*in.Type); err != nil {
				writeErr(w, 500, err.Error())
				return
			}
		}
		writeJSON(w, 200, p)

	default:
		writeErr(w, 405, "method not allowed")
	}
}

// /api/pet/{xp|buy|equip|unequip}
func (h *Handler) Sub(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeErr(w, 405, "method not allowed")
		return
	}
	action := strings.Trim(strings.TrimPrefix(r.URL.Path, "/api/pet/"), "/")

	switch action {
	case "xp":
		var in struct {
			Amount int `json:"amount"`
		}
		if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
			writeErr(w, 400, "bad json")
			return
		}
		if in.Amount <= 0 {
			writeErr(w, 400, "amount must be positive")
			return
		}
		p, err := h.repo.AddXP(in.Amount)
		if err != nil {
			writeErr(w, 500, err.Error())
			return
		}
		writeJSON(w, 200, p)

	case "buy":
		var in struct {
			Item string `json:"item"`
		}
		if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
			writeErr(w, 400, "bad json")
			return
		}
		bought, p, err := h.repo.Buy(in.Item)
		if err != nil {
			writeErr(w, 500, err.Error())
			return
		}
		writeJSON(w, 200, map[string]any{"bought": bought, "pet": p})

	case "equip", "unequip":
		var in struct {
			Item string `json:"item"`
		}
		if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
			writeErr(w, 400, "bad json")
			return
		}
		var (
			p   Pet
			err error
		)
		if action == "equip" {
			p, err = h.repo.Equip(in.Item)
		} else {
			p, err = h.repo.Unequip(in.Item)
		}
		if err != nil {
			writeErr(w, 500, err.Error())
			return
		}
		writeJSON(w, 200, p)

	default:
		writeErr(w, 404, "not found")
	}
}
