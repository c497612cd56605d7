package chat

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"sync"

	"github.com/rs/zerolog"
)

// Handler exposes the tutor chat over the same wire shape the browser already
// speaks: an SSE stream of chat-completion delta records ending in [DONE].
type Handler struct {
	log zerolog.Logger

	mu       sync.Mutex
	client   *Client
	sessions map[string]*Session
}

func NewHandler(client *Client, log zerolog.Logger) *Handler {
	return &Handler{
		log:      log,
		client:   client,
		sessions: map[string]*Session{},
	}
}

func (h *Handler) session(id string) *Session {
	id = strings.TrimSpace(id)
	if id == "" {
		id = "default"
	}
	h.mu.Lock()
	defer h.mu.Unlock()
	s, ok := h.sessions[id]
	if !ok {
		s = NewSession(h.client)
		h.sessions[id] = s
	}
	return s
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

func writeErr(w http.ResponseWriter, code int, msg string) {
	writeJSON(w, code, map[string]any{"error": msg})
}

type sendRequest struct {
	Message string `json:"message"`
	Subject string `json:"subject"`
	Session string `json:"session"`
}

// /api/chat — POST a user turn, stream the assistant reply back as SSE.
func (h *Handler) Chat(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeErr(w, 405, "method not allowed")
		return
	}

	var in sendRequest
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		writeErr(w, 400, "bad json")
		return
	}

	flusher, ok := w.(http.Flusher)
	if !ok {
		writeErr(w, 500, "streaming unsupported")
		return
	}

	sess := h.session(in.Session)

	headerSent := false
	sendHeader := func() {
		if headerSent {
			return
		}
		headerSent = true
		w.Header().Set("Content-Type", "text/event-stream")
		w.Header().Set("Cache-Control", "no-cache")
		w.WriteHeader(200)
	}

	_, err := sess.Send(r.Context(), in.Message, in.Subject, func(delta string) {
		sendHeader()
		writeDeltaRecord(w, delta)
		flusher.Flush()
	})
	if err != nil {
		if !headerSent {
			switch {
			case errors.Is(err, ErrEmptyMessage):
				writeErr(w, 400, "message is required")
			case errors.Is(err, ErrStreamActive):
				writeErr(w, 409, "a response is already streaming")
			default:
				h.log.Error().Err(err).Msg("tutor stream failed")
				writeErr(w, 502, err.Error())
			}
			return
		}
		// Mid-stream failure: the connection is all we have left to signal on.
		h.log.Error().Err(err).Msg("tutor stream interrupted")
		return
	}

	sendHeader()
	_, _ = w.Write([]byte("data: [DONE]\n\n"))
	flusher.Flush()
}

// /api/chat/history — GET the conversation for a session.
func (h *Handler) History(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeErr(w, 405, "method not allowed")
		return
	}
	sess := h.session(r.URL.Query().Get("session"))
	writeJSON(w, 200, map[string]any{"messages": sess.Messages()})
}

type outDelta struct {
	Choices []outChoice `json:"choices"`
}

type outChoice struct {
	Delta outContent `json:"delta"`
}

type outContent struct {
	Content string `json:"content"`
}

func writeDeltaRecord(w http.ResponseWriter, delta string) {
	b, err := json.Marshal(outDelta{Choices: []outChoice{{Delta: outContent{Content: delta}}}})
	if err != nil {
		return
	}
	_, _ = w.Write([]byte("data: "))
	_, _ = w.Write(b)
	_, _ = w.Write([]byte("\n\n"))
}
