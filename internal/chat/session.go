package chat

import (
	"context"
	"errors"
	"strings"
	"sync"
)

var (
	ErrEmptyMessage = errors.New("chat: empty message")
	ErrStreamActive = errors.New("chat: a response is already streaming")
)

// Session holds one conversation. At most one assistant message is in
// progress at a time; a second Send while a stream is active is rejected.
type Session struct {
	mu       sync.Mutex
	client   *Client
	messages []Message
	active   bool
	cancel   context.CancelFunc
}

func NewSession(client *Client) *Session {
	return &Session{client: client}
}

// Messages returns a copy of the conversation so far.
func (s *Session) Messages() []Message {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Message, len(s.messages))
	copy(out, s.messages)
	return out
}

// Cancel aborts any in-flight stream. The pending Send returns with an error
// and retracts its empty placeholder.
func (s *Session) Cancel() {
	s.mu.Lock()
	cancel := s.cancel
	s.mu.Unlock()
	if cancel != nil {
		cancel()
	}
}

// Send appends the user turn and streams the assistant reply, invoking
// onDelta for each fragment so a live view can follow the growing text.
// Blocks until the stream ends. On failure the user turn stays, the empty
// assistant placeholder is retracted, and exactly one error is returned.
func (s *Session) Send(ctx context.Context, text, subject string, onDelta func(string)) (Message, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return Message{}, ErrEmptyMessage
	}

	s.mu.Lock()
	if s.active {
		s.mu.Unlock()
		return Message{}, ErrStreamActive
	}
	ctx, cancel := context.WithCancel(ctx)
	s.active = true
	s.cancel = cancel
	s.messages = append(s.messages,
		Message{Role: RoleUser, Content: text},
		Message{Role: RoleAssistant},
	)
	history := make([]Message, len(s.messages)-1)
	copy(history, s.messages[:len(s.messages)-1])
	s.mu.Unlock()

	defer func() {
		cancel()
		s.mu.Lock()
		s.active = false
		s.cancel = nil
		s.mu.Unlock()
	}()

	_, err := s.client.Stream(ctx, history, subject, func(delta string) {
		s.mu.Lock()
		s.messages[len(s.messages)-1].Content += delta
		s.mu.Unlock()
		if onDelta != nil {
			onDelta(delta)
		}
	})

	s.mu.Lock()
	defer s.mu.Unlock()
	last := len(s.messages) - 1
	if err != nil {
		if s.messages[last].Content == "" {
			s.messages = s.messages[:last]
		}
		return Message{}, err
	}
	return s.messages[last], nil
}
