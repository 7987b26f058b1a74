package chat

import (
	"context"
	"errors"
	"log"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/evenlode/parley/backend/internal/model/chat"
	"github.com/evenlode/parley/backend/internal/model/persona"
	"github.com/evenlode/parley/backend/internal/service/completion"
	"github.com/evenlode/parley/backend/internal/service/credential"
)

var (
	ErrPersonaRequired   = errors.New("persona id is required")
	ErrPersonaNotFound   = errors.New("persona not found")
	ErrSessionNotFound   = errors.New("session not found")
	ErrEmptyMessage      = errors.New("message content is required")
	ErrMissingCredential = errors.New("no upstream credential configured")
	ErrRequestInFlight   = errors.New("a request is already in flight for this session")
)

// Service owns conversation state and relays submitted turns upstream.
// Each session's transcript is exclusively owned by the service; at most
// one relay request is in flight per session.
type Service struct {
	mu          sync.Mutex
	personas    persona.Store
	credentials credential.Store
	completions completion.Client
	sessions    map[string]*sessionState
}

// sessionState bundles a session record with its transcript and the
// persona snapshot taken at creation time.
type sessionState struct {
	session    chat.Session
	persona    persona.Persona
	transcript []chat.Turn
}

// NewService bootstraps the in-memory chat service.
func NewService(personas persona.Store, credentials credential.Store, completions completion.Client) *Service {
	return &Service{
		personas:    personas,
		credentials: credentials,
		completions: completions,
		sessions:    make(map[string]*sessionState),
	}
}

// CreateSession provisions a session bound to a persona. The transcript is
// seeded with the persona's opening question as a single assistant turn.
func (s *Service) CreateSession(_ context.Context, personaID string) (chat.Session, error) {
	if personaID == "" {
		return chat.Session{}, ErrPersonaRequired
	}

	record, ok := s.personas.FindByID(personaID)
	if !ok {
		return chat.Session{}, ErrPersonaNotFound
	}

	session := chat.Session{
		ID:        uuid.NewString(),
		PersonaID: record.ID,
		CreatedAt: time.Now().UTC(),
	}

	opening := chat.Turn{
		ID:        uuid.NewString(),
		Role:      chat.RoleAssistant,
		Content:   record.OpeningQuestion,
		CreatedAt: session.CreatedAt,
	}

	s.mu.Lock()
	s.sessions[session.ID] = &sessionState{
		session:    session,
		persona:    record,
		transcript: []chat.Turn{opening},
	}
	s.mu.Unlock()

	return session, nil
}

// Submit appends the user's turn and relays the full transcript upstream.
// On success the assistant's reply is appended and returned. On upstream
// failure the user turn is retained, no assistant turn is added, and the
// error carries the upstream message; the session stays usable.
func (s *Service) Submit(ctx context.Context, sessionID, text string) (chat.Turn, error) {
	content := strings.TrimSpace(text)
	if content == "" {
		return chat.Turn{}, ErrEmptyMessage
	}

	cred, ok := s.credentials.Get()
	if !ok {
		return chat.Turn{}, ErrMissingCredential
	}

	s.mu.Lock()
	state, ok := s.sessions[sessionID]
	if !ok {
		s.mu.Unlock()
		return chat.Turn{}, ErrSessionNotFound
	}
	if state.session.Pending {
		s.mu.Unlock()
		return chat.Turn{}, ErrRequestInFlight
	}

	userTurn := chat.Turn{
		ID:        uuid.NewString(),
		Role:      chat.RoleUser,
		Content:   content,
		CreatedAt: time.Now().UTC(),
	}
	state.transcript = append(state.transcript, userTurn)
	state.session.Pending = true

	messages := buildMessages(state.persona, state.transcript)
	s.mu.Unlock()

	reply, err := s.completions.Complete(ctx, cred, messages)

	s.mu.Lock()
	defer s.mu.Unlock()
	state.session.Pending = false

	if err != nil {
		log.Printf("[relay] completion failed for session=%s persona=%s: %v", sessionID, state.persona.ID, err)
		return chat.Turn{}, err
	}

	assistantTurn := chat.Turn{
		ID:        uuid.NewString(),
		Role:      chat.RoleAssistant,
		Content:   reply,
		CreatedAt: time.Now().UTC(),
	}
	state.transcript = append(state.transcript, assistantTurn)

	log.Printf("[relay] completed turn for session=%s persona=%s length=%d", sessionID, state.persona.ID, len(reply))
	return assistantTurn, nil
}

// GetSession retrieves a session by identifier.
func (s *Service) GetSession(_ context.Context, sessionID string) (chat.Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	state, ok := s.sessions[sessionID]
	if !ok {
		return chat.Session{}, ErrSessionNotFound
	}
	return state.session, nil
}

// Transcript returns a copy of the session's turns in chronological order.
func (s *Service) Transcript(_ context.Context, sessionID string) ([]chat.Turn, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	state, ok := s.sessions[sessionID]
	if !ok {
		return nil, ErrSessionNotFound
	}

	copied := make([]chat.Turn, len(state.transcript))
	copy(copied, state.transcript)
	return copied, nil
}

// buildMessages assembles the upstream payload: the persona's system prompt
// first, then the full transcript in order. No truncation is applied.
func buildMessages(record persona.Persona, transcript []chat.Turn) []completion.ChatMessage {
	messages := make([]completion.ChatMessage, 0, len(transcript)+1)
	messages = append(messages, completion.ChatMessage{Role: "system", Content: record.SystemPrompt})
	for _, turn := range transcript {
		messages = append(messages, completion.ChatMessage{Role: string(turn.Role), Content: turn.Content})
	}
	return messages
}
