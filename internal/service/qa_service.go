package service

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"legalease/internal/domain"
	"legalease/internal/port"
)

// maxSessionTurns caps the retained conversation length per document; the
// oldest turns are dropped first.
const maxSessionTurns = 50

// AskInput is the DTO for Q&A requests.
type AskInput struct {
	Question        string
	DocumentContext string
	DocumentType    domain.DocumentType
	DocumentID      *uuid.UUID
}

// QAService answers questions about documents. Turns for the same document
// are appended to its conversation session in submission order.
type QAService interface {
	Ask(ctx context.Context, input AskInput) (string, error)
	History(documentID uuid.UUID) []domain.ConversationTurn
	Evict(documentID uuid.UUID)
}

type qaService struct {
	generator port.TextGenerator

	mu       sync.Mutex
	sessions map[uuid.UUID]*qaSession
}

type qaSession struct {
	mu    sync.Mutex
	turns []domain.ConversationTurn
}

// NewQAService creates a QAService backed by the given text generator.
func NewQAService(generator port.TextGenerator) QAService {
	return &qaService{
		generator: generator,
		sessions:  make(map[uuid.UUID]*qaSession),
	}
}

func (s *qaService) Ask(ctx context.Context, input AskInput) (string, error) {
	if input.DocumentID == nil {
		return s.generator.Answer(ctx, input.Question, input.DocumentContext, input.DocumentType, nil)
	}

	session := s.session(*input.DocumentID)

	// The session lock serializes turns so history grows in submission
	// order even under concurrent questions for the same document.
	session.mu.Lock()
	defer session.mu.Unlock()

	history := make([]domain.ConversationTurn, len(session.turns))
	copy(history, session.turns)

	answer, err := s.generator.Answer(ctx, input.Question, input.DocumentContext, input.DocumentType, history)
	if err != nil {
		return "", err
	}

	now := time.Now()
	session.turns = append(session.turns,
		domain.ConversationTurn{Role: domain.TurnRoleUser, Content: input.Question, Timestamp: now},
		domain.ConversationTurn{Role: domain.TurnRoleAssistant, Content: answer, Timestamp: now},
	)
	if len(session.turns) > maxSessionTurns {
		session.turns = session.turns[len(session.turns)-maxSessionTurns:]
	}

	return answer, nil
}

func (s *qaService) History(documentID uuid.UUID) []domain.ConversationTurn {
	s.mu.Lock()
	session, ok := s.sessions[documentID]
	s.mu.Unlock()
	if !ok {
		return nil
	}

	session.mu.Lock()
	defer session.mu.Unlock()

	turns := make([]domain.ConversationTurn, len(session.turns))
	copy(turns, session.turns)
	return turns
}

func (s *qaService) Evict(documentID uuid.UUID) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, documentID)
}

func (s *qaService) session(documentID uuid.UUID) *qaSession {
	s.mu.Lock()
	defer s.mu.Unlock()

	session, ok := s.sessions[documentID]
	if !ok {
		session = &qaSession{}
		s.sessions[documentID] = session
	}
	return session
}
