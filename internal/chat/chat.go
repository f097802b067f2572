// Package chat implements the site chat widget's canned-response assistant.
// Transcripts live only in memory for the lifetime of a session; nothing is
// persisted.
package chat

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/omegapc/omegacms/internal/models"
)

const welcomeText = "Hello! I am the OMEGA Virtual Assistant. How can I help you with our inspection or construction services today?"

// InfoFunc supplies the current company profile so replies always quote the
// live contact details, not a snapshot taken at startup.
type InfoFunc func() models.CompanyInfo

// Service answers visitor messages with keyword-matched canned replies.
type Service struct {
	info       InfoFunc
	thinkDelay time.Duration

	mu       sync.Mutex
	sessions map[string][]models.ChatMessage
}

// NewService creates the assistant. thinkDelay simulates the model composing
// a reply; zero disables it (tests).
func NewService(info InfoFunc, thinkDelay time.Duration) *Service {
	return &Service{
		info:       info,
		thinkDelay: thinkDelay,
		sessions:   make(map[string][]models.ChatMessage),
	}
}

// Session returns the transcript for id, creating it with the welcome
// message on first use.
func (s *Service) Session(id string) []models.ChatMessage {
	s.mu.Lock()
	defer s.mu.Unlock()
	msgs, ok := s.sessions[id]
	if !ok {
		msgs = []models.ChatMessage{{
			ID:        "welcome",
			Role:      models.ChatRoleModel,
			Text:      welcomeText,
			Timestamp: time.Now(),
		}}
		s.sessions[id] = msgs
	}
	out := make([]models.ChatMessage, len(msgs))
	copy(out, msgs)
	return out
}

// Send appends the visitor message, composes a reply after the thinking
// delay, appends it, and returns it.
func (s *Service) Send(ctx context.Context, sessionID, text string) (models.ChatMessage, error) {
	now := time.Now()
	userMsg := models.ChatMessage{
		ID:        uuid.NewString(),
		Role:      models.ChatRoleUser,
		Text:      text,
		Timestamp: now,
	}

	s.mu.Lock()
	if _, ok := s.sessions[sessionID]; !ok {
		s.sessions[sessionID] = []models.ChatMessage{{
			ID:        "welcome",
			Role:      models.ChatRoleModel,
			Text:      welcomeText,
			Timestamp: now,
		}}
	}
	s.sessions[sessionID] = append(s.sessions[sessionID], userMsg)
	s.mu.Unlock()

	if s.thinkDelay > 0 {
		timer := time.NewTimer(s.thinkDelay)
		defer timer.Stop()
		select {
		case <-timer.C:
		case <-ctx.Done():
			return models.ChatMessage{}, ctx.Err()
		}
	}

	reply := models.ChatMessage{
		ID:        uuid.NewString(),
		Role:      models.ChatRoleModel,
		Text:      s.compose(text),
		Timestamp: time.Now(),
	}

	s.mu.Lock()
	s.sessions[sessionID] = append(s.sessions[sessionID], reply)
	s.mu.Unlock()

	return reply, nil
}

// compose picks a canned reply by keyword. Rules match both English and
// Arabic phrasing, as the site serves both audiences.
func (s *Service) compose(text string) string {
	t := strings.ToLower(text)
	info := s.info()

	quoteWords := []string{"quote", "price", "cost", "عرض", "سعر", "تكلفة"}
	contactWords := []string{"whatsapp", "phone", "contact", "call", "واتس", "اتصال"}

	switch {
	case containsAny(t, quoteWords):
		return "For a quotation, please reach us on WhatsApp: " + info.WhatsApp +
			" or by phone: " + info.Phone + "."
	case containsAny(t, contactWords):
		return "You can contact us on WhatsApp: " + info.WhatsApp +
			" or by phone: " + info.Phone + "."
	default:
		return "I can help with questions about our services, quotations, and contact details. " +
			"Please visit the Services page or get in touch with our team."
	}
}

func containsAny(text string, words []string) bool {
	for _, w := range words {
		if strings.Contains(text, w) {
			return true
		}
	}
	return false
}
