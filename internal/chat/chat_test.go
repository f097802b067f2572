package chat

import (
	"context"
	"strings"
	"testing"

	"github.com/omegapc/omegacms/internal/models"
)

func testService() *Service {
	info := func() models.CompanyInfo {
		return models.CompanyInfo{Phone: "+201000000000", WhatsApp: "+201111111111"}
	}
	return NewService(info, 0)
}

func TestSessionStartsWithWelcome(t *testing.T) {
	s := testService()

	msgs := s.Session("s1")
	if len(msgs) != 1 {
		t.Fatalf("len = %d, want 1", len(msgs))
	}
	if msgs[0].Role != models.ChatRoleModel {
		t.Errorf("role = %q, want model", msgs[0].Role)
	}
	if !strings.Contains(msgs[0].Text, "OMEGA Virtual Assistant") {
		t.Errorf("welcome text = %q", msgs[0].Text)
	}
}

func TestSendAppendsBothSides(t *testing.T) {
	s := testService()

	reply, err := s.Send(context.Background(), "s1", "hello there")
	if err != nil {
		t.Fatalf("Send: %v", err)
	}
	if reply.Role != models.ChatRoleModel {
		t.Errorf("reply role = %q", reply.Role)
	}

	msgs := s.Session("s1")
	if len(msgs) != 3 {
		t.Fatalf("len = %d, want welcome + user + reply", len(msgs))
	}
	if msgs[1].Role != models.ChatRoleUser || msgs[1].Text != "hello there" {
		t.Errorf("msgs[1] = %+v", msgs[1])
	}
	if msgs[2].ID != reply.ID {
		t.Errorf("reply not appended to transcript")
	}
}

func TestQuoteKeywordReply(t *testing.T) {
	s := testService()

	reply, err := s.Send(context.Background(), "s1", "Can I get a PRICE quote?")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(reply.Text, "+201111111111") {
		t.Errorf("quote reply should carry the WhatsApp number: %q", reply.Text)
	}
	if !strings.Contains(reply.Text, "+201000000000") {
		t.Errorf("quote reply should carry the phone number: %q", reply.Text)
	}
}

func TestArabicKeywordReply(t *testing.T) {
	s := testService()

	reply, err := s.Send(context.Background(), "s1", "ما هي تكلفة الفحص؟")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(reply.Text, "WhatsApp") {
		t.Errorf("Arabic cost question should match the quote rule: %q", reply.Text)
	}
}

func TestContactKeywordReply(t *testing.T) {
	s := testService()

	reply, err := s.Send(context.Background(), "s1", "how do I contact you")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(reply.Text, "contact us") {
		t.Errorf("contact reply = %q", reply.Text)
	}
}

func TestFallbackReply(t *testing.T) {
	s := testService()

	reply, err := s.Send(context.Background(), "s1", "tell me a joke")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(reply.Text, "Services page") {
		t.Errorf("fallback reply = %q", reply.Text)
	}
}

func TestSessionsAreIsolated(t *testing.T) {
	s := testService()

	if _, err := s.Send(context.Background(), "a", "hello"); err != nil {
		t.Fatal(err)
	}
	if got := s.Session("b"); len(got) != 1 {
		t.Errorf("session b has %d messages, want only the welcome", len(got))
	}
}

func TestSendCancelledContext(t *testing.T) {
	s := NewService(func() models.CompanyInfo { return models.CompanyInfo{} }, 1e9)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := s.Send(ctx, "s1", "hi"); err == nil {
		t.Error("cancelled context should abort the reply")
	}
}
