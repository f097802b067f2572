package sse

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

func TestSubscribeUnsubscribe(t *testing.T) {
	b := NewBroker()
	defer b.Close()
	if b.ClientCount() != 0 {
		t.Fatalf("expected 0 clients")
	}
	ch := b.Subscribe()
	if b.ClientCount() != 1 {
		t.Fatalf("expected 1 client")
	}
	b.Unsubscribe(ch)
	if b.ClientCount() != 0 {
		t.Fatalf("expected 0 clients after unsub")
	}
}

func TestPublishDelivery(t *testing.T) {
	b := NewBroker()
	defer b.Close()
	ch := b.Subscribe()
	defer b.Unsubscribe(ch)

	b.Publish(Event{Type: "services.updated", Data: map[string]string{"collection": "services"}})

	select {
	case msg := <-ch:
		s := string(msg)
		if !strings.Contains(s, "event: services.updated") {
			t.Errorf("missing event type in %q", s)
		}
		if !strings.Contains(s, `"collection":"services"`) {
			t.Errorf("missing data in %q", s)
		}
	case <-time.After(time.Second):
		t.Fatal("timeout waiting for message")
	}
}

func TestPublishContentEvent(t *testing.T) {
	b := NewBroker()
	defer b.Close()
	ch := b.Subscribe()
	defer b.Unsubscribe(ch)

	b.PublishContentEvent("blog", "created")

	select {
	case msg := <-ch:
		if !strings.Contains(string(msg), "event: blog.created") {
			t.Errorf("unexpected message %q", msg)
		}
	case <-time.After(time.Second):
		t.Fatal("timeout waiting for message")
	}
}

func TestPublishAfterClose(t *testing.T) {
	b := NewBroker()
	b.Close()

	// Must not panic or block.
	b.Publish(Event{Type: "noop"})
	b.PublishContentEvent("services", "updated")
	if b.ClientCount() != 0 {
		t.Error("closed broker should report 0 clients")
	}

	ch := b.Subscribe()
	if _, ok := <-ch; ok {
		t.Error("subscribe after close should return a closed channel")
	}
}

func TestServeHTTPStreams(t *testing.T) {
	b := NewBroker()
	defer b.Close()

	ctx, cancel := context.WithCancel(context.Background())
	req := httptest.NewRequest(http.MethodGet, "/events", nil).WithContext(ctx)
	rec := httptest.NewRecorder()

	done := make(chan struct{})
	go func() {
		b.ServeHTTP(rec, req)
		close(done)
	}()

	// Wait for the handler to register its subscription, then publish.
	for i := 0; i < 100 && b.ClientCount() == 0; i++ {
		time.Sleep(5 * time.Millisecond)
	}
	b.PublishContentEvent("projects", "updated")

	time.Sleep(100 * time.Millisecond)
	cancel()
	<-done

	if ct := rec.Header().Get("Content-Type"); ct != "text/event-stream" {
		t.Errorf("Content-Type = %q", ct)
	}
	if !strings.Contains(rec.Body.String(), "event: projects.updated") {
		t.Errorf("body = %q", rec.Body.String())
	}
}
