package sse

import (
	"context"
	"errors"
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

func receive(t *testing.T, ch chan []byte) string {
	t.Helper()
	select {
	case msg := <-ch:
		return string(msg)
	case <-time.After(time.Second):
		t.Fatal("timeout waiting for message")
		return ""
	}
}

func TestPublishReloaded(t *testing.T) {
	b := NewBroker()
	defer b.Close()
	ch := b.Subscribe()
	defer b.Unsubscribe(ch)

	b.PublishReloaded(42, "abc123")

	s := receive(t, ch)
	if !strings.Contains(s, "event: glossary.reloaded") {
		t.Errorf("missing event type in %q", s)
	}
	if !strings.Contains(s, `"count":42`) || !strings.Contains(s, `"checksum":"abc123"`) {
		t.Errorf("missing data in %q", s)
	}
}

func TestPublishLoadFailed(t *testing.T) {
	b := NewBroker()
	defer b.Close()
	ch := b.Subscribe()
	defer b.Unsubscribe(ch)

	b.PublishLoadFailed(errors.New("row 4: too few columns"))

	s := receive(t, ch)
	if !strings.Contains(s, "event: glossary.load_failed") {
		t.Errorf("missing event type in %q", s)
	}
	if !strings.Contains(s, `"error":"row 4: too few columns"`) {
		t.Errorf("missing data in %q", s)
	}
}

func TestLateSubscriberGetsLastReload(t *testing.T) {
	b := NewBroker()
	defer b.Close()
	first := b.Subscribe()
	defer b.Unsubscribe(first)

	b.PublishReloaded(1, "first")
	b.PublishReloaded(2, "second")
	b.PublishLoadFailed(errors.New("boom"))
	for i := 0; i < 3; i++ {
		receive(t, first)
	}

	ch := b.Subscribe()
	defer b.Unsubscribe(ch)

	s := receive(t, ch)
	if !strings.Contains(s, `"checksum":"second"`) {
		t.Errorf("replayed %q, want latest reload", s)
	}
	select {
	case msg := <-ch:
		t.Errorf("unexpected extra message %q", msg)
	case <-time.After(50 * time.Millisecond):
	}
}

func TestSSEHandler(t *testing.T) {
	b := NewBroker()
	defer b.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	req := httptest.NewRequest(http.MethodGet, "/api/events", nil)
	req = req.WithContext(ctx)
	w := httptest.NewRecorder()

	done := make(chan struct{})
	go func() {
		b.ServeHTTP(w, req)
		close(done)
	}()

	// Give handler time to subscribe.
	time.Sleep(50 * time.Millisecond)
	if b.ClientCount() != 1 {
		t.Fatalf("expected 1 client from handler")
	}

	b.PublishReloaded(3, "x")
	time.Sleep(50 * time.Millisecond)

	cancel()
	<-done

	body := w.Body.String()
	if !strings.Contains(body, "event: glossary.reloaded") {
		t.Errorf("handler output missing event: %q", body)
	}
	if ct := w.Header().Get("Content-Type"); ct != "text/event-stream" {
		t.Errorf("content type = %q", ct)
	}

	time.Sleep(50 * time.Millisecond)
	if b.ClientCount() != 0 {
		t.Errorf("client not cleaned up after disconnect")
	}
}

func TestPublishDropsOnFullBuffer(t *testing.T) {
	b := NewBroker()
	defer b.Close()
	ch := b.Subscribe()
	defer b.Unsubscribe(ch)

	// Fill buffer (capacity 64) and then one more should not block.
	for i := 0; i < 70; i++ {
		b.PublishReloaded(i, "x")
	}
}

func TestCloseClosesSubscribersAndStopsOperations(t *testing.T) {
	b := NewBroker()
	ch := b.Subscribe()
	if b.ClientCount() != 1 {
		t.Fatalf("expected 1 client")
	}

	b.Close()

	select {
	case _, ok := <-ch:
		if ok {
			t.Fatal("expected subscriber channel to be closed")
		}
	case <-time.After(time.Second):
		t.Fatal("timeout waiting for channel close")
	}

	if b.ClientCount() != 0 {
		t.Fatalf("expected 0 clients after close")
	}

	// Should be safe no-op after close.
	b.PublishReloaded(1, "x")
	b.PublishLoadFailed(errors.New("x"))
}
