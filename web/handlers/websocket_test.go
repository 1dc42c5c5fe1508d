package handlers_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/brookeadam/vms-helper/web/handlers"
)

func TestPreviewHub_ValidatesOrigin(t *testing.T) {
	hub := handlers.NewPreviewHub(nil, []string{"localhost:8484", "127.0.0.1:8484"})
	defer hub.Stop()

	req := httptest.NewRequest("GET", "/ws/preview", nil)
	req.Header.Set("Origin", "http://evil.com")
	req.Header.Set("Connection", "Upgrade")
	req.Header.Set("Upgrade", "websocket")
	req.Header.Set("Sec-WebSocket-Version", "13")
	req.Header.Set("Sec-WebSocket-Key", "dGhlIHNhbXBsZSBub25jZQ==")

	w := httptest.NewRecorder()
	hub.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Contains(t, w.Body.String(), "Forbidden")
}

func TestPreviewHub_Broadcast(t *testing.T) {
	hub := handlers.NewPreviewHub(nil, nil)
	go hub.Run()
	defer hub.Stop()

	received := make(chan []byte, 1)
	mockClient := &handlers.MockClient{SendChan: received}

	hub.Register(mockClient)

	// Give the hub time to register the client
	time.Sleep(10 * time.Millisecond)

	hub.Broadcast(handlers.PreviewMessage{
		Type:     "preview",
		Sentence: "I provided volunteer service.",
	})

	select {
	case msg := <-received:
		assert.Contains(t, string(msg), "preview")
		assert.Contains(t, string(msg), "volunteer service")
	case <-time.After(1 * time.Second):
		t.Fatal("Timeout waiting for broadcast message")
	}
}

func TestPreviewHub_SlowClientDropped(t *testing.T) {
	hub := handlers.NewPreviewHub(nil, nil)
	go hub.Run()
	defer hub.Stop()

	// Unbuffered channel with no reader simulates a stalled client.
	stalled := &handlers.MockClient{SendChan: make(chan []byte)}
	healthy := &handlers.MockClient{SendChan: make(chan []byte, 4)}

	hub.Register(stalled)
	hub.Register(healthy)
	time.Sleep(10 * time.Millisecond)

	hub.Broadcast(handlers.PreviewMessage{Type: "preview", Sentence: "first"})
	time.Sleep(10 * time.Millisecond)
	hub.Broadcast(handlers.PreviewMessage{Type: "preview", Sentence: "second"})

	select {
	case msg := <-healthy.SendChan:
		assert.Contains(t, string(msg), "first")
	case <-time.After(1 * time.Second):
		t.Fatal("Timeout waiting for healthy client delivery")
	}
}
