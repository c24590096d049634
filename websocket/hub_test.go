package websocket

import (
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func commentEvent(target string) WebSocketMessage {
	return WebSocketMessage{
		Type:      MessageTypeCommentCreated,
		Payload:   map[string]string{"body": "lovely light in this one"},
		Timestamp: time.Now(),
		Target:    target,
	}
}

func TestHubEvictsStalledClientDuringConcurrentBroadcasts(t *testing.T) {
	hub := NewHub()
	go hub.Run()

	// Unbuffered Send with no reader: every delivery attempt hits the
	// full-buffer path.
	stalled := &Client{ID: uuid.New(), Hub: hub, Send: make(chan WebSocketMessage)}
	healthy := &Client{ID: uuid.New(), Hub: hub, Send: make(chan WebSocketMessage, 256)}
	hub.register <- stalled
	hub.register <- healthy

	require.Eventually(t, func() bool {
		return hub.GetClientCount() == 2
	}, time.Second, 5*time.Millisecond)

	target := "gallery:" + uuid.NewString()

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			hub.BroadcastToTarget(target, commentEvent(target))
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, hub.GetClientCount())

	select {
	case _, open := <-stalled.Send:
		assert.False(t, open, "stalled client's send channel should be closed")
	case <-time.After(time.Second):
		t.Fatal("stalled client's send channel was not closed")
	}
}

func TestHubBroadcastToTargetRespectsWatchFilter(t *testing.T) {
	hub := NewHub()
	go hub.Run()

	galleryTarget := "gallery:" + uuid.NewString()
	imageTarget := "image:" + uuid.NewString()

	watcher := &Client{ID: uuid.New(), Hub: hub, Send: make(chan WebSocketMessage, 4)}
	watcher.WatchTarget(galleryTarget)
	everything := &Client{ID: uuid.New(), Hub: hub, Send: make(chan WebSocketMessage, 4)}
	hub.register <- watcher
	hub.register <- everything

	require.Eventually(t, func() bool {
		return hub.GetClientCount() == 2
	}, time.Second, 5*time.Millisecond)

	hub.BroadcastToTarget(imageTarget, commentEvent(imageTarget))
	hub.BroadcastToTarget(galleryTarget, commentEvent(galleryTarget))

	// Filtered client only sees its gallery.
	msg := <-watcher.Send
	assert.Equal(t, galleryTarget, msg.Target)
	assert.Empty(t, watcher.Send)

	// Unfiltered client sees both.
	first := <-everything.Send
	second := <-everything.Send
	assert.Equal(t, imageTarget, first.Target)
	assert.Equal(t, galleryTarget, second.Target)
}
