package events_test

import (
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vitorsp/perfboard/internal/events"
)

func dial(t *testing.T, srv *httptest.Server) *websocket.Conn {
	url := "ws" + strings.TrimPrefix(srv.URL, "http")
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	return conn
}

func waitForClients(t *testing.T, hub *events.Hub, want int) {
	deadline := time.After(2 * time.Second)
	for hub.ClientCount() != want {
		select {
		case <-deadline:
			t.Fatalf("expected %d clients, have %d", want, hub.ClientCount())
		case <-time.After(10 * time.Millisecond):
		}
	}
}

func TestHub_BroadcastsToConnectedClients(t *testing.T) {
	hub := events.NewHub()
	srv := httptest.NewServer(hub)
	defer srv.Close()

	conn := dial(t, srv)
	defer conn.Close()
	waitForClients(t, hub, 1)

	hub.Publish(events.Event{
		Type: events.TypeImportFinished,
		Data: map[string]any{"imported": 3},
	})

	require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))
	var got events.Event
	require.NoError(t, conn.ReadJSON(&got))

	assert.Equal(t, events.TypeImportFinished, got.Type)
	assert.EqualValues(t, 3, got.Data["imported"])
	assert.NotZero(t, got.Timestamp)
}

func TestHub_MultipleClients(t *testing.T) {
	hub := events.NewHub()
	srv := httptest.NewServer(hub)
	defer srv.Close()

	first := dial(t, srv)
	defer first.Close()
	second := dial(t, srv)
	defer second.Close()
	waitForClients(t, hub, 2)

	hub.Publish(events.Event{Type: events.TypePreferenceChanged})

	for _, conn := range []*websocket.Conn{first, second} {
		require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))
		var got events.Event
		require.NoError(t, conn.ReadJSON(&got))
		assert.Equal(t, events.TypePreferenceChanged, got.Type)
	}
}

func TestHub_RemovesDisconnectedClients(t *testing.T) {
	hub := events.NewHub()
	srv := httptest.NewServer(hub)
	defer srv.Close()

	conn := dial(t, srv)
	waitForClients(t, hub, 1)

	require.NoError(t, conn.Close())
	waitForClients(t, hub, 0)
}
