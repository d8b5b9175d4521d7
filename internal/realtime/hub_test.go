package realtime

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/require"
)

func newHubServer(t *testing.T, hub *Hub) *httptest.Server {
	t.Helper()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hub.Serve(w, r)
	}))
	t.Cleanup(srv.Close)
	return srv
}

func dial(t *testing.T, srv *httptest.Server) *websocket.Conn {
	t.Helper()

	url := "ws" + strings.TrimPrefix(srv.URL, "http")
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })
	return conn
}

func TestHubBroadcastReachesAllClients(t *testing.T) {
	hub := NewHub()
	srv := newHubServer(t, hub)

	first := dial(t, srv)
	second := dial(t, srv)

	require.Eventually(t, func() bool {
		return hub.ClientCount() == 2
	}, time.Second, 10*time.Millisecond)

	hub.Broadcast(EventDisasterUpdated, map[string]any{"title": "Quake"})

	for _, conn := range []*websocket.Conn{first, second} {
		require.NoError(t, conn.SetReadDeadline(time.Now().Add(time.Second)))

		var msg Message
		require.NoError(t, conn.ReadJSON(&msg))
		require.Equal(t, EventDisasterUpdated, msg.Event)

		data, ok := msg.Data.(map[string]any)
		require.True(t, ok)
		require.Equal(t, "Quake", data["title"])
	}
}

func TestHubDeliversEventsInEmitOrder(t *testing.T) {
	hub := NewHub()
	srv := newHubServer(t, hub)

	conn := dial(t, srv)
	require.Eventually(t, func() bool {
		return hub.ClientCount() == 1
	}, time.Second, 10*time.Millisecond)

	for _, title := range []string{"first", "second", "third"} {
		hub.Broadcast(EventDisasterUpdated, map[string]any{"title": title})
	}

	require.NoError(t, conn.SetReadDeadline(time.Now().Add(time.Second)))
	for _, want := range []string{"first", "second", "third"} {
		var msg Message
		require.NoError(t, conn.ReadJSON(&msg))
		data, ok := msg.Data.(map[string]any)
		require.True(t, ok)
		require.Equal(t, want, data["title"])
	}
}

func TestHubUnregistersClosedClients(t *testing.T) {
	hub := NewHub()
	srv := newHubServer(t, hub)

	conn := dial(t, srv)
	require.Eventually(t, func() bool {
		return hub.ClientCount() == 1
	}, time.Second, 10*time.Millisecond)

	require.NoError(t, conn.Close())

	require.Eventually(t, func() bool {
		return hub.ClientCount() == 0
	}, time.Second, 10*time.Millisecond)
}

func TestHubBroadcastWithNoClientsIsANoop(t *testing.T) {
	hub := NewHub()
	hub.Broadcast(EventDisasterUpdated, nil)
	require.Zero(t, hub.ClientCount())
}
