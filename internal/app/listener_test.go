package app

import (
	"context"
	"net"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"
	"time"

	"github.com/coder/websocket"

	"github.com/uvjustin/golibrespot-java/internal/state"
	"github.com/uvjustin/golibrespot-java/librespot"
)

func TestStartListener_AppliesEventsToStore(t *testing.T) {
	t.Parallel()

	done := make(chan struct{})
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := websocket.Accept(w, r, nil)
		if err != nil {
			return
		}
		defer conn.CloseNow()
		_ = conn.Write(context.Background(), websocket.MessageText,
			[]byte(`{"event":"volumeChanged","value":0.5}`))
		<-done
	}))
	t.Cleanup(func() {
		close(done)
		server.Close()
	})

	host, portStr, err := net.SplitHostPort(server.Listener.Addr().String())
	if err != nil {
		t.Fatalf("SplitHostPort: %v", err)
	}
	port, _ := strconv.Atoi(portStr)
	client := librespot.NewClient(nil, host, port)

	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)

	store := &state.Store{}
	StartListener(ctx, store, client, 10*time.Millisecond)

	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if snap := store.Snapshot(); snap.HasVolume {
			if snap.Volume != 32768 {
				t.Fatalf("Volume = %d, want 32768", snap.Volume)
			}
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatalf("store never saw the volumeChanged event")
}
