package server

import (
	"context"
	"net"
	"net/http"
	"testing"
	"time"

	"github.com/gorilla/websocket"
)

func TestServeShutdownOnCancel(t *testing.T) {
	cfg := DefaultServerConfig()
	cfg.ShutdownTimeout = 2 * time.Second
	srv, err := New(cfg, Options{})
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatal(err)
	}
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	errCh := make(chan error, 1)
	go func() { errCh <- srv.Serve(ctx, ln) }()

	base := "http://" + ln.Addr().String()
	resp, err := http.Get(base + "/healthz")
	if err != nil {
		t.Fatalf("GET /healthz: %v", err)
	}
	resp.Body.Close()

	conn, wsResp, err := websocket.DefaultDialer.Dial("ws://"+ln.Addr().String()+"/live?path=/genres", nil)
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	wsResp.Body.Close()
	defer conn.Close()

	conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	if _, _, err := conn.ReadMessage(); err != nil {
		t.Fatalf("initial render: %v", err)
	}
	eventually(t, func() bool { return srv.Sessions().Count() == 1 })

	cancel()

	select {
	case err := <-errCh:
		if err != nil {
			t.Fatalf("Serve returned %v", err)
		}
	case <-time.After(3 * time.Second):
		t.Fatal("Serve did not return after cancel")
	}

	conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	if _, _, err := conn.ReadMessage(); err == nil {
		t.Error("live connection still open after shutdown")
	}
	eventually(t, func() bool { return srv.Sessions().Count() == 0 })
	if _, err := http.Get(base + "/healthz"); err == nil {
		t.Error("server still accepting requests")
	}
}
