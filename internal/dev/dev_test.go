package dev

import (
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/gorilla/websocket"
)

func TestReloadServerBroadcast(t *testing.T) {
	rs := NewReloadServer()
	defer rs.Close()

	srv := httptest.NewServer(rs)
	defer srv.Close()

	wsURL := "ws" + strings.TrimPrefix(srv.URL, "http")
	conn, _, err := websocket.DefaultDialer.Dial(wsURL, nil)
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	defer conn.Close()

	// The server registers the client asynchronously after upgrade.
	deadline := time.Now().Add(2 * time.Second)
	for rs.ClientCount() == 0 && time.Now().Before(deadline) {
		time.Sleep(10 * time.Millisecond)
	}
	if rs.ClientCount() != 1 {
		t.Fatalf("ClientCount = %d, want 1", rs.ClientCount())
	}

	rs.NotifyChange("public/styles.css")

	conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	var msg ReloadMessage
	if err := conn.ReadJSON(&msg); err != nil {
		t.Fatalf("read: %v", err)
	}
	if msg.Type != ReloadTypeCSS {
		t.Errorf("Type = %q, want css", msg.Type)
	}
	if msg.File != "public/styles.css" {
		t.Errorf("File = %q", msg.File)
	}

	rs.NotifyChange("views/home.go")
	conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	if err := conn.ReadJSON(&msg); err != nil {
		t.Fatalf("read: %v", err)
	}
	if msg.Type != ReloadTypeFull {
		t.Errorf("Type = %q, want reload", msg.Type)
	}
}

func TestWatcherReportsChanges(t *testing.T) {
	dir := t.TempDir()

	var mu sync.Mutex
	var changed []string
	w, err := NewWatcher(dir, 50*time.Millisecond, nil, func(path string) {
		mu.Lock()
		changed = append(changed, path)
		mu.Unlock()
	})
	if err != nil {
		t.Fatalf("NewWatcher: %v", err)
	}
	defer w.Close()

	file := filepath.Join(dir, "styles.css")
	if err := os.WriteFile(file, []byte("body{}"), 0o644); err != nil {
		t.Fatal(err)
	}

	deadline := time.Now().Add(3 * time.Second)
	for time.Now().Before(deadline) {
		mu.Lock()
		n := len(changed)
		mu.Unlock()
		if n > 0 {
			return
		}
		time.Sleep(25 * time.Millisecond)
	}
	t.Fatal("no change reported before deadline")
}

func TestClientScriptMentionsEndpoint(t *testing.T) {
	if !strings.Contains(ClientScript, ReloadPath) {
		t.Error("client script does not reference the reload endpoint")
	}
}
