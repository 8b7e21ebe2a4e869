package mcp

import (
	"context"
	"encoding/json"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/blackwell-systems/bashstats/internal/store"
)

// newEmptyServer creates a Server over a fresh in-memory store.
func newEmptyServer(t *testing.T) *Server {
	t.Helper()
	db, err := store.OpenInMemory()
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })
	return NewServer(db, "0.0.0-test")
}

// runServer starts s.Run in a goroutine piped through pw/pr and returns
// a function that writes a request line and reads the response line.
// The returned cleanup func cancels the context.
func runServer(t *testing.T, s *Server) (
	sendLine func(line string) string,
	cleanup func(),
) {
	t.Helper()

	ctx, cancel := context.WithCancel(context.Background())

	// Test writes to pw, server reads from pr.
	pr, pw := io.Pipe()
	// Server writes to sw, test reads from sr.
	sr, sw := io.Pipe()

	done := make(chan error, 1)
	go func() {
		done <- s.Run(ctx, pr, sw)
	}()

	sendLine = func(line string) string {
		_, err := io.WriteString(pw, line+"\n")
		if err != nil {
			t.Fatalf("sendLine write: %v", err)
		}

		buf := make([]byte, 1<<16)
		var out strings.Builder
		for {
			n, err := sr.Read(buf)
			if n > 0 {
				out.Write(buf[:n])
				s := out.String()
				if idx := strings.IndexByte(s, '\n'); idx >= 0 {
					return s[:idx]
				}
			}
			if err != nil {
				t.Fatalf("sendLine read: %v", err)
			}
		}
	}

	cleanup = func() {
		cancel()
		_ = pw.Close()
		select {
		case <-done:
		case <-time.After(2 * time.Second):
			t.Error("Run did not return after cancel+close")
		}
	}

	return sendLine, cleanup
}

func TestRun_Initialize(t *testing.T) {
	s := newEmptyServer(t)
	sendLine, cleanup := runServer(t, s)
	defer cleanup()

	resp := sendLine(`{"jsonrpc":"2.0","id":1,"method":"initialize"}`)

	var parsed struct {
		Result struct {
			ProtocolVersion string `json:"protocolVersion"`
			ServerInfo      struct {
				Name string `json:"name"`
			} `json:"serverInfo"`
		} `json:"result"`
	}
	if err := json.Unmarshal([]byte(resp), &parsed); err != nil {
		t.Fatalf("unmarshal response: %v\nresponse: %s", err, resp)
	}
	if parsed.Result.ProtocolVersion == "" {
		t.Errorf("expected non-empty protocolVersion; response: %s", resp)
	}
	if parsed.Result.ServerInfo.Name != "bashstats" {
		t.Errorf("expected serverInfo.name == 'bashstats', got %q; response: %s",
			parsed.Result.ServerInfo.Name, resp)
	}
}

func TestRun_ToolsList(t *testing.T) {
	s := newEmptyServer(t)
	sendLine, cleanup := runServer(t, s)
	defer cleanup()

	resp := sendLine(`{"jsonrpc":"2.0","id":2,"method":"tools/list"}`)

	var parsed struct {
		Result struct {
			Tools []struct {
				Name string `json:"name"`
			} `json:"tools"`
		} `json:"result"`
	}
	if err := json.Unmarshal([]byte(resp), &parsed); err != nil {
		t.Fatalf("unmarshal response: %v\nresponse: %s", err, resp)
	}
	if len(parsed.Result.Tools) != 3 {
		t.Errorf("expected 3 tools in list, got %d; response: %s", len(parsed.Result.Tools), resp)
	}
	for _, tool := range parsed.Result.Tools {
		if !strings.HasPrefix(tool.Name, "bashstats_") {
			t.Errorf("unexpected tool name %q; response: %s", tool.Name, resp)
		}
	}
}

func TestRun_UnknownMethod(t *testing.T) {
	s := newEmptyServer(t)
	sendLine, cleanup := runServer(t, s)
	defer cleanup()

	resp := sendLine(`{"jsonrpc":"2.0","id":3,"method":"nonexistent/method"}`)

	var parsed struct {
		Error *struct {
			Code    int    `json:"code"`
			Message string `json:"message"`
		} `json:"error"`
	}
	if err := json.Unmarshal([]byte(resp), &parsed); err != nil {
		t.Fatalf("unmarshal response: %v\nresponse: %s", err, resp)
	}
	if parsed.Error == nil {
		t.Fatalf("expected error in response, got none; response: %s", resp)
	}
	if parsed.Error.Code != -32601 {
		t.Errorf("expected error code -32601, got %d; response: %s", parsed.Error.Code, resp)
	}
}

func TestRun_UnknownTool(t *testing.T) {
	s := newEmptyServer(t)
	sendLine, cleanup := runServer(t, s)
	defer cleanup()

	resp := sendLine(`{"jsonrpc":"2.0","id":4,"method":"tools/call","params":{"name":"no_such_tool"}}`)

	var parsed struct {
		Result struct {
			IsError bool `json:"isError"`
			Content []struct {
				Text string `json:"text"`
			} `json:"content"`
		} `json:"result"`
	}
	if err := json.Unmarshal([]byte(resp), &parsed); err != nil {
		t.Fatalf("unmarshal response: %v\nresponse: %s", err, resp)
	}
	if !parsed.Result.IsError {
		t.Errorf("expected isError for unknown tool; response: %s", resp)
	}
}

func TestRun_Notification(t *testing.T) {
	s := newEmptyServer(t)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pr, pw := io.Pipe()
	sr, sw := io.Pipe()

	done := make(chan error, 1)
	go func() {
		done <- s.Run(ctx, pr, sw)
	}()

	notification := `{"jsonrpc":"2.0","method":"notifications/initialized"}` + "\n"
	if _, err := io.WriteString(pw, notification); err != nil {
		t.Fatalf("write notification: %v", err)
	}

	readDone := make(chan []byte, 1)
	go func() {
		buf := make([]byte, 1024)
		n, _ := sr.Read(buf)
		readDone <- buf[:n]
	}()

	select {
	case data := <-readDone:
		t.Errorf("expected no response for notification, but got: %s", data)
	case <-time.After(100 * time.Millisecond):
		// Correct: no response was written within the deadline.
	}

	cancel()
	_ = pw.Close()
	_ = sr.Close()
}

func TestRun_EOFClean(t *testing.T) {
	s := newEmptyServer(t)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pr, pw := io.Pipe()
	_, sw := io.Pipe()

	done := make(chan error, 1)
	go func() {
		done <- s.Run(ctx, pr, sw)
	}()

	_ = pw.Close()

	select {
	case err := <-done:
		if err != nil {
			t.Errorf("expected Run to return nil on EOF, got: %v", err)
		}
	case <-time.After(2 * time.Second):
		t.Error("Run did not return after EOF")
	}
}
