package statsd

import (
	"bufio"
	"net"
	"strings"
	"testing"
	"time"
)

func TestNormalizeMetricName(t *testing.T) {
	t.Parallel()

	tests := map[string]string{
		" notification/delivery ": "notification_delivery",
		"notification..dispatch":  "notification.dispatch",
		"a:b|c":                   "a_b_c",
		".":                       "",
	}

	for input, want := range tests {
		if got := normalizeMetricName(input); got != want {
			t.Fatalf("normalizeMetricName(%q) = %q, want %q", input, got, want)
		}
	}
}

func TestFormatTagsMergesAndSorts(t *testing.T) {
	t.Parallel()

	global := map[string]string{"env": "prod", " service ": " notifier "}
	local := map[string]string{"result": " success ", "": "ignored", "env": "stage"}

	got := formatTags(global, local)
	want := "|#env:stage,result:success,service:notifier"
	if got != want {
		t.Fatalf("formatTags mismatch\n got: %q\nwant: %q", got, want)
	}
	if got := formatTags(nil, nil); got != "" {
		t.Fatalf("formatTags(nil, nil) = %q, want empty string", got)
	}
}

func TestClientLineUsesDefaultPrefix(t *testing.T) {
	t.Parallel()

	c, err := NewClient(Config{})
	if err != nil {
		t.Fatalf("NewClient error: %v", err)
	}
	if c.Enabled() {
		t.Fatal("expected disabled client without address")
	}

	got := c.line("notification.delivery", "1", "c", map[string]string{"result": "error"})
	want := "print_notifier.notification.delivery:1|c|#result:error"
	if got != want {
		t.Fatalf("line = %q, want %q", got, want)
	}
}

func TestClientWritesOverConnection(t *testing.T) {
	t.Parallel()

	clientConn, peerConn := net.Pipe()
	defer peerConn.Close()

	c := &Client{prefix: "svc", globalTags: map[string]string{}, conn: clientConn}

	done := make(chan string, 1)
	go func() {
		_ = peerConn.SetReadDeadline(time.Now().Add(2 * time.Second))
		buf := make([]byte, 256)
		n, _ := bufio.NewReader(peerConn).Read(buf)
		done <- string(buf[:n])
	}()

	c.Timing("dispatch.duration", 1500*time.Microsecond, nil)

	if got := <-done; !strings.HasPrefix(got, "svc.dispatch.duration:1.5|ms") {
		t.Fatalf("unexpected line %q", got)
	}

	if err := c.Close(); err != nil {
		t.Fatalf("Close error: %v", err)
	}
	if err := c.Close(); err != nil {
		t.Fatalf("second Close error: %v", err)
	}

	var nilClient *Client
	nilClient.Count("x", 1, nil)
	if nilClient.Enabled() {
		t.Fatal("nil client should report disabled")
	}
}

func TestNewClientDialError(t *testing.T) {
	t.Parallel()

	_, err := NewClient(Config{Enabled: true, Address: "bad address"})
	if err == nil {
		t.Fatal("expected NewClient to error for invalid address")
	}
	if !strings.Contains(err.Error(), "statsd dial") {
		t.Fatalf("unexpected error: %v", err)
	}
}
