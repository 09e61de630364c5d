package realtime

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/gorilla/websocket"

	"github.com/yungbote/orbital-nexus-backend/internal/platform/logger"
)

func mustTestLogger(t *testing.T) *logger.Logger {
	t.Helper()
	log, err := logger.New("development")
	if err != nil {
		t.Fatalf("logger.New: %v", err)
	}
	t.Cleanup(log.Sync)
	return log
}

func recvMessage(t *testing.T, ch <-chan Message, timeout time.Duration) Message {
	t.Helper()
	select {
	case msg := <-ch:
		return msg
	case <-time.After(timeout):
		t.Fatalf("timed out waiting for ws message")
	}
	return Message{}
}

func TestHubBroadcastOrderingAndClose(t *testing.T) {
	hub := NewHub(mustTestLogger(t), nil)
	now := time.Date(2031, 3, 1, 12, 0, 0, 0, time.UTC)

	clientA := hub.NewClient()
	clientB := hub.NewClient()
	hub.Broadcast(DebrisUpdate(now))
	hub.Broadcast(LaunchStatus(now))

	for _, c := range []*Client{clientA, clientB} {
		if got := recvMessage(t, c.Outbound, time.Second); got.Event != EventDebrisUpdate {
			t.Fatalf("first event: want=%s got=%s", EventDebrisUpdate, got.Event)
		}
		if got := recvMessage(t, c.Outbound, time.Second); got.Event != EventLaunchStatus {
			t.Fatalf("second event: want=%s got=%s", EventLaunchStatus, got.Event)
		}
	}

	hub.CloseClient(clientA)
	hub.CloseClient(clientA)
	select {
	case _, ok := <-clientA.Outbound:
		if ok {
			t.Fatalf("clientA outbound should be closed after disconnect")
		}
	case <-time.After(500 * time.Millisecond):
		t.Fatalf("timed out waiting for clientA channel close")
	}
	if hub.Count() != 1 {
		t.Fatalf("count: want=1 got=%d", hub.Count())
	}

	hub.Broadcast(ConjunctionWarning(now))
	if got := recvMessage(t, clientB.Outbound, time.Second); got.Event != EventConjunctionWarning {
		t.Fatalf("after close: want=%s got=%s", EventConjunctionWarning, got.Event)
	}
}

func TestHubDropsFramesWhenBufferFull(t *testing.T) {
	hub := NewHub(mustTestLogger(t), nil)
	slow := hub.NewClient()
	now := time.Now()

	for i := 0; i < outboundBuffer+5; i++ {
		hub.Broadcast(DebrisUpdate(now))
	}
	if got := len(slow.Outbound); got != outboundBuffer {
		t.Fatalf("buffered: want=%d got=%d", outboundBuffer, got)
	}

	fast := hub.NewClient()
	hub.Broadcast(LaunchStatus(now))
	if got := recvMessage(t, fast.Outbound, time.Second); got.Event != EventLaunchStatus {
		t.Fatalf("fast client: want=%s got=%s", EventLaunchStatus, got.Event)
	}
}

func TestHubShutdownReleasesClients(t *testing.T) {
	hub := NewHub(mustTestLogger(t), nil)
	a := hub.NewClient()
	b := hub.NewClient()
	hub.Shutdown()

	for _, c := range []*Client{a, b} {
		select {
		case <-c.Done():
		case <-time.After(time.Second):
			t.Fatalf("client %s not released", c.ID)
		}
	}
	if hub.Count() != 0 {
		t.Fatalf("count: want=0 got=%d", hub.Count())
	}
}

func TestFramePayloads(t *testing.T) {
	now := time.Date(2031, 3, 1, 12, 0, 0, 0, time.UTC)
	cases := []struct {
		msg  Message
		want string
	}{
		{DebrisUpdate(now), `{"event":"debris:update","payload":{"altitude_km":550,"new_density":0.0000123,"timestamp":"2031-03-01T12:00:00.000Z"}}`},
		{ConjunctionWarning(now), `{"event":"conjunction:warning","payload":{"object1_norad":25544,"object2_norad":43135,"closest_approach_km":0.85,"probability":0.002,"timestamp":"2031-03-01T12:00:00.000Z"}}`},
		{LaunchStatus(now), `{"event":"launch:status","payload":{"mission":"Starlink Group 10-2","provider":"SpaceX","status":"T-15 minutes and holding","timestamp":"2031-03-01T12:00:00.000Z"}}`},
	}
	for _, tc := range cases {
		raw, err := json.Marshal(tc.msg)
		if err != nil {
			t.Fatalf("marshal: %v", err)
		}
		if string(raw) != tc.want {
			t.Fatalf("frame:\nwant=%s\ngot= %s", tc.want, raw)
		}
	}
}

type recordingSink struct {
	mu     sync.Mutex
	events map[Event]int
}

func (s *recordingSink) Broadcast(msg Message) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.events[msg.Event]++
}

func (s *recordingSink) count(e Event) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.events[e]
}

func TestBroadcasterRunsEachTimer(t *testing.T) {
	sink := &recordingSink{events: map[Event]int{}}
	b := NewBroadcaster(mustTestLogger(t), sink, Intervals{
		DebrisUpdate:       10 * time.Millisecond,
		ConjunctionWarning: 20 * time.Millisecond,
		LaunchStatus:       30 * time.Millisecond,
	})

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- b.Run(ctx) }()

	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if sink.count(EventDebrisUpdate) >= 2 && sink.count(EventConjunctionWarning) >= 1 && sink.count(EventLaunchStatus) >= 1 {
			break
		}
		time.Sleep(5 * time.Millisecond)
	}
	cancel()

	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("Run: %v", err)
		}
	case <-time.After(time.Second):
		t.Fatalf("broadcaster did not stop")
	}
	if sink.count(EventLaunchStatus) == 0 || sink.count(EventConjunctionWarning) == 0 {
		t.Fatalf("missing frames: %v", sink.events)
	}
	if sink.count(EventDebrisUpdate) < sink.count(EventLaunchStatus) {
		t.Fatalf("debris timer should fire most often: %v", sink.events)
	}
}

func TestNewBroadcasterDefaultsIntervals(t *testing.T) {
	b := NewBroadcaster(logger.Nop(), &recordingSink{events: map[Event]int{}}, Intervals{})
	if b.intervals != DefaultIntervals() {
		t.Fatalf("intervals: want=%+v got=%+v", DefaultIntervals(), b.intervals)
	}
}

func TestServeWebSocketRoundTrip(t *testing.T) {
	hub := NewHub(mustTestLogger(t), nil)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	upgrader := websocket.Upgrader{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			return
		}
		hub.Serve(ctx, conn)
	}))
	defer srv.Close()

	url := "ws" + strings.TrimPrefix(srv.URL, "http")
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	defer conn.Close()

	deadline := time.Now().Add(2 * time.Second)
	for hub.Count() == 0 && time.Now().Before(deadline) {
		time.Sleep(5 * time.Millisecond)
	}
	if hub.Count() != 1 {
		t.Fatalf("count: want=1 got=%d", hub.Count())
	}

	hub.Broadcast(ConjunctionWarning(time.Now()))

	_ = conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	var got struct {
		Event   Event          `json:"event"`
		Payload map[string]any `json:"payload"`
	}
	if err := conn.ReadJSON(&got); err != nil {
		t.Fatalf("read: %v", err)
	}
	if got.Event != EventConjunctionWarning {
		t.Fatalf("event: want=%s got=%s", EventConjunctionWarning, got.Event)
	}
	if got.Payload["object1_norad"] != float64(25544) {
		t.Fatalf("payload: got=%v", got.Payload)
	}

	_ = conn.WriteMessage(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
	deadline = time.Now().Add(2 * time.Second)
	for hub.Count() != 0 && time.Now().Before(deadline) {
		time.Sleep(5 * time.Millisecond)
	}
	if hub.Count() != 0 {
		t.Fatalf("client not released after close")
	}
}
