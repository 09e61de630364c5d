package realtime

import (
	"sync"

	"github.com/google/uuid"

	"github.com/yungbote/orbital-nexus-backend/internal/observability"
	"github.com/yungbote/orbital-nexus-backend/internal/platform/logger"
)

type Event string

const (
	EventDebrisUpdate       Event = "debris:update"
	EventConjunctionWarning Event = "conjunction:warning"
	EventLaunchStatus       Event = "launch:status"
)

// Message is the frame written to every connection.
type Message struct {
	Event   Event `json:"event"`
	Payload any   `json:"payload"`
}

const outboundBuffer = 10

type Client struct {
	ID       uuid.UUID
	Outbound chan Message
	done     chan struct{}
	once     sync.Once
	log      *logger.Logger
}

// Done is closed once the hub has released the client.
func (c *Client) Done() <-chan struct{} { return c.done }

type Hub struct {
	mu      sync.RWMutex
	log     *logger.Logger
	metrics *observability.Metrics
	clients map[*Client]bool
}

func NewHub(log *logger.Logger, metrics *observability.Metrics) *Hub {
	return &Hub{
		log:     log.With("component", "WSHub"),
		metrics: metrics,
		clients: make(map[*Client]bool),
	}
}

func (hub *Hub) NewClient() *Client {
	id := uuid.New()
	c := &Client{
		ID:       id,
		Outbound: make(chan Message, outboundBuffer),
		done:     make(chan struct{}),
		log:      hub.log.With("client_id", id.String()),
	}
	hub.mu.Lock()
	hub.clients[c] = true
	hub.mu.Unlock()
	hub.metrics.WSClientConnected()
	hub.log.Debug("ws client registered", "client_id", id.String())
	return c
}

// Broadcast never blocks: a client whose buffer is full misses the frame.
func (hub *Hub) Broadcast(msg Message) {
	hub.mu.RLock()
	defer hub.mu.RUnlock()

	for c := range hub.clients {
		select {
		case c.Outbound <- msg:
		default:
			hub.metrics.IncDroppedFrame(string(msg.Event))
			hub.log.Warn("Dropping ws frame; outbound buffer full", "client_id", c.ID.String(), "event", msg.Event)
		}
	}
	hub.metrics.IncBroadcast(string(msg.Event))
}

func (hub *Hub) CloseClient(c *Client) {
	c.once.Do(func() {
		hub.mu.Lock()
		delete(hub.clients, c)
		hub.mu.Unlock()
		close(c.done)
		close(c.Outbound)
		hub.metrics.WSClientDisconnected()
		hub.log.Debug("ws client released", "client_id", c.ID.String())
	})
}

func (hub *Hub) Count() int {
	hub.mu.RLock()
	defer hub.mu.RUnlock()
	return len(hub.clients)
}

// Shutdown releases every client, which ends their pumps.
func (hub *Hub) Shutdown() {
	hub.mu.RLock()
	clients := make([]*Client, 0, len(hub.clients))
	for c := range hub.clients {
		clients = append(clients, c)
	}
	hub.mu.RUnlock()
	for _, c := range clients {
		hub.CloseClient(c)
	}
}
