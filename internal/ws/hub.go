package ws

import (
	"context"
	"log"
	"sync"

	"skillbridge/internal/pkg/metrics"

	"github.com/google/uuid"
)

type userMessage struct {
	userID  uuid.UUID
	payload []byte
}

// Hub fans notification payloads out to the sockets of a single user. A
// user may hold several connections, one per open tab or device.
type Hub struct {
	clients    map[uuid.UUID]map[*Client]struct{}
	direct     chan userMessage
	register   chan *Client
	unregister chan *Client
	mutex      sync.RWMutex
	total      int
	logger     *log.Logger

	// stopped is closed when Run exits. closed is guarded by state and
	// turns Register and Unregister into no-ops afterwards.
	stopped chan struct{}
	state   sync.RWMutex
	closed  bool
}

func NewHub(logger *log.Logger) *Hub {
	return &Hub{
		clients:    make(map[uuid.UUID]map[*Client]struct{}),
		direct:     make(chan userMessage, 1024),
		register:   make(chan *Client, 128),
		unregister: make(chan *Client, 128),
		logger:     logger,
		stopped:    make(chan struct{}),
	}
}

// Run owns the client set until ctx is cancelled, then closes every
// remaining connection.
func (h *Hub) Run(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			h.shutdown()
			return nil

		case client := <-h.register:
			if client == nil {
				continue
			}
			h.mutex.Lock()
			set, ok := h.clients[client.userID]
			if !ok {
				set = make(map[*Client]struct{})
				h.clients[client.userID] = set
			}
			set[client] = struct{}{}
			h.total++
			total := h.total
			h.mutex.Unlock()
			metrics.SetWSConnections(total)
			h.logf("[WS] connected user=%s total_clients=%d", client.userID, total)

		case client := <-h.unregister:
			if client == nil {
				continue
			}
			if h.remove(client) {
				h.logf("[WS] disconnected user=%s total_clients=%d", client.userID, h.ClientCount())
			}

		case msg := <-h.direct:
			h.mutex.RLock()
			targets := make([]*Client, 0, len(h.clients[msg.userID]))
			for c := range h.clients[msg.userID] {
				targets = append(targets, c)
			}
			h.mutex.RUnlock()

			for _, client := range targets {
				select {
				case client.send <- msg.payload:
				default:
					h.remove(client)
					h.logf("[WS] dropped slow client user=%s", client.userID)
				}
			}
		}
	}
}

func (h *Hub) remove(client *Client) bool {
	h.mutex.Lock()
	set, ok := h.clients[client.userID]
	if !ok {
		h.mutex.Unlock()
		return false
	}
	if _, ok := set[client]; !ok {
		h.mutex.Unlock()
		return false
	}
	delete(set, client)
	if len(set) == 0 {
		delete(h.clients, client.userID)
	}
	close(client.send)
	h.total--
	total := h.total
	h.mutex.Unlock()

	metrics.SetWSConnections(total)
	return true
}

func (h *Hub) shutdown() {
	close(h.stopped)

	h.state.Lock()
	h.closed = true
	h.state.Unlock()

	h.closeAll()
	for {
		select {
		case client := <-h.register:
			if client != nil {
				close(client.send)
			}
		case <-h.unregister:
		default:
			return
		}
	}
}

func (h *Hub) closeAll() {
	h.mutex.Lock()
	for userID, set := range h.clients {
		for c := range set {
			close(c.send)
		}
		delete(h.clients, userID)
	}
	h.total = 0
	h.mutex.Unlock()
	metrics.SetWSConnections(0)
}

// Register hands client to Run. Once the hub has stopped the client's
// send channel is closed instead, which ends its write pump.
func (h *Hub) Register(client *Client) {
	if h == nil || client == nil {
		return
	}
	h.state.RLock()
	defer h.state.RUnlock()
	if h.closed {
		close(client.send)
		return
	}
	select {
	case h.register <- client:
	case <-h.stopped:
		close(client.send)
	}
}

func (h *Hub) Unregister(client *Client) {
	if h == nil || client == nil {
		return
	}
	h.state.RLock()
	defer h.state.RUnlock()
	if h.closed {
		return
	}
	select {
	case h.unregister <- client:
	case <-h.stopped:
	}
}

// PublishToUser queues payload for every socket of userID. It never
// blocks; when the queue is full the message is dropped and the
// notification stays readable over HTTP.
func (h *Hub) PublishToUser(userID uuid.UUID, payload []byte) {
	if h == nil {
		return
	}
	select {
	case h.direct <- userMessage{userID: userID, payload: payload}:
	default:
		h.logf("[WS] publish dropped user=%s reason=buffer_full", userID)
	}
}

func (h *Hub) ClientCount() int {
	if h == nil {
		return 0
	}
	h.mutex.RLock()
	defer h.mutex.RUnlock()
	return h.total
}

func (h *Hub) logf(format string, args ...any) {
	if h.logger != nil {
		h.logger.Printf(format, args...)
	}
}
