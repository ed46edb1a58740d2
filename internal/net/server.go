// Package net implements the byte-level TCP server shared by the four
// game services: an accept loop producing one Client per connection,
// per-client read loops with partial-frame tolerance, and serialized
// write queues.
package net

import (
	"fmt"
	"net"
	"sync"
	"sync/atomic"

	"go.uber.org/zap"
)

// EventHandler receives connection lifecycle events and buffered bytes.
// OnClientData returns how many bytes it consumed; unconsumed bytes are
// presented again once more data arrive. A returned error ends the client.
type EventHandler interface {
	OnClientConnected(clientID uint64)
	OnClientDisconnected(clientID uint64)
	OnClientData(clientID uint64, data []byte) (int, error)
}

// Server accepts TCP connections and owns the connected clients.
type Server struct {
	handler EventHandler
	log     *zap.Logger

	listener net.Listener
	nextID   atomic.Uint64

	mu      sync.Mutex
	clients map[uint64]*Client

	closeCh   chan struct{}
	closeOnce sync.Once
	wg        sync.WaitGroup
}

func NewServer(handler EventHandler, log *zap.Logger) *Server {
	return &Server{
		handler: handler,
		log:     log,
		clients: make(map[uint64]*Client),
		closeCh: make(chan struct{}),
	}
}

// Begin binds the listener and starts the accept loop in its own
// goroutine.
func (s *Server) Begin(bindAddr string) error {
	ln, err := net.Listen("tcp", bindAddr)
	if err != nil {
		return fmt.Errorf("listen on %s: %w", bindAddr, err)
	}
	s.listener = ln

	s.wg.Add(1)
	go s.acceptLoop()
	return nil
}

// Addr returns the listener's address.
func (s *Server) Addr() net.Addr {
	return s.listener.Addr()
}

func (s *Server) acceptLoop() {
	defer s.wg.Done()

	for {
		conn, err := s.listener.Accept()
		if err != nil {
			select {
			case <-s.closeCh:
				return
			default:
			}
			s.log.Error("accept failed", zap.Error(err))
			continue
		}

		id := s.nextID.Add(1)
		client := newClient(conn, id, s)

		s.mu.Lock()
		s.clients[id] = client
		s.mu.Unlock()

		s.log.Info("client connected",
			zap.Uint64("client", id),
			zap.String("remote", conn.RemoteAddr().String()))

		s.handler.OnClientConnected(id)
		client.start()
	}
}

// Client returns the connected client with the given id, or nil.
func (s *Server) Client(clientID uint64) *Client {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.clients[clientID]
}

func (s *Server) removeClient(clientID uint64) {
	s.mu.Lock()
	_, known := s.clients[clientID]
	delete(s.clients, clientID)
	s.mu.Unlock()

	if known {
		s.handler.OnClientDisconnected(clientID)
	}
}

// End closes the acceptor and ends every connected client.
func (s *Server) End() {
	s.closeOnce.Do(func() {
		close(s.closeCh)
	})
	if s.listener != nil {
		s.listener.Close()
	}

	s.mu.Lock()
	clients := make([]*Client, 0, len(s.clients))
	for _, client := range s.clients {
		clients = append(clients, client)
	}
	s.mu.Unlock()

	for _, client := range clients {
		client.End()
	}
	s.wg.Wait()
}
