package net

import (
	"net"
	"sync"
	"sync/atomic"
	"time"

	"go.uber.org/zap"
)

const (
	readChunkSize = 4096
	outQueueSize  = 256
	writeTimeout  = 10 * time.Second
)

// Client is a single TCP connection. The read loop presents buffered
// bytes to the server's event handler and retains whatever the handler
// did not consume; writes are serialized through the out queue.
type Client struct {
	ID   uint64
	conn net.Conn

	server *Server

	outQueue chan []byte

	closeCh   chan struct{}
	closeOnce sync.Once
	closed    atomic.Bool

	log *zap.Logger
}

func newClient(conn net.Conn, id uint64, server *Server) *Client {
	return &Client{
		ID:       id,
		conn:     conn,
		server:   server,
		outQueue: make(chan []byte, outQueueSize),
		closeCh:  make(chan struct{}),
		log:      server.log.With(zap.Uint64("client", id)),
	}
}

func (c *Client) start() {
	c.server.wg.Add(2)
	go c.readLoop()
	go c.writeLoop()
}

// QueueWrite enqueues an already-framed message for sending. Order
// matches the order of QueueWrite calls from a single producer. If the
// queue is full the client is considered too slow and is ended.
func (c *Client) QueueWrite(data []byte) {
	if c.closed.Load() {
		return
	}
	select {
	case c.outQueue <- data:
	default:
		c.log.Warn("write queue full, ending slow client")
		c.End()
	}
}

// EndAfterFlush ends the client once the queued writes have drained, so
// a final reply such as a login cancel still reaches the peer.
func (c *Client) EndAfterFlush() {
	go func() {
		deadline := time.Now().Add(writeTimeout)
		for len(c.outQueue) > 0 && time.Now().Before(deadline) {
			time.Sleep(time.Millisecond)
		}
		// Give the in-flight write a moment to hit the socket.
		time.Sleep(5 * time.Millisecond)
		c.End()
	}()
}

// End shuts the connection down and reports the disconnect once.
func (c *Client) End() {
	c.closeOnce.Do(func() {
		c.closed.Store(true)
		close(c.closeCh)
		c.conn.Close()
		c.server.removeClient(c.ID)
	})
}

// readLoop reads from the connection into a pending buffer and hands the
// buffered bytes to the event handler. The handler reports how many bytes
// it consumed; an incomplete frame stays buffered for the next pass.
func (c *Client) readLoop() {
	defer c.server.wg.Done()
	defer c.End()

	var pending []byte
	chunk := make([]byte, readChunkSize)

	for {
		select {
		case <-c.closeCh:
			return
		default:
		}

		n, err := c.conn.Read(chunk)
		if err != nil {
			if !c.closed.Load() {
				c.log.Debug("read error", zap.Error(err))
			}
			return
		}

		pending = append(pending, chunk[:n]...)

		consumed, err := c.server.handler.OnClientData(c.ID, pending)
		if err != nil {
			c.log.Error("client data error", zap.Error(err))
			return
		}
		if consumed > 0 {
			pending = pending[:copy(pending, pending[consumed:])]
		}
	}
}

func (c *Client) writeLoop() {
	defer c.server.wg.Done()
	defer c.End()

	for {
		select {
		case data := <-c.outQueue:
			c.conn.SetWriteDeadline(time.Now().Add(writeTimeout))
			if _, err := c.conn.Write(data); err != nil {
				if !c.closed.Load() {
					c.log.Debug("write error", zap.Error(err))
				}
				return
			}
		case <-c.closeCh:
			return
		}
	}
}
