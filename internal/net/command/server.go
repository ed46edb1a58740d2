// Package command layers the typed command protocol over the byte-level
// server: frame reassembly, magic validation, rolling-XOR descrambling,
// and dispatch to handlers registered per command id.
package command

import (
	"encoding/binary"
	"fmt"
	"net"
	"sync"

	gonet "github.com/aliciago/server/internal/net"
	"github.com/aliciago/server/internal/net/packet"
	"github.com/aliciago/server/internal/proto"
	"go.uber.org/zap"
)

// Events receives connection lifecycle notifications from the command
// server. OnClientConnected runs on the accept goroutine;
// OnClientDisconnected runs on whichever goroutine ends the client.
type Events struct {
	OnClientConnected    func(clientID uint64)
	OnClientDisconnected func(clientID uint64)
}

// RawHandler handles a descrambled command payload.
type RawHandler func(clientID uint64, r *packet.Reader) error

// Server is a typed packet server for one service listener.
type Server struct {
	events Events
	log    *zap.Logger

	// scrambleOutbound preserves or breaks the reference asymmetry: the
	// observed flows never scramble clientbound payloads.
	scrambleOutbound bool

	server *gonet.Server

	mu       sync.Mutex
	handlers map[proto.Command]RawHandler
	clients  map[uint64]*Client
}

func NewServer(events Events, scrambleOutbound bool, log *zap.Logger) *Server {
	s := &Server{
		events:           events,
		log:              log,
		scrambleOutbound: scrambleOutbound,
		handlers:         make(map[proto.Command]RawHandler),
		clients:          make(map[uint64]*Client),
	}
	s.server = gonet.NewServer(s, log)
	return s
}

// Host binds the listener and begins accepting clients.
func (s *Server) Host(bindAddr string) error {
	return s.server.Begin(bindAddr)
}

// End closes the acceptor and ends every client.
func (s *Server) End() {
	s.server.End()
}

// Addr returns the listener's address.
func (s *Server) Addr() net.Addr {
	return s.server.Addr()
}

// Register binds a raw handler to a command id. Last write wins.
func (s *Server) Register(id proto.Command, handler RawHandler) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.handlers[id] = handler
}

// readablePtr constrains P to a pointer to C implementing proto.Readable.
type readablePtr[C any] interface {
	*C
	proto.Readable
}

// RegisterHandler binds a typed handler: the command is constructed,
// decoded from the payload and passed by pointer.
func RegisterHandler[C any, P readablePtr[C]](s *Server, id proto.Command, fn func(clientID uint64, command *C)) {
	s.Register(id, func(clientID uint64, r *packet.Reader) error {
		command := new(C)
		P(command).Read(r)
		if err := r.Err(); err != nil {
			return fmt.Errorf("decode %s: %w", id.Name(), err)
		}
		fn(clientID, command)
		return nil
	})
}

// SetCode seeds the rolling code of a client.
func (s *Server) SetCode(clientID uint64, code uint32) {
	if client := s.client(clientID); client != nil {
		client.SetCode(code)
	}
}

// Disconnect ends the client's connection after the write queue drains,
// so a queued Cancel reply still goes out.
func (s *Server) Disconnect(clientID uint64) {
	if client := s.server.Client(clientID); client != nil {
		client.EndAfterFlush()
	}
}

func (s *Server) client(clientID uint64) *Client {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.clients[clientID]
}

func (s *Server) handler(id proto.Command) RawHandler {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.handlers[id]
}

// QueueCommand encodes the command, back-patches the magic with the total
// frame length, and queues the frame on the client's write queue.
func (s *Server) QueueCommand(clientID uint64, id proto.Command, command proto.Writable) {
	client := s.server.Client(clientID)
	if client == nil {
		return
	}

	w := packet.NewWriter()
	command.Write(w)
	if err := w.Err(); err != nil {
		s.log.Error("encode command failed",
			zap.String("command", id.Name()),
			zap.Error(err))
		client.End()
		return
	}

	payload := w.Bytes()
	if s.scrambleOutbound {
		payload = s.scramblePayload(clientID, payload)
	}

	length := len(payload) + 4
	if length > proto.BufferSize {
		s.log.Error("command too large",
			zap.String("command", id.Name()),
			zap.Int("length", length))
		client.End()
		return
	}

	frame := make([]byte, length)
	magic := proto.EncodeMagic(proto.MessageMagic{
		ID:     uint16(id),
		Length: uint16(length),
	})
	binary.LittleEndian.PutUint32(frame[:4], magic)
	copy(frame[4:], payload)

	client.QueueWrite(frame)

	if !id.Muted() {
		s.log.Debug("sent command",
			zap.String("command", id.Name()),
			zap.Uint16("id", uint16(id)),
			zap.Int("length", length))
	}
}

func (s *Server) scramblePayload(clientID uint64, payload []byte) []byte {
	client := s.client(clientID)
	if client == nil {
		return payload
	}
	code := client.RollOutboundCode()
	padded := make([]byte, len(payload)+proto.CodePadding(code))
	copy(padded, payload)
	proto.XorPayload(code, padded)
	return padded
}

// Broadcast queues the command for every listed client.
func (s *Server) Broadcast(clientIDs []uint64, id proto.Command, command proto.Writable) {
	for _, clientID := range clientIDs {
		s.QueueCommand(clientID, id, command)
	}
}

// OnClientConnected implements gonet.EventHandler.
func (s *Server) OnClientConnected(clientID uint64) {
	s.mu.Lock()
	s.clients[clientID] = &Client{}
	s.mu.Unlock()

	if s.events.OnClientConnected != nil {
		s.events.OnClientConnected(clientID)
	}
}

// OnClientDisconnected implements gonet.EventHandler.
func (s *Server) OnClientDisconnected(clientID uint64) {
	s.mu.Lock()
	delete(s.clients, clientID)
	s.mu.Unlock()

	if s.events.OnClientDisconnected != nil {
		s.events.OnClientDisconnected(clientID)
	}
}

// OnClientData implements gonet.EventHandler. It deframes as many whole
// commands as are buffered; an incomplete frame rewinds the cursor so the
// read loop retries once more bytes arrive.
func (s *Server) OnClientData(clientID uint64, data []byte) (int, error) {
	cursor := 0

	for len(data)-cursor >= 4 {
		magicValue := binary.LittleEndian.Uint32(data[cursor:])
		magic := proto.DecodeMagic(magicValue)

		if proto.Command(magic.ID) >= proto.CommandCount {
			return cursor, fmt.Errorf("invalid command magic: bad command id %d", magic.ID)
		}
		if magic.Length < 4 || int(magic.Length) > proto.BufferSize {
			return cursor, fmt.Errorf("invalid command magic: bad command length %d", magic.Length)
		}

		payloadSize := int(magic.Length) - 4
		if len(data)-cursor-4 < payloadSize {
			// Wait for the rest of the frame.
			return cursor, nil
		}

		payload := make([]byte, payloadSize)
		copy(payload, data[cursor+4:cursor+4+payloadSize])
		cursor += 4 + payloadSize

		if err := s.processCommand(clientID, proto.Command(magic.ID), magic, payload); err != nil {
			return cursor, err
		}
	}

	return cursor, nil
}

func (s *Server) processCommand(clientID uint64, id proto.Command, magic proto.MessageMagic, payload []byte) error {
	if len(payload) > 0 {
		client := s.client(clientID)
		if client == nil {
			return fmt.Errorf("no command state for client %d", clientID)
		}

		code := client.RollCode()
		padding := proto.CodePadding(code)
		if padding >= len(payload) {
			return fmt.Errorf("malformed command: length %d, padding %d", magic.Length, padding)
		}

		proto.XorPayload(code, payload)
		payload = payload[:len(payload)-padding]
	}

	handler := s.handler(id)
	if handler == nil {
		if !id.Muted() {
			s.log.Warn("unhandled command",
				zap.String("command", id.Name()),
				zap.Uint16("id", uint16(id)),
				zap.Uint16("length", magic.Length))
		}
		return nil
	}

	if err := s.safeCall(handler, clientID, packet.NewReader(payload)); err != nil {
		return fmt.Errorf("handle %s: %w", id.Name(), err)
	}

	if !id.Muted() {
		s.log.Debug("handled command",
			zap.String("command", id.Name()),
			zap.Uint16("id", uint16(id)))
	}
	return nil
}

// safeCall runs a handler with panic recovery so one bad command cannot
// take the read loop down without an orderly disconnect.
func (s *Server) safeCall(handler RawHandler, clientID uint64, r *packet.Reader) (err error) {
	defer func() {
		if rec := recover(); rec != nil {
			err = fmt.Errorf("handler panic: %v", rec)
		}
	}()
	return handler(clientID, r)
}
