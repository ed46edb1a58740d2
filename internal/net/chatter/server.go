// Package chatter implements the messenger's framing: a plain
// [length u16][command id u16][payload] frame, header and payload XORed
// byte-wise with a fixed 4-byte key. There is no rolling code.
package chatter

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

const headerSize = 4

// RawHandler handles a descrambled chatter payload.
type RawHandler func(clientID uint64, r *packet.Reader) error

// Events receives connection lifecycle notifications.
type Events struct {
	OnClientConnected    func(clientID uint64)
	OnClientDisconnected func(clientID uint64)
}

// Server is the messenger's typed packet server.
type Server struct {
	events Events
	log    *zap.Logger

	server *gonet.Server

	mu       sync.Mutex
	handlers map[proto.ChatterCommand]RawHandler
}

func NewServer(events Events, log *zap.Logger) *Server {
	s := &Server{
		events:   events,
		log:      log,
		handlers: make(map[proto.ChatterCommand]RawHandler),
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

// Register binds a raw handler to a chatter command id.
func (s *Server) Register(id proto.ChatterCommand, handler RawHandler) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.handlers[id] = handler
}

func (s *Server) handler(id proto.ChatterCommand) RawHandler {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.handlers[id]
}

// QueueCommand frames, scrambles and queues a chatter command.
func (s *Server) QueueCommand(clientID uint64, id proto.ChatterCommand, command proto.Writable) {
	client := s.server.Client(clientID)
	if client == nil {
		return
	}

	w := packet.NewWriter()
	command.Write(w)
	if err := w.Err(); err != nil {
		s.log.Error("encode chatter command failed",
			zap.Uint16("id", uint16(id)),
			zap.Error(err))
		client.End()
		return
	}

	payload := w.Bytes()
	frame := make([]byte, headerSize+len(payload))
	binary.LittleEndian.PutUint16(frame[0:2], uint16(len(frame)))
	binary.LittleEndian.PutUint16(frame[2:4], uint16(id))
	copy(frame[headerSize:], payload)

	applyXor(frame)
	client.QueueWrite(frame)
}

// OnClientConnected implements gonet.EventHandler.
func (s *Server) OnClientConnected(clientID uint64) {
	if s.events.OnClientConnected != nil {
		s.events.OnClientConnected(clientID)
	}
}

// OnClientDisconnected implements gonet.EventHandler.
func (s *Server) OnClientDisconnected(clientID uint64) {
	if s.events.OnClientDisconnected != nil {
		s.events.OnClientDisconnected(clientID)
	}
}

// OnClientData implements gonet.EventHandler.
func (s *Server) OnClientData(clientID uint64, data []byte) (int, error) {
	cursor := 0

	for len(data)-cursor >= headerSize {
		length := binary.LittleEndian.Uint16(data[cursor:]) ^ xorKeyUint16(0)
		id := binary.LittleEndian.Uint16(data[cursor+2:]) ^ xorKeyUint16(2)

		if int(length) < headerSize {
			return cursor, fmt.Errorf("invalid chatter frame length %d", length)
		}
		if len(data)-cursor < int(length) {
			// Wait for the rest of the frame.
			return cursor, nil
		}

		payload := make([]byte, int(length)-headerSize)
		copy(payload, data[cursor+headerSize:cursor+int(length)])
		for i := range payload {
			payload[i] ^= proto.MessengerXorKey[(headerSize+i)%4]
		}
		cursor += int(length)

		handler := s.handler(proto.ChatterCommand(id))
		if handler == nil {
			s.log.Warn("unhandled chatter command", zap.Uint16("id", id))
			continue
		}
		if err := handler(clientID, packet.NewReader(payload)); err != nil {
			return cursor, fmt.Errorf("handle chatter command %d: %w", id, err)
		}
	}

	return cursor, nil
}

// applyXor scrambles a whole frame in place with the fixed key.
func applyXor(frame []byte) {
	for i := range frame {
		frame[i] ^= proto.MessengerXorKey[i%4]
	}
}

// xorKeyUint16 returns two key bytes at offset as a little-endian u16.
func xorKeyUint16(offset int) uint16 {
	return binary.LittleEndian.Uint16(proto.MessengerXorKey[offset : offset+2])
}
