package system

import (
	"fmt"
	"sync"

	"github.com/aliciago/server/internal/proto"
)

// Room carries the make-room parameters plus the entry OTP and the
// in-race counter.
type Room struct {
	Uid         uint32
	Name        string
	Description string
	MissionID   uint16
	MapBlockID  uint16
	Otp         uint32
	PlayerCount uint8
	GameMode    proto.GameMode
	TeamMode    proto.TeamMode
	Unk3        uint8
	Bitset      uint16
	Unk4        uint8
}

// RoomSystem allocates race rooms with monotonic UIDs. Deletion is
// explicit.
type RoomSystem struct {
	mu          sync.Mutex
	sequencedID uint32
	rooms       map[uint32]*Room
}

func NewRoomSystem() *RoomSystem {
	return &RoomSystem{rooms: make(map[uint32]*Room)}
}

// CreateRoom allocates a room with a fresh UID.
func (s *RoomSystem) CreateRoom() *Room {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.sequencedID++
	room := &Room{Uid: s.sequencedID}
	s.rooms[room.Uid] = room
	return room
}

// GetRoom returns the room with the given UID.
func (s *RoomSystem) GetRoom(uid uint32) (*Room, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	room, ok := s.rooms[uid]
	if !ok {
		return nil, fmt.Errorf("room %d does not exist", uid)
	}
	return room, nil
}

// DeleteRoom removes the room with the given UID.
func (s *RoomSystem) DeleteRoom(uid uint32) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.rooms[uid]; !ok {
		return fmt.Errorf("room %d does not exist", uid)
	}
	delete(s.rooms, uid)
	return nil
}

// Rooms returns a snapshot of the active rooms.
func (s *RoomSystem) Rooms() []*Room {
	s.mu.Lock()
	defer s.mu.Unlock()

	rooms := make([]*Room, 0, len(s.rooms))
	for _, room := range s.rooms {
		rooms = append(rooms, room)
	}
	return rooms
}
