// Package system holds the cross-cutting server systems: one-time codes,
// race rooms, infraction verdicts and chat.
package system

import (
	"math/rand"
	"sync"
	"time"
)

// otpLifetime is how long a granted code stays authorizable.
const otpLifetime = 30 * time.Second

type otpCode struct {
	code   uint32
	expiry time.Time
}

// OtpSystem issues single-use codes handed between services: the lobby
// grants a code keyed by the target instance UID, and the target service
// authorizes it exactly once.
type OtpSystem struct {
	mu    sync.Mutex
	codes map[uint32]otpCode
}

func NewOtpSystem() *OtpSystem {
	return &OtpSystem{codes: make(map[uint32]otpCode)}
}

// GrantCode stores a fresh random code under key. A key with an
// outstanding code keeps its existing code.
func (s *OtpSystem) GrantCode(key uint32) uint32 {
	s.mu.Lock()
	defer s.mu.Unlock()

	if existing, ok := s.codes[key]; ok && time.Now().Before(existing.expiry) {
		return existing.code
	}
	code := otpCode{
		code:   rand.Uint32(),
		expiry: time.Now().Add(otpLifetime),
	}
	s.codes[key] = code
	return code.code
}

// AuthorizeCode returns true iff the code is present, unexpired and
// equal; a successful authorization removes the entry. A failed attempt
// leaves the entry to expire naturally.
func (s *OtpSystem) AuthorizeCode(key, code uint32) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry, ok := s.codes[key]
	if !ok {
		return false
	}

	expired := time.Now().After(entry.expiry)
	authorized := !expired && entry.code == code
	if authorized {
		delete(s.codes, key)
	}
	return authorized
}

// Tick removes expired codes.
func (s *OtpSystem) Tick() {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now()
	for key, entry := range s.codes {
		if now.After(entry.expiry) {
			delete(s.codes, key)
		}
	}
}
