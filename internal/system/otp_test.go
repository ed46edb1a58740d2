package system

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestOtpSingleUse(t *testing.T) {
	s := NewOtpSystem()

	code := s.GrantCode(42)
	require.True(t, s.AuthorizeCode(42, code))
	// A replay of the same pair fails.
	require.False(t, s.AuthorizeCode(42, code))
}

func TestOtpWrongCodeLeavesEntry(t *testing.T) {
	s := NewOtpSystem()

	code := s.GrantCode(42)
	require.False(t, s.AuthorizeCode(42, code+1))
	// The stored code stays authorizable after a failed attempt.
	require.True(t, s.AuthorizeCode(42, code))
}

func TestOtpUnknownKey(t *testing.T) {
	s := NewOtpSystem()
	require.False(t, s.AuthorizeCode(7, 1234))
}

func TestOtpGrantIsStablePerKey(t *testing.T) {
	s := NewOtpSystem()

	first := s.GrantCode(42)
	second := s.GrantCode(42)
	require.Equal(t, first, second)
}

func TestOtpExpiry(t *testing.T) {
	s := NewOtpSystem()

	code := s.GrantCode(42)
	s.mu.Lock()
	entry := s.codes[42]
	entry.expiry = time.Now().Add(-time.Second)
	s.codes[42] = entry
	s.mu.Unlock()

	require.False(t, s.AuthorizeCode(42, code))

	// The expiry sweep removes the stale entry.
	s.Tick()
	s.mu.Lock()
	_, present := s.codes[42]
	s.mu.Unlock()
	require.False(t, present)
}
