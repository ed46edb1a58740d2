package command

import (
	"sync"

	"github.com/aliciago/server/internal/proto"
)

// Client is the per-connection command state: the inbound rolling XOR
// code, and the outbound code used only when outbound scrambling is on.
type Client struct {
	mu           sync.Mutex
	rollingCode  uint32
	outboundCode uint32
}

// SetCode seeds both rolling codes, as negotiated in the login reply.
func (c *Client) SetCode(code uint32) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.rollingCode = code
	c.outboundCode = code
}

// RollCode advances the inbound rolling code and returns the new value.
// The code is advanced before each inbound payload is descrambled and is
// never reused.
func (c *Client) RollCode() uint32 {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.rollingCode = proto.RollCode(c.rollingCode)
	return c.rollingCode
}

// RollOutboundCode advances the outbound code and returns the new value.
func (c *Client) RollOutboundCode() uint32 {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.outboundCode = proto.RollCode(c.outboundCode)
	return c.outboundCode
}
