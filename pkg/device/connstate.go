package device

import "sync"

// ConnStatus is the lifecycle state of a backend's vendor session.
type ConnStatus int

const (
	// Disconnected means no session exists yet; the next call may connect.
	Disconnected ConnStatus = iota
	// Connected means a session is established.
	Connected
	// Unavailable means the vendor software or hardware is absent. The
	// backend stays usable but reports empty scans and failed applies.
	Unavailable
)

func (s ConnStatus) String() string {
	switch s {
	case Connected:
		return "connected"
	case Unavailable:
		return "unavailable"
	default:
		return "disconnected"
	}
}

// ConnState is the connection-state machine shared by all backends. It is the
// only state the Controller contract assumes beyond each backend's private
// session handle. I/O failures drop Connected back to Disconnected so the
// next call retries; no persistent backoff is kept.
type ConnState struct {
	mu     sync.RWMutex
	status ConnStatus
	reason string
}

// Status returns the current state.
func (c *ConnState) Status() ConnStatus {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.status
}

// Reason returns the diagnostic recorded when the state became Unavailable.
func (c *ConnState) Reason() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.reason
}

// SetConnected marks a successful connect.
func (c *ConnState) SetConnected() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.status = Connected
	c.reason = ""
}

// SetDisconnected drops back to Disconnected after an I/O failure, keeping
// the backend eligible for a retry on the next call.
func (c *ConnState) SetDisconnected() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.status = Disconnected
}

// SetUnavailable records that the vendor integration is absent.
func (c *ConnState) SetUnavailable(reason string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.status = Unavailable
	c.reason = reason
}
