package mqttsn

import (
	"sync"
	"time"
)

// KeepAliveTracker tracks keep-alive liveness for one session. While the
// session is active, if nothing has been sent within the keep-alive
// interval a PINGREQ is due; a ping left unanswered for a full interval
// means the connection is lost.
type KeepAliveTracker struct {
	mu          sync.Mutex
	interval    time.Duration
	lastSend    time.Time
	lastRecv    time.Time
	pingSentAt  time.Time
	pingPending bool
}

// NewKeepAliveTracker creates a tracker for the given interval.
// A zero interval disables keep-alive.
func NewKeepAliveTracker(interval time.Duration) *KeepAliveTracker {
	now := time.Now()
	return &KeepAliveTracker{
		interval: interval,
		lastSend: now,
		lastRecv: now,
	}
}

// Interval returns the keep-alive interval.
func (k *KeepAliveTracker) Interval() time.Duration {
	k.mu.Lock()
	defer k.mu.Unlock()

	return k.interval
}

// MarkSend records an outgoing packet. Any traffic counts: the gateway
// only cares that the client is not silent.
func (k *KeepAliveTracker) MarkSend() {
	k.mu.Lock()
	defer k.mu.Unlock()

	k.lastSend = time.Now()
}

// MarkRecv records an incoming packet and clears a pending ping.
func (k *KeepAliveTracker) MarkRecv() {
	k.mu.Lock()
	defer k.mu.Unlock()

	k.lastRecv = time.Now()
	k.pingPending = false
}

// PingDue returns true if the client has been silent for a full interval
// and no ping is already outstanding.
func (k *KeepAliveTracker) PingDue() bool {
	k.mu.Lock()
	defer k.mu.Unlock()

	if k.interval == 0 || k.pingPending {
		return false
	}
	return time.Since(k.lastSend) >= k.interval
}

// PingSent records an outgoing PINGREQ.
func (k *KeepAliveTracker) PingSent() {
	k.mu.Lock()
	defer k.mu.Unlock()

	now := time.Now()
	k.pingSentAt = now
	k.lastSend = now
	k.pingPending = true
}

// Expired returns true if an outstanding ping has gone unanswered for a
// full keep-alive interval.
func (k *KeepAliveTracker) Expired() bool {
	k.mu.Lock()
	defer k.mu.Unlock()

	if k.interval == 0 || !k.pingPending {
		return false
	}
	return time.Since(k.pingSentAt) >= k.interval
}

// LastSeen returns the time of the last packet received from the gateway.
func (k *KeepAliveTracker) LastSeen() time.Time {
	k.mu.Lock()
	defer k.mu.Unlock()

	return k.lastRecv
}
