package mqttsn

import "sync/atomic"

// ClientStats holds client counters. All counters are monotonically
// increasing and safe for concurrent access.
type ClientStats struct {
	packetsSent     atomic.Uint64
	packetsReceived atomic.Uint64
	retransmissions atomic.Uint64
	timeouts        atomic.Uint64
	malformed       atomic.Uint64
}

// PacketsSent returns the number of frames handed to the transport.
func (s *ClientStats) PacketsSent() uint64 { return s.packetsSent.Load() }

// PacketsReceived returns the number of frames successfully decoded.
func (s *ClientStats) PacketsReceived() uint64 { return s.packetsReceived.Load() }

// Retransmissions returns the number of resent requests.
func (s *ClientStats) Retransmissions() uint64 { return s.retransmissions.Load() }

// Timeouts returns the number of requests abandoned after retry exhaustion.
func (s *ClientStats) Timeouts() uint64 { return s.timeouts.Load() }

// Malformed returns the number of datagrams dropped as undecodable.
func (s *ClientStats) Malformed() uint64 { return s.malformed.Load() }
