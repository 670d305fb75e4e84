package mqttsn

import (
	"context"
	"errors"
	"sync"
	"time"
)

// RequestKind identifies which exchange a pending request belongs to, and
// therefore which reply type resolves it.
type RequestKind int

// Request kinds for acknowledged exchanges.
const (
	KindConnect RequestKind = iota
	KindRegister
	KindSubscribe
	KindUnsubscribe
	KindPublishQoS1
	KindPublishQoS2 // first phase, awaiting PUBREC
	KindPubrel      // second phase, awaiting PUBCOMP
	KindPing
	KindWillTopicUpd
	KindWillMsgUpd
)

// ExpectedReply returns the message type that resolves a request of this kind.
func (k RequestKind) ExpectedReply() MessageType {
	switch k {
	case KindConnect:
		return MsgCONNACK
	case KindRegister:
		return MsgREGACK
	case KindSubscribe:
		return MsgSUBACK
	case KindUnsubscribe:
		return MsgUNSUBACK
	case KindPublishQoS1:
		return MsgPUBACK
	case KindPublishQoS2:
		return MsgPUBREC
	case KindPubrel:
		return MsgPUBCOMP
	case KindPing:
		return MsgPINGRESP
	case KindWillTopicUpd:
		return MsgWILLTOPICRESP
	case KindWillMsgUpd:
		return MsgWILLMSGRESP
	default:
		return 0xFF
	}
}

// ErrDuplicateRequest is returned when a message identifier is already
// tied to an unresolved request.
var ErrDuplicateRequest = errors.New("mqttsn: message ID already in flight")

// PendingRequest represents one in-flight request awaiting its reply.
// Requests without a message identifier on the wire (CONNECT, PINGREQ,
// will updates) use identifier zero.
type PendingRequest struct {
	MsgID      uint16
	Kind       RequestKind
	SentAt     time.Time
	RetryCount int

	reply     chan Packet
	cancelled chan struct{}
	once      sync.Once
}

// Await blocks until the reply arrives, the attempt times out, the request
// is cancelled, or the context is done. A nil packet with a nil error
// signals the timeout of this attempt; the caller decides whether to
// retransmit.
func (r *PendingRequest) Await(ctx context.Context, timeout time.Duration) (Packet, error) {
	timer := time.NewTimer(timeout)
	defer timer.Stop()

	select {
	case pkt := <-r.reply:
		return pkt, nil
	case <-r.cancelled:
		return nil, ErrRequestCancelled
	case <-ctx.Done():
		return nil, ctx.Err()
	case <-timer.C:
		return nil, nil
	}
}

// InflightTracker correlates outgoing requests with their replies. At most
// one request may be pending per message identifier.
type InflightTracker struct {
	mu      sync.Mutex
	pending map[uint16]*PendingRequest
}

// NewInflightTracker creates an empty tracker.
func NewInflightTracker() *InflightTracker {
	return &InflightTracker{
		pending: make(map[uint16]*PendingRequest),
	}
}

// Track registers a request awaiting the reply for its kind.
func (t *InflightTracker) Track(msgID uint16, kind RequestKind) (*PendingRequest, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if _, exists := t.pending[msgID]; exists {
		return nil, ErrDuplicateRequest
	}

	req := &PendingRequest{
		MsgID:     msgID,
		Kind:      kind,
		SentAt:    time.Now(),
		reply:     make(chan Packet, 1),
		cancelled: make(chan struct{}),
	}
	t.pending[msgID] = req

	return req, nil
}

// isReplyType reports whether a message type acknowledges a client request.
// Gateway-initiated traffic (PUBLISH, REGISTER, will prompts, DISCONNECT)
// never resolves a pending request even if it carries a colliding identifier.
func isReplyType(m MessageType) bool {
	switch m {
	case MsgCONNACK, MsgREGACK, MsgSUBACK, MsgUNSUBACK,
		MsgPUBACK, MsgPUBREC, MsgPUBCOMP, MsgPINGRESP,
		MsgWILLTOPICRESP, MsgWILLMSGRESP:
		return true
	}
	return false
}

// Resolve matches an incoming packet against the pending requests.
// Returns true if the packet resolved a request. A reply whose message
// identifier matches a pending request but whose type is not the expected
// one leaves the request pending and returns a ProtocolViolationError.
func (t *InflightTracker) Resolve(packet Packet) (bool, error) {
	if !isReplyType(packet.Type()) {
		return false, nil
	}

	msgID := uint16(0)
	if withID, ok := packet.(PacketWithMsgID); ok {
		msgID = withID.MessageID()
	}

	t.mu.Lock()
	req, ok := t.pending[msgID]
	if !ok {
		t.mu.Unlock()
		return false, nil
	}

	if packet.Type() != req.Kind.ExpectedReply() {
		t.mu.Unlock()
		return false, &ProtocolViolationError{
			Expected: req.Kind.ExpectedReply(),
			Got:      packet.Type(),
			MsgID:    msgID,
		}
	}

	delete(t.pending, msgID)
	t.mu.Unlock()

	req.once.Do(func() {
		req.reply <- packet
	})

	return true, nil
}

// Cancel abandons a pending request. The waiter observes
// ErrRequestCancelled; a late reply for the identifier is ignored.
func (t *InflightTracker) Cancel(msgID uint16) {
	t.mu.Lock()
	req, ok := t.pending[msgID]
	if ok {
		delete(t.pending, msgID)
	}
	t.mu.Unlock()

	if ok {
		req.once.Do(func() {
			close(req.cancelled)
		})
	}
}

// CancelAll abandons every pending request, e.g. on session teardown.
func (t *InflightTracker) CancelAll() {
	t.mu.Lock()
	reqs := make([]*PendingRequest, 0, len(t.pending))
	for id, req := range t.pending {
		reqs = append(reqs, req)
		delete(t.pending, id)
	}
	t.mu.Unlock()

	for _, req := range reqs {
		req.once.Do(func() {
			close(req.cancelled)
		})
	}
}

// Count returns the number of pending requests.
func (t *InflightTracker) Count() int {
	t.mu.Lock()
	defer t.mu.Unlock()

	return len(t.pending)
}
