package mqttsn

import (
	"errors"
	"time"
)

// EventHandler receives client lifecycle events. Events are errors so they
// can be inspected with errors.Is / errors.As.
type EventHandler func(client *Client, event error)

// Sentinel events for client lifecycle - check with errors.Is().
var (
	// ErrConnected is emitted when the client successfully connects.
	ErrConnected = errors.New("connected")

	// ErrDisconnected is emitted when the client disconnects gracefully.
	ErrDisconnected = errors.New("disconnected")

	// ErrConnectionLost is emitted when the gateway stops answering
	// keep-alive pings. The client does not reconnect on its own.
	ErrConnectionLost = errors.New("connection lost")
)

// Sentinel errors for protocol issues - check with errors.Is().
var (
	// ErrMalformedPacket is returned when an incoming datagram cannot be
	// decoded: corrupt length, unknown type, or truncated fields.
	ErrMalformedPacket = errors.New("malformed packet")

	// ErrProtocolViolation is returned when a well-formed reply arrives
	// with the right message ID but the wrong type for the pending request.
	ErrProtocolViolation = errors.New("protocol violation")

	// ErrUnsupportedProtocol is returned for a CONNECT with a protocol ID
	// other than 0x01.
	ErrUnsupportedProtocol = errors.New("unsupported protocol ID")

	// ErrInvalidReturnCode is returned when an acknowledgment carries a
	// return code outside the defined range.
	ErrInvalidReturnCode = errors.New("invalid return code")

	// ErrInvalidMessageID is returned when a message that requires a
	// message identifier carries zero.
	ErrInvalidMessageID = errors.New("invalid message ID")
)

// Sentinel errors for operations - check with errors.Is().
var (
	// ErrTimeout is returned when a request received no matching reply
	// after the configured number of retries.
	ErrTimeout = errors.New("request timed out")

	// ErrRejected is the base error wrapped by RejectedError.
	ErrRejected = errors.New("rejected by gateway")

	// ErrPayloadTooLarge is returned before any network I/O when a payload
	// cannot fit the maximum frame size.
	ErrPayloadTooLarge = errors.New("payload too large")

	// ErrInvalidState is returned when an operation is attempted from a
	// lifecycle state that forbids it.
	ErrInvalidState = errors.New("invalid client state")

	// ErrClientClosed is returned when an operation is attempted on a
	// closed client.
	ErrClientClosed = errors.New("client closed")

	// ErrRequestCancelled is returned to a waiter whose pending request
	// was cancelled, e.g. on session teardown.
	ErrRequestCancelled = errors.New("request cancelled")

	// ErrMessageIDExhausted is returned when every message identifier is
	// tied up in an unresolved request.
	ErrMessageIDExhausted = errors.New("no available message IDs")
)

// RejectedError reports a gateway rejection with its return code.
// Extract with errors.As().
type RejectedError struct {
	Op         string
	ReturnCode ReturnCode
}

func (e *RejectedError) Error() string {
	return e.Op + " " + e.ReturnCode.String()
}

func (e *RejectedError) Unwrap() error { return ErrRejected }

// newRejectedError creates a RejectedError for the given operation.
func newRejectedError(op string, code ReturnCode) *RejectedError {
	return &RejectedError{Op: op, ReturnCode: code}
}

// InvalidStateError reports an operation attempted from the wrong state.
// Extract with errors.As().
type InvalidStateError struct {
	Op    string
	State ClientState
}

func (e *InvalidStateError) Error() string {
	return e.Op + " not allowed in state " + e.State.String()
}

func (e *InvalidStateError) Unwrap() error { return ErrInvalidState }

// ProtocolViolationError reports an unexpected reply type for a pending
// request. Extract with errors.As().
type ProtocolViolationError struct {
	Expected MessageType
	Got      MessageType
	MsgID    uint16
}

func (e *ProtocolViolationError) Error() string {
	return "expected " + e.Expected.String() + " for message ID, got " + e.Got.String()
}

func (e *ProtocolViolationError) Unwrap() error { return ErrProtocolViolation }

// ConnectionLostError carries the cause of a keep-alive failure.
// Extract with errors.As().
type ConnectionLostError struct {
	LastSeen time.Time
}

func (e *ConnectionLostError) Error() string {
	return "connection lost: no PINGRESP since " + e.LastSeen.Format(time.RFC3339)
}

func (e *ConnectionLostError) Unwrap() error { return ErrConnectionLost }
