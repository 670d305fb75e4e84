package mqttsn

import "io"

// Packet is the interface that all MQTT-SN messages implement.
type Packet interface {
	// Type returns the message type.
	Type() MessageType

	// Encode writes the complete frame, header included, to the writer.
	// Returns the number of bytes written.
	Encode(w io.Writer) (int, error)

	// Decode parses the message body. body holds the octets following the
	// header; the caller has already verified the declared frame length.
	Decode(body []byte) error

	// Validate validates the packet contents.
	Validate() error
}

// PacketWithMsgID is implemented by messages that carry a message identifier.
type PacketWithMsgID interface {
	Packet

	// MessageID returns the message identifier.
	MessageID() uint16

	// SetMessageID sets the message identifier.
	SetMessageID(id uint16)
}

// Message represents an application message delivered to or published by
// the client. This is the user-facing struct with public fields.
type Message struct {
	// Topic identifies the destination or origin topic.
	Topic TopicRef

	// Payload is the application message payload.
	Payload []byte

	// QoS is the delivery level (0, 1, 2, or QoSMinusOne on publish).
	QoS byte

	// Retain indicates a retained message.
	Retain bool

	// DUP indicates a possible duplicate delivery.
	DUP bool
}

// Clone creates a deep copy of the message.
func (m *Message) Clone() *Message {
	if m == nil {
		return nil
	}

	clone := &Message{
		Topic:  m.Topic,
		QoS:    m.QoS,
		Retain: m.Retain,
		DUP:    m.DUP,
	}

	if m.Payload != nil {
		clone.Payload = make([]byte, len(m.Payload))
		copy(clone.Payload, m.Payload)
	}

	return clone
}

// encodeFrame writes the header for a body of the given length followed by
// the body itself. Shared by every packet Encode implementation.
func encodeFrame(w io.Writer, msgType MessageType, body []byte) (int, error) {
	frameLen := len(body) + headerSize(len(body)+2)
	if frameLen > MaxFrameSize {
		return 0, ErrPayloadTooLarge
	}

	header := Header{
		Length:  uint16(frameLen),
		MsgType: msgType,
	}

	n, err := header.Encode(w)
	if err != nil {
		return n, err
	}

	n2, err := w.Write(body)
	return n + n2, err
}
