package mqttsn

import "io"

// RegisterPacket represents an MQTT-SN REGISTER message. A client-initiated
// registration carries TopicID 0; the gateway assigns the id in REGACK.
// Gateways also send REGISTER to announce ids for wildcard subscriptions.
type RegisterPacket struct {
	TopicID   uint16
	MsgID     uint16
	TopicName string
}

// Type returns the message type.
func (p *RegisterPacket) Type() MessageType { return MsgREGISTER }

// MessageID returns the message identifier.
func (p *RegisterPacket) MessageID() uint16 { return p.MsgID }

// SetMessageID sets the message identifier.
func (p *RegisterPacket) SetMessageID(id uint16) { p.MsgID = id }

// Encode writes the complete frame to the writer.
func (p *RegisterPacket) Encode(w io.Writer) (int, error) {
	if err := p.Validate(); err != nil {
		return 0, err
	}

	body := make([]byte, 0, 4+len(p.TopicName))
	body = putUint16(body, p.TopicID)
	body = putUint16(body, p.MsgID)
	body = append(body, p.TopicName...)

	return encodeFrame(w, MsgREGISTER, body)
}

// Decode parses the message body.
func (p *RegisterPacket) Decode(body []byte) error {
	if len(body) < 4 {
		return ErrFieldTruncated
	}

	p.TopicID = uint16(body[0])<<8 | uint16(body[1])
	p.MsgID = uint16(body[2])<<8 | uint16(body[3])
	p.TopicName = string(body[4:])

	return nil
}

// Validate validates the packet contents.
func (p *RegisterPacket) Validate() error {
	return validateTopicName(p.TopicName)
}

// RegackPacket represents an MQTT-SN REGACK message.
type RegackPacket struct {
	TopicID    uint16
	MsgID      uint16
	ReturnCode ReturnCode
}

// Type returns the message type.
func (p *RegackPacket) Type() MessageType { return MsgREGACK }

// MessageID returns the message identifier.
func (p *RegackPacket) MessageID() uint16 { return p.MsgID }

// SetMessageID sets the message identifier.
func (p *RegackPacket) SetMessageID(id uint16) { p.MsgID = id }

// Encode writes the complete frame to the writer.
func (p *RegackPacket) Encode(w io.Writer) (int, error) {
	if err := p.Validate(); err != nil {
		return 0, err
	}

	body := make([]byte, 0, 5)
	body = putUint16(body, p.TopicID)
	body = putUint16(body, p.MsgID)
	body = append(body, byte(p.ReturnCode))

	return encodeFrame(w, MsgREGACK, body)
}

// Decode parses the message body.
func (p *RegackPacket) Decode(body []byte) error {
	if len(body) < 5 {
		return ErrFieldTruncated
	}

	p.TopicID = uint16(body[0])<<8 | uint16(body[1])
	p.MsgID = uint16(body[2])<<8 | uint16(body[3])
	p.ReturnCode = ReturnCode(body[4])

	return nil
}

// Validate validates the packet contents.
func (p *RegackPacket) Validate() error {
	if !p.ReturnCode.Valid() {
		return ErrInvalidReturnCode
	}
	return nil
}
