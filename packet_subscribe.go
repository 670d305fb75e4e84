package mqttsn

import "io"

// SubscribePacket represents an MQTT-SN SUBSCRIBE message. Depending on the
// topic id type bits the topic field carries either a full topic name, a
// predefined topic id, or a packed short topic name.
type SubscribePacket struct {
	Flags     Flags
	MsgID     uint16
	TopicName string // set when topic id type is normal
	TopicID   uint16 // set when topic id type is predefined or short
}

// Type returns the message type.
func (p *SubscribePacket) Type() MessageType { return MsgSUBSCRIBE }

// MessageID returns the message identifier.
func (p *SubscribePacket) MessageID() uint16 { return p.MsgID }

// SetMessageID sets the message identifier.
func (p *SubscribePacket) SetMessageID(id uint16) { p.MsgID = id }

// Encode writes the complete frame to the writer.
func (p *SubscribePacket) Encode(w io.Writer) (int, error) {
	if err := p.Validate(); err != nil {
		return 0, err
	}

	body := make([]byte, 0, 5+len(p.TopicName))
	body = append(body, byte(p.Flags))
	body = putUint16(body, p.MsgID)

	if p.Flags.TopicIDType() == TopicIDNormal {
		body = append(body, p.TopicName...)
	} else {
		body = putUint16(body, p.TopicID)
	}

	return encodeFrame(w, MsgSUBSCRIBE, body)
}

// Decode parses the message body.
func (p *SubscribePacket) Decode(body []byte) error {
	if len(body) < 4 {
		return ErrFieldTruncated
	}

	p.Flags = Flags(body[0])
	p.MsgID = uint16(body[1])<<8 | uint16(body[2])

	if p.Flags.TopicIDType() == TopicIDNormal {
		p.TopicName = string(body[3:])
		p.TopicID = 0
	} else {
		if len(body) < 5 {
			return ErrFieldTruncated
		}
		p.TopicID = uint16(body[3])<<8 | uint16(body[4])
		p.TopicName = ""
	}

	return nil
}

// Validate validates the packet contents.
func (p *SubscribePacket) Validate() error {
	if p.MsgID == 0 {
		return ErrInvalidMessageID
	}

	switch p.Flags.TopicIDType() {
	case TopicIDNormal:
		return validateTopicName(p.TopicName)
	case TopicIDPredefined, TopicIDShort:
		return nil
	default:
		return ErrInvalidTopicRef
	}
}

// SubackPacket represents an MQTT-SN SUBACK message. The granted QoS is
// carried in the flags octet; TopicID is assigned for wildcard-free topic
// name subscriptions and zero otherwise.
type SubackPacket struct {
	Flags      Flags
	TopicID    uint16
	MsgID      uint16
	ReturnCode ReturnCode
}

// Type returns the message type.
func (p *SubackPacket) Type() MessageType { return MsgSUBACK }

// MessageID returns the message identifier.
func (p *SubackPacket) MessageID() uint16 { return p.MsgID }

// SetMessageID sets the message identifier.
func (p *SubackPacket) SetMessageID(id uint16) { p.MsgID = id }

// GrantedQoS returns the QoS level granted by the gateway.
func (p *SubackPacket) GrantedQoS() byte { return p.Flags.QoS() }

// Encode writes the complete frame to the writer.
func (p *SubackPacket) Encode(w io.Writer) (int, error) {
	if err := p.Validate(); err != nil {
		return 0, err
	}

	body := make([]byte, 0, 6)
	body = append(body, byte(p.Flags))
	body = putUint16(body, p.TopicID)
	body = putUint16(body, p.MsgID)
	body = append(body, byte(p.ReturnCode))

	return encodeFrame(w, MsgSUBACK, body)
}

// Decode parses the message body.
func (p *SubackPacket) Decode(body []byte) error {
	if len(body) < 6 {
		return ErrFieldTruncated
	}

	p.Flags = Flags(body[0])
	p.TopicID = uint16(body[1])<<8 | uint16(body[2])
	p.MsgID = uint16(body[3])<<8 | uint16(body[4])
	p.ReturnCode = ReturnCode(body[5])

	return nil
}

// Validate validates the packet contents.
func (p *SubackPacket) Validate() error {
	if !p.ReturnCode.Valid() {
		return ErrInvalidReturnCode
	}
	return nil
}
