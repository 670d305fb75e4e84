package mqttsn

import "io"

// UnsubscribePacket represents an MQTT-SN UNSUBSCRIBE message. The topic
// field follows the same topic-id-type encoding as SUBSCRIBE.
type UnsubscribePacket struct {
	Flags     Flags
	MsgID     uint16
	TopicName string // set when topic id type is normal
	TopicID   uint16 // set when topic id type is predefined or short
}

// Type returns the message type.
func (p *UnsubscribePacket) Type() MessageType { return MsgUNSUBSCRIBE }

// MessageID returns the message identifier.
func (p *UnsubscribePacket) MessageID() uint16 { return p.MsgID }

// SetMessageID sets the message identifier.
func (p *UnsubscribePacket) SetMessageID(id uint16) { p.MsgID = id }

// Encode writes the complete frame to the writer.
func (p *UnsubscribePacket) Encode(w io.Writer) (int, error) {
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

	return encodeFrame(w, MsgUNSUBSCRIBE, body)
}

// Decode parses the message body.
func (p *UnsubscribePacket) Decode(body []byte) error {
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
func (p *UnsubscribePacket) Validate() error {
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

// UnsubackPacket represents an MQTT-SN UNSUBACK message.
type UnsubackPacket struct {
	msgIDOnlyPacket
}

// Type returns the message type.
func (p *UnsubackPacket) Type() MessageType { return MsgUNSUBACK }

// Encode writes the complete frame to the writer.
func (p *UnsubackPacket) Encode(w io.Writer) (int, error) {
	if err := p.Validate(); err != nil {
		return 0, err
	}
	return p.encode(w, MsgUNSUBACK)
}
