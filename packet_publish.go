package mqttsn

import "io"

// PublishPacket represents an MQTT-SN PUBLISH message. The TopicID field
// carries a registered or predefined topic id, or a packed short topic name,
// depending on the topic id type bits in Flags. MsgID is zero for QoS 0.
type PublishPacket struct {
	Flags   Flags
	TopicID uint16
	MsgID   uint16
	Data    []byte
}

// Type returns the message type.
func (p *PublishPacket) Type() MessageType { return MsgPUBLISH }

// MessageID returns the message identifier.
func (p *PublishPacket) MessageID() uint16 { return p.MsgID }

// SetMessageID sets the message identifier.
func (p *PublishPacket) SetMessageID(id uint16) { p.MsgID = id }

// Encode writes the complete frame to the writer.
func (p *PublishPacket) Encode(w io.Writer) (int, error) {
	if err := p.Validate(); err != nil {
		return 0, err
	}

	body := make([]byte, 0, 5+len(p.Data))
	body = append(body, byte(p.Flags))
	body = putUint16(body, p.TopicID)
	body = putUint16(body, p.MsgID)
	body = append(body, p.Data...)

	return encodeFrame(w, MsgPUBLISH, body)
}

// Decode parses the message body.
func (p *PublishPacket) Decode(body []byte) error {
	if len(body) < 5 {
		return ErrFieldTruncated
	}

	p.Flags = Flags(body[0])
	p.TopicID = uint16(body[1])<<8 | uint16(body[2])
	p.MsgID = uint16(body[3])<<8 | uint16(body[4])
	p.Data = append([]byte(nil), body[5:]...)

	return nil
}

// Validate validates the packet contents.
func (p *PublishPacket) Validate() error {
	if p.Flags.TopicIDType() > TopicIDShort {
		return ErrInvalidTopicRef
	}
	if p.Flags.QoS() == QoSMinusOne && p.Flags.TopicIDType() == TopicIDNormal {
		// QoS -1 publishes bypass the session, so only predefined and
		// short topics can be addressed.
		return ErrInvalidTopicRef
	}
	if p.Flags.QoS() != QoS0 && p.Flags.QoS() != QoSMinusOne && p.MsgID == 0 {
		return ErrInvalidMessageID
	}
	return nil
}

// Topic returns the topic reference addressed by the packet.
func (p *PublishPacket) Topic() TopicRef {
	switch p.Flags.TopicIDType() {
	case TopicIDPredefined:
		return PredefinedTopic(p.TopicID)
	case TopicIDShort:
		return ShortTopic(shortTopicName(p.TopicID))
	default:
		return TopicRef{kind: TopicIDNormal, id: p.TopicID}
	}
}
