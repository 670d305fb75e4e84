package mqttsn

import "io"

// PubackPacket represents an MQTT-SN PUBACK message. Unlike the other
// publish acknowledgments it carries the topic id and a return code, so a
// gateway can reject a publish addressed to an unknown id.
type PubackPacket struct {
	TopicID    uint16
	MsgID      uint16
	ReturnCode ReturnCode
}

// Type returns the message type.
func (p *PubackPacket) Type() MessageType { return MsgPUBACK }

// MessageID returns the message identifier.
func (p *PubackPacket) MessageID() uint16 { return p.MsgID }

// SetMessageID sets the message identifier.
func (p *PubackPacket) SetMessageID(id uint16) { p.MsgID = id }

// Encode writes the complete frame to the writer.
func (p *PubackPacket) Encode(w io.Writer) (int, error) {
	if err := p.Validate(); err != nil {
		return 0, err
	}

	body := make([]byte, 0, 5)
	body = putUint16(body, p.TopicID)
	body = putUint16(body, p.MsgID)
	body = append(body, byte(p.ReturnCode))

	return encodeFrame(w, MsgPUBACK, body)
}

// Decode parses the message body.
func (p *PubackPacket) Decode(body []byte) error {
	if len(body) < 5 {
		return ErrFieldTruncated
	}

	p.TopicID = uint16(body[0])<<8 | uint16(body[1])
	p.MsgID = uint16(body[2])<<8 | uint16(body[3])
	p.ReturnCode = ReturnCode(body[4])

	return nil
}

// Validate validates the packet contents.
func (p *PubackPacket) Validate() error {
	if !p.ReturnCode.Valid() {
		return ErrInvalidReturnCode
	}
	return nil
}

// msgIDOnlyPacket is the shared shape of PUBREC, PUBREL and PUBCOMP:
// a bare message identifier.
type msgIDOnlyPacket struct {
	MsgID uint16
}

// MessageID returns the message identifier.
func (p *msgIDOnlyPacket) MessageID() uint16 { return p.MsgID }

// SetMessageID sets the message identifier.
func (p *msgIDOnlyPacket) SetMessageID(id uint16) { p.MsgID = id }

func (p *msgIDOnlyPacket) encode(w io.Writer, msgType MessageType) (int, error) {
	body := make([]byte, 0, 2)
	body = putUint16(body, p.MsgID)
	return encodeFrame(w, msgType, body)
}

// Decode parses the message body.
func (p *msgIDOnlyPacket) Decode(body []byte) error {
	if len(body) < 2 {
		return ErrFieldTruncated
	}
	p.MsgID = uint16(body[0])<<8 | uint16(body[1])
	return nil
}

// Validate validates the packet contents.
func (p *msgIDOnlyPacket) Validate() error {
	if p.MsgID == 0 {
		return ErrInvalidMessageID
	}
	return nil
}

// PubrecPacket represents an MQTT-SN PUBREC message.
type PubrecPacket struct {
	msgIDOnlyPacket
}

// Type returns the message type.
func (p *PubrecPacket) Type() MessageType { return MsgPUBREC }

// Encode writes the complete frame to the writer.
func (p *PubrecPacket) Encode(w io.Writer) (int, error) {
	if err := p.Validate(); err != nil {
		return 0, err
	}
	return p.encode(w, MsgPUBREC)
}

// PubrelPacket represents an MQTT-SN PUBREL message.
type PubrelPacket struct {
	msgIDOnlyPacket
}

// Type returns the message type.
func (p *PubrelPacket) Type() MessageType { return MsgPUBREL }

// Encode writes the complete frame to the writer.
func (p *PubrelPacket) Encode(w io.Writer) (int, error) {
	if err := p.Validate(); err != nil {
		return 0, err
	}
	return p.encode(w, MsgPUBREL)
}

// PubcompPacket represents an MQTT-SN PUBCOMP message.
type PubcompPacket struct {
	msgIDOnlyPacket
}

// Type returns the message type.
func (p *PubcompPacket) Type() MessageType { return MsgPUBCOMP }

// Encode writes the complete frame to the writer.
func (p *PubcompPacket) Encode(w io.Writer) (int, error) {
	if err := p.Validate(); err != nil {
		return 0, err
	}
	return p.encode(w, MsgPUBCOMP)
}
