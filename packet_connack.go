package mqttsn

import "io"

// ConnackPacket represents an MQTT-SN CONNACK message.
type ConnackPacket struct {
	ReturnCode ReturnCode
}

// Type returns the message type.
func (p *ConnackPacket) Type() MessageType { return MsgCONNACK }

// Encode writes the complete frame to the writer.
func (p *ConnackPacket) Encode(w io.Writer) (int, error) {
	if err := p.Validate(); err != nil {
		return 0, err
	}

	return encodeFrame(w, MsgCONNACK, []byte{byte(p.ReturnCode)})
}

// Decode parses the message body.
func (p *ConnackPacket) Decode(body []byte) error {
	if len(body) < 1 {
		return ErrFieldTruncated
	}

	p.ReturnCode = ReturnCode(body[0])
	return nil
}

// Validate validates the packet contents.
func (p *ConnackPacket) Validate() error {
	if !p.ReturnCode.Valid() {
		return ErrInvalidReturnCode
	}
	return nil
}
