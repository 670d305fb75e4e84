package mqttsn

import "io"

// DisconnectPacket represents an MQTT-SN DISCONNECT message. A non-zero
// Duration asks the gateway to keep the session alive while the client
// sleeps; HasDuration distinguishes that form from the plain disconnect.
type DisconnectPacket struct {
	Duration    uint16
	HasDuration bool
}

// Type returns the message type.
func (p *DisconnectPacket) Type() MessageType { return MsgDISCONNECT }

// Encode writes the complete frame to the writer.
func (p *DisconnectPacket) Encode(w io.Writer) (int, error) {
	if !p.HasDuration {
		return encodeFrame(w, MsgDISCONNECT, nil)
	}

	body := make([]byte, 0, 2)
	body = putUint16(body, p.Duration)
	return encodeFrame(w, MsgDISCONNECT, body)
}

// Decode parses the message body.
func (p *DisconnectPacket) Decode(body []byte) error {
	if len(body) == 0 {
		p.Duration = 0
		p.HasDuration = false
		return nil
	}
	if len(body) < 2 {
		return ErrFieldTruncated
	}

	p.Duration = uint16(body[0])<<8 | uint16(body[1])
	p.HasDuration = true
	return nil
}

// Validate validates the packet contents.
func (p *DisconnectPacket) Validate() error {
	return nil
}
