package mqttsn

import "io"

// PingreqPacket represents an MQTT-SN PINGREQ message. The optional client
// identifier is only sent by sleeping clients asking the gateway to flush
// buffered messages.
type PingreqPacket struct {
	ClientID string
}

// Type returns the message type.
func (p *PingreqPacket) Type() MessageType { return MsgPINGREQ }

// Encode writes the complete frame to the writer.
func (p *PingreqPacket) Encode(w io.Writer) (int, error) {
	if err := p.Validate(); err != nil {
		return 0, err
	}

	return encodeFrame(w, MsgPINGREQ, []byte(p.ClientID))
}

// Decode parses the message body.
func (p *PingreqPacket) Decode(body []byte) error {
	p.ClientID = string(body)
	return nil
}

// Validate validates the packet contents.
func (p *PingreqPacket) Validate() error {
	if p.ClientID == "" {
		return nil
	}
	return validateClientID(p.ClientID)
}

// PingrespPacket represents an MQTT-SN PINGRESP message.
type PingrespPacket struct{}

// Type returns the message type.
func (p *PingrespPacket) Type() MessageType { return MsgPINGRESP }

// Encode writes the complete frame to the writer.
func (p *PingrespPacket) Encode(w io.Writer) (int, error) {
	return encodeFrame(w, MsgPINGRESP, nil)
}

// Decode parses the message body.
func (p *PingrespPacket) Decode(body []byte) error {
	return nil
}

// Validate validates the packet contents.
func (p *PingrespPacket) Validate() error {
	return nil
}
