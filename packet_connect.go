package mqttsn

import "io"

// ProtocolID is the protocol identifier carried in CONNECT, fixed to 0x01
// by the MQTT-SN specification.
const ProtocolID = 0x01

// ConnectPacket represents an MQTT-SN CONNECT message.
type ConnectPacket struct {
	Flags      Flags
	ProtocolID byte
	Duration   uint16 // keep-alive interval in seconds
	ClientID   string
}

// Type returns the message type.
func (p *ConnectPacket) Type() MessageType { return MsgCONNECT }

// Encode writes the complete frame to the writer.
func (p *ConnectPacket) Encode(w io.Writer) (int, error) {
	if err := p.Validate(); err != nil {
		return 0, err
	}

	body := make([]byte, 0, 4+len(p.ClientID))
	body = append(body, byte(p.Flags), p.ProtocolID)
	body = putUint16(body, p.Duration)
	body = append(body, p.ClientID...)

	return encodeFrame(w, MsgCONNECT, body)
}

// Decode parses the message body.
func (p *ConnectPacket) Decode(body []byte) error {
	if len(body) < 4 {
		return ErrFieldTruncated
	}

	p.Flags = Flags(body[0])
	p.ProtocolID = body[1]
	p.Duration = uint16(body[2])<<8 | uint16(body[3])
	p.ClientID = string(body[4:])

	return nil
}

// Validate validates the packet contents.
func (p *ConnectPacket) Validate() error {
	if p.ProtocolID != ProtocolID {
		return ErrUnsupportedProtocol
	}
	return validateClientID(p.ClientID)
}
