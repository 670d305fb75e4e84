package mqttsn

import "io"

// AdvertisePacket represents an MQTT-SN ADVERTISE message, broadcast
// periodically by gateways to announce their presence.
type AdvertisePacket struct {
	GatewayID byte
	Duration  uint16 // seconds until the next ADVERTISE
}

// Type returns the message type.
func (p *AdvertisePacket) Type() MessageType { return MsgADVERTISE }

// Encode writes the complete frame to the writer.
func (p *AdvertisePacket) Encode(w io.Writer) (int, error) {
	body := make([]byte, 0, 3)
	body = append(body, p.GatewayID)
	body = putUint16(body, p.Duration)
	return encodeFrame(w, MsgADVERTISE, body)
}

// Decode parses the message body.
func (p *AdvertisePacket) Decode(body []byte) error {
	if len(body) < 3 {
		return ErrFieldTruncated
	}

	p.GatewayID = body[0]
	p.Duration = uint16(body[1])<<8 | uint16(body[2])
	return nil
}

// Validate validates the packet contents.
func (p *AdvertisePacket) Validate() error {
	return nil
}

// SearchGwPacket represents an MQTT-SN SEARCHGW message, broadcast by a
// client looking for a gateway. Radius bounds how far the broadcast travels.
type SearchGwPacket struct {
	Radius byte
}

// Type returns the message type.
func (p *SearchGwPacket) Type() MessageType { return MsgSEARCHGW }

// Encode writes the complete frame to the writer.
func (p *SearchGwPacket) Encode(w io.Writer) (int, error) {
	return encodeFrame(w, MsgSEARCHGW, []byte{p.Radius})
}

// Decode parses the message body.
func (p *SearchGwPacket) Decode(body []byte) error {
	if len(body) < 1 {
		return ErrFieldTruncated
	}

	p.Radius = body[0]
	return nil
}

// Validate validates the packet contents.
func (p *SearchGwPacket) Validate() error {
	return nil
}

// GwInfoPacket represents an MQTT-SN GWINFO message. Gateways answer
// SEARCHGW with their id; clients relaying on a gateway's behalf also
// include its address.
type GwInfoPacket struct {
	GatewayID      byte
	GatewayAddress []byte
}

// Type returns the message type.
func (p *GwInfoPacket) Type() MessageType { return MsgGWINFO }

// Encode writes the complete frame to the writer.
func (p *GwInfoPacket) Encode(w io.Writer) (int, error) {
	body := make([]byte, 0, 1+len(p.GatewayAddress))
	body = append(body, p.GatewayID)
	body = append(body, p.GatewayAddress...)
	return encodeFrame(w, MsgGWINFO, body)
}

// Decode parses the message body.
func (p *GwInfoPacket) Decode(body []byte) error {
	if len(body) < 1 {
		return ErrFieldTruncated
	}

	p.GatewayID = body[0]
	if len(body) > 1 {
		p.GatewayAddress = append([]byte(nil), body[1:]...)
	} else {
		p.GatewayAddress = nil
	}
	return nil
}

// Validate validates the packet contents.
func (p *GwInfoPacket) Validate() error {
	return nil
}
