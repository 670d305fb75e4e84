package mqttsn

import (
	"errors"
	"io"
)

// MessageType represents an MQTT-SN message type.
type MessageType byte

// MQTT-SN message types as defined in the specification.
const (
	MsgADVERTISE     MessageType = 0x00
	MsgSEARCHGW      MessageType = 0x01
	MsgGWINFO        MessageType = 0x02
	MsgCONNECT       MessageType = 0x04
	MsgCONNACK       MessageType = 0x05
	MsgWILLTOPICREQ  MessageType = 0x06
	MsgWILLTOPIC     MessageType = 0x07
	MsgWILLMSGREQ    MessageType = 0x08
	MsgWILLMSG       MessageType = 0x09
	MsgREGISTER      MessageType = 0x0A
	MsgREGACK        MessageType = 0x0B
	MsgPUBLISH       MessageType = 0x0C
	MsgPUBACK        MessageType = 0x0D
	MsgPUBCOMP       MessageType = 0x0E
	MsgPUBREC        MessageType = 0x0F
	MsgPUBREL        MessageType = 0x10
	MsgSUBSCRIBE     MessageType = 0x12
	MsgSUBACK        MessageType = 0x13
	MsgUNSUBSCRIBE   MessageType = 0x14
	MsgUNSUBACK      MessageType = 0x15
	MsgPINGREQ       MessageType = 0x16
	MsgPINGRESP      MessageType = 0x17
	MsgDISCONNECT    MessageType = 0x18
	MsgWILLTOPICUPD  MessageType = 0x1A
	MsgWILLTOPICRESP MessageType = 0x1B
	MsgWILLMSGUPD    MessageType = 0x1C
	MsgWILLMSGRESP   MessageType = 0x1D
)

// String returns the string representation of the message type.
func (m MessageType) String() string {
	switch m {
	case MsgADVERTISE:
		return "ADVERTISE"
	case MsgSEARCHGW:
		return "SEARCHGW"
	case MsgGWINFO:
		return "GWINFO"
	case MsgCONNECT:
		return "CONNECT"
	case MsgCONNACK:
		return "CONNACK"
	case MsgWILLTOPICREQ:
		return "WILLTOPICREQ"
	case MsgWILLTOPIC:
		return "WILLTOPIC"
	case MsgWILLMSGREQ:
		return "WILLMSGREQ"
	case MsgWILLMSG:
		return "WILLMSG"
	case MsgREGISTER:
		return "REGISTER"
	case MsgREGACK:
		return "REGACK"
	case MsgPUBLISH:
		return "PUBLISH"
	case MsgPUBACK:
		return "PUBACK"
	case MsgPUBCOMP:
		return "PUBCOMP"
	case MsgPUBREC:
		return "PUBREC"
	case MsgPUBREL:
		return "PUBREL"
	case MsgSUBSCRIBE:
		return "SUBSCRIBE"
	case MsgSUBACK:
		return "SUBACK"
	case MsgUNSUBSCRIBE:
		return "UNSUBSCRIBE"
	case MsgUNSUBACK:
		return "UNSUBACK"
	case MsgPINGREQ:
		return "PINGREQ"
	case MsgPINGRESP:
		return "PINGRESP"
	case MsgDISCONNECT:
		return "DISCONNECT"
	case MsgWILLTOPICUPD:
		return "WILLTOPICUPD"
	case MsgWILLTOPICRESP:
		return "WILLTOPICRESP"
	case MsgWILLMSGUPD:
		return "WILLMSGUPD"
	case MsgWILLMSGRESP:
		return "WILLMSGRESP"
	default:
		return "UNKNOWN"
	}
}

// Valid returns true if the message type is defined by the protocol.
// Types 0x03, 0x11 and 0x19 are reserved.
func (m MessageType) Valid() bool {
	switch m {
	case 0x03, 0x11, 0x19:
		return false
	}
	return m <= MsgWILLMSGRESP
}

// Header errors.
var (
	ErrInvalidMessageType = errors.New("mqttsn: invalid message type")
	ErrHeaderTruncated    = errors.New("mqttsn: header truncated")
	ErrLengthMismatch     = errors.New("mqttsn: declared length does not match frame size")
)

const (
	// longFrameMarker in the first octet selects the 3-octet length form.
	longFrameMarker = 0x01

	// MaxFrameSize is the largest frame the 16-bit extended length can carry.
	MaxFrameSize = 65535
)

// Header represents the common header of an MQTT-SN message: the frame
// length (1 octet, or 0x01 followed by a 16-bit length for frames longer
// than 255 octets) and the message type octet. Length counts the entire
// frame including the length field itself.
type Header struct {
	Length  uint16
	MsgType MessageType
}

// headerSize returns the encoded size of the header for a frame of the
// given total length.
func headerSize(frameLen int) int {
	if frameLen > 255 {
		return 4 // marker + 2-octet length + type
	}
	return 2 // length + type
}

// Encode writes the header to the writer.
// Returns the number of bytes written.
func (h *Header) Encode(w io.Writer) (int, error) {
	if !h.MsgType.Valid() {
		return 0, ErrInvalidMessageType
	}

	if h.Length > 255 {
		buf := [4]byte{longFrameMarker, byte(h.Length >> 8), byte(h.Length), byte(h.MsgType)}
		return w.Write(buf[:])
	}

	buf := [2]byte{byte(h.Length), byte(h.MsgType)}
	return w.Write(buf[:])
}

// decodeHeader parses the header at the start of a datagram.
// Returns the header and the number of octets it occupies.
func decodeHeader(frame []byte) (Header, int, error) {
	if len(frame) < 2 {
		return Header{}, 0, ErrHeaderTruncated
	}

	if frame[0] == longFrameMarker {
		if len(frame) < 4 {
			return Header{}, 0, ErrHeaderTruncated
		}
		h := Header{
			Length:  uint16(frame[1])<<8 | uint16(frame[2]),
			MsgType: MessageType(frame[3]),
		}
		if !h.MsgType.Valid() {
			return Header{}, 0, ErrInvalidMessageType
		}
		return h, 4, nil
	}

	h := Header{
		Length:  uint16(frame[0]),
		MsgType: MessageType(frame[1]),
	}
	if !h.MsgType.Valid() {
		return Header{}, 0, ErrInvalidMessageType
	}
	return h, 2, nil
}
