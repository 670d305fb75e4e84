package mqttsn

import (
	"bytes"
	"fmt"
)

// DecodePacket parses one complete MQTT-SN frame. The frame must span the
// whole datagram: a declared length that disagrees with the buffer size is
// a malformed packet.
func DecodePacket(frame []byte) (Packet, error) {
	header, hdrLen, err := decodeHeader(frame)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedPacket, err)
	}

	if int(header.Length) != len(frame) {
		return nil, fmt.Errorf("%w: %w", ErrMalformedPacket, ErrLengthMismatch)
	}

	var packet Packet
	switch header.MsgType {
	case MsgADVERTISE:
		packet = &AdvertisePacket{}
	case MsgSEARCHGW:
		packet = &SearchGwPacket{}
	case MsgGWINFO:
		packet = &GwInfoPacket{}
	case MsgCONNECT:
		packet = &ConnectPacket{}
	case MsgCONNACK:
		packet = &ConnackPacket{}
	case MsgWILLTOPICREQ:
		packet = &WillTopicReqPacket{}
	case MsgWILLTOPIC:
		packet = &WillTopicPacket{}
	case MsgWILLMSGREQ:
		packet = &WillMsgReqPacket{}
	case MsgWILLMSG:
		packet = &WillMsgPacket{}
	case MsgREGISTER:
		packet = &RegisterPacket{}
	case MsgREGACK:
		packet = &RegackPacket{}
	case MsgPUBLISH:
		packet = &PublishPacket{}
	case MsgPUBACK:
		packet = &PubackPacket{}
	case MsgPUBCOMP:
		packet = &PubcompPacket{}
	case MsgPUBREC:
		packet = &PubrecPacket{}
	case MsgPUBREL:
		packet = &PubrelPacket{}
	case MsgSUBSCRIBE:
		packet = &SubscribePacket{}
	case MsgSUBACK:
		packet = &SubackPacket{}
	case MsgUNSUBSCRIBE:
		packet = &UnsubscribePacket{}
	case MsgUNSUBACK:
		packet = &UnsubackPacket{}
	case MsgPINGREQ:
		packet = &PingreqPacket{}
	case MsgPINGRESP:
		packet = &PingrespPacket{}
	case MsgDISCONNECT:
		packet = &DisconnectPacket{}
	case MsgWILLTOPICUPD:
		packet = &WillTopicUpdPacket{}
	case MsgWILLTOPICRESP:
		packet = &WillTopicRespPacket{}
	case MsgWILLMSGUPD:
		packet = &WillMsgUpdPacket{}
	case MsgWILLMSGRESP:
		packet = &WillMsgRespPacket{}
	default:
		return nil, fmt.Errorf("%w: type 0x%02x", ErrMalformedPacket, byte(header.MsgType))
	}

	if err := packet.Decode(frame[hdrLen:]); err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrMalformedPacket, header.MsgType, err)
	}

	return packet, nil
}

// EncodePacket serializes a packet into a single datagram.
func EncodePacket(packet Packet) ([]byte, error) {
	var buf bytes.Buffer
	if _, err := packet.Encode(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
