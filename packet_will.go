package mqttsn

import "io"

// WillTopicReqPacket represents an MQTT-SN WILLTOPICREQ message, sent by
// the gateway during connection setup when the CONNECT Will flag was set.
type WillTopicReqPacket struct{}

// Type returns the message type.
func (p *WillTopicReqPacket) Type() MessageType { return MsgWILLTOPICREQ }

// Encode writes the complete frame to the writer.
func (p *WillTopicReqPacket) Encode(w io.Writer) (int, error) {
	return encodeFrame(w, MsgWILLTOPICREQ, nil)
}

// Decode parses the message body.
func (p *WillTopicReqPacket) Decode(body []byte) error { return nil }

// Validate validates the packet contents.
func (p *WillTopicReqPacket) Validate() error { return nil }

// WillTopicPacket represents an MQTT-SN WILLTOPIC message. An empty topic
// (zero-length body on the wire) deletes the will.
type WillTopicPacket struct {
	Flags     Flags
	WillTopic string
}

// Type returns the message type.
func (p *WillTopicPacket) Type() MessageType { return MsgWILLTOPIC }

// Encode writes the complete frame to the writer.
func (p *WillTopicPacket) Encode(w io.Writer) (int, error) {
	if p.WillTopic == "" {
		return encodeFrame(w, MsgWILLTOPIC, nil)
	}

	body := make([]byte, 0, 1+len(p.WillTopic))
	body = append(body, byte(p.Flags))
	body = append(body, p.WillTopic...)
	return encodeFrame(w, MsgWILLTOPIC, body)
}

// Decode parses the message body.
func (p *WillTopicPacket) Decode(body []byte) error {
	if len(body) == 0 {
		p.Flags = 0
		p.WillTopic = ""
		return nil
	}

	p.Flags = Flags(body[0])
	p.WillTopic = string(body[1:])
	return nil
}

// Validate validates the packet contents.
func (p *WillTopicPacket) Validate() error { return nil }

// WillMsgReqPacket represents an MQTT-SN WILLMSGREQ message.
type WillMsgReqPacket struct{}

// Type returns the message type.
func (p *WillMsgReqPacket) Type() MessageType { return MsgWILLMSGREQ }

// Encode writes the complete frame to the writer.
func (p *WillMsgReqPacket) Encode(w io.Writer) (int, error) {
	return encodeFrame(w, MsgWILLMSGREQ, nil)
}

// Decode parses the message body.
func (p *WillMsgReqPacket) Decode(body []byte) error { return nil }

// Validate validates the packet contents.
func (p *WillMsgReqPacket) Validate() error { return nil }

// WillMsgPacket represents an MQTT-SN WILLMSG message.
type WillMsgPacket struct {
	WillMsg []byte
}

// Type returns the message type.
func (p *WillMsgPacket) Type() MessageType { return MsgWILLMSG }

// Encode writes the complete frame to the writer.
func (p *WillMsgPacket) Encode(w io.Writer) (int, error) {
	return encodeFrame(w, MsgWILLMSG, p.WillMsg)
}

// Decode parses the message body.
func (p *WillMsgPacket) Decode(body []byte) error {
	p.WillMsg = append([]byte(nil), body...)
	return nil
}

// Validate validates the packet contents.
func (p *WillMsgPacket) Validate() error { return nil }

// WillTopicUpdPacket represents an MQTT-SN WILLTOPICUPD message, updating
// the will topic of an active session.
type WillTopicUpdPacket struct {
	Flags     Flags
	WillTopic string
}

// Type returns the message type.
func (p *WillTopicUpdPacket) Type() MessageType { return MsgWILLTOPICUPD }

// Encode writes the complete frame to the writer.
func (p *WillTopicUpdPacket) Encode(w io.Writer) (int, error) {
	if p.WillTopic == "" {
		return encodeFrame(w, MsgWILLTOPICUPD, nil)
	}

	body := make([]byte, 0, 1+len(p.WillTopic))
	body = append(body, byte(p.Flags))
	body = append(body, p.WillTopic...)
	return encodeFrame(w, MsgWILLTOPICUPD, body)
}

// Decode parses the message body.
func (p *WillTopicUpdPacket) Decode(body []byte) error {
	if len(body) == 0 {
		p.Flags = 0
		p.WillTopic = ""
		return nil
	}

	p.Flags = Flags(body[0])
	p.WillTopic = string(body[1:])
	return nil
}

// Validate validates the packet contents.
func (p *WillTopicUpdPacket) Validate() error { return nil }

// WillTopicRespPacket represents an MQTT-SN WILLTOPICRESP message.
type WillTopicRespPacket struct {
	ReturnCode ReturnCode
}

// Type returns the message type.
func (p *WillTopicRespPacket) Type() MessageType { return MsgWILLTOPICRESP }

// Encode writes the complete frame to the writer.
func (p *WillTopicRespPacket) Encode(w io.Writer) (int, error) {
	if err := p.Validate(); err != nil {
		return 0, err
	}
	return encodeFrame(w, MsgWILLTOPICRESP, []byte{byte(p.ReturnCode)})
}

// Decode parses the message body.
func (p *WillTopicRespPacket) Decode(body []byte) error {
	if len(body) < 1 {
		return ErrFieldTruncated
	}
	p.ReturnCode = ReturnCode(body[0])
	return nil
}

// Validate validates the packet contents.
func (p *WillTopicRespPacket) Validate() error {
	if !p.ReturnCode.Valid() {
		return ErrInvalidReturnCode
	}
	return nil
}

// WillMsgUpdPacket represents an MQTT-SN WILLMSGUPD message.
type WillMsgUpdPacket struct {
	WillMsg []byte
}

// Type returns the message type.
func (p *WillMsgUpdPacket) Type() MessageType { return MsgWILLMSGUPD }

// Encode writes the complete frame to the writer.
func (p *WillMsgUpdPacket) Encode(w io.Writer) (int, error) {
	return encodeFrame(w, MsgWILLMSGUPD, p.WillMsg)
}

// Decode parses the message body.
func (p *WillMsgUpdPacket) Decode(body []byte) error {
	p.WillMsg = append([]byte(nil), body...)
	return nil
}

// Validate validates the packet contents.
func (p *WillMsgUpdPacket) Validate() error { return nil }

// WillMsgRespPacket represents an MQTT-SN WILLMSGRESP message.
type WillMsgRespPacket struct {
	ReturnCode ReturnCode
}

// Type returns the message type.
func (p *WillMsgRespPacket) Type() MessageType { return MsgWILLMSGRESP }

// Encode writes the complete frame to the writer.
func (p *WillMsgRespPacket) Encode(w io.Writer) (int, error) {
	if err := p.Validate(); err != nil {
		return 0, err
	}
	return encodeFrame(w, MsgWILLMSGRESP, []byte{byte(p.ReturnCode)})
}

// Decode parses the message body.
func (p *WillMsgRespPacket) Decode(body []byte) error {
	if len(body) < 1 {
		return ErrFieldTruncated
	}
	p.ReturnCode = ReturnCode(body[0])
	return nil
}

// Validate validates the packet contents.
func (p *WillMsgRespPacket) Validate() error {
	if !p.ReturnCode.Valid() {
		return ErrInvalidReturnCode
	}
	return nil
}
