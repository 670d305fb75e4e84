package mqttsn

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPubackPacketGoldenBytes(t *testing.T) {
	p := &PubackPacket{TopicID: 1, MsgID: 2, ReturnCode: ReturnAccepted}

	frame, err := EncodePacket(p)
	require.NoError(t, err)
	assert.Equal(t, []byte{0x07, 0x0D, 0x00, 0x01, 0x00, 0x02, 0x00}, frame)
}

func TestPubackPacketEncodeDecode(t *testing.T) {
	p := &PubackPacket{TopicID: 100, MsgID: 200, ReturnCode: ReturnRejectedInvalidTopic}

	frame, err := EncodePacket(p)
	require.NoError(t, err)

	decoded, err := DecodePacket(frame)
	require.NoError(t, err)
	assert.Equal(t, p, decoded)
}

func TestQoS2AckPacketsEncodeDecode(t *testing.T) {
	tests := []struct {
		name    string
		packet  PacketWithMsgID
		msgType MessageType
	}{
		{"pubrec", &PubrecPacket{}, MsgPUBREC},
		{"pubrel", &PubrelPacket{}, MsgPUBREL},
		{"pubcomp", &PubcompPacket{}, MsgPUBCOMP},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.packet.SetMessageID(0x1234)
			assert.Equal(t, tt.msgType, tt.packet.Type())

			frame, err := EncodePacket(tt.packet)
			require.NoError(t, err)
			assert.Equal(t, []byte{0x04, byte(tt.msgType), 0x12, 0x34}, frame)

			decoded, err := DecodePacket(frame)
			require.NoError(t, err)
			assert.Equal(t, uint16(0x1234), decoded.(PacketWithMsgID).MessageID())
		})
	}
}

func TestQoS2AckPacketsRejectZeroMsgID(t *testing.T) {
	for _, p := range []Packet{&PubrecPacket{}, &PubrelPacket{}, &PubcompPacket{}} {
		_, err := EncodePacket(p)
		assert.ErrorIs(t, err, ErrInvalidMessageID, p.Type().String())
	}
}
