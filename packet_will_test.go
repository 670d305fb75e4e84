package mqttsn

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWillRequestPacketsEncodeDecode(t *testing.T) {
	tests := []struct {
		packet Packet
		frame  []byte
	}{
		{&WillTopicReqPacket{}, []byte{0x02, 0x06}},
		{&WillMsgReqPacket{}, []byte{0x02, 0x08}},
	}

	for _, tt := range tests {
		t.Run(tt.packet.Type().String(), func(t *testing.T) {
			frame, err := EncodePacket(tt.packet)
			require.NoError(t, err)
			assert.Equal(t, tt.frame, frame)

			decoded, err := DecodePacket(frame)
			require.NoError(t, err)
			assert.Equal(t, tt.packet.Type(), decoded.Type())
		})
	}
}

func TestWillTopicPacketEncodeDecode(t *testing.T) {
	var flags Flags
	flags.SetQoS(QoS1)
	flags.SetRetain(true)

	p := &WillTopicPacket{Flags: flags, WillTopic: "client/status"}

	frame, err := EncodePacket(p)
	require.NoError(t, err)

	decoded, err := DecodePacket(frame)
	require.NoError(t, err)
	assert.Equal(t, p, decoded)
}

func TestWillTopicPacketEmptyDeletesWill(t *testing.T) {
	// An empty will topic encodes as a zero-length body.
	frame, err := EncodePacket(&WillTopicPacket{Flags: Flags(0x10)})
	require.NoError(t, err)
	assert.Equal(t, []byte{0x02, 0x07}, frame)

	decoded, err := DecodePacket(frame)
	require.NoError(t, err)

	w := decoded.(*WillTopicPacket)
	assert.Equal(t, "", w.WillTopic)
	assert.Equal(t, Flags(0), w.Flags)
}

func TestWillMsgPacketEncodeDecode(t *testing.T) {
	p := &WillMsgPacket{WillMsg: []byte("offline")}

	frame, err := EncodePacket(p)
	require.NoError(t, err)

	decoded, err := DecodePacket(frame)
	require.NoError(t, err)
	assert.Equal(t, []byte("offline"), decoded.(*WillMsgPacket).WillMsg)
}

func TestWillUpdatePacketsEncodeDecode(t *testing.T) {
	upd := &WillTopicUpdPacket{Flags: Flags(QoS1 << 5), WillTopic: "status/new"}

	frame, err := EncodePacket(upd)
	require.NoError(t, err)

	decoded, err := DecodePacket(frame)
	require.NoError(t, err)
	assert.Equal(t, upd, decoded)

	msgUpd := &WillMsgUpdPacket{WillMsg: []byte("gone")}

	frame, err = EncodePacket(msgUpd)
	require.NoError(t, err)

	decoded, err = DecodePacket(frame)
	require.NoError(t, err)
	assert.Equal(t, msgUpd, decoded)
}

func TestWillResponsePacketsEncodeDecode(t *testing.T) {
	topicResp := &WillTopicRespPacket{ReturnCode: ReturnAccepted}

	frame, err := EncodePacket(topicResp)
	require.NoError(t, err)
	assert.Equal(t, []byte{0x03, 0x1B, 0x00}, frame)

	msgResp := &WillMsgRespPacket{ReturnCode: ReturnRejectedNotSupported}

	frame, err = EncodePacket(msgResp)
	require.NoError(t, err)

	decoded, err := DecodePacket(frame)
	require.NoError(t, err)
	assert.Equal(t, msgResp, decoded)
}
