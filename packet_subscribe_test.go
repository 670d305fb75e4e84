package mqttsn

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSubscribePacketGoldenBytes(t *testing.T) {
	var flags Flags
	flags.SetQoS(QoS1)

	p := &SubscribePacket{
		Flags:     flags,
		MsgID:     3,
		TopicName: "alerts/#",
	}

	frame, err := EncodePacket(p)
	require.NoError(t, err)

	want := []byte{
		0x0D, 0x12, // length 13, SUBSCRIBE
		0x20,       // flags: QoS 1, normal topic id type
		0x00, 0x03, // msg id 3
		'a', 'l', 'e', 'r', 't', 's', '/', '#',
	}
	assert.Equal(t, want, frame)
}

func TestSubscribePacketEncodeDecode(t *testing.T) {
	tests := []struct {
		name   string
		packet SubscribePacket
	}{
		{
			name: "topic name",
			packet: SubscribePacket{
				Flags:     Flags(QoS1 << 5),
				MsgID:     1,
				TopicName: "sensors/+/temp",
			},
		},
		{
			name: "predefined topic id",
			packet: SubscribePacket{
				Flags:   Flags(byte(TopicIDPredefined)),
				MsgID:   2,
				TopicID: 17,
			},
		},
		{
			name: "short topic",
			packet: SubscribePacket{
				Flags:   Flags(byte(TopicIDShort)),
				MsgID:   3,
				TopicID: shortTopicID("ab"),
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			frame, err := EncodePacket(&tt.packet)
			require.NoError(t, err)

			decoded, err := DecodePacket(frame)
			require.NoError(t, err)
			assert.Equal(t, &tt.packet, decoded)
		})
	}
}

func TestSubscribePacketRejectZeroMsgID(t *testing.T) {
	p := &SubscribePacket{TopicName: "t"}
	_, err := EncodePacket(p)
	assert.ErrorIs(t, err, ErrInvalidMessageID)
}

func TestSubackPacketGrantedQoS(t *testing.T) {
	var flags Flags
	flags.SetQoS(QoS2)

	p := &SubackPacket{
		Flags:      flags,
		TopicID:    5,
		MsgID:      3,
		ReturnCode: ReturnAccepted,
	}

	frame, err := EncodePacket(p)
	require.NoError(t, err)

	decoded, err := DecodePacket(frame)
	require.NoError(t, err)

	suback := decoded.(*SubackPacket)
	assert.Equal(t, QoS2, suback.GrantedQoS())
	assert.Equal(t, uint16(5), suback.TopicID)
}

func TestUnsubscribePacketEncodeDecode(t *testing.T) {
	tests := []struct {
		name   string
		packet UnsubscribePacket
	}{
		{
			name:   "topic name",
			packet: UnsubscribePacket{MsgID: 4, TopicName: "a/b/c"},
		},
		{
			name: "predefined topic id",
			packet: UnsubscribePacket{
				Flags:   Flags(byte(TopicIDPredefined)),
				MsgID:   5,
				TopicID: 9,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			frame, err := EncodePacket(&tt.packet)
			require.NoError(t, err)

			decoded, err := DecodePacket(frame)
			require.NoError(t, err)
			assert.Equal(t, &tt.packet, decoded)
		})
	}
}

func TestUnsubackPacketEncodeDecode(t *testing.T) {
	p := &UnsubackPacket{}
	p.SetMessageID(8)

	frame, err := EncodePacket(p)
	require.NoError(t, err)
	assert.Equal(t, []byte{0x04, 0x15, 0x00, 0x08}, frame)

	decoded, err := DecodePacket(frame)
	require.NoError(t, err)
	assert.Equal(t, uint16(8), decoded.(*UnsubackPacket).MessageID())
}
