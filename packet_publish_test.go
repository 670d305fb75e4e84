package mqttsn

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPublishPacketGoldenBytes(t *testing.T) {
	var flags Flags
	flags.SetQoS(QoS1)

	p := &PublishPacket{
		Flags:   flags,
		TopicID: 1,
		MsgID:   2,
		Data:    []byte("21.5"),
	}

	frame, err := EncodePacket(p)
	require.NoError(t, err)

	want := []byte{
		0x0B, 0x0C, // length 11, PUBLISH
		0x20,       // flags: QoS 1
		0x00, 0x01, // topic id 1
		0x00, 0x02, // msg id 2
		'2', '1', '.', '5',
	}
	assert.Equal(t, want, frame)
}

func TestPublishPacketEncodeDecode(t *testing.T) {
	tests := []struct {
		name  string
		flags func(f *Flags)
		msgID uint16
		data  []byte
	}{
		{
			name:  "qos 0",
			flags: func(f *Flags) {},
			data:  []byte("hello"),
		},
		{
			name:  "qos 1 with dup",
			flags: func(f *Flags) { f.SetQoS(QoS1); f.SetDUP(true) },
			msgID: 5,
			data:  []byte("payload"),
		},
		{
			name:  "qos 2 retained",
			flags: func(f *Flags) { f.SetQoS(QoS2); f.SetRetain(true) },
			msgID: 6,
			data:  []byte{0x00, 0x01, 0x02},
		},
		{
			name:  "empty payload",
			flags: func(f *Flags) {},
			data:  []byte{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var flags Flags
			tt.flags(&flags)

			p := &PublishPacket{Flags: flags, TopicID: 7, MsgID: tt.msgID, Data: tt.data}

			frame, err := EncodePacket(p)
			require.NoError(t, err)

			decoded, err := DecodePacket(frame)
			require.NoError(t, err)

			pub := decoded.(*PublishPacket)
			assert.Equal(t, p.Flags, pub.Flags)
			assert.Equal(t, p.TopicID, pub.TopicID)
			assert.Equal(t, p.MsgID, pub.MsgID)
			assert.Equal(t, tt.data, pub.Data)
		})
	}
}

func TestPublishPacketLongFrame(t *testing.T) {
	// Payloads pushing the frame past 255 octets switch to the 3-octet
	// length form.
	data := make([]byte, 400)
	for i := range data {
		data[i] = byte(i)
	}

	p := &PublishPacket{TopicID: 1, Data: data}

	frame, err := EncodePacket(p)
	require.NoError(t, err)
	assert.Equal(t, byte(longFrameMarker), frame[0])
	assert.Len(t, frame, 400+9) // 4 header + flags + topic id + msg id

	decoded, err := DecodePacket(frame)
	require.NoError(t, err)
	assert.Equal(t, data, decoded.(*PublishPacket).Data)
}

func TestPublishPacketValidate(t *testing.T) {
	tests := []struct {
		name    string
		packet  PublishPacket
		wantErr error
	}{
		{
			name: "qos 1 without msg id",
			packet: PublishPacket{
				Flags:   Flags(QoS1 << 5),
				TopicID: 1,
			},
			wantErr: ErrInvalidMessageID,
		},
		{
			name: "qos -1 on normal topic id",
			packet: PublishPacket{
				Flags:   Flags(QoSMinusOne << 5),
				TopicID: 1,
			},
			wantErr: ErrInvalidTopicRef,
		},
		{
			name: "reserved topic id type",
			packet: PublishPacket{
				Flags:   Flags(0x03),
				TopicID: 1,
			},
			wantErr: ErrInvalidTopicRef,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := EncodePacket(&tt.packet)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestPublishPacketQoSMinusOnePredefined(t *testing.T) {
	var flags Flags
	flags.SetQoS(QoSMinusOne)
	flags.SetTopicIDType(TopicIDPredefined)

	p := &PublishPacket{Flags: flags, TopicID: 9, Data: []byte("x")}

	frame, err := EncodePacket(p)
	require.NoError(t, err)

	decoded, err := DecodePacket(frame)
	require.NoError(t, err)
	assert.Equal(t, QoSMinusOne, decoded.(*PublishPacket).Flags.QoS())
}

func TestPublishPacketTopic(t *testing.T) {
	var short Flags
	short.SetTopicIDType(TopicIDShort)

	p := &PublishPacket{Flags: short, TopicID: shortTopicID("ab")}
	assert.Equal(t, ShortTopic("ab"), p.Topic())

	var pre Flags
	pre.SetTopicIDType(TopicIDPredefined)

	p = &PublishPacket{Flags: pre, TopicID: 12}
	assert.Equal(t, PredefinedTopic(12), p.Topic())

	p = &PublishPacket{TopicID: 3}
	assert.Equal(t, TopicIDNormal, p.Topic().Kind())
	assert.Equal(t, uint16(3), p.Topic().ID())
}
