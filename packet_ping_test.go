package mqttsn

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPingreqPacketEncodeDecode(t *testing.T) {
	// Plain PINGREQ is an empty body.
	frame, err := EncodePacket(&PingreqPacket{})
	require.NoError(t, err)
	assert.Equal(t, []byte{0x02, 0x16}, frame)

	decoded, err := DecodePacket(frame)
	require.NoError(t, err)
	assert.Equal(t, "", decoded.(*PingreqPacket).ClientID)
}

func TestPingreqPacketWithClientID(t *testing.T) {
	// Sleeping clients include the client ID to drain buffered messages.
	p := &PingreqPacket{ClientID: "sleepy-1"}

	frame, err := EncodePacket(p)
	require.NoError(t, err)

	decoded, err := DecodePacket(frame)
	require.NoError(t, err)
	assert.Equal(t, "sleepy-1", decoded.(*PingreqPacket).ClientID)
}

func TestPingrespPacketEncodeDecode(t *testing.T) {
	frame, err := EncodePacket(&PingrespPacket{})
	require.NoError(t, err)
	assert.Equal(t, []byte{0x02, 0x17}, frame)

	decoded, err := DecodePacket(frame)
	require.NoError(t, err)
	assert.IsType(t, &PingrespPacket{}, decoded)
}
