package mqttsn

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDisconnectPacketPlain(t *testing.T) {
	frame, err := EncodePacket(&DisconnectPacket{})
	require.NoError(t, err)
	assert.Equal(t, []byte{0x02, 0x18}, frame)

	decoded, err := DecodePacket(frame)
	require.NoError(t, err)

	d := decoded.(*DisconnectPacket)
	assert.False(t, d.HasDuration)
	assert.Equal(t, uint16(0), d.Duration)
}

func TestDisconnectPacketWithDuration(t *testing.T) {
	// The duration form asks the gateway to keep the session while the
	// client sleeps.
	p := &DisconnectPacket{Duration: 300, HasDuration: true}

	frame, err := EncodePacket(p)
	require.NoError(t, err)
	assert.Equal(t, []byte{0x04, 0x18, 0x01, 0x2C}, frame)

	decoded, err := DecodePacket(frame)
	require.NoError(t, err)
	assert.Equal(t, p, decoded)
}
