package mqttsn

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUDPTransportRoundTrip(t *testing.T) {
	a, err := NewUDPTransport("127.0.0.1:0")
	require.NoError(t, err)
	defer a.Close()

	b, err := NewUDPTransport("127.0.0.1:0")
	require.NoError(t, err)
	defer b.Close()

	frame, err := EncodePacket(&PingreqPacket{})
	require.NoError(t, err)

	require.NoError(t, a.Send(b.LocalAddr(), frame))

	src, received, err := b.Receive(time.Now().Add(time.Second))
	require.NoError(t, err)
	assert.Equal(t, frame, received)
	assert.Equal(t, a.LocalAddr().String(), src.String())
}

func TestUDPTransportReceiveTimeout(t *testing.T) {
	tr, err := NewUDPTransport("127.0.0.1:0")
	require.NoError(t, err)
	defer tr.Close()

	_, _, err = tr.Receive(time.Now().Add(20 * time.Millisecond))
	require.Error(t, err)
	assert.True(t, isTimeout(err))
}

func TestUDPTransportReceiveAfterClose(t *testing.T) {
	tr, err := NewUDPTransport("127.0.0.1:0")
	require.NoError(t, err)
	require.NoError(t, tr.Close())

	_, _, err = tr.Receive(time.Now().Add(time.Second))
	require.Error(t, err)
	assert.False(t, isTimeout(err))
}

func TestSearchGatewayCollectsAnswers(t *testing.T) {
	// A fake gateway socket answers SEARCHGW with GWINFO.
	gateway, err := NewUDPTransport("127.0.0.1:0")
	require.NoError(t, err)
	defer gateway.Close()

	go func() {
		src, data, err := gateway.Receive(time.Now().Add(2 * time.Second))
		if err != nil {
			return
		}
		if packet, err := DecodePacket(data); err == nil && packet.Type() == MsgSEARCHGW {
			frame, _ := EncodePacket(&GwInfoPacket{GatewayID: 3})
			gateway.Send(src, frame)
		}
	}()

	client, err := NewUDPTransport("127.0.0.1:0")
	require.NoError(t, err)
	defer client.Close()

	found, err := SearchGateway(client, gateway.LocalAddr(), 1, 300*time.Millisecond)
	require.NoError(t, err)
	require.Len(t, found, 1)
	assert.Equal(t, byte(3), found[0].GatewayID)
	assert.Equal(t, gateway.LocalAddr().String(), found[0].Addr.String())
}

func TestSearchGatewayNoAnswers(t *testing.T) {
	sink, err := NewUDPTransport("127.0.0.1:0")
	require.NoError(t, err)
	defer sink.Close()

	client, err := NewUDPTransport("127.0.0.1:0")
	require.NoError(t, err)
	defer client.Close()

	found, err := SearchGateway(client, sink.LocalAddr(), 1, 50*time.Millisecond)
	require.NoError(t, err)
	assert.Empty(t, found)
}
