package mqttsn

import (
	"context"
	"crypto/tls"
	"errors"
	"net"
	"time"

	"github.com/quic-go/quic-go"
)

// ErrTLSRequired is returned when TLS configuration is required but not provided.
var ErrTLSRequired = errors.New("TLS configuration is required for QUIC")

// QUICTransport carries MQTT-SN frames in QUIC unreliable datagrams.
// QUIC datagrams preserve the lossy, message-oriented semantics the
// protocol engine expects while adding encryption and path validation.
type QUICTransport struct {
	conn *quic.Conn
}

// QUICDialer connects to MQTT-SN gateways over QUIC.
type QUICDialer struct {
	// TLSConfig is the TLS configuration for the QUIC connection.
	// QUIC requires TLS 1.3, so this must be configured.
	TLSConfig *tls.Config

	// QUICConfig is the QUIC configuration. Datagram support is enabled
	// regardless of the value set here.
	QUICConfig *quic.Config
}

// Dial connects to the gateway address.
func (d *QUICDialer) Dial(ctx context.Context, address string) (*QUICTransport, error) {
	if d.TLSConfig == nil {
		return nil, ErrTLSRequired
	}

	tlsConf := d.TLSConfig.Clone()
	if len(tlsConf.NextProtos) == 0 {
		tlsConf.NextProtos = []string{"mqtt-sn"}
	}

	var quicConf quic.Config
	if d.QUICConfig != nil {
		quicConf = *d.QUICConfig
	}
	quicConf.EnableDatagrams = true

	conn, err := quic.DialAddr(ctx, address, tlsConf, &quicConf)
	if err != nil {
		return nil, err
	}

	return &QUICTransport{conn: conn}, nil
}

// Send transmits one frame. The destination is ignored: a QUIC connection
// is bound to its peer.
func (t *QUICTransport) Send(_ net.Addr, frame []byte) error {
	return t.conn.SendDatagram(frame)
}

// Receive blocks until a datagram arrives or the deadline passes.
func (t *QUICTransport) Receive(deadline time.Time) (net.Addr, []byte, error) {
	ctx := context.Background()
	if !deadline.IsZero() {
		var cancel context.CancelFunc
		ctx, cancel = context.WithDeadline(ctx, deadline)
		defer cancel()
	}

	frame, err := t.conn.ReceiveDatagram(ctx)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return nil, nil, &timeoutError{}
		}
		return nil, nil, err
	}

	return t.conn.RemoteAddr(), frame, nil
}

// LocalAddr returns the local endpoint address.
func (t *QUICTransport) LocalAddr() net.Addr {
	return t.conn.LocalAddr()
}

// Close closes the QUIC connection.
func (t *QUICTransport) Close() error {
	return t.conn.CloseWithError(0, "")
}

// timeoutError satisfies net.Error so QUIC deadline expiry matches the
// Transport contract.
type timeoutError struct{}

func (e *timeoutError) Error() string   { return "mqttsn: receive deadline exceeded" }
func (e *timeoutError) Timeout() bool   { return true }
func (e *timeoutError) Temporary() bool { return true }
