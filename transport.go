package mqttsn

import (
	"net"
	"time"
)

// Transport carries MQTT-SN frames as opaque datagrams. Implementations
// must be safe for one concurrent sender and one concurrent receiver.
type Transport interface {
	// Send transmits one frame to the destination.
	Send(dest net.Addr, frame []byte) error

	// Receive blocks until a datagram arrives or the deadline passes.
	// A zero deadline blocks indefinitely. Deadline expiry is reported
	// with an error satisfying net.Error.Timeout().
	Receive(deadline time.Time) (net.Addr, []byte, error)

	// LocalAddr returns the local endpoint address.
	LocalAddr() net.Addr

	// Close releases the underlying socket. A blocked Receive returns
	// with an error after Close.
	Close() error
}

// UDPTransport carries MQTT-SN frames over UDP, the transport the protocol
// was designed for.
type UDPTransport struct {
	conn *net.UDPConn
}

// NewUDPTransport opens a UDP socket bound to the local address.
// Pass ":0" to let the kernel pick a port.
func NewUDPTransport(localAddr string) (*UDPTransport, error) {
	addr, err := net.ResolveUDPAddr("udp", localAddr)
	if err != nil {
		return nil, err
	}

	conn, err := net.ListenUDP("udp", addr)
	if err != nil {
		return nil, err
	}

	return &UDPTransport{conn: conn}, nil
}

// Send transmits one frame to the destination.
func (t *UDPTransport) Send(dest net.Addr, frame []byte) error {
	_, err := t.conn.WriteTo(frame, dest)
	return err
}

// Receive blocks until a datagram arrives or the deadline passes.
func (t *UDPTransport) Receive(deadline time.Time) (net.Addr, []byte, error) {
	if err := t.conn.SetReadDeadline(deadline); err != nil {
		return nil, nil, err
	}

	buf := getFrameBuffer()
	n, src, err := t.conn.ReadFrom(buf)
	if err != nil {
		putFrameBuffer(buf)
		return nil, nil, err
	}

	frame := make([]byte, n)
	copy(frame, buf[:n])
	putFrameBuffer(buf)

	return src, frame, nil
}

// LocalAddr returns the local endpoint address.
func (t *UDPTransport) LocalAddr() net.Addr {
	return t.conn.LocalAddr()
}

// Close releases the socket.
func (t *UDPTransport) Close() error {
	return t.conn.Close()
}

// isTimeout reports whether err is a transport deadline expiry.
func isTimeout(err error) bool {
	nerr, ok := err.(net.Error)
	return ok && nerr.Timeout()
}
