package mqttsn

import (
	"encoding/binary"
	"errors"
	"unicode/utf8"
)

// Encoding errors.
var (
	ErrClientIDTooLong = errors.New("mqttsn: client ID exceeds 23 bytes")
	ErrClientIDEmpty   = errors.New("mqttsn: client ID is empty")
	ErrInvalidUTF8     = errors.New("mqttsn: invalid UTF-8 string")
	ErrFieldTruncated  = errors.New("mqttsn: fixed-size field truncated")
)

// maxClientIDLen is the client identifier limit from the MQTT-SN
// specification (1-23 octets).
const maxClientIDLen = 23

// putUint16 appends a 16-bit big-endian integer to buf.
func putUint16(buf []byte, v uint16) []byte {
	return binary.BigEndian.AppendUint16(buf, v)
}

// readUint16 reads a 16-bit big-endian integer at offset off.
func readUint16(buf []byte, off int) (uint16, error) {
	if len(buf) < off+2 {
		return 0, ErrFieldTruncated
	}
	return binary.BigEndian.Uint16(buf[off:]), nil
}

// validateClientID checks the client identifier against the protocol limits.
func validateClientID(id string) error {
	if id == "" {
		return ErrClientIDEmpty
	}
	if len(id) > maxClientIDLen {
		return ErrClientIDTooLong
	}
	if !utf8.ValidString(id) {
		return ErrInvalidUTF8
	}
	return nil
}

// validateTopicName checks a topic name field. Topic names are carried
// without their own length prefix and consume the remainder of the frame,
// so the only constraints are non-emptiness and valid UTF-8.
func validateTopicName(name string) error {
	if name == "" {
		return ErrTopicEmpty
	}
	if !utf8.ValidString(name) {
		return ErrInvalidUTF8
	}
	return nil
}
