package mqttsn

// ReturnCode represents an MQTT-SN return code carried by CONNACK, REGACK,
// PUBACK, SUBACK, WILLTOPICRESP and WILLMSGRESP.
type ReturnCode byte

// MQTT-SN return codes.
const (
	ReturnAccepted             ReturnCode = 0x00
	ReturnRejectedCongestion   ReturnCode = 0x01
	ReturnRejectedInvalidTopic ReturnCode = 0x02
	ReturnRejectedNotSupported ReturnCode = 0x03
)

// String returns the string representation of the return code.
func (rc ReturnCode) String() string {
	switch rc {
	case ReturnAccepted:
		return "accepted"
	case ReturnRejectedCongestion:
		return "rejected: congestion"
	case ReturnRejectedInvalidTopic:
		return "rejected: invalid topic ID"
	case ReturnRejectedNotSupported:
		return "rejected: not supported"
	default:
		return "rejected: unknown"
	}
}

// Valid returns true if the return code is defined by the protocol.
func (rc ReturnCode) Valid() bool {
	return rc <= ReturnRejectedNotSupported
}

// Accepted returns true if the return code signals success.
func (rc ReturnCode) Accepted() bool {
	return rc == ReturnAccepted
}
