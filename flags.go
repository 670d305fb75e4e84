package mqttsn

// QoS levels. QoSMinusOne is the connectionless publish mode encoded as
// flag value 3; it is only valid for PUBLISH with predefined or short topics.
const (
	QoS0        byte = 0
	QoS1        byte = 1
	QoS2        byte = 2
	QoSMinusOne byte = 3
)

// Flags bit masks.
const (
	flagDUP          = 0x80
	flagQoSMask      = 0x60
	flagQoSShift     = 5
	flagRetain       = 0x10
	flagWill         = 0x08
	flagCleanSession = 0x04
	flagTopicIDMask  = 0x03
)

// Flags is the MQTT-SN flags octet carried by CONNECT, WILLTOPIC, PUBLISH,
// SUBSCRIBE, UNSUBSCRIBE, SUBACK and the will-update messages. Not every bit
// is meaningful for every message; unused bits must be zero on the wire.
type Flags byte

// DUP returns the DUP bit.
func (f Flags) DUP() bool { return f&flagDUP != 0 }

// SetDUP sets the DUP bit.
func (f *Flags) SetDUP(dup bool) {
	if dup {
		*f |= flagDUP
	} else {
		*f &^= flagDUP
	}
}

// QoS returns the QoS bits (0, 1, 2, or QoSMinusOne).
func (f Flags) QoS() byte { return (byte(f) & flagQoSMask) >> flagQoSShift }

// SetQoS sets the QoS bits.
func (f *Flags) SetQoS(qos byte) {
	*f = Flags((byte(*f) &^ flagQoSMask) | ((qos & 0x03) << flagQoSShift))
}

// Retain returns the Retain bit.
func (f Flags) Retain() bool { return f&flagRetain != 0 }

// SetRetain sets the Retain bit.
func (f *Flags) SetRetain(retain bool) {
	if retain {
		*f |= flagRetain
	} else {
		*f &^= flagRetain
	}
}

// Will returns the Will bit.
func (f Flags) Will() bool { return f&flagWill != 0 }

// SetWill sets the Will bit.
func (f *Flags) SetWill(will bool) {
	if will {
		*f |= flagWill
	} else {
		*f &^= flagWill
	}
}

// CleanSession returns the CleanSession bit.
func (f Flags) CleanSession() bool { return f&flagCleanSession != 0 }

// SetCleanSession sets the CleanSession bit.
func (f *Flags) SetCleanSession(clean bool) {
	if clean {
		*f |= flagCleanSession
	} else {
		*f &^= flagCleanSession
	}
}

// TopicIDType returns the topic id type bits.
func (f Flags) TopicIDType() TopicIDType { return TopicIDType(byte(f) & flagTopicIDMask) }

// SetTopicIDType sets the topic id type bits.
func (f *Flags) SetTopicIDType(t TopicIDType) {
	*f = Flags((byte(*f) &^ flagTopicIDMask) | (byte(t) & flagTopicIDMask))
}
