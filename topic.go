package mqttsn

import (
	"errors"
	"strconv"
	"strings"
)

// TopicIDType selects how a topic is identified on the wire.
type TopicIDType byte

// Topic id types as carried in the flags octet.
const (
	// TopicIDNormal is a registered topic id obtained via REGISTER/SUBACK.
	TopicIDNormal TopicIDType = 0x00

	// TopicIDPredefined is a topic id agreed out of band.
	TopicIDPredefined TopicIDType = 0x01

	// TopicIDShort is a two-character topic name carried in place of an id.
	TopicIDShort TopicIDType = 0x02
)

// Topic errors.
var (
	ErrTopicEmpty         = errors.New("mqttsn: topic name is empty")
	ErrShortTopicLength   = errors.New("mqttsn: short topic name must be exactly 2 characters")
	ErrTopicNotRegistered = errors.New("mqttsn: topic not registered")
	ErrInvalidTopicRef    = errors.New("mqttsn: invalid topic reference")
)

// TopicRef is a tagged reference to a topic: a full name requiring
// registration, a predefined 16-bit id, or a two-character short name.
type TopicRef struct {
	kind TopicIDType
	name string
	id   uint16
}

// TopicName returns a TopicRef for a full topic name.
func TopicName(name string) TopicRef {
	return TopicRef{kind: TopicIDNormal, name: name}
}

// PredefinedTopic returns a TopicRef for a predefined topic id.
func PredefinedTopic(id uint16) TopicRef {
	return TopicRef{kind: TopicIDPredefined, id: id}
}

// ShortTopic returns a TopicRef for a two-character short topic name.
func ShortTopic(name string) TopicRef {
	return TopicRef{kind: TopicIDShort, name: name}
}

// Kind returns the topic id type of the reference.
func (t TopicRef) Kind() TopicIDType { return t.kind }

// Name returns the topic name for normal and short references.
func (t TopicRef) Name() string { return t.name }

// ID returns the numeric id for predefined references, or the registered id
// once the session has resolved the name.
func (t TopicRef) ID() uint16 { return t.id }

// String returns a human-readable form of the reference.
func (t TopicRef) String() string {
	switch t.kind {
	case TopicIDPredefined:
		return "predefined/" + strconv.Itoa(int(t.id))
	case TopicIDShort:
		return "short/" + t.name
	default:
		return t.name
	}
}

// Validate checks the reference for wire encodability.
func (t TopicRef) Validate() error {
	switch t.kind {
	case TopicIDNormal:
		return validateTopicName(t.name)
	case TopicIDPredefined:
		if t.id == 0 {
			return ErrInvalidTopicRef
		}
		return nil
	case TopicIDShort:
		if len(t.name) != 2 {
			return ErrShortTopicLength
		}
		return nil
	default:
		return ErrInvalidTopicRef
	}
}

// shortTopicID packs a two-character short topic name into the 16-bit
// topic id field.
func shortTopicID(name string) uint16 {
	return uint16(name[0])<<8 | uint16(name[1])
}

// shortTopicName unpacks a 16-bit topic id field into the two-character
// short topic name it carries.
func shortTopicName(id uint16) string {
	return string([]byte{byte(id >> 8), byte(id)})
}

// wireID returns the value carried in a topic id field for the reference.
// Normal references must be resolved by the registry first.
func (t TopicRef) wireID() uint16 {
	if t.kind == TopicIDShort {
		return shortTopicID(t.name)
	}
	return t.id
}

// HasWildcard returns true if the topic name contains a subscription
// wildcard. Wildcard subscriptions receive their topic ids later via
// REGISTER from the gateway, not in SUBACK.
func (t TopicRef) HasWildcard() bool {
	if t.kind == TopicIDPredefined {
		return false
	}
	return strings.ContainsAny(t.name, "+#")
}
