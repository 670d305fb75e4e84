package mqttsn

import "sync"

// registration tracks one in-flight REGISTER exchange so concurrent
// registrations of the same name share a single wire exchange.
type registration struct {
	done chan struct{}
	id   uint16
	err  error
}

// TopicRegistry maps topic names to the numeric ids a gateway assigned for
// this session. Ids are meaningless outside the issuing session. Predefined
// ids are kept separately: they are valid without any REGISTER exchange.
type TopicRegistry struct {
	mu         sync.Mutex
	byName     map[string]uint16
	byID       map[uint16]string
	predefined map[uint16]string
	inflight   map[string]*registration
}

// NewTopicRegistry creates an empty registry.
func NewTopicRegistry() *TopicRegistry {
	return &TopicRegistry{
		byName:     make(map[string]uint16),
		byID:       make(map[uint16]string),
		predefined: make(map[uint16]string),
		inflight:   make(map[string]*registration),
	}
}

// Resolve returns the id registered for a topic name.
func (r *TopicRegistry) Resolve(name string) (uint16, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	id, ok := r.byName[name]
	if !ok {
		return 0, ErrTopicNotRegistered
	}
	return id, nil
}

// NameOf returns the topic name bound to a registered id.
func (r *TopicRegistry) NameOf(id uint16) (string, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	name, ok := r.byID[id]
	return name, ok
}

// Bind records a gateway-assigned id for a topic name. Used on REGACK, on
// SUBACK for wildcard-free subscriptions, and on gateway-initiated REGISTER.
func (r *TopicRegistry) Bind(name string, id uint16) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if old, ok := r.byName[name]; ok {
		delete(r.byID, old)
	}
	r.byName[name] = id
	r.byID[id] = name
}

// BindPredefined records an out-of-band topic id. Predefined ids bypass
// the REGISTER exchange and are encoded with the predefined topic id type.
func (r *TopicRegistry) BindPredefined(name string, id uint16) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.predefined[id] = name
}

// PredefinedName returns the name bound to a predefined id.
func (r *TopicRegistry) PredefinedName(id uint16) (string, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	name, ok := r.predefined[id]
	return name, ok
}

// Invalidate drops a registered id, e.g. after the gateway rejected it
// with ReturnRejectedInvalidTopic.
func (r *TopicRegistry) Invalidate(id uint16) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if name, ok := r.byID[id]; ok {
		delete(r.byName, name)
		delete(r.byID, id)
	}
}

// Clear drops every registered binding. Called on disconnect: registered
// ids do not survive the session. Predefined bindings are kept.
func (r *TopicRegistry) Clear() {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.byName = make(map[string]uint16)
	r.byID = make(map[uint16]string)
}

// begin claims the registration of a topic name. The first caller becomes
// the leader (second return true) and must complete the wire exchange; any
// concurrent caller receives the shared registration to wait on. A name
// that is already registered returns a completed registration immediately.
func (r *TopicRegistry) begin(name string) (*registration, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if id, ok := r.byName[name]; ok {
		done := make(chan struct{})
		close(done)
		return &registration{done: done, id: id}, false
	}

	if reg, ok := r.inflight[name]; ok {
		return reg, false
	}

	reg := &registration{done: make(chan struct{})}
	r.inflight[name] = reg
	return reg, true
}

// complete finishes the registration claimed by begin. On success the
// binding is recorded before any waiter wakes up.
func (r *TopicRegistry) complete(name string, id uint16, err error) {
	r.mu.Lock()
	reg, ok := r.inflight[name]
	if ok {
		delete(r.inflight, name)
		if err == nil {
			if old, bound := r.byName[name]; bound {
				delete(r.byID, old)
			}
			r.byName[name] = id
			r.byID[id] = name
		}
	}
	r.mu.Unlock()

	if ok {
		reg.id = id
		reg.err = err
		close(reg.done)
	}
}
