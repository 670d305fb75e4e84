package mqttsn

import (
	"context"
	"net"
	"sync"
	"sync/atomic"
	"time"
)

// MessageHandler handles PUBLISH messages arriving from the gateway.
type MessageHandler func(msg *Message)

// ClientState represents the session lifecycle state.
type ClientState int32

// Session lifecycle states.
const (
	StateDisconnected ClientState = iota
	StateConnecting
	StateActive
	StateDisconnecting
)

// String returns the string representation of the state.
func (s ClientState) String() string {
	switch s {
	case StateDisconnected:
		return "disconnected"
	case StateConnecting:
		return "connecting"
	case StateActive:
		return "active"
	case StateDisconnecting:
		return "disconnecting"
	default:
		return "unknown"
	}
}

// receivePollInterval bounds how long the receive loop blocks before
// checking keep-alive deadlines.
const receivePollInterval = 250 * time.Millisecond

// Client is an MQTT-SN client session bound to one gateway.
type Client struct {
	transport Transport
	gateway   net.Addr
	clientID  string
	options   *clientOptions
	logger    Logger

	state    atomic.Int32
	msgIDs   *MsgIDSequence
	registry *TopicRegistry
	inflight *InflightTracker
	keep     *KeepAliveTracker
	flow     *FlowController
	stats    ClientStats

	handler   MessageHandler
	handlerMu sync.RWMutex

	// inbound QoS 2 publishes held until PUBREL completes the exchange
	inbound2   map[uint16]*Message
	inbound2Mu sync.Mutex

	writeMu sync.Mutex

	loopMu   sync.Mutex
	loopStop chan struct{}
	loopDone chan struct{}

	closed       atomic.Bool
	lostReported atomic.Bool
	ownTransport bool
}

// NewClient creates a client session over an existing transport.
// The session is created disconnected; call Connect to open it.
func NewClient(transport Transport, gateway net.Addr, clientID string, opts ...Option) (*Client, error) {
	if err := validateClientID(clientID); err != nil {
		return nil, err
	}

	options := applyOptions(opts...)

	c := &Client{
		transport: transport,
		gateway:   gateway,
		clientID:  clientID,
		options:   options,
		logger:    options.logger,
		msgIDs:    NewMsgIDSequence(),
		registry:  NewTopicRegistry(),
		inflight:  NewInflightTracker(),
		keep:      NewKeepAliveTracker(options.keepAlive),
		flow:      NewFlowController(options.publishRate, options.publishBurst),
		inbound2:  make(map[uint16]*Message),
	}

	for id, name := range options.predefined {
		c.registry.BindPredefined(name, id)
	}

	return c, nil
}

// Dial opens a UDP socket and creates a client session for the gateway
// address. The client owns the transport and closes it on Close.
func Dial(gatewayAddr, clientID string, opts ...Option) (*Client, error) {
	addr, err := net.ResolveUDPAddr("udp", gatewayAddr)
	if err != nil {
		return nil, err
	}

	transport, err := NewUDPTransport(":0")
	if err != nil {
		return nil, err
	}

	c, err := NewClient(transport, addr, clientID, opts...)
	if err != nil {
		transport.Close()
		return nil, err
	}
	c.ownTransport = true

	return c, nil
}

// State returns the current session state.
func (c *Client) State() ClientState {
	return ClientState(c.state.Load())
}

// ClientID returns the session's client identifier.
func (c *Client) ClientID() string {
	return c.clientID
}

// Stats returns the client's counters.
func (c *Client) Stats() *ClientStats {
	return &c.stats
}

// OnPublishReceived registers the handler invoked for PUBLISH messages
// arriving from the gateway. For QoS 1 the client sends PUBACK after the
// handler returns; for QoS 2 it sends PUBREC immediately and delivers the
// message once the gateway's PUBREL arrives.
func (c *Client) OnPublishReceived(handler MessageHandler) {
	c.handlerMu.Lock()
	c.handler = handler
	c.handlerMu.Unlock()
}

// ResolveTopic returns the topic id registered for a name in this session.
func (c *Client) ResolveTopic(name string) (uint16, error) {
	return c.registry.Resolve(name)
}

// Connect opens the session. Valid only from the disconnected state.
// On a non-zero CONNACK return code or retry exhaustion the session
// returns to disconnected and the specific reason is returned.
func (c *Client) Connect(ctx context.Context) error {
	if c.closed.Load() {
		return ErrClientClosed
	}
	if !c.state.CompareAndSwap(int32(StateDisconnected), int32(StateConnecting)) {
		return &InvalidStateError{Op: "connect", State: c.State()}
	}

	c.keep = NewKeepAliveTracker(c.options.keepAlive)
	c.lostReported.Store(false)
	c.startLoop()

	var flags Flags
	flags.SetCleanSession(c.options.cleanSession)
	if c.options.willTopic != "" {
		flags.SetWill(true)
	}

	connect := &ConnectPacket{
		Flags:      flags,
		ProtocolID: ProtocolID,
		Duration:   durationSeconds(c.options.keepAlive),
		ClientID:   c.clientID,
	}

	reply, err := c.request(ctx, connect, 0, KindConnect)
	if err != nil {
		c.failConnect()
		return err
	}

	connack := reply.(*ConnackPacket)
	if !connack.ReturnCode.Accepted() {
		c.failConnect()
		return newRejectedError("connect", connack.ReturnCode)
	}

	c.state.Store(int32(StateActive))
	c.logger.Info("session active", LogFields{
		LogFieldClientID: c.clientID,
		LogFieldGateway:  c.gateway.String(),
	})
	c.emit(ErrConnected)

	return nil
}

// failConnect tears down a connection attempt that did not reach Active.
func (c *Client) failConnect() {
	c.state.Store(int32(StateDisconnected))
	c.stopLoop()
}

// Register obtains a gateway-assigned topic id for a full topic name.
// Valid only while active. Concurrent registrations of the same name share
// one wire exchange and observe the same result.
func (c *Client) Register(ctx context.Context, name string) (uint16, error) {
	if c.State() != StateActive {
		return 0, &InvalidStateError{Op: "register", State: c.State()}
	}
	if err := validateTopicName(name); err != nil {
		return 0, err
	}

	reg, leader := c.registry.begin(name)
	if !leader {
		select {
		case <-reg.done:
			return reg.id, reg.err
		case <-ctx.Done():
			return 0, ctx.Err()
		}
	}

	id, err := c.registerExchange(ctx, name)
	c.registry.complete(name, id, err)
	return id, err
}

// registerExchange performs the REGISTER/REGACK wire exchange.
func (c *Client) registerExchange(ctx context.Context, name string) (uint16, error) {
	msgID, err := c.msgIDs.Next()
	if err != nil {
		return 0, err
	}
	defer c.msgIDs.Release(msgID)

	packet := &RegisterPacket{
		TopicID:   0, // client-initiated registration
		MsgID:     msgID,
		TopicName: name,
	}

	reply, err := c.request(ctx, packet, msgID, KindRegister)
	if err != nil {
		return 0, err
	}

	regack := reply.(*RegackPacket)
	if !regack.ReturnCode.Accepted() {
		return 0, newRejectedError("register", regack.ReturnCode)
	}

	c.logger.Debug("topic registered", LogFields{
		LogFieldTopicName: name,
		LogFieldTopicID:   regack.TopicID,
	})

	return regack.TopicID, nil
}

// Subscribe subscribes to a topic at the requested QoS. Returns the QoS the
// gateway granted, which may be lower than requested, and the topic id
// assigned for wildcard-free topic names (zero otherwise: wildcard topics
// receive their ids later via gateway-initiated REGISTER).
func (c *Client) Subscribe(ctx context.Context, topic TopicRef, qos byte) (byte, uint16, error) {
	if c.State() != StateActive {
		return 0, 0, &InvalidStateError{Op: "subscribe", State: c.State()}
	}
	if err := topic.Validate(); err != nil {
		return 0, 0, err
	}

	msgID, err := c.msgIDs.Next()
	if err != nil {
		return 0, 0, err
	}
	defer c.msgIDs.Release(msgID)

	var flags Flags
	flags.SetQoS(qos)
	flags.SetTopicIDType(topic.Kind())

	packet := &SubscribePacket{
		Flags: flags,
		MsgID: msgID,
	}
	if topic.Kind() == TopicIDNormal {
		packet.TopicName = topic.Name()
	} else {
		packet.TopicID = topic.wireID()
	}

	reply, err := c.request(ctx, packet, msgID, KindSubscribe)
	if err != nil {
		return 0, 0, err
	}

	suback := reply.(*SubackPacket)
	if !suback.ReturnCode.Accepted() {
		return 0, 0, newRejectedError("subscribe", suback.ReturnCode)
	}

	granted := suback.GrantedQoS()
	if granted == QoSMinusOne {
		// Granted QoS 3 is not a real level; gateways use it to refuse
		// the subscription without a dedicated return code.
		return 0, 0, newRejectedError("subscribe", ReturnRejectedNotSupported)
	}

	if topic.Kind() == TopicIDNormal && !topic.HasWildcard() && suback.TopicID != 0 {
		c.registry.Bind(topic.Name(), suback.TopicID)
	}

	return granted, suback.TopicID, nil
}

// Unsubscribe removes a subscription.
func (c *Client) Unsubscribe(ctx context.Context, topic TopicRef) error {
	if c.State() != StateActive {
		return &InvalidStateError{Op: "unsubscribe", State: c.State()}
	}
	if err := topic.Validate(); err != nil {
		return err
	}

	msgID, err := c.msgIDs.Next()
	if err != nil {
		return err
	}
	defer c.msgIDs.Release(msgID)

	var flags Flags
	flags.SetTopicIDType(topic.Kind())

	packet := &UnsubscribePacket{
		Flags: flags,
		MsgID: msgID,
	}
	if topic.Kind() == TopicIDNormal {
		packet.TopicName = topic.Name()
	} else {
		packet.TopicID = topic.wireID()
	}

	_, err = c.request(ctx, packet, msgID, KindUnsubscribe)
	return err
}

// Publish publishes a payload to a topic. QoS 0 is fire-and-forget:
// success means the local transport accepted the frame. QoS 1 waits for
// PUBACK; QoS 2 runs the PUBREC/PUBREL/PUBCOMP two-phase exchange.
// QoSMinusOne publishes without a session and is valid in any state, but
// only for predefined and short topics.
func (c *Client) Publish(ctx context.Context, topic TopicRef, payload []byte, qos byte, retain bool) error {
	if qos != QoSMinusOne && c.State() != StateActive {
		return &InvalidStateError{Op: "publish", State: c.State()}
	}
	if err := topic.Validate(); err != nil {
		return err
	}
	if qos == QoSMinusOne && topic.Kind() == TopicIDNormal {
		return ErrInvalidTopicRef
	}

	topicID, err := c.publishTopicID(topic)
	if err != nil {
		return err
	}

	// 7 octets of header and fixed fields; checked before any I/O.
	if len(payload)+7 > MaxFrameSize {
		return ErrPayloadTooLarge
	}

	var flags Flags
	flags.SetQoS(qos)
	flags.SetRetain(retain)
	flags.SetTopicIDType(topic.Kind())

	packet := &PublishPacket{
		Flags:   flags,
		TopicID: topicID,
		Data:    payload,
	}

	if err := c.flow.Wait(ctx); err != nil {
		return err
	}

	if qos == QoS0 || qos == QoSMinusOne {
		return c.send(packet)
	}

	msgID, err := c.msgIDs.Next()
	if err != nil {
		return err
	}
	defer c.msgIDs.Release(msgID)
	packet.MsgID = msgID

	if qos == QoS1 {
		reply, err := c.request(ctx, packet, msgID, KindPublishQoS1)
		if err != nil {
			return err
		}
		return c.checkPuback(reply.(*PubackPacket))
	}

	// QoS 2: PUBLISH -> PUBREC -> PUBREL -> PUBCOMP
	if _, err := c.request(ctx, packet, msgID, KindPublishQoS2); err != nil {
		return err
	}

	pubrel := &PubrelPacket{}
	pubrel.SetMessageID(msgID)
	_, err = c.request(ctx, pubrel, msgID, KindPubrel)
	return err
}

// publishTopicID resolves the topic id field for an outgoing publish.
func (c *Client) publishTopicID(topic TopicRef) (uint16, error) {
	if topic.Kind() != TopicIDNormal {
		return topic.wireID(), nil
	}
	if topic.ID() != 0 {
		return topic.ID(), nil
	}
	return c.registry.Resolve(topic.Name())
}

// checkPuback maps a PUBACK return code to the publish result.
func (c *Client) checkPuback(puback *PubackPacket) error {
	switch puback.ReturnCode {
	case ReturnAccepted:
		return nil
	case ReturnRejectedInvalidTopic:
		// The gateway no longer knows this id; force re-registration.
		c.registry.Invalidate(puback.TopicID)
		return newRejectedError("publish", puback.ReturnCode)
	case ReturnRejectedCongestion:
		c.flow.Throttle()
		return newRejectedError("publish", puback.ReturnCode)
	default:
		return newRejectedError("publish", puback.ReturnCode)
	}
}

// Ping sends a PINGREQ and waits for the PINGRESP.
func (c *Client) Ping(ctx context.Context) error {
	if c.State() != StateActive {
		return &InvalidStateError{Op: "ping", State: c.State()}
	}

	_, err := c.request(ctx, &PingreqPacket{}, 0, KindPing)
	if err == nil {
		c.keep.MarkRecv()
	}
	return err
}

// UpdateWillTopic updates the will topic of the active session.
// An empty topic deletes the will.
func (c *Client) UpdateWillTopic(ctx context.Context, topic string, qos byte, retain bool) error {
	if c.State() != StateActive {
		return &InvalidStateError{Op: "will topic update", State: c.State()}
	}

	var flags Flags
	flags.SetQoS(qos)
	flags.SetRetain(retain)

	packet := &WillTopicUpdPacket{Flags: flags, WillTopic: topic}
	reply, err := c.request(ctx, packet, 0, KindWillTopicUpd)
	if err != nil {
		return err
	}

	if rc := reply.(*WillTopicRespPacket).ReturnCode; !rc.Accepted() {
		return newRejectedError("will topic update", rc)
	}
	return nil
}

// UpdateWillMessage updates the will payload of the active session.
func (c *Client) UpdateWillMessage(ctx context.Context, payload []byte) error {
	if c.State() != StateActive {
		return &InvalidStateError{Op: "will message update", State: c.State()}
	}

	packet := &WillMsgUpdPacket{WillMsg: payload}
	reply, err := c.request(ctx, packet, 0, KindWillMsgUpd)
	if err != nil {
		return err
	}

	if rc := reply.(*WillMsgRespPacket).ReturnCode; !rc.Accepted() {
		return newRejectedError("will message update", rc)
	}
	return nil
}

// Disconnect closes the session with a DISCONNECT and returns to the
// disconnected state. The state transition does not wait for the gateway's
// acknowledgment.
func (c *Client) Disconnect(ctx context.Context) error {
	if !c.state.CompareAndSwap(int32(StateActive), int32(StateDisconnecting)) {
		return &InvalidStateError{Op: "disconnect", State: c.State()}
	}

	c.inflight.CancelAll()

	err := c.send(&DisconnectPacket{})

	c.stopLoop()
	c.registry.Clear()
	c.state.Store(int32(StateDisconnected))
	c.emit(ErrDisconnected)

	return err
}

// Close releases the session. If the session is active a DISCONNECT is
// sent first, so the gateway does not publish the will. A transport
// created by Dial is closed; transports passed to NewClient are not.
func (c *Client) Close() error {
	if c.closed.Swap(true) {
		return nil
	}

	if c.State() == StateActive {
		c.Disconnect(context.Background())
	} else {
		c.inflight.CancelAll()
		c.stopLoop()
		c.state.Store(int32(StateDisconnected))
	}

	if c.ownTransport {
		return c.transport.Close()
	}
	return nil
}

// request sends a packet and waits for its acknowledgment, retransmitting
// up to the configured number of attempts. PUBLISH retransmissions carry
// the DUP flag; the other request types have no DUP semantics and are
// resent unchanged.
func (c *Client) request(ctx context.Context, packet Packet, msgID uint16, kind RequestKind) (Packet, error) {
	req, err := c.inflight.Track(msgID, kind)
	if err != nil {
		return nil, err
	}

	for attempt := 1; attempt <= c.options.maxRetries; attempt++ {
		if attempt > 1 {
			if pub, ok := packet.(*PublishPacket); ok {
				pub.Flags.SetDUP(true)
			}
			c.stats.retransmissions.Add(1)
			c.logger.Debug("retransmitting", LogFields{
				LogFieldMsgType: packet.Type().String(),
				LogFieldMsgID:   msgID,
				LogFieldRetry:   attempt - 1,
			})
		}

		if err := c.send(packet); err != nil {
			c.inflight.Cancel(msgID)
			return nil, err
		}
		req.RetryCount = attempt - 1

		reply, err := req.Await(ctx, c.options.retryTimeout)
		if err != nil {
			c.inflight.Cancel(msgID)
			return nil, err
		}
		if reply != nil {
			return reply, nil
		}
	}

	c.inflight.Cancel(msgID)
	c.stats.timeouts.Add(1)
	c.logger.Warn("request timed out", LogFields{
		LogFieldMsgType: packet.Type().String(),
		LogFieldMsgID:   msgID,
	})

	return nil, ErrTimeout
}

// send encodes and transmits a packet to the gateway.
func (c *Client) send(packet Packet) error {
	frame, err := EncodePacket(packet)
	if err != nil {
		return err
	}

	c.writeMu.Lock()
	err = c.transport.Send(c.gateway, frame)
	c.writeMu.Unlock()
	if err != nil {
		return err
	}

	c.stats.packetsSent.Add(1)
	c.keep.MarkSend()
	return nil
}

// emit delivers a lifecycle event to the configured handler.
func (c *Client) emit(event error) {
	if c.options.onEvent != nil {
		c.options.onEvent(c, event)
	}
}

// startLoop launches the receive loop for one connection attempt.
func (c *Client) startLoop() {
	c.loopMu.Lock()
	defer c.loopMu.Unlock()

	c.loopStop = make(chan struct{})
	c.loopDone = make(chan struct{})
	go c.readLoop(c.loopStop, c.loopDone)
}

// stopLoop stops the receive loop and waits for it to exit.
func (c *Client) stopLoop() {
	c.loopMu.Lock()
	stop, done := c.loopStop, c.loopDone
	c.loopStop = nil
	c.loopMu.Unlock()

	if stop == nil {
		return
	}

	close(stop)
	<-done
}

// readLoop receives datagrams, resolves pending requests and dispatches
// gateway-initiated traffic until stopped.
func (c *Client) readLoop(stop, done chan struct{}) {
	defer close(done)

	for {
		select {
		case <-stop:
			return
		default:
		}

		src, frame, err := c.transport.Receive(time.Now().Add(receivePollInterval))
		if err != nil {
			if isTimeout(err) {
				c.checkKeepAlive()
				continue
			}

			select {
			case <-stop:
				return
			default:
			}

			c.logger.Error("transport receive failed", LogFields{LogFieldError: err})
			c.inflight.CancelAll()
			c.state.Store(int32(StateDisconnected))
			c.emit(ErrConnectionLost)
			return
		}

		packet, err := DecodePacket(frame)
		if err != nil {
			// Malformed datagrams are logged and dropped; in-flight
			// waits are unaffected.
			c.stats.malformed.Add(1)
			c.logger.Warn("dropping malformed datagram", LogFields{
				LogFieldError:   err,
				LogFieldGateway: src.String(),
			})
			continue
		}

		c.stats.packetsReceived.Add(1)
		c.keep.MarkRecv()
		c.lostReported.Store(false)

		resolved, err := c.inflight.Resolve(packet)
		if err != nil {
			c.logger.Warn("unexpected reply type", LogFields{
				LogFieldMsgType: packet.Type().String(),
				LogFieldError:   err,
			})
			continue
		}
		if resolved {
			continue
		}

		c.dispatch(packet, src)
		c.checkKeepAlive()
	}
}

// checkKeepAlive emits a PINGREQ when the session has been idle for a
// keep-alive interval, and reports a lost connection when a ping goes
// unanswered for another full interval.
func (c *Client) checkKeepAlive() {
	if c.State() != StateActive {
		return
	}

	if c.keep.Expired() && !c.lostReported.Swap(true) {
		c.logger.Warn("keep-alive expired", LogFields{
			LogFieldClientID: c.clientID,
			LogFieldGateway:  c.gateway.String(),
		})
		c.emit(&ConnectionLostError{LastSeen: c.keep.LastSeen()})
		return
	}

	if c.keep.PingDue() {
		if err := c.send(&PingreqPacket{}); err != nil {
			c.logger.Error("ping failed", LogFields{LogFieldError: err})
			return
		}
		c.keep.PingSent()
	}
}

// dispatch handles gateway-initiated packets.
func (c *Client) dispatch(packet Packet, src net.Addr) {
	switch p := packet.(type) {
	case *PublishPacket:
		c.handleInboundPublish(p)

	case *PubrelPacket:
		c.handleInboundPubrel(p)

	case *RegisterPacket:
		// Gateway-assigned id, e.g. for a wildcard subscription match.
		c.registry.Bind(p.TopicName, p.TopicID)
		ack := &RegackPacket{TopicID: p.TopicID, MsgID: p.MsgID, ReturnCode: ReturnAccepted}
		if err := c.send(ack); err != nil {
			c.logger.Error("regack failed", LogFields{LogFieldError: err})
		}

	case *WillTopicReqPacket:
		var flags Flags
		flags.SetQoS(c.options.willQoS)
		flags.SetRetain(c.options.willRetain)
		will := &WillTopicPacket{Flags: flags, WillTopic: c.options.willTopic}
		if err := c.send(will); err != nil {
			c.logger.Error("will topic failed", LogFields{LogFieldError: err})
		}

	case *WillMsgReqPacket:
		if err := c.send(&WillMsgPacket{WillMsg: c.options.willPayload}); err != nil {
			c.logger.Error("will message failed", LogFields{LogFieldError: err})
		}

	case *PingreqPacket:
		if err := c.send(&PingrespPacket{}); err != nil {
			c.logger.Error("pingresp failed", LogFields{LogFieldError: err})
		}

	case *PingrespPacket:
		// Liveness already recorded by MarkRecv.

	case *DisconnectPacket:
		if c.State() == StateActive {
			c.logger.Info("gateway disconnected session", LogFields{
				LogFieldClientID: c.clientID,
			})
			c.inflight.CancelAll()
			c.registry.Clear()
			c.state.Store(int32(StateDisconnected))
			c.emit(ErrDisconnected)
		}

	case *AdvertisePacket:
		c.logger.Debug("gateway advertise", LogFields{
			LogFieldGateway: src.String(),
		})

	default:
		c.logger.Debug("ignoring packet", LogFields{
			LogFieldMsgType: packet.Type().String(),
		})
	}
}

// handleInboundPublish processes a PUBLISH from the gateway.
func (c *Client) handleInboundPublish(p *PublishPacket) {
	msg := &Message{
		Payload: p.Data,
		QoS:     p.Flags.QoS(),
		Retain:  p.Flags.Retain(),
		DUP:     p.Flags.DUP(),
	}

	switch p.Flags.TopicIDType() {
	case TopicIDPredefined:
		msg.Topic = PredefinedTopic(p.TopicID)
	case TopicIDShort:
		msg.Topic = ShortTopic(shortTopicName(p.TopicID))
	default:
		name, ok := c.registry.NameOf(p.TopicID)
		if !ok {
			// Unknown id: reject so the gateway re-registers.
			if p.Flags.QoS() == QoS1 || p.Flags.QoS() == QoS2 {
				ack := &PubackPacket{TopicID: p.TopicID, MsgID: p.MsgID, ReturnCode: ReturnRejectedInvalidTopic}
				if err := c.send(ack); err != nil {
					c.logger.Error("puback failed", LogFields{LogFieldError: err})
				}
			}
			return
		}
		msg.Topic = TopicRef{kind: TopicIDNormal, name: name, id: p.TopicID}
	}

	switch p.Flags.QoS() {
	case QoS0, QoSMinusOne:
		c.deliver(msg)

	case QoS1:
		c.deliver(msg)
		ack := &PubackPacket{TopicID: p.TopicID, MsgID: p.MsgID, ReturnCode: ReturnAccepted}
		if err := c.send(ack); err != nil {
			c.logger.Error("puback failed", LogFields{LogFieldError: err})
		}

	case QoS2:
		c.inbound2Mu.Lock()
		if _, dup := c.inbound2[p.MsgID]; !dup {
			c.inbound2[p.MsgID] = msg
		}
		c.inbound2Mu.Unlock()

		rec := &PubrecPacket{}
		rec.SetMessageID(p.MsgID)
		if err := c.send(rec); err != nil {
			c.logger.Error("pubrec failed", LogFields{LogFieldError: err})
		}
	}
}

// handleInboundPubrel completes an inbound QoS 2 exchange: the message is
// delivered exactly once and PUBCOMP is sent even for retransmitted
// PUBRELs whose message was already delivered.
func (c *Client) handleInboundPubrel(p *PubrelPacket) {
	c.inbound2Mu.Lock()
	msg, ok := c.inbound2[p.MsgID]
	delete(c.inbound2, p.MsgID)
	c.inbound2Mu.Unlock()

	if ok {
		c.deliver(msg)
	}

	comp := &PubcompPacket{}
	comp.SetMessageID(p.MsgID)
	if err := c.send(comp); err != nil {
		c.logger.Error("pubcomp failed", LogFields{LogFieldError: err})
	}
}

// deliver invokes the registered message handler.
func (c *Client) deliver(msg *Message) {
	c.handlerMu.RLock()
	handler := c.handler
	c.handlerMu.RUnlock()

	if handler != nil {
		handler(msg)
	}
}

// durationSeconds converts a duration to the whole seconds the wire
// carries, rounding sub-second values up.
func durationSeconds(d time.Duration) uint16 {
	if d <= 0 {
		return 0
	}

	secs := (d + time.Second - 1) / time.Second
	if secs > 0xFFFF {
		return 0xFFFF
	}
	return uint16(secs)
}
