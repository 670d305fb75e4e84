// Package mqttsn implements the MQTT-SN 1.2 protocol for clients talking
// to a gateway over datagram transports.
//
// The package provides the wire codec for every MQTT-SN message type, a
// topic registry that tracks gateway-assigned topic ids, an in-flight
// tracker with retransmission and DUP handling, and a Client session state
// machine covering connect, register, subscribe, publish at QoS 0, 1, 2
// and -1, will updates, keep-alive and disconnect.
//
// Transports are pluggable through the Transport interface. UDP is built
// in; QUICTransport carries frames as QUIC unreliable datagrams for
// clients behind NAT or on networks that block plain UDP to the gateway
// port.
//
// Basic usage:
//
//	client, err := mqttsn.Dial("gateway.example.com:1884", "sensor-1")
//	if err != nil {
//		log.Fatal(err)
//	}
//	defer client.Close()
//
//	if err := client.Connect(ctx); err != nil {
//		log.Fatal(err)
//	}
//
//	if _, err := client.Register(ctx, "sensors/temperature"); err != nil {
//		log.Fatal(err)
//	}
//
//	topic := mqttsn.TopicName("sensors/temperature")
//	err = client.Publish(ctx, topic, []byte("21.5"), mqttsn.QoS1, false)
package mqttsn
