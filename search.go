package mqttsn

import (
	"net"
	"time"

	"golang.org/x/net/ipv4"
)

// GatewayInfo describes a gateway discovered via SEARCHGW or ADVERTISE.
type GatewayInfo struct {
	// GatewayID is the gateway's one-octet identifier.
	GatewayID byte

	// Addr is where the GWINFO answer came from, or the address another
	// client relayed on the gateway's behalf.
	Addr net.Addr
}

// SearchGateway broadcasts a SEARCHGW message and collects GWINFO answers
// until the timeout passes. The radius bounds how far the broadcast travels;
// it is applied as the IP TTL of the search datagram, so a radius of 1 stays
// on the local link.
func SearchGateway(t *UDPTransport, broadcast net.Addr, radius byte, timeout time.Duration) ([]GatewayInfo, error) {
	frame, err := EncodePacket(&SearchGwPacket{Radius: radius})
	if err != nil {
		return nil, err
	}

	pc := ipv4.NewPacketConn(t.conn)
	if radius > 0 {
		prevTTL, ttlErr := pc.TTL()
		if ttlErr == nil {
			if err := pc.SetTTL(int(radius)); err == nil {
				defer pc.SetTTL(prevTTL)
			}
		}
		prevHops, hopErr := pc.MulticastTTL()
		if hopErr == nil {
			if err := pc.SetMulticastTTL(int(radius)); err == nil {
				defer pc.SetMulticastTTL(prevHops)
			}
		}
	}

	if err := t.Send(broadcast, frame); err != nil {
		return nil, err
	}

	deadline := time.Now().Add(timeout)
	var gateways []GatewayInfo

	for {
		src, data, err := t.Receive(deadline)
		if err != nil {
			if isTimeout(err) {
				return gateways, nil
			}
			return gateways, err
		}

		packet, err := DecodePacket(data)
		if err != nil {
			continue
		}

		switch info := packet.(type) {
		case *GwInfoPacket:
			addr := src
			if len(info.GatewayAddress) > 0 {
				// Another client answered on the gateway's behalf and
				// included the gateway's own address.
				if relayed, rerr := net.ResolveUDPAddr("udp", string(info.GatewayAddress)); rerr == nil {
					addr = relayed
				}
			}
			gateways = append(gateways, GatewayInfo{GatewayID: info.GatewayID, Addr: addr})
		case *AdvertisePacket:
			gateways = append(gateways, GatewayInfo{GatewayID: info.GatewayID, Addr: src})
		}
	}
}
