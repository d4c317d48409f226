package probe

import (
	"context"
	"errors"
	"net"
	"net/netip"
	"os"
	"sync/atomic"
	"syscall"
	"time"

	"golang.org/x/net/icmp"
	"golang.org/x/net/ipv4"

	"github.com/firefly-engineering/lan-address-gen/internal/logging"
)

// protocolICMP is the IANA protocol number for ICMPv4.
const protocolICMP = 1

var echoPayload = []byte("lan-address-gen")

// ICMPProber sends a single ICMP echo request without an external utility.
//
// By default it uses an unprivileged datagram socket ("udp4"), which Linux
// allows when net.ipv4.ping_group_range covers the caller. When the kernel
// refuses that socket the prober switches to a raw socket for good. Privileged
// goes straight to the raw socket, which needs root or CAP_NET_RAW.
type ICMPProber struct {
	Timeout    time.Duration
	Privileged bool

	// listen opens sockets; nil means icmp.ListenPacket.
	listen func(network, address string) (*icmp.PacketConn, error)

	seq atomic.Uint32
	raw atomic.Bool
}

const (
	networkDatagram = "udp4"
	networkRaw      = "ip4:icmp"
)

// Alive reports whether an echo reply from addr arrives within Timeout.
func (p *ICMPProber) Alive(ctx context.Context, addr string) bool {
	log := logging.With("addr", addr)

	ip, err := netip.ParseAddr(addr)
	if err != nil || !ip.Is4() {
		log.Debug("skipping probe of non-IPv4 address")
		return false
	}
	if ctx.Err() != nil {
		return false
	}

	conn, raw, err := p.open()
	if err != nil {
		log.Debug("failed to open ICMP socket", "error", err)
		return false
	}
	defer func() {
		_ = conn.Close()
	}()

	// Unblock ReadFrom when the caller gives up.
	stop := context.AfterFunc(ctx, func() { _ = conn.Close() })
	defer stop()

	id := os.Getpid() & 0xffff
	seq := int(p.seq.Add(1) & 0xffff)

	msg := &icmp.Message{
		Type: ipv4.ICMPTypeEcho,
		Code: 0,
		Body: &icmp.Echo{
			ID:   id,
			Seq:  seq,
			Data: echoPayload,
		},
	}
	msgBytes, err := msg.Marshal(nil)
	if err != nil {
		log.Debug("failed to marshal ICMP message", "error", err)
		return false
	}

	if _, err := conn.WriteTo(msgBytes, destination(ip, raw)); err != nil {
		log.Debug("failed to send ICMP echo", "error", err)
		return false
	}

	deadline := time.Now().Add(p.timeout())
	if d, ok := ctx.Deadline(); ok && d.Before(deadline) {
		deadline = d
	}
	if err := conn.SetReadDeadline(deadline); err != nil {
		return false
	}

	reply := make([]byte, 1500)
	for {
		n, peer, err := conn.ReadFrom(reply)
		if err != nil {
			log.Debug("no reply", "error", err)
			return false
		}

		rm, err := icmp.ParseMessage(protocolICMP, reply[:n])
		if err != nil || rm.Type != ipv4.ICMPTypeEchoReply {
			continue
		}

		echo, ok := rm.Body.(*icmp.Echo)
		if !ok || echo.Seq != seq {
			continue
		}
		// The kernel rewrites the ID of unprivileged echo requests.
		if raw && echo.ID != id {
			continue
		}
		if !peerMatches(peer, ip) {
			continue
		}
		return true
	}
}

// open returns an ICMP socket and reports whether it is a raw one.
func (p *ICMPProber) open() (*icmp.PacketConn, bool, error) {
	listen := p.listen
	if listen == nil {
		listen = icmp.ListenPacket
	}

	if p.Privileged || p.raw.Load() {
		conn, err := listen(networkRaw, "0.0.0.0")
		return conn, true, err
	}

	conn, err := listen(networkDatagram, "0.0.0.0")
	if err == nil {
		return conn, false, nil
	}
	if !errors.Is(err, syscall.EPERM) && !errors.Is(err, syscall.EACCES) {
		return nil, false, err
	}

	// ping_group_range excludes the caller; a raw socket may still be allowed.
	logging.Warn("unprivileged ICMP socket refused, switching to a raw socket", "error", err)
	p.raw.Store(true)

	conn, err = listen(networkRaw, "0.0.0.0")
	return conn, true, err
}

func destination(ip netip.Addr, raw bool) net.Addr {
	if raw {
		return &net.IPAddr{IP: net.IP(ip.AsSlice())}
	}
	return &net.UDPAddr{IP: net.IP(ip.AsSlice())}
}

func (p *ICMPProber) timeout() time.Duration {
	if p.Timeout <= 0 {
		return DefaultTimeout
	}
	return p.Timeout
}

// peerMatches checks that a reply came from the probed host.
func peerMatches(peer net.Addr, want netip.Addr) bool {
	var got net.IP
	switch a := peer.(type) {
	case *net.IPAddr:
		got = a.IP
	case *net.UDPAddr:
		got = a.IP
	default:
		return false
	}
	parsed, ok := netip.AddrFromSlice(got)
	return ok && parsed.Unmap() == want
}
