package address

import (
	"fmt"
	"net/netip"
)

// Address is a generated IPv4 address: a Pattern plus two or three free octets.
type Address interface {
	// Pattern returns the fixed prefix.
	Pattern() Pattern

	// Octets returns the free octets, most significant first.
	Octets() []uint8

	// String renders the dotted quad.
	String() string

	// Netip parses the rendered address. It reports false when the prefix
	// is not a valid IPv4 prefix.
	Netip() (netip.Addr, bool)
}

// TwoOctetAddress belongs to a two-segment pattern such as 192.168.
type TwoOctetAddress struct {
	Prefix Pattern
	Third  uint8
	Fourth uint8
}

func (a TwoOctetAddress) Pattern() Pattern { return a.Prefix }

func (a TwoOctetAddress) Octets() []uint8 { return []uint8{a.Third, a.Fourth} }

func (a TwoOctetAddress) String() string {
	return fmt.Sprintf("%s.%d.%d", a.Prefix, a.Third, a.Fourth)
}

func (a TwoOctetAddress) Netip() (netip.Addr, bool) { return parse(a) }

// ThreeOctetAddress belongs to a one-segment pattern such as 10.
type ThreeOctetAddress struct {
	Prefix Pattern
	Second uint8
	Third  uint8
	Fourth uint8
}

func (a ThreeOctetAddress) Pattern() Pattern { return a.Prefix }

func (a ThreeOctetAddress) Octets() []uint8 { return []uint8{a.Second, a.Third, a.Fourth} }

func (a ThreeOctetAddress) String() string {
	return fmt.Sprintf("%s.%d.%d.%d", a.Prefix, a.Second, a.Third, a.Fourth)
}

func (a ThreeOctetAddress) Netip() (netip.Addr, bool) { return parse(a) }

func parse(a Address) (netip.Addr, bool) {
	ip, err := netip.ParseAddr(a.String())
	if err != nil || !ip.Is4() {
		return netip.Addr{}, false
	}
	return ip, true
}
