// Package address maps arbitrary strings onto private IPv4 addresses.
//
// # Patterns
//
// A pattern names the fixed leading octets of every generated address.
// Wildcard segments ("x") are dropped, and what remains must fix exactly
// one or two octets:
//
//	192.168     -> 192.168.N.N
//	192.168.x.x -> 192.168.N.N
//	10          -> 10.N.N.N
//
// # Mapping
//
// FromString hashes input+salt with SHA-256 and spreads the low 24 bits of
// the digest over the free octets, most significant byte first:
//
//	addr, err := address.FromString("build-runner", "", address.DefaultPattern)
//	fmt.Println(addr) // 192.168.N.N
//
// The same (input, salt, pattern) always yields the same address.
//
// # Shapes
//
// Address is implemented by TwoOctetAddress and ThreeOctetAddress. The shape
// is chosen by the pattern and never changes; Increment walks either shape
// forward as a base-256 counter and wraps to zero past the last address.
package address
