package address

import (
	"crypto/sha256"
)

const (
	twoOctetSpace   = 1 << 16
	threeOctetSpace = 1 << 24
)

// Digest returns the low 24 bits of SHA-256(input + salt), i.e. the last six
// hex characters of the digest read as a base-16 integer.
func Digest(input, salt string) uint32 {
	sum := sha256.Sum256([]byte(input + salt))
	n := len(sum)
	return uint32(sum[n-3])<<16 | uint32(sum[n-2])<<8 | uint32(sum[n-1])
}

// FromString deterministically maps input and salt onto the address space of pattern.
func FromString(input, salt, pattern string) (Address, error) {
	p, err := ParsePattern(pattern)
	if err != nil {
		return nil, err
	}
	return FromDigest(Digest(input, salt), p), nil
}

// FromDigest spreads a digest over the free octets of p.
func FromDigest(digest uint32, p Pattern) Address {
	if p.Len() == 2 {
		mapped := digest % twoOctetSpace
		return TwoOctetAddress{
			Prefix: p,
			Third:  uint8(mapped >> 8),
			Fourth: uint8(mapped),
		}
	}

	mapped := digest % threeOctetSpace
	return ThreeOctetAddress{
		Prefix: p,
		Second: uint8(mapped >> 16),
		Third:  uint8(mapped >> 8),
		Fourth: uint8(mapped),
	}
}
