package address

import "fmt"

// Increment returns the next address in the space of a's pattern. The free
// octets act as a big-endian counter; past the last address it wraps to
// zero instead of failing.
func Increment(a Address) Address {
	switch v := a.(type) {
	case TwoOctetAddress:
		v.Fourth++
		if v.Fourth == 0 {
			v.Third++
		}
		return v
	case ThreeOctetAddress:
		v.Fourth++
		if v.Fourth == 0 {
			v.Third++
			if v.Third == 0 {
				v.Second++
			}
		}
		return v
	default:
		panic(fmt.Sprintf("address: unsupported address type %T", a))
	}
}
